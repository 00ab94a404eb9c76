package cellcolor

import (
	"math"
	"strconv"
	"strings"
)

// Color-space conversions for the theme/tint model. The file format expresses
// hue, luminance and saturation on a 240-unit integer scale (not 0-1, not
// 0-360 degrees), and applies tint to the luminance channel only. The scale
// constant appears directly in the tint formula, so both must use 240.
const (
	rgbMax = 255
	hlsMax = 240
)

// HexToRGB parses a 6-hex-digit color string, case-insensitive, with an
// optional leading "#". Any other input yields black rather than an error;
// callers must strip an alpha prefix first (see StripAlpha).
func HexToRGB(hex string) RGB {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return RGB{}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// StripAlpha removes the 2-digit alpha prefix from an 8-digit ARGB hex
// string. Shorter strings are returned unchanged.
func StripAlpha(hex string) string {
	if len(hex) > 6 {
		return hex[len(hex)-6:]
	}
	return hex
}

// RGBToHLS converts a color to hue, luminance and saturation, each rounded
// to the 240-unit scale.
func RGBToHLS(c RGB) (h, l, s int) {
	r := float64(c.R) / rgbMax
	g := float64(c.G) / rgbMax
	b := float64(c.B) / rgbMax

	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	sumc := maxc + minc
	rangec := maxc - minc

	lf := sumc / 2
	if minc == maxc {
		return 0, round240(lf * hlsMax), 0
	}
	var sf float64
	if lf <= 0.5 {
		sf = rangec / sumc
	} else {
		sf = rangec / (2 - sumc)
	}
	rc := (maxc - r) / rangec
	gc := (maxc - g) / rangec
	bc := (maxc - b) / rangec
	var hf float64
	switch maxc {
	case r:
		hf = bc - gc
	case g:
		hf = 2 + rc - bc
	default:
		hf = 4 + gc - rc
	}
	hf = mod1(hf / 6)
	return round240(hf * hlsMax), round240(lf * hlsMax), round240(sf * hlsMax)
}

// HLSToRGB converts 240-scale hue, luminance and saturation back to a color,
// rounding each channel to the nearest 8-bit value.
func HLSToRGB(h, l, s int) RGB {
	hf := float64(h) / hlsMax
	lf := float64(l) / hlsMax
	sf := float64(s) / hlsMax

	if sf == 0 {
		v := round255(lf * rgbMax)
		return RGB{R: uint8(v), G: uint8(v), B: uint8(v)}
	}
	var m2 float64
	if lf <= 0.5 {
		m2 = lf * (1 + sf)
	} else {
		m2 = lf + sf - lf*sf
	}
	m1 := 2*lf - m2
	return RGB{
		R: uint8(round255(hlsValue(m1, m2, hf+1.0/3) * rgbMax)),
		G: uint8(round255(hlsValue(m1, m2, hf) * rgbMax)),
		B: uint8(round255(hlsValue(m1, m2, hf-1.0/3) * rgbMax)),
	}
}

// ApplyTint adjusts a 240-scale luminance: negative tint scales toward black,
// positive tint interpolates toward white. The asymmetry is format-defined.
func ApplyTint(tint float64, lum int) int {
	if tint < 0 {
		return clamp240(int(math.Round(float64(lum) * (1 + tint))))
	}
	return clamp240(int(math.Round(float64(lum)*(1-tint) + (hlsMax - hlsMax*(1-tint)))))
}

// RGBFromLong decodes a color packed as a long integer with blue in the high
// byte, as exposed by rendering-engine character probes.
func RGBFromLong(v int32) RGB {
	return RGB{
		R: uint8(v & 0xFF),
		G: uint8((v >> 8) & 0xFF),
		B: uint8((v >> 16) & 0xFF),
	}
}

func hlsValue(m1, m2, hue float64) float64 {
	hue = mod1(hue)
	switch {
	case hue < 1.0/6:
		return m1 + (m2-m1)*6*hue
	case hue < 0.5:
		return m2
	case hue < 2.0/3:
		return m1 + (m2-m1)*(2.0/3-hue)*6
	default:
		return m1
	}
}

func mod1(x float64) float64 {
	x = math.Mod(x, 1)
	if x < 0 {
		x++
	}
	return x
}

func round240(x float64) int {
	return clamp240(int(math.Round(x)))
}

func round255(x float64) int {
	n := int(math.Round(x))
	if n < 0 {
		return 0
	}
	if n > rgbMax {
		return rgbMax
	}
	return n
}

func clamp240(n int) int {
	if n < 0 {
		return 0
	}
	if n > hlsMax {
		return hlsMax
	}
	return n
}
