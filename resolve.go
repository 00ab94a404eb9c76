package cellcolor

// FontColor describes how a font specifies its color: a direct RGB value, a
// theme slot with tint, a legacy palette index, or nothing at all. It is a
// tagged value with exactly one meaningful variant; the zero value is Unset.
//
// The file format may populate several color fields on one font for
// compatibility. Mapping code picks the winner there (direct RGB first, then
// theme, then indexed), so by the time a FontColor exists the precedence
// decision has already been made and cannot be re-ordered here.
type FontColor struct {
	kind    colorKind
	hex     string
	theme   int
	tint    float64
	indexed int
}

type colorKind int

const (
	kindUnset colorKind = iota
	kindDirect
	kindTheme
	kindIndexed
)

// Direct returns a FontColor carrying an explicit hex value. An alpha prefix,
// if present, is tolerated and stripped at resolution time.
func Direct(hex string) FontColor {
	return FontColor{kind: kindDirect, hex: hex}
}

// ThemeTint returns a FontColor referencing a theme slot with a tint.
func ThemeTint(index int, tint float64) FontColor {
	return FontColor{kind: kindTheme, theme: index, tint: tint}
}

// Indexed returns a FontColor referencing a legacy palette slot.
func Indexed(index int) FontColor {
	return FontColor{kind: kindIndexed, indexed: index}
}

// IsSet reports whether any variant is populated.
func (fc FontColor) IsSet() bool {
	return fc.kind != kindUnset
}

// Resolve turns a FontColor into a concrete color. The returned bool is true
// when the fallback was used: an unset color, or an indexed reference outside
// the palette. Malformed input never produces an error, only the fallback.
func Resolve(fc FontColor, theme Theme, fallback RGB) (RGB, bool) {
	switch fc.kind {
	case kindDirect:
		return HexToRGB(StripAlpha(fc.hex)), false
	case kindTheme:
		return theme.Color(fc.theme, fc.tint), false
	case kindIndexed:
		if fc.indexed < 0 || fc.indexed >= len(IndexedColors) {
			return fallback, true
		}
		return HexToRGB(StripAlpha(IndexedColors[fc.indexed])), false
	default:
		return fallback, true
	}
}
