// Package cellcolor resolves the effective display color of spreadsheet cell
// text and partitions each cell into runs of uniform color.
//
// Two input shapes feed the same output model: structured rich-text runs from
// a workbook's style metadata (see the xlsx subpackage) and per-character
// color probes of a rendered document (ScanString). Both produce an ordered
// list of Segments per cell.
//
// All colors are 8-bit-per-channel sRGB. Hex strings are 6 uppercase digits
// without a leading "#" (e.g. "FF0000" for red), matching the conventions of
// the underlying file format once the alpha byte is stripped.
package cellcolor

import (
	"fmt"
	"strings"
)

// RGB is an 8-bit-per-channel sRGB color.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Hex returns the color as a 6-digit uppercase hex string, e.g. "4F81BD".
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// Segment is a maximal run of cell text that shares one resolved color.
// IsDefault is true when the color came from the inherited fallback rather
// than an explicit color definition on the run/character itself.
type Segment struct {
	Color     RGB
	Text      string
	IsDefault bool
}

// IsBlack reports whether the segment color is black, with some leeway
// (up to 30 in each channel).
func (s Segment) IsBlack() bool {
	return s.Color.R <= 30 && s.Color.G <= 30 && s.Color.B <= 30
}

// IsRed reports whether the segment color is red, with some leeway.
func (s Segment) IsRed() bool {
	return s.Color.R > 200 && s.Color.G < 80 && s.Color.B < 80
}

// IsBlue reports whether the segment color is blue, with some leeway.
func (s Segment) IsBlue() bool {
	return s.Color.B > 200 && s.Color.R < 80 && s.Color.G < 80
}

func (s Segment) String() string {
	return fmt.Sprintf("Color: %s, Text: %q, IsDefault: %t", s.Color.Hex(), s.Text, s.IsDefault)
}

// Cell holds the colored segments of one spreadsheet cell. An empty Segments
// slice means the cell was empty. Segments concatenated in order reproduce
// the cell's text exactly.
type Cell struct {
	Ref      string // e.g. "A1"
	Segments []Segment
}

// Text returns the full cell text, i.e. the segment texts joined in order.
func (c Cell) Text() string {
	var b strings.Builder
	for _, s := range c.Segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

func (c Cell) String() string {
	return fmt.Sprintf("Ref: %s, Segments: %d", c.Ref, len(c.Segments))
}
