// Package xlsx extracts colored text segments from XLSX workbooks. It maps
// the format's font color metadata (direct ARGB, theme slot plus tint, or
// legacy palette index) onto the cellcolor resolution core and emits one
// cellcolor.Cell per non-empty cell.
package xlsx

import (
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"

	"github.com/aerissecure/cellcolor"
)

// GetFontProps extracts the underlying font XML struct for a style ID.
func GetFontProps(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Font {
	if int(styleID) < 0 || int(styleID) >= len(ss.X().CellXfs.Xf) {
		return nil
	}
	xf := ss.X().CellXfs.Xf[styleID]
	if xf.FontIdAttr == nil {
		return nil
	}
	fontIdx := int(*xf.FontIdAttr)
	if fontIdx < 0 || fontIdx >= len(ss.X().Fonts.Font) {
		return nil
	}
	return ss.X().Fonts.Font[fontIdx]
}

// FontColorFromXML maps a spreadsheetml color element to a FontColor. The
// format may populate several fields on one element for compatibility; the
// first set field wins, checked in the order direct RGB, theme, indexed.
// A nil element or one with no recognized field maps to the unset color.
func FontColorFromXML(c *sml.CT_Color) cellcolor.FontColor {
	if c == nil {
		return cellcolor.FontColor{}
	}
	if c.RgbAttr != nil && *c.RgbAttr != "" {
		return cellcolor.Direct(*c.RgbAttr)
	}
	if c.ThemeAttr != nil {
		tint := 0.0
		if c.TintAttr != nil {
			tint = *c.TintAttr
		}
		return cellcolor.ThemeTint(int(*c.ThemeAttr), tint)
	}
	if c.IndexedAttr != nil {
		return cellcolor.Indexed(int(*c.IndexedAttr))
	}
	return cellcolor.FontColor{}
}

// CellFontColor returns the color descriptor of a cell-level font, or the
// unset color when the cell has no style, no font, or a colorless font.
func CellFontColor(ss spreadsheet.StyleSheet, cell spreadsheet.Cell) cellcolor.FontColor {
	if cell.X().SAttr == nil {
		return cellcolor.FontColor{}
	}
	font := GetFontProps(ss, *cell.X().SAttr)
	if font == nil || len(font.Color) == 0 {
		return cellcolor.FontColor{}
	}
	return FontColorFromXML(font.Color[0])
}
