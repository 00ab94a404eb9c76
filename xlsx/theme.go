package xlsx

import (
	"github.com/pkg/errors"
	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/spreadsheet"

	"github.com/aerissecure/cellcolor"
)

// WorkbookTheme builds the 10-slot color scheme of a workbook. A workbook
// with no theme part gets the stock Office scheme. A theme part that exists
// but lacks its color scheme elements is a document-level problem and is
// returned as an error rather than papered over.
//
// Slot order is light1, dark1, light2, dark2, accent1 through accent6.
// Themes frequently alias light1/dark1 to system window colors; for those
// slots the recorded last-known color is used instead of the nominal value.
func WorkbookTheme(wb *spreadsheet.Workbook) (cellcolor.Theme, error) {
	themes := wb.Themes()
	if len(themes) == 0 || themes[0] == nil {
		return cellcolor.DefaultTheme, nil
	}
	if themes[0].ThemeElements == nil || themes[0].ThemeElements.ClrScheme == nil {
		return cellcolor.Theme{}, errors.New("workbook theme is missing its color scheme")
	}
	scheme := themes[0].ThemeElements.ClrScheme

	var theme cellcolor.Theme
	slots := [cellcolor.ThemeSlots]*dml.CT_Color{
		scheme.Lt1, scheme.Dk1, scheme.Lt2, scheme.Dk2,
		scheme.Accent1, scheme.Accent2, scheme.Accent3,
		scheme.Accent4, scheme.Accent5, scheme.Accent6,
	}
	for i, clr := range slots {
		theme[i] = schemeColorHex(clr)
	}
	return theme, nil
}

// schemeColorHex reads one scheme slot. System-color slots carry the nominal
// system value plus the color it last resolved to; the latter is what files
// actually rendered with, so it wins.
func schemeColorHex(clr *dml.CT_Color) string {
	if clr == nil {
		return "000000"
	}
	if clr.SysClr != nil && clr.SysClr.LastClrAttr != nil {
		return *clr.SysClr.LastClrAttr
	}
	if clr.SrgbClr != nil && clr.SrgbClr.ValAttr != "" {
		return clr.SrgbClr.ValAttr
	}
	return "000000"
}
