package xlsx

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"

	"github.com/aerissecure/cellcolor"
)

// ExtractWorkbook reads an XLSX from r/size and returns the colored segments
// of every non-empty cell, across all sheets, in sheet order.
func ExtractWorkbook(r io.ReaderAt, size int64) ([]cellcolor.Cell, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return nil, errors.Wrap(err, "read workbook")
	}
	theme, err := WorkbookTheme(wb)
	if err != nil {
		return nil, err
	}

	var cells []cellcolor.Cell
	for _, sheet := range wb.Sheets() {
		cells = append(cells, ExtractSheet(wb, sheet, theme)...)
	}
	return cells, nil
}

// ExtractSheet visits every cell of one sheet and returns the non-empty ones
// with their segments. Cell references are built the usual way ("A1").
func ExtractSheet(wb *spreadsheet.Workbook, sheet spreadsheet.Sheet, theme cellcolor.Theme) []cellcolor.Cell {
	var cells []cellcolor.Cell
	for _, row := range sheet.Rows() {
		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil {
				continue
			}
			ref := fmt.Sprintf("%s%d", colName, row.RowNumber())
			c := extractCell(wb, theme, cell, ref)
			if len(c.Segments) == 0 {
				continue
			}
			cells = append(cells, c)
		}
	}
	return cells
}

// extractCell resolves one cell into segments. The cell-level font color is
// resolved once, with black as the final fallback, and serves as the default
// for any run that does not carry its own color.
func extractCell(wb *spreadsheet.Workbook, theme cellcolor.Theme, cell spreadsheet.Cell, ref string) cellcolor.Cell {
	defColor, defIsDefault := cellcolor.Resolve(CellFontColor(wb.StyleSheet, cell), theme, cellcolor.RGB{})

	var atoms []cellcolor.Atom
	if rst := richText(wb, cell); rst != nil {
		atoms = runAtoms(rst, theme, defColor, defIsDefault)
	} else if text := cell.GetFormattedValue(); text != "" {
		atoms = []cellcolor.Atom{{Text: text, Color: defColor, IsDefault: defIsDefault}}
	}

	return cellcolor.Cell{Ref: ref, Segments: cellcolor.RunSegmenter{}.Segment(atoms)}
}

// runAtoms flattens a string item into colored atoms: an optional leading
// plain chunk, then one atom per run. Plain chunks and runs without a color
// inherit the cell default; run boundaries are preserved as-is, so the run
// segmenter will not merge equal-colored neighbors.
func runAtoms(rst *sml.CT_Rst, theme cellcolor.Theme, defColor cellcolor.RGB, defIsDefault bool) []cellcolor.Atom {
	var atoms []cellcolor.Atom
	if rst.T != nil && *rst.T != "" {
		atoms = append(atoms, cellcolor.Atom{Text: *rst.T, Color: defColor, IsDefault: defIsDefault})
	}
	for _, r := range rst.R {
		if r == nil {
			continue
		}
		var fc cellcolor.FontColor
		if r.RPr != nil {
			fc = FontColorFromXML(r.RPr.Color)
		}
		color, isDefault := cellcolor.Resolve(fc, theme, defColor)
		atoms = append(atoms, cellcolor.Atom{Text: r.T, Color: color, IsDefault: isDefault})
	}
	return atoms
}

// richText returns the cell's string item when the cell holds one, either
// via the shared string table or inline. Non-string cells return nil.
func richText(wb *spreadsheet.Workbook, cell spreadsheet.Cell) *sml.CT_Rst {
	x := cell.X()
	switch x.TAttr {
	case sml.ST_CellTypeS:
		if x.V == nil {
			return nil
		}
		idx, err := strconv.Atoi(*x.V)
		if err != nil {
			return nil
		}
		sst := wb.SharedStrings.X()
		if sst == nil || idx < 0 || idx >= len(sst.Si) {
			return nil
		}
		return sst.Si[idx]
	case sml.ST_CellTypeInlineStr:
		return x.Is
	}
	return nil
}
