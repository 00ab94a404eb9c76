package cellcolor

// IndexedColors is the fixed legacy palette, as ARGB hex strings indexed
// 0-63. Legacy files reference these slots directly, so the values must be
// kept bit for bit. Lookups do no validation; callers bounds-check and fall
// back on out-of-range indices.
var IndexedColors = [64]string{
	"00000000", "00FFFFFF", "00FF0000", "0000FF00", "000000FF",
	"00FFFF00", "00FF00FF", "0000FFFF", "00000000", "00FFFFFF",
	"00FF0000", "0000FF00", "000000FF", "00FFFF00", "00FF00FF",
	"0000FFFF", "00800000", "00008000", "00000080", "00808000",
	"00800080", "00008080", "00C0C0C0", "00808080", "009999FF",
	"00993366", "00FFFFCC", "00CCFFFF", "00660066", "00FF8080",
	"000066CC", "00CCCCFF", "00000080", "00FF00FF", "00FFFF00",
	"0000FFFF", "00800080", "00800000", "00008080", "000000FF",
	"0000CCFF", "00CCFFFF", "00CCFFCC", "00FFFF99", "0099CCFF",
	"00FF99CC", "00CC99FF", "00FFCC99", "003366FF", "0033CCCC",
	"0099CC00", "00FFCC00", "00FF9900", "00FF6600", "00666699",
	"00969696", "00003366", "00339966", "00003300", "00333300",
	"00993300", "00993366", "00333399", "00333333",
}

// ThemeSlots is the number of color-scheme slots in a workbook theme.
const ThemeSlots = 10

// Theme is a workbook's color scheme: ten RGB hex strings in the fixed slot
// order light1, dark1, light2, dark2, accent1 through accent6.
type Theme [ThemeSlots]string

// DefaultTheme is the stock Office color scheme, substituted when a workbook
// carries no theme part.
var DefaultTheme = Theme{
	"FFFFFF", "000000", "EEECE1", "1F497D", "4F81BD",
	"C0504D", "9BBB59", "8064A2", "4BACC6", "F79646",
}

// Color resolves a theme slot with a tint applied: look up the slot's hex,
// convert to HLS, tint the luminance only, and convert back. An out-of-range
// index yields black rather than an error.
func (t Theme) Color(index int, tint float64) RGB {
	if index < 0 || index >= len(t) {
		return RGB{}
	}
	h, l, s := RGBToHLS(HexToRGB(t[index]))
	return HLSToRGB(h, ApplyTint(tint, l), s)
}
