package xlsx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/sml"

	"github.com/aerissecure/cellcolor"
)

func strp(s string) *string   { return &s }
func u32p(v uint32) *uint32   { return &v }
func f64p(v float64) *float64 { return &v }

func runElt(text string, color *sml.CT_Color) *sml.CT_RElt {
	r := &sml.CT_RElt{T: text}
	if color != nil {
		r.RPr = &sml.CT_RPrElt{Color: color}
	}
	return r
}

func TestFontColorFromXMLPrecedence(t *testing.T) {
	// Compatibility files populate several fields at once; direct RGB wins
	// over theme, theme over indexed.
	all := &sml.CT_Color{
		RgbAttr:     strp("FFFF0000"),
		ThemeAttr:   u32p(4),
		IndexedAttr: u32p(2),
	}
	got, isDefault := cellcolor.Resolve(FontColorFromXML(all), cellcolor.DefaultTheme, cellcolor.RGB{})
	if got != (cellcolor.RGB{R: 255}) || isDefault {
		t.Errorf("direct+theme+indexed resolved to %v, %t; want red, false", got, isDefault)
	}

	themed := &sml.CT_Color{ThemeAttr: u32p(4), IndexedAttr: u32p(2), TintAttr: f64p(0.6)}
	got, _ = cellcolor.Resolve(FontColorFromXML(themed), cellcolor.DefaultTheme, cellcolor.RGB{})
	if want := "B8CCE4"; got.Hex() != want {
		t.Errorf("theme+indexed resolved to %s, want %s", got.Hex(), want)
	}

	indexed := &sml.CT_Color{IndexedAttr: u32p(4)}
	got, _ = cellcolor.Resolve(FontColorFromXML(indexed), cellcolor.DefaultTheme, cellcolor.RGB{})
	if got != (cellcolor.RGB{B: 255}) {
		t.Errorf("indexed 4 resolved to %v, want blue", got)
	}
}

func TestFontColorFromXMLUnset(t *testing.T) {
	fallback := cellcolor.RGB{R: 1, G: 2, B: 3}
	for _, c := range []*sml.CT_Color{nil, {}, {RgbAttr: strp("")}} {
		got, isDefault := cellcolor.Resolve(FontColorFromXML(c), cellcolor.DefaultTheme, fallback)
		if got != fallback || !isDefault {
			t.Errorf("FontColorFromXML(%v) resolved to %v, %t; want fallback, true", c, got, isDefault)
		}
	}
}

func TestFontColorFromXMLThemeDefaultTint(t *testing.T) {
	// A theme reference with no tint attribute behaves as tint zero.
	c := &sml.CT_Color{ThemeAttr: u32p(4)}
	got, _ := cellcolor.Resolve(FontColorFromXML(c), cellcolor.DefaultTheme, cellcolor.RGB{})
	if want := cellcolor.DefaultTheme.Color(4, 0); got != want {
		t.Errorf("theme without tint resolved to %v, want %v", got, want)
	}
}

func TestRunAtoms(t *testing.T) {
	defColor := cellcolor.RGB{R: 0x11, G: 0x22, B: 0x33}
	rst := &sml.CT_Rst{
		T: strp("plain "),
		R: []*sml.CT_RElt{
			runElt("red", &sml.CT_Color{RgbAttr: strp("FFFF0000")}),
			runElt(" mid ", nil),
			// Run properties without a color element, e.g. a bold-only run.
			{RPr: &sml.CT_RPrElt{}, T: "bold"},
			runElt("accent", &sml.CT_Color{ThemeAttr: u32p(4), TintAttr: f64p(0.6)}),
		},
	}
	got := runAtoms(rst, cellcolor.DefaultTheme, defColor, true)
	want := []cellcolor.Atom{
		{Text: "plain ", Color: defColor, IsDefault: true},
		{Text: "red", Color: cellcolor.RGB{R: 255}},
		// Runs with no color fall back to the cell default, whether the
		// run properties are missing entirely or just colorless.
		{Text: " mid ", Color: defColor, IsDefault: true},
		{Text: "bold", Color: defColor, IsDefault: true},
		{Text: "accent", Color: cellcolor.HexToRGB("B8CCE4")},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("atoms mismatch (-want +got):\n%s", diff)
	}
}

func TestRunAtomsSegmentsReproduceText(t *testing.T) {
	red := &sml.CT_Color{RgbAttr: strp("FFFF0000")}
	rst := &sml.CT_Rst{
		R: []*sml.CT_RElt{
			runElt("one", red),
			runElt("two", red),
			runElt("three", nil),
		},
	}
	atoms := runAtoms(rst, cellcolor.DefaultTheme, cellcolor.RGB{}, true)
	segs := cellcolor.RunSegmenter{}.Segment(atoms)
	// Equal-colored adjacent runs stay separate.
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3: %v", len(segs), segs)
	}
	var joined string
	for _, s := range segs {
		joined += s.Text
	}
	if joined != "onetwothree" {
		t.Errorf("joined text = %q", joined)
	}
}

func TestSchemeColorHex(t *testing.T) {
	tests := []struct {
		name string
		clr  *dml.CT_Color
		want string
	}{
		{"nil slot", nil, "000000"},
		{"srgb", &dml.CT_Color{SrgbClr: &dml.CT_SRgbColor{ValAttr: "1F497D"}}, "1F497D"},
		{
			// Window-aliased slots report the color they last resolved to.
			"system override",
			&dml.CT_Color{
				SysClr:  &dml.CT_SystemColor{LastClrAttr: strp("FFFFFF")},
				SrgbClr: &dml.CT_SRgbColor{ValAttr: "ABCDEF"},
			},
			"FFFFFF",
		},
		{"empty", &dml.CT_Color{}, "000000"},
	}
	for _, tt := range tests {
		if got := schemeColorHex(tt.clr); got != tt.want {
			t.Errorf("%s: schemeColorHex = %q, want %q", tt.name, got, tt.want)
		}
	}
}
