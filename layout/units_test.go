package layout

import (
	"math"
	"testing"
)

func TestParseLength(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"5mm", 5},
		{"1.5cm", 15},
		{"0.5in", 12.7},
		{"12pt", 12 * PtToMm},
		{"7", 7},
		{"  3 mm ", 3},
		{"", 0},
		{"abc", 0},
		{"mm", 0},
	}
	for _, tc := range cases {
		if got := ParseLength(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("ParseLength(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseMarginShorthand(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Margin
	}{
		{"empty keeps defaults", "", Margin{Top: 20, Right: 20, Bottom: 20, Left: 20}},
		{"one value all sides", "5mm", Margin{Top: 5, Right: 5, Bottom: 5, Left: 5}},
		{"two values pair up", "10 5", Margin{Top: 10, Right: 5, Bottom: 10, Left: 5}},
		{"three values leave left zero", "1 2 3", Margin{Top: 1, Right: 2, Bottom: 3, Left: 0}},
		{"four values explicit", "1 2 3 4", Margin{Top: 1, Right: 2, Bottom: 3, Left: 4}},
		{"extras ignored", "1 2 3 4 5 6", Margin{Top: 1, Right: 2, Bottom: 3, Left: 4}},
		{"mixed units", "1cm 12pt", Margin{Top: 10, Right: 12 * PtToMm, Bottom: 10, Left: 12 * PtToMm}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseMargin(tc.in); got != tc.want {
				t.Errorf("ParseMargin(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestPageSize(t *testing.T) {
	w, h, err := PageSize("A4", false)
	if err != nil || w != 210 || h != 297 {
		t.Fatalf("A4 = %v×%v (%v), want 210×297", w, h, err)
	}
	w, h, err = PageSize("letter", true)
	if err != nil || w != 279.4 || h != 215.9 {
		t.Fatalf("letter landscape = %v×%v (%v), want 279.4×215.9", w, h, err)
	}
	if _, _, err := PageSize("B7", false); err == nil {
		t.Fatal("expected an error for an unknown preset")
	}
}

func TestParseAlign(t *testing.T) {
	cases := map[string]Align{
		"left":    AlignLeft,
		"center":  AlignCenter,
		"right":   AlignRight,
		"justify": AlignJustify,
		"":        AlignLeft,
		"bogus":   AlignLeft,
	}
	for in, want := range cases {
		if got := ParseAlign(in); got != want {
			t.Errorf("ParseAlign(%q) = %v, want %v", in, got, want)
		}
	}
}
