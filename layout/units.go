package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// The document unit is millimeters. Font systems speak points; conversion
// happens once at the surface boundary.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

const defaultLineSpacing = 1.4

// Margin in mm.
type Margin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// ParseLength converts a length literal ("12pt", "5mm", "1cm", "0.5in",
// bare numbers are mm) to millimeters. Unparseable input yields 0.
func ParseLength(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	unit := ""
	for _, suffix := range []string{"mm", "cm", "in", "pt"} {
		if strings.HasSuffix(value, suffix) {
			unit = suffix
			break
		}
	}
	num := strings.TrimSuffix(value, unit)
	val, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0
	}
	switch unit {
	case "cm":
		return val * 10
	case "in":
		return val * 25.4
	case "pt":
		return val * PtToMm
	default:
		return val
	}
}

// ParseMargin applies shorthand semantics to a space-separated list of
// lengths:
//
//	1 value:  all four sides
//	2 values: top/bottom, left/right
//	3 values: top, right, bottom (left = 0)
//	4+ values: top, right, bottom, left (extras ignored)
func ParseMargin(value string) Margin {
	margin := Margin{Top: 20, Right: 20, Bottom: 20, Left: 20}
	vals := []float64{}
	for _, field := range strings.Fields(value) {
		if len(vals) == 4 {
			break
		}
		vals = append(vals, ParseLength(field))
	}
	switch len(vals) {
	case 1:
		v := vals[0]
		margin = Margin{Top: v, Right: v, Bottom: v, Left: v}
	case 2:
		margin = Margin{Top: vals[0], Right: vals[1], Bottom: vals[0], Left: vals[1]}
	case 3:
		margin = Margin{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: 0}
	case 4:
		margin = Margin{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}
	}
	return margin
}

var pagePresets = map[string][2]float64{
	"A4":     {210, 297},
	"A5":     {148, 210},
	"LETTER": {215.9, 279.4},
}

// PageSize resolves a paper preset to width and height in mm.
func PageSize(name string, landscape bool) (float64, float64, error) {
	base, ok := pagePresets[strings.ToUpper(name)]
	if !ok {
		return 0, 0, fmt.Errorf("unsupported page size %q", name)
	}
	w, h := base[0], base[1]
	if landscape {
		w, h = h, w
	}
	return w, h, nil
}
