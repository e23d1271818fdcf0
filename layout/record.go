package layout

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Op is one recorded draw instruction.
type Op struct {
	Kind   string  `json:"kind"` // "text", "line" or "page"
	Page   int     `json:"page"`
	Text   string  `json:"text,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	X2     float64 `json:"x2,omitempty"`
	Y2     float64 `json:"y2,omitempty"`
	Stroke float64 `json:"stroke,omitempty"`
	Size   float64 `json:"size,omitempty"`
	Bold   bool    `json:"bold,omitempty"`
	Italic bool    `json:"italic,omitempty"`
}

// Recorder is a Surface with fixed-advance metrics: every terminal cell
// (per go-runewidth) is advance×size wide, independent of style. That keeps
// layout traces deterministic without any font machinery, which is exactly
// what the debug JSON output and the test suite need.
type Recorder struct {
	ops     []Op
	pageW   float64
	pageH   float64
	advance float64
	page    int

	bold   bool
	italic bool
	size   float64

	// fail forces TextWidth errors, simulating a degenerate font state.
	fail bool
}

var _ Surface = (*Recorder)(nil)

// NewRecorder creates a recording surface with the given page size in mm.
func NewRecorder(pageW, pageH float64) *Recorder {
	return &Recorder{pageW: pageW, pageH: pageH, advance: 0.5, page: 1}
}

// Ops returns the instructions recorded so far, in draw order.
func (r *Recorder) Ops() []Op { return r.ops }

func (r *Recorder) SetStyle(bold, italic bool, size float64) {
	r.bold, r.italic, r.size = bold, italic, size
}

func (r *Recorder) TextWidth(s string) (float64, error) {
	if r.fail {
		return 0, fmt.Errorf("degenerate font state")
	}
	return float64(runewidth.StringWidth(s)) * r.size * r.advance, nil
}

func (r *Recorder) DrawText(s string, x, y float64) {
	r.ops = append(r.ops, Op{
		Kind: "text", Page: r.page, Text: s,
		X: x, Y: y, Size: r.size, Bold: r.bold, Italic: r.italic,
	})
}

func (r *Recorder) DrawLine(x1, y1, x2, y2, width float64) {
	r.ops = append(r.ops, Op{
		Kind: "line", Page: r.page,
		X: x1, Y: y1, X2: x2, Y2: y2, Stroke: width,
	})
}

func (r *Recorder) NewPage() {
	r.page++
	r.ops = append(r.ops, Op{Kind: "page", Page: r.page})
}

func (r *Recorder) PageSize() (float64, float64) { return r.pageW, r.pageH }
