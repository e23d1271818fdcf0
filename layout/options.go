package layout

import (
	"errors"
	"fmt"

	"github.com/brayfield/quill/markdown"
)

// Align selects horizontal placement of wrapped lines.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// ParseAlign maps a config string to an Align value; unknown values fall
// back to left.
func ParseAlign(v string) Align {
	switch v {
	case "center", "middle":
		return AlignCenter
	case "right", "end":
		return AlignRight
	case "justify":
		return AlignJustify
	default:
		return AlignLeft
	}
}

// Options configures one layout call. All lengths are mm.
type Options struct {
	MaxWidth    float64
	Align       Align
	FontSize    float64
	LineSpacing float64 // line height as a multiple of FontSize; 0 means 1.4
	IndentEm    float64 // indentation in font-size-relative units
}

func (o Options) lineHeight() float64 {
	s := o.LineSpacing
	if s <= 0 {
		s = defaultLineSpacing
	}
	return o.FontSize * s
}

// indent returns the absolute indentation in mm.
func (o Options) indent() float64 {
	return o.IndentEm * o.FontSize
}

// ErrMeasurement marks the one hard failure of a build: the surface cannot
// report a text width, so layout cannot proceed. Every other malformed
// input degrades to plausible plain text instead of failing.
var ErrMeasurement = errors.New("text measurement unavailable")

// Surface is the capability set the engine consumes from a rendering
// backend. Coordinates are mm with the origin at the top-left corner of the
// page; y grows downward and DrawText receives the top of the line box.
//
// Measurement must be deterministic and monotonic for a given style/text
// pair; beyond that the metric (kerning, rounding) is the surface's
// business.
type Surface interface {
	// SetStyle mutates the shared font state used by subsequent
	// measurement and draw calls.
	SetStyle(bold, italic bool, size float64)
	// TextWidth reports the width of s under the active style.
	TextWidth(s string) (float64, error)
	DrawText(s string, x, y float64)
	DrawLine(x1, y1, x2, y2, width float64)
	// NewPage finalizes the current page and starts a blank one.
	NewPage()
	// PageSize reports the page dimensions.
	PageSize() (w, h float64)
}

// Context threads a Surface through the wrap/render/paginate call chain and
// keeps the otherwise-ambient font state explicit. The surface is owned
// exclusively by one layout pass for its duration; nothing else may touch
// the active font while a build is running.
type Context struct {
	surf   Surface
	bold   bool
	italic bool
	size   float64
	fresh  bool // no style pushed to the surface yet
}

// NewContext wraps a surface for one document build.
func NewContext(s Surface) *Context {
	return &Context{surf: s, fresh: true}
}

func (c *Context) apply(st markdown.TextStyle, size float64) {
	if !c.fresh && c.bold == st.Bold && c.italic == st.Italic && c.size == size {
		return
	}
	c.bold, c.italic, c.size = st.Bold, st.Italic, size
	c.fresh = false
	c.surf.SetStyle(st.Bold, st.Italic, size)
}

// Measure returns the width of s rendered under st at the given font size.
func (c *Context) Measure(s string, st markdown.TextStyle, size float64) (float64, error) {
	c.apply(st, size)
	w, err := c.surf.TextWidth(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMeasurement, err)
	}
	return w, nil
}

func (c *Context) drawText(s string, st markdown.TextStyle, size, x, y float64) {
	c.apply(st, size)
	c.surf.DrawText(s, x, y)
}
