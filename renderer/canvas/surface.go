// Package canvassurface implements the layout drawing surface on
// github.com/tdewolff/canvas, emitting multi-page PDF documents.
package canvassurface

import (
	"bytes"
	"fmt"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/brayfield/quill/layout"
)

const defaultStroke = 0.2

// Meta carries the PDF document information dictionary.
type Meta struct {
	Title    string
	Subject  string
	Keywords string
	Author   string
	Creator  string
}

// Surface draws text and rules onto PDF pages. It owns the active font
// face; SetStyle mutates it and everything after measures/draws with it,
// which is why a surface must be used by exactly one layout pass at a time.
//
// The Go font family is compiled in, so no font files are needed on disk.
// Faces are created in pt; every width and coordinate exchanged with the
// layout engine is mm.
type Surface struct {
	buf    bytes.Buffer
	writer *pdf.PDF
	c      *canvas.Canvas
	ctx    *canvas.Context
	family *canvas.FontFamily

	pageW float64
	pageH float64

	face   *canvas.FontFace
	bold   bool
	italic bool
	size   float64 // mm
}

var _ layout.Surface = (*Surface)(nil)

// New creates a surface with the given page size in mm.
func New(pageW, pageH float64, meta Meta) (*Surface, error) {
	family := canvas.NewFontFamily("quill")
	for _, f := range []struct {
		data  []byte
		style canvas.FontStyle
	}{
		{goregular.TTF, canvas.FontRegular},
		{gobold.TTF, canvas.FontBold},
		{goitalic.TTF, canvas.FontItalic},
		{gobolditalic.TTF, canvas.FontBold | canvas.FontItalic},
	} {
		if err := family.LoadFont(f.data, 0, f.style); err != nil {
			return nil, fmt.Errorf("load embedded font: %w", err)
		}
	}

	s := &Surface{family: family, pageW: pageW, pageH: pageH}
	s.writer = pdf.New(&s.buf, pageW, pageH, nil)
	s.writer.SetInfo(meta.Title, meta.Subject, meta.Keywords, meta.Author, meta.Creator)
	s.beginPage()
	return s, nil
}

func (s *Surface) beginPage() {
	s.c = canvas.New(s.pageW, s.pageH)
	s.ctx = canvas.NewContext(s.c)
	s.ctx.SetCoordSystem(canvas.CartesianIV) // top-left origin, like the layout engine
}

// SetStyle switches the active face. Redundant switches are cheap; the face
// is only rebuilt when something changed.
func (s *Surface) SetStyle(bold, italic bool, size float64) {
	if s.face != nil && s.bold == bold && s.italic == italic && s.size == size {
		return
	}
	style := canvas.FontRegular
	if bold {
		style |= canvas.FontBold
	}
	if italic {
		style |= canvas.FontItalic
	}
	s.bold, s.italic, s.size = bold, italic, size
	s.face = s.family.Face(size*layout.MmToPt, canvas.Black, style, canvas.FontNormal)
}

// TextWidth reports the width of text in mm under the active face.
func (s *Surface) TextWidth(text string) (float64, error) {
	if s.face == nil {
		return 0, fmt.Errorf("no active font face")
	}
	return s.face.TextWidth(text), nil
}

// DrawText places text with (x, y) at the top-left of the line box; the
// baseline sits one ascent below.
func (s *Surface) DrawText(text string, x, y float64) {
	if s.face == nil || text == "" {
		return
	}
	baseline := y + s.face.Metrics().Ascent
	s.ctx.DrawText(x, baseline, canvas.NewTextLine(s.face, text, canvas.Left))
}

func (s *Surface) DrawLine(x1, y1, x2, y2, width float64) {
	if width <= 0 {
		width = defaultStroke
	}
	s.ctx.SetStrokeColor(canvas.Black)
	s.ctx.SetStrokeWidth(width)
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(x2-x1, y2-y1)
	s.ctx.DrawPath(x1, y1, p)
}

// NewPage flushes the current page to the PDF writer and starts a blank one.
func (s *Surface) NewPage() {
	s.c.RenderTo(s.writer)
	s.writer.NewPage(s.pageW, s.pageH)
	s.beginPage()
}

// PageSize reports the page dimensions in mm.
func (s *Surface) PageSize() (float64, float64) { return s.pageW, s.pageH }

// Close flushes the final page and returns the finished PDF bytes. The
// surface must not be used afterwards.
func (s *Surface) Close() ([]byte, error) {
	s.c.RenderTo(s.writer)
	if err := s.writer.Close(); err != nil {
		return nil, fmt.Errorf("write PDF: %w", err)
	}
	return s.buf.Bytes(), nil
}
