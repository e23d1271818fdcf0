package layout

import (
	"strconv"

	"github.com/brayfield/quill/binding"
	"github.com/brayfield/quill/markdown"
)

const (
	blockSpacing   = 3.0 // mm between blocks
	ruleStroke     = 0.2 // mm
	listIndentEm   = 1.5 // item body indentation per nesting level
	markerGutterEm = 1.2 // marker distance left of the item body
	bullet         = "•"

	headingBaseScale = 2.5
	headingLevelStep = 0.3
)

// Config describes the fixed geometry and furniture of one document build.
type Config struct {
	Margin      Margin
	BodySize    float64 // mm; 0 means 12pt
	LineSpacing float64 // 0 means 1.4
	Align       Align
	// Header and Footer are templates stamped inside the margin bands of
	// every page; ${page} interpolates to the current page number.
	Header string
	Footer string
	// OnPageBreak, when set, is called with the new page number after each
	// overflow break, before anything is drawn on the fresh page.
	OnPageBreak func(page int)
}

// Engine tracks the vertical write cursor across page boundaries for one
// document build. It is single-threaded by construction: draw and measure
// calls must reach the surface in strict document order, and the surface's
// font state is owned by the running build.
type Engine struct {
	ctx   *Context
	cfg   Config
	pageW float64
	pageH float64
	y     float64
	page  int
	// ordinal numbers the current contiguous run of ordered list items. It
	// survives blank lines and resets on any other block kind.
	ordinal int
}

// NewEngine prepares a build against the given surface. The cursor starts
// at the top margin of page one.
func NewEngine(surf Surface, cfg Config) *Engine {
	if cfg.BodySize <= 0 {
		cfg.BodySize = 12 * PtToMm
	}
	e := &Engine{ctx: NewContext(surf), cfg: cfg, page: 1}
	e.pageW, e.pageH = surf.PageSize()
	e.y = cfg.Margin.Top
	return e
}

// Page reports the current page number, starting at 1.
func (e *Engine) Page() int { return e.page }

func (e *Engine) contentWidth() float64 {
	return e.pageW - e.cfg.Margin.Left - e.cfg.Margin.Right
}

func (e *Engine) bodyOptions() Options {
	return Options{
		MaxWidth:    e.contentWidth(),
		Align:       e.cfg.Align,
		FontSize:    e.cfg.BodySize,
		LineSpacing: e.cfg.LineSpacing,
	}
}

// ensureSpace breaks the page when height more mm would cross into the
// bottom margin. The cursor only ever moves down within a page or resets to
// the top margin here.
func (e *Engine) ensureSpace(height float64) error {
	if e.y+height <= e.pageH-e.cfg.Margin.Bottom {
		return nil
	}
	return e.pageBreak()
}

func (e *Engine) pageBreak() error {
	e.ctx.surf.NewPage()
	e.page++
	e.y = e.cfg.Margin.Top
	if e.cfg.OnPageBreak != nil {
		e.cfg.OnPageBreak(e.page)
	}
	return e.stampFurniture()
}

// stampFurniture draws the header/footer templates into the margin bands of
// the current page.
func (e *Engine) stampFurniture() error {
	if e.cfg.Header == "" && e.cfg.Footer == "" {
		return nil
	}
	data := map[string]any{"page": e.page}
	size := e.cfg.BodySize * 0.85
	if e.cfg.Header != "" {
		y := (e.cfg.Margin.Top - size) / 2
		if err := e.stampCentered(binding.Interpolate(e.cfg.Header, data), y, size); err != nil {
			return err
		}
	}
	if e.cfg.Footer != "" {
		y := e.pageH - e.cfg.Margin.Bottom + (e.cfg.Margin.Bottom-size)/2
		if err := e.stampCentered(binding.Interpolate(e.cfg.Footer, data), y, size); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) stampCentered(text string, y, size float64) error {
	var st markdown.TextStyle
	w, err := e.ctx.Measure(text, st, size)
	if err != nil {
		return err
	}
	e.ctx.drawText(text, st, size, e.cfg.Margin.Left+(e.contentWidth()-w)/2, y)
	return nil
}

// Paragraph lays out one markdown-flavored text block starting at (x, y)
// and returns the vertical position after the last drawn line, including
// any page breaks triggered along the way. This is the primary entry point
// for callers doing their own document sequencing.
func (e *Engine) Paragraph(raw string, x, y float64, opts Options) (float64, error) {
	e.y = y
	if err := e.flowLines(x, markdown.Tokenize(raw), opts); err != nil {
		return 0, err
	}
	return e.y, nil
}

// flowLines wraps segments and paints each resulting line, breaking pages
// as needed and advancing the cursor one line height per line.
func (e *Engine) flowLines(x float64, segs []markdown.Segment, opts Options) error {
	lines, err := wrap(e.ctx, segs, opts)
	if err != nil {
		return err
	}
	lh := opts.lineHeight()
	for i, ln := range lines {
		if err := e.ensureSpace(lh); err != nil {
			return err
		}
		if err := renderLine(e.ctx, ln, x, e.y, opts, i == len(lines)-1); err != nil {
			return err
		}
		e.y += lh
	}
	return nil
}

// Document classifies the whole markdown source and lays out every block in
// order between the configured margins. The build either completes or the
// caller discards the in-progress document; there is no mid-layout
// cancellation.
func (e *Engine) Document(src string) error {
	if err := e.stampFurniture(); err != nil {
		return err
	}
	x := e.cfg.Margin.Left
	body := e.bodyOptions()
	for _, b := range markdown.Classify(src) {
		switch b.Kind {
		case markdown.BlockBlank:
			// one line-height advance, never compounding; the classifier
			// already collapsed runs. Blanks keep list numbering alive.
			e.y += body.lineHeight()
		case markdown.BlockRule:
			e.ordinal = 0
			if err := e.rule(x, body); err != nil {
				return err
			}
		case markdown.BlockHeading:
			e.ordinal = 0
			if err := e.heading(b, x, body); err != nil {
				return err
			}
		case markdown.BlockOrderedItem, markdown.BlockUnorderedItem:
			if err := e.listItem(b, x, body); err != nil {
				return err
			}
		default:
			e.ordinal = 0
			if err := e.flowLines(x, markdown.Tokenize(b.Text), body); err != nil {
				return err
			}
			e.y += blockSpacing
		}
	}
	return nil
}

func (e *Engine) heading(b markdown.Block, x float64, body Options) error {
	opts := body
	opts.FontSize = body.FontSize * (headingBaseScale - headingLevelStep*float64(b.Level))
	segs := markdown.Tokenize(b.Text)
	for i := range segs {
		segs[i].Style.Heading = b.Level
		segs[i].Style.Bold = true
	}
	if err := e.flowLines(x, segs, opts); err != nil {
		return err
	}
	e.y += blockSpacing
	return nil
}

func (e *Engine) listItem(b markdown.Block, x float64, body Options) error {
	level := b.Level
	if level < 1 {
		level = 1
	}
	kind := markdown.ListUnordered
	marker := bullet
	if b.Kind == markdown.BlockOrderedItem {
		kind = markdown.ListOrdered
		marker = strconv.Itoa(e.ordinal+1) + "."
	}

	opts := body
	opts.IndentEm = listIndentEm * float64(level)
	segs := markdown.Tokenize(b.Text)
	for i := range segs {
		segs[i].Style.List = kind
		segs[i].Style.ListLevel = level
		segs[i].Style.Indent = opts.IndentEm
	}

	lines, err := wrap(e.ctx, segs, opts)
	if err != nil {
		return err
	}
	lh := opts.lineHeight()
	for i, ln := range lines {
		if err := e.ensureSpace(lh); err != nil {
			return err
		}
		if i == 0 {
			// marker sits in the gutter left of the item body, on the same
			// page as the first wrapped line
			mx := x + opts.indent() - markerGutterEm*opts.FontSize
			e.ctx.drawText(marker, markdown.TextStyle{}, opts.FontSize, mx, e.y)
		}
		if err := renderLine(e.ctx, ln, x, e.y, opts, i == len(lines)-1); err != nil {
			return err
		}
		e.y += lh
	}
	// counters advance only on a successfully rendered ordered item
	if kind == markdown.ListOrdered {
		e.ordinal++
	} else {
		e.ordinal = 0
	}
	return nil
}

func (e *Engine) rule(x float64, body Options) error {
	lh := body.lineHeight()
	if err := e.ensureSpace(lh); err != nil {
		return err
	}
	y := e.y + lh/2
	e.ctx.surf.DrawLine(x, y, x+e.contentWidth(), y, ruleStroke)
	e.y += lh
	return nil
}
