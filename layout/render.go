package layout

import (
	"strings"

	"github.com/brayfield/quill/markdown"
)

// Decoration rules hang off the baseline, which sits one font size below
// the top of the line box.
const (
	underlineOffset = 1.05
	strikeOffset    = 0.6
	decorationScale = 0.05
)

// renderLine draws one packed line at (x, y), y being the top of the line
// box. The vertical cursor is the pagination controller's business; this
// only paints.
//
// Justified placement applies only when the line is not the paragraph's
// last, has at least one stretchable gap and is not a forced fragment;
// anything else falls back to left placement, so there is never a division
// by zero gaps.
func renderLine(ctx *Context, line Line, x, y float64, opts Options, lastLine bool) error {
	if len(line.Segments) == 0 {
		return nil
	}
	avail := opts.MaxWidth - opts.indent()
	startX := x + opts.indent()
	switch opts.Align {
	case AlignCenter:
		startX += (avail - line.Width) / 2
	case AlignRight:
		startX += avail - line.Width
	case AlignJustify:
		if !lastLine && !line.Forced && line.Gaps > 0 {
			extra := (avail - line.Width) / float64(line.Gaps)
			return renderJustified(ctx, line, startX, y, opts, extra)
		}
	}

	pen := startX
	for _, seg := range line.Segments {
		w, err := ctx.Measure(seg.Text, seg.Style, opts.FontSize)
		if err != nil {
			return err
		}
		ctx.drawText(seg.Text, seg.Style, opts.FontSize, pen, y)
		drawDecorations(ctx, seg.Style, pen, y, w, opts.FontSize)
		pen += w
	}
	return nil
}

// renderJustified walks the line word by word, widening every inter-word
// gap by the same extra amount.
func renderJustified(ctx *Context, line Line, x, y float64, opts Options, extra float64) error {
	pen := x
	for _, seg := range line.Segments {
		boundary := strings.HasPrefix(seg.Text, " ")
		for i, text := range strings.Split(strings.TrimPrefix(seg.Text, " "), " ") {
			if text == "" {
				continue
			}
			if i > 0 || boundary {
				spaceW, err := ctx.Measure(" ", seg.Style, opts.FontSize)
				if err != nil {
					return err
				}
				pen += spaceW + extra
			}
			w, err := ctx.Measure(text, seg.Style, opts.FontSize)
			if err != nil {
				return err
			}
			ctx.drawText(text, seg.Style, opts.FontSize, pen, y)
			drawDecorations(ctx, seg.Style, pen, y, w, opts.FontSize)
			pen += w
		}
	}
	return nil
}

func drawDecorations(ctx *Context, st markdown.TextStyle, x, y, width, size float64) {
	if width <= 0 {
		return
	}
	stroke := size * decorationScale
	if st.Underline {
		ly := y + size*underlineOffset
		ctx.surf.DrawLine(x, ly, x+width, ly, stroke)
	}
	if st.Strike {
		ly := y + size*strikeOffset
		ctx.surf.DrawLine(x, ly, x+width, ly, stroke)
	}
}
