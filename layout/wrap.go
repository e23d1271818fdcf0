package layout

import (
	"strings"

	"github.com/brayfield/quill/markdown"
)

// Line is one visually wrapped row. Width is the measured width including
// interior spaces; Gaps counts the stretchable inter-word boundaries a
// justified renderer may widen.
type Line struct {
	Segments []markdown.Segment
	Width    float64
	Gaps     int
	// Forced marks a sub-word fragment produced by splitting a word that
	// alone exceeded the available width. Forced lines are exempt from the
	// width bound and never justified.
	Forced bool
}

// Text reconstructs the visible text of the line.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l.Segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

// word is a single space-free run with its measured width. The space before
// a word carries the word's own style.
type word struct {
	seg   markdown.Segment
	width float64
}

// wrap greedily packs styled segments into lines no wider than the
// effective width (MaxWidth minus indentation). Words of identical style
// merge into one segment with interior spaces; that changes draw-call
// granularity, never visual spacing. A word wider than the effective width
// is split rune by rune, each fragment consuming at least one rune, so
// wrapping always terminates.
func wrap(ctx *Context, segs []markdown.Segment, opts Options) ([]Line, error) {
	effective := opts.MaxWidth - opts.indent()
	if effective <= 0 {
		// degenerate indent; leave room for roughly one glyph per line
		effective = opts.FontSize
	}

	words, err := splitWords(ctx, segs, opts.FontSize)
	if err != nil {
		return nil, err
	}

	var lines []Line
	lb := lineBuilder{}
	flush := func() {
		if len(lb.segs) == 0 {
			return
		}
		lines = append(lines, Line{Segments: lb.segs, Width: lb.width, Gaps: lb.gaps})
		lb = lineBuilder{}
	}

	for _, w := range words {
		if w.width > effective {
			flush()
			frags, err := splitWord(ctx, w.seg, opts.FontSize, effective)
			if err != nil {
				return nil, err
			}
			for i, f := range frags {
				// a single rune can still exceed the limit; it goes out as
				// its own forced line rather than looping
				if i < len(frags)-1 || f.width > effective {
					lines = append(lines, Line{
						Segments: []markdown.Segment{f.seg},
						Width:    f.width,
						Forced:   true,
					})
					continue
				}
				// the last fragment opens the next line
				lb.append(f, 0)
			}
			continue
		}

		spaceW := 0.0
		if len(lb.segs) > 0 {
			spaceW, err = ctx.Measure(" ", w.seg.Style, opts.FontSize)
			if err != nil {
				return nil, err
			}
			if lb.width+spaceW+w.width > effective {
				flush()
				spaceW = 0
			}
		}
		lb.append(w, spaceW)
	}
	flush()
	return lines, nil
}

type lineBuilder struct {
	segs  []markdown.Segment
	width float64
	gaps  int
}

func (lb *lineBuilder) append(w word, spaceW float64) {
	if len(lb.segs) == 0 {
		lb.segs = append(lb.segs, w.seg)
		lb.width += w.width
		return
	}
	last := &lb.segs[len(lb.segs)-1]
	if last.Style == w.seg.Style && last.Link == w.seg.Link {
		last.Text += " " + w.seg.Text
	} else {
		seg := w.seg
		seg.Text = " " + seg.Text
		lb.segs = append(lb.segs, seg)
	}
	lb.width += spaceW + w.width
	lb.gaps++
}

// splitWords breaks segments into measured words on single spaces. Empty
// segments and runs of spaces contribute nothing.
func splitWords(ctx *Context, segs []markdown.Segment, size float64) ([]word, error) {
	var words []word
	for _, seg := range segs {
		if seg.Text == "" {
			continue
		}
		for _, part := range strings.Split(seg.Text, " ") {
			if part == "" {
				continue
			}
			ws := seg
			ws.Text = part
			w, err := ctx.Measure(part, ws.Style, size)
			if err != nil {
				return nil, err
			}
			words = append(words, word{seg: ws, width: w})
		}
	}
	return words, nil
}

// splitWord cuts an oversized word into fragments that each fit limit. A
// single rune wider than limit still gets its own fragment rather than
// looping.
func splitWord(ctx *Context, seg markdown.Segment, size, limit float64) ([]word, error) {
	var frags []word
	var b strings.Builder
	cur := 0.0
	emit := func() {
		if b.Len() == 0 {
			return
		}
		fs := seg
		fs.Text = b.String()
		frags = append(frags, word{seg: fs, width: cur})
		b.Reset()
		cur = 0
	}
	for _, r := range seg.Text {
		rw, err := ctx.Measure(string(r), seg.Style, size)
		if err != nil {
			return nil, err
		}
		if b.Len() > 0 && cur+rw > limit {
			emit()
		}
		b.WriteRune(r)
		cur += rw
	}
	emit()
	return frags, nil
}
