// Package preview renders the markdown dialect to styled HTML fragments for
// on-screen display. It is the unmeasured twin of the print layout: same
// classifier, same tokenizer, no widths, no pages.
package preview

import (
	"fmt"
	"html"
	"strings"

	"github.com/brayfield/quill/markdown"
)

// Render converts markdown source to an HTML fragment. The output is a
// fragment, not a document: no <html> or <body> wrapper.
func Render(src string) string {
	var b strings.Builder
	list := "" // open list element, "ul" or "ol"
	closeList := func() {
		if list != "" {
			fmt.Fprintf(&b, "</%s>\n", list)
			list = ""
		}
	}
	openList := func(tag string) {
		if list == tag {
			return
		}
		closeList()
		fmt.Fprintf(&b, "<%s>\n", tag)
		list = tag
	}

	for _, blk := range markdown.Classify(src) {
		switch blk.Kind {
		case markdown.BlockBlank:
			// blanks separate paragraphs but keep a list contiguous, the
			// same contract the print assembler honors for numbering
		case markdown.BlockRule:
			closeList()
			b.WriteString("<hr>\n")
		case markdown.BlockHeading:
			closeList()
			fmt.Fprintf(&b, "<h%d>%s</h%d>\n", blk.Level, inline(blk.Text), blk.Level)
		case markdown.BlockOrderedItem:
			openList("ol")
			fmt.Fprintf(&b, "<li>%s</li>\n", inline(blk.Text))
		case markdown.BlockUnorderedItem:
			openList("ul")
			fmt.Fprintf(&b, "<li>%s</li>\n", inline(blk.Text))
		default:
			closeList()
			fmt.Fprintf(&b, "<p>%s</p>\n", inline(blk.Text))
		}
	}
	closeList()
	return b.String()
}

func inline(text string) string {
	var b strings.Builder
	for _, seg := range markdown.Tokenize(text) {
		open, close := styleTags(seg.Style)
		if seg.Link != "" {
			fmt.Fprintf(&b, `<a href="%s">`, html.EscapeString(seg.Link))
		}
		b.WriteString(open)
		b.WriteString(html.EscapeString(seg.Text))
		b.WriteString(close)
		if seg.Link != "" {
			b.WriteString("</a>")
		}
	}
	return b.String()
}

func styleTags(st markdown.TextStyle) (string, string) {
	pre, post := "", ""
	wrap := func(tag string) {
		pre += "<" + tag + ">"
		post = "</" + tag + ">" + post // closers nest in reverse order
	}
	if st.Bold {
		wrap("strong")
	}
	if st.Italic {
		wrap("em")
	}
	if st.Strike {
		wrap("del")
	}
	if st.Code {
		wrap("code")
	}
	return pre, post
}
