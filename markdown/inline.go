package markdown

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// The inline dialect is deliberately small: paired delimiters toggle style
// flags, there is no nesting stack. Order matters in the rule table: the
// two-character markers must win over their one-character prefixes.
var inlineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Bold", Pattern: `\*\*|__`},
	{Name: "Strike", Pattern: `~~`},
	{Name: "Italic", Pattern: `[*_]`},
	{Name: "Code", Pattern: "`"},
	{Name: "LinkMid", Pattern: `\]\(`},
	{Name: "LBracket", Pattern: `\[`},
	{Name: "RBracket", Pattern: `\]`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Tilde", Pattern: `~`},
	{Name: "Text", Pattern: "[^*_~`\\[\\])]+"},
})

var (
	tokBold     = mustTokenType("Bold")
	tokStrike   = mustTokenType("Strike")
	tokItalic   = mustTokenType("Italic")
	tokCode     = mustTokenType("Code")
	tokLinkMid  = mustTokenType("LinkMid")
	tokLBracket = mustTokenType("LBracket")
	tokRBracket = mustTokenType("RBracket")
	tokRParen   = mustTokenType("RParen")
)

// Tokenize scans one logical line and returns its styled segments.
//
// Toggle semantics: `**`/`__` flip bold, `*`/`_` flip italic, `~~` flips
// strikethrough, a backtick flips code. `[text](url)` becomes an underlined
// link segment. Unterminated markers never fail: whatever text accumulated
// under the still-open style state is flushed at end of input, and a line
// that tokenizes to nothing visible is returned as literal text.
func Tokenize(line string) []Segment {
	if line == "" {
		return nil
	}
	toks, err := lexInline(line)
	if err != nil {
		// fail open: undecodable markup is literal text
		return []Segment{{Text: line}}
	}

	var (
		out []Segment
		buf strings.Builder
		cur TextStyle
	)
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		out = append(out, Segment{Text: buf.String(), Style: cur})
		buf.Reset()
	}

	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		switch tok.Type {
		case tokBold:
			flush()
			cur.Bold = !cur.Bold
		case tokItalic:
			flush()
			cur.Italic = !cur.Italic
		case tokStrike:
			flush()
			cur.Strike = !cur.Strike
		case tokCode:
			flush()
			cur.Code = !cur.Code
		case tokLBracket:
			text, url, next, ok := scanLink(toks, i)
			if !ok {
				buf.WriteString(tok.Value)
				continue
			}
			flush()
			style := cur
			style.Underline = true
			out = append(out, Segment{Text: text, Style: style, Link: url})
			i = next
		default:
			buf.WriteString(tok.Value)
		}
	}
	flush()

	if len(out) == 0 {
		// a line of nothing but delimiters reads back as literal text
		return []Segment{{Text: line}}
	}
	return out
}

// scanLink checks whether the tokens starting at the `[` at toks[start]
// complete a `[text](url)` form. next is the index of the closing `)`.
func scanLink(toks []lexer.Token, start int) (text, url string, next int, ok bool) {
	i := start + 1
	var tb strings.Builder
	for ; i < len(toks); i++ {
		t := toks[i]
		if t.Type == tokLinkMid {
			break
		}
		if t.Type == tokLBracket || t.Type == tokRBracket {
			return "", "", 0, false
		}
		tb.WriteString(t.Value)
	}
	if i >= len(toks) || tb.Len() == 0 {
		return "", "", 0, false
	}
	var ub strings.Builder
	for i++; i < len(toks); i++ {
		t := toks[i]
		if t.Type == tokRParen {
			return tb.String(), ub.String(), i, true
		}
		ub.WriteString(t.Value)
	}
	return "", "", 0, false
}

func lexInline(line string) ([]lexer.Token, error) {
	lx, err := inlineLexer.LexString("", line)
	if err != nil {
		return nil, err
	}
	toks, err := lexer.ConsumeAll(lx)
	if err != nil {
		return nil, err
	}
	if n := len(toks); n > 0 && toks[n-1].EOF() {
		toks = toks[:n-1]
	}
	return toks, nil
}

func mustTokenType(name string) lexer.TokenType {
	symbols := inlineLexer.Symbols()
	tt, ok := symbols[name]
	if !ok {
		panic(fmt.Sprintf("token %s not defined", name))
	}
	return tt
}
