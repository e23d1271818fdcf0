package markdown

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenizeStyledSegments(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []Segment
	}{
		{
			name: "bold and italic",
			line: "**Bold** and *italic* text",
			want: []Segment{
				{Text: "Bold", Style: TextStyle{Bold: true}},
				{Text: " and "},
				{Text: "italic", Style: TextStyle{Italic: true}},
				{Text: " text"},
			},
		},
		{
			name: "underscore variants",
			line: "__strong__ and _soft_",
			want: []Segment{
				{Text: "strong", Style: TextStyle{Bold: true}},
				{Text: " and "},
				{Text: "soft", Style: TextStyle{Italic: true}},
			},
		},
		{
			name: "code and strike",
			line: "run `go doc` on ~~old~~ new",
			want: []Segment{
				{Text: "run "},
				{Text: "go doc", Style: TextStyle{Code: true}},
				{Text: " on "},
				{Text: "old", Style: TextStyle{Strike: true}},
				{Text: " new"},
			},
		},
		{
			name: "plain text untouched",
			line: "nothing special here",
			want: []Segment{{Text: "nothing special here"}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.line)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Tokenize(%q) = %+v, want %+v", tc.line, got, tc.want)
			}
		})
	}
}

func TestTokenizeLinks(t *testing.T) {
	got := Tokenize("see [docs](https://example.com) now")
	want := []Segment{
		{Text: "see "},
		{Text: "docs", Style: TextStyle{Underline: true}, Link: "https://example.com"},
		{Text: " now"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("link segments = %+v, want %+v", got, want)
	}
}

func TestTokenizeLinkInsideEmphasis(t *testing.T) {
	got := Tokenize("*see [docs](u) here*")
	want := []Segment{
		{Text: "see ", Style: TextStyle{Italic: true}},
		{Text: "docs", Style: TextStyle{Italic: true, Underline: true}, Link: "u"},
		{Text: " here", Style: TextStyle{Italic: true}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("segments = %+v, want %+v", got, want)
	}
}

func TestTokenizeFailsOpen(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []Segment
	}{
		{
			name: "unterminated bold keeps trailing text",
			line: "start **bold tail",
			want: []Segment{
				{Text: "start "},
				{Text: "bold tail", Style: TextStyle{Bold: true}},
			},
		},
		{
			name: "unterminated italic",
			line: "*abc",
			want: []Segment{{Text: "abc", Style: TextStyle{Italic: true}}},
		},
		{
			name: "delimiters only read back literally",
			line: "***",
			want: []Segment{{Text: "***"}},
		},
		{
			name: "delimiter pair with no content is literal",
			line: "``",
			want: []Segment{{Text: "``"}},
		},
		{
			name: "unclosed link stays literal",
			line: "[docs](http",
			want: []Segment{{Text: "[docs](http"}},
		},
		{
			name: "bracket without link form stays literal",
			line: "array[3] access",
			want: []Segment{{Text: "array[3] access"}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.line)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Tokenize(%q) = %+v, want %+v", tc.line, got, tc.want)
			}
		})
	}
}

func TestTokenizeEmptyLine(t *testing.T) {
	if got := Tokenize(""); got != nil {
		t.Fatalf("Tokenize(\"\") = %+v, want nil", got)
	}
}

// Delimiters toggle flags without a nesting stack, so overlapping emphasis
// resolves positionally rather than rejecting the line.
func TestTokenizeOverlappingEmphasisToggles(t *testing.T) {
	got := Tokenize("*a **b* c**")
	want := []Segment{
		{Text: "a ", Style: TextStyle{Italic: true}},
		{Text: "b", Style: TextStyle{Bold: true, Italic: true}},
		{Text: " c", Style: TextStyle{Bold: true}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("segments = %+v, want %+v", got, want)
	}
}

// Concatenated segment text must equal the input minus its markup; the
// tokenizer never drops or reorders visible characters.
func TestTokenizeVisibleTextPreserved(t *testing.T) {
	lines := []string{
		"**Bold** and *italic* text",
		"plain with `code` and ~~gone~~",
		"mixed __b__ _i_ ends plain",
	}
	for _, line := range lines {
		var b strings.Builder
		for _, seg := range Tokenize(line) {
			b.WriteString(seg.Text)
		}
		stripped := strings.NewReplacer("**", "", "__", "", "*", "", "_", "", "`", "", "~~", "").Replace(line)
		if b.String() != stripped {
			t.Errorf("Tokenize(%q) visible text = %q, want %q", line, b.String(), stripped)
		}
	}
}
