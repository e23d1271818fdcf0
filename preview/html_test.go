package preview

import (
	"strings"
	"testing"
)

func TestRenderBlocks(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "heading and paragraph",
			src:  "# Title\n\nbody text",
			want: "<h1>Title</h1>\n<p>body text</p>\n",
		},
		{
			name: "inline styles",
			src:  "mix **b** *i* `c` ~~s~~",
			want: "<p>mix <strong>b</strong> <em>i</em> <code>c</code> <del>s</del></p>\n",
		},
		{
			name: "nested emphasis closes in reverse order",
			src:  "***both***",
			want: "<p><strong><em>both</em></strong></p>\n",
		},
		{
			name: "rule",
			src:  "---",
			want: "<hr>\n",
		},
		{
			name: "unordered list",
			src:  "- one\n- two",
			want: "<ul>\n<li>one</li>\n<li>two</li>\n</ul>\n",
		},
		{
			name: "ordered list",
			src:  "1. one\n2. two",
			want: "<ol>\n<li>one</li>\n<li>two</li>\n</ol>\n",
		},
		{
			name: "list kind switch closes the open list",
			src:  "1. num\n- dot",
			want: "<ol>\n<li>num</li>\n</ol>\n<ul>\n<li>dot</li>\n</ul>\n",
		},
		{
			name: "blank keeps a list contiguous",
			src:  "1. one\n\n2. two",
			want: "<ol>\n<li>one</li>\n<li>two</li>\n</ol>\n",
		},
		{
			name: "paragraph after list closes it",
			src:  "- item\ntail",
			want: "<ul>\n<li>item</li>\n</ul>\n<p>tail</p>\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Render(tc.src); got != tc.want {
				t.Errorf("Render(%q) =\n%q\nwant\n%q", tc.src, got, tc.want)
			}
		})
	}
}

func TestRenderLink(t *testing.T) {
	got := Render("see [docs](https://e.com?a=1&b=2)")
	want := `<p>see <a href="https://e.com?a=1&amp;b=2">docs</a></p>` + "\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderEscapesHTML(t *testing.T) {
	got := Render("a <script> & \"quote\"")
	if strings.Contains(got, "<script>") {
		t.Fatal("raw markup leaked into the output")
	}
	if !strings.Contains(got, "&lt;script&gt;") || !strings.Contains(got, "&amp;") {
		t.Fatalf("entities missing from %q", got)
	}
}

func TestRenderMalformedMarkupStaysVisible(t *testing.T) {
	got := Render("**unterminated tail")
	if !strings.Contains(got, "unterminated tail") {
		t.Fatalf("trailing text dropped: %q", got)
	}
}

func TestRenderEmptySource(t *testing.T) {
	if got := Render(""); got != "" {
		t.Fatalf("Render(\"\") = %q, want empty", got)
	}
}
