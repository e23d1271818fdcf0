package markdown

// ListKind identifies which list flavor a segment belongs to.
type ListKind int

const (
	ListNone ListKind = iota
	ListOrdered
	ListUnordered
)

// TextStyle is the style snapshot attached to one segment. Values are
// copied, never shared: a segment freezes the style that was active when
// it was closed, so later toggles cannot leak backwards.
type TextStyle struct {
	Bold      bool     `json:"bold,omitempty"`
	Italic    bool     `json:"italic,omitempty"`
	Code      bool     `json:"code,omitempty"`
	Strike    bool     `json:"strike,omitempty"`
	Underline bool     `json:"underline,omitempty"`
	Heading   int      `json:"heading,omitempty"` // 1..6, 0 when not a heading
	List      ListKind `json:"list,omitempty"`
	ListLevel int      `json:"listLevel,omitempty"`
	Indent    float64  `json:"indent,omitempty"` // em units
}

// Segment is a maximal run of text sharing one style. Segment text never
// contains the delimiter characters consumed during tokenization.
type Segment struct {
	Text  string    `json:"text"`
	Style TextStyle `json:"style"`
	// Link holds the destination URL for link segments. It only matters to
	// the HTML preview; the print layout renders the underline and ignores it.
	Link string `json:"link,omitempty"`
}
