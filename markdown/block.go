package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

// BlockKind tags the structural variant a source line was classified as.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockOrderedItem
	BlockUnorderedItem
	BlockRule
	BlockBlank
)

// Block is one classified source line with its marker stripped. Inline
// styling of Text is a separate pass (Tokenize); the classifier never looks
// inside the content.
type Block struct {
	Kind BlockKind
	// Level is the heading level (1..6) or the list nesting level (1 for a
	// flat item).
	Level int
	// Number is the literal ordinal written in the source for ordered items.
	// Renderers keep their own counters; the source number is informational.
	Number int
	Text   string
}

var (
	headingPattern   = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	orderedPattern   = regexp.MustCompile(`^(\s*)(\d+)\.\s+(.*)$`)
	unorderedPattern = regexp.MustCompile(`^(\s*)[-*]\s+(.*)$`)
	rulePattern      = regexp.MustCompile(`^\s*-{3,}\s*$`)
)

// Classify splits markdown source into tagged blocks. Runs of blank lines
// collapse into a single Blank block, and leading/trailing blanks are
// dropped, so a blank advances layout by exactly one line height and never
// compounds.
func Classify(src string) []Block {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	var out []Block
	for _, line := range strings.Split(src, "\n") {
		switch {
		case strings.TrimSpace(line) == "":
			if len(out) == 0 || out[len(out)-1].Kind == BlockBlank {
				continue
			}
			out = append(out, Block{Kind: BlockBlank})
		case rulePattern.MatchString(line):
			out = append(out, Block{Kind: BlockRule})
		case headingPattern.MatchString(line):
			m := headingPattern.FindStringSubmatch(line)
			out = append(out, Block{Kind: BlockHeading, Level: len(m[1]), Text: m[2]})
		case orderedPattern.MatchString(line):
			m := orderedPattern.FindStringSubmatch(line)
			n, _ := strconv.Atoi(m[2])
			out = append(out, Block{
				Kind:   BlockOrderedItem,
				Level:  listLevel(m[1]),
				Number: n,
				Text:   m[3],
			})
		case unorderedPattern.MatchString(line):
			m := unorderedPattern.FindStringSubmatch(line)
			out = append(out, Block{Kind: BlockUnorderedItem, Level: listLevel(m[1]), Text: m[2]})
		default:
			out = append(out, Block{Kind: BlockParagraph, Text: line})
		}
	}
	for len(out) > 0 && out[len(out)-1].Kind == BlockBlank {
		out = out[:len(out)-1]
	}
	return out
}

// listLevel derives a nesting level from the marker's leading indentation.
// Nested lists are not supported by the dialect; indented items still get a
// consistent non-zero level so indentation stays monotonic.
func listLevel(indent string) int {
	return 1 + len(indent)/2
}
