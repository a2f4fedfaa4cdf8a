package domain

import "strings"

// Style is an opaque style token attached to a segment. The core never
// interprets it; the display layer resolves it to terminal attributes.
type Style string

// StyleNone is the neutral default used when no style group is in scope.
const StyleNone Style = ""

// Segment is the atomic unit of rendered prompt output: a run of text and
// the style token it should be painted with.
type Segment struct {
	Text  string
	Style Style
}

// PlainText concatenates the text of all segments, dropping styles.
func PlainText(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}
