package blog

import (
	"regexp"
	"strings"
)

// Heading is a single H2/H3 entry in a post's table of contents. ID is
// unique within one document's heading list.
type Heading struct {
	Level int
	Text  string
	ID    string
}

var (
	headingRe     = regexp.MustCompile(`(?m)^(#{2,3})\s+(.+)$`)
	boldRe        = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe      = regexp.MustCompile(`\*(.+?)\*`)
	underBoldRe   = regexp.MustCompile(`__(.+?)__`)
	underItalicRe = regexp.MustCompile(`_(.+?)_`)
)

// stripEmphasis removes one level of inline emphasis markup from heading
// text while keeping the inner text.
func stripEmphasis(text string) string {
	text = strings.TrimSpace(text)
	text = boldRe.ReplaceAllString(text, "$1")
	text = italicRe.ReplaceAllString(text, "$1")
	text = underBoldRe.ReplaceAllString(text, "$1")
	text = underItalicRe.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}

// ExtractHeadings scans a markdown body for level 2 and 3 headings in
// document order. Level 1 is the page title and is not extracted. The
// matcher is line-anchored regex over the raw source, so heading-shaped
// lines inside fenced code blocks are picked up too.
func ExtractHeadings(content string) []Heading {
	matches := headingRe.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	headings := make([]Heading, 0, len(matches))
	slugger := NewSlugger()
	for _, m := range matches {
		text := stripEmphasis(m[2])
		headings = append(headings, Heading{
			Level: len(m[1]),
			Text:  text,
			ID:    slugger.Slug(text),
		})
	}
	return headings
}
