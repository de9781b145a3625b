package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractHeadingsSkipsH1(t *testing.T) {
	src := "# Title\n\n## Intro\n\nbody\n\n### Details\n"

	headings := ExtractHeadings(src)

	assert.Len(t, headings, 2)
	assert.Equal(t, Heading{Level: 2, Text: "Intro", ID: "intro"}, headings[0])
	assert.Equal(t, Heading{Level: 3, Text: "Details", ID: "details"}, headings[1])
}

func TestExtractHeadingsSkipsH4AndDeeper(t *testing.T) {
	src := "## Keep\n\n#### Too Deep\n\n##### Deeper\n"

	headings := ExtractHeadings(src)

	assert.Len(t, headings, 1)
	assert.Equal(t, "Keep", headings[0].Text)
}

func TestExtractHeadingsStripsEmphasis(t *testing.T) {
	tests := []struct {
		line string
		text string
		id   string
	}{
		{"## **Getting** Started", "Getting Started", "getting-started"},
		{"## *Quick* Tour", "Quick Tour", "quick-tour"},
		{"## __Bold__ Claims", "Bold Claims", "bold-claims"},
		{"## _Subtle_ Detail", "Subtle Detail", "subtle-detail"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			headings := ExtractHeadings(tt.line + "\n")
			assert.Len(t, headings, 1)
			assert.Equal(t, tt.text, headings[0].Text)
			assert.Equal(t, tt.id, headings[0].ID)
		})
	}
}

func TestExtractHeadingsDeduplicatesIDs(t *testing.T) {
	src := "## Setup\n\n## Setup\n\n## Setup\n"

	headings := ExtractHeadings(src)

	ids := []string{headings[0].ID, headings[1].ID, headings[2].ID}
	assert.Equal(t, []string{"setup", "setup-1", "setup-2"}, ids)
}

func TestExtractHeadingsPreservesOrder(t *testing.T) {
	src := "## One\n\n### One A\n\n## Two\n\n### Two A\n"

	headings := ExtractHeadings(src)

	var texts []string
	for _, h := range headings {
		texts = append(texts, h.Text)
	}
	assert.Equal(t, []string{"One", "One A", "Two", "Two A"}, texts)
}

func TestExtractHeadingsEmptyInput(t *testing.T) {
	assert.Empty(t, ExtractHeadings(""))
	assert.Empty(t, ExtractHeadings("just a paragraph\n"))
}

func TestExtractHeadingsInsideCodeFence(t *testing.T) {
	// Line-based matching by contract: heading-shaped lines inside fenced
	// code blocks are extracted too.
	src := "```\n## Not Really A Heading\n```\n"

	headings := ExtractHeadings(src)

	assert.Len(t, headings, 1)
	assert.Equal(t, "Not Really A Heading", headings[0].Text)
}
