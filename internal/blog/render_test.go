package blog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTMLAssignsAnchorIDs(t *testing.T) {
	src := "## Intro\n\ntext\n\n### Details\n"

	html, err := RenderHTML(src)
	require.NoError(t, err)

	assert.Contains(t, html, `<h2 id="intro">`)
	assert.Contains(t, html, `<h3 id="details">`)
}

// The ids the renderer puts on H2/H3 elements must be exactly the ids
// ExtractHeadings reports for the same source, or the table of contents
// points at nothing.
func TestRenderHTMLMatchesExtractedHeadings(t *testing.T) {
	src := "## Setup\n\n## Setup\n\n### **Getting** Started\n\n## Configuração\n"

	html, err := RenderHTML(src)
	require.NoError(t, err)

	headings := ExtractHeadings(src)
	require.Len(t, headings, 4)
	for _, h := range headings {
		assert.Contains(t, html, fmt.Sprintf(`id="%s"`, h.ID), "missing anchor for %q", h.Text)
	}
}

func TestRenderHTMLLeavesH1Unanchored(t *testing.T) {
	html, err := RenderHTML("# Title\n\n## Section\n")
	require.NoError(t, err)

	assert.Contains(t, html, "<h1>Title</h1>")
	assert.Contains(t, html, `<h2 id="section">`)
}

func TestRenderHTMLGFMTable(t *testing.T) {
	src := "| a | b |\n| - | - |\n| 1 | 2 |\n"

	html, err := RenderHTML(src)
	require.NoError(t, err)

	assert.Contains(t, html, "<table>")
}
