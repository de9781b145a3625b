package server

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pedrofh/portfolio/internal/blog"
)

func TestTOCEntriesPrefixes(t *testing.T) {
	headings := []blog.Heading{
		{Level: 2, Text: "One", ID: "one"},
		{Level: 3, Text: "One A", ID: "one-a"},
		{Level: 3, Text: "One B", ID: "one-b"},
		{Level: 2, Text: "Two", ID: "two"},
	}

	entries := tocEntries(headings)

	var prefixes []string
	for _, e := range entries {
		prefixes = append(prefixes, e.Prefix)
	}
	assert.Equal(t, []string{"├─", "│   ├─", "│   └─", "└─"}, prefixes)
}

func TestTOCEntriesSingleHeading(t *testing.T) {
	entries := tocEntries([]blog.Heading{{Level: 2, Text: "Only", ID: "only"}})

	assert.Len(t, entries, 1)
	assert.Equal(t, "└─", entries[0].Prefix)
	assert.Equal(t, "only", entries[0].ID)
}

func TestTOCEntriesEmpty(t *testing.T) {
	assert.Empty(t, tocEntries(nil))
}

func TestShareLinksEscape(t *testing.T) {
	links := shareLinks("Go & Friends", "http://example.com/en/blog/go-friends")

	assert.Len(t, links, 3)
	assert.Contains(t, links[0].URL, "Go+%26+Friends")
	assert.Contains(t, links[1].URL, "http%3A%2F%2Fexample.com")
}
