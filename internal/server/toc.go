package server

import "github.com/pedrofh/portfolio/internal/blog"

// TOCEntry is one heading in the table of contents with its file-tree
// prefix rendered next to the link.
type TOCEntry struct {
	blog.Heading
	Prefix string
}

// tocEntries decorates headings with the tree prefixes the TOC draws:
// H2s get ├─ (└─ for the last entry), H3s are indented under the trunk and
// get │   ├─ (│   └─ when the next heading is not another H3).
func tocEntries(headings []blog.Heading) []TOCEntry {
	entries := make([]TOCEntry, 0, len(headings))
	for i, h := range headings {
		nextIsH3 := i < len(headings)-1 && headings[i+1].Level == 3

		var prefix string
		if h.Level == 3 {
			prefix = "│   └─"
			if nextIsH3 {
				prefix = "│   ├─"
			}
		} else {
			prefix = "├─"
			if i == len(headings)-1 {
				prefix = "└─"
			}
		}

		entries = append(entries, TOCEntry{Heading: h, Prefix: prefix})
	}
	return entries
}
