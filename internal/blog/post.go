package blog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/frontmatter"
)

// Post is one fully loaded blog entry.
type Post struct {
	Slug     string
	Title    string
	Date     time.Time
	Excerpt  string
	Tags     []string
	Content  string
	Headings []Heading
}

type postMatter struct {
	Title   string   `yaml:"title"`
	Date    string   `yaml:"date"`
	Excerpt string   `yaml:"excerpt"`
	Tags    []string `yaml:"tags"`
}

// readPost resolves slug against the content directory, trying .md before
// .mdx, and parses front-matter plus body.
func readPost(dir, slug string) (*Post, error) {
	path := filepath.Join(dir, slug+".md")
	if _, err := os.Stat(path); err != nil {
		path = filepath.Join(dir, slug+".mdx")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var matter postMatter
	body, err := frontmatter.Parse(f, &matter)
	if err != nil {
		return nil, fmt.Errorf("parse front-matter: %w", err)
	}

	title := matter.Title
	if title == "" {
		title = "Untitled"
	}

	content := string(body)
	return &Post{
		Slug:     slug,
		Title:    title,
		Date:     postDate(matter.Date),
		Excerpt:  matter.Excerpt,
		Tags:     matter.Tags,
		Content:  content,
		Headings: ExtractHeadings(content),
	}, nil
}

// postDate pins a front-matter date to noon UTC of that calendar day, so a
// bare 2024-01-01 sorts identically on every server timezone. Missing or
// unparsable dates fall back to the load instant.
func postDate(raw string) time.Time {
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Now().UTC()
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC)
}
