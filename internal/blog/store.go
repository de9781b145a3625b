package blog

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"
)

// DefaultPageSize is the catalog's own page size; callers may override it
// per page (the blog index uses a larger one).
const DefaultPageSize = 6

// Metadata is the list-view projection of a Post: everything except the
// body and headings, plus the derived reading time.
type Metadata struct {
	Slug        string
	Title       string
	Date        time.Time
	Excerpt     string
	Tags        []string
	ReadingTime int
}

// Store reads posts from one content directory and memoizes results for the
// lifetime of a single request. Handlers create one Store per request and
// never share it across goroutines, so no locking is needed.
type Store struct {
	dir    string
	posts  map[string]*Post
	meta   []Metadata
	loaded bool
}

func NewStore(dir string) *Store {
	return &Store{dir: dir, posts: make(map[string]*Post)}
}

// AllSlugs enumerates the content directory's .md/.mdx filenames without
// their extensions. A missing directory means zero posts, not an error.
func (s *Store) AllSlugs() []string {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil
	}

	var slugs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".mdx"):
			slugs = append(slugs, strings.TrimSuffix(name, ".mdx"))
		case strings.HasSuffix(name, ".md"):
			slugs = append(slugs, strings.TrimSuffix(name, ".md"))
		}
	}
	return slugs
}

// PostBySlug loads one post, caching the result (including the nil for a
// bad slug) for this request. Missing files and unreadable or malformed
// ones both come back as nil; only the latter are logged. Nothing above
// this boundary ever sees a raised error.
func (s *Store) PostBySlug(slug string) *Post {
	if p, ok := s.posts[slug]; ok {
		return p
	}

	p, err := readPost(s.dir, slug)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("skipping unreadable post", "slug", slug, "error", err)
		}
		p = nil
	}
	s.posts[slug] = p
	return p
}

// AllPosts returns catalog metadata for every readable post, sorted by date
// descending. Files that fail to load are silently excluded. The sort is
// stable, so date ties keep enumeration order.
func (s *Store) AllPosts() []Metadata {
	if s.loaded {
		return s.meta
	}

	var posts []Metadata
	for _, slug := range s.AllSlugs() {
		p := s.PostBySlug(slug)
		if p == nil {
			continue
		}
		posts = append(posts, Metadata{
			Slug:        p.Slug,
			Title:       p.Title,
			Date:        p.Date,
			Excerpt:     p.Excerpt,
			Tags:        p.Tags,
			ReadingTime: ReadingTime(p.Content),
		})
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})

	s.meta = posts
	s.loaded = true
	return posts
}

// PostsByTag filters the catalog by case-insensitive exact tag match.
func (s *Store) PostsByTag(tag string) []Metadata {
	want := strings.ToLower(tag)
	var out []Metadata
	for _, m := range s.AllPosts() {
		for _, t := range m.Tags {
			if strings.ToLower(t) == want {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// AllTags returns the distinct tags across the catalog, sorted.
func (s *Store) AllTags() []string {
	seen := make(map[string]struct{})
	for _, m := range s.AllPosts() {
		for _, t := range m.Tags {
			seen[t] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// ReadingTime estimates minutes to read at 225 words per minute, rounded
// up and never below one.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + 224) / 225
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
