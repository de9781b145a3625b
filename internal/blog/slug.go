package blog

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent decomposes accented characters and drops the combining marks, so
// Portuguese text like "ç", "ã" and "é" reduces to plain Latin letters.
// Chained transformers carry state, so each call builds its own.
func deaccent() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Slugify converts arbitrary heading or title text into a URL-safe anchor
// id: lower-cased, de-accented, punctuation dropped, whitespace runs turned
// into single hyphens. It never fails; empty input yields an empty string.
func Slugify(text string) string {
	s := strings.ToLower(text)
	if out, _, err := transform.String(deaccent(), s); err == nil {
		s = out
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	s = strings.Join(strings.Fields(b.String()), "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// Slugger assigns deduplicated anchor ids within one document. The first
// occurrence of a base id keeps it unchanged; the Nth repeat gets a -N
// suffix. The table of contents and the rendered body each run their own
// Slugger over the same headings in the same order, which is what keeps
// their ids in agreement.
type Slugger struct {
	counts map[string]int
}

func NewSlugger() *Slugger {
	return &Slugger{counts: make(map[string]int)}
}

// Slug returns the deduplicated anchor id for the next occurrence of text.
func (s *Slugger) Slug(text string) string {
	base := Slugify(text)
	n := s.counts[base]
	s.counts[base] = n + 1
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, n)
}
