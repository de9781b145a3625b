package blog

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(
		gmhtml.WithUnsafe(),
	),
)

// RenderHTML renders a post body to HTML. Level 2 and 3 headings receive
// the same deduplicated anchor ids ExtractHeadings produces for the same
// source, in the same order, so table-of-contents links and the scroll-spy
// always resolve to a real element id. Other heading levels get no id.
func RenderHTML(content string) (string, error) {
	source := []byte(content)
	doc := markdown.Parser().Parse(text.NewReader(source))

	slugger := NewSlugger()
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || (h.Level != 2 && h.Level != 3) {
			return ast.WalkContinue, nil
		}
		raw := string(h.Lines().Value(source))
		h.SetAttributeString("id", []byte(slugger.Slug(stripEmphasis(raw))))
		return ast.WalkContinue, nil
	})

	var buf bytes.Buffer
	if err := markdown.Renderer().Render(&buf, source, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
