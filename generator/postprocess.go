package generator

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const digestLimit = 160

var markdown = goldmark.New()

// outline holds what the document's Markdown structure says about it.
type outline struct {
	Title    string
	Sections []string
	Digest   string
}

// extractOutline takes the first level-1 heading as the title, every level-2
// heading as a section and the first paragraph as the digest.
func extractOutline(md string) outline {
	src := []byte(md)
	doc := markdown.Parser().Parse(text.NewReader(src))

	out := outline{Sections: []string{}}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			heading := nodeText(node, src)
			if heading == "" {
				continue
			}
			switch {
			case node.Level == 1 && out.Title == "":
				out.Title = heading
			case node.Level == 2:
				out.Sections = append(out.Sections, heading)
			}
		case *ast.Paragraph:
			if out.Digest == "" {
				out.Digest = truncateRunes(nodeText(node, src), digestLimit)
			}
		}
	}
	return out
}

func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func truncateRunes(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
