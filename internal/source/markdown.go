package source

import (
	"io"
	"strings"

	"github.com/prakriti82/adobe-hackathon-round-1a/internal/docmodel"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownSource reads Markdown files using goldmark. ATX/setext
// headings form a native TOC.
type MarkdownSource struct{}

func (s *MarkdownSource) Load(r io.Reader, filename string) (*docmodel.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	root := md.Parser().Parse(reader)

	doc := &docmodel.Document{
		Name:      filename,
		Title:     stem(filename),
		TocNative: true,
	}

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		heading, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		title := strings.TrimSpace(headingText(heading, src))
		if title == "" {
			continue
		}
		doc.Toc = append(doc.Toc, docmodel.TocEntry{
			Level: heading.Level,
			Title: title,
			Page:  1,
		})
	}

	// The first top-level heading beats the filename as a title.
	for _, e := range doc.Toc {
		if e.Level == 1 {
			doc.Title = e.Title
			break
		}
	}

	return doc, nil
}

// headingText gets the inline text content of a heading node.
func headingText(n ast.Node, src []byte) string {
	var buf strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		} else {
			buf.WriteString(headingText(c, src))
		}
	}
	return buf.String()
}
