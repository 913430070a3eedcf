package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/delib-org/outliner/internal/document"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// MarkdownParser handles Markdown files using goldmark.
type MarkdownParser struct{}

// frontMatter is the subset of YAML front matter we care about.
type frontMatter struct {
	Title string `yaml:"title"`
}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	doc := &document.Document{
		Title: strings.TrimSuffix(strings.TrimSuffix(filename, ".md"), ".markdown"),
	}

	// YAML front matter, if present, overrides the filename-derived title.
	src, fm, err := stripFrontMatter(src)
	if err != nil {
		return nil, fmt.Errorf("front matter: %w", err)
	}
	if fm.Title != "" {
		doc.Title = fm.Title
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	root := md.Parser().Parse(reader)

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			doc.Paragraphs = append(doc.Paragraphs, document.Paragraph{
				ID:   newParagraphID(),
				Type: document.HeadingForLevel(node.Level),
				Text: string(node.Text(src)),
			})
		case *ast.ThematicBreak:
			// Dividers participate in document order but are never numbered.
			doc.Paragraphs = append(doc.Paragraphs, document.Paragraph{
				ID:   newParagraphID(),
				Type: document.TypeOther,
			})
		default:
			t := extractText(n, src)
			if t != "" {
				doc.Paragraphs = append(doc.Paragraphs, document.Paragraph{
					ID:   newParagraphID(),
					Type: document.TypeParagraph,
					Text: t,
				})
			}
		}
	}

	return doc, nil
}

// stripFrontMatter removes a leading "---" delimited YAML block and decodes
// it. Input without front matter is returned unchanged.
func stripFrontMatter(src []byte) ([]byte, frontMatter, error) {
	var fm frontMatter
	if !bytes.HasPrefix(src, []byte("---\n")) && !bytes.HasPrefix(src, []byte("---\r\n")) {
		return src, fm, nil
	}

	rest := src[bytes.IndexByte(src, '\n')+1:]
	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		// Unterminated: treat the whole input as markdown.
		return src, fm, nil
	}

	if err := yaml.Unmarshal(rest[:end], &fm); err != nil {
		return nil, fm, err
	}

	body := rest[end+len("\n---"):]
	if i := bytes.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		body = nil
	}
	return body, fm, nil
}

// extractText gets the text content of a goldmark AST node.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	// Also handle inline children.
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			// Recurse for nested inlines.
			buf.WriteString(extractText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
