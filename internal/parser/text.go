package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/delib-org/outliner/internal/document"
)

// TextParser handles plain text files.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	doc := &document.Document{
		Title: strings.TrimSuffix(filename, ".txt"),
	}

	var current strings.Builder
	flush := func() {
		if current.Len() == 0 {
			return
		}
		doc.Paragraphs = append(doc.Paragraphs, document.Paragraph{
			ID:   newParagraphID(),
			Type: document.TypeParagraph,
			Text: current.String(),
		})
		current.Reset()
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return doc, nil
}
