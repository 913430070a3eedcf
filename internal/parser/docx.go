package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/delib-org/outliner/internal/document"
	"github.com/fumiama/go-docx"
)

// DOCXParser handles .docx files.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	// go-docx needs a ReadSeeker+size, so write to temp file.
	tmp, err := os.CreateTemp("", "outliner-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	wordDoc, err := docx.Parse(tmp, int64(size))
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	doc := &document.Document{
		Title: strings.TrimSuffix(filename, ".docx"),
	}

	for _, item := range wordDoc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			// Tables, section breaks and other body items keep their slot
			// in document order but carry no number.
			doc.Paragraphs = append(doc.Paragraphs, document.Paragraph{
				ID:   newParagraphID(),
				Type: document.TypeOther,
			})
			continue
		}

		level := docxHeadingLevel(para)
		text := docxParagraphText(para)

		switch {
		case level > 0 && text != "":
			doc.Paragraphs = append(doc.Paragraphs, document.Paragraph{
				ID:   newParagraphID(),
				Type: document.HeadingForLevel(level),
				Text: text,
			})
		case text != "":
			doc.Paragraphs = append(doc.Paragraphs, document.Paragraph{
				ID:   newParagraphID(),
				Type: document.TypeParagraph,
				Text: text,
			})
		}
	}

	return doc, nil
}

func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := para.Properties.Style.Val
	switch {
	case strings.EqualFold(style, "Heading1") || strings.EqualFold(style, "heading 1"):
		return 1
	case strings.EqualFold(style, "Heading2") || strings.EqualFold(style, "heading 2"):
		return 2
	case strings.EqualFold(style, "Heading3") || strings.EqualFold(style, "heading 3"):
		return 3
	case strings.EqualFold(style, "Heading4") || strings.EqualFold(style, "heading 4"):
		return 4
	case strings.EqualFold(style, "Heading5") || strings.EqualFold(style, "heading 5"):
		return 5
	case strings.EqualFold(style, "Heading6") || strings.EqualFold(style, "heading 6"):
		return 6
	}
	return 0
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
