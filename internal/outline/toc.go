package outline

import "github.com/delib-org/outliner/internal/document"

// TOCEntry is one heading in a document's table of contents.
type TOCEntry struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Level  int    `json:"level"`  // 1-based: h1=1 .. h6=6
	Number string `json:"number"` // outline number, e.g. "1.2.1"
}

// BuildTOC extracts the heading skeleton of a paragraph sequence, in
// document order, with each heading's computed outline number attached.
func BuildTOC(paragraphs []document.Paragraph) []TOCEntry {
	numbers := ComputeNumbers(paragraphs)

	var toc []TOCEntry
	for _, p := range paragraphs {
		level, ok := p.Type.HeadingLevel()
		if !ok {
			continue
		}
		toc = append(toc, TOCEntry{
			ID:     p.ID,
			Title:  p.Text,
			Level:  level + 1,
			Number: numbers[p.ID],
		})
	}
	return toc
}
