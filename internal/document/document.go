package document

import (
	"encoding/json"
	"fmt"
)

// ParagraphType is the closed set of block types a document can carry.
// Only headings and plain paragraphs are numberable; everything else
// (images, dividers, embeds) maps to TypeOther and is skipped by the
// numberer.
type ParagraphType int

const (
	TypeOther ParagraphType = iota
	TypeH1
	TypeH2
	TypeH3
	TypeH4
	TypeH5
	TypeH6
	TypeParagraph
)

// HeadingForLevel returns the heading type for a 1-based level, clamping
// anything deeper than 6 to TypeH6.
func HeadingForLevel(level int) ParagraphType {
	if level < 1 {
		return TypeOther
	}
	if level > 6 {
		level = 6
	}
	return TypeH1 + ParagraphType(level-1)
}

// IsHeading reports whether t is one of h1..h6.
func (t ParagraphType) IsHeading() bool {
	return t >= TypeH1 && t <= TypeH6
}

// IsNumberable reports whether the numberer assigns t a number.
func (t ParagraphType) IsNumberable() bool {
	return t.IsHeading() || t == TypeParagraph
}

// HeadingLevel returns the 0-based heading level (h1=0 .. h6=5).
// ok is false for non-heading types.
func (t ParagraphType) HeadingLevel() (level int, ok bool) {
	if !t.IsHeading() {
		return 0, false
	}
	return int(t - TypeH1), true
}

func (t ParagraphType) String() string {
	switch t {
	case TypeH1, TypeH2, TypeH3, TypeH4, TypeH5, TypeH6:
		return fmt.Sprintf("h%d", int(t-TypeH1)+1)
	case TypeParagraph:
		return "paragraph"
	default:
		return "other"
	}
}

// ParseType maps a wire string to a ParagraphType. Unknown strings map to
// TypeOther rather than failing: unrecognized block types are simply not
// numbered.
func ParseType(s string) ParagraphType {
	switch s {
	case "h1":
		return TypeH1
	case "h2":
		return TypeH2
	case "h3":
		return TypeH3
	case "h4":
		return TypeH4
	case "h5":
		return TypeH5
	case "h6":
		return TypeH6
	case "paragraph":
		return TypeParagraph
	default:
		return TypeOther
	}
}

// MarshalJSON encodes the type as its wire string.
func (t ParagraphType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a wire string, mapping unknown values to TypeOther.
func (t *ParagraphType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("paragraph type: %w", err)
	}
	*t = ParseType(s)
	return nil
}

// Paragraph is one block of a document, already in document order.
type Paragraph struct {
	ID   string        `json:"id"`
	Type ParagraphType `json:"type"`
	Text string        `json:"text,omitempty"`
}

// Document is a parsed document: a title plus its ordered paragraphs.
type Document struct {
	ID         string      `json:"doc_id,omitempty"`
	Title      string      `json:"title"`
	Paragraphs []Paragraph `json:"paragraphs"`
}

// NumberMap maps paragraph IDs to their outline number strings
// (e.g. "1.2.1"). Lookup by ID; iteration order is not meaningful.
type NumberMap map[string]string
