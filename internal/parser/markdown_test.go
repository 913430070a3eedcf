package parser

import (
	"strings"
	"testing"

	"github.com/delib-org/outliner/internal/document"
)

func TestMarkdownParser_OrderedSequence(t *testing.T) {
	input := `# Title

Intro text.

## Section A

Section A content.

### Subsection A1

Subsection A1 content.

## Section B

Section B content.
`
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "doc" {
		t.Errorf("expected title %q, got %q", "doc", doc.Title)
	}

	wantTypes := []document.ParagraphType{
		document.TypeH1, document.TypeParagraph,
		document.TypeH2, document.TypeParagraph,
		document.TypeH3, document.TypeParagraph,
		document.TypeH2, document.TypeParagraph,
	}
	if len(doc.Paragraphs) != len(wantTypes) {
		t.Fatalf("expected %d paragraphs, got %d", len(wantTypes), len(doc.Paragraphs))
	}
	for i, want := range wantTypes {
		if doc.Paragraphs[i].Type != want {
			t.Errorf("paragraph %d: type = %s, want %s", i, doc.Paragraphs[i].Type, want)
		}
	}

	if doc.Paragraphs[0].Text != "Title" {
		t.Errorf("expected h1 text %q, got %q", "Title", doc.Paragraphs[0].Text)
	}
	if !strings.Contains(doc.Paragraphs[1].Text, "Intro text.") {
		t.Errorf("expected intro paragraph, got %q", doc.Paragraphs[1].Text)
	}
	if doc.Paragraphs[4].Text != "Subsection A1" {
		t.Errorf("expected h3 text %q, got %q", "Subsection A1", doc.Paragraphs[4].Text)
	}
}

func TestMarkdownParser_UniqueParagraphIDs(t *testing.T) {
	input := "# A\n\ntext one\n\ntext two\n\n## B\n"
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]bool)
	for i, para := range doc.Paragraphs {
		if para.ID == "" {
			t.Errorf("paragraph %d: empty id", i)
		}
		if seen[para.ID] {
			t.Errorf("paragraph %d: duplicate id %q", i, para.ID)
		}
		seen[para.ID] = true
	}
}

func TestMarkdownParser_ThematicBreakIsOther(t *testing.T) {
	input := "First.\n\n---\n\nSecond.\n"
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Paragraphs) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d", len(doc.Paragraphs))
	}
	if doc.Paragraphs[1].Type != document.TypeOther {
		t.Errorf("expected divider to be other, got %s", doc.Paragraphs[1].Type)
	}
}

func TestMarkdownParser_FrontMatterTitle(t *testing.T) {
	input := "---\ntitle: Annual Report\nauthor: someone\n---\n\n# First Section\n\nBody.\n"
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "report.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "Annual Report" {
		t.Errorf("expected front matter title, got %q", doc.Title)
	}
	if len(doc.Paragraphs) == 0 || doc.Paragraphs[0].Type != document.TypeH1 {
		t.Fatalf("expected first paragraph to be the h1, got %+v", doc.Paragraphs)
	}
	if doc.Paragraphs[0].Text != "First Section" {
		t.Errorf("expected h1 text %q, got %q", "First Section", doc.Paragraphs[0].Text)
	}
}

func TestMarkdownParser_DeepHeadingClamped(t *testing.T) {
	input := "###### Six\n\nBody.\n"
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Paragraphs[0].Type != document.TypeH6 {
		t.Errorf("expected h6, got %s", doc.Paragraphs[0].Type)
	}
}

func TestMarkdownParser_EmptyInput(t *testing.T) {
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Paragraphs) != 0 {
		t.Errorf("expected 0 paragraphs for empty input, got %d", len(doc.Paragraphs))
	}
}

func TestMarkdownParser_TitleStripping(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"readme.md", "readme"},
		{"notes.markdown", "notes"},
		{"plain.md", "plain"},
	}
	p := &MarkdownParser{}
	for _, tt := range tests {
		doc, err := p.Parse(strings.NewReader("text"), tt.filename)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", tt.filename, err)
		}
		if doc.Title != tt.want {
			t.Errorf("filename=%q: expected title %q, got %q", tt.filename, tt.want, doc.Title)
		}
	}
}
