package parser

import (
	"strings"
	"testing"

	"github.com/delib-org/outliner/internal/document"
)

func TestHTMLParser_HeadingsAndParagraphs(t *testing.T) {
	input := `<html><head><title>My Page</title></head><body>
<h1>Top</h1>
<p>Intro.</p>
<h2>Nested</h2>
<p>Body text.</p>
<hr>
<p>After the rule.</p>
<script>ignore me</script>
</body></html>`

	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "My Page" {
		t.Errorf("expected title from <title>, got %q", doc.Title)
	}

	wantTypes := []document.ParagraphType{
		document.TypeH1, document.TypeParagraph,
		document.TypeH2, document.TypeParagraph,
		document.TypeOther, document.TypeParagraph,
	}
	if len(doc.Paragraphs) != len(wantTypes) {
		t.Fatalf("expected %d paragraphs, got %d: %+v", len(wantTypes), len(doc.Paragraphs), doc.Paragraphs)
	}
	for i, want := range wantTypes {
		if doc.Paragraphs[i].Type != want {
			t.Errorf("paragraph %d: type = %s, want %s", i, doc.Paragraphs[i].Type, want)
		}
	}
	if doc.Paragraphs[0].Text != "Top" {
		t.Errorf("expected h1 text %q, got %q", "Top", doc.Paragraphs[0].Text)
	}
	for _, para := range doc.Paragraphs {
		if strings.Contains(para.Text, "ignore me") {
			t.Errorf("script content leaked into paragraph: %q", para.Text)
		}
	}
}

func TestHTMLParser_NoBody(t *testing.T) {
	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader("<h1>Bare</h1><p>Text</p>"), "frag.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// x/net/html synthesizes a body; the fragment still parses.
	if len(doc.Paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(doc.Paragraphs))
	}
	if doc.Paragraphs[0].Type != document.TypeH1 {
		t.Errorf("expected h1 first, got %s", doc.Paragraphs[0].Type)
	}
}
