package outline

import (
	"fmt"

	"github.com/delib-org/outliner/internal/document"
)

// CheckSequence verifies the caller-side contract ComputeNumbers relies on:
// every paragraph has a non-empty ID and no ID repeats. Ordering is taken
// on trust — only the producer of the sequence knows document order.
func CheckSequence(paragraphs []document.Paragraph) error {
	seen := make(map[string]int, len(paragraphs))
	for i, p := range paragraphs {
		if p.ID == "" {
			return fmt.Errorf("paragraph %d: empty id", i)
		}
		if prev, ok := seen[p.ID]; ok {
			return fmt.Errorf("paragraph %d: duplicate id %q (first seen at %d)", i, p.ID, prev)
		}
		seen[p.ID] = i
	}
	return nil
}
