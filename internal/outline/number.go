package outline

import (
	"strconv"
	"strings"

	"github.com/delib-org/outliner/internal/document"
)

// maxLevels is the number of heading depths (h1..h6).
const maxLevels = 6

// ComputeNumbers assigns a hierarchical outline number to every numberable
// paragraph in the sequence, Word-style: headings get "1", "1.1", "1.1.1"
// and so on, plain paragraphs are numbered relative to the nearest
// preceding heading ("1.1.1", "1.1.2", ...) and restart at 1 whenever a new
// heading appears. Paragraphs before the first heading are numbered
// "1", "2", ...
//
// Skipped heading levels are kept as explicit zero segments: an h3 directly
// under an h1 is numbered "1.0.1", not "1.1". Non-numberable paragraph
// types get no entry.
//
// The input is expected to be in document order; it is never mutated.
func ComputeNumbers(paragraphs []document.Paragraph) document.NumberMap {
	numbers := make(document.NumberMap, len(paragraphs))

	var counters [maxLevels]int
	lastLevel := -1 // no heading seen yet
	paragraphCounter := 0

	for _, p := range paragraphs {
		level, isHeading := p.Type.HeadingLevel()

		switch {
		case isHeading:
			paragraphCounter = 0

			// Returning to the same or a shallower depth closes all
			// deeper sections.
			if level <= lastLevel {
				for i := level + 1; i < maxLevels; i++ {
					counters[i] = 0
				}
			}

			// Skipped intermediate levels stay at zero so the gap is
			// visible in the number ("1.0.1") instead of collapsing.
			if lastLevel >= 0 && level > lastLevel+1 {
				for i := lastLevel + 1; i < level; i++ {
					counters[i] = 0
				}
			}

			counters[level]++
			lastLevel = level
			numbers[p.ID] = joinCounters(counters[:], level)

		case p.Type == document.TypeParagraph:
			paragraphCounter++
			if lastLevel >= 0 {
				numbers[p.ID] = joinCounters(counters[:], lastLevel) + "." + strconv.Itoa(paragraphCounter)
			} else {
				numbers[p.ID] = strconv.Itoa(paragraphCounter)
			}

		default:
			// Not numberable: no entry, no side effects.
		}
	}

	return numbers
}

// joinCounters renders counters[0..level] as a dot-separated number string.
func joinCounters(counters []int, level int) string {
	var sb strings.Builder
	for i := 0; i <= level; i++ {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(counters[i]))
	}
	return sb.String()
}
