package stats

import (
	"sort"
	"sync"
	"time"
)

type sample struct {
	timestamp  time.Time
	durationMs int64
	paragraphs int
	headings   int
}

// Snapshot is a point-in-time aggregate of recent numbering passes.
type Snapshot struct {
	Count           int     `json:"count"`
	TotalParagraphs int     `json:"total_paragraphs"`
	TotalHeadings   int     `json:"total_headings"`
	MinMs           int64   `json:"min_ms"`
	MaxMs           int64   `json:"max_ms"`
	AvgMs           float64 `json:"avg_ms"`
	P50Ms           float64 `json:"p50_ms"`
	P95Ms           float64 `json:"p95_ms"`
	P99Ms           float64 `json:"p99_ms"`
}

// NumberingStats tracks recent numbering-pass samples within a rolling window.
type NumberingStats struct {
	mu      sync.Mutex
	samples []sample
	maxAge  time.Duration
}

func NewNumberingStats(maxAge time.Duration) *NumberingStats {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &NumberingStats{
		samples: make([]sample, 0, 256),
		maxAge:  maxAge,
	}
}

// Record adds one numbering pass: its duration plus how many paragraphs
// and headings it covered.
func (s *NumberingStats) Record(durationMs int64, paragraphs, headings int) {
	if durationMs < 0 {
		durationMs = 0
	}
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	s.samples = append(s.samples, sample{
		timestamp:  now,
		durationMs: durationMs,
		paragraphs: paragraphs,
		headings:   headings,
	})
}

func (s *NumberingStats) SnapshotNow() Snapshot {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	if len(s.samples) == 0 {
		return Snapshot{}
	}

	values := make([]int64, 0, len(s.samples))
	var sum int64
	var paragraphs, headings int
	for _, sm := range s.samples {
		values = append(values, sm.durationMs)
		sum += sm.durationMs
		paragraphs += sm.paragraphs
		headings += sm.headings
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	return Snapshot{
		Count:           len(values),
		TotalParagraphs: paragraphs,
		TotalHeadings:   headings,
		MinMs:           values[0],
		MaxMs:           values[len(values)-1],
		AvgMs:           float64(sum) / float64(len(values)),
		P50Ms:           percentile(values, 50),
		P95Ms:           percentile(values, 95),
		P99Ms:           percentile(values, 99),
	}
}

func (s *NumberingStats) pruneLocked(now time.Time) {
	cutoff := now.Add(-s.maxAge)
	writeIdx := 0
	for _, sm := range s.samples {
		if !sm.timestamp.Before(cutoff) {
			s.samples[writeIdx] = sm
			writeIdx++
		}
	}
	s.samples = s.samples[:writeIdx]
}

func percentile(sortedValues []int64, pct float64) float64 {
	if len(sortedValues) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sortedValues[0])
	}
	if pct >= 100 {
		return float64(sortedValues[len(sortedValues)-1])
	}

	index := (float64(len(sortedValues)-1) * pct) / 100.0
	lower := int(index)
	upper := lower + 1
	if upper >= len(sortedValues) {
		return float64(sortedValues[lower])
	}
	weight := index - float64(lower)
	lo := float64(sortedValues[lower])
	hi := float64(sortedValues[upper])
	return lo + ((hi - lo) * weight)
}
