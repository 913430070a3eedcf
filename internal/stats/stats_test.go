package stats

import (
	"testing"
	"time"
)

func TestNumberingStats_EmptySnapshot(t *testing.T) {
	s := NewNumberingStats(time.Hour)
	snap := s.SnapshotNow()
	if snap.Count != 0 {
		t.Errorf("expected empty snapshot, got count %d", snap.Count)
	}
}

func TestNumberingStats_Aggregates(t *testing.T) {
	s := NewNumberingStats(time.Hour)
	s.Record(10, 100, 5)
	s.Record(20, 50, 2)
	s.Record(30, 25, 1)

	snap := s.SnapshotNow()
	if snap.Count != 3 {
		t.Fatalf("count = %d, want 3", snap.Count)
	}
	if snap.MinMs != 10 || snap.MaxMs != 30 {
		t.Errorf("min/max = %d/%d, want 10/30", snap.MinMs, snap.MaxMs)
	}
	if snap.AvgMs != 20 {
		t.Errorf("avg = %f, want 20", snap.AvgMs)
	}
	if snap.TotalParagraphs != 175 {
		t.Errorf("total paragraphs = %d, want 175", snap.TotalParagraphs)
	}
	if snap.TotalHeadings != 8 {
		t.Errorf("total headings = %d, want 8", snap.TotalHeadings)
	}
	if snap.P50Ms != 20 {
		t.Errorf("p50 = %f, want 20", snap.P50Ms)
	}
}

func TestNumberingStats_NegativeDurationClamped(t *testing.T) {
	s := NewNumberingStats(time.Hour)
	s.Record(-5, 1, 0)
	snap := s.SnapshotNow()
	if snap.MinMs != 0 {
		t.Errorf("min = %d, want 0", snap.MinMs)
	}
}

func TestNumberingStats_WindowPruning(t *testing.T) {
	s := NewNumberingStats(time.Millisecond)
	s.Record(10, 10, 1)
	time.Sleep(5 * time.Millisecond)
	snap := s.SnapshotNow()
	if snap.Count != 0 {
		t.Errorf("expected pruned window, got count %d", snap.Count)
	}
}
