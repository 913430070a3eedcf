package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/delib-org/outliner/internal/numstore"
	"github.com/delib-org/outliner/internal/outline"
	"github.com/delib-org/outliner/internal/parser"
	"github.com/delib-org/outliner/internal/stats"
)

// Worker processes a single numbering job.
type Worker struct {
	store       *numstore.Client
	log         *slog.Logger
	stats       *stats.NumberingStats
	pdfFallback bool
}

func NewWorker(store *numstore.Client, log *slog.Logger, st *stats.NumberingStats, pdfFallback bool) *Worker {
	return &Worker{
		store:       store,
		log:         log,
		stats:       st,
		pdfFallback: pdfFallback,
	}
}

// Process runs the full parse-number-store pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID)

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if pdfParser, ok := p.(*parser.PDFParser); ok {
		pdfParser.FallbackPdftotext = w.pdfFallback
	}

	doc, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if job.Title != "" {
		doc.Title = job.Title
	}
	doc.ID = job.DocID

	if err := outline.CheckSequence(doc.Paragraphs); err != nil {
		log.Error("invalid paragraph sequence", "error", err)
		job.AddError(fmt.Sprintf("sequence: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	// Phase 2: Number
	job.SetStatus(StatusNumbering, "numbering")
	started := time.Now()
	numbers := outline.ComputeNumbers(doc.Paragraphs)
	toc := outline.BuildTOC(doc.Paragraphs)

	headings := 0
	for _, para := range doc.Paragraphs {
		if para.Type.IsHeading() {
			headings++
		}
	}
	job.SetCounts(len(doc.Paragraphs), headings, len(numbers))
	if w.stats != nil {
		w.stats.Record(time.Since(started).Milliseconds(), len(doc.Paragraphs), headings)
	}
	log.Info("numbered document", "paragraphs", len(doc.Paragraphs), "headings", headings, "numbered", len(numbers))

	if len(doc.Paragraphs) == 0 {
		log.Warn("no paragraphs produced")
		job.AddError("no numberable content")
		job.SetStatus(StatusFailed, "numbering")
		return
	}

	// Phase 3: Store document, numbers and TOC.
	job.SetStatus(StatusStoring, "storing")

	rec := numstore.DocumentRecord{
		DocID:      job.DocID,
		Title:      doc.Title,
		Filename:   job.Filename,
		Paragraphs: doc.Paragraphs,
		CreatedAt:  job.CreatedAt.Format(time.RFC3339),
	}
	if err := w.storeWithRetry(ctx, log, "document", func() error {
		return w.store.PutDocument(ctx, job.DocID, rec)
	}); err != nil {
		job.AddError(fmt.Sprintf("store document: %s", err))
		job.SetStatus(StatusFailed, "storing")
		return
	}

	hadErrors := false
	if err := w.storeWithRetry(ctx, log, "numbers", func() error {
		return w.store.PutNumbers(ctx, job.DocID, numbers)
	}); err != nil {
		job.AddError(fmt.Sprintf("store numbers: %s", err))
		hadErrors = true
	}
	if err := w.storeWithRetry(ctx, log, "toc", func() error {
		return w.store.PutTOC(ctx, job.DocID, toc)
	}); err != nil {
		job.AddError(fmt.Sprintf("store toc: %s", err))
		hadErrors = true
	}

	if hadErrors {
		// The document record made it in, so readers can renumber later.
		job.SetStatus(StatusPartial, "done")
		return
	}
	job.SetStatus(StatusCompleted, "done")
}

// storeWithRetry retries retryable store errors with jittered backoff.
func (w *Worker) storeWithRetry(ctx context.Context, log *slog.Logger, what string, put func() error) error {
	var lastErr error
	for attempt := 0; attempt < MaxRetries; attempt++ {
		lastErr = put()
		if lastErr == nil || !IsRetryable(lastErr) {
			return lastErr
		}
		log.Warn("retryable store error", "what", what, "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return lastErr
}
