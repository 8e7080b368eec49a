// Package runner executes comparison requests on a background goroutine,
// one at a time. Callers submit a request and receive a single-resolution
// future; a second submission while a run is in flight is rejected with
// ErrBusy, which keeps user-triggered compare actions serialized.
package runner

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/scidiff/ncdelta/pkg/extract"
	"github.com/scidiff/ncdelta/pkg/logging"
	"github.com/scidiff/ncdelta/pkg/models"
	"github.com/scidiff/ncdelta/pkg/reconcile"
	"github.com/scidiff/ncdelta/pkg/report"
)

// ErrBusy is returned when a comparison is already in flight
var ErrBusy = errors.New("a comparison is already in flight")

// Stage identifies a phase of a comparison run, for progress reporting
type Stage string

const (
	StageExtractA  Stage = "extract_a"
	StageExtractB  Stage = "extract_b"
	StageReconcile Stage = "reconcile"
	StageReports   Stage = "reports"
)

// Stages lists the run phases in execution order
var Stages = []Stage{StageExtractA, StageExtractB, StageReconcile, StageReports}

// Request describes one comparison to run
type Request struct {
	// FileA and FileB are the input file paths handed to the extractor
	FileA string
	FileB string

	// Extractor produces the raw structural facts for each file
	Extractor extract.Extractor

	// Options controls the comparison
	Options models.ComparisonOptions

	// OnStage, if set, is called as each phase begins
	OnStage func(stage Stage)
}

// Runner serializes comparison requests: at most one runs at a time
type Runner struct {
	slot   chan struct{}
	logger logging.Logger
}

// New creates a runner. A nil logger disables logging.
func New(logger logging.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Runner{
		slot:   make(chan struct{}, 1),
		logger: logger,
	}
}

// Submit starts the comparison on a background goroutine and returns its
// future. Returns ErrBusy if a run is already in flight. Cancellation via
// ctx applies to the extraction phase; reconciliation is fast and bounded
// and runs to completion once started.
func (r *Runner) Submit(ctx context.Context, req Request) (*Future, error) {
	select {
	case r.slot <- struct{}{}:
	default:
		return nil, ErrBusy
	}

	fut := newFuture()
	go func() {
		defer func() { <-r.slot }()
		fut.resolve(r.run(ctx, req))
	}()

	return fut, nil
}

func (r *Runner) run(ctx context.Context, req Request) (*models.ComparisonResult, error) {
	runID := uuid.NewString()
	logger := r.logger.WithFields(logging.Fields{"run_id": runID})
	logger.Info(ctx, "comparison started", logging.Fields{
		"file_a": req.FileA,
		"file_b": req.FileB,
	})

	extractOpts := extract.Options{
		IncludeAttributes: req.Options.IncludeAttributes,
		IncludeChunking:   req.Options.IncludeChunking,
	}

	notify := func(stage Stage) {
		if req.OnStage != nil {
			req.OnStage(stage)
		}
	}

	notify(StageExtractA)
	factsA, err := req.Extractor.Extract(ctx, req.FileA, extractOpts)
	if err != nil {
		logger.Error(ctx, "extraction failed", err, logging.Fields{"file": req.FileA})
		return nil, err
	}

	notify(StageExtractB)
	factsB, err := req.Extractor.Extract(ctx, req.FileB, extractOpts)
	if err != nil {
		logger.Error(ctx, "extraction failed", err, logging.Fields{"file": req.FileB})
		return nil, err
	}

	notify(StageReconcile)
	result, err := reconcile.Reconcile(factsA, factsB, req.Options)
	if err != nil {
		logger.Error(ctx, "reconciliation failed", err, nil)
		return nil, err
	}
	result.RunID = runID

	notify(StageReports)
	if req.Options.ReportTextPath != "" {
		if err := report.WriteText(result, req.Options.ReportTextPath); err != nil {
			logger.Error(ctx, "text report failed", err, nil)
			return nil, err
		}
		result.ReportPaths.Text = req.Options.ReportTextPath
	}
	if req.Options.ReportCSVPath != "" {
		if err := report.WriteCSV(result, req.Options.ReportCSVPath); err != nil {
			logger.Error(ctx, "CSV report failed", err, nil)
			return nil, err
		}
		result.ReportPaths.CSV = req.Options.ReportCSVPath
	}

	logger.Info(ctx, "comparison finished", logging.Fields{
		"status":            string(result.Status()),
		"total_differences": result.Counts[models.CountTotalDifferences],
	})

	return result, nil
}
