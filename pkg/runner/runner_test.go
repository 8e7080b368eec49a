package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/scidiff/ncdelta/pkg/extract"
	"github.com/scidiff/ncdelta/pkg/models"
)

// stubExtractor serves canned facts keyed by path, optionally blocking
// until released so tests can hold a run in flight
type stubExtractor struct {
	facts   map[string]*models.FileFacts
	err     error
	release chan struct{}
}

func (s *stubExtractor) Extract(ctx context.Context, path string, opts extract.Options) (*models.FileFacts, error) {
	if s.release != nil {
		select {
		case <-s.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.facts[path], nil
}

func (s *stubExtractor) Name() string {
	return "stub"
}

func stubFacts(path string) *models.FileFacts {
	return &models.FileFacts{
		Path:       path,
		Dimensions: []models.Dimension{{Name: "time", Length: 10}},
		Variables: []models.VariableFacts{
			{Name: "temp", Group: "/", DType: "float32", Shape: []string{"time"}},
		},
	}
}

func TestRunnerSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("ResolvesFuture", func(t *testing.T) {
		extractor := &stubExtractor{facts: map[string]*models.FileFacts{
			"a.nc": stubFacts("a.nc"),
			"b.nc": stubFacts("b.nc"),
		}}

		var stages []Stage
		fut, err := New(nil).Submit(ctx, Request{
			FileA:     "a.nc",
			FileB:     "b.nc",
			Extractor: extractor,
			Options:   models.ComparisonOptions{IncludeAttributes: true},
			OnStage:   func(s Stage) { stages = append(stages, s) },
		})
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}

		result, err := fut.Wait(ctx)
		if err != nil {
			t.Fatalf("Wait() error = %v", err)
		}

		if result.RunID == "" {
			t.Error("RunID should be assigned")
		}
		if result.Status() != models.StatusMatch {
			t.Errorf("Status() = %s, want match", result.Status())
		}
		if len(stages) != len(Stages) {
			t.Errorf("stages = %v, want all of %v", stages, Stages)
		}
	})

	t.Run("RejectsOverlappingRuns", func(t *testing.T) {
		release := make(chan struct{})
		extractor := &stubExtractor{
			facts: map[string]*models.FileFacts{
				"a.nc": stubFacts("a.nc"),
				"b.nc": stubFacts("b.nc"),
			},
			release: release,
		}

		r := New(nil)
		first, err := r.Submit(ctx, Request{FileA: "a.nc", FileB: "b.nc", Extractor: extractor})
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}

		_, err = r.Submit(ctx, Request{FileA: "a.nc", FileB: "b.nc", Extractor: extractor})
		if !errors.Is(err, ErrBusy) {
			t.Errorf("second Submit() error = %v, want ErrBusy", err)
		}

		close(release)
		if _, err := first.Wait(ctx); err != nil {
			t.Fatalf("Wait() error = %v", err)
		}

		// The slot frees up once the first run resolves
		deadline := time.After(time.Second)
		for {
			_, err = r.Submit(ctx, Request{FileA: "a.nc", FileB: "b.nc", Extractor: extractor})
			if err == nil {
				return
			}
			select {
			case <-deadline:
				t.Fatal("runner never accepted a new run after the first resolved")
			case <-time.After(5 * time.Millisecond):
			}
		}
	})

	t.Run("SurfacesExtractionError", func(t *testing.T) {
		cause := &models.ExternalComparatorError{File: "a.nc", Err: errors.New("corrupt")}
		extractor := &stubExtractor{err: cause}

		fut, err := New(nil).Submit(ctx, Request{FileA: "a.nc", FileB: "b.nc", Extractor: extractor})
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}

		_, err = fut.Wait(ctx)
		var extErr *models.ExternalComparatorError
		if !errors.As(err, &extErr) {
			t.Errorf("expected *ExternalComparatorError, got %v", err)
		}
	})

	t.Run("SurfacesMalformedFacts", func(t *testing.T) {
		bad := stubFacts("a.nc")
		bad.Variables[0].DType = ""
		extractor := &stubExtractor{facts: map[string]*models.FileFacts{
			"a.nc": bad,
			"b.nc": stubFacts("b.nc"),
		}}

		fut, err := New(nil).Submit(ctx, Request{FileA: "a.nc", FileB: "b.nc", Extractor: extractor})
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}

		_, err = fut.Wait(ctx)
		var malformed *models.MalformedInputError
		if !errors.As(err, &malformed) {
			t.Errorf("expected *MalformedInputError, got %v", err)
		}
	})

	t.Run("WritesRequestedReports", func(t *testing.T) {
		dir := t.TempDir()
		textPath := filepath.Join(dir, "report.txt")
		csvPath := filepath.Join(dir, "report.csv")

		extractor := &stubExtractor{facts: map[string]*models.FileFacts{
			"a.nc": stubFacts("a.nc"),
			"b.nc": stubFacts("b.nc"),
		}}

		opts, err := models.NewComparisonOptions(false, true, false, textPath, csvPath)
		if err != nil {
			t.Fatalf("NewComparisonOptions() error = %v", err)
		}

		fut, err := New(nil).Submit(ctx, Request{FileA: "a.nc", FileB: "b.nc", Extractor: extractor, Options: opts})
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}

		result, err := fut.Wait(ctx)
		if err != nil {
			t.Fatalf("Wait() error = %v", err)
		}

		if result.ReportPaths.Text != textPath {
			t.Errorf("ReportPaths.Text = %s, want %s", result.ReportPaths.Text, textPath)
		}
		if result.ReportPaths.CSV != csvPath {
			t.Errorf("ReportPaths.CSV = %s, want %s", result.ReportPaths.CSV, csvPath)
		}
		if _, err := os.Stat(textPath); err != nil {
			t.Errorf("text report not written: %v", err)
		}
		if _, err := os.Stat(csvPath); err != nil {
			t.Errorf("CSV report not written: %v", err)
		}
	})

	t.Run("WaitHonorsContext", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)
		extractor := &stubExtractor{
			facts: map[string]*models.FileFacts{
				"a.nc": stubFacts("a.nc"),
				"b.nc": stubFacts("b.nc"),
			},
			release: release,
		}

		fut, err := New(nil).Submit(ctx, Request{FileA: "a.nc", FileB: "b.nc", Extractor: extractor})
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}

		short, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
		defer cancel()

		_, err = fut.Wait(short)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("Wait() error = %v, want deadline exceeded", err)
		}
	})
}
