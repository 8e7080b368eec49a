package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/scidiff/ncdelta/pkg/models"
)

const sampleFacts = `
dimensions:
  - name: time
    length: unlimited
  - name: lat
    length: 180
groups:
  - /grp
variables:
  - name: temp
    group: /grp
    dtype: float32
    shape: [time, lat]
    chunking: [10, 10]
    attributes:
      - name: units
        value: K
  - name: lat
    dtype: float64
    shape: [lat]
attributes:
  - name: title
    value: example dataset
`

func writeFacts(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "facts.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write facts file: %v", err)
	}
	return path
}

func TestFactsFileExtract(t *testing.T) {
	ctx := context.Background()
	allOpts := Options{IncludeAttributes: true, IncludeChunking: true}

	t.Run("FullExtraction", func(t *testing.T) {
		path := writeFacts(t, sampleFacts)

		facts, err := NewFactsFile().Extract(ctx, path, allOpts)
		if err != nil {
			t.Fatalf("Extract() error = %v", err)
		}

		if facts.Path != path {
			t.Errorf("Path = %s, want %s", facts.Path, path)
		}

		if len(facts.Dimensions) != 2 {
			t.Fatalf("Dimensions = %d, want 2", len(facts.Dimensions))
		}
		if !facts.Dimensions[0].IsUnlimited() {
			t.Error("time dimension should be unlimited")
		}
		if facts.Dimensions[1].Length != 180 {
			t.Errorf("lat length = %d, want 180", facts.Dimensions[1].Length)
		}

		if len(facts.Variables) != 2 {
			t.Fatalf("Variables = %d, want 2", len(facts.Variables))
		}
		temp := facts.Variables[0]
		if temp.ID() != "/grp/temp" {
			t.Errorf("ID() = %s, want /grp/temp", temp.ID())
		}
		if len(temp.Chunking) != 2 || temp.Chunking[0] != 10 {
			t.Errorf("Chunking = %v, want [10 10]", temp.Chunking)
		}
		if len(temp.Attributes) != 1 || temp.Attributes[0].Value != "K" {
			t.Errorf("Attributes = %v, want units=K", temp.Attributes)
		}

		// Variable without a group lands in the root group
		if facts.Variables[1].ID() != "/lat" {
			t.Errorf("ID() = %s, want /lat", facts.Variables[1].ID())
		}

		if len(facts.Attributes) != 1 || facts.Attributes[0].Name != "title" {
			t.Errorf("global Attributes = %v, want title", facts.Attributes)
		}
	})

	t.Run("OptionsStripAttributesAndChunking", func(t *testing.T) {
		path := writeFacts(t, sampleFacts)

		facts, err := NewFactsFile().Extract(ctx, path, Options{})
		if err != nil {
			t.Fatalf("Extract() error = %v", err)
		}

		if facts.Attributes != nil {
			t.Errorf("global attributes should be stripped, got %v", facts.Attributes)
		}
		if facts.Variables[0].Attributes != nil {
			t.Errorf("variable attributes should be stripped, got %v", facts.Variables[0].Attributes)
		}
		if facts.Variables[0].Chunking != nil {
			t.Errorf("chunking should be stripped, got %v", facts.Variables[0].Chunking)
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := NewFactsFile().Extract(ctx, filepath.Join(t.TempDir(), "nope.yaml"), allOpts)

		var extErr *models.ExternalComparatorError
		if !errors.As(err, &extErr) {
			t.Fatalf("expected *ExternalComparatorError, got %v", err)
		}
	})

	t.Run("UnparseableDocument", func(t *testing.T) {
		path := writeFacts(t, "dimensions: [broken")

		_, err := NewFactsFile().Extract(ctx, path, allOpts)

		var extErr *models.ExternalComparatorError
		if !errors.As(err, &extErr) {
			t.Fatalf("expected *ExternalComparatorError, got %v", err)
		}
		if extErr.File != path {
			t.Errorf("File = %s, want %s", extErr.File, path)
		}
	})

	t.Run("BadDimensionLength", func(t *testing.T) {
		path := writeFacts(t, "dimensions:\n  - name: time\n    length: sometimes\n")

		_, err := NewFactsFile().Extract(ctx, path, allOpts)

		var extErr *models.ExternalComparatorError
		if !errors.As(err, &extErr) {
			t.Fatalf("expected *ExternalComparatorError, got %v", err)
		}
	})

	t.Run("CancelledContext", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewFactsFile().Extract(cancelled, writeFacts(t, sampleFacts), allOpts)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestCommandExtract(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingBinary", func(t *testing.T) {
		extractor := NewCommand("definitely-not-a-real-extractor-binary")

		_, err := extractor.Extract(ctx, "/data/a.nc", Options{})

		var extErr *models.ExternalComparatorError
		if !errors.As(err, &extErr) {
			t.Fatalf("expected *ExternalComparatorError, got %v", err)
		}
		if extErr.File != "/data/a.nc" {
			t.Errorf("File = %s, want /data/a.nc", extErr.File)
		}
	})

	t.Run("Name", func(t *testing.T) {
		if NewCommand("tool").Name() != "command" {
			t.Error("unexpected extractor name")
		}
		if NewFactsFile().Name() != "factsfile" {
			t.Error("unexpected extractor name")
		}
	})
}
