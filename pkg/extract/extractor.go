// Package extract isolates the external structural-extraction tool behind
// a narrow interface so the reconciliation engine stays independently
// testable with synthetic fact fixtures.
package extract

import (
	"context"

	"github.com/scidiff/ncdelta/pkg/models"
)

// Options controls what the extractor is asked to pull from a file
type Options struct {
	// IncludeAttributes requests global and per-variable attributes
	IncludeAttributes bool

	// IncludeChunking requests per-variable chunk layouts
	IncludeChunking bool
}

// Extractor produces raw structural facts for a single file.
// Failures surface as *models.ExternalComparatorError.
type Extractor interface {
	// Extract returns the structural facts for the file at path
	Extract(ctx context.Context, path string, opts Options) (*models.FileFacts, error)

	// Name returns the extractor name
	Name() string
}
