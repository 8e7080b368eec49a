package runner

import (
	"context"

	"github.com/scidiff/ncdelta/pkg/models"
)

// Future is the single-resolution handle for an in-flight comparison
type Future struct {
	done   chan struct{}
	result *models.ComparisonResult
	err    error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// resolve records the outcome; called exactly once by the runner
func (f *Future) resolve(result *models.ComparisonResult, err error) {
	f.result = result
	f.err = err
	close(f.done)
}

// Done returns a channel closed when the comparison has resolved
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the comparison resolves or ctx is cancelled
func (f *Future) Wait(ctx context.Context) (*models.ComparisonResult, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
