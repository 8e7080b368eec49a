package output

import (
	"io"

	"github.com/scidiff/ncdelta/pkg/models"
)

// Formatter defines the interface for rendering a comparison result
// Implementations include human-readable and JSON formatters
type Formatter interface {
	// Write renders the result to w
	Write(w io.Writer, result *models.ComparisonResult) error

	// Name returns the formatter name
	Name() string
}

// ForFormat returns the formatter for a config format string
func ForFormat(format string) Formatter {
	if format == "json" {
		return NewJSONFormatter()
	}
	return NewHumanFormatter()
}
