// Package report serializes comparison results to text and CSV report
// files. Writers are atomic: content goes to a temporary file in the
// target directory which is renamed into place, so a failure leaves no
// partial output behind.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/scidiff/ncdelta/pkg/models"
)

// writeAtomic renders into a temp file next to path, then renames it into
// place. Any failure removes the temp file and returns *models.IOWriteError.
func writeAtomic(path string, render func(w io.Writer) error) error {
	dir := filepath.Dir(filepath.Clean(path))

	tmp, err := os.CreateTemp(dir, ".ncdelta-report-*")
	if err != nil {
		return &models.IOWriteError{Path: path, Err: fmt.Errorf("failed to create temporary file: %w", err)}
	}
	tmpName := tmp.Name()

	if err := render(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &models.IOWriteError{Path: path, Err: err}
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &models.IOWriteError{Path: path, Err: fmt.Errorf("failed to flush report: %w", err)}
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &models.IOWriteError{Path: path, Err: fmt.Errorf("failed to move report into place: %w", err)}
	}

	return nil
}

// reasonString joins reason tags with ";" for report rendering
func reasonString(reasons []models.ReasonTag) string {
	s := ""
	for i, r := range reasons {
		if i > 0 {
			s += ";"
		}
		s += string(r)
	}
	return s
}
