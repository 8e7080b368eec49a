// Package platform holds small path helpers that differ between
// operating systems. Input files and report targets may live on
// network shares, so UNC paths are accepted.
package platform

import (
	"path/filepath"
	"runtime"
	"strings"
)

// characters rejected in Windows paths; UNC prefixes are checked separately
const windowsInvalidChars = `<>"|?*`

// NormalizePath cleans a path, preserving the UNC prefix that
// filepath.Clean would collapse on Windows
func NormalizePath(path string) string {
	cleaned := filepath.Clean(path)
	if runtime.GOOS == "windows" && strings.HasPrefix(path, `\\`) && !strings.HasPrefix(cleaned, `\\`) {
		return `\\` + cleaned
	}
	return cleaned
}

// IsUNCPath reports whether path names a Windows network share
func IsUNCPath(path string) bool {
	if runtime.GOOS != "windows" {
		return false
	}
	return strings.HasPrefix(path, `\\`) || strings.HasPrefix(path, "//")
}

// ValidatePath checks that a path is usable on the current platform
func ValidatePath(path string) error {
	if path == "" {
		return &PathError{Path: path, Message: "path is empty"}
	}

	if runtime.GOOS == "windows" && !IsUNCPath(path) {
		if i := strings.IndexAny(path, windowsInvalidChars); i >= 0 {
			return &PathError{Path: path, Message: "path contains invalid character: " + string(path[i])}
		}
	}

	return nil
}

// PathError represents a path validation error
type PathError struct {
	Path    string
	Message string
}

func (e *PathError) Error() string {
	return "invalid path '" + e.Path + "': " + e.Message
}
