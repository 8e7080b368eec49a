package models

// InvalidOptionsError indicates that comparison options failed validation
// before any comparison work began
type InvalidOptionsError struct {
	Field   string
	Message string
}

func (e *InvalidOptionsError) Error() string {
	return "invalid options: " + e.Field + ": " + e.Message
}

// MalformedInputError indicates that raw structural facts from the external
// extractor are incomplete or inconsistent. It identifies the file and the
// entity at fault; malformed input is never silently coerced.
type MalformedInputError struct {
	// File identifies which input file the facts belong to ("A" or "B",
	// optionally followed by the file path)
	File string

	// Entity is the entity that failed validation (e.g. "variable /grp/temp")
	Entity string

	Message string
}

func (e *MalformedInputError) Error() string {
	return "malformed facts for file " + e.File + ": " + e.Entity + ": " + e.Message
}

// IOWriteError indicates that report serialization failed. The writer
// guarantees that no partial output file is left behind.
type IOWriteError struct {
	Path string
	Err  error
}

func (e *IOWriteError) Error() string {
	return "failed to write report " + e.Path + ": " + e.Err.Error()
}

func (e *IOWriteError) Unwrap() error {
	return e.Err
}

// ExternalComparatorError indicates that the external structural extractor
// failed (unreadable file, crashed tool, unparseable output). The core wraps
// and re-surfaces it without attempting recovery.
type ExternalComparatorError struct {
	File string
	Err  error
}

func (e *ExternalComparatorError) Error() string {
	return "external comparator failed for " + e.File + ": " + e.Err.Error()
}

func (e *ExternalComparatorError) Unwrap() error {
	return e.Err
}
