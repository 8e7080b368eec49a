package models

import "strings"

// UnlimitedLength is the sentinel length for unlimited (record) dimensions
const UnlimitedLength int64 = -1

// RootGroup is the hierarchical path of the root group
const RootGroup = "/"

// Dimension is a named axis with a length, shared by variables referencing it
type Dimension struct {
	Name   string
	Length int64
}

// IsUnlimited reports whether the dimension is an unlimited (record) dimension
func (d Dimension) IsUnlimited() bool {
	return d.Length == UnlimitedLength
}

// Attribute is a single key/value metadata entry attached to a file, group,
// or variable. Values are carried in the canonical string form produced by
// the extractor (arrays rendered as "[a, b]", scalars bare), so equality is
// string equality of the canonical form.
type Attribute struct {
	Name  string
	Value string
}

// VariableFacts describes one variable as extracted from a file
type VariableFacts struct {
	// Name is the variable name without its group path
	Name string

	// Group is the hierarchical group path ("/" for the root group)
	Group string

	// DType is the declared data type (e.g. "float32")
	DType string

	// Shape is the ordered list of dimension names the variable spans
	Shape []string

	// Chunking is the chunk size per dimension; nil means contiguous
	// storage or chunking not extracted
	Chunking []int64

	// Attributes are the variable's attributes, in file order
	Attributes []Attribute
}

// ID returns the full variable identifier: group path plus name,
// with root-group variables spelled "/<name>"
func (v VariableFacts) ID() string {
	return VariableID(v.Group, v.Name)
}

// VariableID builds a full variable identifier from a group path and name
func VariableID(group, name string) string {
	group = strings.TrimSuffix(group, "/")
	return group + "/" + name
}

// FileFacts holds the raw structural facts extracted from a single file
// by the external comparator. Order follows file order.
type FileFacts struct {
	// Path is the file the facts were extracted from
	Path string

	// Dimensions are the file's dimensions with their lengths
	Dimensions []Dimension

	// Groups are hierarchical group paths (e.g. "/a/b"), root excluded
	Groups []string

	// Variables are all variables across the root group and subgroups
	Variables []VariableFacts

	// Attributes are the file's global attributes
	Attributes []Attribute
}

// Validate checks the facts for structural completeness: required fields,
// legal dimension lengths, and intra-file name uniqueness. The label
// identifies the file in error messages ("A" or "B").
func (f *FileFacts) Validate(label string) error {
	if f == nil {
		return &MalformedInputError{File: label, Entity: "file", Message: "raw facts are missing"}
	}

	seenDims := make(map[string]bool, len(f.Dimensions))
	for _, d := range f.Dimensions {
		if d.Name == "" {
			return &MalformedInputError{File: label, Entity: "dimension", Message: "dimension without a name"}
		}
		if d.Length < 0 && !d.IsUnlimited() {
			return &MalformedInputError{File: label, Entity: "dimension " + d.Name, Message: "negative length"}
		}
		if seenDims[d.Name] {
			return &MalformedInputError{File: label, Entity: "dimension " + d.Name, Message: "duplicate dimension name"}
		}
		seenDims[d.Name] = true
	}

	seenGroups := make(map[string]bool, len(f.Groups))
	for _, g := range f.Groups {
		if g == "" || !strings.HasPrefix(g, "/") {
			return &MalformedInputError{File: label, Entity: "group " + g, Message: "group path must be hierarchical (start with /)"}
		}
		if seenGroups[g] {
			return &MalformedInputError{File: label, Entity: "group " + g, Message: "duplicate group path"}
		}
		seenGroups[g] = true
	}

	seenVars := make(map[string]bool, len(f.Variables))
	for _, v := range f.Variables {
		if v.Name == "" {
			return &MalformedInputError{File: label, Entity: "variable in group " + v.Group, Message: "variable without a name"}
		}
		if v.DType == "" {
			return &MalformedInputError{File: label, Entity: "variable " + v.ID(), Message: "variable without a dtype"}
		}
		for _, dim := range v.Shape {
			if dim == "" {
				return &MalformedInputError{File: label, Entity: "variable " + v.ID(), Message: "shape references an unnamed dimension"}
			}
		}
		if seenVars[v.ID()] {
			return &MalformedInputError{File: label, Entity: "variable " + v.ID(), Message: "duplicate variable in group"}
		}
		seenVars[v.ID()] = true

		if err := validateAttributes(label, "variable "+v.ID(), v.Attributes); err != nil {
			return err
		}
	}

	return validateAttributes(label, "global attributes", f.Attributes)
}

// validateAttributes checks attribute names for presence and uniqueness
func validateAttributes(label, entity string, attrs []Attribute) error {
	seen := make(map[string]bool, len(attrs))
	for _, a := range attrs {
		if a.Name == "" {
			return &MalformedInputError{File: label, Entity: entity, Message: "attribute without a name"}
		}
		if seen[a.Name] {
			return &MalformedInputError{File: label, Entity: entity, Message: "duplicate attribute " + a.Name}
		}
		seen[a.Name] = true
	}
	return nil
}
