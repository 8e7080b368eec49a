package extract

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/scidiff/ncdelta/pkg/models"
)

// FactsFile reads structural facts from a YAML dump file produced by an
// external extraction tool, instead of invoking the tool itself
type FactsFile struct{}

// NewFactsFile creates a facts-file extractor
func NewFactsFile() *FactsFile {
	return &FactsFile{}
}

// Extract parses the YAML facts document at path
func (e *FactsFile) Extract(ctx context.Context, path string, opts Options) (*models.FileFacts, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &models.ExternalComparatorError{
			File: path,
			Err:  fmt.Errorf("failed to read facts file: %w", err),
		}
	}

	return parseFacts(data, path, opts)
}

// Name returns the extractor name
func (e *FactsFile) Name() string {
	return "factsfile"
}

// dimLength accepts either an integer or the word "unlimited"
type dimLength int64

func (l *dimLength) UnmarshalYAML(node *yaml.Node) error {
	if node.Value == "unlimited" {
		*l = dimLength(models.UnlimitedLength)
		return nil
	}

	var n int64
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("dimension length must be an integer or 'unlimited': %w", err)
	}
	*l = dimLength(n)
	return nil
}

// factsDoc is the on-disk YAML shape of a structural dump
type factsDoc struct {
	Dimensions []dimDoc  `yaml:"dimensions"`
	Groups     []string  `yaml:"groups"`
	Variables  []varDoc  `yaml:"variables"`
	Attributes []attrDoc `yaml:"attributes"`
}

type dimDoc struct {
	Name   string    `yaml:"name"`
	Length dimLength `yaml:"length"`
}

type varDoc struct {
	Name       string    `yaml:"name"`
	Group      string    `yaml:"group"`
	DType      string    `yaml:"dtype"`
	Shape      []string  `yaml:"shape"`
	Chunking   []int64   `yaml:"chunking"`
	Attributes []attrDoc `yaml:"attributes"`
}

type attrDoc struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// parseFacts converts a YAML structural dump into FileFacts, trimming
// attributes and chunking when the extract options exclude them so the
// downstream comparison sees only what was asked for
func parseFacts(data []byte, path string, opts Options) (*models.FileFacts, error) {
	var doc factsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &models.ExternalComparatorError{
			File: path,
			Err:  fmt.Errorf("failed to parse facts document: %w", err),
		}
	}

	facts := &models.FileFacts{Path: path}

	for _, d := range doc.Dimensions {
		facts.Dimensions = append(facts.Dimensions, models.Dimension{
			Name:   d.Name,
			Length: int64(d.Length),
		})
	}

	facts.Groups = doc.Groups

	for _, v := range doc.Variables {
		group := v.Group
		if group == "" {
			group = models.RootGroup
		}

		variable := models.VariableFacts{
			Name:  v.Name,
			Group: group,
			DType: v.DType,
			Shape: v.Shape,
		}
		if opts.IncludeChunking {
			variable.Chunking = v.Chunking
		}
		if opts.IncludeAttributes {
			variable.Attributes = toAttributes(v.Attributes)
		}
		facts.Variables = append(facts.Variables, variable)
	}

	if opts.IncludeAttributes {
		facts.Attributes = toAttributes(doc.Attributes)
	}

	return facts, nil
}

func toAttributes(docs []attrDoc) []models.Attribute {
	attrs := make([]models.Attribute, 0, len(docs))
	for _, a := range docs {
		attrs = append(attrs, models.Attribute{Name: a.Name, Value: a.Value})
	}
	return attrs
}
