package extract

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/scidiff/ncdelta/pkg/models"
)

// Command invokes an external dump tool that writes the YAML facts
// document for a file to stdout. The file path is appended as the final
// argument, after any configured arguments and the option flags.
type Command struct {
	name string
	args []string
}

// NewCommand creates a command-backed extractor
func NewCommand(name string, args ...string) *Command {
	return &Command{name: name, args: args}
}

// Extract runs the dump tool against path and parses its output.
// Spawn, exit, and parse failures all wrap into *models.ExternalComparatorError.
func (c *Command) Extract(ctx context.Context, path string, opts Options) (*models.FileFacts, error) {
	args := append([]string{}, c.args...)
	if opts.IncludeAttributes {
		args = append(args, "--attributes")
	}
	if opts.IncludeChunking {
		args = append(args, "--chunking")
	}
	args = append(args, path)

	cmd := exec.CommandContext(ctx, c.name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			err = fmt.Errorf("%s: %w: %s", c.name, err, detail)
		} else {
			err = fmt.Errorf("%s: %w", c.name, err)
		}
		return nil, &models.ExternalComparatorError{File: path, Err: err}
	}

	return parseFacts(stdout.Bytes(), path, opts)
}

// Name returns the extractor name
func (c *Command) Name() string {
	return "command"
}
