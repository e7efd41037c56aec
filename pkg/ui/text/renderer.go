// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/velar/brewbump/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.UpdateResult:
		return r.renderUpdate(v)
	case *types.ChecksumResult:
		return r.renderChecksums(v)
	case *types.ConfigResult:
		return r.renderConfig(v)
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderUpdate(res *types.UpdateResult) error {
	var b strings.Builder

	if res.DryRun {
		b.WriteString("Dry run: no files were written\n")
	}
	fmt.Fprintf(&b, "Release %s (version %s)\n", res.Tag, res.Version)

	for _, f := range res.Formulas {
		fmt.Fprintf(&b, "%s %s (%d lines)\n", f.Status(), f.Path, len(f.Changes))
		if !res.DryRun {
			continue
		}
		for _, c := range f.Changes {
			fmt.Fprintf(&b, "  %4d - %s\n", c.Line, strings.TrimSpace(c.Before))
			fmt.Fprintf(&b, "  %4d + %s\n", c.Line, strings.TrimSpace(c.After))
		}
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

// renderChecksums prints sha256sum compatible lines
func (r *Renderer) renderChecksums(res *types.ChecksumResult) error {
	for _, a := range res.Artifacts {
		if _, err := fmt.Fprintf(r.output, "%s  %s\n", a.SHA256, a.Path); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderConfig(res *types.ConfigResult) error {
	_, err := fmt.Fprintf(r.output, "# sources: %s\n%s", strings.Join(res.Sources, ", "), res.Content)
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
