// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/velar/brewbump/pkg/types"
	"github.com/velar/brewbump/pkg/ui/output/styles"
)

// Renderer provides rich terminal output using the semantic styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.UpdateResult:
		return r.write(renderUpdate(v))
	case *types.ChecksumResult:
		return r.write(renderChecksums(v))
	case *types.ConfigResult:
		return r.write(renderConfig(v))
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func renderUpdate(res *types.UpdateResult) string {
	var b strings.Builder

	if res.DryRun {
		b.WriteString(styles.GetStyle("DryRunBanner").Render("DRY RUN: no files were written"))
		b.WriteString("\n")
	}
	release := fmt.Sprintf("Release %s", res.Tag)
	bare := styles.GetStyle("Muted").Render(fmt.Sprintf(" (version %s)", res.Version))
	b.WriteString(styles.GetStyle("Header").Render(release + bare))
	b.WriteString("\n")

	for _, f := range res.Formulas {
		b.WriteString(statusStyle(f).Render(fmt.Sprintf("%-12s", f.Status())))
		b.WriteString(" ")
		b.WriteString(styles.GetStyle("FilePath").Render(f.Path))
		b.WriteString(styles.GetStyle("Muted").Render(fmt.Sprintf(" %d lines", len(f.Changes))))
		b.WriteString("\n")

		if !res.DryRun {
			continue
		}
		for _, c := range f.Changes {
			num := styles.GetStyle("LineNumber").Render(fmt.Sprintf("%d", c.Line))
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, num,
				styles.GetStyle("Removed").Render("- "+strings.TrimSpace(c.Before))))
			b.WriteString("\n")
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, num,
				styles.GetStyle("Added").Render("+ "+strings.TrimSpace(c.After))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func statusStyle(f *types.FormulaResult) lipgloss.Style {
	switch f.Status() {
	case types.StatusUpdated:
		return styles.GetStyle("Success")
	case types.StatusWouldUpdate:
		return styles.GetStyle("Warning")
	default:
		return styles.GetStyle("Muted")
	}
}

func renderChecksums(res *types.ChecksumResult) string {
	var b strings.Builder
	for _, a := range res.Artifacts {
		b.WriteString(styles.GetStyle("Digest").Render(a.SHA256))
		b.WriteString("  ")
		b.WriteString(styles.GetStyle("FilePath").Render(a.Path))
		b.WriteString("\n")
	}
	return b.String()
}

func renderConfig(res *types.ConfigResult) string {
	header := styles.GetStyle("Muted").Render("# sources: " + strings.Join(res.Sources, ", "))
	return header + "\n" + res.Content
}

func (r *Renderer) write(s string) error {
	_, err := io.WriteString(r.output, s)
	return err
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, styles.GetStyle("Error").Render("Error: ")+err.Error())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.GetStyle("Info").Render(msg))
	return err
}
