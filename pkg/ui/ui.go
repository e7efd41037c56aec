// Package ui provides a unified interface for rendering output in different formats.
// Terminal (styled), text (plain) and JSON output are supported.
package ui

import (
	"io"
	"os"

	"github.com/velar/brewbump/pkg/errors"
	"github.com/velar/brewbump/pkg/ui/json"
	"github.com/velar/brewbump/pkg/ui/terminal"
	"github.com/velar/brewbump/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
// It provides methods for rendering different types of data and messages.
type Renderer interface {
	// RenderResult renders a command result such as *types.UpdateResult
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format. FormatAuto styles output only
// when it goes to a color terminal.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		// Buffers and captured writers are never terminals
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
