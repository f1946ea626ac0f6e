// Package ui selects and constructs output renderers. Every command result
// flows through a Renderer; the chosen format decides whether the user sees
// styled terminal output, plain text, or JSON.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/vincentqb/DotDash/pkg/types"
	"github.com/vincentqb/DotDash/pkg/ui/json"
	"github.com/vincentqb/DotDash/pkg/ui/terminal"
	"github.com/vincentqb/DotDash/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderReport renders the result of a link, unlink, or status run.
	RenderReport(report *types.Report) error

	// RenderError renders a failure in the renderer's format.
	RenderError(err error) error

	// RenderMessage renders a one-line informational message.
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for the requested format. FormatAuto
// inspects the writer: interactive color terminals get the styled renderer,
// everything else gets plain text.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		// Non-file writers have no terminal to style for.
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
