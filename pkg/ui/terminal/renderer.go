// Package terminal provides rich terminal output with colors and styling.
package terminal

import (
	"fmt"
	"io"

	"github.com/vincentqb/DotDash/pkg/types"
	"github.com/vincentqb/DotDash/pkg/ui/output"
)

// Renderer provides styled terminal output by delegating to the template
// pipeline in pkg/ui/output.
type Renderer struct {
	output   io.Writer
	pipeline *output.Renderer
}

// New creates a new terminal renderer writing to w.
func New(w io.Writer) (*Renderer, error) {
	pipeline, err := output.NewRenderer(w, false)
	if err != nil {
		return nil, fmt.Errorf("failed to create output renderer: %w", err)
	}

	return &Renderer{
		output:   w,
		pipeline: pipeline,
	}, nil
}

// RenderReport renders the report through the styled template pipeline.
func (r *Renderer) RenderReport(report *types.Report) error {
	return r.pipeline.Render(report)
}

// RenderError renders an error with the error style.
func (r *Renderer) RenderError(err error) error {
	return r.pipeline.RenderError(err)
}

// RenderMessage renders an informational message.
func (r *Renderer) RenderMessage(msg string) error {
	return r.pipeline.RenderMessage("Info", msg)
}
