// Package json provides machine-readable JSON output.
package json

import (
	"encoding/json"
	"io"

	"github.com/vincentqb/DotDash/pkg/errors"
	"github.com/vincentqb/DotDash/pkg/types"
)

// Renderer encodes command results as indented JSON, one document per call.
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer.
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{
		output:  output,
		encoder: encoder,
	}, nil
}

// RenderReport encodes the report as a single JSON document.
func (r *Renderer) RenderReport(report *types.Report) error {
	return r.encoder.Encode(report)
}

// RenderError encodes an error together with its code, and details when the
// error carries them, so scripts can branch without parsing message text.
func (r *Renderer) RenderError(err error) error {
	obj := map[string]interface{}{
		"error": err.Error(),
		"code":  errors.GetErrorCode(err),
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		obj["details"] = details
	}
	return r.encoder.Encode(obj)
}

// RenderMessage encodes a simple message object.
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
