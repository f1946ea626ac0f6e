// Package text provides plain text output without any styling.
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/vincentqb/DotDash/pkg/errors"
	"github.com/vincentqb/DotDash/pkg/types"
)

var summaryOrder = []string{
	"linked", "relinked", "unchanged", "removed",
	"unlinked", "foreign", "conflict", "stale", "error",
}

// Renderer writes reports as unstyled text for pipes and NO_COLOR terminals.
// The layout mirrors the terminal renderer so switching formats never changes
// what information the user sees.
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer.
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderReport writes one block per profile followed by a summary line.
func (r *Renderer) RenderReport(report *types.Report) error {
	var b strings.Builder

	if report.DryRun {
		b.WriteString("DRY RUN no changes were made\n\n")
	}

	for _, profile := range report.Profiles {
		b.WriteString(profile.Name)
		if profile.HasConfig {
			b.WriteString(" .dotdash.toml")
		}
		b.WriteByte('\n')

		if len(profile.Entries) == 0 {
			b.WriteString("  profile has no entries\n")
		}
		for _, entry := range profile.Entries {
			line := fmt.Sprintf("  %-9s %-20s %s", entry.Status, entry.Path, entryNote(entry, report.DryRun))
			b.WriteString(strings.TrimRight(line, " "))
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	b.WriteString(summaryLine(report))

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError writes the error and, for unknown-profile failures, the list
// of profiles that do exist.
func (r *Renderer) RenderError(err error) error {
	if _, werr := fmt.Fprintf(r.output, "Error: %v\n", err); werr != nil {
		return werr
	}
	if available, ok := errors.GetErrorDetails(err)["available"].([]string); ok && len(available) > 0 {
		if _, werr := fmt.Fprintf(r.output, "Available profiles: %s\n", strings.Join(available, ", ")); werr != nil {
			return werr
		}
	}
	return nil
}

// RenderMessage writes a plain message line.
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func entryNote(entry types.EntryReport, dryRun bool) string {
	if entry.Failed {
		return entry.Message
	}

	switch entry.Status {
	case "linked":
		if dryRun {
			return "will be linked to " + entry.Destination
		}
		return "linked to " + entry.Destination
	case "unchanged":
		return "already linked to " + entry.Destination
	case "unlinked":
		if entry.Message != "" {
			return entry.Message
		}
		return "not linked"
	default:
		return entry.Message
	}
}

func summaryLine(report *types.Report) string {
	var parts []string
	for _, status := range summaryOrder {
		if n := report.CountEntries(status); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, status))
		}
	}
	if len(parts) == 0 {
		return "nothing to do\n"
	}
	return strings.Join(parts, ", ") + "\n"
}
