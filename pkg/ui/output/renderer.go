package output

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/vincentqb/DotDash/pkg/errors"
	"github.com/vincentqb/DotDash/pkg/types"
	"github.com/vincentqb/DotDash/pkg/ui/lipbalm"
	"github.com/vincentqb/DotDash/pkg/ui/output/styles"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// summaryOrder fixes the order counts appear in the summary line.
var summaryOrder = []string{
	"linked", "relinked", "unchanged", "removed",
	"unlinked", "foreign", "conflict", "stale", "error",
}

// Renderer turns reports into styled terminal output by executing the
// embedded templates and expanding their style tags through lipbalm.
type Renderer struct {
	writer  io.Writer
	noColor bool
	tmpl    *template.Template
}

// NewRenderer creates a renderer writing to w. With noColor the style
// layer is bypassed entirely and plain text comes out.
func NewRenderer(w io.Writer, noColor bool) (*Renderer, error) {
	lr := lipgloss.NewRenderer(w)
	if noColor {
		lr.SetColorProfile(termenv.Ascii)
	}
	lipbalm.SetDefaultRenderer(lr)

	tmpl, err := template.New("output").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse output templates: %w", err)
	}

	return &Renderer{
		writer:  w,
		noColor: noColor,
		tmpl:    tmpl,
	}, nil
}

// Render writes the styled report.
func (r *Renderer) Render(report *types.Report) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "report", report); err != nil {
		return fmt.Errorf("failed to execute report template: %w", err)
	}

	expanded, err := lipbalm.ExpandTags(buf.String(), lipbalm.StyleMap(styles.StyleRegistry))
	if err != nil {
		return err
	}

	_, err = io.WriteString(r.writer, expanded)
	return err
}

// RenderMessage writes a single line using the named style.
func (r *Renderer) RenderMessage(styleName, msg string) error {
	_, err := fmt.Fprintln(r.writer, styles.GetStyle(styleName).Render(msg))
	return err
}

// RenderError writes the error prominently, plus the available profile
// names when the error carries them.
func (r *Renderer) RenderError(err error) error {
	line := styles.GetStyle("Error").Render(fmt.Sprintf("Error: %v", err))
	if _, werr := fmt.Fprintln(r.writer, line); werr != nil {
		return werr
	}

	if available, ok := errors.GetErrorDetails(err)["available"].([]string); ok && len(available) > 0 {
		hint := styles.GetStyle("Muted").Render("Available profiles: " + strings.Join(available, ", "))
		if _, werr := fmt.Fprintln(r.writer, hint); werr != nil {
			return werr
		}
	}

	return nil
}

// templateFuncs builds the function map shared by the output templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"esc":         xmlEscape,
		"pad":         func(s string) string { return fmt.Sprintf("%-20s", s) },
		"statusWord":  func(status string) string { return fmt.Sprintf("%-9s", status) },
		"statusTag":   statusTag,
		"profileTag":  profileTag,
		"entryNote":   entryNote,
		"summaryLine": summaryLine,
	}
}

// profileTag picks the header style for a profile by its aggregated
// status; profiles with failures stand out.
func profileTag(status string) string {
	if status == "alert" {
		return "Error"
	}
	return "ProfileHeader"
}

// statusTag maps an entry status to the style tag its status word is
// wrapped in.
func statusTag(status string) string {
	switch status {
	case "linked", "relinked", "removed":
		return "Success"
	case "unchanged":
		return "Muted"
	case "stale", "foreign":
		return "Warning"
	case "conflict", "error":
		return "Error"
	default:
		return "Info"
	}
}

// entryNote builds the trailing explanation for one entry line. The
// result carries its own style tags; interpolated values are escaped so
// arbitrary paths cannot break tag expansion.
func entryNote(entry types.EntryReport, dryRun bool) string {
	if entry.Failed {
		return "<Error>" + xmlEscape(entry.Message) + "</Error>"
	}

	switch entry.Status {
	case "linked":
		verb := "linked to"
		if dryRun {
			verb = "will be linked to"
		}
		return "<Muted>" + verb + "</Muted> <Destination>" + xmlEscape(entry.Destination) + "</Destination>"
	case "unchanged":
		return "<Muted>already linked to</Muted> <Destination>" + xmlEscape(entry.Destination) + "</Destination>"
	case "unlinked":
		if entry.Message != "" {
			return "<Muted>" + xmlEscape(entry.Message) + "</Muted>"
		}
		return "<Muted>not linked</Muted>"
	case "stale", "foreign":
		return "<Warning>" + xmlEscape(entry.Message) + "</Warning>"
	default:
		if entry.Message == "" {
			return ""
		}
		return "<Muted>" + xmlEscape(entry.Message) + "</Muted>"
	}
}

// summaryLine renders the closing count line for a report.
func summaryLine(report *types.Report) string {
	var parts []string
	for _, status := range summaryOrder {
		if n := report.CountEntries(status); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, status))
		}
	}
	if len(parts) == 0 {
		return "<NoContent>nothing to do</NoContent>\n"
	}
	return "<Muted>" + strings.Join(parts, ", ") + "</Muted>\n"
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// xmlEscape protects dynamic content from the tag expansion pass.
func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}
