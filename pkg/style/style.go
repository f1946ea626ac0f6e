// Package style provides pterm-backed styling for the terminal chrome that
// lives outside the report pipeline: status badges, the dry-run notice, and
// the warning lines the CLI prints to stderr. Report bodies are styled by
// pkg/ui/output; this package covers everything around them.
package style

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/vincentqb/DotDash/pkg/linker"
)

var (
	successStyle = pterm.NewStyle(pterm.FgGreen)
	mutedStyle   = pterm.NewStyle(pterm.FgGray)
	warnStyle    = pterm.NewStyle(pterm.FgYellow)
	errorStyle   = pterm.NewStyle(pterm.FgRed, pterm.Bold)
	infoStyle    = pterm.NewStyle(pterm.FgCyan)
)

// StatusStyle returns the pterm style for an entry status word.
// Unknown statuses get the info style so new states degrade gracefully.
func StatusStyle(status string) *pterm.Style {
	switch linker.EntryStatus(status) {
	case linker.StatusLinked, linker.StatusRelinked, linker.StatusRemoved:
		return successStyle
	case linker.StatusUnchanged:
		return mutedStyle
	case linker.StatusStale, linker.StatusForeign:
		return warnStyle
	case linker.StatusConflict, linker.StatusError:
		return errorStyle
	default:
		return infoStyle
	}
}

// Badge renders a status as an uppercase colored word, e.g. "LINKED".
func Badge(status string) string {
	return StatusStyle(status).Sprint(strings.ToUpper(status))
}

// WarnLine styles an advisory message, such as the dotfiles-root fallback
// warning. pterm degrades to plain text when the output is not a terminal.
func WarnLine(msg string) string {
	return warnStyle.Sprint(msg)
}

// InfoLine styles an informational message.
func InfoLine(msg string) string {
	return infoStyle.Sprint(msg)
}

// DryRunNotice is printed after a dry run so the advisory survives even when
// the report itself is piped or rendered as JSON.
func DryRunNotice() string {
	return warnStyle.Sprint("dry run:") + " no changes were made; re-run without --dry-run to apply"
}
