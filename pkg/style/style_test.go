// pkg/style/style_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Verify status-to-style mapping and the badge/notice helpers

package style_test

import (
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/vincentqb/DotDash/pkg/style"
)

func TestStatusStyleMapping(t *testing.T) {
	// Statuses that signal completed work share the success style.
	assert.Same(t, style.StatusStyle("linked"), style.StatusStyle("relinked"))
	assert.Same(t, style.StatusStyle("linked"), style.StatusStyle("removed"))

	// Failure statuses share the error style.
	assert.Same(t, style.StatusStyle("conflict"), style.StatusStyle("error"))

	// Advisory statuses share the warning style.
	assert.Same(t, style.StatusStyle("stale"), style.StatusStyle("foreign"))

	// The groups are distinct from each other.
	assert.NotSame(t, style.StatusStyle("linked"), style.StatusStyle("conflict"))
	assert.NotSame(t, style.StatusStyle("linked"), style.StatusStyle("stale"))
	assert.NotSame(t, style.StatusStyle("linked"), style.StatusStyle("unchanged"))

	// Unknown statuses fall back to the info style rather than panicking.
	assert.Same(t, style.StatusStyle("something-new"), style.StatusStyle("unlinked"))
}

func TestBadgeUppercasesStatus(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	assert.Equal(t, "LINKED", style.Badge("linked"))
	assert.Equal(t, "CONFLICT", style.Badge("conflict"))
}

func TestLineHelpersKeepMessageText(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	assert.Equal(t, "careful now", style.WarnLine("careful now"))
	assert.Equal(t, "just so you know", style.InfoLine("just so you know"))
	assert.Contains(t, style.DryRunNotice(), "--dry-run")
}
