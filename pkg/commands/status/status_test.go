// pkg/commands/status/status_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (symlinks)
// PURPOSE: Test the status command through the full pipeline

package status_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vincentqb/DotDash/pkg/commands/link"
	"github.com/vincentqb/DotDash/pkg/commands/status"
)

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestStatusProfilesReportsMixedStates(t *testing.T) {
	root := t.TempDir()
	home := t.TempDir()
	writeFile(t, root, "default/bashrc", "a")
	writeFile(t, root, "default/vimrc", "b")

	// Link everything, then put a regular file where .vimrc was
	_, err := link.LinkProfiles(link.LinkProfilesOptions{
		DotfilesRoot: root,
		HomeDir:      home,
		ProfileNames: []string{"default"},
		Vars:         map[string]string{},
	})
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(home, ".vimrc")))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".vimrc"), []byte("local"), 0644))

	report, err := status.StatusProfiles(status.StatusProfilesOptions{
		DotfilesRoot: root,
		HomeDir:      home,
		ProfileNames: []string{"default"},
	})
	require.NoError(t, err)

	assert.Equal(t, "status", report.Command)
	byPath := map[string]string{}
	for _, e := range report.Profiles[0].Entries {
		byPath[e.Path] = e.Status
	}
	assert.Equal(t, "linked", byPath["bashrc"])
	assert.Equal(t, "conflict", byPath["vimrc"])

	// Status is read-only: a conflict is informational, not a failure
	assert.False(t, report.HasFailures())

	// The conflicting file is untouched
	data, err := os.ReadFile(filepath.Join(home, ".vimrc"))
	require.NoError(t, err)
	assert.Equal(t, "local", string(data))
}

func TestStatusProfilesNeverWrites(t *testing.T) {
	root := t.TempDir()
	home := t.TempDir()
	writeFile(t, root, "default/env.template", "K=$V\n")

	report, err := status.StatusProfiles(status.StatusProfilesOptions{
		DotfilesRoot: root,
		HomeDir:      home,
		ProfileNames: []string{"default"},
	})
	require.NoError(t, err)

	assert.Equal(t, "stale", report.Profiles[0].Entries[0].Status)
	assert.False(t, report.DryRun)

	_, err = os.Stat(filepath.Join(root, "default", "env.rendered"))
	assert.True(t, os.IsNotExist(err))
	entries, err := os.ReadDir(home)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
