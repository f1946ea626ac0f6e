// pkg/linker/unlink_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (symlinks)
// PURPOSE: Test the unlink pass: ownership checks and safe removal

package linker_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vincentqb/DotDash/pkg/errors"
	"github.com/vincentqb/DotDash/pkg/linker"
)

func TestUnlinkRemovesOwnedSymlinks(t *testing.T) {
	l, profile, home := newFixture(t, "default")
	writeEntry(t, profile, "env", "content")
	writeEntry(t, profile, "sub/conf", "nested")

	_, err := l.Link(profile, linker.Options{HomeDir: home})
	require.NoError(t, err)

	result, err := l.Unlink(profile, linker.Options{HomeDir: home})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count(linker.StatusRemoved))
	assert.False(t, result.HasErrors())

	// Links are gone, profile files are not
	_, err = os.Lstat(filepath.Join(home, ".env"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Lstat(filepath.Join(home, "sub", ".conf"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(profile.Path, "env"))
	assert.NoError(t, err)
}

func TestUnlinkKeepsForeignSymlink(t *testing.T) {
	l, profile, home := newFixture(t, "default")
	writeEntry(t, profile, "env", "ours")

	elsewhere := filepath.Join(t.TempDir(), "theirs")
	require.NoError(t, os.WriteFile(elsewhere, []byte("theirs"), 0644))
	require.NoError(t, os.Symlink(elsewhere, filepath.Join(home, ".env")))

	result, err := l.Unlink(profile, linker.Options{HomeDir: home})
	require.NoError(t, err)

	entry := result.Entries[0]
	assert.Equal(t, linker.StatusForeign, entry.Status)
	assert.True(t, errors.IsErrorCode(entry.Err, errors.ErrLinkNotOwned))

	// The foreign link survives
	target, err := os.Readlink(filepath.Join(home, ".env"))
	require.NoError(t, err)
	assert.Equal(t, elsewhere, target)
}

func TestUnlinkKeepsRegularFile(t *testing.T) {
	l, profile, home := newFixture(t, "default")
	writeEntry(t, profile, "env", "ours")
	require.NoError(t, os.WriteFile(filepath.Join(home, ".env"), []byte("precious"), 0644))

	result, err := l.Unlink(profile, linker.Options{HomeDir: home})
	require.NoError(t, err)

	entry := result.Entries[0]
	assert.Equal(t, linker.StatusConflict, entry.Status)
	assert.True(t, errors.IsErrorCode(entry.Err, errors.ErrDestinationConflict))

	data, err := os.ReadFile(filepath.Join(home, ".env"))
	require.NoError(t, err)
	assert.Equal(t, "precious", string(data))
}

func TestUnlinkNothingToRemove(t *testing.T) {
	l, profile, home := newFixture(t, "default")
	writeEntry(t, profile, "env", "never linked")

	result, err := l.Unlink(profile, linker.Options{HomeDir: home})
	require.NoError(t, err)
	assert.Equal(t, linker.StatusUnlinked, result.Entries[0].Status)
	assert.False(t, result.HasErrors())
}

func TestUnlinkDryRunKeepsLinks(t *testing.T) {
	l, profile, home := newFixture(t, "default")
	writeEntry(t, profile, "env", "content")

	_, err := l.Link(profile, linker.Options{HomeDir: home})
	require.NoError(t, err)

	result, err := l.Unlink(profile, linker.Options{HomeDir: home, DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, linker.StatusRemoved, result.Entries[0].Status)

	// Still there
	_, err = os.Readlink(filepath.Join(home, ".env"))
	assert.NoError(t, err)
}

func TestUnlinkLeavesRenderedOutput(t *testing.T) {
	l, profile, home := newFixture(t, "default")
	writeEntry(t, profile, "env.template", "K=$V\n")

	_, err := l.Link(profile, linker.Options{
		HomeDir: home,
		Vars:    map[string]string{"V": "1"},
	})
	require.NoError(t, err)

	result, err := l.Unlink(profile, linker.Options{HomeDir: home})
	require.NoError(t, err)
	assert.Equal(t, linker.StatusRemoved, result.Entries[0].Status)

	// The link is gone but the rendered file stays with the profile
	_, err = os.Lstat(filepath.Join(home, ".env"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(profile.Path, "env.rendered"))
	assert.NoError(t, err)
}
