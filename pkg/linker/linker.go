// Package linker implements the core dotdash pass: walking a profile
// tree, rendering templates, and creating or updating symlinks under
// the home directory.
//
// A run is a single linear pass, one entry at a time. Entries are
// independent: a failed render or a destination conflict is recorded in
// the entry's result and the pass moves on. Only profile-level failures
// (an unreadable profile directory) abort a run.
package linker

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
	"github.com/vincentqb/DotDash/pkg/errors"
	"github.com/vincentqb/DotDash/pkg/logging"
	"github.com/vincentqb/DotDash/pkg/template"
	"github.com/vincentqb/DotDash/pkg/types"
)

// Linker walks profiles and maintains their symlinks through an
// injected filesystem.
type Linker struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a Linker operating on the given filesystem.
func New(fs types.FS) *Linker {
	return &Linker{
		fs:     fs,
		logger: logging.GetLogger("linker"),
	}
}

// Options configures a single pass over one profile.
type Options struct {
	// HomeDir is the absolute directory links are created under.
	HomeDir string

	// Vars is the template substitution mapping, normally the process
	// environment. It is passed in explicitly so rendering stays
	// deterministic and testable.
	Vars map[string]string

	// Mode selects the missing-variable policy for template rendering.
	Mode template.Mode

	// IgnorePatterns lists additional entry names to skip, in
	// filepath.Match syntax.
	IgnorePatterns []string

	// DryRun computes and reports the full plan without touching the
	// filesystem.
	DryRun bool
}

// Link walks the profile, renders templates, and creates or updates one
// symlink per entry. The returned result carries every entry outcome;
// the error is non-nil only when the profile itself cannot be walked.
func (l *Linker) Link(profile types.Profile, opts Options) (*Result, error) {
	logger := l.logger.With().Str("profile", profile.Name).Logger()
	logger.Debug().
		Str("home", opts.HomeDir).
		Bool("dryRun", opts.DryRun).
		Msg("Linking profile")

	entries, err := l.collectEntries(profile.Path, opts.IgnorePatterns)
	if err != nil {
		return nil, err
	}

	result := &Result{Profile: profile.Name}
	for _, rel := range entries {
		result.Entries = append(result.Entries, l.linkEntry(profile, rel, opts))
	}

	logger.Info().
		Int("entries", len(result.Entries)).
		Int("linked", result.Count(StatusLinked)).
		Int("relinked", result.Count(StatusRelinked)).
		Int("unchanged", result.Count(StatusUnchanged)).
		Int("conflicts", result.Count(StatusConflict)).
		Int("errors", result.Count(StatusError)).
		Msg("Profile linked")

	return result, nil
}

// linkEntry renders and links a single entry.
func (l *Linker) linkEntry(profile types.Profile, rel string, opts Options) EntryResult {
	m := ComputeMapping(profile.Path, opts.HomeDir, rel)
	res := EntryResult{
		Path:        rel,
		Source:      m.Source,
		Destination: m.Destination,
		Rendered:    m.IsTemplate,
	}

	if m.IsTemplate {
		if err := l.renderEntry(profile, rel, opts); err != nil {
			res.Status = StatusError
			res.Message = err.Error()
			res.Err = err
			return res
		}
	}

	status, message, err := l.placeLink(m.Source, m.Destination, opts.DryRun)
	res.Status = status
	res.Message = message
	res.Err = err
	return res
}

// renderEntry renders a template entry to its sibling .rendered file.
// Under dry-run the substitution still happens in memory so missing
// variables are reported, but nothing is written.
func (l *Linker) renderEntry(profile types.Profile, rel string, opts Options) error {
	path := profile.GetFilePath(rel)

	if opts.DryRun {
		data, err := l.fs.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot read template %s", path)
		}
		_, err = template.Render(string(data), opts.Vars, opts.Mode)
		return err
	}

	_, err := template.RenderFile(l.fs, path, opts.Vars, opts.Mode)
	return err
}

// placeLink creates or replaces the symlink at destination so it points
// at source. Existing symlinks are replaced regardless of target;
// anything else at the destination is a conflict and is left untouched.
func (l *Linker) placeLink(source, destination string, dryRun bool) (EntryStatus, string, error) {
	info, err := l.fs.Lstat(destination)
	switch {
	case err != nil && os.IsNotExist(err):
		if !dryRun {
			if err := l.fs.MkdirAll(filepath.Dir(destination), 0755); err != nil {
				werr := errors.Wrapf(err, errors.ErrDirCreate, "cannot create parent directory for %s", destination)
				return StatusError, werr.Error(), werr
			}
			if err := l.fs.Symlink(source, destination); err != nil {
				werr := errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot create symlink %s", destination)
				return StatusError, werr.Error(), werr
			}
		}
		l.logger.Trace().Str("destination", destination).Str("source", source).Msg("Symlink created")
		return StatusLinked, "", nil

	case err != nil:
		werr := errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", destination)
		return StatusError, werr.Error(), werr

	case info.Mode()&os.ModeSymlink != 0:
		target, rerr := l.fs.Readlink(destination)
		if rerr == nil && filepath.Clean(target) == filepath.Clean(source) {
			return StatusUnchanged, "", nil
		}
		if !dryRun {
			if err := l.fs.Remove(destination); err != nil {
				werr := errors.Wrapf(err, errors.ErrSymlinkRemove, "cannot replace symlink %s", destination)
				return StatusError, werr.Error(), werr
			}
			if err := l.fs.Symlink(source, destination); err != nil {
				werr := errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot create symlink %s", destination)
				return StatusError, werr.Error(), werr
			}
		}
		message := "replaced existing symlink"
		if rerr == nil {
			message = "replaced symlink to " + target
		}
		l.logger.Trace().Str("destination", destination).Str("previous", target).Msg("Symlink replaced")
		return StatusRelinked, message, nil

	default:
		err := errors.Newf(errors.ErrDestinationConflict, "%s exists and is not a symlink", destination).
			WithDetail("destination", destination)
		return StatusConflict, err.Error(), err
	}
}

// collectEntries walks the profile directory and returns the relative
// paths of all linkable entries, sorted. Dot-prefixed names, rendered
// outputs, and ignore-pattern matches are skipped; directories are
// descended into, never linked themselves.
func (l *Linker) collectEntries(profilePath string, ignore []string) ([]string, error) {
	var entries []string

	var walk func(rel string) error
	walk = func(rel string) error {
		dir := filepath.Join(profilePath, rel)
		dirEntries, err := l.fs.ReadDir(dir)
		if err != nil {
			return errors.Wrapf(err, errors.ErrProfileAccess, "cannot read profile directory %s", dir)
		}

		for _, entry := range dirEntries {
			name := entry.Name()
			if skipEntry(name, entry.IsDir()) {
				l.logger.Trace().Str("name", name).Msg("Entry skipped")
				continue
			}
			if matchesAny(name, ignore) {
				l.logger.Trace().Str("name", name).Msg("Entry matches ignore pattern")
				continue
			}

			entryRel := filepath.Join(rel, name)
			if entry.IsDir() {
				if err := walk(entryRel); err != nil {
					return err
				}
				continue
			}
			entries = append(entries, entryRel)
		}
		return nil
	}

	if err := walk(""); err != nil {
		return nil, err
	}

	sort.Strings(entries)
	return entries, nil
}
