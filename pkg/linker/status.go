package linker

import (
	"os"
	"path/filepath"

	"github.com/vincentqb/DotDash/pkg/errors"
	"github.com/vincentqb/DotDash/pkg/types"
)

// Status classifies every entry of a profile without mutating anything:
// no rendering, no directory creation, no link changes.
//
//	linked    - destination is a symlink pointing at the entry's source
//	unlinked  - nothing exists at the destination
//	foreign   - destination is a symlink pointing elsewhere
//	conflict  - destination exists and is not a symlink
//	stale     - template entry whose rendered output is missing or older
//	            than the template (reported before the link state)
func (l *Linker) Status(profile types.Profile, opts Options) (*Result, error) {
	logger := l.logger.With().Str("profile", profile.Name).Logger()
	logger.Debug().Str("home", opts.HomeDir).Msg("Checking profile status")

	entries, err := l.collectEntries(profile.Path, opts.IgnorePatterns)
	if err != nil {
		return nil, err
	}

	result := &Result{Profile: profile.Name}
	for _, rel := range entries {
		result.Entries = append(result.Entries, l.statusEntry(profile, rel, opts))
	}

	logger.Debug().
		Int("entries", len(result.Entries)).
		Int("linked", result.Count(StatusLinked)).
		Int("unlinked", result.Count(StatusUnlinked)).
		Int("stale", result.Count(StatusStale)).
		Msg("Profile status computed")

	return result, nil
}

func (l *Linker) statusEntry(profile types.Profile, rel string, opts Options) EntryResult {
	m := ComputeMapping(profile.Path, opts.HomeDir, rel)
	res := EntryResult{
		Path:        rel,
		Source:      m.Source,
		Destination: m.Destination,
		Rendered:    m.IsTemplate,
	}

	if m.IsTemplate && l.templateStale(profile, rel, m) {
		res.Status = StatusStale
		res.Message = "rendered output missing or older than template"
		return res
	}

	info, err := l.fs.Lstat(m.Destination)
	switch {
	case err != nil && os.IsNotExist(err):
		res.Status = StatusUnlinked

	case err != nil:
		werr := errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", m.Destination)
		res.Status = StatusError
		res.Message = werr.Error()
		res.Err = werr

	case info.Mode()&os.ModeSymlink == 0:
		res.Status = StatusConflict
		res.Message = m.Destination + " exists and is not a symlink"

	default:
		target, rerr := l.fs.Readlink(m.Destination)
		if rerr == nil && filepath.Clean(target) == filepath.Clean(m.Source) {
			res.Status = StatusLinked
			break
		}
		res.Status = StatusForeign
		if rerr == nil {
			res.Message = "points at " + target
		}
	}

	return res
}

// templateStale reports whether a template's rendered output is missing
// or older than the template itself.
func (l *Linker) templateStale(profile types.Profile, rel string, m Mapping) bool {
	renderedInfo, err := l.fs.Stat(m.Source)
	if err != nil {
		return true
	}
	templateInfo, err := l.fs.Stat(profile.GetFilePath(rel))
	if err != nil {
		return false
	}
	return templateInfo.ModTime().After(renderedInfo.ModTime())
}
