package linker

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/vincentqb/DotDash/pkg/errors"
	"github.com/vincentqb/DotDash/pkg/types"
)

// Unlink removes the symlinks a profile would create, and nothing else.
// A destination is removed only when it is a symlink whose target
// resolves into the profile directory; foreign symlinks and regular
// files are reported and kept. Rendered files inside the profile are
// left alone, they belong to the profile tree.
func (l *Linker) Unlink(profile types.Profile, opts Options) (*Result, error) {
	logger := l.logger.With().Str("profile", profile.Name).Logger()
	logger.Debug().
		Str("home", opts.HomeDir).
		Bool("dryRun", opts.DryRun).
		Msg("Unlinking profile")

	entries, err := l.collectEntries(profile.Path, opts.IgnorePatterns)
	if err != nil {
		return nil, err
	}

	result := &Result{Profile: profile.Name}
	for _, rel := range entries {
		result.Entries = append(result.Entries, l.unlinkEntry(profile, rel, opts))
	}

	logger.Info().
		Int("entries", len(result.Entries)).
		Int("removed", result.Count(StatusRemoved)).
		Int("kept", result.Count(StatusForeign)+result.Count(StatusConflict)).
		Msg("Profile unlinked")

	return result, nil
}

func (l *Linker) unlinkEntry(profile types.Profile, rel string, opts Options) EntryResult {
	m := ComputeMapping(profile.Path, opts.HomeDir, rel)
	res := EntryResult{
		Path:        rel,
		Source:      m.Source,
		Destination: m.Destination,
		Rendered:    m.IsTemplate,
	}

	info, err := l.fs.Lstat(m.Destination)
	switch {
	case err != nil && os.IsNotExist(err):
		res.Status = StatusUnlinked
		res.Message = "nothing to remove"

	case err != nil:
		werr := errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", m.Destination)
		res.Status = StatusError
		res.Message = werr.Error()
		res.Err = werr

	case info.Mode()&os.ModeSymlink == 0:
		werr := errors.Newf(errors.ErrDestinationConflict, "%s exists and is not a symlink", m.Destination).
			WithDetail("destination", m.Destination)
		res.Status = StatusConflict
		res.Message = werr.Error()
		res.Err = werr

	default:
		target, rerr := l.fs.Readlink(m.Destination)
		if rerr != nil {
			werr := errors.Wrapf(rerr, errors.ErrFileAccess, "cannot read symlink %s", m.Destination)
			res.Status = StatusError
			res.Message = werr.Error()
			res.Err = werr
			break
		}

		if !targetInProfile(target, profile.Path) {
			werr := errors.Newf(errors.ErrLinkNotOwned, "%s points at %s, outside profile %s",
				m.Destination, target, profile.Name).
				WithDetail("destination", m.Destination).
				WithDetail("target", target)
			res.Status = StatusForeign
			res.Message = werr.Error()
			res.Err = werr
			break
		}

		if !opts.DryRun {
			if err := l.fs.Remove(m.Destination); err != nil {
				werr := errors.Wrapf(err, errors.ErrSymlinkRemove, "cannot remove symlink %s", m.Destination)
				res.Status = StatusError
				res.Message = werr.Error()
				res.Err = werr
				break
			}
		}
		l.logger.Trace().Str("destination", m.Destination).Str("target", target).Msg("Symlink removed")
		res.Status = StatusRemoved
		res.Message = "unlinked from " + target
	}

	return res
}

// targetInProfile reports whether a symlink target lies inside the
// profile directory.
func targetInProfile(target, profilePath string) bool {
	cleaned := filepath.Clean(target)
	root := filepath.Clean(profilePath)
	return cleaned == root || strings.HasPrefix(cleaned, root+string(filepath.Separator))
}
