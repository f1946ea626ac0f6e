// Package profiles resolves named profiles against the dotfiles root.
//
// A profile is a directory directly under the root whose contents are
// linked into the home directory. Resolution is strict: every requested
// name must exist as a directory, and a miss aborts the invocation
// before anything is linked or rendered.
package profiles

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vincentqb/DotDash/pkg/config"
	"github.com/vincentqb/DotDash/pkg/errors"
	"github.com/vincentqb/DotDash/pkg/logging"
	"github.com/vincentqb/DotDash/pkg/types"
)

// ProfileConfigName is the per-profile configuration file looked up
// inside each profile directory.
const ProfileConfigName = ".dotdash.toml"

// NormalizeName removes trailing slashes from a profile name. Shell
// completion appends a slash to directory names; `dotdash link default/`
// should behave like `dotdash link default`.
func NormalizeName(name string) string {
	return strings.TrimRight(name, "/")
}

// NormalizeNames normalizes every name in the slice.
func NormalizeNames(names []string) []string {
	normalized := make([]string, len(names))
	for i, name := range names {
		normalized[i] = NormalizeName(name)
	}
	return normalized
}

// Get resolves the named profiles under the dotfiles root, preserving
// the order the names were given in. Every name must resolve to an
// existing directory; missing or invalid names make the whole call fail
// so nothing is partially linked.
func Get(fs types.FS, root string, names []string) ([]types.Profile, error) {
	logger := logging.GetLogger("profiles")
	logger.Trace().Str("root", root).Strs("names", names).Msg("Resolving profiles")

	names = NormalizeNames(names)

	var missing []string
	profiles := make([]types.Profile, 0, len(names))
	for _, name := range names {
		profile, err := load(fs, root, name)
		if err != nil {
			if errors.IsErrorCode(err, errors.ErrProfileNotFound) {
				missing = append(missing, name)
				continue
			}
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	if len(missing) > 0 {
		available, _ := Available(fs, root)
		return nil, errors.Newf(errors.ErrProfileNotFound, "profile(s) not found: %s",
			strings.Join(missing, ", ")).
			WithDetail("missing", missing).
			WithDetail("root", root).
			WithDetail("available", available)
	}

	logger.Debug().Int("count", len(profiles)).Msg("Profiles resolved")
	return profiles, nil
}

// load builds a single Profile, reading its .dotdash.toml when present.
func load(fs types.FS, root, name string) (types.Profile, error) {
	if err := validateName(name); err != nil {
		return types.Profile{}, err
	}

	path := filepath.Join(root, name)
	info, err := fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.Profile{}, errors.Newf(errors.ErrProfileNotFound, "profile %q not found under %s", name, root).
				WithDetail("profile", name).
				WithDetail("path", path)
		}
		return types.Profile{}, errors.Wrapf(err, errors.ErrProfileAccess, "cannot access profile %q", name).
			WithDetail("path", path)
	}
	if !info.IsDir() {
		return types.Profile{}, errors.Newf(errors.ErrProfileNotFound, "profile %q is not a directory", name).
			WithDetail("profile", name).
			WithDetail("path", path)
	}

	profile := types.Profile{
		Name: name,
		Path: path,
	}

	cfg, err := loadConfig(fs, path)
	if err != nil {
		return types.Profile{}, errors.Wrapf(err, errors.ErrConfigLoad, "invalid %s in profile %q", ProfileConfigName, name).
			WithDetail("profile", name)
	}
	profile.Config = cfg

	return profile, nil
}

// loadConfig parses the profile's .dotdash.toml. A missing file is not
// an error; most profiles carry no configuration at all.
func loadConfig(fs types.FS, profilePath string) (config.ProfileConfig, error) {
	data, err := fs.ReadFile(filepath.Join(profilePath, ProfileConfigName))
	if err != nil {
		if os.IsNotExist(err) {
			return config.ProfileConfig{}, nil
		}
		return config.ProfileConfig{}, err
	}
	return config.ParseProfileConfig(data)
}

// validateName rejects names that would escape the dotfiles root. A
// profile is always a direct child directory of the root.
func validateName(name string) error {
	if name == "" {
		return errors.New(errors.ErrProfileInvalid, "profile name is empty")
	}
	if name == "." || name == ".." || strings.ContainsAny(name, "/\\") {
		return errors.Newf(errors.ErrProfileInvalid, "invalid profile name %q", name).
			WithDetail("profile", name)
	}
	return nil
}

// Available lists the profile names under the dotfiles root, sorted.
// Dot-prefixed directories are skipped; regular files are not profiles.
// Used for shell completion and not-found diagnostics.
func Available(fs types.FS, root string) ([]string, error) {
	entries, err := fs.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read dotfiles root %s", root)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}
