package types

import (
	"path/filepath"

	"github.com/vincentqb/DotDash/pkg/config"
)

// Profile represents a directory containing dotfiles to be linked into home
type Profile struct {
	// Name is the profile name (usually the directory name)
	Name string

	// Path is the absolute path to the profile directory
	Path string

	// Config contains profile-specific configuration from .dotdash.toml
	Config config.ProfileConfig
}

// GetFilePath returns the full path to a file within the profile
func (p *Profile) GetFilePath(filename string) string {
	return filepath.Join(p.Path, filename)
}
