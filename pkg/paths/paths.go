// Package paths provides centralized path handling for dotdash.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/vincentqb/DotDash/pkg/errors"
)

// Environment variable names
const (
	// EnvDotfilesRoot is the primary environment variable for the dotfiles location
	EnvDotfilesRoot = "DOTDASH_ROOT"

	// EnvHomeDir overrides the directory links are created under
	EnvHomeDir = "DOTDASH_HOME_DIR"

	// EnvConfigDir overrides the XDG config directory for dotdash
	EnvConfigDir = "DOTDASH_CONFIG_DIR"

	// EnvCacheDir overrides the XDG cache directory for dotdash
	EnvCacheDir = "DOTDASH_CACHE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// DotdashDirName is the directory name for dotdash-specific files
	DotdashDirName = "dotdash"

	// ProfileConfigFile is the name of the per-profile configuration file
	ProfileConfigFile = ".dotdash.toml"

	// RootConfigFile is the name of the root configuration file
	RootConfigFile = "dotdash.toml"

	// LogFileName is the name of the log file
	LogFileName = "dotdash.log"
)

// Paths provides centralized path management for dotdash
type Paths interface {
	DotfilesRoot() string
	UsedFallback() bool
	HomeDir() string
	ProfilePath(profileName string) string
	ProfileConfigPath(profileName string) string
	RootConfigPath() string
	ConfigDir() string
	CacheDir() string
	StateDir() string
	LogFilePath() string
	NormalizePath(path string) (string, error)
	IsInDotfiles(path string) (bool, error)
}

// paths provides centralized path management for dotdash
type paths struct {
	// dotfilesRoot is the root directory whose subdirectories are profiles
	dotfilesRoot string

	// homeDir is the directory links are created under
	homeDir string

	// xdgConfig is the XDG config directory
	xdgConfig string

	// xdgCache is the XDG cache directory
	xdgCache string

	// xdgState is the XDG state directory
	xdgState string

	// usedFallback indicates if we fell back to cwd (for warning display)
	usedFallback bool
}

// New creates a new Paths instance with the given dotfiles root.
// If dotfilesRoot is empty, it will be determined from environment variables
// or defaults. Links are created under the user's home directory.
func New(dotfilesRoot string) (Paths, error) {
	return NewWithHome(dotfilesRoot, "")
}

// NewWithHome creates a new Paths instance with an explicit home directory.
// If homeDir is empty, it is resolved from DOTDASH_HOME_DIR or the user's
// home directory.
func NewWithHome(dotfilesRoot, homeDir string) (Paths, error) {
	p := &paths{}

	// Set up dotfiles root
	if dotfilesRoot == "" {
		root, usedFallback, err := findDotfilesRoot()
		if err != nil {
			return nil, err
		}
		p.dotfilesRoot = root
		p.usedFallback = usedFallback
	} else {
		p.dotfilesRoot = expandHome(dotfilesRoot)
		p.usedFallback = false
	}

	// Ensure dotfiles root is absolute
	absRoot, err := filepath.Abs(p.dotfilesRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for dotfiles root")
	}
	p.dotfilesRoot = absRoot

	// Set up the link target base
	if err := p.setupHomeDir(homeDir); err != nil {
		return nil, err
	}

	// Set up XDG directories
	if err := p.setupXDGDirs(); err != nil {
		return nil, err
	}

	return p, nil
}

// setupHomeDir resolves the directory links are created under.
// Priority: explicit argument, DOTDASH_HOME_DIR, the user's home directory.
func (p *paths) setupHomeDir(homeDir string) error {
	if homeDir == "" {
		homeDir = os.Getenv(EnvHomeDir)
	}
	if homeDir != "" {
		abs, err := filepath.Abs(expandHome(homeDir))
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for home directory")
		}
		p.homeDir = abs
		return nil
	}

	resolved, err := GetHomeDirectory()
	if err != nil {
		return errors.Wrap(err, errors.ErrHomeNotFound, "cannot determine home directory")
	}
	p.homeDir = resolved
	return nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() error {
	// Config directory
	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, DotdashDirName)
	}

	// Cache directory
	if cacheDir := os.Getenv(EnvCacheDir); cacheDir != "" {
		p.xdgCache = expandHome(cacheDir)
	} else {
		p.xdgCache = filepath.Join(xdg.CacheHome, DotdashDirName)
	}

	// State directory
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, DotdashDirName)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, DotdashDirName)
	}

	return nil
}

// findDotfilesRoot determines the dotfiles root using the following priority:
// 1. DOTDASH_ROOT environment variable (if set)
// 2. Git repository root (found via 'git rev-parse --show-toplevel')
// 3. Current working directory (fallback)
//
// The function returns:
// - string: The resolved dotfiles root path
// - bool: Whether the current working directory was used as fallback
// - error: Any error that occurred during resolution
//
// This allows dotdash to work in three common scenarios:
// - Explicit configuration via DOTDASH_ROOT
// - Automatic detection when run from within a git-managed dotfiles repo
// - Fallback to current directory for quick testing or non-git setups
func findDotfilesRoot() (string, bool, error) {
	// Check DOTDASH_ROOT first (highest priority)
	if root := os.Getenv(EnvDotfilesRoot); root != "" {
		return expandHome(root), false, nil
	}

	// Try to find git repository root
	gitRoot, err := findGitRoot()
	if err == nil && gitRoot != "" {
		if os.Getenv("DOTDASH_DEBUG") != "" {
			fmt.Fprintf(os.Stderr, "Debug: findDotfilesRoot using git root: %s\n", gitRoot)
		}
		return gitRoot, false, nil
	}

	// Fallback to current working directory with warning
	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	return cwd, true, nil
}

// findGitRoot attempts to find the root of the current git repository
func findGitRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")

	output, err := cmd.Output()
	if err != nil {
		// Git command failed - not in a git repo or git not installed
		if os.Getenv("DOTDASH_DEBUG") != "" {
			fmt.Fprintf(os.Stderr, "Debug: git command failed: %v\n", err)
		}
		return "", err
	}

	// Trim whitespace and return the path
	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}

	return gitRoot, nil
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// DotfilesRoot returns the root directory for dotfiles
func (p *paths) DotfilesRoot() string {
	return p.dotfilesRoot
}

// UsedFallback returns true if the current working directory was used as fallback
func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

// HomeDir returns the directory links are created under
func (p *paths) HomeDir() string {
	return p.homeDir
}

// ProfilePath returns the path to a specific profile
func (p *paths) ProfilePath(profileName string) string {
	return filepath.Join(p.dotfilesRoot, profileName)
}

// ProfileConfigPath returns the path to a profile's configuration file
func (p *paths) ProfileConfigPath(profileName string) string {
	return filepath.Join(p.ProfilePath(profileName), ProfileConfigFile)
}

// RootConfigPath returns the path to the root configuration file
func (p *paths) RootConfigPath() string {
	return filepath.Join(p.dotfilesRoot, RootConfigFile)
}

// ConfigDir returns the XDG config directory for dotdash
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// CacheDir returns the XDG cache directory for dotdash
func (p *paths) CacheDir() string {
	return p.xdgCache
}

// StateDir returns the XDG state directory for dotdash
func (p *paths) StateDir() string {
	return p.xdgState
}

// LogFilePath returns the path to the dotdash log file
// Respects XDG_STATE_HOME if set
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// NormalizePath normalizes a path by expanding home, making it absolute,
// and cleaning it
func (p *paths) NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	// Expand home directory
	expanded := expandHome(path)

	// Make absolute
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path")
	}

	// Clean the path
	return filepath.Clean(abs), nil
}

// IsInDotfiles checks if a path is within the dotfiles root
func (p *paths) IsInDotfiles(path string) (bool, error) {
	normalized, err := p.NormalizePath(path)
	if err != nil {
		return false, err
	}

	rel, err := filepath.Rel(p.dotfilesRoot, normalized)
	if err != nil {
		return false, nil
	}

	// If the relative path starts with .., it's outside dotfiles
	return !strings.HasPrefix(rel, ".."), nil
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	return expandHome(path)
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Try the HOME environment variable as a fallback
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get home directory")
	}
	return homeDir, nil
}
