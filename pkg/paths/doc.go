// Package paths provides centralized path handling for dotdash.
//
// This package implements the XDG Base Directory specification and provides
// a consistent API for all path operations throughout the dotdash codebase.
// It handles:
//
//   - Dotfiles root directory discovery and configuration
//   - Home directory resolution for link targets
//   - XDG directory structure (config, cache, state)
//   - Path normalization and expansion
//   - Profile-specific path generation
//
// # Environment Variables
//
// The package respects the following environment variables:
//
//   - DOTDASH_ROOT: Primary location for dotfiles (default: git root or cwd)
//   - DOTDASH_HOME_DIR: Override the directory links are created under
//   - DOTDASH_CONFIG_DIR: Override XDG config directory (default: $XDG_CONFIG_HOME/dotdash)
//   - DOTDASH_CACHE_DIR: Override XDG cache directory (default: $XDG_CACHE_HOME/dotdash)
//
// # XDG Base Directory Structure
//
// dotdash follows the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/dotdash (user configuration)
//   - Cache: $XDG_CACHE_HOME/dotdash (temporary files, caches)
//   - State: $XDG_STATE_HOME/dotdash (log file)
//
// # Usage
//
//	import "github.com/vincentqb/DotDash/pkg/paths"
//
//	// Create a new Paths instance
//	p, err := paths.New("")  // Auto-detect dotfiles root
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Get various paths
//	root := p.DotfilesRoot()                 // /home/user/dotfiles
//	profile := p.ProfilePath("default")      // /home/user/dotfiles/default
//	logFile := p.LogFilePath()               // $XDG_STATE_HOME/dotdash/dotdash.log
//
//	// Check if a path is within dotfiles
//	isInside, err := p.IsInDotfiles("/home/user/dotfiles/default/vimrc")
//	// isInside == true
package paths
