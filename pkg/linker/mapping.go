package linker

import (
	"path/filepath"
	"strings"

	"github.com/vincentqb/DotDash/pkg/template"
)

// Mapping pairs a profile entry with its computed link source and
// destination. file.template -> file.rendered -> .file
type Mapping struct {
	// RelPath is the entry path relative to the profile directory.
	RelPath string

	// Source is the absolute path the symlink will point at.
	Source string

	// Destination is the absolute dotfile path under home.
	Destination string

	// IsTemplate is true when the entry carries the template suffix.
	IsTemplate bool
}

// ComputeMapping derives the link source and destination for a profile
// entry. Only the final path component is dot-prefixed; intermediate
// directories keep their names and are mirrored as real directories:
//
//	default/env          -> ~/.env
//	default/env.template -> ~/.env  (via default/env.rendered)
//	default/sub/file     -> ~/sub/.file
func ComputeMapping(profilePath, homeDir, relPath string) Mapping {
	entryPath := filepath.Join(profilePath, relPath)

	base := filepath.Base(relPath)
	isTemplate := template.IsTemplate(base)

	source := entryPath
	if isTemplate {
		source = template.RenderedPath(entryPath)
	}

	dotted := "." + template.DisplayName(base)
	dir := filepath.Dir(relPath)

	var destination string
	if dir == "." {
		destination = filepath.Join(homeDir, dotted)
	} else {
		destination = filepath.Join(homeDir, dir, dotted)
	}

	return Mapping{
		RelPath:     relPath,
		Source:      source,
		Destination: destination,
		IsTemplate:  isTemplate,
	}
}

// matchesAny reports whether name matches any of the patterns using
// filepath.Match syntax. Invalid patterns never match.
func matchesAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			return true
		}
	}
	return false
}

// skipEntry applies the fixed traversal skip rules: dot-prefixed names
// (profile config and VCS litter) and rendered outputs are never
// treated as entries.
func skipEntry(name string, isDir bool) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	if !isDir && template.IsRendered(name) {
		return true
	}
	return false
}
