package config

// Config is the effective dotdash configuration after all layers are
// merged.
type Config struct {
	Render RenderConfig `koanf:"render" toml:"render"`
	Ignore IgnoreConfig `koanf:"ignore" toml:"ignore"`
}

// RenderConfig controls template rendering.
type RenderConfig struct {
	// Missing selects the policy for template variables absent from the
	// environment: "fail" reports the file and skips it, "empty"
	// substitutes the empty string. An empty value means inherit.
	Missing string `koanf:"missing" toml:"missing"`
}

// IgnoreConfig lists entry names skipped during profile traversal.
type IgnoreConfig struct {
	// Patterns use filepath.Match syntax and are matched against the
	// base name of each entry.
	Patterns []string `koanf:"patterns" toml:"patterns"`
}

// ProfileConfig holds per-profile overrides from a profile's
// .dotdash.toml file. Unset fields inherit from the root configuration;
// ignore patterns are additive.
type ProfileConfig struct {
	Render RenderConfig `toml:"render"`
	Ignore IgnoreConfig `toml:"ignore"`
}

// IsZero reports whether the profile configuration overrides anything.
func (pc ProfileConfig) IsZero() bool {
	return pc.Render.Missing == "" && len(pc.Ignore.Patterns) == 0
}

// Merge applies profile-level overrides on top of a base configuration.
// Scalar settings replace when set; ignore patterns append.
func Merge(base Config, profile ProfileConfig) Config {
	merged := base
	if profile.Render.Missing != "" {
		merged.Render.Missing = profile.Render.Missing
	}
	if len(profile.Ignore.Patterns) > 0 {
		patterns := make([]string, 0, len(base.Ignore.Patterns)+len(profile.Ignore.Patterns))
		patterns = append(patterns, base.Ignore.Patterns...)
		patterns = append(patterns, profile.Ignore.Patterns...)
		merged.Ignore.Patterns = patterns
	}
	return merged
}
