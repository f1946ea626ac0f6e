// Package config loads dotdash configuration.
//
// Configuration is layered, later layers overriding earlier ones:
//
//  1. Hard-coded fallbacks (confmap provider)
//  2. Embedded defaults.toml and dotdash.toml (compiled into the binary)
//  3. dotdash.toml or .dotdash.toml at the dotfiles root
//  4. DOTDASH_* environment variables (DOTDASH_RENDER_MISSING=empty)
//
// Per-profile .dotdash.toml files are parsed separately with
// ParseProfileConfig and merged on top of the loaded configuration with
// Merge. Ignore patterns accumulate across layers; scalar settings
// replace.
package config
