package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
// DOTDASH_RENDER_MISSING=empty maps to the render.missing key.
const EnvPrefix = "DOTDASH_"

// rootConfigNames are tried in order when loading the root layer; the
// first file that exists wins.
var rootConfigNames = []string{".dotdash.toml", "dotdash.toml"}

// Load builds the effective configuration for a dotfiles root by
// stacking the fallbacks, the embedded defaults, the root config file
// (if any) and DOTDASH_* environment variables.
func Load(dotfilesRoot string) (*Config, error) {
	k := koanf.New(".")

	// 1. Hard-coded fallbacks so the binary works even with broken
	// embedded data.
	fallbacks := map[string]interface{}{
		"render.missing": "fail",
	}
	if err := k.Load(confmap.Provider(fallbacks, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load fallback config: %w", err)
	}

	// 2. Embedded defaults and app config.
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load embedded defaults: %w", err)
	}
	if err := k.Load(&rawBytesProvider{bytes: appConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load embedded app config: %w", err)
	}

	// 3. Root config file, if present.
	if dotfilesRoot != "" {
		for _, name := range rootConfigNames {
			path := filepath.Join(dotfilesRoot, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load root config from %s: %w", path, err)
			}
			break
		}
	}

	// 4. Environment variables: DOTDASH_RENDER_MISSING -> render.missing
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration built from the embedded layers
// only, ignoring root files and the environment.
func Default() Config {
	k := koanf.New(".")
	_ = k.Load(confmap.Provider(map[string]interface{}{
		"render.missing": "fail",
	}, "."), nil)
	_ = k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser())
	_ = k.Load(&rawBytesProvider{bytes: appConfig}, toml.Parser())

	var cfg Config
	_ = k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"})
	return cfg
}
