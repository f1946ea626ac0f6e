package config

import (
	toml "github.com/pelletier/go-toml/v2"
)

// ParseProfileConfig parses the contents of a profile's .dotdash.toml
// file. Callers read the bytes themselves so parsing stays independent
// of any filesystem implementation.
func ParseProfileConfig(data []byte) (ProfileConfig, error) {
	var cfg ProfileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return ProfileConfig{}, err
	}
	return cfg, nil
}
