package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source describes where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.breakout/breakout.yaml -> ./configs/breakout.yaml -> embedded default.
// Files are decoded on top of the defaults, so a file only needs the keys it changes.
// A custom path that is missing or invalid is an error; the other locations are skipped.
func LoadBreakout(customPath string) (BreakoutConfig, Source, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakoutConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return BreakoutConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return BreakoutConfig{}, "", fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, SourceUser, nil
		}
	}

	if cfg, ok := tryLoad(filepath.Join("configs", "breakout.yaml")); ok {
		return cfg, SourceLocal, nil
	}

	if cfg, err := decode(defaultBreakoutYAML); err == nil && cfg.Validate() == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultBreakoutConfig(), SourceBuiltin, nil
}

// tryLoad reads and validates an optional config file.
func tryLoad(path string) (BreakoutConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BreakoutConfig{}, false
	}
	cfg, err := decode(data)
	if err != nil || cfg.Validate() != nil {
		return BreakoutConfig{}, false
	}
	return cfg, true
}

// decode unmarshals YAML over the built-in defaults.
func decode(data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BreakoutConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a config as YAML.
func Marshal(cfg BreakoutConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", filename)
}
