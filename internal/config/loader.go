package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const tetressFile = "tetress.yaml"

// LoadTetress loads the Tetress configuration.
// Search order: customPath -> ~/.arcade/configs/tetress.yaml ->
// ./configs/tetress.yaml -> embedded default -> hardcoded default.
// Files are decoded over the defaults, so missing keys keep default values.
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped when unusable.
func LoadTetress(customPath string) (TetressConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTetressConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseTetress(data)
		if err != nil {
			return DefaultTetressConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths(tetressFile) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := ParseTetress(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := ParseTetress(defaultTetressYAML); err == nil {
		return cfg, nil
	}
	return DefaultTetressConfig(), nil
}

// TetressSource returns the file LoadTetress would read, or "embedded"
// when no file on the search path exists.
func TetressSource(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths(tetressFile) {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return "embedded"
}

// ParseTetress decodes YAML over the default configuration.
func ParseTetress(data []byte) (TetressConfig, error) {
	cfg := DefaultTetressConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultTetressConfig(), err
	}
	return cfg, nil
}

// MarshalTetress encodes cfg as YAML.
func MarshalTetress(cfg TetressConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// SaveTetress writes cfg to path, creating parent directories.
func SaveTetress(path string, cfg TetressConfig) error {
	data, err := MarshalTetress(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: cannot create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return nil
}

// UserTetressPath returns ~/.arcade/configs/tetress.yaml, or empty when the
// home directory is unknown.
func UserTetressPath() string {
	return userConfigPath(tetressFile)
}

func searchPaths(filename string) []string {
	var paths []string
	if p := userConfigPath(filename); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", filename))
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
