package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppDirName is the per-user directory holding configs, scores and screenshots.
const AppDirName = ".mazechase"

// LoadChase loads the chase configuration.
// Search order: customPath -> ~/.mazechase/configs/chase.yaml -> ./configs/chase.yaml -> embedded default.
// Files are overlaid on the defaults, so they only need the keys they change.
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped silently.
func LoadChase(customPath string) (ChaseConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ChaseConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseChase(data)
		if err != nil {
			return ChaseConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		UserPath("configs", "chase.yaml"),
		filepath.Join("configs", "chase.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseChase(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseChase(defaultChaseYAML)
	if err != nil {
		return DefaultChaseConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseChase decodes data over the built-in defaults and validates the result.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func parseChase(data []byte) (ChaseConfig, error) {
	cfg := DefaultChaseConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return ChaseConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ChaseConfig{}, err
	}
	return cfg, nil
}

// UserPath joins elem under ~/.mazechase, or returns "" if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, AppDirName}, elem...)...)
}

// ExpandHome replaces a leading "~" in path with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
