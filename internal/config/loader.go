package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadShooter loads the shooter configuration.
// Search order: customPath -> ~/.starshot/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
//
// An explicit customPath must load. Search-path files that exist but cannot be
// read, parsed or validated are passed over; the reasons come back in skipped.
func LoadShooter(customPath string) (cfg ShooterConfig, skipped []error, err error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return ShooterConfig{}, nil, err
		}
		return cfg, nil, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("shooter.yaml"), filepath.Join("configs", "shooter.yaml")} {
		if path == "" {
			continue
		}
		cfg, err := loadFile(path)
		if err == nil {
			return cfg, skipped, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			skipped = append(skipped, err)
		}
	}

	// Use embedded default YAML
	cfg, err = parseShooter(defaultShooterYAML)
	if err != nil {
		return DefaultShooterConfig(), skipped, nil // Fallback to hardcoded if embed fails
	}
	return cfg, skipped, nil
}

// loadFile reads, parses and validates one config file.
func loadFile(path string) (ShooterConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ShooterConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parseShooter(data)
	if err != nil {
		return ShooterConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return ShooterConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// parseShooter decodes YAML on top of the hardcoded defaults.
func parseShooter(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShooterConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starshot", "configs", filename)
}
