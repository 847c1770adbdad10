package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the surf configuration.
// Search order: customPath -> ~/.tidaldrop/configs/surf.yaml -> ./configs/surf.yaml -> embedded default
//
// Files are unmarshaled over the defaults, so a partial YAML only overrides the
// keys it names. Only an explicit customPath reports read, parse and validation errors.
func Load(customPath string) (SurfConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSurfConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultSurfConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultSurfConfig(), fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{"configs/surf.yaml"}
	if userCfgPath := userConfigPath("surf.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultSurfYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultSurfConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse unmarshals YAML over the hardcoded defaults.
func parse(data []byte) (SurfConfig, error) {
	cfg := DefaultSurfConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tidaldrop", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *SurfConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.RampRate = RampRateForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.MinInterval = 0.7
	case DifficultyHard:
		cfg.Obstacles.BaseInterval = 1.0
		cfg.Obstacles.MinInterval = 0.4
	}
}
