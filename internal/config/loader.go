package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPairLink loads PairLink configuration.
// Search order: customPath -> ~/.pairlink/configs/pairlink.yaml -> ./configs/pairlink.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
// The result is validated; an invalid configuration is an error.
func LoadPairLink(customPath string) (PairLinkConfig, error) {
	cfg, err := loadPairLink(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadPairLink(customPath string) (PairLinkConfig, error) {
	cfg := DefaultPairLinkConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pairlink.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			fileCfg := DefaultPairLinkConfig()
			if err := yaml.Unmarshal(data, &fileCfg); err == nil {
				return fileCfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "pairlink.yaml")); err == nil {
		fileCfg := DefaultPairLinkConfig()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPairLinkYAML, &cfg); err != nil {
		return DefaultPairLinkConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pairlink", "configs", filename)
}

// Marshal renders a configuration as YAML.
func Marshal(cfg PairLinkConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
