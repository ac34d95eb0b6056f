package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadInvaders loads the invaders configuration.
// Search order: customPath -> ~/.arcade/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default.
// Files are overlaid on the defaults, so a file may set only the keys it changes.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return InvadersConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return InvadersConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("invaders.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "invaders.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultInvadersYAML)
	if err != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadVariant loads the configuration like LoadInvaders, applies the variant
// and validates the result. Variants change the formation, so a file that is
// valid on its own can still be rejected here.
func LoadVariant(customPath string, variant Variant) (InvadersConfig, error) {
	cfg, err := LoadInvaders(customPath)
	if err != nil {
		return InvadersConfig{}, err
	}
	ApplyVariant(&cfg, variant)
	if err := cfg.Validate(); err != nil {
		return InvadersConfig{}, fmt.Errorf("variant %s: %w", variantName(variant), err)
	}
	return cfg, nil
}

func variantName(v Variant) string {
	if v == "" {
		return "default"
	}
	return string(v)
}

// Parse decodes YAML on top of the default configuration and validates the result.
func Parse(data []byte) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return InvadersConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return InvadersConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg InvadersConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyVariant modifies the config to match a rules variant.
func ApplyVariant(cfg *InvadersConfig, variant Variant) {
	switch variant {
	case VariantClassic:
		cfg.Formation.Rows = 1
		cfg.Formation.Cols = 1
		cfg.Player.AttackCooldown = 30
	case VariantFormation:
		cfg.Formation.Rows = 2
		cfg.Formation.Cols = 3
		cfg.Player.AttackCooldown = 30
	case VariantRapid:
		cfg.Formation.Rows = 2
		cfg.Formation.Cols = 5
		cfg.Player.AttackCooldown = 10
	}
}
