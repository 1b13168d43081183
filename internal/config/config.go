package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. OAKBUFFS_HASTE_MAX_STACKS.
const EnvPrefix = "OAKBUFFS_"

// Load loads settings from a YAML file, applies environment overrides and
// clamps sliders to their declared ranges.
// If the file doesn't exist, defaults are used.
func Load(path string) (Settings, error) {
	cfg := DefaultSettings()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := Validate(data); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	cfg.Clamp()
	return cfg, nil
}

// ApplyEnv overrides fields of cfg from OAKBUFFS_* environment variables.
// Unset variables leave the field untouched.
func ApplyEnv(cfg *Settings) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
