package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPlatform loads the platform sandbox configuration.
// Search order: customPath -> ~/.bump/configs/platform.yaml ->
// ./configs/platform.yaml -> embedded default.
func LoadPlatform(customPath string) (PlatformConfig, error) {
	var cfg PlatformConfig
	if err := load(customPath, "platform.yaml", defaultPlatformYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadArena loads the bumper arena configuration.
// Search order: customPath -> ~/.bump/configs/arena.yaml ->
// ./configs/arena.yaml -> embedded default.
func LoadArena(customPath string) (ArenaConfig, error) {
	var cfg ArenaConfig
	if err := load(customPath, "arena.yaml", defaultArenaYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// load resolves the config search path and unmarshals the first readable
// source into out.
func load(customPath, filename string, embedded []byte, out any) error {
	// A custom path must exist and parse; anything else is an error the
	// user should see.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	// User config directory.
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	// Local configs directory.
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	// Embedded default.
	if err := yaml.Unmarshal(embedded, out); err != nil {
		return fmt.Errorf("failed to parse embedded default %s: %w", filename, err)
	}
	return nil
}

// userConfigPath returns the path under ~/.bump/configs, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bump", "configs", filename)
}
