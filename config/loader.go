package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/sokoban.yaml
var defaultYAML []byte

// Load resolves the configuration. An explicit path must exist and parse;
// the fallback locations are skipped silently when absent. The returned
// string names the source that supplied the file values, or "defaults"
// when no file was found.
func Load(customPath string) (Config, string, error) {
	cfg := Default()

	if customPath != "" {
		if err := overlay(&cfg, customPath); err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, cfg.Validate()
	}

	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := overlay(&cfg, path); err != nil {
			return cfg, path, err
		}
		return cfg, path, cfg.Validate()
	}

	return cfg, "defaults", cfg.Validate()
}

// searchPaths lists the fallback locations in priority order.
func searchPaths() []string {
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "sokoban", "sokoban.yaml"))
	}
	paths = append(paths, "sokoban.yaml")
	return paths
}

// overlay applies the file's values on top of cfg. Keys absent from the
// document keep their current values, including individual bindings.
func overlay(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return nil
}

// EmbeddedDefaults returns the default document text, used by the CLI to
// print a starting config for users to copy.
func EmbeddedDefaults() []byte {
	return defaultYAML
}
