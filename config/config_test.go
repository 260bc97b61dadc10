package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected the default config to validate, got %v", err)
	}
}

// TestEmbeddedDefaultsMatchBuiltIns pins the embedded YAML document to the
// hardcoded defaults so the two cannot drift apart.
func TestEmbeddedDefaultsMatchBuiltIns(t *testing.T) {
	var parsed Config
	if err := yaml.Unmarshal(EmbeddedDefaults(), &parsed); err != nil {
		t.Fatalf("Expected the embedded defaults to parse, got %v", err)
	}
	if !reflect.DeepEqual(parsed, Default()) {
		t.Errorf("Expected embedded defaults %+v to equal built-ins %+v", parsed, Default())
	}
}

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sokoban.yaml")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("Expected to write the temp config, got %v", err)
	}
	return path
}

func TestLoadOverlayKeepsUnsetValues(t *testing.T) {
	path := writeConfig(t, `
display:
  fps: 30
bindings:
  undo: [z]
`)

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Expected the overlay to load, got %v", err)
	}
	if source != path {
		t.Errorf("Expected source %q, got %q", path, source)
	}

	if cfg.Display.FPS != 30 {
		t.Errorf("Expected fps to be 30, got %d", cfg.Display.FPS)
	}
	if cfg.Display.ColorMode != ColorAuto {
		t.Errorf("Expected color_mode to keep its default, got %q", cfg.Display.ColorMode)
	}
	if got := cfg.Bindings["undo"]; len(got) != 1 || got[0] != "z" {
		t.Errorf("Expected undo to rebind to z, got %v", got)
	}
	if got := cfg.Bindings["reload"]; len(got) != 1 || got[0] != "r" {
		t.Errorf("Expected reload to keep its default binding, got %v", got)
	}
}

func TestLoadRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"unknown action", "bindings:\n  fly: [x]\n"},
		{"fps out of range", "display:\n  fps: 0\n"},
		{"unknown color mode", "display:\n  color_mode: cga\n"},
		{"malformed yaml", "display: [\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := writeConfig(t, test.text)
			if _, _, err := Load(path); err == nil {
				t.Errorf("Expected %s to fail to load", test.name)
			}
		})
	}
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected an explicit missing path to error")
	}
}

func TestSeedParsesHex(t *testing.T) {
	path := writeConfig(t, "assets:\n  seed: 0xBEEF\n")
	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Expected the hex seed to load, got %v", err)
	}
	if cfg.Assets.Seed != 0xBEEF {
		t.Errorf("Expected seed 0xBEEF, got %#x", cfg.Assets.Seed)
	}
}
