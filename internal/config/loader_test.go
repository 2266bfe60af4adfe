package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var platform PlatformConfig
	if err := yaml.Unmarshal(GetDefaultYAML("platform"), &platform); err != nil {
		t.Fatalf("embedded platform default does not parse: %v", err)
	}
	if platform != DefaultPlatformConfig() {
		t.Errorf("embedded platform default %+v differs from DefaultPlatformConfig()", platform)
	}

	var arena ArenaConfig
	if err := yaml.Unmarshal(GetDefaultYAML("arena"), &arena); err != nil {
		t.Fatalf("embedded arena default does not parse: %v", err)
	}
	if arena != DefaultArenaConfig() {
		t.Errorf("embedded arena default %+v differs from DefaultArenaConfig()", arena)
	}

	if GetDefaultYAML("nope") != nil {
		t.Error("unknown scene should have no default YAML")
	}
}

func TestLoadPlatformCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "platform.yaml")
	content := []byte("physics:\n  gravity: 0.5\ncollision:\n  precision: 2\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatform(path)
	if err != nil {
		t.Fatalf("LoadPlatform(%s) failed: %v", path, err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("gravity = %v, expected 0.5", cfg.Physics.Gravity)
	}
	if cfg.Collision.Precision != 2 {
		t.Errorf("precision = %d, expected 2", cfg.Collision.Precision)
	}
}

func TestLoadArenaMissingCustomPathFails(t *testing.T) {
	_, err := LoadArena(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Error("explicit config path that does not exist should be an error")
	}
}
