package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Engine.Name = "uzi test"
	cfg.Engine.MultiPv = 4
	cfg.Shell.UseBook = false

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Engine.Name != "uzi test" || loaded.Engine.MultiPv != 4 || loaded.Shell.UseBook {
		t.Errorf("loaded config mismatch: %+v", loaded)
	}
}

// Keys missing from the file keep their built-in defaults.
func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	partial := "[engine]\nname = \"partial\"\n"
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Engine.Name != "partial" {
		t.Errorf("name = %q", cfg.Engine.Name)
	}
	if cfg.Engine.MultiPv != DefaultConfig().Engine.MultiPv {
		t.Errorf("multipv lost its default: %d", cfg.Engine.MultiPv)
	}
	if !cfg.Shell.UseBook {
		t.Error("use_book lost its default")
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uzi", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if cfg.Engine.Name == "" {
		t.Error("created config has no engine name")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}
}
