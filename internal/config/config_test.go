package config

import (
	"os"
	"path/filepath"
	"testing"
)

// withHome points the user home directory at a fresh temp dir.
func withHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	return home
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.PortSource != "enumerator" {
		t.Errorf("expected PortSource=enumerator, got=%s", cfg.PortSource)
	}
	if cfg.ShowUSBIDs || cfg.NoColor || cfg.TUI {
		t.Errorf("expected boolean options off by default, got %+v", cfg)
	}
}

func TestLoadMerge(t *testing.T) {
	home := withHome(t)

	globalDir := filepath.Join(home, ".config", "findport")
	os.MkdirAll(globalDir, 0o755)
	os.WriteFile(filepath.Join(globalDir, "config.json"), []byte(`{
		// registry is more reliable on this machine
		"port_source": "registry",
		"no_color": true,
	}`), 0o644)

	extra := filepath.Join(t.TempDir(), "findport.json")
	os.WriteFile(extra, []byte(`{"show_usb_ids": true}`), 0o644)

	cfg := Load(extra)

	if cfg.PortSource != "registry" {
		t.Errorf("expected port_source from global config, got=%s", cfg.PortSource)
	}
	if !cfg.NoColor {
		t.Error("expected no_color from global config")
	}
	if !cfg.ShowUSBIDs {
		t.Error("expected show_usb_ids from extra config")
	}
	if cfg.TUI {
		t.Error("expected tui to stay off")
	}
}

func TestLoadIgnoresMissingAndInvalidFiles(t *testing.T) {
	withHome(t)

	invalid := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(invalid, []byte(`{"port_source": `), 0o644)

	if cfg := Load(invalid); cfg != Defaults() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	if cfg := Load(filepath.Join(t.TempDir(), "missing.json")); cfg != Defaults() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	home := withHome(t)

	cfg := Config{
		PortSource: "auto",
		TUI:        true,
	}

	if err := Save(cfg, ""); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	path := filepath.Join(home, ".config", "findport", "config.json")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	loaded := Load("")
	if loaded.PortSource != "auto" {
		t.Errorf("expected PortSource=auto, got=%s", loaded.PortSource)
	}
	if !loaded.TUI {
		t.Error("expected TUI=true")
	}
}
