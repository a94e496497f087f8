package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

const DefaultPortSource = "enumerator"

// Config holds all findport configuration.
type Config struct {
	PortSource string `json:"port_source,omitempty"`
	ShowUSBIDs bool   `json:"show_usb_ids,omitempty"`
	NoColor    bool   `json:"no_color,omitempty"`
	TUI        bool   `json:"tui,omitempty"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		PortSource: DefaultPortSource,
	}
}

// GlobalPath returns ~/.config/findport/config.json.
func GlobalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "findport", "config.json"), nil
}

// Load reads and merges the global config and an optional extra file.
// Order: defaults → global (~/.config/findport/config.json) → extraPath.
// Missing or unreadable files are skipped.
func Load(extraPath string) Config {
	cfg := Defaults()

	if globalPath, err := GlobalPath(); err == nil {
		mergeFromFile(&cfg, globalPath)
	}

	if extraPath != "" {
		mergeFromFile(&cfg, extraPath)
	}

	return cfg
}

// Save writes cfg to path, or to the global config when path is empty.
func Save(cfg Config, path string) error {
	if path == "" {
		p, err := GlobalPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// mergeFromFile overlays the non-zero fields of the file at path. Comments
// and trailing commas are allowed.
func mergeFromFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var fileCfg Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &fileCfg); err != nil {
		return
	}

	if fileCfg.PortSource != "" {
		cfg.PortSource = fileCfg.PortSource
	}
	if fileCfg.ShowUSBIDs {
		cfg.ShowUSBIDs = true
	}
	if fileCfg.NoColor {
		cfg.NoColor = true
	}
	if fileCfg.TUI {
		cfg.TUI = true
	}
}
