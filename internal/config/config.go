// Package config parses curator.toml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultAccentColor is the default TUI accent color (indigo).
const DefaultAccentColor = "#7D56F4"

// DefaultHistoryCapacity is the default undo depth.
const DefaultHistoryCapacity = 100

// hexColorRe matches a 6-digit hex color string like "#7D56F4".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is the top-level curator.toml configuration.
type Config struct {
	Collection CollectionConfig `toml:"collection"`
	History    HistoryConfig    `toml:"history"`
	Keys       KeysConfig       `toml:"keys"`
	Export     ExportConfig     `toml:"export"`
	TUI        TUIConfig        `toml:"tui"`
}

// CollectionConfig identifies the item collection being curated.
type CollectionConfig struct {
	Name string `toml:"name"`
	Path string `toml:"path"` // JSONL file, relative paths resolve against the config file
}

// HistoryConfig controls the undo/redo stack.
type HistoryConfig struct {
	Capacity int `toml:"capacity"` // max undoable actions; 0 = default
}

// KeysConfig enables or disables shortcut tiers.
type KeysConfig struct {
	UndoRedo       bool `toml:"undo_redo"`
	BulkOperations bool `toml:"bulk_operations"`
}

// ExportConfig controls where Ctrl+E and `curator export` write.
type ExportConfig struct {
	Path string `toml:"path"`
}

// TUIConfig controls the terminal UI appearance.
type TUIConfig struct {
	AccentColor string `toml:"accent_color"`
}

// Validate checks the configuration for issues that would cause confusing
// runtime failures. It returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if c.Collection.Path == "" {
		errs = append(errs, fmt.Errorf("collection.path must not be empty"))
	}
	if c.History.Capacity < 0 {
		errs = append(errs, fmt.Errorf("history.capacity must be >= 0 (0 = default %d)", DefaultHistoryCapacity))
	}
	if c.Export.Path == "" {
		errs = append(errs, fmt.Errorf("export.path must not be empty"))
	}
	if c.TUI.AccentColor != "" && !hexColorRe.MatchString(c.TUI.AccentColor) {
		errs = append(errs, fmt.Errorf("tui.accent_color must be a hex color (e.g. \"#7D56F4\")"))
	}

	return errors.Join(errs...)
}

// Defaults returns a Config with sensible defaults.
func Defaults() Config {
	return Config{
		Collection: CollectionConfig{
			Name: "",
			Path: "collection.jsonl",
		},
		History: HistoryConfig{
			Capacity: DefaultHistoryCapacity,
		},
		Keys: KeysConfig{
			UndoRedo:       true,
			BulkOperations: true,
		},
		Export: ExportConfig{
			Path: "export.jsonl",
		},
		TUI: TUIConfig{
			AccentColor: DefaultAccentColor,
		},
	}
}

// Load reads curator.toml from the given path. If path is empty, it walks up
// from the current working directory looking for curator.toml. Returns an
// error if the file contains unknown keys (likely typos). Relative collection
// and export paths are resolved against the config file's directory, and the
// collection name falls back to that directory's base name.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findConfig()
		if err != nil {
			return nil, err
		}
		path = found
	}

	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, strings.Join(keys, ", "))
	}

	dir := filepath.Dir(path)
	if cfg.Collection.Path != "" && !filepath.IsAbs(cfg.Collection.Path) {
		cfg.Collection.Path = filepath.Join(dir, cfg.Collection.Path)
	}
	if cfg.Export.Path != "" && !filepath.IsAbs(cfg.Export.Path) {
		cfg.Export.Path = filepath.Join(dir, cfg.Export.Path)
	}
	if cfg.Collection.Name == "" {
		cfg.Collection.Name = filepath.Base(dir)
	}

	return &cfg, nil
}

// findConfig walks up from the current directory looking for curator.toml.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, "curator.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("config: curator.toml not found (searched up from %s)", dir)
		}
		dir = parent
	}
}

// InitFile writes a default curator.toml template to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, "curator.toml")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: curator.toml already exists at %s", path)
	}

	content := `# curator.toml — Curator collection configuration
# Place this file next to your collection.

[collection]
name = ""                  # defaults to the directory name
path = "collection.jsonl"  # JSONL file holding the items

[history]
capacity = 100  # max undoable actions; oldest are evicted beyond this

[keys]
undo_redo = true        # Ctrl+Z / Ctrl+Y / Ctrl+Shift+Z
bulk_operations = true  # Ctrl+A, Esc, Delete, Ctrl+E

[export]
path = "export.jsonl"  # where Ctrl+E and 'curator export' write

[tui]
accent_color = "#7D56F4"  # hex color for header/accent elements
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}
