package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameFile is the name of the base config inside the config filesystem
const GameFile = "game.json"

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads and validates game.json
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, GameFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", GameFile, err)
	}

	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", GameFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", GameFile, err)
	}

	return &cfg, nil
}

// LoadAll loads the base config and applies the override file, if any
func (l *Loader) LoadAll(overridePath string) (*GameConfig, error) {
	cfg, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	if overridePath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(overridePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read override %s: %w", overridePath, err)
	}

	if err := ApplyOverride(cfg, overridePath, data); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyOverride decodes data on top of cfg. Fields missing from data keep
// their current values. The format is picked from the file extension.
func ApplyOverride(cfg *GameConfig, name string, data []byte) error {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse override %s: %w", name, err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse override %s: %w", name, err)
		}
	default:
		return fmt.Errorf("%w: unsupported override format %q", ErrInvalidConfig, ext)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("override %s: %w", name, err)
	}
	return nil
}
