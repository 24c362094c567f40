package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Controller *ControllerConfig
	Arena      *ArenaConfig
}

// Loader loads configuration from JSON or YAML files using fs.FS interface
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

// LoadController loads controller.json, or controller.yaml when no JSON file exists.
// The file is decoded over Default(), so keys it leaves out keep the shipped
// tuning. Zero collision masks fall back to the Default layer before validation.
func (l *Loader) LoadController() (*ControllerConfig, error) {
	cfg := Default()
	if err := l.decodeFirst(cfg, "controller.json", "controller.yaml", "controller.yml"); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadArena loads an arena file from arenas/
func (l *Loader) LoadArena(name string) (*ArenaConfig, error) {
	base := "arenas/" + name
	var cfg ArenaConfig
	if err := l.decodeFirst(&cfg, base+".json", base+".yaml", base+".yml"); err != nil {
		return nil, err
	}

	if cfg.Gravity == 0 {
		cfg.Gravity = 9.81
	}

	return &cfg, nil
}

// LoadAll loads the controller tuning and the named arena
func (l *Loader) LoadAll(arena string) (*GameConfig, error) {
	controller, err := l.LoadController()
	if err != nil {
		return nil, err
	}

	arenaCfg, err := l.LoadArena(arena)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Controller: controller,
		Arena:      arenaCfg,
	}, nil
}

// decodeFirst decodes the first of names that exists
func (l *Loader) decodeFirst(out any, names ...string) error {
	for _, name := range names {
		data, err := fs.ReadFile(l.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		return Decode(name, data, out)
	}
	return fmt.Errorf("failed to read %s: %w", strings.Join(names, " or "), fs.ErrNotExist)
}

// Decode parses data as YAML or JSON depending on the file extension
func Decode(name string, data []byte, out any) error {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse %s: %w", name, err)
		}
	default:
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse %s: %w", name, err)
		}
	}
	return nil
}
