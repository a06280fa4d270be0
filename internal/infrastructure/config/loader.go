package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// Bundle holds all loaded configurations
type Bundle struct {
	Game   *GameConfig
	Scenes Manifest
}

// Loader loads game configuration from JSON files using fs.FS interface
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

// LoadGame loads game.json and applies defaults
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}
	cfg.ApplyDefaults()

	return &cfg, nil
}

// LoadManifest loads the scene manifest from scenes.json
func (l *Loader) LoadManifest() (Manifest, error) {
	data, err := fs.ReadFile(l.fsys, "scenes.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read scenes.json: %w", err)
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse scenes.json: %w", err)
	}

	return manifest, nil
}

// LoadAll loads all configurations (game, scene manifest)
func (l *Loader) LoadAll() (*Bundle, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	scenes, err := l.LoadManifest()
	if err != nil {
		return nil, err
	}

	return &Bundle{
		Game:   game,
		Scenes: scenes,
	}, nil
}
