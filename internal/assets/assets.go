// Package assets embeds the default tower/enemy definitions and levels.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"go-scanner-defense/internal/defs"
)

//go:embed data/*.yaml data/levels/*.yaml
var files embed.FS

// DefaultLibrary loads the embedded tower and enemy definitions.
func DefaultLibrary() (*defs.Library, error) {
	towers, err := files.ReadFile("data/towers.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded towers: %w", err)
	}
	enemies, err := files.ReadFile("data/enemies.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded enemies: %w", err)
	}
	return defs.LoadLibrary(towers, enemies)
}

// LevelNames lists embedded levels in play order.
func LevelNames() ([]string, error) {
	entries, err := fs.ReadDir(files, "data/levels")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Level loads an embedded level by file name.
func Level(name string, lib *defs.Library) (*defs.LevelDefinition, error) {
	data, err := files.ReadFile(path.Join("data/levels", name))
	if err != nil {
		return nil, fmt.Errorf("read embedded level %s: %w", name, err)
	}
	return defs.LoadLevel(data, lib)
}
