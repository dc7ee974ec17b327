// internal/defs/loader.go
package defs

import (
	"fmt"
	"log"
	"os"

	"go-scanner-defense/internal/config"

	"gopkg.in/yaml.v3"
)

// Library is the set of tower and enemy definitions a session plays with.
type Library struct {
	Towers  map[TowerKind]TowerDefinition
	Enemies map[EnemyType]EnemyDefinition
}

// Tower returns the definition for a kind.
func (l *Library) Tower(kind TowerKind) (TowerDefinition, bool) {
	def, ok := l.Towers[kind]
	return def, ok
}

// LoadTowerDefinitions parses a YAML list of tower definitions.
func LoadTowerDefinitions(data []byte) (map[TowerKind]TowerDefinition, error) {
	var towerDefs []TowerDefinition
	if err := yaml.Unmarshal(data, &towerDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	towers := make(map[TowerKind]TowerDefinition, len(towerDefs))
	for _, def := range towerDefs {
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, dup := towers[def.Kind]; dup {
			return nil, fmt.Errorf("tower %q defined twice", def.Kind)
		}
		towers[def.Kind] = def
	}
	return towers, nil
}

// LoadEnemyDefinitions parses a YAML list of enemy definitions.
func LoadEnemyDefinitions(data []byte) (map[EnemyType]EnemyDefinition, error) {
	var enemyDefs []EnemyDefinition
	if err := yaml.Unmarshal(data, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	enemies := make(map[EnemyType]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		if err := def.Validate(); err != nil {
			return nil, err
		}
		enemies[def.EnemyType()] = def
	}
	return enemies, nil
}

// LoadLibrary builds a Library from tower and enemy YAML documents.
func LoadLibrary(towersYAML, enemiesYAML []byte) (*Library, error) {
	towers, err := LoadTowerDefinitions(towersYAML)
	if err != nil {
		return nil, err
	}
	enemies, err := LoadEnemyDefinitions(enemiesYAML)
	if err != nil {
		return nil, err
	}
	return &Library{Towers: towers, Enemies: enemies}, nil
}

// LoadLevel parses a level document, fills defaults from config and parses
// every wave script. A malformed script rejects the whole level.
func LoadLevel(data []byte, lib *Library) (*LevelDefinition, error) {
	level := &LevelDefinition{}
	if err := yaml.Unmarshal(data, level); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level: %w", err)
	}
	level.applyDefaults(config.AxisCount, config.MeasuresPerRotation, config.SlotsPerAxis,
		config.MinAxisLength, config.MaxAxisLength)
	if level.StartMoney == 0 {
		level.StartMoney = config.StartMoney
	}
	if level.PlayerHealth == 0 {
		level.PlayerHealth = config.PlayerHealth
	}
	if level.StopAfterRotations == 0 {
		level.StopAfterRotations = config.StopAfterRotations
	}

	scripts, err := ParseWaves(level.Waves)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", level.Name, err)
	}
	level.Scripts = scripts

	if err := level.validate(lib); err != nil {
		return nil, err
	}
	log.Printf("[Defs] loaded level %q: %d waves, %d axes", level.Name, len(level.Scripts), level.AxisCount)
	return level, nil
}

// LoadLevelFile reads and parses a level from disk.
func LoadLevelFile(path string, lib *Library) (*LevelDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}
	return LoadLevel(data, lib)
}

// LoadLibraryFiles reads tower and enemy definitions from disk.
func LoadLibraryFiles(towersPath, enemiesPath string) (*Library, error) {
	towers, err := os.ReadFile(towersPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tower definitions file: %w", err)
	}
	enemies, err := os.ReadFile(enemiesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	return LoadLibrary(towers, enemies)
}
