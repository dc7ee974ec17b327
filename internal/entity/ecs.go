package entity

import (
	"sort"

	"go-scanner-defense/internal/component"
	"go-scanner-defense/internal/types"
)

type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Paths         map[types.EntityID]*component.Path
	Motions       map[types.EntityID]*component.Motion
	Healths       map[types.EntityID]*component.Health
	Regenerations map[types.EntityID]*component.Regeneration
	Towers        map[types.EntityID]*component.Tower
	Projectiles   map[types.EntityID]*component.Projectile
	Enemies       map[types.EntityID]*component.Enemy
	SlowEffects   map[types.EntityID]*component.SlowEffect
	DeathEffects  map[types.EntityID]*component.DeathEffect
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Player        *component.PlayerStateComponent
	GameState     component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Paths:         make(map[types.EntityID]*component.Path),
		Motions:       make(map[types.EntityID]*component.Motion),
		Healths:       make(map[types.EntityID]*component.Health),
		Regenerations: make(map[types.EntityID]*component.Regeneration),
		Towers:        make(map[types.EntityID]*component.Tower),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		SlowEffects:   make(map[types.EntityID]*component.SlowEffect),
		DeathEffects:  make(map[types.EntityID]*component.DeathEffect),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Player:        &component.PlayerStateComponent{},
		GameState:     component.BuildState,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity drops every component of an entity.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Paths, id)
	delete(ecs.Motions, id)
	delete(ecs.Healths, id)
	delete(ecs.Regenerations, id)
	delete(ecs.Towers, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Enemies, id)
	delete(ecs.SlowEffects, id)
	delete(ecs.DeathEffects, id)
	delete(ecs.DamageFlashes, id)
}

// Clear removes every entity. The player and the ID counter survive.
func (ecs *ECS) Clear() {
	ids := make(map[types.EntityID]struct{})
	for id := range ecs.Positions {
		ids[id] = struct{}{}
	}
	for id := range ecs.Enemies {
		ids[id] = struct{}{}
	}
	for id := range ecs.Towers {
		ids[id] = struct{}{}
	}
	for id := range ecs.Projectiles {
		ids[id] = struct{}{}
	}
	for id := range ids {
		ecs.RemoveEntity(id)
	}
}

// LiveEnemy returns the enemy if it exists and is not dead.
func (ecs *ECS) LiveEnemy(id types.EntityID) (*component.Enemy, bool) {
	enemy, ok := ecs.Enemies[id]
	if !ok || !enemy.Alive() {
		return nil, false
	}
	return enemy, true
}

// LiveEnemyCount counts enemies that have not died yet.
func (ecs *ECS) LiveEnemyCount() int {
	n := 0
	for _, enemy := range ecs.Enemies {
		if enemy.Alive() {
			n++
		}
	}
	return n
}

// EnemyIDs returns enemy IDs in ascending order. Systems iterate this
// snapshot so removals during the pass never touch a live iterator.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	return sortedIDs(ecs.Enemies)
}

// TowerIDs returns tower IDs in ascending (build) order.
func (ecs *ECS) TowerIDs() []types.EntityID {
	return sortedIDs(ecs.Towers)
}

// ProjectileIDs returns projectile IDs in ascending order.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return sortedIDs(ecs.Projectiles)
}

func sortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
