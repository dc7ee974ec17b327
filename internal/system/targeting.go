package system

import (
	"math"

	"go-scanner-defense/internal/component"
	"go-scanner-defense/internal/defs"
	"go-scanner-defense/internal/entity"
	"go-scanner-defense/internal/types"
)

// TargetRule picks targets out of a tower's AoE set.
type TargetRule int

const (
	RuleAoEAll TargetRule = iota
	RuleFarthest
)

// TargetingSystem keeps, per tower, the ordered set of enemies inside its
// attack range.
type TargetingSystem struct {
	ecs  *entity.ECS
	lib  *defs.Library
	sets map[types.EntityID][]types.EntityID
}

func NewTargetingSystem(ecs *entity.ECS, lib *defs.Library) *TargetingSystem {
	return &TargetingSystem{
		ecs:  ecs,
		lib:  lib,
		sets: make(map[types.EntityID][]types.EntityID),
	}
}

// Refresh drops enemies that left range, died or were removed, then appends
// newly entered ones in ID order.
func (s *TargetingSystem) Refresh() {
	enemies := s.ecs.EnemyIDs()
	for _, towerID := range s.ecs.TowerIDs() {
		tower := s.ecs.Towers[towerID]
		towerPos, ok := s.ecs.Positions[towerID]
		if !ok || !tower.IsBuilt {
			continue
		}
		stats, ok := StatsFor(s.lib, tower)
		if !ok {
			continue
		}
		set := s.sets[towerID]
		member := make(map[types.EntityID]bool, len(set))
		kept := set[:0]
		for _, id := range set {
			if s.inRange(id, towerPos, stats.Range) {
				kept = append(kept, id)
				member[id] = true
			}
		}
		for _, id := range enemies {
			if !member[id] && s.inRange(id, towerPos, stats.Range) {
				kept = append(kept, id)
			}
		}
		s.sets[towerID] = kept
	}
}

func (s *TargetingSystem) inRange(enemyID types.EntityID, towerPos *component.Position, attackRange float64) bool {
	if _, ok := s.ecs.LiveEnemy(enemyID); !ok {
		return false
	}
	pos, ok := s.ecs.Positions[enemyID]
	if !ok {
		return false
	}
	return math.Hypot(pos.X-towerPos.X, pos.Y-towerPos.Y) <= attackRange
}

// Enter adds an enemy to a tower's set if it is not there yet.
func (s *TargetingSystem) Enter(towerID, enemyID types.EntityID) {
	for _, id := range s.sets[towerID] {
		if id == enemyID {
			return
		}
	}
	s.sets[towerID] = append(s.sets[towerID], enemyID)
}

// Exit removes an enemy from a tower's set.
func (s *TargetingSystem) Exit(towerID, enemyID types.EntityID) {
	set := s.sets[towerID]
	for i, id := range set {
		if id == enemyID {
			s.sets[towerID] = append(set[:i], set[i+1:]...)
			return
		}
	}
}

// InRange returns a copy of the tower's set in entry order.
func (s *TargetingSystem) InRange(towerID types.EntityID) []types.EntityID {
	set := s.sets[towerID]
	out := make([]types.EntityID, len(set))
	copy(out, set)
	return out
}

// RemoveTower forgets the set of a destroyed tower.
func (s *TargetingSystem) RemoveTower(towerID types.EntityID) {
	delete(s.sets, towerID)
}

func (s *TargetingSystem) Clear() {
	s.sets = make(map[types.EntityID][]types.EntityID)
}

// Valid reports whether an enemy can be hit right now.
func (s *TargetingSystem) Valid(enemyID types.EntityID) bool {
	enemy, ok := s.ecs.LiveEnemy(enemyID)
	return ok && enemy.Vulnerable()
}

// Select applies rule to the tower's set. Enemies in exclude are skipped.
// Farthest returns at most one enemy; ties keep the earlier entry.
func (s *TargetingSystem) Select(towerID types.EntityID, rule TargetRule, exclude map[types.EntityID]bool) []types.EntityID {
	var out []types.EntityID
	best, bestDist := types.EntityID(0), math.Inf(-1)
	for _, id := range s.sets[towerID] {
		if exclude[id] || !s.Valid(id) {
			continue
		}
		switch rule {
		case RuleAoEAll:
			out = append(out, id)
		case RuleFarthest:
			if d := s.ecs.Enemies[id].TravelDistance; d > bestDist {
				best, bestDist = id, d
			}
		}
	}
	if rule == RuleFarthest && best != 0 {
		out = append(out, best)
	}
	return out
}
