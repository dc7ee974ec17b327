// internal/system/visual_effect.go
package system

import (
	"go-scanner-defense/internal/entity"
	"go-scanner-defense/internal/types"
)

// VisualEffectSystem ages damage flashes. Flashes are presentation only and
// never affect the simulation.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer += deltaTime
		if flash.Progress() >= 1 {
			delete(s.ecs.DamageFlashes, id)
		}
		if _, alive := s.ecs.Enemies[id]; !alive {
			delete(s.ecs.DamageFlashes, id)
		}
	}
}

// FlashProgress returns how far the damage flash of an entity has played,
// in [0, 1], and false if it is not flashing.
func (s *VisualEffectSystem) FlashProgress(id types.EntityID) (float64, bool) {
	flash, ok := s.ecs.DamageFlashes[id]
	if !ok {
		return 0, false
	}
	return flash.Progress(), true
}
