// internal/system/projectile.go
package system

import (
	"math"

	"go-scanner-defense/internal/component"
	"go-scanner-defense/internal/entity"
	"go-scanner-defense/internal/types"
	"go-scanner-defense/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs           *entity.ECS
	health        *HealthSystem
	contactRadius float64
}

func NewProjectileSystem(ecs *entity.ECS, health *HealthSystem, contactRadius float64) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, health: health, contactRadius: contactRadius}
}

// Update moves every projectile toward the current position of its target.
// There is no lead: the curve is re-aimed each frame.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			s.removeProjectile(id)
			continue
		}

		// Цель пропала или умерла: снаряд исчезает без урона
		if _, alive := s.ecs.LiveEnemy(proj.Target); !alive {
			s.removeProjectile(id)
			continue
		}
		targetPos, ok := s.ecs.Positions[proj.Target]
		if !ok {
			s.removeProjectile(id)
			continue
		}

		proj.Elapsed += deltaTime
		if proj.Timeout > 0 && proj.Elapsed > proj.Timeout {
			s.removeProjectile(id)
			continue
		}
		t := 1.0
		if proj.TravelDuration > 0 {
			t = proj.Elapsed / proj.TravelDuration
		}
		k := utils.EaseOutCubic(t)
		pos.X = utils.Lerp(proj.Origin.X, targetPos.X, k)
		pos.Y = utils.Lerp(proj.Origin.Y, targetPos.Y, k)
		pos.Z = utils.Lerp(proj.Origin.Z, targetPos.Z, k)

		if t >= 1 || groundDistance(pos, targetPos) <= s.contactRadius {
			s.hitTarget(id, proj, *targetPos)
		}
	}
}

func (s *ProjectileSystem) hitTarget(id types.EntityID, proj *component.Projectile, impact component.Position) {
	s.removeProjectile(id)
	if proj.SplashRadius <= 0 {
		s.health.TakeDamage(proj.Target, proj.Power)
		return
	}
	for _, enemyID := range s.ecs.EnemyIDs() {
		pos, ok := s.ecs.Positions[enemyID]
		if !ok {
			continue
		}
		if groundDistance(pos, &impact) <= proj.SplashRadius {
			s.health.TakeDamage(enemyID, proj.Power)
		}
	}
}

// Вспомогательная функция для удаления снаряда
func (s *ProjectileSystem) removeProjectile(id types.EntityID) {
	delete(s.ecs.Positions, id)
	delete(s.ecs.Projectiles, id)
}

func groundDistance(a, b *component.Position) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
