package interfaces

import (
	"go-scanner-defense/internal/app"
	"go-scanner-defense/internal/component"
	"go-scanner-defense/internal/defs"
	"go-scanner-defense/internal/types"
)

// Game is the surface presentation drivers and the network bridge use to
// steer a session.
type Game interface {
	Update(deltaTime float64)
	Snapshot() app.Snapshot

	BuildTower(kind defs.TowerKind, axis, slot int) (types.EntityID, error)
	BuildTowerAt(kind defs.TowerKind, pos component.Position) (types.EntityID, error)
	UpgradeTower(id types.EntityID) error
	RefundTower(id types.EntityID) (int, error)
	SetRunning(running bool) error
	ActivateWave(index int) error
	ActivateNextWave() error
	SetTimeScale(scale float64) error
	TimeScale() float64
}

var _ Game = (*app.GameSession)(nil)
