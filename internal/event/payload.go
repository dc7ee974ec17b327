package event

import "go-scanner-defense/internal/types"

// Payloads carried in Event.Data. Positions are ground-plane world units.
// The JSON names are what the network bridge sends.

type EnemyDiedData struct {
	ID     types.EntityID `json:"id"`
	X      float64        `json:"x"`
	Y      float64        `json:"y"`
	Reward int            `json:"reward"`
	Points int            `json:"points"`
}

type EnemyReachedBaseData struct {
	ID     types.EntityID `json:"id"`
	Points int            `json:"points"`
}

type EnemySpawnedData struct {
	ID     types.EntityID `json:"id"`
	Sector byte           `json:"sector"`
	Type   string         `json:"type"`
}

type TowerData struct {
	ID    types.EntityID `json:"id"`
	Kind  string         `json:"kind"`
	Axis  int            `json:"axis"`
	Level int            `json:"level"`
}

type TowerRemovedData struct {
	ID       types.EntityID `json:"id"`
	Axis     int            `json:"axis"`
	Refunded int            `json:"refunded"`
}

type ProjectileData struct {
	ID     types.EntityID `json:"id"`
	Tower  types.EntityID `json:"tower"`
	Target types.EntityID `json:"target"`
}

type WaveData struct {
	Number int `json:"number"`
}

type PlayerDamagedData struct {
	Amount int `json:"amount"`
	Health int `json:"health"`
}
