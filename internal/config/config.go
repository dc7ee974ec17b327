// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// Scanner
	AxisCount           = 8
	MeasuresPerRotation = 4
	StartAngleDegrees   = 0.0 // scanner yaw at rest, "12 o'clock"
	StopAfterRotations  = 1

	// Build area
	MinAxisLength   = 2.0
	MaxAxisLength   = 9.0
	SlotsPerAxis    = 3
	MinTowerSpacing = 1.0
	RefundRatio     = 0.5

	// Player
	StartMoney        = 300
	PlayerHealth      = 10
	BaseDamagePerHit  = 1
	WaveClearBonus    = 25
	WaveDifficultyMul = 0.15

	// Enemies
	SlowFactor          = 0.5
	SlowDurationTicks   = 4
	MoveMeasureFraction = 0.5 // часть такта, за которую враг проходит один шаг
	DeathEffectDuration = 0.4
	DamageFlashDuration = 0.15
	SpawnDelayMin       = 0.05
	SpawnDelayMax       = 0.35
	PathJitter          = 0.35

	// Projectiles
	ProjectileContactRadius = 0.25
	ProjectileTimeoutFactor = 2.0

	// Burst towers
	BurstShots    = 3
	BurstInterval = 0.12

	// Rendering (cmd/game)
	WorldScale        = 42.0 // pixels per world unit
	TowerRadius       = 9.0
	EnemyRadius       = 7.0
	ProjectileRadius  = 3.0
	BaseRadius        = 22.0
	IndicatorOffsetX  = 30
	IndicatorRadius   = 10.0
	SpeedButtonOffset = 80
	SpeedButtonY      = 30
	SpeedButtonSize   = 18.0
	ClickCooldownMs   = 150
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	AxisColor        = color.RGBA{70, 100, 120, 220}
	BeamColor        = color.RGBA{255, 255, 224, 90}
	BaseColor        = color.RGBA{50, 205, 50, 255}
	EnemyColor       = color.RGBA{220, 60, 60, 255}
	EnemyHiddenColor = color.RGBA{120, 60, 60, 160}
	ProjectileColor  = color.RGBA{255, 215, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	BuildStateColor  = color.RGBA{70, 130, 180, 220}
	WaveStateColor   = color.RGBA{220, 60, 60, 220}
	TowerColors      = map[string]color.RGBA{
		"pulse":  {255, 50, 50, 255},
		"frost":  {50, 100, 255, 255},
		"sniper": {50, 255, 50, 255},
		"mortar": {180, 50, 230, 255},
		"burst":  {255, 215, 0, 255},
	}
	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4
	}
	SpeedMultipliers = []float64{1, 2, 4}
)
