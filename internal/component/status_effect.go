// internal/component/status_effect.go
package component

// SlowEffect indicates that an entity is slowed for a number of move ticks.
type SlowEffect struct {
	Ticks      int     // move ticks left
	SlowFactor float64 // multiplier for speed (e.g., 0.5 for 50% slow)
}

// DeathEffect keeps a dead enemy around while its death effect plays.
type DeathEffect struct {
	Timer    float64
	Duration float64
}
