// internal/component/player.go
package component

// PlayerStateComponent хранит информацию, специфичную для игрока.
type PlayerStateComponent struct {
	Money  int
	Points int
	Health int
}
