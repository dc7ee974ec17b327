package component

// GameState — компонент для хранения состояния игры
type GameState int

const (
	BuildState GameState = iota
	WaveState
	GameOverState
	LevelCompleteState
)

func (s GameState) String() string {
	switch s {
	case BuildState:
		return "build"
	case WaveState:
		return "wave"
	case GameOverState:
		return "game_over"
	case LevelCompleteState:
		return "level_complete"
	}
	return "unknown"
}
