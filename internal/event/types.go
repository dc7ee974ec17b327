package event

const (
	EnemySpawned       EventType = "EnemySpawned"
	EnemyDied          EventType = "EnemyDied"        // убит башней
	EnemyReachedBase   EventType = "EnemyReachedBase" // самоуничтожение у базы
	TowerPlaced        EventType = "TowerPlaced"
	TowerUpgraded      EventType = "TowerUpgraded"
	TowerRemoved       EventType = "TowerRemoved"
	TowerFired         EventType = "TowerFired"
	ProjectileLaunched EventType = "ProjectileLaunched"
	WaveStarted        EventType = "WaveStarted"
	WaveCompleted      EventType = "WaveCompleted"
	PlayerDamaged      EventType = "PlayerDamaged"
	RotationStopped    EventType = "RotationStopped"
	GameOver           EventType = "GameOver"
	LevelCompleted     EventType = "LevelCompleted"
)
