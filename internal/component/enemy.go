package component

// EnemyState is the lifecycle of an enemy. Dead is terminal.
type EnemyState int

const (
	EnemySpawned EnemyState = iota
	EnemyTraveling
	EnemyVulnerable
	EnemyDead
)

func (s EnemyState) String() string {
	switch s {
	case EnemySpawned:
		return "spawned"
	case EnemyTraveling:
		return "traveling"
	case EnemyVulnerable:
		return "vulnerable"
	case EnemyDead:
		return "dead"
	}
	return "unknown"
}

// Enemy представляет вражескую сущность.
type Enemy struct {
	Type           string // enemy type letter from the definitions
	Sector         byte   // spawn sector letter
	State          EnemyState
	TravelDistance float64 // only ever grows
	NextWaypoint   int     // index into Path.Points[1:]; >0 means vulnerable
	MoneyReward    int
	PointValue     int
	SpeedScale     float64 // wave difficulty multiplier, fixed at spawn
	MoveStep       float64 // distancePerMove
	SpawnStep      float64 // distancePerMoveOnSpawn
	SpawnLength    float64 // length of the underground ramp
	ReachedBase    bool
	Killed         bool // reached Dead through damage
}

// Vulnerable reports whether damage applies.
func (e *Enemy) Vulnerable() bool {
	return e.State == EnemyVulnerable
}

// Alive reports whether the enemy still takes part in the simulation.
func (e *Enemy) Alive() bool {
	return e.State != EnemyDead
}

// OnSpawnRamp is true until the first surface waypoint is reached.
func (e *Enemy) OnSpawnRamp() bool {
	return e.NextWaypoint == 0
}
