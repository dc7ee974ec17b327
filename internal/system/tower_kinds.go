package system

import (
	"go-scanner-defense/internal/component"
	"go-scanner-defense/internal/config"
	"go-scanner-defense/internal/defs"
)

// AttackMode says how an attack plan is delivered.
type AttackMode int

const (
	AttackInstant AttackMode = iota
	AttackProjectile
	AttackBurst
)

// TowerStats are the numbers a tower fights with at one level.
type TowerStats struct {
	Power        float64
	Range        float64
	SplashRadius float64
}

// AttackPlan is what a tower does when the scanner crosses its axis.
type AttackPlan struct {
	Mode           AttackMode
	Rule           TargetRule
	Power          float64
	Slows          bool
	TravelDuration float64
	SplashRadius   float64
	Shots          int
	ShotInterval   float64
}

// KindBehavior is the per-kind behaviour table entry. Both functions are pure.
type KindBehavior struct {
	Stats func(def defs.TowerDefinition, level int) TowerStats
	Fire  func(def defs.TowerDefinition, stats TowerStats) AttackPlan
}

var kindBehaviors = map[defs.TowerKind]KindBehavior{
	defs.KindPulse: {
		Stats: levelStats,
		Fire: func(_ defs.TowerDefinition, st TowerStats) AttackPlan {
			return AttackPlan{Mode: AttackInstant, Rule: RuleAoEAll, Power: st.Power}
		},
	},
	defs.KindFrost: {
		Stats: levelStats,
		Fire: func(_ defs.TowerDefinition, st TowerStats) AttackPlan {
			return AttackPlan{Mode: AttackInstant, Rule: RuleAoEAll, Power: st.Power, Slows: true}
		},
	},
	defs.KindSniper: {
		Stats: levelStats,
		Fire: func(def defs.TowerDefinition, st TowerStats) AttackPlan {
			return AttackPlan{Mode: AttackProjectile, Rule: RuleFarthest, Power: st.Power, TravelDuration: def.TravelDuration}
		},
	},
	defs.KindMortar: {
		Stats: levelStats,
		Fire: func(def defs.TowerDefinition, st TowerStats) AttackPlan {
			return AttackPlan{
				Mode:           AttackProjectile,
				Rule:           RuleFarthest,
				Power:          st.Power,
				TravelDuration: def.TravelDuration,
				SplashRadius:   st.SplashRadius,
			}
		},
	},
	defs.KindBurst: {
		Stats: levelStats,
		Fire: func(def defs.TowerDefinition, st TowerStats) AttackPlan {
			shots, interval := def.Shots, def.ShotInterval
			if shots <= 0 {
				shots = config.BurstShots
			}
			if interval <= 0 {
				interval = config.BurstInterval
			}
			return AttackPlan{Mode: AttackBurst, Rule: RuleFarthest, Power: st.Power, Shots: shots, ShotInterval: interval}
		},
	},
}

// BehaviorFor looks up the behaviour of a kind.
func BehaviorFor(kind defs.TowerKind) (KindBehavior, bool) {
	b, ok := kindBehaviors[kind]
	return b, ok
}

func levelStats(def defs.TowerDefinition, level int) TowerStats {
	st := TowerStats{
		Power: levelValue(def.AttackPower, level),
		Range: levelValue(def.AttackRange, level),
	}
	if len(def.SplashRadius) > 0 {
		st.SplashRadius = levelValue(def.SplashRadius, level)
	}
	return st
}

// levelValue indexes a per-level table, clamping to its bounds.
func levelValue(table []float64, level int) float64 {
	if len(table) == 0 {
		return 0
	}
	if level < 0 {
		level = 0
	}
	if level >= len(table) {
		level = len(table) - 1
	}
	return table[level]
}

// StatsFor resolves the stats of a built tower.
func StatsFor(lib *defs.Library, tower *component.Tower) (TowerStats, bool) {
	def, ok := lib.Tower(tower.Kind)
	if !ok {
		return TowerStats{}, false
	}
	b, ok := BehaviorFor(tower.Kind)
	if !ok {
		return TowerStats{}, false
	}
	return b.Stats(def, tower.Level), true
}

// PlanFor resolves the attack plan of a built tower.
func PlanFor(lib *defs.Library, tower *component.Tower) (AttackPlan, bool) {
	def, ok := lib.Tower(tower.Kind)
	if !ok {
		return AttackPlan{}, false
	}
	b, ok := BehaviorFor(tower.Kind)
	if !ok {
		return AttackPlan{}, false
	}
	return b.Fire(def, b.Stats(def, tower.Level)), true
}
