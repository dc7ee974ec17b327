// component/tower.go
package component

import "go-scanner-defense/internal/defs"

type Tower struct {
	Kind       defs.TowerKind
	Axis       int
	Slot       int // build slot on the axis, -1 when placed by position
	Level      int // 0..MaxLevel-1, only grows
	Cost       int // build price, refunds are computed from it
	Invested   int // build price plus upgrades
	Refundable bool
	IsBuilt    bool
}
