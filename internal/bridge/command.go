package bridge

import (
	"fmt"

	"go-scanner-defense/internal/component"
	"go-scanner-defense/internal/defs"
	"go-scanner-defense/internal/types"
)

// Command is one inbound client request. Which fields matter depends on Type.
type Command struct {
	ID      string         `json:"id,omitempty"`
	Type    string         `json:"type"`
	Kind    string         `json:"kind,omitempty"`
	Axis    int            `json:"axis,omitempty"`
	Slot    int            `json:"slot,omitempty"`
	X       float64        `json:"x,omitempty"`
	Y       float64        `json:"y,omitempty"`
	Tower   types.EntityID `json:"tower,omitempty"`
	Running bool           `json:"running,omitempty"`
	Wave    *int           `json:"wave,omitempty"` // nil starts the next wave
	Scale   float64        `json:"scale,omitempty"`
}

// Result answers one Command.
type Result struct {
	ID     string         `json:"id,omitempty"`
	OK     bool           `json:"ok"`
	Error  string         `json:"error,omitempty"`
	Tower  types.EntityID `json:"tower,omitempty"`
	Refund int            `json:"refund,omitempty"`
}

// Handle runs a command against the session under the hub lock.
func (h *Hub) Handle(cmd Command) Result {
	h.mu.Lock()
	defer h.mu.Unlock()

	res := Result{ID: cmd.ID}
	var err error
	switch cmd.Type {
	case "build":
		res.Tower, err = h.game.BuildTower(defs.TowerKind(cmd.Kind), cmd.Axis, cmd.Slot)
	case "build_at":
		res.Tower, err = h.game.BuildTowerAt(defs.TowerKind(cmd.Kind), component.Position{X: cmd.X, Y: cmd.Y})
	case "upgrade":
		err = h.game.UpgradeTower(cmd.Tower)
	case "refund":
		res.Refund, err = h.game.RefundTower(cmd.Tower)
	case "running":
		err = h.game.SetRunning(cmd.Running)
	case "wave":
		if cmd.Wave == nil {
			err = h.game.ActivateNextWave()
		} else {
			err = h.game.ActivateWave(*cmd.Wave)
		}
	case "time_scale":
		err = h.game.SetTimeScale(cmd.Scale)
	default:
		err = fmt.Errorf("unknown command %q", cmd.Type)
	}
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.OK = true
	return res
}
