package system

import (
	"math"

	"go-scanner-defense/internal/component"
	"go-scanner-defense/internal/types"
	"go-scanner-defense/internal/utils"
)

// AxisRegistry maps ground positions to the N scanner axes and tracks which
// towers stand on each axis in build order.
type AxisRegistry struct {
	axisCount    int
	anglePerAxis float64
	minLength    float64
	maxLength    float64

	axes   [][]types.EntityID // may hold removed IDs until the next compaction
	counts []int
	owner  map[types.EntityID]int
}

func NewAxisRegistry(axisCount int, minLength, maxLength float64) *AxisRegistry {
	if axisCount < 1 {
		axisCount = 1
	}
	if maxLength < minLength {
		minLength, maxLength = maxLength, minLength
	}
	return &AxisRegistry{
		axisCount:    axisCount,
		anglePerAxis: 360 / float64(axisCount),
		minLength:    minLength,
		maxLength:    maxLength,
		axes:         make([][]types.EntityID, axisCount),
		counts:       make([]int, axisCount),
		owner:        make(map[types.EntityID]int),
	}
}

func (r *AxisRegistry) AxisCount() int {
	return r.axisCount
}

// AxisAngle returns the direction of axis i in math degrees.
func (r *AxisRegistry) AxisAngle(i int) float64 {
	return float64(i) * r.anglePerAxis
}

// AxisDirection returns the unit vector of axis i on the ground plane.
func (r *AxisRegistry) AxisDirection(i int) (float64, float64) {
	rad := r.AxisAngle(i) * math.Pi / 180
	return math.Cos(rad), math.Sin(rad)
}

// ClosestAxis returns the axis whose direction is nearest to the angle of
// pos around the origin. Ties go to the lower index, so the wrap tie between
// the last axis and axis 0 resolves to 0. The origin maps to axis 0.
func (r *AxisRegistry) ClosestAxis(pos component.Position) int {
	angle := utils.NormalizeDegrees(math.Atan2(pos.Y, pos.X) * 180 / math.Pi)
	best, bestDist := 0, math.Inf(1)
	for i := 0; i < r.axisCount; i++ {
		d := utils.AngularDistance(angle, r.AxisAngle(i))
		if d < bestDist-1e-9 {
			best, bestDist = i, d
		}
	}
	return best
}

// PointOnAxis snaps pos onto its closest axis, keeping the distance from the
// origin inside [minLength, maxLength].
func (r *AxisRegistry) PointOnAxis(pos component.Position) component.Position {
	axis := r.ClosestAxis(pos)
	length := utils.Clamp(math.Hypot(pos.X, pos.Y), r.minLength, r.maxLength)
	return r.PointAt(axis, length)
}

// PointAt returns the ground point at the given distance along axis i.
func (r *AxisRegistry) PointAt(axis int, length float64) component.Position {
	dx, dy := r.AxisDirection(axis)
	return component.Position{X: dx * length, Y: dy * length}
}

// Valid reports whether axis is a real axis index.
func (r *AxisRegistry) Valid(axis int) bool {
	return axis >= 0 && axis < r.axisCount
}

// AddTower appends id to the axis list. Adding a tower twice is a no-op.
func (r *AxisRegistry) AddTower(axis int, id types.EntityID) bool {
	if !r.Valid(axis) {
		return false
	}
	if _, ok := r.owner[id]; ok {
		return false
	}
	r.FiredTowers(axis, nil)
	r.owner[id] = axis
	r.axes[axis] = append(r.axes[axis], id)
	r.counts[axis]++
	return true
}

// RemoveTower drops id from its axis. The list itself is compacted lazily.
func (r *AxisRegistry) RemoveTower(id types.EntityID) bool {
	axis, ok := r.owner[id]
	if !ok {
		return false
	}
	delete(r.owner, id)
	r.counts[axis]--
	return true
}

// Axis returns the axis of a registered tower.
func (r *AxisRegistry) Axis(id types.EntityID) (int, bool) {
	axis, ok := r.owner[id]
	return axis, ok
}

func (r *AxisRegistry) TowerCount(axis int) int {
	if !r.Valid(axis) {
		return 0
	}
	return r.counts[axis]
}

// Towers returns the towers of an axis in build order.
func (r *AxisRegistry) Towers(axis int) []types.EntityID {
	return r.FiredTowers(axis, nil)
}

// FiredTowers returns the towers standing on the sector's axis in build
// order. Removed towers, and towers for which alive reports false, are
// dropped from the list as it is walked.
func (r *AxisRegistry) FiredTowers(sector int, alive func(types.EntityID) bool) []types.EntityID {
	if !r.Valid(sector) {
		return nil
	}
	list := r.axes[sector]
	kept := list[:0]
	for _, id := range list {
		if owner, ok := r.owner[id]; !ok || owner != sector {
			continue
		}
		if alive != nil && !alive(id) {
			delete(r.owner, id)
			r.counts[sector]--
			continue
		}
		kept = append(kept, id)
	}
	for i := len(kept); i < len(list); i++ {
		list[i] = 0
	}
	r.axes[sector] = kept
	out := make([]types.EntityID, len(kept))
	copy(out, kept)
	return out
}

// Clear forgets every tower.
func (r *AxisRegistry) Clear() {
	for i := range r.axes {
		r.axes[i] = nil
		r.counts[i] = 0
	}
	r.owner = make(map[types.EntityID]int)
}
