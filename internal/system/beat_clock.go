package system

import (
	"fmt"
	"math"
	"sort"

	"go-scanner-defense/internal/config"
	"go-scanner-defense/internal/tempo"
	"go-scanner-defense/internal/utils"
)

// crossingEpsilon absorbs float drift when many small steps add up to an
// exact boundary (120 steps of 0.75° must count as 90°).
const crossingEpsilon = 1e-9

// BeatEventKind — тип события часов сканера.
type BeatEventKind int

const (
	SectorCrossed BeatEventKind = iota
	MeasureElapsed
	RotationCompleted
)

func (k BeatEventKind) String() string {
	switch k {
	case SectorCrossed:
		return "SectorCrossed"
	case MeasureElapsed:
		return "MeasureElapsed"
	case RotationCompleted:
		return "RotationCompleted"
	}
	return "Unknown"
}

// BeatEvent is one discrete event crossed during an Advance call.
type BeatEvent struct {
	Kind   BeatEventKind
	Sector int     // SectorCrossed only
	Index  int     // running count of this kind since Reset, starting at 0
	At     float64 // travelled angle at which the event happened
}

// BeatClock turns elapsed time into scanner rotation and beat events.
type BeatClock struct {
	period              float64
	speed               float64 // degrees per second
	axisCount           int
	measuresPerRotation int
	anglePerSector      float64
	anglePerMeasure     float64

	angle       float64 // [0, 360), decreases while running
	startSector int
	running     bool

	travelled float64
	sectors   int
	measures  int
	rotations int
}

// NewBeatClock creates a stopped clock at the canonical start orientation.
func NewBeatClock(periodSeconds float64, axisCount, measuresPerRotation int) (*BeatClock, error) {
	if !(periodSeconds > 0) || math.IsInf(periodSeconds, 0) {
		return nil, fmt.Errorf("beat clock period %v: %w", periodSeconds, tempo.ErrNonPositivePeriod)
	}
	if axisCount < 1 {
		return nil, fmt.Errorf("beat clock: axis count %d must be at least 1", axisCount)
	}
	if measuresPerRotation < 1 {
		return nil, fmt.Errorf("beat clock: measures per rotation %d must be at least 1", measuresPerRotation)
	}
	c := &BeatClock{
		period:              periodSeconds,
		speed:               360 / periodSeconds,
		axisCount:           axisCount,
		measuresPerRotation: measuresPerRotation,
		anglePerSector:      360 / float64(axisCount),
		anglePerMeasure:     360 / float64(measuresPerRotation),
	}
	c.Reset()
	return c, nil
}

// Advance moves the scanner by dt seconds and returns every event crossed,
// ordered by the angle at which it happened. A stopped clock returns nil.
func (c *BeatClock) Advance(dt float64) []BeatEvent {
	if !c.running || !(dt > 0) {
		return nil
	}
	delta := c.speed * dt
	c.angle = utils.NormalizeDegrees(c.angle - delta)
	c.travelled += delta

	var events []BeatEvent
	for n := crossings(c.travelled, c.anglePerSector); c.sectors < n; c.sectors++ {
		events = append(events, BeatEvent{
			Kind:   SectorCrossed,
			Sector: (c.startSector + c.sectors) % c.axisCount,
			Index:  c.sectors,
			At:     float64(c.sectors+1) * c.anglePerSector,
		})
	}
	for n := crossings(c.travelled, c.anglePerMeasure); c.measures < n; c.measures++ {
		events = append(events, BeatEvent{
			Kind:  MeasureElapsed,
			Index: c.measures,
			At:    float64(c.measures+1) * c.anglePerMeasure,
		})
	}
	for n := crossings(c.travelled, 360); c.rotations < n; c.rotations++ {
		events = append(events, BeatEvent{
			Kind:  RotationCompleted,
			Index: c.rotations,
			At:    float64(c.rotations+1) * 360,
		})
	}
	if len(events) > 1 {
		sort.SliceStable(events, func(i, j int) bool {
			if math.Abs(events[i].At-events[j].At) > crossingEpsilon {
				return events[i].At < events[j].At
			}
			return events[i].Kind < events[j].Kind
		})
	}
	return events
}

func crossings(travelled, step float64) int {
	return int(math.Floor(travelled/step + crossingEpsilon))
}

// Reset returns the scanner to 12 o'clock with the opposite sector next to
// play and clears the counters. The running flag is left alone.
func (c *BeatClock) Reset() {
	c.angle = utils.NormalizeDegrees(config.StartAngleDegrees)
	c.startSector = c.axisCount / 2
	c.travelled = 0
	c.sectors, c.measures, c.rotations = 0, 0, 0
}

// SetRunning starts or freezes the rotation.
func (c *BeatClock) SetRunning(running bool) {
	c.running = running
}

func (c *BeatClock) Running() bool {
	return c.running
}

// Angle is the scanner yaw in degrees, [0, 360). It is 0 at rest and
// decreases while the scanner turns.
func (c *BeatClock) Angle() float64 {
	return c.angle
}

// RestHeading is the ground-plane heading of the beam at yaw 0: one sector
// short of the start sector.
func (c *BeatClock) RestHeading() float64 {
	return utils.NormalizeDegrees(float64(c.startSector-1) * c.anglePerSector)
}

// Heading is the same beam as Angle on the ground plane, in math degrees
// (counter-clockwise from +X). Sector s fires when the heading reaches
// s*anglePerSector.
func (c *BeatClock) Heading() float64 {
	return utils.NormalizeDegrees(c.RestHeading() + config.StartAngleDegrees - c.angle)
}

// NextSector is the sector the next SectorCrossed event will carry.
func (c *BeatClock) NextSector() int {
	return (c.startSector + c.sectors) % c.axisCount
}

func (c *BeatClock) Period() float64 {
	return c.period
}

func (c *BeatClock) AnglePerSector() float64 {
	return c.anglePerSector
}

// SecondsPerMeasure is the wall time between MeasureElapsed events.
func (c *BeatClock) SecondsPerMeasure() float64 {
	return c.period / float64(c.measuresPerRotation)
}

// Travelled is the total angle covered since the last Reset.
func (c *BeatClock) Travelled() float64 {
	return c.travelled
}
