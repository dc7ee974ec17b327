package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-scanner-defense/internal/tempo"
	"go-scanner-defense/internal/utils"
)

func newRunningClock(t *testing.T, period float64, axes, measures int) *BeatClock {
	t.Helper()
	c, err := NewBeatClock(period, axes, measures)
	require.NoError(t, err)
	c.SetRunning(true)
	return c
}

func countKind(events []BeatEvent, kind BeatEventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestNewBeatClockRejectsBadPeriod(t *testing.T) {
	for _, p := range []float64{0, -1} {
		_, err := NewBeatClock(p, 8, 4)
		assert.ErrorIs(t, err, tempo.ErrNonPositivePeriod)
	}
	_, err := NewBeatClock(8, 0, 4)
	assert.Error(t, err)
	_, err = NewBeatClock(8, 8, 0)
	assert.Error(t, err)
}

func TestBeatClockTwoSectorsInTwoSeconds(t *testing.T) {
	c := newRunningClock(t, 8, 8, 4)
	assert.Equal(t, 4, c.NextSector())

	events := c.Advance(2)
	require.Equal(t, 2, countKind(events, SectorCrossed))
	assert.Equal(t, 1, countKind(events, MeasureElapsed))
	assert.Equal(t, 0, countKind(events, RotationCompleted))

	assert.Equal(t, SectorCrossed, events[0].Kind)
	assert.Equal(t, 4, events[0].Sector)
	// Sector 5 and the first measure both land at 90°; sector goes first.
	assert.Equal(t, SectorCrossed, events[1].Kind)
	assert.Equal(t, 5, events[1].Sector)
	assert.Equal(t, MeasureElapsed, events[2].Kind)

	assert.InDelta(t, 270.0, c.Angle(), 1e-9)
	assert.Equal(t, 6, c.NextSector())
}

func TestBeatClockSmallStepsMatchOneLargeStep(t *testing.T) {
	fine := newRunningClock(t, 8, 8, 4)
	coarse := newRunningClock(t, 8, 8, 4)

	var fineEvents []BeatEvent
	for i := 0; i < 1000; i++ {
		fineEvents = append(fineEvents, fine.Advance(0.017)...)
	}
	coarseEvents := coarse.Advance(17)

	require.Equal(t, len(coarseEvents), len(fineEvents))
	for i := range coarseEvents {
		assert.Equal(t, coarseEvents[i].Kind, fineEvents[i].Kind, "event %d", i)
		assert.Equal(t, coarseEvents[i].Sector, fineEvents[i].Sector, "event %d", i)
	}
	// 17s of an 8s rotation: 765° travelled.
	assert.Equal(t, 17, countKind(coarseEvents, SectorCrossed))
	assert.Equal(t, 8, countKind(coarseEvents, MeasureElapsed))
	assert.Equal(t, 2, countKind(coarseEvents, RotationCompleted))
}

func TestBeatClockSectorCountMatchesTravel(t *testing.T) {
	c := newRunningClock(t, 3, 5, 3)
	total := 0
	steps := []float64{0.01, 0.7, 2.9, 0.0001, 11.3, 0.05}
	for _, dt := range steps {
		total += countKind(c.Advance(dt), SectorCrossed)
	}
	assert.Equal(t, crossings(c.Travelled(), c.AnglePerSector()), total)
}

func TestBeatClockSectorsWrapModuloAxisCount(t *testing.T) {
	c := newRunningClock(t, 8, 8, 4)
	var sectors []int
	for _, e := range c.Advance(8) {
		if e.Kind == SectorCrossed {
			sectors = append(sectors, e.Sector)
		}
	}
	assert.Equal(t, []int{4, 5, 6, 7, 0, 1, 2, 3}, sectors)
	assert.InDelta(t, 0.0, c.Angle(), 1e-9)
}

func TestBeatClockStopFreezes(t *testing.T) {
	c := newRunningClock(t, 8, 8, 4)
	c.Advance(0.5)
	angle := c.Angle()

	c.SetRunning(false)
	assert.Empty(t, c.Advance(5))
	assert.Equal(t, angle, c.Angle())

	c.SetRunning(true)
	events := c.Advance(0.5)
	assert.Equal(t, 1, countKind(events, SectorCrossed))
}

func TestBeatClockIgnoresNonPositiveDelta(t *testing.T) {
	c := newRunningClock(t, 8, 8, 4)
	assert.Empty(t, c.Advance(0))
	assert.Empty(t, c.Advance(-3))
	assert.Equal(t, 0.0, c.Angle())
}

func TestBeatClockResetAndHeading(t *testing.T) {
	c := newRunningClock(t, 8, 8, 4)
	// Sector 4 fires when the beam points at 180°.
	assert.InDelta(t, 135.0, c.Heading(), 1e-9)
	c.Advance(1)
	assert.InDelta(t, 180.0, c.Heading(), 1e-9)

	c.Advance(3.3)
	c.Reset()
	assert.Equal(t, 0.0, c.Angle())
	assert.Equal(t, 4, c.NextSector())
	assert.True(t, c.Running())
	assert.Equal(t, 2.0, c.SecondsPerMeasure())
}

func TestBeatClockHeadingFollowsAngle(t *testing.T) {
	c := newRunningClock(t, 8, 8, 4)
	assert.InDelta(t, 135.0, c.RestHeading(), 1e-9)

	for _, dt := range []float64{0.3, 1, 2.7, 5, 0.01} {
		c.Advance(dt)
		// the yaw turns one way, the ground heading the other, by the same amount
		want := utils.NormalizeDegrees(c.RestHeading() - c.Angle())
		assert.InDelta(t, want, c.Heading(), 1e-6)
		assert.InDelta(t, utils.NormalizeDegrees(c.RestHeading()+c.Travelled()), c.Heading(), 1e-6)
	}

	four, err := NewBeatClock(4, 4, 2)
	require.NoError(t, err)
	// with four axes the rest heading is straight up
	assert.InDelta(t, 90.0, four.RestHeading(), 1e-9)
	assert.Equal(t, 0.0, four.Angle())
}
