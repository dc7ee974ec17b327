package system

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-scanner-defense/internal/config"
	"go-scanner-defense/internal/defs"
	"go-scanner-defense/internal/types"
	"go-scanner-defense/internal/utils"
)

type spawnCall struct {
	sector byte
	enemy  defs.EnemyType
}

type recordingSpawner struct {
	calls []spawnCall
	fail  bool
}

func (r *recordingSpawner) SpawnEnemy(sector byte, enemy defs.EnemyType) (types.EntityID, error) {
	if r.fail {
		return 0, errors.New("no such sector")
	}
	r.calls = append(r.calls, spawnCall{sector, enemy})
	return types.EntityID(len(r.calls)), nil
}

func newTestWaveSystem(t *testing.T, line string) (*WaveSystem, *recordingSpawner) {
	t.Helper()
	script, err := defs.ParseWave(line)
	require.NoError(t, err)
	spawner := &recordingSpawner{}
	ws := NewWaveSystem(spawner, utils.NewPRNGService(42), config.SpawnDelayMin, config.SpawnDelayMax)
	ws.Activate(0, script)
	return ws, spawner
}

func TestWaveScriptTimeline(t *testing.T) {
	ws, spawner := newTestWaveSystem(t, "As3;w2;Al1,Bs2")
	assert.False(t, ws.Done(0), "a fresh wave is not done")

	// The first measure after activation is spent waiting.
	ws.OnMeasureElapsed()
	ws.Update(2)
	assert.Empty(t, spawner.calls)

	ws.OnMeasureElapsed()
	assert.Equal(t, 3, ws.PendingSpawns())
	ws.Update(2)
	assert.Equal(t, []spawnCall{{'A', 's'}, {'A', 's'}, {'A', 's'}}, spawner.calls)
	assert.False(t, ws.Done(3))

	// w2 is consumed on its own measure, then two more are skipped.
	for i := 0; i < 3; i++ {
		ws.OnMeasureElapsed()
		ws.Update(2)
	}
	assert.Len(t, spawner.calls, 3)

	ws.OnMeasureElapsed()
	ws.Update(2)
	require.Len(t, spawner.calls, 6)
	assert.Equal(t, []spawnCall{{'A', 'l'}, {'B', 's'}, {'B', 's'}}, spawner.calls[3:])

	assert.False(t, ws.Done(1), "live enemies keep the wave running")
	assert.True(t, ws.Done(0))
}

func TestWaveSpawnsAreStaggered(t *testing.T) {
	ws, spawner := newTestWaveSystem(t, "Bl3")
	ws.OnMeasureElapsed()
	ws.OnMeasureElapsed()

	ws.Update(config.SpawnDelayMin / 2)
	assert.Empty(t, spawner.calls)
	ws.Update(config.SpawnDelayMax)
	assert.GreaterOrEqual(t, len(spawner.calls), 1)
	assert.Less(t, len(spawner.calls), 3+1)
	ws.Update(3 * config.SpawnDelayMax)
	assert.Len(t, spawner.calls, 3)
	assert.Zero(t, ws.PendingSpawns())
}

func TestWaveNotDoneWhileSpawnsPending(t *testing.T) {
	ws, _ := newTestWaveSystem(t, "As1")
	ws.OnMeasureElapsed()
	ws.OnMeasureElapsed()
	assert.False(t, ws.Done(0))
	ws.Update(1)
	assert.True(t, ws.Done(0))
}

func TestWaveEmptyScriptIsDoneImmediately(t *testing.T) {
	ws, _ := newTestWaveSystem(t, " ; ,")
	assert.True(t, ws.Done(0))
	ws.Reset()
	assert.False(t, ws.Done(0), "an inactive director is never done")
}

func TestWaveSpawnErrorDoesNotStall(t *testing.T) {
	ws, spawner := newTestWaveSystem(t, "As2")
	spawner.fail = true
	ws.OnMeasureElapsed()
	ws.OnMeasureElapsed()
	ws.Update(1)
	assert.True(t, ws.Done(0))
}
