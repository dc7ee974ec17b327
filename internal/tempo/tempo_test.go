package tempo

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go-scanner-defense/internal/defs"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSilentWav(t *testing.T, dir string, seconds int) string {
	t.Helper()
	path := filepath.Join(dir, "clip.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	format := beep.Format{SampleRate: 8000, NumChannels: 1, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Silence(8000*seconds), format))
	return path
}

func TestFromBPM(t *testing.T) {
	tp, err := FromBPM(120, 4, 4)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, tp.SecondsPerMeasure, 1e-9)
	assert.InDelta(t, 8.0, tp.RotationPeriod(), 1e-9)
}

func TestNonPositivePeriodIsRejected(t *testing.T) {
	_, err := FromBPM(0, 4, 4)
	assert.ErrorIs(t, err, ErrNonPositivePeriod)

	_, err = FromClip(0, 8, 4)
	assert.ErrorIs(t, err, ErrNonPositivePeriod)

	_, err = FromClip(4*time.Second, 0, 4)
	assert.ErrorIs(t, err, ErrNonPositivePeriod)

	_, err = FromBPM(120, 4, 0)
	assert.ErrorIs(t, err, ErrNonPositivePeriod)
}

func TestClipDurationWav(t *testing.T) {
	path := writeSilentWav(t, t.TempDir(), 4)

	d, err := ClipDuration(path)
	require.NoError(t, err)
	assert.Equal(t, 4*time.Second, d)

	tp, err := FromClip(d, 2, 4)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, tp.RotationPeriod(), 1e-9)
}

func TestClipDurationUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.flac")
	require.NoError(t, os.WriteFile(path, []byte("fLaC"), 0o644))

	_, err := ClipDuration(path)
	assert.ErrorIs(t, err, ErrUnsupportedClip)
}

func TestClipDurationCorruptStreams(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"clip.ogg", "clip.mp3"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("not audio at all"), 0o644))
		_, err := ClipDuration(path)
		assert.Error(t, err, name)
		assert.NotErrorIs(t, err, ErrUnsupportedClip, name)
	}
}

func TestFrameDuration(t *testing.T) {
	assert.Equal(t, 3*time.Second, frameDuration(44100*3, 44100))
	assert.Equal(t, 500*time.Millisecond, frameDuration(24000, 48000))
	assert.Zero(t, frameDuration(-1, 44100))
	assert.Zero(t, frameDuration(100, 0))
}

// The simulation core must build without an audio device driver.
func TestPackageImportsNoAudioDriver(t *testing.T) {
	paths, err := filepath.Glob("*.go")
	require.NoError(t, err)
	fset := token.NewFileSet()
	for _, path := range paths {
		if strings.HasSuffix(path, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		require.NoError(t, err)
		for _, imp := range f.Imports {
			assert.NotContains(t, imp.Path.Value, "ebiten", path)
			assert.NotContains(t, imp.Path.Value, "oto", path)
		}
	}
}

func TestResolveFallsBackToBPMWhenClipMissing(t *testing.T) {
	level := &defs.LevelDefinition{
		MeasuresPerRotation: 4,
		Tempo:               defs.TempoDefinition{Clip: "missing.ogg", ClipMeasures: 8, BPM: 120, BeatsPerMeasure: 4},
	}
	tp, err := Resolve(level, t.TempDir())
	require.NoError(t, err)
	assert.InDelta(t, 8.0, tp.RotationPeriod(), 1e-9)
}

func TestResolveMeasuresClip(t *testing.T) {
	dir := t.TempDir()
	writeSilentWav(t, dir, 6)
	level := &defs.LevelDefinition{
		MeasuresPerRotation: 2,
		Tempo:               defs.TempoDefinition{Clip: "clip.wav", ClipMeasures: 3},
	}
	tp, err := Resolve(level, dir)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, tp.SecondsPerMeasure, 1e-9)
	assert.InDelta(t, 4.0, tp.RotationPeriod(), 1e-9)
}

func TestResolveMissingClipWithoutBPMFails(t *testing.T) {
	level := &defs.LevelDefinition{
		MeasuresPerRotation: 4,
		Tempo:               defs.TempoDefinition{Clip: "missing.wav", ClipMeasures: 8},
	}
	_, err := Resolve(level, t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
