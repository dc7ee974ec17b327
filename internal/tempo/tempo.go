// Package tempo derives the scanner rotation period from the level music.
package tempo

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go-scanner-defense/internal/defs"
)

var (
	// ErrNonPositivePeriod means the rotation period came out as zero or
	// negative; the simulation cannot run without a positive period.
	ErrNonPositivePeriod = errors.New("rotation period must be positive")
	// ErrUnsupportedClip is returned for audio formats we cannot measure.
	ErrUnsupportedClip = errors.New("unsupported audio clip format")
)

// Tempo is the musical timing a level plays at.
type Tempo struct {
	SecondsPerMeasure   float64
	MeasuresPerRotation int
}

// FromClip derives the tempo from a clip that holds clipMeasures measures.
func FromClip(clip time.Duration, clipMeasures, measuresPerRotation int) (Tempo, error) {
	if clipMeasures <= 0 {
		return Tempo{}, fmt.Errorf("clip measures %d: %w", clipMeasures, ErrNonPositivePeriod)
	}
	t := Tempo{
		SecondsPerMeasure:   clip.Seconds() / float64(clipMeasures),
		MeasuresPerRotation: measuresPerRotation,
	}
	return t, t.validate()
}

// FromBPM derives the tempo from beats per minute.
func FromBPM(bpm float64, beatsPerMeasure, measuresPerRotation int) (Tempo, error) {
	if bpm <= 0 || beatsPerMeasure <= 0 {
		return Tempo{}, fmt.Errorf("bpm %v, beats per measure %d: %w", bpm, beatsPerMeasure, ErrNonPositivePeriod)
	}
	t := Tempo{
		SecondsPerMeasure:   60.0 / bpm * float64(beatsPerMeasure),
		MeasuresPerRotation: measuresPerRotation,
	}
	return t, t.validate()
}

// RotationPeriod is the time of one full scanner turn in seconds.
func (t Tempo) RotationPeriod() float64 {
	return t.SecondsPerMeasure * float64(t.MeasuresPerRotation)
}

func (t Tempo) validate() error {
	if t.MeasuresPerRotation <= 0 || !(t.RotationPeriod() > 0) {
		return fmt.Errorf("seconds per measure %v, measures per rotation %d: %w",
			t.SecondsPerMeasure, t.MeasuresPerRotation, ErrNonPositivePeriod)
	}
	return nil
}

// Resolve picks the tempo for a level. A clip is measured when present; if
// the clip file is missing and the level also carries a BPM, the BPM is used.
// musicDir is prepended to relative clip paths.
func Resolve(level *defs.LevelDefinition, musicDir string) (Tempo, error) {
	td := level.Tempo
	if td.Clip != "" {
		clipPath := td.Clip
		if !filepath.IsAbs(clipPath) && musicDir != "" {
			clipPath = filepath.Join(musicDir, clipPath)
		}
		d, err := ClipDuration(clipPath)
		switch {
		case err == nil:
			return FromClip(d, td.ClipMeasures, level.MeasuresPerRotation)
		case errors.Is(err, os.ErrNotExist) && td.BPM > 0:
			log.Printf("[Tempo] clip %s not found, falling back to %v bpm", clipPath, td.BPM)
		default:
			return Tempo{}, err
		}
	}
	return FromBPM(td.BPM, td.BeatsPerMeasure, level.MeasuresPerRotation)
}
