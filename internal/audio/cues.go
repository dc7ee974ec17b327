// Package audio plays short synthesized cues for session events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-scanner-defense/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// Cue is one kind of sound.
type Cue int

const (
	CueFire Cue = iota
	CueKill
	CueBaseHit
	CueWave
)

// cueTone describes how each cue sounds.
var cueTone = map[Cue]struct {
	freq  float64
	decay float64
	dur   time.Duration
}{
	CueFire:    {freq: 880, decay: 30, dur: 60 * time.Millisecond},
	CueKill:    {freq: 520, decay: 10, dur: 200 * time.Millisecond},
	CueBaseHit: {freq: 110, decay: 6, dur: 350 * time.Millisecond},
	CueWave:    {freq: 660, decay: 4, dur: 500 * time.Millisecond},
}

// CuePlayer mixes cues into the speaker. It listens to a session
// dispatcher. A player that failed to initialize stays silent.
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	played      map[Cue]int
}

func NewCuePlayer() *CuePlayer {
	return &CuePlayer{
		mixer:  &beep.Mixer{},
		played: make(map[Cue]int),
	}
}

// Initialize opens the speaker.
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues a cue.
func (p *CuePlayer) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.played[c]++
	if !p.initialized {
		return
	}
	tone, ok := cueTone[c]
	if !ok {
		return
	}
	speaker.Lock()
	p.mixer.Add(beep.Take(sampleRate.N(tone.dur), NewToneGenerator(sampleRate, tone.freq, tone.decay)))
	speaker.Unlock()
}

// Played reports how often a cue was requested.
func (p *CuePlayer) Played(c Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[c]
}

// OnEvent maps session events to cues.
func (p *CuePlayer) OnEvent(e event.Event) {
	switch e.Type {
	case event.TowerFired:
		p.Play(CueFire)
	case event.EnemyDied:
		p.Play(CueKill)
	case event.EnemyReachedBase:
		p.Play(CueBaseHit)
	case event.WaveStarted, event.WaveCompleted:
		p.Play(CueWave)
	}
}

// Close silences everything still playing.
func (p *CuePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
