// internal/state/music.go
package state

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"go-scanner-defense/internal/tempo"
)

const musicSampleRate = 44100

// Music loops a level clip while the scanner turns.
type Music struct {
	player *audio.Player
	file   io.Closer
}

func audioContext() *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(musicSampleRate)
}

// LoadMusic opens a clip for looped playback. Relative paths are resolved
// against musicDir.
func LoadMusic(path, musicDir string) (*Music, error) {
	if !filepath.IsAbs(path) && musicDir != "" {
		path = filepath.Join(musicDir, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open music: %w", err)
	}

	ctx := audioContext()
	var stream interface {
		io.ReadSeeker
		Length() int64
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(ctx.SampleRate(), f)
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(ctx.SampleRate(), f)
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(ctx.SampleRate(), f)
	default:
		err = tempo.ErrUnsupportedClip
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode music %s: %w", path, err)
	}

	player, err := ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("music player: %w", err)
	}
	return &Music{player: player, file: f}, nil
}

// Sync plays while the scanner runs and pauses while it is stopped.
func (m *Music) Sync(running bool) {
	if m == nil {
		return
	}
	switch {
	case running && !m.player.IsPlaying():
		m.player.Play()
	case !running && m.player.IsPlaying():
		m.player.Pause()
	}
}

// Restart rewinds to the first measure.
func (m *Music) Restart() {
	if m == nil {
		return
	}
	_ = m.player.SetPosition(0)
}

func (m *Music) Close() {
	if m == nil {
		return
	}
	m.player.Close()
	m.file.Close()
}
