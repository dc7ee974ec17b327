package tempo

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
)

// go-mp3 always decodes to 16-bit little endian stereo.
const mp3BytesPerFrame = 4

// ClipDuration measures the play length of an audio file.
func ClipDuration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open clip: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return wavDuration(f)
	case ".ogg":
		samples, format, err := oggvorbis.GetLength(f)
		if err != nil {
			return 0, fmt.Errorf("decode ogg %s: %w", path, err)
		}
		return frameDuration(samples, format.SampleRate), nil
	case ".mp3":
		d, err := mp3.NewDecoder(f)
		if err != nil {
			return 0, fmt.Errorf("decode mp3 %s: %w", path, err)
		}
		return frameDuration(d.Length()/mp3BytesPerFrame, d.SampleRate()), nil
	default:
		return 0, fmt.Errorf("%s: %w", path, ErrUnsupportedClip)
	}
}

func wavDuration(r io.ReadCloser) (time.Duration, error) {
	streamer, format, err := wav.Decode(r)
	if err != nil {
		return 0, fmt.Errorf("decode wav: %w", err)
	}
	defer streamer.Close()
	return format.SampleRate.D(streamer.Len()), nil
}

func frameDuration(frames int64, sampleRate int) time.Duration {
	if sampleRate <= 0 || frames <= 0 {
		return 0
	}
	return time.Duration(frames) * time.Second / time.Duration(sampleRate)
}
