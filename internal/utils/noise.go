package utils

import "github.com/aquilax/go-perlin"

// PathJitter offsets waypoints with perlin noise so enemies spawned on the same
// sector do not walk on top of each other. The jitter of a path is sampled
// once, when the enemy spawns.
type PathJitter struct {
	perlin    *perlin.Perlin
	amplitude float64
}

// NewPathJitter creates a jitter source. alpha/beta/octaves follow the
// values the perlin package documents for smooth terrain-like noise.
func NewPathJitter(seed int64, amplitude float64) *PathJitter {
	return &PathJitter{
		perlin:    perlin.NewPerlin(2.0, 2.0, 3, seed),
		amplitude: amplitude,
	}
}

// Offset returns the (dx, dy) jitter for waypoint index of the given sample
// (usually the enemy serial). Noise2D is in roughly [-1, 1].
func (j *PathJitter) Offset(sample, waypoint int) (float64, float64) {
	if j == nil || j.amplitude == 0 {
		return 0, 0
	}
	x := float64(sample)*0.37 + 0.5
	y := float64(waypoint)*0.73 + 0.5
	dx := j.perlin.Noise2D(x, y) * j.amplitude
	dy := j.perlin.Noise2D(x+101.3, y+57.9) * j.amplitude
	return dx, dy
}
