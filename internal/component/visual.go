// internal/component/visual.go
package component

// DamageFlash marks an enemy that was just hit; drivers blend it toward the
// stroke color while the flash plays.
type DamageFlash struct {
	Timer    float64 // seconds played
	Duration float64
}

// Progress is how far the flash has played, in [0, 1].
func (f *DamageFlash) Progress() float64 {
	if f.Duration <= 0 || f.Timer >= f.Duration {
		return 1
	}
	return f.Timer / f.Duration
}

// Restart replays the flash from the beginning, e.g. on a second hit.
func (f *DamageFlash) Restart(duration float64) {
	f.Timer = 0
	f.Duration = duration
}
