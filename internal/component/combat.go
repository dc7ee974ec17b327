package component

// Health — компонент здоровья
type Health struct {
	Value   float64
	Initial float64
}

// Regeneration heals an enemy back toward Health.Initial after it has gone
// DelayTicks move ticks without being hit.
type Regeneration struct {
	RatePerSecond float64
	DelayTicks    int
	Counter       int // ticks left before healing resumes
}
