// internal/component/projectile.go
package component

import "go-scanner-defense/internal/types"

// Projectile представляет летящий снаряд. Target is a weak reference: the
// enemy may die or disappear while the projectile is in flight.
type Projectile struct {
	Tower          types.EntityID
	Target         types.EntityID
	Origin         Position
	Elapsed        float64
	TravelDuration float64
	Timeout        float64
	Power          float64
	SplashRadius   float64
}
