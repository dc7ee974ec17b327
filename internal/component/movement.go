// component/movement.go
package component

// Position — компонент позиции. X/Y lie on the ground plane, Z is altitude
// (negative while an enemy is still underground).
type Position struct {
	X, Y, Z float64
}

// Path — компонент пути: a polyline fixed at spawn. Points[0] is the
// underground start, Points[1] the first surface waypoint, the last point is
// the home base. Cumulative[i] is the path length from Points[0] to Points[i].
type Path struct {
	Points     []Position
	Cumulative []float64
}

// Length is the full travel distance of the path.
func (p *Path) Length() float64 {
	if len(p.Cumulative) == 0 {
		return 0
	}
	return p.Cumulative[len(p.Cumulative)-1]
}

// Ease selects the interpolation curve of a move segment.
type Ease int

const (
	EaseLinear Ease = iota
	EaseCubicIn
	EaseCubicOut
)

// Motion is an in-flight move segment started by a move tick and
// interpolated every frame until Elapsed reaches Duration.
type Motion struct {
	From, To float64 // travel distances
	Elapsed  float64
	Duration float64
	Ease     Ease
}
