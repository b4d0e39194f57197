package stimulus

import "math"

// Shuttle is one marker moving along the ellipse spanned between a pair's
// endpoints. All fields are fixed at setup; only the evaluated position
// changes over time, and it is derived per call rather than stored.
type Shuttle struct {
	Theta  float64 // pair axis angle in radians
	A      float64 // semi-major axis, equal to the ring radius
	B      float64 // semi-minor axis
	Speed  float64 // orbit cycles per second
	Offset float64 // phase offset in [0,1)
}

// At returns the shuttle's position at elapsed time t in seconds. Position
// is derived from t alone; the shuttle carries no per-frame state.
func (s Shuttle) At(t float64) Point {
	return OrbitPoint(mod1(t*s.Speed+s.Offset), s.Theta, s.A, s.B)
}

// OrbitPoint maps a phase in [0,1) onto the ellipse with semi-axes a and b
// rotated by theta into model space. Phase 0 is the +a endpoint along theta,
// phase 0.5 the opposite endpoint.
func OrbitPoint(phase, theta, a, b float64) Point {
	p := 2 * math.Pi * phase
	ex := a * math.Cos(p)
	ey := b * math.Sin(p)
	sin, cos := math.Sincos(theta)
	return Point{
		X: ex*cos - ey*sin,
		Y: ex*sin + ey*cos,
	}
}
