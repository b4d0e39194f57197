package stimulus

import "math"

// Point is a position in model space: origin at the ring center, +y up.
// The presentation layer owns the mapping to screen coordinates.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Ring holds the fixed target positions of one stimulus layout. Positions
// never change after construction.
type Ring struct {
	positions []Point
	angles    []float64
	radius    float64
}

// NewRing lays out n targets evenly on a circle of the given radius.
// Target k sits at angle 2πk/n, so the sequence covers the circle once with
// no endpoint repeat. n must be even and at least 4; the configuration layer
// validates that before construction.
func NewRing(n int, radius float64) Ring {
	positions := make([]Point, n)
	angles := make([]float64, n)
	for k := 0; k < n; k++ {
		a := 2 * math.Pi * float64(k) / float64(n)
		angles[k] = a
		positions[k] = Point{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	return Ring{positions: positions, angles: angles, radius: radius}
}

// Len returns the number of targets.
func (r Ring) Len() int { return len(r.positions) }

// Radius returns the circle radius the targets sit on.
func (r Ring) Radius() float64 { return r.radius }

// Position returns target k's fixed position.
func (r Ring) Position(k int) Point { return r.positions[k] }

// Angle returns target k's angle on the ring in radians.
func (r Ring) Angle(k int) float64 { return r.angles[k] }
