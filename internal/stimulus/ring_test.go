package stimulus

import (
	"math"
	"testing"
)

func TestNewRingPositionsOnCircle(t *testing.T) {
	r := NewRing(20, 250)

	if r.Len() != 20 {
		t.Fatalf("ring length = %d, want 20", r.Len())
	}
	if r.Radius() != 250 {
		t.Fatalf("ring radius = %f, want 250", r.Radius())
	}
	for k := 0; k < r.Len(); k++ {
		d := Dist(r.Position(k), Point{})
		if math.Abs(d-250) > 1e-9 {
			t.Fatalf("target %d at distance %f from center, want 250", k, d)
		}
	}
}

func TestNewRingAnglesEvenlySpaced(t *testing.T) {
	r := NewRing(8, 100)

	for k := 0; k < r.Len(); k++ {
		want := 2 * math.Pi * float64(k) / 8
		if math.Abs(r.Angle(k)-want) > 1e-12 {
			t.Fatalf("angle %d = %f, want %f", k, r.Angle(k), want)
		}
	}
}

func TestNewRingFirstTargetOnPositiveXAxis(t *testing.T) {
	r := NewRing(20, 250)

	p0 := r.Position(0)
	if math.Abs(p0.X-250) > 1e-9 || math.Abs(p0.Y) > 1e-9 {
		t.Fatalf("target 0 at (%f, %f), want (250, 0)", p0.X, p0.Y)
	}

	p5 := r.Position(5)
	if math.Abs(p5.X) > 1e-9 || math.Abs(p5.Y-250) > 1e-9 {
		t.Fatalf("target 5 at (%f, %f), want (0, 250)", p5.X, p5.Y)
	}
}

func TestDiametricTargetsAreOpposite(t *testing.T) {
	r := NewRing(20, 250)

	for k := 0; k < 10; k++ {
		a := r.Position(k)
		b := r.Position(k + 10)
		if math.Abs(a.X+b.X) > 1e-9 || math.Abs(a.Y+b.Y) > 1e-9 {
			t.Fatalf("targets %d and %d not diametric: (%f,%f) vs (%f,%f)",
				k, k+10, a.X, a.Y, b.X, b.Y)
		}
	}
}

func TestDist(t *testing.T) {
	d := Dist(Point{X: 1, Y: 2}, Point{X: 4, Y: 6})
	if d != 5 {
		t.Fatalf("Dist = %f, want 5", d)
	}
	if Dist(Point{X: 3, Y: -3}, Point{X: 3, Y: -3}) != 0 {
		t.Fatal("distance of a point to itself should be 0")
	}
}
