package stimulus

import "math"

// PhaseOffsets computes each shuttle's starting phase from a single spread
// control in [0,1]. Every shuttle has its own left-start base: phase 0 when
// its pair's first endpoint lies in the left half-plane (cos θ < 0), else
// 0.5 so the opposite, mid-cycle endpoint is the starting one. At spread 0
// every offset equals its base, which puts each shuttle at its pair's left
// endpoint at t=0. At spread 1 successive shuttles gain 1/M of a cycle each
// on top of their bases, modulo one cycle, so the population is maximally
// decorrelated. Intermediate spread interpolates the gap linearly.
func PhaseOffsets(angles []float64, spread float64) []float64 {
	m := len(angles)
	gap := spread / float64(max(1, m))

	offsets := make([]float64, m)
	for j, theta := range angles {
		base := 0.5
		if math.Cos(theta) < 0 {
			base = 0
		}
		offsets[j] = mod1(base + float64(j)*gap)
	}
	return offsets
}

// mod1 wraps x into [0,1).
func mod1(x float64) float64 {
	x = math.Mod(x, 1)
	if x < 0 {
		x++
	}
	return x
}
