package stimulus

// Pair joins two diametrically opposite targets by index. Pair i of an
// n-target ring joins targets i and i+n/2, so every target belongs to
// exactly one of the n/2 pairs.
type Pair struct {
	A, B int
}

// AllocatePairs splits an n-target ring into the tracked pair and the
// shuttle pairs. tracked is a pair index in [0, n/2); the tracked pair
// carries the pointer-matched marker and is excluded from shuttle
// generation. The remaining n/2-1 pairs come back in ascending index order;
// the phase scheduler assigns its spread offsets in that order, so it must
// stay stable for a given configuration.
func AllocatePairs(n, tracked int) (Pair, []Pair) {
	half := n / 2
	trackedPair := Pair{A: tracked, B: tracked + half}

	shuttle := make([]Pair, 0, half-1)
	for i := 0; i < half; i++ {
		if i == tracked {
			continue
		}
		shuttle = append(shuttle, Pair{A: i, B: i + half})
	}
	return trackedPair, shuttle
}
