package wisdom

// LevelStats summarizes the blocks of one cascade level that a transform of
// the order actually visits.
type LevelStats struct {
	Level    int
	Blocks   int
	Unstable int
	// MaxNorm is the largest native rotation norm among the visited blocks.
	MaxNorm float64
}

// Stats summarizes the stability classification of one order.
type Stats struct {
	Order    int
	Levels   []LevelStats
	Blocks   int
	Unstable int
}

// Stats returns per-level block counts for order n, restricted to the
// blocks FirstBlock..LastBlock that the cascade visits.
func (w *Wisdom) Stats(n int) (Stats, error) {
	if err := w.checkOrder(n); err != nil {
		return Stats{}, err
	}

	size := Size(w.t)
	st := Stats{Order: n, Levels: make([]LevelStats, 0, w.t-1)}
	for tau := 1; tau < w.t; tau++ {
		plength := 1 << (tau + 1)
		ls := LevelStats{Level: tau}
		for l := FirstBlock(n, size, plength); l <= LastBlock(size, plength); l++ {
			r := w.Rotation(n, tau, l, 0)
			ls.Blocks++
			ls.MaxNorm = max(ls.MaxNorm, r.Norm)
			if !r.Stable {
				ls.Unstable++
			}
		}
		st.Blocks += ls.Blocks
		st.Unstable += ls.Unstable
		st.Levels = append(st.Levels, ls)
	}
	return st, nil
}
