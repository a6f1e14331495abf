package wisdom

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fpt/internal/dct"
)

// Precompute builds the wisdom for bandwidth m and the given recurrence.
//
// For every order in the configured range it fills the recurrence rows,
// evaluates the native rotation of every block at the Chebyshev nodes of
// its level and, for blocks whose weighted magnitude exceeds the threshold,
// the stabilized rotation relative to P_0 and P_1 at all N nodes.
func Precompute(m int, rec Recurrence, opts ...Option) (*Wisdom, error) {
	if m < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBandwidth, m)
	}
	if rec == nil {
		return nil, ErrNilRecurrence
	}

	cfg := ApplyOptions(opts...)
	first, last := cfg.FirstOrder, cfg.LastOrder
	if last < 0 {
		last = m
	}
	if first < 0 || first > last || last > m {
		return nil, fmt.Errorf("%w: [%d, %d] with bandwidth %d", ErrInvalidOrders, first, last, m)
	}

	t := Levels(m)
	size := Size(t)
	w := &Wisdom{
		m:         m,
		t:         t,
		first:     first,
		last:      last,
		threshold: cfg.Threshold,
		alpha:     make([]float64, (m+1)*(size+1)),
		beta:      make([]float64, (m+1)*(size+1)),
		gamma:     make([]float64, (m+1)*(size+1)),
		gammaM1:   make([]float64, m+1),
		rotations: make([][]Rotation, last-first+1),
	}

	// nodes[tau] has length 2^(tau+1); nodes[t-1] is the full set.
	nodes := make([][]float64, t)
	for tau := 1; tau < t; tau++ {
		nodes[tau] = dct.Nodes(1 << (tau + 1))
	}

	for n := first; n <= last; n++ {
		if err := w.fillRow(n, rec); err != nil {
			return nil, err
		}
		w.buildRotations(n, nodes)
	}
	return w, nil
}

func (w *Wisdom) fillRow(n int, rec Recurrence) error {
	size := Size(w.t)
	row := Row(n, w.t)
	for k := 0; k <= size; k++ {
		a, b, g := rec.Alpha(n, k), rec.Beta(n, k), rec.Gamma(n, k)
		if !finite(a) || !finite(b) || !finite(g) {
			return fmt.Errorf("%w: order %d, k=%d", ErrNonFinite, n, k)
		}
		w.alpha[row+k] = a
		w.beta[row+k] = b
		w.gamma[row+k] = g
	}
	norm := rec.Normalization(n)
	if !finite(norm) {
		return fmt.Errorf("%w: normalization of order %d", ErrNonFinite, n)
	}
	w.gammaM1[n] = norm
	return nil
}

func (w *Wisdom) buildRotations(n int, nodes [][]float64) {
	t := w.t
	size := Size(t)
	rots := make([]Rotation, 2*Blocks(t))

	// Every level holds 4N native samples.
	native := make([]float64, 4*size*(t-1))
	var flagged []int
	for tau := 1; tau < t; tau++ {
		plength := 1 << (tau + 1)
		half := plength / 2
		for l := range BlockCount(t, tau) {
			start := plength * l
			idx := 2 * BlockOffset(t, tau, l)

			r := &rots[idx]
			native = carve(native, r, plength)
			w.associated(n, start, start+half, nodes[tau], r)
			r.Norm = weightedNorm(r, w.Gamma(n, start+2))
			r.Stable = r.Norm <= w.threshold
			if !r.Stable && tau < t-1 {
				flagged = append(flagged, tau, l)
			}
		}
	}

	stabilized := make([]float64, 4*size*(len(flagged)/2))
	for i := 0; i < len(flagged); i += 2 {
		tau, l := flagged[i], flagged[i+1]
		plength := 1 << (tau + 1)
		s := &rots[2*BlockOffset(t, tau, l)+1]
		stabilized = carve(stabilized, s, size)
		w.associated(n, 0, plength*l+plength/2, nodes[t-1], s)
		s.Norm = weightedNorm(s, w.Gamma(n, 2))
		s.Stable = true
	}

	w.rotations[n-w.first] = rots
}

// carve hands the next 4·length samples of buf to r and returns the rest.
func carve(buf []float64, r *Rotation, length int) []float64 {
	r.U11 = buf[0*length : 1*length : 1*length]
	r.U12 = buf[1*length : 2*length : 2*length]
	r.U21 = buf[2*length : 3*length : 3*length]
	r.U22 = buf[3*length : 4*length : 4*length]
	return buf[4*length:]
}

// associated evaluates, at every node, the associated polynomials that carry
// (P_start, P_{start+1}) to (P_end, P_{end+1}). With Ã and B started as
// Ã_{K+1}=0, Ã_{K+2}=1, B_{K+1}=1, B_{K+2}=α_{K+2}x+β_{K+2} and advanced with
// the recurrence of order n, U11=Ã_end, U12=Ã_{end+1}, U21=B_end and
// U22=B_{end+1}.
func (w *Wisdom) associated(n, start, end int, x []float64, r *Rotation) {
	row := Row(n, w.t)
	alpha := w.alpha[row : row+Size(w.t)+1]
	beta := w.beta[row : row+Size(w.t)+1]
	gamma := w.gamma[row : row+Size(w.t)+1]

	for j, xj := range x {
		aPrev, aCur := 0.0, 1.0
		bPrev, bCur := 1.0, alpha[start+2]*xj+beta[start+2]
		for k := start + 3; k <= end+1; k++ {
			c := alpha[k]*xj + beta[k]
			aPrev, aCur = aCur, c*aCur+gamma[k]*aPrev
			bPrev, bCur = bCur, c*bCur+gamma[k]*bPrev
		}
		r.U11[j], r.U12[j], r.U21[j], r.U22[j] = aPrev, aCur, bPrev, bCur
	}
}

func weightedNorm(r *Rotation, g float64) float64 {
	var norm float64
	for j := range r.U11 {
		norm = max(norm,
			math.Abs(g*r.U11[j]), math.Abs(g*r.U12[j]),
			math.Abs(r.U21[j]), math.Abs(r.U22[j]))
	}
	return norm
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
