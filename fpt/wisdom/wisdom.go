package wisdom

import "fmt"

// Rotation holds the four entries of a block rotation sampled at the
// Chebyshev nodes of its length L. For a block starting at K with half
// length h and g = γ_{K+2} it encodes
//
//	P_{K+h}   = g·U11·P_K + U21·P_{K+1}
//	P_{K+h+1} = g·U12·P_K + U22·P_{K+1}
//
// Stabilized rotations use K = 0 and L = N regardless of the block level.
type Rotation struct {
	Stable bool
	// Norm is max_j max(|g·U11|, |g·U12|, |U21|, |U22|) over the nodes.
	Norm               float64
	U11, U12, U21, U22 []float64
}

// Len returns the number of node samples.
func (r *Rotation) Len() int {
	return len(r.U11)
}

// Wisdom is the precomputed, read-only table set for one bandwidth.
type Wisdom struct {
	m, t        int
	first, last int
	threshold   float64

	// (M+1)·(N+1) entries, row n at Row(n, t).
	alpha, beta, gamma []float64
	gammaM1            []float64

	// 2·Blocks(t) slots per order: native at 2·BlockOffset, stabilized at
	// 2·BlockOffset+1.
	// Native samples of an order share one backing array, stabilized
	// samples another.
	rotations [][]Rotation
}

// Bandwidth returns M.
func (w *Wisdom) Bandwidth() int { return w.m }

// Levels returns t.
func (w *Wisdom) Levels() int { return w.t }

// Size returns N = 2^t.
func (w *Wisdom) Size() int { return Size(w.t) }

// Threshold returns the stability threshold used to classify blocks.
func (w *Wisdom) Threshold() float64 { return w.threshold }

// Orders returns the inclusive range of precomputed orders.
func (w *Wisdom) Orders() (first, last int) { return w.first, w.last }

// HasOrder reports whether tables for order n were precomputed.
func (w *Wisdom) HasOrder(n int) bool {
	return n >= w.first && n <= w.last
}

// Alpha returns α_k for order n, k in [0, N].
func (w *Wisdom) Alpha(n, k int) float64 { return w.alpha[Row(n, w.t)+k] }

// Beta returns β_k for order n, k in [0, N].
func (w *Wisdom) Beta(n, k int) float64 { return w.beta[Row(n, w.t)+k] }

// Gamma returns γ_k for order n, k in [0, N].
func (w *Wisdom) Gamma(n, k int) float64 { return w.gamma[Row(n, w.t)+k] }

// GammaM1 returns the normalization γ₋₁ of order n.
func (w *Wisdom) GammaM1(n int) float64 { return w.gammaM1[n] }

// Rotation returns the rotation of order n for block l at level tau.
// Slot 0 is the native rotation, slot StabilizationSlot(t, tau) the
// stabilized one. It returns nil for an order that was not precomputed, for
// any other slot, and for the stabilized slot of a stable block.
func (w *Wisdom) Rotation(n, tau, l, s int) *Rotation {
	if !w.HasOrder(n) || tau < 1 || tau >= w.t || l < 0 || l >= BlockCount(w.t, tau) {
		return nil
	}
	idx := 2 * BlockOffset(w.t, tau, l)
	switch s {
	case 0:
	case StabilizationSlot(w.t, tau):
		idx++
	default:
		return nil
	}
	r := &w.rotations[n-w.first][idx]
	if r.Len() == 0 {
		return nil
	}
	return r
}

func (w *Wisdom) checkOrder(n int) error {
	if !w.HasOrder(n) {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrOrderNotComputed, n, w.first, w.last)
	}
	return nil
}
