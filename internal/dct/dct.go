// Package dct converts between Chebyshev coefficients and samples at the
// Chebyshev points of the first kind.
//
// For a length n the points are x_j = cos(θ_j), θ_j = (2j+1)π/(2n), and a
// coefficient vector c represents f(x) = Σ_k c_k T_k(x). Synthesis and
// analysis are computed through a 4n-point complex FFT of the even,
// quarter-wave symmetric extension, so complex coefficients are handled
// directly.
package dct

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// ErrInvalidLength is returned for lengths that are not a positive power of two.
var ErrInvalidLength = errors.New("dct: length must be a positive power of two")

// Transform holds the FFT plan and buffers for one length. It is not safe
// for concurrent use.
type Transform struct {
	n       int
	plan    *algofft.Plan[complex128]
	in, out []complex128
	kernel  nodeKernel
}

// New returns a Transform for n Chebyshev points.
func New(n int) (*Transform, error) {
	if n < 1 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	plan, err := algofft.NewPlan64(4 * n)
	if err != nil {
		return nil, fmt.Errorf("dct: failed to create FFT plan of size %d: %w", 4*n, err)
	}

	return &Transform{
		n:      n,
		plan:   plan,
		in:     make([]complex128, 4*n),
		out:    make([]complex128, 4*n),
		kernel: selectKernel(n),
	}, nil
}

// Len returns the number of points.
func (t *Transform) Len() int {
	return t.n
}

// Nodes returns the n Chebyshev points of the first kind in the order used
// by Synthesize, x_0 closest to 1.
func Nodes(n int) []float64 {
	x := make([]float64, n)
	for j := range x {
		x[j] = math.Cos(float64(2*j+1) * math.Pi / float64(2*n))
	}
	return x
}

// Synthesize writes dst[j] = Σ_k coeffs[k]·cos(kθ_j), the values of the
// expansion at the nodes. dst and coeffs may alias.
func (t *Transform) Synthesize(dst, coeffs []complex128) {
	t.cosineSynthesis(dst, coeffs, nil)
}

// Analyze is the inverse of Synthesize: it returns the coefficients of the
// unique expansion of degree < n taking the given values at the nodes.
// dst and values may alias.
func (t *Transform) Analyze(dst, values []complex128) {
	t.cosineAnalysis(dst, values)
	scale := 1 / float64(t.n)
	dst[0] *= complex(scale, 0)
	for k := 1; k < t.n; k++ {
		dst[k] *= complex(2*scale, 0)
	}
}

// SynthesizeTranspose applies the transpose of Synthesize:
// dst[k] = Σ_j values[j]·cos(kθ_j). dst and values may alias.
func (t *Transform) SynthesizeTranspose(dst, values []complex128) {
	t.cosineAnalysis(dst, values)
}

// AnalyzeTranspose applies the transpose of Analyze. dst and coeffs may alias.
func (t *Transform) AnalyzeTranspose(dst, coeffs []complex128) {
	scale := 1 / float64(t.n)
	t.cosineSynthesis(dst, coeffs, func(k int) float64 {
		if k == 0 {
			return scale
		}
		return 2 * scale
	})
}

// cosineSynthesis is an unnormalized DCT-III with optional per-coefficient
// weights.
func (t *Transform) cosineSynthesis(dst, coeffs []complex128, weight func(int) float64) {
	n := t.n
	checkLen(dst, coeffs, n)

	clear(t.in)
	c0 := coeffs[0]
	if weight != nil {
		c0 *= complex(weight(0), 0)
	}
	t.in[0] = c0
	for k := 1; k < n; k++ {
		c := coeffs[k]
		if weight != nil {
			c *= complex(weight(k), 0)
		}
		t.in[k] = c
		t.in[4*n-k] = c
	}

	t.fft()

	// out[2j+1] = c0 + 2·Σ_{k≥1} c_k cos(kθ_j)
	for j := 0; j < n; j++ {
		dst[j] = (t.out[2*j+1] + c0) * 0.5
	}
}

// cosineAnalysis is an unnormalized DCT-II.
func (t *Transform) cosineAnalysis(dst, values []complex128) {
	n := t.n
	checkLen(dst, values, n)

	clear(t.in)
	for j := 0; j < n; j++ {
		t.in[2*j+1] = values[j]
		t.in[4*n-2*j-1] = values[j]
	}

	t.fft()

	// out[k] = 2·Σ_j v_j cos(kθ_j)
	for k := 0; k < n; k++ {
		dst[k] = t.out[k] * 0.5
	}
}

func (t *Transform) fft() {
	if err := t.plan.Forward(t.out, t.in); err != nil {
		// Buffers are sized from the plan, so this is a broken invariant.
		panic(fmt.Sprintf("dct: forward FFT of size %d failed: %v", len(t.in), err))
	}
}

func checkLen(dst, src []complex128, n int) {
	if len(dst) < n || len(src) < n {
		panic(fmt.Sprintf("dct: buffers of length %d and %d are shorter than %d", len(dst), len(src), n))
	}
}
