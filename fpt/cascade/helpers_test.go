package cascade

import (
	"testing"

	"github.com/cwbudde/algo-fpt/fpt/wisdom"
	"github.com/cwbudde/algo-fpt/internal/dct"
	"github.com/cwbudde/algo-fpt/internal/testutil"
)

func mustWisdom(t testing.TB, m int, rec wisdom.Recurrence, opts ...wisdom.Option) *wisdom.Wisdom {
	t.Helper()
	w, err := wisdom.Precompute(m, rec, opts...)
	if err != nil {
		t.Fatalf("Precompute(%d): %v", m, err)
	}
	return w
}

func mustPlan(t testing.TB, w *wisdom.Wisdom, opts ...Option) *Plan {
	t.Helper()
	p, err := NewPlan(w, opts...)
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}
	return p
}

// project zeroes a copy of f outside [n, M].
func project(w *wisdom.Wisdom, n int, f []complex128) []complex128 {
	out := testutil.Clone(f)
	for j := range out {
		if j < n || j > w.Bandwidth() {
			out[j] = 0
		}
	}
	return out
}

// directForward evaluates Σ f_k P_k at 2N Chebyshev points and analyzes
// the samples. It returns the first N+1 coefficients and the largest
// magnitude among the remaining ones.
func directForward(t *testing.T, w *wisdom.Wisdom, n int, f []complex128) ([]complex128, float64) {
	t.Helper()
	size := w.Size()
	tr, err := dct.New(2 * size)
	if err != nil {
		t.Fatal(err)
	}

	p := make([]float64, size+1)
	values := make([]complex128, 2*size)
	for j, x := range dct.Nodes(2 * size) {
		if err := w.Evaluate(n, x, p); err != nil {
			t.Fatal(err)
		}
		var sum complex128
		for k := n; k <= min(size, w.Bandwidth()); k++ {
			sum += f[k] * complex(p[k], 0)
		}
		values[j] = sum
	}
	tr.Analyze(values, values)

	tail := 0.0
	for _, v := range values[size+1:] {
		tail = max(tail, testutil.Norm([]complex128{v}))
	}
	return values[:size+1], tail
}
