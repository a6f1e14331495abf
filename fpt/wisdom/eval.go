package wisdom

import "fmt"

// Evaluate writes P_0(x)..P_N(x) of order n into dst, which must hold at
// least N+1 values. It is the direct O(N) evaluation the cascade replaces
// and serves as its reference.
func (w *Wisdom) Evaluate(n int, x float64, dst []float64) error {
	if err := w.checkOrder(n); err != nil {
		return err
	}
	size := Size(w.t)
	if len(dst) < size+1 {
		return fmt.Errorf("wisdom: evaluate needs %d values, got %d", size+1, len(dst))
	}

	p0 := w.gammaM1[n]
	if n%2 == 1 {
		p0 = -p0
	}
	dst[0] = p0
	switch {
	case n == 0:
		dst[1] = x * p0
	case n%2 == 0:
		dst[1] = (1 - x) * p0
	default:
		dst[1] = p0
	}

	row := Row(n, w.t)
	for k := 2; k <= size; k++ {
		dst[k] = (w.alpha[row+k]*x+w.beta[row+k])*dst[k-1] + w.gamma[row+k]*dst[k-2]
	}
	return nil
}
