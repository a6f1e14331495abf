package cascade

type parity int

const (
	parityZero parity = iota // n = 0: P_1 = x·P_0
	parityEven               // n even > 0: P_1 = (1-x)·P_0
	parityOdd                // n odd: P_1 = P_0
)

func parityOf(n int) parity {
	switch {
	case n == 0:
		return parityZero
	case n%2 == 0:
		return parityEven
	default:
		return parityOdd
	}
}

// seed zero-forces fHat outside [n, M] and lays f_0..f_{N-1} out as
// constant coefficients of P_0..P_{N-1}: f_j lands in work[2j]. f_N is
// folded through P_N = (α_N x + β_N)·P_{N-1} + γ_N·P_{N-2}.
func (p *Plan) seed(s *Scratch, n int, fHat []complex128) {
	size := p.w.Size()
	m := p.w.Bandwidth()
	for j := 0; j <= size; j++ {
		if j < n || j > m {
			fHat[j] = 0
		}
	}

	clear(s.work)
	clear(s.ergeb)
	for j := 0; j < size; j++ {
		s.work[2*j] = fHat[j]
	}
	if top := fHat[size]; top != 0 {
		s.work[2*(size-1)] += complex(p.w.Beta(n, size), 0) * top
		s.work[2*(size-1)+1] += complex(p.w.Alpha(n, size), 0) * top
		s.work[2*(size-2)] += complex(p.w.Gamma(n, size), 0) * top
	}
}

// extract is the transpose of seed.
func (p *Plan) extract(s *Scratch, n int, fHat []complex128) {
	size := p.w.Size()
	m := p.w.Bandwidth()
	for j := 0; j < size; j++ {
		fHat[j] = s.work[2*j]
	}
	fHat[size] = complex(p.w.Beta(n, size), 0)*s.work[2*(size-1)] +
		complex(p.w.Alpha(n, size), 0)*s.work[2*(size-1)+1] +
		complex(p.w.Gamma(n, size), 0)*s.work[2*(size-2)]
	for j := 0; j <= size; j++ {
		if j < n || j > m {
			fHat[j] = 0
		}
	}
}

// recombine converts a·P_0 + b·P_1, with a = ergeb[:N] and b = ergeb[N:2N]
// in the Chebyshev basis, to the N+1 Chebyshev coefficients of the sum.
func recombine(fHat, ergeb []complex128, size, n int, gammaM1 float64) {
	a := ergeb[:size]
	b := ergeb[size : 2*size]
	g := complex(gammaM1, 0)

	switch parityOf(n) {
	case parityZero:
		for j := 0; j < size; j++ {
			fHat[j] = g * (a[j] + timesX(b, j))
		}
		fHat[size] = g * timesX(b, size)
	case parityEven:
		for j := 0; j < size; j++ {
			fHat[j] = g * (a[j] + b[j] - timesX(b, j))
		}
		fHat[size] = -g * timesX(b, size)
	case parityOdd:
		for j := 0; j < size; j++ {
			fHat[j] = -g * (a[j] + b[j])
		}
		fHat[size] = 0
	}
}

// recombineAdjoint is the transpose of recombine. It writes a into
// old[:N] and b into old[N:2N].
func recombineAdjoint(old, fHat []complex128, size, n int, gammaM1 float64) {
	a := old[:size]
	b := old[size : 2*size]
	g := complex(gammaM1, 0)

	switch parityOf(n) {
	case parityZero:
		for k := 0; k < size; k++ {
			a[k] = g * fHat[k]
			b[k] = g * timesXTranspose(fHat, k)
		}
	case parityEven:
		for k := 0; k < size; k++ {
			a[k] = g * fHat[k]
			b[k] = g * (fHat[k] - timesXTranspose(fHat, k))
		}
	case parityOdd:
		for k := 0; k < size; k++ {
			a[k] = -g * fHat[k]
			b[k] = a[k]
		}
	}
}

// timesX returns coefficient j of x·b, using x·T_0 = T_1 and
// x·T_k = (T_{k-1} + T_{k+1})/2.
func timesX(b []complex128, j int) complex128 {
	switch j {
	case 0:
		return coef(b, 1) / 2
	case 1:
		return coef(b, 0) + coef(b, 2)/2
	default:
		return (coef(b, j-1) + coef(b, j+1)) / 2
	}
}

// timesXTranspose returns coefficient k of the transpose of multiplication
// by x applied to y, for y of length N+1 and k < N.
func timesXTranspose(y []complex128, k int) complex128 {
	if k == 0 {
		return y[1]
	}
	return (y[k-1] + y[k+1]) / 2
}

func coef(b []complex128, i int) complex128 {
	if i < 0 || i >= len(b) {
		return 0
	}
	return b[i]
}
