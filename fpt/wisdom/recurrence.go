package wisdom

// Recurrence supplies the three-term recurrence coefficients of a family of
// polynomials indexed by order n:
//
//	P_k = (α_k x + β_k)·P_{k-1} + γ_k·P_{k-2},  k ≥ 2
//
// together with the normalization γ₋₁ of P_0. Coefficients for k < 2 are
// stored but not used by the cascade, which seeds P_0 and P_1 from the
// parity of n.
type Recurrence interface {
	Alpha(n, k int) float64
	Beta(n, k int) float64
	Gamma(n, k int) float64
	Normalization(n int) float64
}

// AssociatedLegendre returns the recurrence of the unnormalized associated
// Legendre functions P_k^n with Condon–Shortley phase. Below the diagonal
// (k < n) it follows the parity pseudo-recurrence that keeps P_0 and P_1
// consistent with the cascade seed. For even n this makes P_n the exact
// function (2n-1)!!·(1-x²)^(n/2); for odd n every P_k carries one factor
// of √(1-x²) less, so the transform works on P_k^n/√(1-x²).
//
// Coefficients grow like (2n-1)!!, which limits useful bandwidths to a few
// hundred before values overflow.
func AssociatedLegendre() Recurrence {
	return associatedLegendre{}
}

type associatedLegendre struct{}

func (associatedLegendre) Alpha(n, k int) float64 {
	switch {
	case k <= 0:
		return 0
	case k == 1:
		switch {
		case n == 0:
			return 1
		case n%2 == 1:
			return 0
		default:
			return -1
		}
	case k <= n:
		if k%2 == 0 {
			return 1
		}
		return -1
	default:
		return float64(2*k-1) / float64(k-n)
	}
}

func (associatedLegendre) Beta(n, k int) float64 {
	if k >= 1 && k <= n {
		return 1
	}
	return 0
}

func (associatedLegendre) Gamma(n, k int) float64 {
	if k < n+2 {
		return 0
	}
	return -float64(k+n-1) / float64(k-n)
}

func (associatedLegendre) Normalization(n int) float64 {
	g := 1.0
	for i := 3; i <= 2*n-1; i += 2 {
		g *= float64(i)
	}
	return g
}

// Chebyshev returns the recurrence T_k = 2x·T_{k-1} - T_{k-2} for every
// order. For n = 0 the forward transform is the identity.
func Chebyshev() Recurrence {
	return chebyshev{}
}

type chebyshev struct{}

func (chebyshev) Alpha(n, k int) float64 {
	switch {
	case k <= 0:
		return 0
	case k == 1:
		return associatedLegendre{}.Alpha(n, 1)
	default:
		return 2
	}
}

func (chebyshev) Beta(n, k int) float64 {
	if k == 1 && n > 0 {
		return 1
	}
	return 0
}

func (chebyshev) Gamma(_, k int) float64 {
	if k >= 2 {
		return -1
	}
	return 0
}

func (chebyshev) Normalization(int) float64 { return 1 }

// Funcs adapts plain functions to a Recurrence. Nil coefficient functions
// yield 0; a nil NormalizationFunc yields 1.
type Funcs struct {
	AlphaFunc         func(n, k int) float64
	BetaFunc          func(n, k int) float64
	GammaFunc         func(n, k int) float64
	NormalizationFunc func(n int) float64
}

func (f Funcs) Alpha(n, k int) float64 { return call(f.AlphaFunc, n, k) }
func (f Funcs) Beta(n, k int) float64  { return call(f.BetaFunc, n, k) }
func (f Funcs) Gamma(n, k int) float64 { return call(f.GammaFunc, n, k) }

func (f Funcs) Normalization(n int) float64 {
	if f.NormalizationFunc == nil {
		return 1
	}
	return f.NormalizationFunc(n)
}

func call(fn func(n, k int) float64, n, k int) float64 {
	if fn == nil {
		return 0
	}
	return fn(n, k)
}
