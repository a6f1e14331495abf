// Package cascade implements the fast polynomial transform for a family of
// polynomials given by a three-term recurrence, and its exact adjoint.
//
// For an order n the forward transform maps coefficients f_0..f_N of the
// expansion Σ f_k P_k(x) to the Chebyshev coefficients c_0..c_N of the same
// function, in place. Instead of evaluating the recurrence it runs a cascade
// over t-1 levels: at level τ every block of 2^(τ+2) coefficients is reduced
// to two polynomials multiplying P_K and P_{K+1}, using rotations sampled at
// Chebyshev points and products evaluated through DCTs. The last step
// expresses the remaining pair in terms of P_0 and P_1 and converts it to the
// Chebyshev basis.
//
// Rotations whose entries are large lose precision when applied level by
// level. Blocks flagged unstable by the wisdom are instead carried straight to
// P_0 and P_1 with a stabilized rotation at full resolution.
//
// All tables come from a read-only *wisdom.Wisdom. A Plan binds a wisdom and
// pools per-call scratch; it is safe for concurrent use. A single call is
// synchronous and allocation free once the pool is warm.
//
//	w, _ := wisdom.Precompute(64, wisdom.AssociatedLegendre())
//	p, _ := cascade.NewPlan(w)
//	err := p.Forward(3, coeffs) // len(coeffs) >= w.Size()+1
package cascade
