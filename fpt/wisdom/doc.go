// Package wisdom holds the read-only tables consumed by the cascade
// transform in package cascade, and a builder that precomputes them.
//
// A Wisdom is built for a bandwidth M. It fixes t = max(1, ⌈log₂ M⌉) cascade
// levels and the padded size N = 2^t. For every precomputed order n it
// stores
//
//   - the three-term recurrence coefficients α_k, β_k, γ_k for k = 0..N,
//     defining P_k = (α_k x + β_k)·P_{k-1} + γ_k·P_{k-2} for k ≥ 2,
//   - the normalization γ₋₁ that scales P_0,
//   - one rotation per cascade level τ and block l, sampled at the
//     Chebyshev points of the level, with a stability flag, and a
//     stabilized rotation at full resolution for every flagged block.
//
// The first two polynomials are fixed by the parity of n rather than by the
// tables: P_0 = ±γ₋₁ (negative for odd n), P_1 = x·P_0 for n = 0,
// (1−x)·P_0 for even n > 0 and P_0 for odd n.
//
// # Layout
//
// Rotations of one order live in a flat slice addressed by BlockOffset. The
// native samples of an order share one backing array and the stabilized
// samples another. Nothing is mutated
// after Precompute returns, so a Wisdom may be read from any number of
// goroutines.
//
// # Building
//
//	w, err := wisdom.Precompute(64, wisdom.AssociatedLegendre(),
//		wisdom.WithThreshold(1e3),
//		wisdom.WithOrders(0, 16),
//	)
package wisdom
