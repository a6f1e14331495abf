package testutil

import "math/rand"

// DeterministicNoise returns complex samples with real and imaginary parts
// uniform in [-amplitude, amplitude], drawn from a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(re, im)
	}
	return out
}

// Impulse returns a unit impulse at pos.
func Impulse(length, pos int) []complex128 {
	out := make([]complex128, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Combine returns a·x + b·y.
func Combine(a complex128, x []complex128, b complex128, y []complex128) []complex128 {
	out := make([]complex128, len(x))
	for i := range out {
		out[i] = a*x[i] + b*y[i]
	}
	return out
}

// Clone returns a copy of s.
func Clone(s []complex128) []complex128 {
	return append([]complex128(nil), s...)
}
