// Package testutil holds shared helpers for comparing complex coefficient
// vectors in tests.
package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair differs by more than eps in modulus.
func RequireSliceNearlyEqual(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := cmplx.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any real or imaginary part is NaN or Inf.
func RequireFinite(t *testing.T, data []complex128) {
	t.Helper()
	for i, v := range data {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the largest modulus of the element-wise difference.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []complex128) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		if d := cmplx.Abs(a[i] - b[i]); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// RelativeError returns ‖got−want‖₂ / ‖want‖₂, or the absolute error when
// want is zero.
func RelativeError(got, want []complex128) (float64, error) {
	if len(got) != len(want) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(got), len(want))
	}
	diff := make([]complex128, len(got))
	for i := range got {
		diff[i] = got[i] - want[i]
	}
	num, den := Norm(diff), Norm(want)
	if den == 0 {
		return num, nil
	}
	return num / den, nil
}

// Inner returns Σ a[i]·conj(b[i]).
func Inner(a, b []complex128) complex128 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("testutil: inner product of lengths %d and %d", len(a), len(b)))
	}
	var sum complex128
	for i := range a {
		sum += a[i] * cmplx.Conj(b[i])
	}
	return sum
}

// Norm returns the Euclidean norm.
func Norm(a []complex128) float64 {
	sum := 0.0
	for _, v := range a {
		sum += real(v)*real(v) + imag(v)*imag(v)
	}
	return math.Sqrt(sum)
}
