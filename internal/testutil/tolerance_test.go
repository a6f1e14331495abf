package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []complex128{1, 2, 3i}
	b := []complex128{1, 2 + 0.1i, 3i}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	if _, err := MaxAbsDiff([]complex128{1}, []complex128{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRelativeError(t *testing.T) {
	got := []complex128{3, 4}
	want := []complex128{3, 0}

	e, err := RelativeError(got, want)
	if err != nil {
		t.Fatalf("RelativeError error: %v", err)
	}
	if math.Abs(e-4.0/3.0) > 1e-15 {
		t.Fatalf("RelativeError = %v, want 4/3", e)
	}

	e, err = RelativeError([]complex128{0, 2i}, []complex128{0, 0})
	if err != nil {
		t.Fatalf("RelativeError error: %v", err)
	}
	if e != 2 {
		t.Fatalf("RelativeError against zero = %v, want absolute error 2", e)
	}
}

func TestInnerConjugatesSecondArgument(t *testing.T) {
	a := []complex128{1i, 2}
	b := []complex128{1i, 1}

	// 1i·conj(1i) + 2·1 = 1 + 2
	if got := Inner(a, b); got != 3 {
		t.Fatalf("Inner = %v, want 3", got)
	}
	if got := Norm([]complex128{3, 4i}); got != 5 {
		t.Fatalf("Norm = %v, want 5", got)
	}
}
