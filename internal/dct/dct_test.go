package dct

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-fpt/internal/cpu"
	"github.com/cwbudde/algo-fpt/internal/testutil"
)

func TestNewInvalidLength(t *testing.T) {
	for _, n := range []int{0, -4, 3, 6, 12} {
		if _, err := New(n); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("New(%d) error = %v, want ErrInvalidLength", n, err)
		}
	}
}

func TestNodes(t *testing.T) {
	x := Nodes(4)
	want := []float64{
		math.Cos(math.Pi / 8),
		math.Cos(3 * math.Pi / 8),
		math.Cos(5 * math.Pi / 8),
		math.Cos(7 * math.Pi / 8),
	}
	for j := range want {
		if math.Abs(x[j]-want[j]) > 1e-15 {
			t.Fatalf("Nodes(4)[%d] = %v, want %v", j, x[j], want[j])
		}
	}
}

func TestSynthesizeMatchesDirectSum(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 32} {
		tr, err := New(n)
		if err != nil {
			t.Fatalf("New(%d): %v", n, err)
		}
		c := testutil.DeterministicNoise(int64(n), 1, n)

		got := make([]complex128, n)
		tr.Synthesize(got, c)

		want := make([]complex128, n)
		for j := range want {
			theta := float64(2*j+1) * math.Pi / float64(2*n)
			for k := range c {
				want[j] += c[k] * complex(math.Cos(float64(k)*theta), 0)
			}
		}
		testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
	}
}

func TestSynthesizeChebyshevPolynomial(t *testing.T) {
	tr, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	// T2(x) = 2x²-1
	values := make([]complex128, 4)
	tr.Synthesize(values, []complex128{0, 0, 1, 0})
	for j, x := range Nodes(4) {
		if want := 2*x*x - 1; cmplx.Abs(values[j]-complex(want, 0)) > 1e-14 {
			t.Fatalf("T2 at node %d = %v, want %v", j, values[j], want)
		}
	}
}

func TestAnalyzeInvertsSynthesize(t *testing.T) {
	for _, n := range []int{2, 8, 64} {
		tr, err := New(n)
		if err != nil {
			t.Fatal(err)
		}
		c := testutil.DeterministicNoise(42, 2, n)

		buf := testutil.Clone(c)
		tr.Synthesize(buf, buf)
		tr.Analyze(buf, buf)
		testutil.RequireSliceNearlyEqual(t, buf, c, 1e-12)
	}
}

func TestTransposes(t *testing.T) {
	const n = 16
	tr, err := New(n)
	if err != nil {
		t.Fatal(err)
	}
	x := testutil.DeterministicNoise(1, 1, n)
	y := testutil.DeterministicNoise(2, 1, n)

	tests := []struct {
		name    string
		op, opT func(dst, src []complex128)
	}{
		{"synthesize", tr.Synthesize, tr.SynthesizeTranspose},
		{"analyze", tr.Analyze, tr.AnalyzeTranspose},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ax := make([]complex128, n)
			aty := make([]complex128, n)
			tt.op(ax, x)
			tt.opT(aty, y)

			lhs := testutil.Inner(ax, y)
			rhs := testutil.Inner(x, aty)
			if cmplx.Abs(lhs-rhs) > 1e-12*testutil.Norm(x)*testutil.Norm(y)*n {
				t.Fatalf("<Ax,y> = %v, <x,Aᵀy> = %v", lhs, rhs)
			}
		})
	}
}

func TestKernelParity(t *testing.T) {
	t.Cleanup(cpu.ResetDetection)

	const n = 64
	x := testutil.DeterministicNoise(3, 1, n)
	y := testutil.DeterministicNoise(4, 1, n)
	u := make([]float64, n)
	v := make([]float64, n)
	for j, xj := range Nodes(n) {
		u[j] = 1 + xj
		v[j] = xj * xj
	}

	run := func(f cpu.Features) (sum, prod []complex128, name string) {
		cpu.SetForcedFeatures(f)
		tr, err := New(n)
		if err != nil {
			t.Fatal(err)
		}
		sum = make([]complex128, n)
		prod = make([]complex128, n)
		tr.MulAdd(sum, x, u, 0.5, y, v, -2)
		tr.Mul(prod, x, v)
		return sum, prod, tr.KernelName()
	}

	gSum, gProd, gName := run(cpu.Features{ForceGeneric: true})
	vSum, vProd, vName := run(cpu.Features{HasSSE2: true, HasAVX2: true, HasNEON: true})

	if gName != "generic" || vName != "vecmath" {
		t.Fatalf("kernel selection = %q/%q, want generic/vecmath", gName, vName)
	}
	testutil.RequireSliceNearlyEqual(t, vSum, gSum, 1e-13)
	testutil.RequireSliceNearlyEqual(t, vProd, gProd, 1e-13)

	for j := range gSum {
		want := complex(0.5*u[j], 0)*x[j] + complex(-2*v[j], 0)*y[j]
		if cmplx.Abs(gSum[j]-want) > 1e-14 {
			t.Fatalf("MulAdd[%d] = %v, want %v", j, gSum[j], want)
		}
	}
}

func TestShortLengthUsesGenericKernel(t *testing.T) {
	tr, err := New(vectorMinLen / 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := tr.KernelName(); got != "generic" {
		t.Fatalf("KernelName() = %q, want generic", got)
	}
}

func BenchmarkSynthesizeAnalyze(b *testing.B) {
	for _, n := range []int{16, 256, 1024} {
		tr, err := New(n)
		if err != nil {
			b.Fatal(err)
		}
		buf := testutil.DeterministicNoise(1, 1, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				tr.Synthesize(buf, buf)
				tr.Analyze(buf, buf)
			}
		})
	}
}
