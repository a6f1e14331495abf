package dct

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fpt/internal/cpu"
)

// Below this length splitting complex samples into real and imaginary
// planes costs more than the vector kernels save.
const vectorMinLen = 16

// nodeKernel multiplies complex node samples by real node weights.
type nodeKernel interface {
	// mulAdd writes dst[j] = xs·u[j]·x[j] + ys·v[j]·y[j].
	mulAdd(dst, x []complex128, u []float64, xs float64, y []complex128, v []float64, ys float64)
	// mul writes dst[j] = u[j]·x[j].
	mul(dst, x []complex128, u []float64)
	name() string
}

func selectKernel(n int) nodeKernel {
	if n >= vectorMinLen && cpu.DetectFeatures().HasSIMD() {
		return newSplitKernel(n)
	}
	return genericKernel{}
}

// MulAdd writes dst[j] = xs·u[j]·x[j] + ys·v[j]·y[j] for the first Len()
// entries. dst must not alias x or y.
func (t *Transform) MulAdd(dst, x []complex128, u []float64, xs float64, y []complex128, v []float64, ys float64) {
	n := t.n
	if len(dst) < n || len(x) < n || len(y) < n || len(u) < n || len(v) < n {
		panic(fmt.Sprintf("dct: node product needs %d samples", n))
	}
	t.kernel.mulAdd(dst[:n], x[:n], u[:n], xs, y[:n], v[:n], ys)
}

// Mul writes dst[j] = u[j]·x[j] for the first Len() entries. dst must not
// alias x.
func (t *Transform) Mul(dst, x []complex128, u []float64) {
	n := t.n
	if len(dst) < n || len(x) < n || len(u) < n {
		panic(fmt.Sprintf("dct: node product needs %d samples", n))
	}
	t.kernel.mul(dst[:n], x[:n], u[:n])
}

// KernelName reports which node-product kernel the transform uses.
func (t *Transform) KernelName() string {
	return t.kernel.name()
}

type genericKernel struct{}

func (genericKernel) mulAdd(dst, x []complex128, u []float64, xs float64, y []complex128, v []float64, ys float64) {
	for j := range dst {
		dst[j] = complex(xs*u[j], 0)*x[j] + complex(ys*v[j], 0)*y[j]
	}
}

func (genericKernel) mul(dst, x []complex128, u []float64) {
	for j := range dst {
		dst[j] = complex(u[j], 0) * x[j]
	}
}

func (genericKernel) name() string { return "generic" }

// splitKernel runs the products on separate real and imaginary planes so
// that algo-vecmath's SIMD block routines can be used.
type splitKernel struct {
	xr, xi, yr, yi []float64
	us, vs         []float64
	p              []float64
}

func newSplitKernel(n int) *splitKernel {
	buf := make([]float64, 7*n)
	return &splitKernel{
		xr: buf[0*n : 1*n],
		xi: buf[1*n : 2*n],
		yr: buf[2*n : 3*n],
		yi: buf[3*n : 4*n],
		us: buf[4*n : 5*n],
		vs: buf[5*n : 6*n],
		p:  buf[6*n : 7*n],
	}
}

func (k *splitKernel) mulAdd(dst, x []complex128, u []float64, xs float64, y []complex128, v []float64, ys float64) {
	n := len(dst)
	xr, xi := k.xr[:n], k.xi[:n]
	yr, yi := k.yr[:n], k.yi[:n]
	us, vs, p := k.us[:n], k.vs[:n], k.p[:n]

	split(x, xr, xi)
	split(y, yr, yi)
	vecmath.ScaleBlock(us, u, xs)
	vecmath.ScaleBlock(vs, v, ys)

	// Real plane.
	vecmath.MulBlock(p, xr, us)
	vecmath.MulBlock(xr, yr, vs)
	vecmath.AddBlockInPlace(p, xr)

	// Imaginary plane, reusing the consumed real inputs.
	vecmath.MulBlock(yr, xi, us)
	vecmath.MulBlock(xr, yi, vs)
	vecmath.AddBlockInPlace(yr, xr)

	for j := range dst {
		dst[j] = complex(p[j], yr[j])
	}
}

func (k *splitKernel) mul(dst, x []complex128, u []float64) {
	n := len(dst)
	xr, xi := k.xr[:n], k.xi[:n]
	p, q := k.p[:n], k.yr[:n]

	split(x, xr, xi)
	vecmath.MulBlock(p, xr, u)
	vecmath.MulBlock(q, xi, u)

	for j := range dst {
		dst[j] = complex(p[j], q[j])
	}
}

func (*splitKernel) name() string { return "vecmath" }

func split(src []complex128, re, im []float64) {
	for j, c := range src {
		re[j] = real(c)
		im[j] = imag(c)
	}
}
