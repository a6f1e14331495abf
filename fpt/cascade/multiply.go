package cascade

import (
	"github.com/cwbudde/algo-fpt/fpt/wisdom"
	"github.com/cwbudde/algo-fpt/internal/dct"
)

// The block primitives apply one rotation of length L = tr.Len() to a pair
// of Chebyshev coefficient vectors. With S the synthesis and A the analysis
// at the L nodes:
//
//	multiply:        upper = g·A(U11·Sc + U12·Sd), lower = A(U21·Sc + U22·Sd)
//	multiplyLower:   lower only, for g = 0
//	multiplyAdjoint: c = Sᵀ(g·U11·Aᵀupper + U21·Aᵀlower),
//	                 d = Sᵀ(g·U12·Aᵀupper + U22·Aᵀlower)
//
// Inputs are overwritten. All slices have length L and must not overlap.

func multiply(tr *dct.Transform, r *wisdom.Rotation, g float64, c, d, upper, lower []complex128) {
	tr.Synthesize(c, c)
	tr.Synthesize(d, d)
	tr.MulAdd(upper, c, r.U11, g, d, r.U12, g)
	tr.MulAdd(lower, c, r.U21, 1, d, r.U22, 1)
	tr.Analyze(upper, upper)
	tr.Analyze(lower, lower)
}

func multiplyLower(tr *dct.Transform, r *wisdom.Rotation, c, d, lower []complex128) {
	tr.Synthesize(c, c)
	tr.Synthesize(d, d)
	tr.MulAdd(lower, c, r.U21, 1, d, r.U22, 1)
	tr.Analyze(lower, lower)
}

func multiplyAdjoint(tr *dct.Transform, r *wisdom.Rotation, g float64, upper, lower, c, d []complex128) {
	tr.AnalyzeTranspose(upper, upper)
	tr.AnalyzeTranspose(lower, lower)
	tr.MulAdd(c, upper, r.U11, g, lower, r.U21, 1)
	tr.MulAdd(d, upper, r.U12, g, lower, r.U22, 1)
	tr.SynthesizeTranspose(c, c)
	tr.SynthesizeTranspose(d, d)
}

func multiplyLowerAdjoint(tr *dct.Transform, r *wisdom.Rotation, lower, c, d []complex128) {
	tr.AnalyzeTranspose(lower, lower)
	tr.Mul(c, lower, r.U21)
	tr.Mul(d, lower, r.U22)
	tr.SynthesizeTranspose(c, c)
	tr.SynthesizeTranspose(d, d)
}

func addTo(dst, src []complex128) {
	for i := range dst {
		dst[i] += src[i]
	}
}
