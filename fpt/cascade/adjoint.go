package cascade

import "github.com/cwbudde/algo-fpt/fpt/wisdom"

func (p *Plan) adjoint(s *Scratch, n int, fHat []complex128) {
	t := p.w.Levels()
	size := p.w.Size()

	recombineAdjoint(s.old, fHat, size, n, p.w.GammaM1(n))
	clear(s.work)
	copy(s.work, s.old)
	for tau := t - 1; tau >= 1; tau-- {
		plength := 1 << (tau + 1)
		for l := wisdom.FirstBlock(n, size, plength); l <= wisdom.LastBlock(size, plength); l++ {
			p.adjointBlock(s, n, tau, l)
		}
	}
	p.extract(s, n, fHat)
}

// adjointBlock is the transpose of forwardBlock.
func (p *Plan) adjointBlock(s *Scratch, n, tau, l int) {
	plength := 1 << (tau + 1)
	half := plength / 2
	base := 2 * plength * l

	upper := s.vec1[:plength]
	lower := s.vec2[:plength]
	copy(upper, s.work[base:base+plength])
	copy(lower, s.work[base+plength:base+2*plength])

	// The P_K part is already in place; the P_{K+1} part moves down.
	copy(s.work[base+half:base+plength], lower[:half])

	r := p.w.Rotation(n, tau, l, 0)
	if p.stabilized(r, tau) {
		p.stabilizeAdjoint(s, n, tau, l)
	} else {
		tr := s.dcts[tau]
		c := s.vec3[:plength]
		d := s.vec4[:plength]
		if g := p.w.Gamma(n, plength*l+2); g == 0 {
			multiplyLowerAdjoint(tr, r, lower, c, d)
		} else {
			multiplyAdjoint(tr, r, g, upper, lower, c, d)
		}
	}

	copy(s.work[base+2*half:base+3*half], s.vec3[:half])
	copy(s.work[base+3*half:base+4*half], s.vec4[:half])
}
