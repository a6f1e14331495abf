package cascade

import "github.com/cwbudde/algo-fpt/fpt/wisdom"

func (p *Plan) forward(s *Scratch, n int, fHat []complex128) {
	t := p.w.Levels()
	size := p.w.Size()

	p.seed(s, n, fHat)
	for tau := 1; tau < t; tau++ {
		plength := 1 << (tau + 1)
		for l := wisdom.FirstBlock(n, size, plength); l <= wisdom.LastBlock(size, plength); l++ {
			p.forwardBlock(s, n, tau, l)
		}
	}
	addTo(s.ergeb[:2*size], s.work[:2*size])
	recombine(fHat, s.ergeb, size, n, p.w.GammaM1(n))
}

// forwardBlock reduces block l of level tau. On entry the four quarters of
// work[2·plength·l:] hold the coefficients of P_K, P_{K+1}, P_{K+h} and
// P_{K+h+1}, K = plength·l; on exit the two halves hold those of P_K and
// P_{K+1}.
func (p *Plan) forwardBlock(s *Scratch, n, tau, l int) {
	plength := 1 << (tau + 1)
	half := plength / 2
	base := 2 * plength * l

	a := s.vec1[:plength]
	b := s.vec2[:plength]
	c := s.vec3[:plength]
	d := s.vec4[:plength]
	load(a, s.work[base:base+half])
	load(b, s.work[base+half:base+2*half])
	load(c, s.work[base+2*half:base+3*half])
	load(d, s.work[base+3*half:base+4*half])

	r := p.w.Rotation(n, tau, l, 0)
	if p.stabilized(r, tau) {
		p.stabilizeForward(s, n, tau, l)
	} else {
		tr := s.dcts[tau]
		lower := s.nodesB[:plength]
		if g := p.w.Gamma(n, plength*l+2); g == 0 {
			multiplyLower(tr, r, c, d, lower)
		} else {
			upper := s.nodesA[:plength]
			multiply(tr, r, g, c, d, upper, lower)
			addTo(a, upper)
		}
		addTo(b, lower)
	}

	copy(s.work[base:base+plength], a)
	copy(s.work[base+plength:base+2*plength], b)
}

// load copies src to the front of dst and zeroes the rest.
func load(dst, src []complex128) {
	n := copy(dst, src)
	clear(dst[n:])
}
