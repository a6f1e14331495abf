package cascade

import "github.com/cwbudde/algo-fpt/fpt/wisdom"

// stabilized reports whether block rotation r at level tau takes the
// stabilized path. At the top level the native rotation already relates
// the block to P_0 and P_1, so it never does.
func (p *Plan) stabilized(r *wisdom.Rotation, tau int) bool {
	return p.cfg.Stabilization == StabilizeAuto && !r.Stable && tau < p.w.Levels()-1
}

// stabilizeForward carries the upper half of block l at level tau, held in
// vec3 and vec4, straight to P_0 and P_1 and adds it to ergeb. The lower
// half stays in vec1 and vec2.
func (p *Plan) stabilizeForward(s *Scratch, n, tau, l int) {
	t := p.w.Levels()
	size := p.w.Size()
	half := 1 << tau
	r := p.w.Rotation(n, tau, l, wisdom.StabilizationSlot(t, tau))
	tr := s.dcts[t-1]

	c := s.vec3[:size]
	d := s.vec4[:size]
	clear(c[half:])
	clear(d[half:])

	lower := s.nodesB[:size]
	if g := p.w.Gamma(n, 2); g == 0 {
		multiplyLower(tr, r, c, d, lower)
	} else {
		upper := s.nodesA[:size]
		multiply(tr, r, g, c, d, upper, lower)
		addTo(s.ergeb[:size], upper)
	}
	addTo(s.ergeb[size:2*size], lower)
}

// stabilizeAdjoint is the transpose of stabilizeForward. It reads the seed
// snapshot in old and leaves the upper half of the block in vec3 and vec4.
func (p *Plan) stabilizeAdjoint(s *Scratch, n, tau, l int) {
	t := p.w.Levels()
	size := p.w.Size()
	r := p.w.Rotation(n, tau, l, wisdom.StabilizationSlot(t, tau))
	tr := s.dcts[t-1]

	upper := s.vec1[:size]
	lower := s.vec2[:size]
	copy(lower, s.old[size:2*size])

	c := s.vec3[:size]
	d := s.vec4[:size]
	if g := p.w.Gamma(n, 2); g == 0 {
		multiplyLowerAdjoint(tr, r, lower, c, d)
	} else {
		copy(upper, s.old[:size])
		multiplyAdjoint(tr, r, g, upper, lower, c, d)
	}
}
