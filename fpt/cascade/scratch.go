package cascade

import (
	"fmt"

	"github.com/cwbudde/algo-fpt/fpt/wisdom"
	"github.com/cwbudde/algo-fpt/internal/dct"
)

// Capacity lists the buffer lengths one transform call needs for t levels.
type Capacity struct {
	Work  int // 2(N+1)
	Ergeb int // 2(N+1)
	Vec   int // N, for each of the four block vectors
	Old   int // 2N
	Nodes int // N, for each of the two node buffers
}

// ScratchSize returns the buffer lengths for t levels.
func ScratchSize(t int) Capacity {
	size := wisdom.Size(t)
	return Capacity{
		Work:  2 * (size + 1),
		Ergeb: 2 * (size + 1),
		Vec:   size,
		Old:   2 * size,
		Nodes: size,
	}
}

// Scratch is the working memory of one transform call. It is owned by one
// call at a time; every buffer is overwritten or cleared before use.
type Scratch struct {
	t int

	work   []complex128
	ergeb  []complex128
	vec1   []complex128
	vec2   []complex128
	vec3   []complex128
	vec4   []complex128
	old    []complex128
	nodesA []complex128
	nodesB []complex128

	// dcts[tau] has length 2^(tau+1) for 1 ≤ tau < t; dcts[t-1] is N.
	dcts []*dct.Transform
}

// NewScratch allocates scratch for t levels.
func NewScratch(t int) (*Scratch, error) {
	if t < 1 {
		return nil, fmt.Errorf("%w: %d levels", ErrScratchMismatch, t)
	}
	c := ScratchSize(t)
	s := &Scratch{
		t:      t,
		work:   make([]complex128, c.Work),
		ergeb:  make([]complex128, c.Ergeb),
		vec1:   make([]complex128, c.Vec),
		vec2:   make([]complex128, c.Vec),
		vec3:   make([]complex128, c.Vec),
		vec4:   make([]complex128, c.Vec),
		old:    make([]complex128, c.Old),
		nodesA: make([]complex128, c.Nodes),
		nodesB: make([]complex128, c.Nodes),
		dcts:   make([]*dct.Transform, t),
	}
	for tau := 1; tau < t; tau++ {
		tr, err := dct.New(1 << (tau + 1))
		if err != nil {
			return nil, err
		}
		s.dcts[tau] = tr
	}
	return s, nil
}

// Levels returns the number of levels the scratch was sized for.
func (s *Scratch) Levels() int {
	return s.t
}

// KernelName reports the node-product kernel of the full-length transform,
// or "none" for a single-level scratch.
func (s *Scratch) KernelName() string {
	if s.t < 2 {
		return "none"
	}
	return s.dcts[s.t-1].KernelName()
}
