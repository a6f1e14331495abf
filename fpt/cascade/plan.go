package cascade

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-fpt/fpt/wisdom"
)

// Plan runs forward and adjoint transforms against one wisdom. It is
// immutable after creation and safe for concurrent use; each call takes a
// scratch from an internal pool unless one is supplied.
type Plan struct {
	w    *wisdom.Wisdom
	cfg  Config
	pool sync.Pool
}

// NewPlan creates a plan for w.
func NewPlan(w *wisdom.Wisdom, opts ...Option) (*Plan, error) {
	if w == nil {
		return nil, ErrNilWisdom
	}
	p := &Plan{w: w, cfg: ApplyOptions(opts...)}

	s, err := p.NewScratch()
	if err != nil {
		return nil, err
	}
	p.pool.Put(s)
	return p, nil
}

// Wisdom returns the tables the plan reads.
func (p *Plan) Wisdom() *wisdom.Wisdom { return p.w }

// Config returns the plan configuration.
func (p *Plan) Config() Config { return p.cfg }

// NewScratch allocates a scratch sized for the plan.
func (p *Plan) NewScratch() (*Scratch, error) {
	return NewScratch(p.w.Levels())
}

// Forward replaces fHat[0..N] for order n by the Chebyshev coefficients of
// Σ f_k P_k. Entries below n or above M are zeroed first. fHat must hold at
// least N+1 values; entries beyond N are left alone.
func (p *Plan) Forward(n int, fHat []complex128) error {
	if err := p.check(n, fHat); err != nil {
		return err
	}
	s := p.get()
	p.forward(s, n, fHat)
	p.pool.Put(s)
	return nil
}

// Adjoint applies the transpose of Forward for order n to fHat[0..N] in
// place. The result is zero outside [n, M].
func (p *Plan) Adjoint(n int, fHat []complex128) error {
	if err := p.check(n, fHat); err != nil {
		return err
	}
	s := p.get()
	p.adjoint(s, n, fHat)
	p.pool.Put(s)
	return nil
}

// ForwardWith is Forward using a caller-owned scratch.
func (p *Plan) ForwardWith(s *Scratch, n int, fHat []complex128) error {
	if err := p.checkScratch(s); err != nil {
		return err
	}
	if err := p.check(n, fHat); err != nil {
		return err
	}
	p.forward(s, n, fHat)
	return nil
}

// AdjointWith is Adjoint using a caller-owned scratch.
func (p *Plan) AdjointWith(s *Scratch, n int, fHat []complex128) error {
	if err := p.checkScratch(s); err != nil {
		return err
	}
	if err := p.check(n, fHat); err != nil {
		return err
	}
	p.adjoint(s, n, fHat)
	return nil
}

// Forward runs a single forward transform without keeping a plan.
func Forward(w *wisdom.Wisdom, n int, fHat []complex128) error {
	p, err := NewPlan(w)
	if err != nil {
		return err
	}
	return p.Forward(n, fHat)
}

// Adjoint runs a single adjoint transform without keeping a plan.
func Adjoint(w *wisdom.Wisdom, n int, fHat []complex128) error {
	p, err := NewPlan(w)
	if err != nil {
		return err
	}
	return p.Adjoint(n, fHat)
}

func (p *Plan) get() *Scratch {
	if s, ok := p.pool.Get().(*Scratch); ok {
		return s
	}
	s, err := p.NewScratch()
	if err != nil {
		// NewPlan already built one scratch of this size.
		panic(fmt.Sprintf("cascade: scratch allocation failed: %v", err))
	}
	return s
}

func (p *Plan) check(n int, fHat []complex128) error {
	if m := p.w.Bandwidth(); n < 0 || n > m {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrOrderOutOfRange, n, m)
	}
	if !p.w.HasOrder(n) {
		first, last := p.w.Orders()
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrMissingOrder, n, first, last)
	}
	if need := p.w.Size() + 1; len(fHat) < need {
		return fmt.Errorf("%w: need %d, got %d", ErrShortCoefficients, need, len(fHat))
	}
	return nil
}

func (p *Plan) checkScratch(s *Scratch) error {
	if s == nil {
		return fmt.Errorf("%w: nil scratch", ErrScratchMismatch)
	}
	if s.t != p.w.Levels() {
		return fmt.Errorf("%w: scratch has %d levels, plan %d", ErrScratchMismatch, s.t, p.w.Levels())
	}
	return nil
}
