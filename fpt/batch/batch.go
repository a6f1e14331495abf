// Package batch runs cascade transforms for many orders concurrently.
//
// A fixed set of workers pulls items off a shared counter; each worker owns
// one scratch for its lifetime, so a batch allocates at most one scratch per
// worker regardless of its length. Cancellation is checked between items,
// never inside a transform.
package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-fpt/fpt/cascade"
)

var (
	// ErrNilPlan is returned when no plan is given.
	ErrNilPlan = errors.New("batch: nil plan")

	// ErrLengthMismatch is returned when orders and coefficient vectors
	// differ in count.
	ErrLengthMismatch = errors.New("batch: orders and coefficient vectors differ in length")
)

// Config holds batch settings.
type Config struct {
	// Workers bounds the number of concurrent transforms.
	Workers int
}

// Option mutates batch configuration.
type Option func(*Config)

// DefaultConfig uses GOMAXPROCS workers.
func DefaultConfig() Config {
	return Config{Workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers sets the worker count. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n >= 1 {
			cfg.Workers = n
		}
	}
}

// ApplyOptions applies options on top of defaults.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

type transform func(p *cascade.Plan, s *cascade.Scratch, n int, fHat []complex128) error

// Forward runs p.Forward(orders[i], coeffs[i]) for every i. The first
// failure cancels the remaining items and is returned.
func Forward(ctx context.Context, p *cascade.Plan, orders []int, coeffs [][]complex128, opts ...Option) error {
	return run(ctx, p, orders, coeffs, (*cascade.Plan).ForwardWith, opts)
}

// Adjoint runs p.Adjoint(orders[i], coeffs[i]) for every i.
func Adjoint(ctx context.Context, p *cascade.Plan, orders []int, coeffs [][]complex128, opts ...Option) error {
	return run(ctx, p, orders, coeffs, (*cascade.Plan).AdjointWith, opts)
}

func run(ctx context.Context, p *cascade.Plan, orders []int, coeffs [][]complex128, apply transform, opts []Option) error {
	if p == nil {
		return ErrNilPlan
	}
	if len(orders) != len(coeffs) {
		return fmt.Errorf("%w: %d orders, %d vectors", ErrLengthMismatch, len(orders), len(coeffs))
	}
	if len(orders) == 0 {
		return ctx.Err()
	}

	cfg := ApplyOptions(opts...)
	workers := min(cfg.Workers, len(orders))

	g, ctx := errgroup.WithContext(ctx)
	var next atomic.Int64
	for range workers {
		g.Go(func() error {
			s, err := p.NewScratch()
			if err != nil {
				return err
			}
			for {
				if err := ctx.Err(); err != nil {
					return err
				}
				i := int(next.Add(1)) - 1
				if i >= len(orders) {
					return nil
				}
				if err := apply(p, s, orders[i], coeffs[i]); err != nil {
					return fmt.Errorf("batch: item %d (order %d): %w", i, orders[i], err)
				}
			}
		})
	}
	return g.Wait()
}
