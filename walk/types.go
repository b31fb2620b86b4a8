// Package walk types: traversal order, sentinel errors, functional options,
// and the Result record.
package walk

import (
	"context"
	"errors"
	"fmt"
)

// Order selects the traversal strategy.
type Order int

const (
	// BFS visits nodes level by level, nearest first.
	BFS Order = iota

	// DFS visits nodes in depth-first preorder.
	DFS
)

var (
	// ErrRootNil is returned when a nil root handle is passed to Walk.
	ErrRootNil = errors.New("walk: root handle is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walk: invalid option supplied")
)

// Option configures traversal behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when Walk is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Order selects BFS or DFS preorder.
	Order Order

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// OnVisit is called for every visited node with its value and depth.
	// If it returns an error, the traversal aborts and propagates it.
	OnVisit func(value int64, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - BFS order
//   - no depth limit (MaxDepth == 0)
//   - no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Order:    BFS,
		MaxDepth: 0,
		OnVisit:  func(int64, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOrder selects the traversal order.
func WithOrder(ord Order) Option {
	return func(o *Options) {
		if ord != BFS && ord != DFS {
			o.err = fmt.Errorf("%w: unknown order (%d)", ErrOptionViolation, ord)

			return
		}
		o.Order = ord
	}
}

// WithMaxDepth stops the traversal at the given depth (exclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a callback to run on every visit; returning an
// error from this callback stops the traversal.
func WithOnVisit(fn func(value int64, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order: node values in visit sequence.
//   - Depth: depth of each visit, parallel to Order.
type Result struct {
	Order []int64
	Depth []int
}
