// Package rc implements the Ref/Weak ownership split declared in doc.go.
//
// Internally every allocation is a box carrying the value plus two plain
// counters. A handle is a thin pointer to the box with a local dropped flag,
// so double-Drop is caught per handle, not per box.
package rc

import "errors"

// ErrUseAfterDrop is the panic value raised when a handle is used after its
// Drop call. It signals a caller-discipline bug, never an environmental
// failure, so it is deliberately not a returned error.
var ErrUseAfterDrop = errors.New("rc: handle used after Drop")

// box is the shared allocation behind all handles to one value.
// The value is considered destroyed once strong reaches zero; weak handles
// may outlive it and observe the destroyed state through Upgrade.
type box[T any] struct {
	value  T
	strong int
	weak   int
	final  func(*T) // runs exactly once, when strong hits zero
}

// dead reports whether the boxed value has been destroyed.
func (b *box[T]) dead() bool { return b.strong == 0 }

// Option configures a new allocation.
type Option[T any] func(*box[T])

// WithFinalizer registers fn to run exactly once when the last owning
// handle is dropped. The value is still addressable inside fn; afterwards
// it is unreachable through any handle. A nil fn is ignored.
func WithFinalizer[T any](fn func(*T)) Option[T] {
	return func(b *box[T]) {
		if fn != nil {
			b.final = fn
		}
	}
}

// Ref is an owning handle to a shared value of type T.
// The zero Ref is invalid; obtain one via New, Clone, or Weak.Upgrade.
type Ref[T any] struct {
	b       *box[T]
	dropped bool
}

// Weak is a non-owning handle to a shared value of type T.
// It never keeps the value alive and must be released with Drop.
type Weak[T any] struct {
	b       *box[T]
	dropped bool
}

// New allocates a shared value and returns its first owning handle.
// Immediately after New: StrongCount == 1, WeakCount == 0.
// Complexity: O(1).
func New[T any](value T, opts ...Option[T]) *Ref[T] {
	b := &box[T]{value: value, strong: 1}
	for _, opt := range opts {
		opt(b)
	}

	return &Ref[T]{b: b}
}

// guard panics with ErrUseAfterDrop if the handle has been dropped.
func (r *Ref[T]) guard() {
	if r.dropped {
		panic(ErrUseAfterDrop)
	}
}

// Clone returns a new owning handle to the same value.
// StrongCount increases by one. Complexity: O(1).
func (r *Ref[T]) Clone() *Ref[T] {
	r.guard()
	r.b.strong++

	return &Ref[T]{b: r.b}
}

// Drop releases this owning handle. When it was the last one, the finalizer
// (if any) runs and the value becomes unreachable: outstanding Weak handles
// observe absence from then on. Dropping the same handle twice panics with
// ErrUseAfterDrop. Complexity: O(1) plus the finalizer.
func (r *Ref[T]) Drop() {
	r.guard()
	r.dropped = true
	r.b.strong--
	if r.b.strong == 0 && r.b.final != nil {
		fn := r.b.final
		r.b.final = nil
		fn(&r.b.value)
	}
}

// Get returns a pointer to the shared value.
// The pointer stays valid while any owning handle exists.
func (r *Ref[T]) Get() *T {
	r.guard()

	return &r.b.value
}

// Value returns a copy of the shared value.
func (r *Ref[T]) Value() T {
	r.guard()

	return r.b.value
}

// StrongCount returns the number of owning handles currently outstanding.
// Idempotent: repeated calls without mutation return the same value.
func (r *Ref[T]) StrongCount() int {
	r.guard()

	return r.b.strong
}

// WeakCount returns the number of non-owning handles currently outstanding.
// Idempotent: repeated calls without mutation return the same value.
func (r *Ref[T]) WeakCount() int {
	r.guard()

	return r.b.weak
}

// Downgrade returns a new non-owning handle to the same value.
// WeakCount increases by one; StrongCount is unchanged. Complexity: O(1).
func (r *Ref[T]) Downgrade() *Weak[T] {
	r.guard()
	r.b.weak++

	return &Weak[T]{b: r.b}
}

// Shares reports whether two owning handles point at the same allocation,
// regardless of the value's contents.
func (r *Ref[T]) Shares(other *Ref[T]) bool {
	r.guard()
	if other == nil {
		return false
	}
	other.guard()

	return r.b == other.b
}

// guard panics with ErrUseAfterDrop if the weak handle has been dropped.
func (w *Weak[T]) guard() {
	if w.dropped {
		panic(ErrUseAfterDrop)
	}
}

// Upgrade attempts to convert this non-owning handle into a fresh owning
// one. It succeeds only while the value is still alive; once the last
// owning handle has been dropped it returns (nil, false). Absence is an
// expected branch, never an error. Complexity: O(1).
func (w *Weak[T]) Upgrade() (*Ref[T], bool) {
	w.guard()
	if w.b.dead() {
		return nil, false
	}
	w.b.strong++

	return &Ref[T]{b: w.b}, true
}

// Alive reports whether the referenced value still has an owning handle.
func (w *Weak[T]) Alive() bool {
	w.guard()

	return !w.b.dead()
}

// Drop releases this non-owning handle. WeakCount decreases by one.
// Dropping the same handle twice panics with ErrUseAfterDrop.
func (w *Weak[T]) Drop() {
	w.guard()
	w.dropped = true
	w.b.weak--
}
