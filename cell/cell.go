package cell

import "errors"

// Panic values for borrow-discipline violations. These are deliberately
// panics, not returned errors: a conflict means the caller broke the
// single-writer rule, and the process must stop at the violation point.
var (
	// ErrReadConflict is raised when BorrowMut finds outstanding readers.
	ErrReadConflict = errors.New("cell: already borrowed for reading")

	// ErrWriteConflict is raised when Borrow or BorrowMut finds an
	// outstanding writer.
	ErrWriteConflict = errors.New("cell: already borrowed for writing")

	// ErrGuardReleased is raised when a guard is used after Release.
	ErrGuardReleased = errors.New("cell: guard used after release")
)

// Cell is a runtime borrow-checked mutable slot.
// readers counts live ReadGuards; writer marks one live WriteGuard.
// The two are mutually exclusive.
type Cell[T any] struct {
	value   T
	readers int
	writer  bool
}

// NewCell returns a Cell holding value, unborrowed.
func NewCell[T any](value T) *Cell[T] {
	return &Cell[T]{value: value}
}

// Borrow acquires shared read access and returns its guard.
// Panics with ErrWriteConflict if a write guard is outstanding.
func (c *Cell[T]) Borrow() *ReadGuard[T] {
	if c.writer {
		panic(ErrWriteConflict)
	}
	c.readers++

	return &ReadGuard[T]{c: c}
}

// BorrowMut acquires exclusive write access and returns its guard.
// Panics with ErrReadConflict if read guards are outstanding,
// or ErrWriteConflict if another write guard is outstanding.
func (c *Cell[T]) BorrowMut() *WriteGuard[T] {
	if c.writer {
		panic(ErrWriteConflict)
	}
	if c.readers > 0 {
		panic(ErrReadConflict)
	}
	c.writer = true

	return &WriteGuard[T]{c: c}
}

// With borrows for reading, passes the current value to fn, and releases.
// The guard cannot outlive the call.
func (c *Cell[T]) With(fn func(T)) {
	g := c.Borrow()
	defer g.Release()
	fn(*g.Get())
}

// WithMut borrows for writing, passes a pointer to the slot to fn, and
// releases. The guard cannot outlive the call.
func (c *Cell[T]) WithMut(fn func(*T)) {
	g := c.BorrowMut()
	defer g.Release()
	fn(g.Get())
}

// Replace swaps in a new value under a scoped write borrow and returns the
// previous one.
func (c *Cell[T]) Replace(value T) T {
	g := c.BorrowMut()
	defer g.Release()
	old := *g.Get()
	*g.Get() = value

	return old
}

// ReadGuard is a live shared borrow of a Cell.
type ReadGuard[T any] struct {
	c        *Cell[T]
	released bool
}

// Get returns a pointer to the borrowed value. Callers must treat it as
// read-only; the guard grants shared access.
func (g *ReadGuard[T]) Get() *T {
	if g.released {
		panic(ErrGuardReleased)
	}

	return &g.c.value
}

// Release returns the read permission. Releasing twice panics with
// ErrGuardReleased.
func (g *ReadGuard[T]) Release() {
	if g.released {
		panic(ErrGuardReleased)
	}
	g.released = true
	g.c.readers--
}

// WriteGuard is a live exclusive borrow of a Cell.
type WriteGuard[T any] struct {
	c        *Cell[T]
	released bool
}

// Get returns a pointer to the borrowed value for reading or writing.
func (g *WriteGuard[T]) Get() *T {
	if g.released {
		panic(ErrGuardReleased)
	}

	return &g.c.value
}

// Release returns the write permission. Releasing twice panics with
// ErrGuardReleased.
func (g *WriteGuard[T]) Release() {
	if g.released {
		panic(ErrGuardReleased)
	}
	g.released = true
	g.c.writer = false
}
