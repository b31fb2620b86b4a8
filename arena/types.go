// Package arena types: sentinel errors, NodeID handles, the slot layout,
// functional options, and the Arena constructor.
package arena

import (
	"errors"
	"sync"
)

// Sentinel errors for arena operations.
var (
	// ErrNodeNotFound indicates an operation referenced a stale or absent NodeID.
	ErrNodeNotFound = errors.New("arena: node not found")

	// ErrSelfAttach indicates an attempt to attach a node to itself.
	ErrSelfAttach = errors.New("arena: cannot attach node to itself")

	// ErrCycle indicates an attach that would make a node its own ancestor.
	ErrCycle = errors.New("arena: attach would create a cycle")

	// ErrNotChild indicates a detach for a pair with no owning edge.
	ErrNotChild = errors.New("arena: node is not a child of the given parent")
)

// NodeID is a generation-checked handle to a node in an Arena.
// The zero NodeID is "absent" and never refers to a live node.
// IDs are plain values: copying one has no effect on the node's lifetime.
type NodeID struct {
	index uint32
	gen   uint32
}

// IsZero reports whether the ID is the absent sentinel.
func (id NodeID) IsZero() bool { return id.gen == 0 }

// slot is one entry in the node table. gen starts at 1 and is bumped on
// every free, invalidating all outstanding IDs for the slot.
type slot struct {
	value    int64
	gen      uint32
	alive    bool
	parent   NodeID
	children []NodeID
}

// Option configures an Arena before creation.
type Option func(*Arena)

// WithCapacity pre-allocates table capacity for n nodes.
func WithCapacity(n int) Option {
	return func(a *Arena) {
		if n > 0 {
			a.slots = make([]slot, 0, n)
		}
	}
}

// Arena is a concurrency-safe node table.
// mu guards slots, free, and live; reads take the shared lock.
type Arena struct {
	mu    sync.RWMutex
	slots []slot
	free  []uint32
	live  int
}

// NewArena creates an empty Arena with the given options.
// Complexity: O(1).
func NewArena(opts ...Option) *Arena {
	a := &Arena{}
	for _, opt := range opts {
		opt(a)
	}

	return a
}
