// Package rc provides reference-counted shared-ownership handles for
// single-goroutine use: Ref (owning) and Weak (non-owning), the building
// blocks for linked structures whose back-edges must not leak memory.
//
// What
//
//   - Ref[T]: an owning handle. The shared value stays alive while at least
//     one Ref exists. Clone adds an owner, Drop removes one; when the last
//     owner is gone the value's finalizer (if configured) runs exactly once.
//   - Weak[T]: a non-owning handle. It records a relationship and allows
//     lookup via Upgrade, but never keeps the value alive. Upgrade returns a
//     fresh Ref while the value lives, and (nil, false) once it is destroyed.
//   - StrongCount / WeakCount: observability into outstanding handles;
//     repeated calls without mutation return the same value.
//
// Why
//
//   - Bidirectional structures (a tree with parent pointers, a doubly linked
//     list) leak under naive mutual strong ownership. The asymmetric split —
//     owning edges downward, Weak edges upward — breaks the cycle: upward
//     navigation pays an explicit liveness check (Upgrade) instead.
//
// Discipline
//
//	Handles are single-goroutine. Counts are plain integers, not atomics;
//	sharing handles across goroutines without external synchronization is a
//	data race. Misusing a handle after Drop is a programming error and
//	panics with ErrUseAfterDrop — it is never returned as an error.
//
// Complexity
//
//   - All operations are O(1).
//
// See: the tree package for the canonical parent/children application.
package rc
