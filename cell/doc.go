// Package cell provides runtime-checked interior mutability: a Cell wraps a
// value that may be read or replaced through a shared reference, with the
// single-writer rule enforced at the point of use instead of ahead of time.
//
// What
//
//   - Cell[T]: a mutable slot. Borrow grants shared read access (any number
//     of concurrent read guards), BorrowMut grants exclusive write access.
//   - ReadGuard / WriteGuard: scoped access tokens; Release returns the
//     permission. Guards are intended to be short-lived — acquired and
//     released within a single operation, never held across traversals.
//   - With / WithMut: convenience wrappers that borrow, run a function, and
//     release, so the guard cannot leak.
//
// Why
//
//   - A structure that is shared through multiple owning handles cannot hand
//     out exclusive access statically. Moving the check to runtime keeps the
//     structure immutably shareable while individual fields stay mutable.
//
// Faults
//
//	Violating the borrow rules is a programming error in caller discipline,
//	not an environmental failure, so it is a fatal fault: the offending call
//	panics with ErrReadConflict or ErrWriteConflict. Using a guard after
//	Release panics with ErrGuardReleased. Nothing is caught or retried.
//
// Discipline
//
//	Cells are single-goroutine, like the handles in package rc. The borrow
//	flags are plain integers; cross-goroutine use needs external locking.
//
// Complexity
//
//   - All operations are O(1).
package cell
