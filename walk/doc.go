// Package walk provides traversal over a tree of rc-handled nodes:
// breadth-first or depth-first preorder downward along owning children
// edges, plus upgrade-checked upward navigation to the root.
//
// What
//
//   - Walk: visits a subtree from a root handle, producing the visit order
//     (values) and per-visit depths. Functional options select the order
//     (BFS or DFS), limit depth, register an OnVisit hook that may abort,
//     and attach a context for cancellation.
//   - PathToRoot: follows parent back-references upward, upgrading each one
//     and stopping at the first absent parent. A destroyed ancestor simply
//     ends the path; it is never an error.
//
// Ownership
//
//	The walker clones owning handles for every node it holds and drops them
//	as it goes, so a traversal leaves all strong counts exactly as it found
//	them — including when it aborts early on error or cancellation.
//
// Borrowing
//
//	Children lists are read under short scoped borrows, one node at a time,
//	never across the whole traversal. Mutating a children list from an
//	OnVisit hook while its read borrow is live is a fatal fault per package
//	cell; mutating other nodes' lists is fine.
//
// Determinism
//
//	Children are visited in attachment order, so the visit sequence is
//	fully reproducible for a fixed tree.
//
// Complexity (N = nodes reached, C = owning edges reached)
//
//   - Time:   O(N + C)
//   - Memory: O(N) for the work list
package walk
