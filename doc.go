// Package arbor is an in-memory toolkit for parent-navigable trees built on
// asymmetric reference strength: ownership flows downward, lookup-only
// back-references flow upward, and nothing leaks.
//
// 🌳 What is arbor?
//
//	A small, focused library that brings together:
//		• rc/    — shared-ownership handles: owning Ref, non-owning Weak,
//		           strong/weak counts, finalizers, upgrade-or-absent lookup
//		• cell/  — runtime borrow-checked mutable slots: shared reads,
//		           exclusive writes, violations are fatal faults
//		• tree/  — the Node structure: owning children lists, weak parent
//		           back-references, attach/detach/resolve
//		• walk/  — BFS/DFS traversal with hooks, depth limits and
//		           cancellation, plus PathToRoot upward navigation
//		• arena/ — a generation-checked, index-based backend with the same
//		           semantics and no reference counts, safe for concurrent use
//
// ✨ Why arbor?
//
//   - One invariant, stated everywhere: a back-reference never keeps its
//     target alive and never blocks its destruction
//   - Violations of handle or borrow discipline fail loudly at the point
//     of misuse — never silently
//   - Pure Go library code, no cgo
//   - Deterministic: children keep attachment order, traversals reproduce
//
// Quick ASCII example:
//
//	    branch(15)
//	      │   ▲
//	 owns ▼   ┆ weak
//	     leaf(10)
//
//	the branch owns the leaf; the leaf can look its parent up, but once the
//	branch's last owner is gone, that lookup resolves to absent.
//
// Dive into the package docs for contracts, complexity notes, and runnable
// examples.
//
//	go get github.com/katalvlaran/arbor
package arbor
