// Package arena provides an index-based backend for parent-navigable trees:
// nodes live in a central table, references are generation-checked IDs, and
// liveness is an explicit per-slot flag checked on every lookup.
//
// What
//
//   - Arena: the node table. Slots are recycled through a free list; each
//     recycle bumps the slot's generation, so IDs held by callers can go
//     stale but never dangle — a stale ID simply fails its liveness check.
//   - NodeID: a copyable handle (index + generation). The zero NodeID is
//     "absent". IDs are not reference-counted; holding one neither keeps a
//     node alive nor blocks its removal.
//   - AttachChild / DetachChild / Remove / RemoveSubtree: structural
//     mutation. ResolveParent is the upgrade-or-absent upward lookup: a
//     removed parent yields absence, never an error.
//
// Why
//
//	The rc/cell/tree stack models shared ownership directly, with weak
//	back-edges breaking cycles. The arena sidesteps ownership cycles by
//	construction: indices carry no ownership, so back-edges cost nothing
//	and the upgrade-or-absent semantics fall out of the generation check.
//
// Concurrency
//
//	Unlike the single-goroutine rc stack, an Arena is safe for concurrent
//	use: all operations take the arena's RWMutex, reads shared, mutations
//	exclusive.
//
// Removal semantics
//
//	Remove frees one node: it is detached from its parent, and its
//	children are orphaned in place — their recorded parent IDs go stale and
//	ResolveParent reports absent from then on. RemoveSubtree frees a node
//	and every node reachable through children edges.
//
// Complexity
//
//   - NewNode, Alive, Value, ResolveParent: O(1)
//   - AttachChild: O(depth) for the ancestry check
//   - DetachChild: O(len(children))
//   - Remove: O(len(children) + len(parent's children))
//   - RemoveSubtree: O(size of subtree)
package arena
