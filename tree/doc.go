// Package tree implements a parent-navigable tree on top of the rc and cell
// packages, with asymmetric reference strength as its core trick: ownership
// flows strictly downward (a parent's children list holds owning handles),
// while upward navigation uses non-owning back-references that must be
// upgraded — and may resolve absent — before use.
//
// What
//
//   - Node: an int64 payload plus two independently mutable slots, the
//     parent back-reference and the ordered children list. Both are
//     cell.Cell fields, so a Node can be shared immutably through rc
//     handles while its links stay mutable.
//   - New / AttachChild / DetachChild: structural mutation. Attaching adds
//     an owning slot to the parent (child strong count +1) and replaces the
//     child's back-reference (parent weak count +1); the attach itself never
//     changes the parent's strong count.
//   - ResolveParent: upgrade-or-absent upward navigation. A destroyed
//     parent yields absence, never an error.
//
// Why
//
//	Naive bidirectional strong linking (parent owns child, child owns
//	parent) forms a cycle no reference counter can collect. The weak
//	back-edge breaks the cycle by construction: destruction of a parent is
//	never blocked by its children's back-references, at the cost of an
//	explicit liveness check on every upward traversal.
//
// Counts
//
//	Strong and weak counts are read straight off the rc handles; the tree
//	adds no bookkeeping of its own. Immediately after New: strong=1,
//	weak=0. After AttachChild(p, c): strong(c)+1, weak(p)+1.
//
// Destruction
//
//	Dropping the last owning handle to a node releases its children slots
//	(cascading down the subtree) and its parent back-reference. A child that
//	is still owned elsewhere simply loses one owner and survives.
//
// Faults
//
//	Structural mutation during an active borrow of the same slot panics per
//	package cell; handle misuse after Drop panics per package rc. Both are
//	caller-discipline bugs, intentionally fatal.
package tree
