package tree

import (
	"github.com/katalvlaran/arbor/cell"
	"github.com/katalvlaran/arbor/rc"
)

// Node is a tree vertex: an integer payload, a non-owning parent
// back-reference, and an ordered list of owning child handles.
// Both link slots are runtime borrow-checked cells, so a Node shared
// through rc handles stays mutable one field at a time.
//
// A nil weak pointer in the parent slot means "no parent recorded".
// The slot holds at most one logical parent pointer; AttachChild replaces
// it (last write wins) without consulting any previous parent.
type Node struct {
	value    int64
	parent   *cell.Cell[*rc.Weak[Node]]
	children *cell.Cell[[]*rc.Ref[Node]]
}

// New allocates a node with the given value, no parent, and no children,
// and returns its first owning handle: strong=1, weak=0.
// The handle's finalizer releases the node's links on destruction, so a
// dying node cascades ownership down its subtree and returns its weak
// back-reference. Always succeeds. Complexity: O(1).
func New(value int64) *rc.Ref[Node] {
	return rc.New(Node{
		value:    value,
		parent:   cell.NewCell[*rc.Weak[Node]](nil),
		children: cell.NewCell([]*rc.Ref[Node]{}),
	}, rc.WithFinalizer(release))
}

// release drops every handle a dying node still holds: its owning children
// slots (which may cascade further) and its parent back-reference.
func release(n *Node) {
	n.children.WithMut(func(kids *[]*rc.Ref[Node]) {
		for _, k := range *kids {
			k.Drop()
		}
		*kids = nil
	})
	n.parent.WithMut(func(w **rc.Weak[Node]) {
		if *w != nil {
			(*w).Drop()
			*w = nil
		}
	})
}

// Value returns the node's payload.
func (n *Node) Value() int64 { return n.value }

// ChildCount returns the number of owning child slots, under a scoped read
// borrow of the children list.
func (n *Node) ChildCount() int {
	var count int
	n.children.With(func(kids []*rc.Ref[Node]) { count = len(kids) })

	return count
}

// ChildValues returns the payloads of the children in attachment order.
func (n *Node) ChildValues() []int64 {
	var out []int64
	n.children.With(func(kids []*rc.Ref[Node]) {
		out = make([]int64, 0, len(kids))
		for _, k := range kids {
			out = append(out, k.Get().Value())
		}
	})

	return out
}

// AttachChild appends child to parent's children list as a new owning slot
// (child strong count +1) and replaces child's parent back-reference with a
// non-owning handle to parent (parent weak count +1, strong count
// unchanged). Any previously recorded back-reference is released first:
// last write wins, and the old parent — if any — keeps its owning slot.
// Complexity: O(1) amortized.
func AttachChild(parent, child *rc.Ref[Node]) {
	parent.Get().children.WithMut(func(kids *[]*rc.Ref[Node]) {
		*kids = append(*kids, child.Clone())
	})
	child.Get().parent.WithMut(func(w **rc.Weak[Node]) {
		if *w != nil {
			(*w).Drop()
		}
		*w = parent.Downgrade()
	})
}

// DetachChild removes the first owning slot for child from parent's
// children list and, when the child's back-reference still points at
// parent, clears it. Reports whether a slot was removed.
// Complexity: O(len(children)).
func DetachChild(parent, child *rc.Ref[Node]) bool {
	var removed bool
	parent.Get().children.WithMut(func(kids *[]*rc.Ref[Node]) {
		for i, k := range *kids {
			if !k.Shares(child) {
				continue
			}
			k.Drop()
			*kids = append((*kids)[:i], (*kids)[i+1:]...)
			removed = true

			break
		}
	})
	if !removed {
		return false
	}

	child.Get().parent.WithMut(func(w **rc.Weak[Node]) {
		if *w == nil {
			return
		}
		up, ok := (*w).Upgrade()
		if !ok {
			// recorded parent already destroyed; the slot resolves
			// absent on its own, leave it untouched
			return
		}
		same := up.Shares(parent)
		up.Drop()
		if same {
			(*w).Drop()
			*w = nil
		}
	})

	return true
}

// ResolveParent attempts to upgrade n's back-reference into a temporary
// owning handle. Returns (nil, false) when no parent was recorded or the
// recorded parent has been destroyed — absence is an expected branch, not
// an error. The caller owns the returned handle and must Drop it.
// Complexity: O(1).
func ResolveParent(n *rc.Ref[Node]) (*rc.Ref[Node], bool) {
	var w *rc.Weak[Node]
	n.Get().parent.With(func(cur *rc.Weak[Node]) { w = cur })
	if w == nil {
		return nil, false
	}

	return w.Upgrade()
}

// Children returns freshly cloned owning handles to n's children in
// attachment order. Each returned handle adds one to the child's strong
// count; the caller must Drop them all. Complexity: O(len(children)).
func Children(n *rc.Ref[Node]) []*rc.Ref[Node] {
	var out []*rc.Ref[Node]
	n.Get().children.With(func(kids []*rc.Ref[Node]) {
		out = make([]*rc.Ref[Node], 0, len(kids))
		for _, k := range kids {
			out = append(out, k.Clone())
		}
	})

	return out
}
