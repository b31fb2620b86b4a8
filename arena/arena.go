// Package arena: node table operations.
//
// All exported methods take a.mu; internal helpers expect it held.
// Liveness is decided by the (alive, generation) pair, so every public
// entry point starts with a lookup that rejects stale IDs.
package arena

// lookup returns the slot for id iff id is live. Caller holds a.mu.
func (a *Arena) lookup(id NodeID) (*slot, bool) {
	if id.IsZero() || int(id.index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[id.index]
	if !s.alive || s.gen != id.gen {
		return nil, false
	}

	return s, true
}

// NewNode inserts a node with the given value, no parent, and no children,
// reusing a freed slot when one is available. Always succeeds.
// Complexity: O(1) amortized.
func (a *Arena) NewNode(value int64) NodeID {
	a.mu.Lock()
	defer a.mu.Unlock()

	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot{gen: 1})
		idx = uint32(len(a.slots) - 1)
	}

	s := &a.slots[idx]
	s.value = value
	s.alive = true
	s.parent = NodeID{}
	s.children = nil
	a.live++

	return NodeID{index: idx, gen: s.gen}
}

// Alive reports whether id refers to a live node. Stale IDs are simply
// absent, never an error. Complexity: O(1).
func (a *Arena) Alive(id NodeID) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.lookup(id)

	return ok
}

// Len returns the number of live nodes. Complexity: O(1).
func (a *Arena) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.live
}

// Value returns the payload of id.
// Returns ErrNodeNotFound for stale or absent IDs. Complexity: O(1).
func (a *Arena) Value(id NodeID) (int64, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	s, ok := a.lookup(id)
	if !ok {
		return 0, ErrNodeNotFound
	}

	return s.value, nil
}

// Children returns a copy of id's children in attachment order.
// Returns ErrNodeNotFound for stale or absent IDs.
// Complexity: O(len(children)).
func (a *Arena) Children(id NodeID) ([]NodeID, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	s, ok := a.lookup(id)
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]NodeID, len(s.children))
	copy(out, s.children)

	return out, nil
}

// ResolveParent looks up id's recorded parent and reports whether it is
// still live. Absence — no parent recorded, or the recorded parent removed
// since — is an expected branch, never an error; a removed parent's ID
// fails its generation check exactly like a dropped weak handle fails to
// upgrade. Complexity: O(1).
func (a *Arena) ResolveParent(id NodeID) (NodeID, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	s, ok := a.lookup(id)
	if !ok {
		return NodeID{}, false
	}
	if _, ok = a.lookup(s.parent); !ok {
		return NodeID{}, false
	}

	return s.parent, true
}

// AttachChild records an owning edge parent→child and sets child's parent
// back-reference. A child already attached elsewhere is moved: the previous
// edge is severed first (last write wins). Attaching a node to itself or to
// one of its own descendants is rejected.
// Returns ErrNodeNotFound, ErrSelfAttach, or ErrCycle.
// Complexity: O(depth of parent) for the ancestry check.
func (a *Arena) AttachChild(parent, child NodeID) error {
	if parent == child {
		return ErrSelfAttach
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	ps, ok := a.lookup(parent)
	if !ok {
		return ErrNodeNotFound
	}
	cs, ok := a.lookup(child)
	if !ok {
		return ErrNodeNotFound
	}
	// reject attaching an ancestor beneath its descendant
	for anc := ps.parent; !anc.IsZero(); {
		if anc == child {
			return ErrCycle
		}
		s, live := a.lookup(anc)
		if !live {
			break
		}
		anc = s.parent
	}

	// move semantics: sever the previous owning edge, if any
	if old, live := a.lookup(cs.parent); live {
		old.children = removeID(old.children, child)
	}

	ps.children = append(ps.children, child)
	cs.parent = parent

	return nil
}

// DetachChild severs the owning edge parent→child and clears child's
// back-reference. Returns ErrNodeNotFound for stale IDs and ErrNotChild
// when no such edge exists. Complexity: O(len(children)).
func (a *Arena) DetachChild(parent, child NodeID) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	ps, ok := a.lookup(parent)
	if !ok {
		return ErrNodeNotFound
	}
	cs, ok := a.lookup(child)
	if !ok {
		return ErrNodeNotFound
	}
	if cs.parent != parent {
		return ErrNotChild
	}

	ps.children = removeID(ps.children, child)
	cs.parent = NodeID{}

	return nil
}

// Remove frees a single node: it is detached from its parent, its children
// are orphaned in place (their recorded parent goes stale and resolves
// absent from now on), and the slot is recycled with a bumped generation.
// Returns ErrNodeNotFound for stale or absent IDs.
// Complexity: O(len(children) + len(parent's children)).
func (a *Arena) Remove(id NodeID) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, ok := a.lookup(id)
	if !ok {
		return ErrNodeNotFound
	}
	if ps, live := a.lookup(s.parent); live {
		ps.children = removeID(ps.children, id)
	}
	a.freeSlot(id.index)

	return nil
}

// RemoveSubtree frees id and every node reachable from it through owning
// children edges. Returns ErrNodeNotFound for stale or absent IDs.
// Complexity: O(size of subtree).
func (a *Arena) RemoveSubtree(id NodeID) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, ok := a.lookup(id)
	if !ok {
		return ErrNodeNotFound
	}
	if ps, live := a.lookup(s.parent); live {
		ps.children = removeID(ps.children, id)
	}

	stack := []NodeID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cs, live := a.lookup(cur)
		if !live {
			continue
		}
		stack = append(stack, cs.children...)
		a.freeSlot(cur.index)
	}

	return nil
}

// freeSlot kills a slot and recycles it. Caller holds a.mu and has
// verified the slot is alive.
func (a *Arena) freeSlot(idx uint32) {
	s := &a.slots[idx]
	s.alive = false
	s.gen++
	s.value = 0
	s.parent = NodeID{}
	s.children = nil
	a.free = append(a.free, idx)
	a.live--
}

// removeID deletes the first occurrence of id, preserving order.
func removeID(ids []NodeID, id NodeID) []NodeID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}

	return ids
}
