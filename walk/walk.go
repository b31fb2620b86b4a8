package walk

import (
	"fmt"

	"github.com/katalvlaran/arbor/rc"
	"github.com/katalvlaran/arbor/tree"
)

// workItem pairs an owned node handle with its depth from the root.
// The handle belongs to the walker and is dropped after use.
type workItem struct {
	h     *rc.Ref[tree.Node]
	depth int
}

// walker encapsulates mutable traversal state.
type walker struct {
	opts Options
	list []workItem // FIFO for BFS, LIFO for DFS
	res  *Result
}

// Walk traverses the subtree rooted at root, applying any number of
// functional Options. Every handle the walker holds is cloned on entry and
// dropped on exit, so strong counts are unchanged after the call — also on
// early abort. Returns ErrRootNil or ErrOptionViolation for invalid input,
// the context error on cancellation, or a wrapped OnVisit error.
func Walk(root *rc.Ref[tree.Node], opts ...Option) (*Result, error) {
	if root == nil {
		return nil, ErrRootNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		opts: o,
		res:  &Result{Order: []int64{}, Depth: []int{}},
	}
	defer w.drain()

	// Seed with an owned clone of the root
	w.list = append(w.list, workItem{h: root.Clone(), depth: 0})

	return w.res, w.loop()
}

// loop processes the work list until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.list) > 0 {
		// cancellation check (once per node)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.next()
		if err := w.visit(item); err != nil {
			item.h.Drop()

			return err
		}
		w.expand(item)
		item.h.Drop()
	}

	return nil
}

// next pops the next work item: front for BFS, back for DFS.
func (w *walker) next() workItem {
	if w.opts.Order == BFS {
		item := w.list[0]
		w.list = w.list[1:]

		return item
	}
	last := len(w.list) - 1
	item := w.list[last]
	w.list = w.list[:last]

	return item
}

// visit records the node and invokes the OnVisit hook.
func (w *walker) visit(item workItem) error {
	v := item.h.Get().Value()
	w.res.Order = append(w.res.Order, v)
	w.res.Depth = append(w.res.Depth, item.depth)
	if err := w.opts.OnVisit(v, item.depth); err != nil {
		return fmt.Errorf("walk: OnVisit error at %d: %w", v, err)
	}

	return nil
}

// expand clones the children of item and schedules them at depth+1,
// honoring MaxDepth. For DFS the batch is pushed reversed so the first
// child is visited first (preorder).
func (w *walker) expand(item workItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}

	kids := tree.Children(item.h)
	if w.opts.Order == DFS {
		for i, j := 0, len(kids)-1; i < j; i, j = i+1, j-1 {
			kids[i], kids[j] = kids[j], kids[i]
		}
	}
	for _, k := range kids {
		w.list = append(w.list, workItem{h: k, depth: next})
	}
}

// drain drops every handle still scheduled; a no-op after a clean run.
func (w *walker) drain() {
	for _, item := range w.list {
		item.h.Drop()
	}
	w.list = nil
}

// PathToRoot follows parent back-references upward from n, collecting
// values starting at n itself and ending at the deepest ancestor that
// still resolves. Every intermediate upgrade is dropped before the next
// step, so no borrow or owning handle is held across the traversal.
func PathToRoot(n *rc.Ref[tree.Node]) []int64 {
	path := []int64{}
	cur := n.Clone()
	for {
		path = append(path, cur.Get().Value())
		p, ok := tree.ResolveParent(cur)
		cur.Drop()
		if !ok {
			return path
		}
		cur = p
	}
}
