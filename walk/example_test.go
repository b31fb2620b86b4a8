package walk_test

import (
	"fmt"

	"github.com/katalvlaran/arbor/rc"
	"github.com/katalvlaran/arbor/tree"
	"github.com/katalvlaran/arbor/walk"
)

// ExampleWalk traverses a small tree both ways:
//
//	    10
//	   /  \
//	  20   30
//	 /  \
//	40   50
func ExampleWalk() {
	nodes := map[int64]*rc.Ref[tree.Node]{}
	for _, v := range []int64{10, 20, 30, 40, 50} {
		nodes[v] = tree.New(v)
	}
	tree.AttachChild(nodes[10], nodes[20])
	tree.AttachChild(nodes[10], nodes[30])
	tree.AttachChild(nodes[20], nodes[40])
	tree.AttachChild(nodes[20], nodes[50])

	bfs, _ := walk.Walk(nodes[10])
	fmt.Println("bfs:", bfs.Order)

	dfs, _ := walk.Walk(nodes[10], walk.WithOrder(walk.DFS))
	fmt.Println("dfs:", dfs.Order)

	for _, h := range nodes {
		h.Drop()
	}
	// Output:
	// bfs: [10 20 30 40 50]
	// dfs: [10 20 40 50 30]
}

// ExamplePathToRoot climbs from a leaf to the root through upgraded
// back-references.
func ExamplePathToRoot() {
	root := tree.New(1)
	mid := tree.New(2)
	leaf := tree.New(3)
	tree.AttachChild(root, mid)
	tree.AttachChild(mid, leaf)

	fmt.Println(walk.PathToRoot(leaf))

	leaf.Drop()
	mid.Drop()
	root.Drop()
	// Output:
	// [3 2 1]
}
