package walk_test

import (
	"testing"

	"github.com/katalvlaran/arbor/rc"
	"github.com/katalvlaran/arbor/tree"
	"github.com/katalvlaran/arbor/walk"
)

// buildBinaryTree returns the root of a complete binary tree of the given
// depth plus every handle for cleanup.
func buildBinaryTree(depth int) (*rc.Ref[tree.Node], []*rc.Ref[tree.Node]) {
	count := (1 << depth) - 1
	nodes := make([]*rc.Ref[tree.Node], count+1)
	for i := 1; i <= count; i++ {
		nodes[i] = tree.New(int64(i))
	}
	for i := 1; i <= (count-1)/2; i++ {
		tree.AttachChild(nodes[i], nodes[2*i])
		tree.AttachChild(nodes[i], nodes[2*i+1])
	}

	return nodes[1], nodes[1:]
}

// BenchmarkWalk_BinaryTreeBFS measures BFS over ~1k nodes, clone/drop
// bookkeeping included.
func BenchmarkWalk_BinaryTreeBFS(b *testing.B) {
	root, all := buildBinaryTree(10)
	defer func() {
		for _, h := range all {
			h.Drop()
		}
	}()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = walk.Walk(root)
	}
}

// BenchmarkWalk_BinaryTreeDFS measures DFS preorder on the same shape.
func BenchmarkWalk_BinaryTreeDFS(b *testing.B) {
	root, all := buildBinaryTree(10)
	defer func() {
		for _, h := range all {
			h.Drop()
		}
	}()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = walk.Walk(root, walk.WithOrder(walk.DFS))
	}
}
