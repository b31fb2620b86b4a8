// Package arena_test verifies thread-safety of the Arena under concurrent
// operations.
package arena_test

import (
	"testing"

	"github.com/katalvlaran/arbor/arena"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestConcurrentNewNode ensures concurrent inserts are safe and every
// returned ID is live and distinct.
func TestConcurrentNewNode(t *testing.T) {
	a := arena.NewArena()
	const num = 200
	ids := make([]arena.NodeID, num)

	var g errgroup.Group
	for i := 0; i < num; i++ {
		i := i
		g.Go(func() error {
			ids[i] = a.NewNode(int64(i))

			return nil
		})
	}
	require.NoError(t, g.Wait())

	require.Equal(t, num, a.Len())
	seen := make(map[arena.NodeID]bool, num)
	for _, id := range ids {
		require.True(t, a.Alive(id))
		require.False(t, seen[id], "NodeIDs must be distinct")
		seen[id] = true
	}
}

// TestConcurrentAttach fans out attaches of distinct children under one
// parent; all edges must land.
func TestConcurrentAttach(t *testing.T) {
	a := arena.NewArena()
	root := a.NewNode(0)
	const num = 100

	var g errgroup.Group
	for i := 0; i < num; i++ {
		i := i
		g.Go(func() error {
			return a.AttachChild(root, a.NewNode(int64(i)))
		})
	}
	require.NoError(t, g.Wait())

	kids, err := a.Children(root)
	require.NoError(t, err)
	require.Len(t, kids, num)
}

// TestConcurrentRemoveAndResolve mixes removals with back-reference
// lookups; no lookup may error, it only flips from present to absent.
func TestConcurrentRemoveAndResolve(t *testing.T) {
	a := arena.NewArena()
	const num = 100
	parents := make([]arena.NodeID, num)
	children := make([]arena.NodeID, num)
	for i := 0; i < num; i++ {
		parents[i] = a.NewNode(int64(i))
		children[i] = a.NewNode(int64(i + num))
		require.NoError(t, a.AttachChild(parents[i], children[i]))
	}

	var g errgroup.Group
	for i := 0; i < num; i++ {
		i := i
		g.Go(func() error { return a.Remove(parents[i]) })
		g.Go(func() error {
			// either outcome is legal mid-removal; it must never race
			_, _ = a.ResolveParent(children[i])

			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i := 0; i < num; i++ {
		require.True(t, a.Alive(children[i]), "orphans must survive")
		if _, ok := a.ResolveParent(children[i]); ok {
			t.Fatalf("child %d: parent removed, resolve must be absent", i)
		}
	}
}
