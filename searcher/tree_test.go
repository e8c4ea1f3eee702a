package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestTreeInsert(t *testing.T) {
	t.Run("creating a lone root", func(t *testing.T) {
		tree := NewTree(newSearchNode(entry{player: "carol"}))
		root := tree.Root()

		_, hasParent := tree.Parent(root)

		require.False(t, hasParent, "Root should have no parent")
		require.True(t, tree.IsRoot(root))
		require.True(t, tree.IsLeaf(root), "Root should start unexpanded")
		require.Empty(t, tree.Children(root))
		require.Equal(t, 1, tree.Len())
	})

	t.Run("attaching children under a parent", func(t *testing.T) {
		tree := NewTree(newSearchNode(entry{player: "carol"}))
		root := tree.Root()

		first, err := tree.Insert(newSearchNode(mockMove{"alice", 1}), root)
		require.NoError(t, err)
		second, err := tree.Insert(newSearchNode(mockMove{"alice", 3}), root)
		require.NoError(t, err)
		grandChild, err := tree.Insert(newSearchNode(mockMove{"bob", 2}), first)
		require.NoError(t, err)

		require.Equal(t, []NodeID{first, second}, tree.Children(root), "Children should keep insertion order")
		require.Equal(t, []NodeID{grandChild}, tree.Children(first))
		parent, ok := tree.Parent(grandChild)
		require.True(t, ok)
		require.Equal(t, first, parent)
		require.False(t, tree.IsLeaf(root))
		require.True(t, tree.IsLeaf(second))
		require.False(t, tree.IsRoot(first))
		require.Equal(t, mockMove{"bob", 2}, tree.Node(grandChild).Move)
	})

	t.Run("rejecting a foreign parent", func(t *testing.T) {
		tree := NewTree(newSearchNode(entry{player: "carol"}))

		_, err := tree.Insert(newSearchNode(mockMove{"alice", 1}), NodeID(5))
		require.ErrorIs(t, err, ErrInvalidParent)

		_, err = tree.Insert(newSearchNode(mockMove{"alice", 1}), NodeID(-3))
		require.ErrorIs(t, err, ErrInvalidParent)
		require.Equal(t, 1, tree.Len(), "Failed inserts should not add nodes")
	})

	t.Run("checking handles against bounds only", func(t *testing.T) {
		other := NewTree(newSearchNode(entry{player: "carol"}))
		foreign, err := other.Insert(newSearchNode(mockMove{"alice", 1}), other.Root())
		require.NoError(t, err)
		tree := NewTree(newSearchNode(entry{player: "carol"}))
		_, err = tree.Insert(newSearchNode(mockMove{"alice", 3}), tree.Root())
		require.NoError(t, err)

		id, err := tree.Insert(newSearchNode(mockMove{"bob", 2}), foreign)

		require.NoError(t, err, "An in range handle of another tree is taken as this tree's node")
		parent, _ := tree.Parent(id)
		require.Equal(t, foreign, parent)
		require.Equal(t, mockMove{"alice", 3}, tree.Node(parent).Move)
	})

	t.Run("answering for unknown handles", func(t *testing.T) {
		tree := NewTree(newSearchNode(entry{player: "carol"}))

		require.Nil(t, tree.Node(NodeID(7)))
		require.Nil(t, tree.Children(NodeID(7)))
		require.False(t, tree.IsRoot(NodeID(7)))
	})
}

func TestTreeIntegrity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tree := NewTree(newSearchNode(entry{player: "carol"}))
	for i := 0; i < 500; i++ {
		parent := NodeID(rng.Intn(tree.Len()))
		_, err := tree.Insert(newSearchNode(mockMove{"alice", i}), parent)
		require.NoError(t, err)
	}

	// Count how many child sets each node appears in
	appearances := make([]int, tree.Len())
	for id := 0; id < tree.Len(); id++ {
		for _, child := range tree.Children(NodeID(id)) {
			appearances[child]++
			parent, ok := tree.Parent(child)
			require.True(t, ok)
			require.Equal(t, NodeID(id), parent, "Child should point back at the parent listing it")
		}
	}

	require.Equal(t, 0, appearances[tree.Root()], "Root should not be anyone's child")
	for id := 1; id < tree.Len(); id++ {
		require.Equal(t, 1, appearances[id], "Node %d should appear in exactly one child set", id)

		// Walking up always reaches the root, so there are no cycles
		node, steps := NodeID(id), 0
		for !tree.IsRoot(node) {
			node, _ = tree.Parent(node)
			steps++
			require.LessOrEqual(t, steps, tree.Len(), "Walk from %d should reach the root", id)
		}
	}
}
