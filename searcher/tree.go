package searcher

import "fmt"

// NodeID is a stable handle to a node of a Tree.
type NodeID int

const noParent NodeID = -1

type slot struct {
	node     SearchNode
	parent   NodeID
	children []NodeID
}

// Tree is an append-only arena of search nodes. Nodes are never removed or
// re-parented; handles stay valid for the lifetime of the tree.
type Tree struct {
	slots []slot
}

func NewTree(root SearchNode) *Tree {
	return &Tree{slots: []slot{{node: root, parent: noParent}}}
}

func (t *Tree) Root() NodeID {
	return 0
}

func (t *Tree) Len() int {
	return len(t.slots)
}

func (t *Tree) contains(id NodeID) bool {
	return id >= 0 && int(id) < len(t.slots)
}

// Node returns the statistics of id, nil for a handle of another tree.
func (t *Tree) Node(id NodeID) *SearchNode {
	if !t.contains(id) {
		return nil
	}
	return &t.slots[id].node
}

// Children returns the direct children of id in insertion order.
func (t *Tree) Children(id NodeID) []NodeID {
	if !t.contains(id) {
		return nil
	}
	return t.slots[id].children
}

// Parent returns the parent of id, false for the root.
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	if !t.contains(id) || t.slots[id].parent == noParent {
		return noParent, false
	}
	return t.slots[id].parent, true
}

// Insert appends node as the last child of parent. Handles are only checked
// against the bounds of this tree, so a handle of another tree that falls in
// range is accepted as one of this tree's nodes.
func (t *Tree) Insert(node SearchNode, parent NodeID) (NodeID, error) {
	if !t.contains(parent) {
		return noParent, fmt.Errorf("%w: %d", ErrInvalidParent, parent)
	}
	id := NodeID(len(t.slots))
	t.slots = append(t.slots, slot{node: node, parent: parent})
	t.slots[parent].children = append(t.slots[parent].children, id)
	return id, nil
}

func (t *Tree) IsLeaf(id NodeID) bool {
	return len(t.Children(id)) == 0
}

func (t *Tree) IsRoot(id NodeID) bool {
	_, ok := t.Parent(id)
	return t.contains(id) && !ok
}
