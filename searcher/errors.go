package searcher

import "errors"

var (
	// ErrInvalidParent is returned when inserting under a node that is not part of the tree
	ErrInvalidParent = errors.New("parent does not belong to the tree")
	// ErrEmptyChildSet is returned when selecting among the children of a node that has none
	ErrEmptyChildSet = errors.New("node has no children to select from")
	// ErrNoChildren is returned when a search ends without a single expanded root move
	ErrNoChildren = errors.New("root has no children")
)
