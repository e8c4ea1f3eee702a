package searcher

import "math"

// ucb1 scores child relative to parent:
// value/visits + c * sqrt(ln(parentVisits)/visits)
func ucb1(child, parent *SearchNode, c float64) float64 {
	// Never read the mean of an unvisited node
	if child.Visits == 0 {
		return math.Inf(1)
	}

	exploitation := child.Value / float64(child.Visits)
	exploration := 0.0
	if parent.Visits > 0 {
		exploration = math.Sqrt(math.Log(float64(parent.Visits)) / float64(child.Visits))
	}
	return exploitation + c*exploration
}

// bestChild returns the child of id with the highest UCB1 score. Ties go to
// the child inserted first.
func bestChild(tree *Tree, id NodeID, c float64) (NodeID, error) {
	children := tree.Children(id)
	if len(children) == 0 {
		return noParent, ErrEmptyChildSet
	}

	parent := tree.Node(id)
	best := children[0]
	maxScore := ucb1(tree.Node(best), parent, c)
	for _, child := range children[1:] {
		if score := ucb1(tree.Node(child), parent, c); score > maxScore {
			maxScore = score
			best = child
		}
	}
	return best, nil
}
