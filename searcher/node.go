package searcher

import (
	"fmt"
	"hanabi/game"
)

// SearchNode holds the statistics of one candidate move.
type SearchNode struct {
	Move   game.Move
	Value  float64 // Sum of normalized rollout scores
	Visits int
}

func newSearchNode(move game.Move) SearchNode {
	return SearchNode{Move: move}
}

// Mean returns the average value, false before the first visit.
func (n *SearchNode) Mean() (float64, bool) {
	if n.Visits == 0 {
		return 0, false
	}
	return n.Value / float64(n.Visits), true
}

func (n *SearchNode) update(reward float64) {
	n.Visits++
	n.Value += reward
}

// entry stands for the move made right before the searching player's turn.
// It only anchors the player rotation at the root and is never played.
type entry struct {
	player string
}

func (e entry) Player() string {
	return e.player
}

func (e entry) Equal(other game.Move) bool {
	o, ok := other.(entry)
	return ok && o == e
}

func (e entry) String() string {
	return fmt.Sprintf("entry after %s", e.player)
}
