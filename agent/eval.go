package agent

import (
	"hanabi/game"
	"hanabi/searcher"
)

type evaluationAgent struct {
	config
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
func NewEvaluationAgent(options ...Option) Agent {
	return evaluationAgent{config: newConfig(options)}
}

func (a evaluationAgent) FindMove(state game.State, player string) (game.Move, searcher.SearchMetric, error) {
	mcts, move, err := a.search(state, player)
	if err != nil {
		return nil, mcts.Metrics(), err
	}
	return move, mcts.Metrics(), nil
}
