package agent

import (
	"hanabi/game"
	"hanabi/searcher"
)

type Agent interface {
	// FindMove returns the move of player on state and the metrics (if collected) of the search behind it
	FindMove(state game.State, player string) (game.Move, searcher.SearchMetric, error)
}

type Option func(c *config)

type config struct {
	iterations int
	options    []searcher.Option
}

func newConfig(options []Option) config {
	c := config{iterations: searcher.DefaultIterations}
	for _, option := range options {
		option(&c)
	}
	return c
}

func WithIterations(iterations int) Option {
	return func(c *config) {
		if iterations > 0 {
			c.iterations = iterations
		}
	}
}

// WithSearchOptions configures the search run for every decision.
func WithSearchOptions(options ...searcher.Option) Option {
	return func(c *config) {
		c.options = append(c.options, options...)
	}
}

// search builds a fresh tree for the decision, nothing is kept between moves.
func (c config) search(state game.State, player string) (*searcher.MCTS, game.Move, error) {
	mcts := searcher.New(state, player, c.options...)
	move, err := mcts.RunSearch(c.iterations)
	return mcts, move, err
}
