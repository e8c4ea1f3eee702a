package agent

import (
	"hanabi/game"
	"hanabi/searcher"
	"math"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	config
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns a new agent for self-play. Moves are sampled from
// the root visits raised to 1/temperature; a non-positive temperature plays
// the most visited move.
func NewTrainingAgent(temperature float64, rng *rand.Rand, options ...Option) Agent {
	return trainingAgent{
		config:      newConfig(options),
		temperature: temperature,
		rng:         rng,
	}
}

func (a trainingAgent) FindMove(state game.State, player string) (game.Move, searcher.SearchMetric, error) {
	mcts, best, err := a.search(state, player)
	if err != nil {
		return nil, mcts.Metrics(), err
	}
	if a.temperature <= 0 {
		return best, mcts.Metrics(), nil
	}

	policy := mcts.Policy()
	move := sample(policy, adjustTemperature(policy, a.temperature), a.rng)
	log.Debug().Msgf("sampled %v for %s out of %d moves", move, player, len(policy))
	return move, mcts.Metrics(), nil
}

// adjustTemperature returns the probability of every edge, in edge order.
func adjustTemperature(policy []searcher.Edge, temperature float64) []float64 {
	exponent := 1.0 / temperature
	sum := 0.0
	probs := make([]float64, len(policy))
	for i, edge := range policy {
		probs[i] = math.Pow(float64(edge.Visits), exponent)
		sum += probs[i]
	}
	for i := range probs {
		if sum > 0 {
			probs[i] /= sum
		} else {
			probs[i] = 1.0 / float64(len(probs))
		}
	}
	return probs
}

func sample(policy []searcher.Edge, probs []float64, rng *rand.Rand) game.Move {
	if len(policy) == 0 {
		return nil
	}
	sampled := rng.Float64()
	cumulative := 0.0
	for i, prob := range probs {
		cumulative += prob
		if sampled < cumulative {
			return policy[i].Move
		}
	}
	return policy[len(policy)-1].Move // Rounding errors
}
