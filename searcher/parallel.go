package searcher

import (
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// fork returns a worker with its own tree, state and generator. Worker i is
// seeded with seed+i so parallel searches stay reproducible.
func (m *MCTS) fork(i int) *MCTS {
	seed := m.seed + uint64(i)
	return &MCTS{
		state:       m.state.Clone(),
		player:      m.player,
		exploration: m.exploration,
		maxScore:    m.maxScore,
		workers:     1,
		seed:        seed,
		rng:         rand.New(rand.NewSource(seed)),
		tree:        NewTree(newSearchNode(m.tree.Node(m.tree.Root()).Move)),
		metrics:     m.metrics,
	}
}

// iterateParallel splits iterations over the workers. Each worker only
// touches its own tree and state; the collector is shared.
func (m *MCTS) iterateParallel(iterations int) error {
	for len(m.forks) < m.workers-1 {
		m.forks = append(m.forks, m.fork(len(m.forks)+1))
	}
	searches := append([]*MCTS{m}, m.forks...)

	var g errgroup.Group
	for i, search := range searches {
		n := share(iterations, len(searches), i)
		g.Go(func() error {
			return search.iterate(n)
		})
	}
	return g.Wait()
}

func share(iterations, workers, i int) int {
	n := iterations / workers
	if i < iterations%workers {
		n++
	}
	return n
}

// mergeEdges adds the statistics of more into edges, matching moves by
// equality. Moves unknown to edges are appended in their order.
func mergeEdges(edges, more []Edge) []Edge {
	for _, edge := range more {
		merged := false
		for i := range edges {
			if edges[i].Move.Equal(edge.Move) {
				edges[i].Visits += edge.Visits
				edges[i].Value += edge.Value
				merged = true
				break
			}
		}
		if !merged {
			edges = append(edges, edge)
		}
	}
	return edges
}
