package searcher

import (
	"errors"
	"fmt"
	"hanabi/game"
	"math"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

type Option func(m *MCTS)

// MCTS searches the next move of one player. The tree lives as long as the
// MCTS value; every call to RunSearch keeps growing it.
type MCTS struct {
	state       game.State
	player      string
	exploration float64
	maxScore    float64
	workers     int
	seed        uint64
	rng         *rand.Rand
	tree        *Tree
	forks       []*MCTS // Independent trees of root parallel workers
	metrics     Collector
	metric      SearchMetric
}

// Edge is the merged statistics of one root move.
type Edge struct {
	Move   game.Move
	Visits int
	Value  float64
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

// WithMaxScore sets the score used to normalize rollout results to [0, 1].
func WithMaxScore(score float64) Option {
	return func(m *MCTS) {
		if score > 0 {
			m.maxScore = score
		}
	}
}

// WithSeed makes expansions and rollouts reproducible.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
		m.rng = nil
	}
}

// WithRand draws expansions and rollouts of the first worker from rng.
func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithWorkers enables root parallelization over independent trees.
func WithWorkers(workers int) Option {
	return func(m *MCTS) {
		if workers > 0 {
			m.workers = workers
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewCollector()
	}
}

// New prepares a search for player on state. The root holds the move of the
// player acting right before, so that the rotation is the same at every depth.
func New(state game.State, player string, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		state:       state,
		player:      player,
		exploration: DefaultExploration,
		maxScore:    DefaultMaxScore,
		workers:     1,
		seed:        frand.Uint64n(math.MaxUint64),
		metrics:     NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(m.seed))
	}
	m.tree = NewTree(newSearchNode(entry{player: state.PrevPlayer(player)}))
	return m
}

func (m *MCTS) Tree() *Tree {
	return m.tree
}

// Metrics returns the metrics of the last RunSearch call.
func (m *MCTS) Metrics() SearchMetric {
	return m.metric
}

// RunSearch runs the given number of iterations and returns the root move
// with the most visits.
func (m *MCTS) RunSearch(iterations int) (game.Move, error) {
	m.metrics.Start(m.workers)
	var err error
	if m.workers > 1 {
		err = m.iterateParallel(iterations)
	} else {
		err = m.iterate(iterations)
	}
	m.metric = m.metrics.Complete()
	if err != nil {
		return nil, err
	}

	best, ok := bestEdge(m.Policy())
	if !ok {
		log.Warn().Msgf("search for %s finished with an empty root after %d iterations", m.player, iterations)
		return nil, ErrNoChildren
	}
	log.Debug().Msgf("search for %s picked %v with %d visits", m.player, best.Move, best.Visits)
	return best.Move, nil
}

// Policy returns the statistics of every root move in insertion order,
// summed over all workers.
func (m *MCTS) Policy() []Edge {
	edges := rootEdges(m.tree)
	for _, fork := range m.forks {
		edges = mergeEdges(edges, rootEdges(fork.tree))
	}
	return edges
}

func (m *MCTS) iterate(iterations int) error {
	for i := 0; i < iterations; i++ {
		if err := m.runIteration(); err != nil {
			if isStructural(err) {
				return fmt.Errorf("search aborted at iteration %d: %w", i, err)
			}
			log.Debug().Err(err).Msgf("iteration %d aborted", i)
			m.metrics.AddAborted()
			continue
		}
		m.metrics.AddIteration()
	}
	return nil
}

func isStructural(err error) bool {
	return errors.Is(err, ErrInvalidParent) || errors.Is(err, ErrEmptyChildSet)
}

func (m *MCTS) runIteration() error {
	state := m.state.Clone()

	selected, err := m.selects(state)
	if err != nil {
		return err
	}
	expanded, err := m.expand(selected, state)
	if err != nil {
		return err
	}
	score := m.simulate(expanded, state)
	m.backpropagate(expanded, score)
	return nil
}

// untried returns the legal moves of the player after id that no child of id
// represents yet, along with that player.
func (m *MCTS) untried(id NodeID, state game.State) ([]game.Move, string) {
	player := state.NextPlayer(m.tree.Node(id).Move.Player())
	children := m.tree.Children(id)

	var moves []game.Move
	for _, move := range state.ValidMoves(player) {
		tried := false
		for _, child := range children {
			if m.tree.Node(child).Move.Equal(move) {
				tried = true
				break
			}
		}
		if !tried {
			moves = append(moves, move)
		}
	}
	return moves, player
}

// selects descends through fully explored nodes until it reaches a leaf or a
// node with untried moves.
func (m *MCTS) selects(state game.State) (NodeID, error) {
	id := m.tree.Root()
	for !m.tree.IsLeaf(id) {
		untried, player := m.untried(id, state)
		if len(untried) > 0 {
			break
		}

		if err := state.ExitNode(player); err != nil {
			return id, fmt.Errorf("exiting node of %s: %w", player, err)
		}
		child, err := bestChild(m.tree, id, m.exploration)
		if err != nil {
			return id, err
		}
		move := m.tree.Node(child).Move
		if err := state.MakeMove(move); err != nil {
			return id, fmt.Errorf("selecting %v: %w", move, err)
		}
		if err := state.EnterNode(player); err != nil {
			return id, fmt.Errorf("entering node of %s: %w", player, err)
		}
		id = child
	}
	return id, nil
}

// expand adds one random untried move under id. Terminal nodes are revisited
// instead of expanded.
func (m *MCTS) expand(id NodeID, state game.State) (NodeID, error) {
	if ended, _ := state.CheckEnded(); ended {
		return id, nil
	}

	untried, _ := m.untried(id, state)
	if len(untried) == 0 { // Player cannot move, the rollout decides
		return id, nil
	}

	move := untried[m.rng.Intn(len(untried))]
	if err := state.MakeMove(move); err != nil {
		return id, fmt.Errorf("expanding %v: %w", move, err)
	}
	return m.tree.Insert(newSearchNode(move), id)
}

// simulate plays random moves in turn order from the player of id until the
// game ends or a player cannot move, and returns the reported score.
func (m *MCTS) simulate(id NodeID, state game.State) float64 {
	player := m.tree.Node(id).Move.Player()
	ended, score := state.CheckEnded()
	for !ended {
		player = state.NextPlayer(player)
		if !state.MakeRandomMove(player, m.rng) {
			break
		}
		ended, score = state.CheckEnded()
	}
	if !ended {
		_, score = state.CheckEnded()
	}
	m.metrics.AddPlayout(score, ended)
	return score
}

func (m *MCTS) backpropagate(id NodeID, score float64) {
	reward := score / m.maxScore
	for !m.tree.IsRoot(id) {
		m.tree.Node(id).update(reward)
		id, _ = m.tree.Parent(id)
	}
	// The entry move has no value of its own
	m.tree.Node(id).Visits++
}

func rootEdges(tree *Tree) []Edge {
	children := tree.Children(tree.Root())
	edges := make([]Edge, len(children))
	for i, child := range children {
		node := tree.Node(child)
		edges[i] = Edge{Move: node.Move, Visits: node.Visits, Value: node.Value}
	}
	return edges
}

// bestEdge returns the edge with the most visits, ties to the first one.
func bestEdge(edges []Edge) (Edge, bool) {
	if len(edges) == 0 {
		return Edge{}, false
	}
	best := edges[0]
	for _, edge := range edges[1:] {
		if edge.Visits > best.Visits {
			best = edge
		}
	}
	return best, true
}
