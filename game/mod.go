package game

import "golang.org/x/exp/rand"

// Move is a single action of one player. Moves must be comparable through
// Equal so the searcher can tell which moves already have a node.
type Move interface {
	Player() string
	Equal(other Move) bool
}

// Determinizer hides and restores a player's private information around a
// determinized move application. While selecting, ExitNode(p) is called before
// a move of p is chosen and applied, EnterNode(p) right after it was applied.
type Determinizer interface {
	ExitNode(player string) error
	EnterNode(player string) error
}

// State is a mutable snapshot of the full game, hidden information included.
// The searcher clones it once per iteration and only ever mutates clones.
type State interface {
	Determinizer
	// Clone returns a copy whose mutations never affect the receiver
	Clone() State
	PrevPlayer(player string) string
	NextPlayer(player string) string
	// ValidMoves returns all legal moves of player, possibly none
	ValidMoves(player string) []Move
	MakeMove(move Move) error
	// MakeRandomMove plays a random legal move of player, false if there was none
	MakeRandomMove(player string, rng *rand.Rand) bool
	// CheckEnded reports whether the game is over and the score to report if so
	CheckEnded() (ended bool, score float64)
}
