package game

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/rand"
)

var ErrInvalidMove = errors.New("invalid move")

// Model adapts a Table to the State the searcher works on.
//
// Entering a node re-determinizes the hand of the player that just moved, so
// that a player never searches with knowledge of their own cards. Exiting the
// node puts the saved hand back.
type Model struct {
	table          Table
	savedHands     map[string]Hand // Real hands of re-determinized players
	lastTurnPlayed map[string]bool
}

func NewModel(table Table) (*Model, error) {
	if err := table.Consistent(); err != nil {
		return nil, fmt.Errorf("inconsistent table: %w", err)
	}
	return &Model{
		table:          table,
		savedHands:     map[string]Hand{},
		lastTurnPlayed: map[string]bool{},
	}, nil
}

func (m *Model) Table() Table {
	return m.table
}

func (m *Model) Clone() State {
	return &Model{
		table:          m.table.Clone(),
		savedHands:     copyHands(m.savedHands),
		lastTurnPlayed: maps.Clone(m.lastTurnPlayed),
	}
}

func copyHands(hands map[string]Hand) map[string]Hand {
	copied := maps.Clone(hands)
	for player, hand := range copied {
		copied[player] = hand.Copy()
	}
	return copied
}

func (m *Model) EnterNode(player string) error {
	if player != m.table.RootPlayer() {
		m.savedHands[player] = m.table.Hand(player).Copy()
		m.table.RedeterminizeHand(player)
	}
	return m.table.Consistent()
}

func (m *Model) ExitNode(player string) error {
	if hand, ok := m.savedHands[player]; ok && player != m.table.RootPlayer() {
		m.table.RestoreHand(player, hand)
		delete(m.savedHands, player)
	}
	return m.table.Consistent()
}

func (m *Model) PrevPlayer(player string) string {
	return m.table.PrevPlayer(player)
}

func (m *Model) NextPlayer(player string) string {
	return m.table.NextPlayer(player)
}

func (m *Model) ValidMoves(player string) []Move {
	legal := m.table.LegalMoves(player)
	moves := make([]Move, len(legal))
	for i, move := range legal {
		moves[i] = move
	}
	return moves
}

func (m *Model) MakeMove(move Move) error {
	var gm GameMove
	switch mv := move.(type) {
	case GameMove:
		gm = mv
	case *GameMove:
		gm = *mv
	default:
		return fmt.Errorf("%w: unsupported move type %T", ErrInvalidMove, move)
	}

	if m.lastTurnPlayed[gm.Actor] {
		return fmt.Errorf("%w: %s already performed the last turn play", ErrInvalidMove, gm.Actor)
	}

	isLastMove := m.table.DeckSize() == 0

	var err error
	switch gm.Action {
	case PlayAction:
		err = m.table.PlayCard(gm.Actor, gm.CardIndex)
	case DiscardAction:
		err = m.table.DiscardCard(gm.Actor, gm.CardIndex)
	case HintAction:
		err = m.table.GiveHint(gm.Destination, gm.Hint, gm.HintValue)
	default:
		return fmt.Errorf("%w: unknown action type %d", ErrInvalidMove, gm.Action)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidMove, gm, err)
	}

	if isLastMove {
		m.lastTurnPlayed[gm.Actor] = true
	}
	return nil
}

func (m *Model) MakeRandomMove(player string, rng *rand.Rand) bool {
	moves := m.table.LegalMoves(player)
	if len(moves) == 0 {
		return false
	}
	return m.MakeMove(moves[rng.Intn(len(moves))]) == nil
}

func (m *Model) CheckEnded() (bool, float64) {
	return m.table.Ended()
}
