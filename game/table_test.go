package game

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
)

// fakeTable is a minimal rules engine: every legal move is listed up front and
// playing one only records it.
type fakeTable struct {
	players      []string
	root         string
	hands        map[string]Hand
	deck         int
	legal        map[string][]GameMove
	played       []GameMove
	hints        int
	ended        bool
	score        float64
	inconsistent bool
	rejectCard   int // PlayCard fails for this index when set
}

func newFakeTable() *fakeTable {
	return &fakeTable{
		players: []string{"alice", "bob", "carol"},
		root:    "alice",
		hands: map[string]Hand{
			"alice": {{Color: Red, Rank: 1}, {Color: Blue, Rank: 2}},
			"bob":   {{Color: Green, Rank: 3}, {Color: White, Rank: 4}},
			"carol": {{Color: Yellow, Rank: 5}, {Color: Red, Rank: 2}},
		},
		deck: 10,
		legal: map[string][]GameMove{
			"alice": {Play("alice", 0), Discard("alice", 1)},
			"bob":   {Play("bob", 0), Hint("bob", "carol", RankHint, 5)},
			"carol": {Discard("carol", 0)},
		},
		rejectCard: -1,
	}
}

func (f *fakeTable) Clone() Table {
	c := *f
	c.hands = make(map[string]Hand, len(f.hands))
	for p, h := range f.hands {
		c.hands[p] = h.Copy()
	}
	c.legal = maps.Clone(f.legal)
	c.played = append([]GameMove{}, f.played...)
	return &c
}

func (f *fakeTable) RootPlayer() string { return f.root }

func (f *fakeTable) index(player string) int {
	for i, p := range f.players {
		if p == player {
			return i
		}
	}
	return -1
}

func (f *fakeTable) PrevPlayer(player string) string {
	n := len(f.players)
	return f.players[(f.index(player)+n-1)%n]
}

func (f *fakeTable) NextPlayer(player string) string {
	return f.players[(f.index(player)+1)%len(f.players)]
}

func (f *fakeTable) Hand(player string) Hand { return f.hands[player] }

// RedeterminizeHand swaps the first two cards, enough to observe a resample.
func (f *fakeTable) RedeterminizeHand(player string) {
	h := f.hands[player]
	if len(h) > 1 {
		h[0], h[1] = h[1], h[0]
	}
}

func (f *fakeTable) RestoreHand(player string, hand Hand) { f.hands[player] = hand }

func (f *fakeTable) DeckSize() int { return f.deck }

func (f *fakeTable) LegalMoves(player string) []GameMove { return f.legal[player] }

func (f *fakeTable) PlayCard(player string, card int) error {
	if card == f.rejectCard {
		return fmt.Errorf("card %d cannot be played", card)
	}
	f.played = append(f.played, Play(player, card))
	f.draw()
	return nil
}

func (f *fakeTable) DiscardCard(player string, card int) error {
	f.played = append(f.played, Discard(player, card))
	f.draw()
	return nil
}

func (f *fakeTable) GiveHint(destination string, hint HintType, value int) error {
	f.hints++
	f.played = append(f.played, GameMove{Action: HintAction, Destination: destination, Hint: hint, HintValue: value})
	return nil
}

func (f *fakeTable) draw() {
	if f.deck > 0 {
		f.deck--
	}
}

func (f *fakeTable) Ended() (bool, float64) { return f.ended, f.score }

func (f *fakeTable) Consistent() error {
	if f.inconsistent {
		return errors.New("hands do not match the deck")
	}
	return nil
}
