package game

// Table is the rules engine the Model drives: the concrete Hanabi table with
// every hand, the deck and the score. It is supplied by the caller.
type Table interface {
	Clone() Table
	// RootPlayer is the player the search runs for
	RootPlayer() string
	PrevPlayer(player string) string
	NextPlayer(player string) string

	Hand(player string) Hand
	// RedeterminizeHand samples a new hand for player that is consistent
	// with everything player was told about it
	RedeterminizeHand(player string)
	RestoreHand(player string, hand Hand)
	DeckSize() int

	LegalMoves(player string) []GameMove
	PlayCard(player string, card int) error
	DiscardCard(player string, card int) error
	GiveHint(destination string, hint HintType, value int) error

	// Ended reports whether the game is over and its score
	Ended() (bool, float64)
	// Consistent returns an error when hands, deck and discards disagree
	Consistent() error
}
