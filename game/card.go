package game

type Color int

const (
	Red Color = iota
	Yellow
	Green
	Blue
	White
)

// Card is a card in a hand together with what its owner was told about it.
type Card struct {
	Color      Color
	Rank       int // 1 to 5
	ColorKnown bool
	RankKnown  bool
}

type Hand []Card

func (h Hand) Copy() Hand {
	if h == nil {
		return nil
	}
	c := make(Hand, len(h))
	copy(c, h)
	return c
}
