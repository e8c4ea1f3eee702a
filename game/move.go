package game

import "fmt"

// GameMove represents a move in the game.
//
// A play or discard uses CardIndex, a hint uses Destination, Hint and HintValue.
type GameMove struct {
	Actor       string
	Action      ActionType
	CardIndex   int
	Destination string
	Hint        HintType
	HintValue   int
}

func Play(player string, card int) GameMove {
	return GameMove{Actor: player, Action: PlayAction, CardIndex: card}
}

func Discard(player string, card int) GameMove {
	return GameMove{Actor: player, Action: DiscardAction, CardIndex: card}
}

func Hint(player, destination string, hint HintType, value int) GameMove {
	return GameMove{Actor: player, Action: HintAction, Destination: destination, Hint: hint, HintValue: value}
}

func (gm GameMove) Player() string {
	return gm.Actor
}

func (gm GameMove) Equal(other Move) bool {
	switch o := other.(type) {
	case GameMove:
		return gm == o
	case *GameMove:
		return o != nil && gm == *o
	default:
		return false
	}
}

func (gm GameMove) String() string {
	if gm.Action == HintAction {
		return fmt.Sprintf("%s hints %s %s %d", gm.Actor, gm.Destination, gm.Hint, gm.HintValue)
	}
	return fmt.Sprintf("%s %ss card %d", gm.Actor, gm.Action, gm.CardIndex)
}
