package game

// ActionType represents the type of action a player can perform.
type ActionType int

const (
	PlayAction ActionType = iota
	DiscardAction
	HintAction
)

func (a ActionType) String() string {
	switch a {
	case PlayAction:
		return "play"
	case DiscardAction:
		return "discard"
	case HintAction:
		return "hint"
	default:
		return "unknown"
	}
}

// HintType tells which card attribute a hint reveals.
type HintType int

const (
	NoHint HintType = iota
	ColorHint
	RankHint
)

func (h HintType) String() string {
	switch h {
	case ColorHint:
		return "color"
	case RankHint:
		return "value"
	default:
		return "none"
	}
}
