package experiments

import (
	"hanabi/searcher"
	"time"
)

type AgentConfig struct {
	ID          int
	Workers     int
	Iterations  int
	Exploration float64
	Seed        uint64
	Temperature float64 // Zero plays the evaluation agent
}

type MoveMetric struct {
	Step   int
	Player string
	searcher.SearchMetric
}

type GameMetric struct {
	FirstPlayer string
	Score       float64
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
	TotalMoves  int
	Truncated   bool // Stopped by MaxMoves before the end
}

type GameRecord struct {
	ID    int
	Agent int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
