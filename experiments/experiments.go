package experiments

import (
	"errors"
	"fmt"
	"hanabi/agent"
	"hanabi/game"
	"hanabi/searcher"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

const MaxMoves = 200 // Per game, stops adapters that never end

// Setup describes the games played by every agent of an experiment.
type Setup struct {
	Name     string
	Dir      string // Root of the output directories
	Games    int    // Per agent
	First    string // Player making the first move
	NewState func(id int) game.State
}

// Run plays the games of setup with every config and stores the configs,
// game records and move records.
func Run(setup Setup, configs []AgentConfig) error {
	count := 0
	gameRecords := []GameRecord{}
	moveRecords := []MoveRecord{}

	log.Info().Msgf("starting %s experiment...", setup.Name)

	for ci, config := range configs {
		log.Info().Msgf("starting agent %d of %d with config=%+v...", ci+1, len(configs), config)

		a := createAgent(config)
		for i := 0; i < setup.Games; i++ {
			count++
			gameMetric, moveMetrics, err := RunGame(a, setup.NewState(count), setup.First)
			if err != nil {
				return fmt.Errorf("game %d of agent %d: %w", i+1, config.ID, err)
			}
			gameRecords = append(gameRecords, GameRecord{
				ID:         count,
				Agent:      config.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed agent %d game %d of %d with score %.0f", config.ID, i+1, setup.Games, gameMetric.Score)
		}
	}

	log.Info().Msgf("completed %s experiment", setup.Name)

	writer, err := NewWriter(setup.Dir, setup.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored %d games and %d moves in %s", len(gameRecords), len(moveRecords), writer.Dir())
	return nil
}

// RunGame lets a play every turn of state starting with first. The game also
// stops when the player to move has no move left.
func RunGame(a agent.Agent, state game.State, first string) (GameMetric, []MoveMetric, error) {
	metric := GameMetric{FirstPlayer: first, StartTime: time.Now()}
	moves := []MoveMetric{}

	player := first
	for step := 0; step < MaxMoves; step++ {
		if ended, _ := state.CheckEnded(); ended {
			break
		}
		move, searchMetric, err := a.FindMove(state, player)
		if errors.Is(err, searcher.ErrNoChildren) {
			log.Warn().Msgf("%s has no move at step %d, stopping the game", player, step)
			break
		}
		if err != nil {
			return metric, moves, fmt.Errorf("searching step %d: %w", step, err)
		}
		if err := state.MakeMove(move); err != nil {
			return metric, moves, fmt.Errorf("playing %v at step %d: %w", move, step, err)
		}
		moves = append(moves, MoveMetric{Step: step, Player: player, SearchMetric: searchMetric})
		player = state.NextPlayer(player)
	}

	ended, score := state.CheckEnded()
	if !ended && len(moves) == MaxMoves {
		log.Warn().Msgf("game cut short after %d moves with score %.0f", MaxMoves, score)
		metric.Truncated = true
	}
	metric.Score = score
	metric.EndTime = time.Now()
	metric.Duration = metric.EndTime.Sub(metric.StartTime)
	metric.TotalMoves = len(moves)
	return metric, moves, nil
}

func createAgent(config AgentConfig) agent.Agent {
	options := []searcher.Option{searcher.WithMetrics()}
	if config.Workers > 0 {
		options = append(options, searcher.WithWorkers(config.Workers))
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}
	if config.Seed > 0 {
		options = append(options, searcher.WithSeed(config.Seed))
	}

	agentOptions := []agent.Option{agent.WithIterations(config.Iterations), agent.WithSearchOptions(options...)}
	if config.Temperature > 0 {
		seed := config.Seed
		if seed == 0 {
			seed = frand.Uint64n(math.MaxUint64)
		}
		return agent.NewTrainingAgent(config.Temperature, rand.New(rand.NewSource(seed)), agentOptions...)
	}
	return agent.NewEvaluationAgent(agentOptions...)
}
