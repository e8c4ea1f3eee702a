package searcher

// Hyperparameters for MCTS

const DefaultIterations = 50

const DefaultExploration = 0.1 // UCB1 exploration constant

// Highest score of a Hanabi game, used to map rollout scores to [0, 1]
const DefaultMaxScore = 25.0
