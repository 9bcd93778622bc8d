package meta

import "time"

// DefaultSize is the side length of the board.
const DefaultSize = 5

// DefaultDepth is the search depth of the minimax family.
const DefaultDepth = 3

// DefaultSimulations is the number of random playouts per rollout leaf.
const DefaultSimulations = 32

// DefaultGoroutines is the number of goroutines sharing the rollouts of one leaf.
const DefaultGoroutines = 4

// DefaultIterations is the number of episodes of a tree search.
const DefaultIterations = 2000

// MaxDepth caps the recursion depth of every search, whatever the configured depth.
const MaxDepth = 32

// MaxTurns stops a game that has not ended after this many moves.
const MaxTurns = 26 * 26

// TimeBudget is the default per-move budget of experiment agents.
const TimeBudget = 50 * time.Millisecond
