package game

// Size is the side of the square grid. Algorithms never assume a literal 4.
const Size = 4

// DefaultHandCount is how many pieces of each kind a player starts with.
const DefaultHandCount = 1

// Evaluate scores the state from the given color's perspective. Higher is better for that color.
type Evaluate func(*GameState, Color) float64
