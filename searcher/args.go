package searcher

// Hyperparameters for search

const DefaultDepth = 3 // Plies searched by Hard, including the root move

const MaxDepth = 6 // Branching is ~50 per ply; deeper searches take minutes
