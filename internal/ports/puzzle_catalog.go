package ports

import "github.com/aalvaropc/aoc/internal/puzzle"

// PuzzleCatalog resolves day numbers to solvers.
type PuzzleCatalog interface {
	Lookup(day int) (puzzle.Solver, error)
	Days() []int
}
