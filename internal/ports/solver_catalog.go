package ports

import (
	"github.com/eatmyrust/advent/internal/domain"
	"github.com/eatmyrust/advent/internal/puzzle"
)

// SolverCatalog resolves a puzzle key to its registered day solver.
type SolverCatalog interface {
	Lookup(key domain.PuzzleKey) (puzzle.Entry, error)
	Entries() []puzzle.Entry
}
