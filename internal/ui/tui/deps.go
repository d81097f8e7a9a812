package tui

import (
	"context"
	"log/slog"

	"github.com/eatmyrust/advent/internal/domain"
	"github.com/eatmyrust/advent/internal/ports"
	"github.com/eatmyrust/advent/internal/usecase"
)

// PuzzleSolver is satisfied by *usecase.SolvePuzzle.
type PuzzleSolver interface {
	Execute(ctx context.Context, req usecase.SolveRequest) (domain.SolveResult, string, error)
}

type Deps struct {
	Catalog ports.SolverCatalog
	Solver  PuzzleSolver

	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	// Root is where the picker starts; WorkspaceFound reports whether it
	// holds an advent.yaml.
	Root           string
	WorkspaceFound bool

	Logger *slog.Logger
	Debug  bool
}
