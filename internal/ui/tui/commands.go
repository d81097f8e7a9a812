package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eatmyrust/advent/internal/domain"
	"github.com/eatmyrust/advent/internal/usecase"
)

const solveTimeout = 5 * time.Minute

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		cleaned, err := usecase.NewInitWorkspace(deps.WorkspaceInitializer).Execute(root, false)
		if err != nil {
			return initWorkspaceDoneMsg{root: root, err: err}
		}
		return initWorkspaceDoneMsg{root: cleaned}
	}
}

func cmdSolve(deps Deps, key domain.PuzzleKey, save bool) tea.Cmd {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	return func() tea.Msg {
		if deps.Solver == nil {
			return solveDoneMsg{key: key, err: errors.New("Solver is nil")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), solveTimeout)
		defer cancel()

		log.Info("tui.solve", "puzzle", key.String(), "save", save, "debug", deps.Debug)

		res, id, err := deps.Solver.Execute(ctx, usecase.SolveRequest{Key: key, Save: save})
		if err != nil {
			log.Error("tui.solve.failed", "puzzle", key.String(), "kind", domain.KindOf(err), "err", err)
		} else if deps.Debug {
			log.Debug("tui.solve.ok",
				"puzzle", key.String(),
				"duration_ms", res.Duration().Milliseconds(),
				"saved_id", id,
			)
		}

		return solveDoneMsg{key: key, res: res, id: id, err: err}
	}
}
