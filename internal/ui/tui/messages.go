package tui

import "github.com/eatmyrust/advent/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type solveDoneMsg struct {
	key domain.PuzzleKey
	res domain.SolveResult
	id  string
	err error
}
