package cli

import (
	"github.com/spf13/cobra"

	"github.com/eatmyrust/advent/internal/infra/fsworkspace"
	"github.com/eatmyrust/advent/internal/ui/tui"
	"github.com/eatmyrust/advent/internal/usecase"
)

func tuiCmd(g *globalFlags) *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Pick and solve puzzles interactively",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(workspace, g.debug)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func runTUI(workspace string, debug bool) error {
	ws, err := loadWorkspace(workspace, debug)
	if err != nil {
		return err
	}
	defer ws.close()

	deps := tui.Deps{
		Catalog: ws.catalog,
		Solver: usecase.NewSolvePuzzle(ws.catalog, ws.inputs,
			usecase.WithLogger(ws.log),
			usecase.WithAnswerStore(ws.store),
		),
		WorkspaceLocator:     newFinder(),
		WorkspaceInitializer: fsworkspace.NewInitializer(),
		Root:                 ws.root,
		WorkspaceFound:       ws.found,
		Logger:               ws.log,
		Debug:                ws.debug,
	}

	return tui.Run(deps)
}
