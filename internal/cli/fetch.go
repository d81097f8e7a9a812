package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eatmyrust/advent/internal/infra/inputfetch"
	"github.com/eatmyrust/advent/internal/usecase"
)

func fetchCmd(g *globalFlags) *cobra.Command {
	var workspace string
	var force bool

	cmd := &cobra.Command{
		Use:   "fetch [year] <day>",
		Short: "Download a puzzle input into the workspace (needs ADVENT_SESSION)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace, g.debug)
			if err != nil {
				return err
			}
			defer ws.close()

			key, err := parseSelector(args, ws.cfg.Defaults.Year)
			if err != nil {
				return err
			}

			uc := usecase.NewFetchInput(inputfetch.New(ws.cfg.Fetch), ws.inputs, ws.inputs, ws.log)
			out, err := uc.Execute(cmd.Context(), key, force)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Skipped {
				fmt.Fprintf(w, "%s already present at %s (use --force to download again)\n", key, out.Path)
				return nil
			}
			fmt.Fprintf(w, "Saved %s (%d bytes) to %s\n", key, out.Bytes, out.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing input file")
	return cmd
}
