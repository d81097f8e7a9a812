package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/eatmyrust/advent/internal/infra/inputfile"
	"github.com/eatmyrust/advent/internal/infra/inputwatch"
	"github.com/eatmyrust/advent/internal/usecase"
)

func watchCmd(g *globalFlags) *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "watch [year] <day> [input]",
		Short: "Solve a puzzle again every time its input file changes",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace, g.debug)
			if err != nil {
				return err
			}
			defer ws.close()

			key, input, err := parseInvocation(args, ws.cfg.Defaults.Year)
			if err != nil {
				return err
			}
			if input == inputfile.StdinPath {
				return errors.New("cannot watch standard input")
			}
			if input == "" {
				if input, err = ws.inputs.DefaultPath(key); err != nil {
					return err
				}
			}

			w, err := inputwatch.New(input, inputwatch.WithLogger(ws.log))
			if err != nil {
				return err
			}
			defer w.Close()

			uc := usecase.NewSolvePuzzle(ws.catalog, ws.inputs, usecase.WithLogger(ws.log))
			solve := func() error {
				res, _, err := uc.Execute(cmd.Context(), usecase.SolveRequest{Key: key, InputPath: w.Path()})
				if err != nil {
					return err
				}
				return printSolve(cmd.OutOrStdout(), res, "", "pretty")
			}

			return watchLoop(cmd.Context(), cmd.ErrOrStderr(), w.Changes(cmd.Context()), solve)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

// watchLoop solves once and then again after every change. Solve errors are
// reported and watching continues; it returns when ctx is done or changes is
// closed.
func watchLoop(ctx context.Context, errOut io.Writer, changes <-chan struct{}, solve func() error) error {
	report := func() {
		if err := solve(); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
	}

	report()
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			fmt.Fprintf(errOut, "--- input changed at %s\n", time.Now().Format(time.TimeOnly))
			report()
		}
	}
}
