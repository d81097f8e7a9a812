package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/eatmyrust/advent/internal/domain"
	"github.com/eatmyrust/advent/internal/usecase"
)

func checkCmd(g *globalFlags) *cobra.Command {
	var workspace string
	var file string
	var jobs int

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Solve every puzzle in the answers file and compare the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace, g.debug)
			if err != nil {
				return err
			}
			defer ws.close()

			solve := usecase.NewSolvePuzzle(ws.catalog, ws.inputs, usecase.WithLogger(ws.log))
			uc := usecase.NewCheckAnswers(solve, ws.answers,
				usecase.WithJobs(jobs),
				usecase.WithCheckLogger(ws.log),
			)

			report, err := uc.Execute(cmd.Context(), ws.answersPath(file))
			if err != nil {
				return err
			}

			printReport(cmd.OutOrStdout(), report)

			if failed := report.Failed(); failed > 0 {
				return fmt.Errorf("%d of %d puzzle(s) failed: %w", failed, len(report.Results), domain.ErrCheckFailed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Answers file (defaults to paths.answers_file)")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Puzzles solved concurrently (defaults to the CPU count)")
	return cmd
}

func printReport(w io.Writer, report domain.CheckReport) {
	for _, r := range report.Results {
		status := "PASS"
		if !r.Passed() {
			status = "FAIL"
		}

		title := r.Title
		if title == "" {
			title = "-"
		}
		fmt.Fprintf(w, "[%s] %s  %s\n", status, r.Key, title)

		if r.Error != nil {
			fmt.Fprintf(w, "  error: %s (%s)\n", r.Error.Message, r.Error.Kind)
			continue
		}
		for _, p := range r.Parts {
			if p.Passed {
				fmt.Fprintf(w, "  part %d: %s\n", p.Part, p.Got)
				continue
			}
			fmt.Fprintf(w, "  part %d: got %s, want %s\n", p.Part, p.Got, p.Want)
		}
	}

	total := len(report.Results)
	fmt.Fprintf(w, "\n%d checked, %d passed, %d failed in %s\n",
		total, total-report.Failed(), report.Failed(),
		report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond),
	)
}
