package cli

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eatmyrust/advent/internal/domain"
	"github.com/eatmyrust/advent/internal/puzzle"
)

// lastRunFunc looks up the most recent saved run for a puzzle.
type lastRunFunc func(domain.PuzzleKey) (domain.RunArtifact, bool, error)

func listCmd(g *globalFlags) *cobra.Command {
	var workspace string
	var year int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the puzzles that have a solution, with their last saved answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace, g.debug)
			if err != nil {
				return err
			}
			defer ws.close()

			if err := checkYear(ws.catalog.Years(), year); err != nil {
				return err
			}
			var last lastRunFunc
			if ws.found {
				last = ws.store.Latest
			}
			printEntries(cmd.OutOrStdout(), ws.catalog.Entries(), year, last)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().IntVar(&year, "year", 0, "Only list puzzles of this year")
	return cmd
}

// checkYear accepts 0 (no filter) or a year with registered puzzles.
func checkYear(years []int, year int) error {
	if year == 0 || slices.Contains(years, year) {
		return nil
	}
	have := make([]string, len(years))
	for i, y := range years {
		have[i] = strconv.Itoa(y)
	}
	return &domain.OpError{
		Op:   "cli.list",
		Kind: domain.KindUnknownPuzzle,
		Err:  fmt.Errorf("%w: no puzzles for %d (available: %s)", domain.ErrUnknownPuzzle, year, strings.Join(have, ", ")),
	}
}

func printEntries(w io.Writer, entries []puzzle.Entry, year int, last lastRunFunc) {
	current := 0
	for _, e := range entries {
		if year != 0 && e.Key.Year != year {
			continue
		}
		if e.Key.Year != current {
			if current != 0 {
				fmt.Fprintln(w)
			}
			current = e.Key.Year
			fmt.Fprintf(w, "%d\n", current)
		}
		fmt.Fprintf(w, "  day %02d  %s", e.Key.Day, e.Title)
		if last != nil {
			if run, ok, err := last(e.Key); err == nil && ok {
				a := run.Result.Answers
				fmt.Fprintf(w, "  (last: %s / %s)", a.PartOne, a.PartTwo)
			}
		}
		fmt.Fprintln(w)
	}
	if current == 0 {
		fmt.Fprintln(w, "(no puzzles registered)")
	}
}
