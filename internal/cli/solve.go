package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eatmyrust/advent/internal/domain"
	"github.com/eatmyrust/advent/internal/usecase"
)

type solveOptions struct {
	workspace string
	format    string
	save      bool
}

func runSolve(cmd *cobra.Command, args []string, opts solveOptions, g *globalFlags) error {
	if err := checkFormat(opts.format); err != nil {
		return err
	}

	ws, err := loadWorkspace(opts.workspace, g.debug)
	if err != nil {
		return err
	}
	defer ws.close()

	key, input, err := parseInvocation(args, ws.cfg.Defaults.Year)
	if err != nil {
		return err
	}

	solveOpts := []usecase.SolveOption{usecase.WithLogger(ws.log)}
	if opts.save {
		solveOpts = append(solveOpts, usecase.WithAnswerStore(ws.store))
	}
	uc := usecase.NewSolvePuzzle(ws.catalog, ws.inputs, solveOpts...)

	res, id, err := uc.Execute(cmd.Context(), usecase.SolveRequest{
		Key:       key,
		InputPath: input,
		Save:      opts.save,
	})
	if err != nil {
		return err
	}

	if err := printSolve(cmd.OutOrStdout(), res, id, opts.format); err != nil {
		return err
	}
	if id != "" && opts.format != "json" {
		fmt.Fprintf(cmd.ErrOrStderr(), "saved run %s\n", id)
	}
	return nil
}

func checkFormat(format string) error {
	switch format {
	case "pretty", "json", "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

type solveJSON struct {
	Year       int    `json:"year"`
	Day        int    `json:"day"`
	Title      string `json:"title"`
	Input      string `json:"input"`
	PartOne    string `json:"part_one"`
	PartTwo    string `json:"part_two"`
	DurationMS int64  `json:"duration_ms"`
	RunID      string `json:"run_id,omitempty"`
}

func printSolve(w io.Writer, res domain.SolveResult, runID string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(solveJSON{
			Year:       res.Key.Year,
			Day:        res.Key.Day,
			Title:      res.Title,
			Input:      res.InputPath,
			PartOne:    res.Answers.PartOne,
			PartTwo:    res.Answers.PartTwo,
			DurationMS: res.Duration().Milliseconds(),
			RunID:      runID,
		})
	case "pretty", "":
		fmt.Fprintf(w, "Part 1: %s\n", res.Answers.PartOne)
		fmt.Fprintf(w, "Part 2: %s\n", res.Answers.PartTwo)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
