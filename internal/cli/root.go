package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Execute runs the root command and exits non-zero on failure. Interrupts
// cancel in-flight solves and downloads.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

type globalFlags struct {
	debug bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	var opts solveOptions

	cmd := &cobra.Command{
		Use:   "advent [year] <day> [input]",
		Short: "advent — Advent of Code solutions",
		Long: "Solve an Advent of Code puzzle and print both answers.\n\n" +
			"With no arguments the interactive picker starts. A single argument is a\n" +
			"day of the workspace default year. The input defaults to the workspace\n" +
			"input pattern; pass - to read standard input.",
		Args:         cobra.MaximumNArgs(3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runTUI(opts.workspace, g.debug)
			}
			return runSolve(cmd, args, opts, g)
		},
	}

	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging to .advent/logs/advent.log")

	cmd.Flags().StringVarP(&opts.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&opts.format, "format", "pretty", "Output format: pretty|json")
	cmd.Flags().BoolVar(&opts.save, "save", false, "Save the result under runs/")

	cmd.AddCommand(
		listCmd(g),
		checkCmd(g),
		fetchCmd(g),
		initCmd(),
		tuiCmd(g),
		watchCmd(g),
		versionCmd(),
	)
	return cmd
}
