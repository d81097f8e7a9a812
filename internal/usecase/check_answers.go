package usecase

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/eatmyrust/advent/internal/domain"
	"github.com/eatmyrust/advent/internal/ports"
	"github.com/eatmyrust/advent/internal/puzzle"
	"github.com/eatmyrust/advent/internal/usecase/verify"
)

type CheckAnswers struct {
	solve        *SolvePuzzle
	expectations ports.ExpectationLoader
	jobs         int
	log          *slog.Logger
	now          func() time.Time
}

type CheckOption func(*CheckAnswers)

// WithJobs bounds how many puzzles are solved at once. Values below 1 are
// ignored.
func WithJobs(n int) CheckOption {
	return func(uc *CheckAnswers) {
		if n > 0 {
			uc.jobs = n
		}
	}
}

func WithCheckLogger(l *slog.Logger) CheckOption {
	return func(uc *CheckAnswers) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewCheckAnswers(solve *SolvePuzzle, el ports.ExpectationLoader, opts ...CheckOption) *CheckAnswers {
	uc := &CheckAnswers{
		solve:        solve,
		expectations: el,
		jobs:         runtime.NumCPU(),
		log:          discardLogger(),
		now:          utcNow,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute solves every expectation in the answers file and compares the
// results. A failing puzzle is recorded in the report, not returned; the
// error is reserved for loading failures and cancellation.
func (uc *CheckAnswers) Execute(ctx context.Context, answersPath string) (domain.CheckReport, error) {
	report := domain.CheckReport{Source: answersPath, StartedAt: uc.now()}

	exps, err := uc.expectations.LoadExpectations(answersPath)
	if err != nil {
		report.FinishedAt = uc.now()
		return report, err
	}

	results := make([]domain.CheckResult, len(exps))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.jobs)

	for i, exp := range exps {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = uc.checkOne(gctx, exp)
			return nil
		})
	}

	err = g.Wait()
	report.Results = results
	report.FinishedAt = uc.now()
	if err != nil {
		return report, err
	}

	uc.log.Info("check.done",
		"source", answersPath,
		"total", len(results),
		"failed", report.Failed(),
	)
	return report, nil
}

func (uc *CheckAnswers) checkOne(ctx context.Context, exp domain.Expectation) domain.CheckResult {
	res, _, err := uc.solve.Execute(ctx, SolveRequest{
		Key:       exp.Key,
		InputPath: exp.InputPath,
		Parts:     expectedParts(exp),
	})

	out := domain.CheckResult{
		Key:       exp.Key,
		Title:     res.Title,
		InputPath: res.InputPath,
		Error:     domain.NewRunError(err),
	}
	if out.InputPath == "" {
		out.InputPath = exp.InputPath
	}
	if err != nil {
		uc.log.Warn("check.failed", "puzzle", exp.Key.String(), "err", err)
		return out
	}

	out.Parts = verify.Evaluate(exp, res.Answers)
	if !out.Passed() {
		uc.log.Warn("check.mismatch", "puzzle", exp.Key.String(), "input", out.InputPath)
	}
	return out
}

// expectedParts runs only the parts the expectation has an answer for, so a
// worked example valid for one part is not failed by the other.
func expectedParts(exp domain.Expectation) puzzle.Parts {
	var p puzzle.Parts
	if exp.PartOne != nil {
		p |= puzzle.Part1
	}
	if exp.PartTwo != nil {
		p |= puzzle.Part2
	}
	return p
}
