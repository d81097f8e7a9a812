package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/eatmyrust/advent/internal/domain"
	"github.com/eatmyrust/advent/internal/puzzle"
	"github.com/eatmyrust/advent/internal/puzzle/calendar"
)

func TestCheckAnswers_ReportsPerPart(t *testing.T) {
	inputs := fakeInputs{files: map[string]string{
		"inputs/2023/day01.txt": "abc",
		"other.txt":             "hello",
	}}
	exps := fakeExpectations{exps: []domain.Expectation{
		{Key: domain.PuzzleKey{Year: 2023, Day: 1}, PartOne: strPtr("3"), PartTwo: strPtr("abc")},
		{Key: domain.PuzzleKey{Year: 2023, Day: 2}, InputPath: "other.txt", PartOne: strPtr("4")},
		{Key: domain.PuzzleKey{Year: 2023, Day: 3}, PartOne: strPtr("1")},
	}}

	uc := NewCheckAnswers(NewSolvePuzzle(newCatalog(), inputs), exps, WithJobs(2))
	report, err := uc.Execute(context.Background(), "answers.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(report.Results))
	}

	first := report.Results[0]
	if !first.Passed() || len(first.Parts) != 2 {
		t.Fatalf("expected day 1 to pass both parts: %+v", first)
	}

	second := report.Results[1]
	if second.Passed() {
		t.Fatalf("expected day 2 to fail")
	}
	if len(second.Parts) != 1 || second.Parts[0].Got != "5" {
		t.Fatalf("unexpected day 2 checks: %+v", second.Parts)
	}
	if second.InputPath != "other.txt" {
		t.Fatalf("expected explicit input path, got %q", second.InputPath)
	}

	third := report.Results[2]
	if third.Error == nil || third.Error.Kind != domain.KindUnknownPuzzle {
		t.Fatalf("expected unknown_puzzle error for day 3: %+v", third)
	}

	if report.Failed() != 2 {
		t.Fatalf("expected 2 failures, got %d", report.Failed())
	}
	if report.Source != "answers.yaml" {
		t.Fatalf("unexpected source %q", report.Source)
	}
}

func TestCheckAnswers_LoaderError(t *testing.T) {
	boom := errors.New("no answers file")
	uc := NewCheckAnswers(NewSolvePuzzle(newCatalog(), fakeInputs{}), fakeExpectations{err: boom})

	_, err := uc.Execute(context.Background(), "answers.yaml")
	if !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
}

func TestCheckAnswers_CanceledContext(t *testing.T) {
	exps := fakeExpectations{exps: []domain.Expectation{
		{Key: domain.PuzzleKey{Year: 2023, Day: 1}, PartOne: strPtr("3")},
	}}
	uc := NewCheckAnswers(NewSolvePuzzle(newCatalog(), fakeInputs{}), exps, WithJobs(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Execute(ctx, "answers.yaml")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCheckAnswers_EmptyFile(t *testing.T) {
	uc := NewCheckAnswers(NewSolvePuzzle(newCatalog(), fakeInputs{}), fakeExpectations{})

	report, err := uc.Execute(context.Background(), "answers.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Results) != 0 || report.Failed() != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
}

func TestCheckAnswers_RunsOnlyExpectedParts(t *testing.T) {
	ghosts := "LR\n\n11A = (11B, XXX)\n11B = (XXX, 11Z)\n11Z = (11B, XXX)\n" +
		"22A = (22B, XXX)\n22B = (22C, 22C)\n22C = (22Z, 22Z)\n22Z = (22B, 22B)\nXXX = (XXX, XXX)"
	spelled := "two1nine\neightwothree\nabcone2threexyz\nxtwone3four\n4nineeightseven2\nzoneight234\n7pqrstsixteen"

	inputs := fakeInputs{files: map[string]string{
		"ghosts.txt":  ghosts,
		"spelled.txt": spelled,
	}}
	exps := fakeExpectations{exps: []domain.Expectation{
		{Key: domain.PuzzleKey{Year: 2023, Day: 1}, InputPath: "spelled.txt", PartTwo: strPtr("281")},
		{Key: domain.PuzzleKey{Year: 2023, Day: 8}, InputPath: "ghosts.txt", PartTwo: strPtr("6")},
	}}

	uc := NewCheckAnswers(NewSolvePuzzle(calendar.New(), inputs), exps)
	report, err := uc.Execute(context.Background(), "answers.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range report.Results {
		if !r.Passed() || r.Error != nil {
			t.Fatalf("expected %s to pass on part two alone: %+v", r.Key, r)
		}
		if len(r.Parts) != 1 || r.Parts[0].Part != 2 {
			t.Fatalf("expected a single part two check for %s: %+v", r.Key, r.Parts)
		}
	}
}

func TestCheckAnswers_FailsOnExpectedPartError(t *testing.T) {
	cat := puzzle.NewRegistry()
	cat.Register(2022, 1, "Broken", func(string) (puzzle.Solver, error) {
		return halfSolver{}, nil
	})
	inputs := fakeInputs{files: map[string]string{"in.txt": "x"}}
	exps := fakeExpectations{exps: []domain.Expectation{
		{Key: domain.PuzzleKey{Year: 2022, Day: 1}, InputPath: "in.txt", PartOne: strPtr("1"), PartTwo: strPtr("2")},
	}}

	report, err := NewCheckAnswers(NewSolvePuzzle(cat, inputs), exps).Execute(context.Background(), "answers.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := report.Results[0]
	if r.Passed() || r.Error == nil || r.Error.Kind != domain.KindExecution {
		t.Fatalf("expected execution failure when a named part errors: %+v", r)
	}
}

// halfSolver answers part two only.
type halfSolver struct{}

func (halfSolver) PartOne() (string, error) { return "", errors.New("no start node") }
func (halfSolver) PartTwo() (string, error) { return "2", nil }
