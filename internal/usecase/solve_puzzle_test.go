package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eatmyrust/advent/internal/domain"
)

func fixedClock() func() time.Time {
	t := time.Date(2023, 12, 1, 5, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Millisecond)
		return t
	}
}

func TestSolvePuzzle_DefaultInputPath(t *testing.T) {
	inputs := fakeInputs{files: map[string]string{"inputs/2023/day01.txt": "abc"}}
	uc := NewSolvePuzzle(newCatalog(), inputs, WithClock(fixedClock()))

	res, id, err := uc.Execute(context.Background(), SolveRequest{Key: domain.PuzzleKey{Year: 2023, Day: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "" {
		t.Fatalf("expected no id without Save, got %q", id)
	}
	if res.Answers != (domain.Answers{PartOne: "3", PartTwo: "abc"}) {
		t.Fatalf("unexpected answers: %+v", res.Answers)
	}
	if res.Title != "Echo" || res.InputPath != "inputs/2023/day01.txt" {
		t.Fatalf("unexpected result metadata: %+v", res)
	}
	if !res.EndedAt.After(res.StartedAt) {
		t.Fatalf("expected EndedAt after StartedAt")
	}
}

func TestSolvePuzzle_ExplicitInputPath(t *testing.T) {
	inputs := fakeInputs{files: map[string]string{"sample.txt": "hello"}}
	uc := NewSolvePuzzle(newCatalog(), inputs)

	res, _, err := uc.Execute(context.Background(), SolveRequest{
		Key:       domain.PuzzleKey{Year: 2023, Day: 2},
		InputPath: "sample.txt",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Answers.PartTwo != "hello" {
		t.Fatalf("expected input from explicit path, got %+v", res.Answers)
	}
}

func TestSolvePuzzle_UnknownPuzzle(t *testing.T) {
	uc := NewSolvePuzzle(newCatalog(), fakeInputs{})

	_, _, err := uc.Execute(context.Background(), SolveRequest{Key: domain.PuzzleKey{Year: 2022, Day: 9}})
	if !domain.IsKind(err, domain.KindUnknownPuzzle) {
		t.Fatalf("expected unknown_puzzle, got %v", err)
	}
}

func TestSolvePuzzle_MissingInput(t *testing.T) {
	uc := NewSolvePuzzle(newCatalog(), fakeInputs{})

	_, _, err := uc.Execute(context.Background(), SolveRequest{Key: domain.PuzzleKey{Year: 2023, Day: 1}})
	if !domain.IsKind(err, domain.KindIO) {
		t.Fatalf("expected io, got %v", err)
	}
}

func TestSolvePuzzle_ParseErrorCarriesPath(t *testing.T) {
	inputs := fakeInputs{files: map[string]string{"inputs/2023/day01.txt": "bad"}}
	uc := NewSolvePuzzle(newCatalog(), inputs)

	_, _, err := uc.Execute(context.Background(), SolveRequest{Key: domain.PuzzleKey{Year: 2023, Day: 1}})
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
	var oe *domain.OpError
	if !errors.As(err, &oe) || oe.Path != "inputs/2023/day01.txt" {
		t.Fatalf("expected error to carry input path, got %v", err)
	}
}

func TestSolvePuzzle_StoreCalledOnlyWhenSaving(t *testing.T) {
	inputs := fakeInputs{files: map[string]string{"inputs/2023/day01.txt": "abc"}}
	store := &fakeStore{}
	uc := NewSolvePuzzle(newCatalog(), inputs, WithAnswerStore(store))

	key := domain.PuzzleKey{Year: 2023, Day: 1}
	if _, id, err := uc.Execute(context.Background(), SolveRequest{Key: key}); err != nil || id != "" {
		t.Fatalf("expected plain solve, got id=%q err=%v", id, err)
	}
	if len(store.saved) != 0 {
		t.Fatalf("expected nothing saved")
	}

	_, id, err := uc.Execute(context.Background(), SolveRequest{Key: key, Save: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "run-123" {
		t.Fatalf("expected id=run-123, got %q", id)
	}
	if len(store.saved) != 1 || store.saved[0].Result.Answers.PartTwo != "abc" {
		t.Fatalf("unexpected saved artifacts: %+v", store.saved)
	}
}

func TestSolvePuzzle_StoreErrorPropagates(t *testing.T) {
	inputs := fakeInputs{files: map[string]string{"inputs/2023/day01.txt": "abc"}}
	boom := errors.New("disk full")
	uc := NewSolvePuzzle(newCatalog(), inputs, WithAnswerStore(errStore{err: boom}))

	res, _, err := uc.Execute(context.Background(), SolveRequest{Key: domain.PuzzleKey{Year: 2023, Day: 1}, Save: true})
	if !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
	if res.Answers.PartOne != "3" {
		t.Fatalf("expected answers to be returned alongside store error")
	}
}

func TestSolvePuzzle_CanceledContext(t *testing.T) {
	uc := NewSolvePuzzle(newCatalog(), fakeInputs{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, _, err := uc.Execute(ctx, SolveRequest{Key: domain.PuzzleKey{Year: 2023, Day: 1}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if res.StartedAt.IsZero() || res.EndedAt.IsZero() {
		t.Fatalf("expected timestamps set")
	}
}
