package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/eatmyrust/advent/internal/domain"
	"github.com/eatmyrust/advent/internal/puzzle"
)

// --- fakes shared by the use case tests ---

type fakeSolver struct {
	one, two string
}

func (s fakeSolver) PartOne() (string, error) { return s.one, nil }
func (s fakeSolver) PartTwo() (string, error) { return s.two, nil }

// echoParse answers "<len>" and "<input>" so tests can see what was loaded.
func echoParse(input string) (puzzle.Solver, error) {
	if input == "bad" {
		return nil, errors.New("line 1: malformed")
	}
	return fakeSolver{one: fmt.Sprint(len(input)), two: input}, nil
}

func newCatalog() *puzzle.Registry {
	r := puzzle.NewRegistry()
	r.Register(2023, 1, "Echo", echoParse)
	r.Register(2023, 2, "Echo Again", echoParse)
	return r
}

type fakeInputs struct {
	files map[string]string
}

func (f fakeInputs) Load(path string) (string, error) {
	s, ok := f.files[path]
	if !ok {
		return "", &domain.OpError{Op: "fake.load", Kind: domain.KindIO, Path: path, Err: domain.ErrNotFound}
	}
	return s, nil
}

func (f fakeInputs) DefaultPath(key domain.PuzzleKey) (string, error) {
	return fmt.Sprintf("inputs/%d/day%02d.txt", key.Year, key.Day), nil
}

type fakeStore struct {
	mu    sync.Mutex
	saved []domain.RunArtifact
}

func (s *fakeStore) SaveRun(run domain.RunArtifact) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, run)
	return "run-123", nil
}

type errStore struct{ err error }

func (s errStore) SaveRun(_ domain.RunArtifact) (string, error) { return "", s.err }

type fakeExpectations struct {
	exps []domain.Expectation
	err  error
}

func (f fakeExpectations) LoadExpectations(_ string) ([]domain.Expectation, error) {
	return f.exps, f.err
}

type fakeFetcher struct {
	body  []byte
	err   error
	calls int
}

func (f *fakeFetcher) Fetch(_ context.Context, _ domain.PuzzleKey) ([]byte, error) {
	f.calls++
	return f.body, f.err
}

type fakeWriter struct {
	existing map[string]bool
	written  map[string][]byte
}

func (w *fakeWriter) Exists(path string) bool { return w.existing[path] }

func (w *fakeWriter) Write(path string, data []byte) error {
	if w.written == nil {
		w.written = map[string][]byte{}
	}
	w.written[path] = data
	return nil
}

func strPtr(s string) *string { return &s }
