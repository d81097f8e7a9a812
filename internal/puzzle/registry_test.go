package puzzle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eatmyrust/advent/internal/domain"
)

type stubSolver struct {
	one, two string
	err      error
}

func (s stubSolver) PartOne() (string, error) { return s.one, nil }
func (s stubSolver) PartTwo() (string, error) { return s.two, s.err }

func stubParse(one, two string) ParseFunc {
	return func(string) (Solver, error) { return stubSolver{one: one, two: two}, nil }
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	r.Register(2023, 1, "Trebuchet", stubParse("1", "2"))

	e, err := r.Lookup(domain.PuzzleKey{Year: 2023, Day: 1})
	require.NoError(t, err)
	assert.Equal(t, "Trebuchet", e.Title)

	_, err = r.Lookup(domain.PuzzleKey{Year: 2023, Day: 2})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindUnknownPuzzle))
	assert.ErrorIs(t, err, domain.ErrUnknownPuzzle)
}

func TestRegistryPanicsOnDuplicate(t *testing.T) {
	r := NewRegistry()
	r.Register(2022, 5, "Supply Stacks", stubParse("", ""))

	assert.Panics(t, func() {
		r.Register(2022, 5, "again", stubParse("", ""))
	})
	assert.Panics(t, func() {
		r.Register(2022, 26, "out of range", stubParse("", ""))
	})
	assert.Panics(t, func() {
		r.Register(2022, 6, "nil", nil)
	})
}

func TestRegistryEntriesAndYearsSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(2023, 9, "c", stubParse("", ""))
	r.Register(2022, 2, "b", stubParse("", ""))
	r.Register(2023, 1, "a", stubParse("", ""))
	r.Register(2022, 1, "d", stubParse("", ""))

	var keys []string
	for _, e := range r.Entries() {
		keys = append(keys, e.Key.String())
	}
	assert.Equal(t, []string{"2022/day01", "2022/day02", "2023/day01", "2023/day09"}, keys)
	assert.Equal(t, []int{2022, 2023}, r.Years())
}

func TestEntrySolve(t *testing.T) {
	e := Entry{Parse: stubParse("24000", "45000")}
	got, err := e.Solve("ignored")
	require.NoError(t, err)
	assert.Equal(t, domain.Answers{PartOne: "24000", PartTwo: "45000"}, got)
}

func TestEntrySolveClassifiesErrors(t *testing.T) {
	parseErr := Entry{Parse: func(string) (Solver, error) { return nil, errors.New("line 1: bad") }}
	_, err := parseErr.Solve("x")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))

	partErr := Entry{Parse: func(string) (Solver, error) {
		return stubSolver{one: "1", err: errors.New("fewer than three groups")}, nil
	}}
	got, err := partErr.Solve("x")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindExecution))
	assert.Equal(t, "1", got.PartOne)
}

func TestEntrySolveParts(t *testing.T) {
	noStart := Entry{Parse: func(string) (Solver, error) {
		return failingOne{two: "6"}, nil
	}}

	got, err := noStart.SolveParts("x", Part2)
	require.NoError(t, err)
	assert.Equal(t, domain.Answers{PartTwo: "6"}, got)

	got, err = noStart.SolveParts("x", BothParts)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindExecution))
	assert.Contains(t, err.Error(), "puzzle.part_one")
	assert.Equal(t, "6", got.PartTwo, "part two still runs after part one fails")
}

func TestPartsHas(t *testing.T) {
	var zero Parts
	assert.True(t, zero.Has(1))
	assert.True(t, zero.Has(2))
	assert.True(t, Part1.Has(1))
	assert.False(t, Part1.Has(2))
	assert.False(t, BothParts.Has(3))
}

type failingOne struct{ two string }

func (failingOne) PartOne() (string, error)   { return "", errors.New("node AAA is not defined") }
func (s failingOne) PartTwo() (string, error) { return s.two, nil }
