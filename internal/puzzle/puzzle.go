// Package puzzle defines the contract every day solver implements and the
// registry that maps a (year, day) key to it.
package puzzle

import (
	"errors"

	"github.com/eatmyrust/advent/internal/domain"
)

// Solver answers both parts of a parsed puzzle input.
type Solver interface {
	PartOne() (string, error)
	PartTwo() (string, error)
}

// ParseFunc turns raw puzzle input into a Solver.
type ParseFunc func(input string) (Solver, error)

// Entry is a registered day.
type Entry struct {
	Key   domain.PuzzleKey
	Title string
	Parse ParseFunc
}

// Parts selects which answers Solve computes. The zero value means both.
type Parts uint8

const (
	Part1 Parts = 1 << iota
	Part2

	BothParts = Part1 | Part2
)

// Has reports whether p selects part n (1 or 2).
func (p Parts) Has(n int) bool {
	if p == 0 {
		p = BothParts
	}
	switch n {
	case 1:
		return p&Part1 != 0
	case 2:
		return p&Part2 != 0
	}
	return false
}

// Solve parses input and runs both parts.
func (e Entry) Solve(input string) (domain.Answers, error) {
	return e.SolveParts(input, BothParts)
}

// SolveParts parses input and runs the selected parts. A failing part does
// not stop the other one; its answer is left empty and its error joined into
// the result.
func (e Entry) SolveParts(input string, parts Parts) (domain.Answers, error) {
	s, err := e.Parse(input)
	if err != nil {
		return domain.Answers{}, &domain.OpError{
			Op:   "puzzle.parse",
			Kind: domain.KindInvalidInput,
			Err:  err,
		}
	}

	var ans domain.Answers
	var errs []error
	if parts.Has(1) {
		if ans.PartOne, err = s.PartOne(); err != nil {
			ans.PartOne = ""
			errs = append(errs, &domain.OpError{Op: "puzzle.part_one", Kind: domain.KindExecution, Err: err})
		}
	}
	if parts.Has(2) {
		if ans.PartTwo, err = s.PartTwo(); err != nil {
			ans.PartTwo = ""
			errs = append(errs, &domain.OpError{Op: "puzzle.part_two", Kind: domain.KindExecution, Err: err})
		}
	}
	return ans, errors.Join(errs...)
}
