// Package day04 solves 2022 day 4, Camp Cleanup.
package day04

import (
	"fmt"
	"strconv"

	"github.com/eatmyrust/advent/internal/aoc"
	"github.com/eatmyrust/advent/internal/puzzle"
)

const Title = "Camp Cleanup"

// Span is an inclusive section range.
type Span struct {
	Lo, Hi int
}

func (s Span) Contains(o Span) bool { return s.Lo <= o.Lo && o.Hi <= s.Hi }
func (s Span) Overlaps(o Span) bool { return s.Lo <= o.Hi && o.Lo <= s.Hi }

type Pair struct {
	A, B Span
}

type Assignments []Pair

func parseSpan(s string) (Span, error) {
	lo, hi, err := aoc.Cut(s, "-")
	if err != nil {
		return Span{}, err
	}
	var sp Span
	if sp.Lo, err = aoc.Atoi(lo); err != nil {
		return Span{}, err
	}
	if sp.Hi, err = aoc.Atoi(hi); err != nil {
		return Span{}, err
	}
	if sp.Lo > sp.Hi {
		return Span{}, fmt.Errorf("range %q is reversed", s)
	}
	return sp, nil
}

func Parse(input string) (puzzle.Solver, error) {
	var out Assignments
	for i, line := range aoc.Lines(input) {
		left, right, err := aoc.Cut(line, ",")
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		a, err := parseSpan(left)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		b, err := parseSpan(right)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, Pair{A: a, B: b})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no assignments in input")
	}
	return out, nil
}

func (as Assignments) count(keep func(Pair) bool) string {
	n := 0
	for _, p := range as {
		if keep(p) {
			n++
		}
	}
	return strconv.Itoa(n)
}

func (as Assignments) PartOne() (string, error) {
	return as.count(func(p Pair) bool { return p.A.Contains(p.B) || p.B.Contains(p.A) }), nil
}

func (as Assignments) PartTwo() (string, error) {
	return as.count(func(p Pair) bool { return p.A.Overlaps(p.B) }), nil
}
