// Package day03 solves 2022 day 3, Rucksack Reorganization.
package day03

import (
	"fmt"
	"strconv"

	"github.com/eatmyrust/advent/internal/aoc"
	"github.com/eatmyrust/advent/internal/puzzle"
)

const Title = "Rucksack Reorganization"

// itemSet is a bitmask over priorities 1..52.
type itemSet uint64

func priority(c byte) (int, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 27, true
	}
	return 0, false
}

func setOf(items string) itemSet {
	var s itemSet
	for i := 0; i < len(items); i++ {
		p, _ := priority(items[i])
		s |= 1 << p
	}
	return s
}

// single returns the only priority in s.
func (s itemSet) single() (int, error) {
	if s == 0 || s&(s-1) != 0 {
		return 0, fmt.Errorf("expected exactly one shared item")
	}
	p := 0
	for s > 1 {
		s >>= 1
		p++
	}
	return p, nil
}

type Rucksacks []string

func Parse(input string) (puzzle.Solver, error) {
	lines := aoc.Lines(input)
	if len(lines) == 0 {
		return nil, fmt.Errorf("no rucksacks in input")
	}
	for i, line := range lines {
		if len(line) == 0 || len(line)%2 != 0 {
			return nil, fmt.Errorf("line %d: rucksack must hold an even, non-zero number of items", i+1)
		}
		for j := 0; j < len(line); j++ {
			if _, ok := priority(line[j]); !ok {
				return nil, fmt.Errorf("line %d: invalid item %q", i+1, line[j])
			}
		}
	}
	return Rucksacks(lines), nil
}

func (r Rucksacks) PartOne() (string, error) {
	total := 0
	for i, sack := range r {
		half := len(sack) / 2
		p, err := (setOf(sack[:half]) & setOf(sack[half:])).single()
		if err != nil {
			return "", fmt.Errorf("rucksack %d: %w", i+1, err)
		}
		total += p
	}
	return strconv.Itoa(total), nil
}

func (r Rucksacks) PartTwo() (string, error) {
	if len(r)%3 != 0 {
		return "", fmt.Errorf("%d rucksacks cannot be split into groups of three", len(r))
	}
	total := 0
	for i := 0; i < len(r); i += 3 {
		p, err := (setOf(r[i]) & setOf(r[i+1]) & setOf(r[i+2])).single()
		if err != nil {
			return "", fmt.Errorf("group %d: %w", i/3+1, err)
		}
		total += p
	}
	return strconv.Itoa(total), nil
}
