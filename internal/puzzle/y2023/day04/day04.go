// Package day04 solves 2023 day 4, Scratchcards.
package day04

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eatmyrust/advent/internal/aoc"
	"github.com/eatmyrust/advent/internal/puzzle"
)

const Title = "Scratchcards"

type Card struct {
	ID      int
	Winning []int
	Have    []int
}

// Matches counts the numbers we have that are also winning numbers.
func (c Card) Matches() int {
	win := make(map[int]bool, len(c.Winning))
	for _, n := range c.Winning {
		win[n] = true
	}
	m := 0
	for _, n := range c.Have {
		if win[n] {
			m++
		}
	}
	return m
}

type Pile []Card

func Parse(input string) (puzzle.Solver, error) {
	var p Pile
	for i, line := range aoc.Lines(input) {
		c, err := parseCard(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		p = append(p, c)
	}
	if len(p) == 0 {
		return nil, fmt.Errorf("no cards in input")
	}
	return p, nil
}

func parseCard(line string) (Card, error) {
	head, body, err := aoc.Cut(line, ":")
	if err != nil {
		return Card{}, err
	}
	id, ok := strings.CutPrefix(head, "Card")
	if !ok {
		return Card{}, fmt.Errorf("missing card header in %q", line)
	}
	winning, have, err := aoc.Cut(body, "|")
	if err != nil {
		return Card{}, err
	}

	var c Card
	if c.ID, err = aoc.Atoi(id); err != nil {
		return Card{}, err
	}
	if c.Winning, err = aoc.Ints(winning); err != nil {
		return Card{}, err
	}
	if c.Have, err = aoc.Ints(have); err != nil {
		return Card{}, err
	}
	return c, nil
}

func (p Pile) PartOne() (string, error) {
	total := 0
	for _, c := range p {
		if m := c.Matches(); m > 0 {
			total += 1 << (m - 1)
		}
	}
	return strconv.Itoa(total), nil
}

// PartTwo counts cards once copies stop cascading. Copies past the end of
// the pile are not created.
func (p Pile) PartTwo() (string, error) {
	copies := make([]int, len(p))
	for i := range copies {
		copies[i] = 1
	}
	for i, c := range p {
		m := c.Matches()
		for j := i + 1; j <= i+m && j < len(p); j++ {
			copies[j] += copies[i]
		}
	}
	return strconv.Itoa(aoc.Sum(copies)), nil
}
