// Package day02 solves 2022 day 2, Rock Paper Scissors.
package day02

import (
	"fmt"
	"strconv"

	"github.com/eatmyrust/advent/internal/aoc"
	"github.com/eatmyrust/advent/internal/puzzle"
)

const Title = "Rock Paper Scissors"

// Round is one line of the strategy guide, both columns as 0, 1 or 2.
type Round struct {
	Opponent int
	Column   int
}

type Guide []Round

func Parse(input string) (puzzle.Solver, error) {
	var g Guide
	for i, line := range aoc.Lines(input) {
		if len(line) != 3 || line[1] != ' ' {
			return nil, fmt.Errorf("line %d: malformed round %q", i+1, line)
		}
		opp := int(line[0]) - 'A'
		col := int(line[2]) - 'X'
		if opp < 0 || opp > 2 || col < 0 || col > 2 {
			return nil, fmt.Errorf("line %d: unknown symbol in %q", i+1, line)
		}
		g = append(g, Round{Opponent: opp, Column: col})
	}
	if len(g) == 0 {
		return nil, fmt.Errorf("empty strategy guide")
	}
	return g, nil
}

// score of playing mine against theirs. Shapes are 0 rock, 1 paper,
// 2 scissors; shape k beats shape k-1 mod 3.
func score(theirs, mine int) int {
	outcome := (mine - theirs + 4) % 3 // 0 loss, 1 draw, 2 win
	return mine + 1 + outcome*3
}

func (g Guide) PartOne() (string, error) {
	total := 0
	for _, r := range g {
		total += score(r.Opponent, r.Column)
	}
	return strconv.Itoa(total), nil
}

func (g Guide) PartTwo() (string, error) {
	total := 0
	for _, r := range g {
		// Column is the desired outcome: 0 loss, 1 draw, 2 win.
		mine := (r.Opponent + r.Column + 2) % 3
		total += score(r.Opponent, mine)
	}
	return strconv.Itoa(total), nil
}
