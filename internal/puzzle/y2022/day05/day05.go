// Package day05 solves 2022 day 5, Supply Stacks.
package day05

import (
	"fmt"
	"strings"

	"github.com/eatmyrust/advent/internal/aoc"
	"github.com/eatmyrust/advent/internal/puzzle"
)

const Title = "Supply Stacks"

// Stack holds crates bottom first.
type Stack []byte

// Move transfers Count crates from stack From to stack To, both 1-based.
type Move struct {
	Count, From, To int
}

type Plan struct {
	Stacks []Stack
	Moves  []Move
}

func Parse(input string) (puzzle.Solver, error) {
	drawing, procedure, err := aoc.Cut(input, "\n\n")
	if err != nil {
		return nil, fmt.Errorf("separate drawing from procedure: %w", err)
	}

	stacks, err := parseDrawing(aoc.Lines(drawing))
	if err != nil {
		return nil, err
	}

	var moves []Move
	for i, line := range aoc.Lines(procedure) {
		m, err := parseMove(line)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		if m.From < 1 || m.From > len(stacks) || m.To < 1 || m.To > len(stacks) {
			return nil, fmt.Errorf("move %d: stack index out of range 1..%d", i+1, len(stacks))
		}
		moves = append(moves, m)
	}

	return Plan{Stacks: stacks, Moves: moves}, nil
}

func parseDrawing(lines []string) ([]Stack, error) {
	if len(lines) < 2 {
		return nil, fmt.Errorf("drawing needs crate rows and a numbering row")
	}
	n := len(strings.Fields(lines[len(lines)-1]))
	if n == 0 {
		return nil, fmt.Errorf("drawing has no stacks")
	}

	stacks := make([]Stack, n)
	for row := len(lines) - 2; row >= 0; row-- {
		line := lines[row]
		for i := 0; i < n; i++ {
			col := 1 + 4*i
			if col >= len(line) || line[col] == ' ' {
				continue
			}
			c := line[col]
			if c < 'A' || c > 'Z' {
				return nil, fmt.Errorf("drawing row %d: unexpected crate %q", row+1, c)
			}
			stacks[i] = append(stacks[i], c)
		}
	}
	return stacks, nil
}

func parseMove(line string) (Move, error) {
	f := strings.Fields(line)
	if len(f) != 6 || f[0] != "move" || f[2] != "from" || f[4] != "to" {
		return Move{}, fmt.Errorf("malformed %q", line)
	}
	var m Move
	var err error
	if m.Count, err = aoc.Atoi(f[1]); err != nil {
		return Move{}, err
	}
	if m.From, err = aoc.Atoi(f[3]); err != nil {
		return Move{}, err
	}
	if m.To, err = aoc.Atoi(f[5]); err != nil {
		return Move{}, err
	}
	if m.Count < 0 {
		return Move{}, fmt.Errorf("negative count in %q", line)
	}
	return m, nil
}

// run applies every move to a copy of the stacks. When oneAtATime is set the
// moved crates land in reverse order.
func (p Plan) run(oneAtATime bool) (string, error) {
	stacks := make([]Stack, len(p.Stacks))
	for i, s := range p.Stacks {
		stacks[i] = append(Stack(nil), s...)
	}

	for i, m := range p.Moves {
		from, to := m.From-1, m.To-1
		src := stacks[from]
		if m.Count > len(src) {
			return "", fmt.Errorf("move %d: stack %d holds %d crates, cannot move %d", i+1, m.From, len(src), m.Count)
		}
		cut := len(src) - m.Count
		moved := append(Stack(nil), src[cut:]...)
		stacks[from] = src[:cut]
		if oneAtATime {
			for l, r := 0, len(moved)-1; l < r; l, r = l+1, r-1 {
				moved[l], moved[r] = moved[r], moved[l]
			}
		}
		stacks[to] = append(stacks[to], moved...)
	}

	var top strings.Builder
	for i, s := range stacks {
		if len(s) == 0 {
			return "", fmt.Errorf("stack %d is empty after rearrangement", i+1)
		}
		top.WriteByte(s[len(s)-1])
	}
	return top.String(), nil
}

func (p Plan) PartOne() (string, error) { return p.run(true) }
func (p Plan) PartTwo() (string, error) { return p.run(false) }
