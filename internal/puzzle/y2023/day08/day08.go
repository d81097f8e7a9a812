// Package day08 solves 2023 day 8, Haunted Wasteland.
package day08

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/eatmyrust/advent/internal/aoc"
	"github.com/eatmyrust/advent/internal/puzzle"
)

const Title = "Haunted Wasteland"

type Fork struct {
	Left, Right string
}

type Network struct {
	Instructions string
	Nodes        map[string]Fork
}

func Parse(input string) (puzzle.Solver, error) {
	head, body, err := aoc.Cut(input, "\n\n")
	if err != nil {
		return nil, fmt.Errorf("separate instructions from nodes: %w", err)
	}
	head = strings.TrimSpace(head)
	if head == "" || strings.Trim(head, "LR") != "" {
		return nil, fmt.Errorf("instructions must be a non-empty run of L and R, got %q", head)
	}

	n := Network{Instructions: head, Nodes: map[string]Fork{}}
	for i, line := range aoc.Lines(body) {
		name, rest, err := aoc.Cut(line, " = ")
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i+1, err)
		}
		pair, ok := strings.CutPrefix(rest, "(")
		if ok {
			pair, ok = strings.CutSuffix(pair, ")")
		}
		if !ok {
			return nil, fmt.Errorf("node %d: malformed fork %q", i+1, rest)
		}
		left, right, err := aoc.Cut(pair, ", ")
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i+1, err)
		}
		if _, dup := n.Nodes[name]; dup {
			return nil, fmt.Errorf("node %d: %s defined twice", i+1, name)
		}
		n.Nodes[name] = Fork{Left: left, Right: right}
	}
	return n, nil
}

// walk follows the instructions from start until done reports true and
// returns the number of steps taken.
func (n Network) walk(start string, done func(string) bool) (int, error) {
	cur := start
	steps := 0
	// A walk that revisits the same (node, instruction) state never ends.
	limit := len(n.Nodes)*len(n.Instructions) + 1
	for !done(cur) {
		if steps > limit {
			return 0, fmt.Errorf("walk from %s never reaches its goal", start)
		}
		fork, ok := n.Nodes[cur]
		if !ok {
			return 0, fmt.Errorf("node %s is not defined", cur)
		}
		if n.Instructions[steps%len(n.Instructions)] == 'L' {
			cur = fork.Left
		} else {
			cur = fork.Right
		}
		steps++
	}
	return steps, nil
}

func (n Network) PartOne() (string, error) {
	if _, ok := n.Nodes["AAA"]; !ok {
		return "", fmt.Errorf("node AAA is not defined")
	}
	steps, err := n.walk("AAA", func(s string) bool { return s == "ZZZ" })
	if err != nil {
		return "", err
	}
	return strconv.Itoa(steps), nil
}

// PartTwo assumes every ghost loops back to its goal after the same number
// of steps it took to reach it first, so the answer is the LCM of those.
func (n Network) PartTwo() (string, error) {
	var starts []string
	for name := range n.Nodes {
		if strings.HasSuffix(name, "A") {
			starts = append(starts, name)
		}
	}
	if len(starts) == 0 {
		return "", fmt.Errorf("no node ends in A")
	}
	sort.Strings(starts)

	cycles := make([]int, 0, len(starts))
	for _, s := range starts {
		steps, err := n.walk(s, func(name string) bool { return strings.HasSuffix(name, "Z") })
		if err != nil {
			return "", err
		}
		cycles = append(cycles, steps)
	}
	return strconv.Itoa(aoc.LCMAll(cycles)), nil
}
