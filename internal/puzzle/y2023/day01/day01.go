// Package day01 solves 2023 day 1, Trebuchet?!
package day01

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eatmyrust/advent/internal/aoc"
	"github.com/eatmyrust/advent/internal/puzzle"
)

const Title = "Trebuchet?!"

var words = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

type Document []string

func Parse(input string) (puzzle.Solver, error) {
	lines := aoc.Lines(input)
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty calibration document")
	}
	return Document(lines), nil
}

// digitAt reports the digit starting at s[i], if any. Spelled-out digits are
// only considered when spelled is set; they may overlap ("oneight").
func digitAt(s string, i int, spelled bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !spelled {
		return 0, false
	}
	for n, w := range words {
		if strings.HasPrefix(s[i:], w) {
			return n + 1, true
		}
	}
	return 0, false
}

func calibration(line string, spelled bool) (int, error) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		d, ok := digitAt(line, i, spelled)
		if !ok {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0, fmt.Errorf("no digit in %q", line)
	}
	return first*10 + last, nil
}

func (d Document) sum(spelled bool) (string, error) {
	total := 0
	for i, line := range d {
		v, err := calibration(line, spelled)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		total += v
	}
	return strconv.Itoa(total), nil
}

func (d Document) PartOne() (string, error) { return d.sum(false) }
func (d Document) PartTwo() (string, error) { return d.sum(true) }
