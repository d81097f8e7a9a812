// Package day09 solves 2023 day 9, Mirage Maintenance.
package day09

import (
	"fmt"
	"strconv"

	"github.com/eatmyrust/advent/internal/aoc"
	"github.com/eatmyrust/advent/internal/puzzle"
)

const Title = "Mirage Maintenance"

type Report [][]int

func Parse(input string) (puzzle.Solver, error) {
	var r Report
	for i, line := range aoc.Lines(input) {
		vals, err := aoc.Ints(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(vals) == 0 {
			return nil, fmt.Errorf("line %d: empty history", i+1)
		}
		r = append(r, vals)
	}
	if len(r) == 0 {
		return nil, fmt.Errorf("no histories in input")
	}
	return r, nil
}

// Extrapolate returns the values before the first and after the last
// element of a history.
func Extrapolate(history []int) (prev, next int) {
	row := append([]int(nil), history...)
	sign := 1
	for len(row) > 0 {
		zero := true
		for _, v := range row {
			if v != 0 {
				zero = false
				break
			}
		}
		if zero {
			break
		}
		next += row[len(row)-1]
		prev += sign * row[0]
		sign = -sign

		for i := 0; i+1 < len(row); i++ {
			row[i] = row[i+1] - row[i]
		}
		row = row[:len(row)-1]
	}
	return prev, next
}

func (r Report) PartOne() (string, error) {
	total := 0
	for _, h := range r {
		_, next := Extrapolate(h)
		total += next
	}
	return strconv.Itoa(total), nil
}

func (r Report) PartTwo() (string, error) {
	total := 0
	for _, h := range r {
		prev, _ := Extrapolate(h)
		total += prev
	}
	return strconv.Itoa(total), nil
}
