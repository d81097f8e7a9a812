// Package day01 solves 2022 day 1, Calorie Counting.
package day01

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/eatmyrust/advent/internal/aoc"
	"github.com/eatmyrust/advent/internal/puzzle"
)

const Title = "Calorie Counting"

// Inventory holds the calorie total of every elf, in input order.
type Inventory struct {
	Totals []int
}

func Parse(input string) (puzzle.Solver, error) {
	var inv Inventory
	for i, section := range aoc.Sections(input) {
		items, err := aoc.Ints(section)
		if err != nil {
			return nil, fmt.Errorf("elf %d: %w", i+1, err)
		}
		if len(items) == 0 {
			return nil, fmt.Errorf("elf %d: no items", i+1)
		}
		inv.Totals = append(inv.Totals, aoc.Sum(items))
	}
	if len(inv.Totals) == 0 {
		return nil, fmt.Errorf("no elves in input")
	}
	return inv, nil
}

func (inv Inventory) top(n int) ([]int, error) {
	if len(inv.Totals) < n {
		return nil, fmt.Errorf("need at least %d elves, got %d", n, len(inv.Totals))
	}
	sorted := append([]int(nil), inv.Totals...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	return sorted[:n], nil
}

func (inv Inventory) PartOne() (string, error) {
	top, err := inv.top(1)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(top[0]), nil
}

func (inv Inventory) PartTwo() (string, error) {
	top, err := inv.top(3)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(aoc.Sum(top)), nil
}
