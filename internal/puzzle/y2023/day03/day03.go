// Package day03 solves 2023 day 3, Gear Ratios.
package day03

import (
	"fmt"
	"strconv"

	"github.com/eatmyrust/advent/internal/aoc"
	"github.com/eatmyrust/advent/internal/puzzle"
)

const Title = "Gear Ratios"

type Pt = aoc.Pt[int]

// Number is a part-number candidate; Start is the cell of its first digit.
type Number struct {
	Value int
	Start Pt
	Len   int
}

type Schematic struct {
	Numbers []Number
	Symbols map[Pt]byte
	// owner maps every digit cell to its index in Numbers.
	owner map[Pt]int
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func Parse(input string) (puzzle.Solver, error) {
	lines := aoc.Lines(input)
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty schematic")
	}

	s := Schematic{Symbols: map[Pt]byte{}, owner: map[Pt]int{}}
	for y, line := range lines {
		for x := 0; x < len(line); {
			c := line[x]
			switch {
			case isDigit(c):
				end := x
				for end < len(line) && isDigit(line[end]) {
					end++
				}
				v, err := strconv.Atoi(line[x:end])
				if err != nil {
					return nil, fmt.Errorf("row %d col %d: %w", y+1, x+1, err)
				}
				idx := len(s.Numbers)
				s.Numbers = append(s.Numbers, Number{Value: v, Start: Pt{X: x, Y: y}, Len: end - x})
				for cx := x; cx < end; cx++ {
					s.owner[Pt{X: cx, Y: y}] = idx
				}
				x = end
				continue
			case c == '.':
			case c <= ' ' || c > '~':
				return nil, fmt.Errorf("row %d col %d: unexpected character %q", y+1, x+1, c)
			default:
				s.Symbols[Pt{X: x, Y: y}] = c
			}
			x++
		}
	}
	return s, nil
}

// adjacent returns the indices of the numbers touching p, each once.
func (s Schematic) adjacent(p Pt) []int {
	seen := map[int]bool{}
	var out []int
	for _, n := range p.Neighbors8() {
		idx, ok := s.owner[n]
		if !ok || seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, idx)
	}
	return out
}

func (s Schematic) PartOne() (string, error) {
	counted := map[int]bool{}
	total := 0
	for p := range s.Symbols {
		for _, idx := range s.adjacent(p) {
			if counted[idx] {
				continue
			}
			counted[idx] = true
			total += s.Numbers[idx].Value
		}
	}
	return strconv.Itoa(total), nil
}

func (s Schematic) PartTwo() (string, error) {
	total := 0
	for p, c := range s.Symbols {
		if c != '*' {
			continue
		}
		adj := s.adjacent(p)
		if len(adj) != 2 {
			continue
		}
		total += s.Numbers[adj[0]].Value * s.Numbers[adj[1]].Value
	}
	return strconv.Itoa(total), nil
}
