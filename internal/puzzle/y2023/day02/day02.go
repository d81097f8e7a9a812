// Package day02 solves 2023 day 2, Cube Conundrum.
package day02

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eatmyrust/advent/internal/aoc"
	"github.com/eatmyrust/advent/internal/puzzle"
)

const Title = "Cube Conundrum"

// Cubes counts cubes per colour.
type Cubes struct {
	Red, Green, Blue int
}

func (c Cubes) fits(limit Cubes) bool {
	return c.Red <= limit.Red && c.Green <= limit.Green && c.Blue <= limit.Blue
}

func (c Cubes) max(o Cubes) Cubes {
	return Cubes{Red: max(c.Red, o.Red), Green: max(c.Green, o.Green), Blue: max(c.Blue, o.Blue)}
}

var bag = Cubes{Red: 12, Green: 13, Blue: 14}

type Game struct {
	ID    int
	Draws []Cubes
}

// Minimum is the smallest bag that makes every draw possible.
func (g Game) Minimum() Cubes {
	var m Cubes
	for _, d := range g.Draws {
		m = m.max(d)
	}
	return m
}

type Record []Game

func Parse(input string) (puzzle.Solver, error) {
	var rec Record
	for i, line := range aoc.Lines(input) {
		g, err := parseGame(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		rec = append(rec, g)
	}
	if len(rec) == 0 {
		return nil, fmt.Errorf("no games in input")
	}
	return rec, nil
}

func parseGame(line string) (Game, error) {
	head, body, err := aoc.Cut(line, ":")
	if err != nil {
		return Game{}, err
	}
	id, ok := strings.CutPrefix(head, "Game ")
	if !ok {
		return Game{}, fmt.Errorf("missing game header in %q", line)
	}

	var g Game
	if g.ID, err = aoc.Atoi(id); err != nil {
		return Game{}, err
	}

	for _, draw := range strings.Split(body, ";") {
		var c Cubes
		for _, part := range strings.Split(draw, ",") {
			f := strings.Fields(part)
			if len(f) != 2 {
				return Game{}, fmt.Errorf("malformed cube count %q", part)
			}
			n, err := aoc.Atoi(f[0])
			if err != nil {
				return Game{}, err
			}
			switch f[1] {
			case "red":
				c.Red += n
			case "green":
				c.Green += n
			case "blue":
				c.Blue += n
			default:
				return Game{}, fmt.Errorf("unknown colour %q", f[1])
			}
		}
		g.Draws = append(g.Draws, c)
	}
	return g, nil
}

func (r Record) PartOne() (string, error) {
	total := 0
	for _, g := range r {
		if g.Minimum().fits(bag) {
			total += g.ID
		}
	}
	return strconv.Itoa(total), nil
}

func (r Record) PartTwo() (string, error) {
	total := 0
	for _, g := range r {
		m := g.Minimum()
		total += m.Red * m.Green * m.Blue
	}
	return strconv.Itoa(total), nil
}
