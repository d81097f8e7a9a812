// Package day06 solves 2023 day 6, Wait For It.
package day06

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/eatmyrust/advent/internal/aoc"
	"github.com/eatmyrust/advent/internal/puzzle"
)

const Title = "Wait For It"

type Race struct {
	Time, Record int
}

// Ways counts the hold times h in [0, Time] with h*(Time-h) > Record.
func (r Race) Ways() int {
	t, d := r.Time, r.Record
	disc := t*t - 4*d
	if disc < 0 {
		return 0
	}
	root := isqrt(disc)
	lo := (t - root) / 2
	hi := (t + root) / 2
	for lo <= t && lo*(t-lo) <= d {
		lo++
	}
	for lo > 0 && (lo-1)*(t-lo+1) > d {
		lo--
	}
	for hi >= 0 && hi*(t-hi) <= d {
		hi--
	}
	for hi < t && (hi+1)*(t-hi-1) > d {
		hi++
	}
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}

func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// Sheet holds the races column by column and the single race formed by
// reading each line with its spaces removed.
type Sheet struct {
	Races []Race
	Long  Race
}

func Parse(input string) (puzzle.Solver, error) {
	lines := aoc.Lines(input)
	if len(lines) != 2 {
		return nil, fmt.Errorf("expected 2 lines, got %d", len(lines))
	}
	times, ok := strings.CutPrefix(lines[0], "Time:")
	if !ok {
		return nil, fmt.Errorf("line 1: missing Time header")
	}
	dists, ok := strings.CutPrefix(lines[1], "Distance:")
	if !ok {
		return nil, fmt.Errorf("line 2: missing Distance header")
	}

	tf, df := strings.Fields(times), strings.Fields(dists)
	if len(tf) == 0 || len(tf) != len(df) {
		return nil, fmt.Errorf("got %d times and %d distances", len(tf), len(df))
	}

	var s Sheet
	for i := range tf {
		t, err := aoc.Atoi(tf[i])
		if err != nil {
			return nil, fmt.Errorf("line 1: %w", err)
		}
		d, err := aoc.Atoi(df[i])
		if err != nil {
			return nil, fmt.Errorf("line 2: %w", err)
		}
		s.Races = append(s.Races, Race{Time: t, Record: d})
	}

	var err error
	if s.Long.Time, err = aoc.Atoi(strings.Join(tf, "")); err != nil {
		return nil, fmt.Errorf("line 1: %w", err)
	}
	if s.Long.Record, err = aoc.Atoi(strings.Join(df, "")); err != nil {
		return nil, fmt.Errorf("line 2: %w", err)
	}
	return s, nil
}

func (s Sheet) PartOne() (string, error) {
	ways := make([]int, len(s.Races))
	for i, r := range s.Races {
		ways[i] = r.Ways()
	}
	return strconv.Itoa(aoc.Product(ways)), nil
}

func (s Sheet) PartTwo() (string, error) {
	return strconv.Itoa(s.Long.Ways()), nil
}
