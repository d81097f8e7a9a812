// Package day05 solves 2023 day 5, If You Give A Seed A Fertilizer.
package day05

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/eatmyrust/advent/internal/aoc"
	"github.com/eatmyrust/advent/internal/puzzle"
)

const Title = "If You Give A Seed A Fertilizer"

// Rule maps [Src, Src+Len) onto [Dst, Dst+Len).
type Rule struct {
	Dst, Src, Len int
}

// Stage is one "<from>-to-<to> map" block.
type Stage struct {
	From, To string
	Rules    []Rule
}

// Apply maps a single value; values outside every rule map to themselves.
func (s Stage) Apply(v int) int {
	for _, r := range s.Rules {
		if v >= r.Src && v < r.Src+r.Len {
			return r.Dst + v - r.Src
		}
	}
	return v
}

// Interval is the half-open range [Start, End).
type Interval struct {
	Start, End int
}

// ApplyRanges maps every interval through the stage, splitting intervals
// that straddle rule boundaries.
func (s Stage) ApplyRanges(in []Interval) []Interval {
	var out []Interval
	pending := in
	for _, r := range s.Rules {
		srcEnd := r.Src + r.Len
		var rest []Interval
		for _, iv := range pending {
			if iv.Start < r.Src {
				rest = append(rest, Interval{Start: iv.Start, End: min(iv.End, r.Src)})
			}
			if iv.End > srcEnd {
				rest = append(rest, Interval{Start: max(iv.Start, srcEnd), End: iv.End})
			}
			lo, hi := max(iv.Start, r.Src), min(iv.End, srcEnd)
			if lo < hi {
				shift := r.Dst - r.Src
				out = append(out, Interval{Start: lo + shift, End: hi + shift})
			}
		}
		pending = rest
	}
	return append(out, pending...)
}

type Almanac struct {
	Seeds  []int
	Stages []Stage
}

func Parse(input string) (puzzle.Solver, error) {
	sections := aoc.Sections(input)
	if len(sections) < 2 {
		return nil, fmt.Errorf("expected seeds followed by at least one map")
	}

	raw, ok := strings.CutPrefix(sections[0], "seeds:")
	if !ok {
		return nil, fmt.Errorf("missing seeds header")
	}
	seeds, err := aoc.Ints(raw)
	if err != nil {
		return nil, fmt.Errorf("seeds: %w", err)
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("no seeds")
	}

	a := Almanac{Seeds: seeds}
	category := "seed"
	for i, sec := range sections[1:] {
		st, err := parseStage(sec)
		if err != nil {
			return nil, fmt.Errorf("map %d: %w", i+1, err)
		}
		if st.From != category {
			return nil, fmt.Errorf("map %d: expected %s map, got %s", i+1, category, st.From)
		}
		category = st.To
		a.Stages = append(a.Stages, st)
	}
	if category != "location" {
		return nil, fmt.Errorf("maps end at %s, not location", category)
	}
	return a, nil
}

func parseStage(sec string) (Stage, error) {
	lines := aoc.Lines(sec)
	if len(lines) == 0 {
		return Stage{}, fmt.Errorf("empty map block")
	}
	name, ok := strings.CutSuffix(lines[0], " map:")
	if !ok {
		return Stage{}, fmt.Errorf("malformed header %q", lines[0])
	}
	from, to, err := aoc.Cut(name, "-to-")
	if err != nil {
		return Stage{}, err
	}

	st := Stage{From: from, To: to}
	for _, line := range lines[1:] {
		n, err := aoc.Ints(line)
		if err != nil {
			return Stage{}, err
		}
		if len(n) != 3 || n[2] < 0 {
			return Stage{}, fmt.Errorf("malformed rule %q", line)
		}
		st.Rules = append(st.Rules, Rule{Dst: n[0], Src: n[1], Len: n[2]})
	}
	return st, nil
}

func (a Almanac) PartOne() (string, error) {
	best := -1
	for _, seed := range a.Seeds {
		v := seed
		for _, st := range a.Stages {
			v = st.Apply(v)
		}
		if best < 0 || v < best {
			best = v
		}
	}
	return strconv.Itoa(best), nil
}

// PartTwo reads the seeds as (start, length) pairs.
func (a Almanac) PartTwo() (string, error) {
	if len(a.Seeds)%2 != 0 {
		return "", fmt.Errorf("odd number of seed values (%d) cannot form ranges", len(a.Seeds))
	}
	var ivs []Interval
	for i := 0; i < len(a.Seeds); i += 2 {
		if a.Seeds[i+1] > 0 {
			ivs = append(ivs, Interval{Start: a.Seeds[i], End: a.Seeds[i] + a.Seeds[i+1]})
		}
	}
	if len(ivs) == 0 {
		return "", fmt.Errorf("every seed range is empty")
	}
	for _, st := range a.Stages {
		ivs = st.ApplyRanges(ivs)
	}
	best := slices.MinFunc(ivs, func(x, y Interval) int { return x.Start - y.Start })
	return strconv.Itoa(best.Start), nil
}
