// Package day07 solves 2023 day 7, Camel Cards.
package day07

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/eatmyrust/advent/internal/aoc"
	"github.com/eatmyrust/advent/internal/puzzle"
)

const Title = "Camel Cards"

const (
	order      = "23456789TJQKA"
	jokerOrder = "J23456789TQKA"
)

// Kind is a hand type, weakest first.
type Kind int

const (
	HighCard Kind = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

type Hand struct {
	Cards string
	Bid   int
}

// Kind classifies the hand. With jokers, every J joins the most common
// other card.
func (h Hand) Kind(jokers bool) Kind {
	counts := map[rune]int{}
	wild := 0
	for _, c := range h.Cards {
		if jokers && c == 'J' {
			wild++
			continue
		}
		counts[c]++
	}

	sizes := make([]int, 0, len(counts))
	for _, n := range counts {
		sizes = append(sizes, n)
	}
	slices.SortFunc(sizes, func(a, b int) int { return b - a })
	if len(sizes) == 0 {
		sizes = []int{0}
	}
	sizes[0] += wild

	switch {
	case sizes[0] == 5:
		return FiveOfAKind
	case sizes[0] == 4:
		return FourOfAKind
	case sizes[0] == 3 && sizes[1] == 2:
		return FullHouse
	case sizes[0] == 3:
		return ThreeOfAKind
	case sizes[0] == 2 && sizes[1] == 2:
		return TwoPair
	case sizes[0] == 2:
		return OnePair
	}
	return HighCard
}

type Game []Hand

func Parse(input string) (puzzle.Solver, error) {
	var g Game
	for i, line := range aoc.Lines(input) {
		f := strings.Fields(line)
		if len(f) != 2 {
			return nil, fmt.Errorf("line %d: expected hand and bid, got %q", i+1, line)
		}
		if len(f[0]) != 5 {
			return nil, fmt.Errorf("line %d: hand %q must have 5 cards", i+1, f[0])
		}
		for _, c := range f[0] {
			if !strings.ContainsRune(order, c) {
				return nil, fmt.Errorf("line %d: unknown card %q", i+1, c)
			}
		}
		bid, err := aoc.Atoi(f[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		g = append(g, Hand{Cards: f[0], Bid: bid})
	}
	if len(g) == 0 {
		return nil, fmt.Errorf("no hands in input")
	}
	return g, nil
}

func (g Game) winnings(jokers bool) string {
	strength := order
	if jokers {
		strength = jokerOrder
	}

	ranked := slices.Clone(g)
	slices.SortStableFunc(ranked, func(a, b Hand) int {
		if c := cmp.Compare(a.Kind(jokers), b.Kind(jokers)); c != 0 {
			return c
		}
		for i := 0; i < len(a.Cards); i++ {
			ai := strings.IndexByte(strength, a.Cards[i])
			bi := strings.IndexByte(strength, b.Cards[i])
			if ai != bi {
				return cmp.Compare(ai, bi)
			}
		}
		return 0
	})

	total := 0
	for i, h := range ranked {
		total += (i + 1) * h.Bid
	}
	return strconv.Itoa(total)
}

func (g Game) PartOne() (string, error) { return g.winnings(false), nil }
func (g Game) PartTwo() (string, error) { return g.winnings(true), nil }
