// Package calendar wires every implemented day into a registry.
package calendar

import (
	"github.com/eatmyrust/advent/internal/puzzle"
	d2201 "github.com/eatmyrust/advent/internal/puzzle/y2022/day01"
	d2202 "github.com/eatmyrust/advent/internal/puzzle/y2022/day02"
	d2203 "github.com/eatmyrust/advent/internal/puzzle/y2022/day03"
	d2204 "github.com/eatmyrust/advent/internal/puzzle/y2022/day04"
	d2205 "github.com/eatmyrust/advent/internal/puzzle/y2022/day05"
	d2301 "github.com/eatmyrust/advent/internal/puzzle/y2023/day01"
	d2302 "github.com/eatmyrust/advent/internal/puzzle/y2023/day02"
	d2303 "github.com/eatmyrust/advent/internal/puzzle/y2023/day03"
	d2304 "github.com/eatmyrust/advent/internal/puzzle/y2023/day04"
	d2305 "github.com/eatmyrust/advent/internal/puzzle/y2023/day05"
	d2306 "github.com/eatmyrust/advent/internal/puzzle/y2023/day06"
	d2307 "github.com/eatmyrust/advent/internal/puzzle/y2023/day07"
	d2308 "github.com/eatmyrust/advent/internal/puzzle/y2023/day08"
	d2309 "github.com/eatmyrust/advent/internal/puzzle/y2023/day09"
)

// New returns a registry holding every day.
func New() *puzzle.Registry {
	r := puzzle.NewRegistry()

	r.Register(2022, 1, d2201.Title, d2201.Parse)
	r.Register(2022, 2, d2202.Title, d2202.Parse)
	r.Register(2022, 3, d2203.Title, d2203.Parse)
	r.Register(2022, 4, d2204.Title, d2204.Parse)
	r.Register(2022, 5, d2205.Title, d2205.Parse)

	r.Register(2023, 1, d2301.Title, d2301.Parse)
	r.Register(2023, 2, d2302.Title, d2302.Parse)
	r.Register(2023, 3, d2303.Title, d2303.Parse)
	r.Register(2023, 4, d2304.Title, d2304.Parse)
	r.Register(2023, 5, d2305.Title, d2305.Parse)
	r.Register(2023, 6, d2306.Title, d2306.Parse)
	r.Register(2023, 7, d2307.Title, d2307.Parse)
	r.Register(2023, 8, d2308.Title, d2308.Parse)
	r.Register(2023, 9, d2309.Title, d2309.Parse)

	return r
}
