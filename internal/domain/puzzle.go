package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MinYear = 2015
	MaxYear = 2100
	MinDay  = 1
	MaxDay  = 25
)

// PuzzleKey selects one day of one event.
type PuzzleKey struct {
	Year int
	Day  int
}

func (k PuzzleKey) String() string {
	return fmt.Sprintf("%d/day%02d", k.Year, k.Day)
}

// Less orders keys by year, then day.
func (k PuzzleKey) Less(other PuzzleKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Day < other.Day
}

// Validate reports whether the key falls inside the supported calendar.
func (k PuzzleKey) Validate() error {
	if k.Year < MinYear || k.Year > MaxYear {
		return &OpError{
			Op:   "domain.key",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("%w: year %d outside %d..%d", ErrInvalidInput, k.Year, MinYear, MaxYear),
		}
	}
	if k.Day < MinDay || k.Day > MaxDay {
		return &OpError{
			Op:   "domain.key",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("%w: day %d outside %d..%d", ErrInvalidInput, k.Day, MinDay, MaxDay),
		}
	}
	return nil
}

// ParseKey accepts "2023" or "y2023" for the year and "7", "07", "day7" or
// "day07" for the day.
func ParseKey(year, day string) (PuzzleKey, error) {
	y, err := parseSelector(year, "y")
	if err != nil {
		return PuzzleKey{}, &OpError{
			Op:   "domain.parse_key",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("%w: year %q", ErrInvalidInput, year),
		}
	}
	d, err := parseSelector(day, "day")
	if err != nil {
		return PuzzleKey{}, &OpError{
			Op:   "domain.parse_key",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("%w: day %q", ErrInvalidInput, day),
		}
	}

	key := PuzzleKey{Year: y, Day: d}
	if err := key.Validate(); err != nil {
		return PuzzleKey{}, err
	}
	return key, nil
}

func parseSelector(raw, prefix string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, prefix)
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(s)
}

// Expectation is a known-good pair of answers for one input file.
// A nil part is not checked.
type Expectation struct {
	Key       PuzzleKey
	InputPath string
	PartOne   *string
	PartTwo   *string
}
