package puzzle

import (
	"fmt"
	"sort"

	"github.com/eatmyrust/advent/internal/domain"
)

// Registry is a static table of day solvers. It is filled once at startup
// and read concurrently afterwards.
type Registry struct {
	entries map[domain.PuzzleKey]Entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[domain.PuzzleKey]Entry)}
}

// Register adds a day. Registering the same key twice or an out-of-range key
// is a programming error and panics.
func (r *Registry) Register(year, day int, title string, parse ParseFunc) {
	key := domain.PuzzleKey{Year: year, Day: day}
	if err := key.Validate(); err != nil {
		panic(fmt.Sprintf("puzzle: register %s: %v", key, err))
	}
	if parse == nil {
		panic(fmt.Sprintf("puzzle: register %s: nil parse func", key))
	}
	if _, dup := r.entries[key]; dup {
		panic(fmt.Sprintf("puzzle: %s registered twice", key))
	}
	r.entries[key] = Entry{Key: key, Title: title, Parse: parse}
}

func (r *Registry) Lookup(key domain.PuzzleKey) (Entry, error) {
	e, ok := r.entries[key]
	if !ok {
		return Entry{}, &domain.OpError{
			Op:   "puzzle.lookup",
			Kind: domain.KindUnknownPuzzle,
			Err:  fmt.Errorf("%w: %s", domain.ErrUnknownPuzzle, key),
		}
	}
	return e, nil
}

// Entries returns every registered day ordered by key.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key.Less(out[j].Key) })
	return out
}

// Years returns the distinct years with at least one registered day.
func (r *Registry) Years() []int {
	seen := map[int]bool{}
	var years []int
	for k := range r.entries {
		if !seen[k.Year] {
			seen[k.Year] = true
			years = append(years, k.Year)
		}
	}
	sort.Ints(years)
	return years
}
