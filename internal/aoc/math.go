package aoc

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Integer | constraints.Float
}

func Sum[T Number](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

func Product[T Number](xs []T) T {
	var total T = 1
	for _, x := range xs {
		total *= x
	}
	return total
}

func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM of zero and anything is zero.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}
	return l
}

// LCMAll folds LCM over xs; it returns 1 for an empty slice.
func LCMAll[T constraints.Integer](xs []T) T {
	var out T = 1
	for _, x := range xs {
		out = LCM(out, x)
	}
	return out
}

// Pt is a grid coordinate; X is the column, Y the row.
type Pt[T constraints.Signed] struct {
	X, Y T
}

// Neighbors8 returns the eight surrounding points.
func (p Pt[T]) Neighbors8() []Pt[T] {
	out := make([]Pt[T], 0, 8)
	for dy := T(-1); dy <= 1; dy++ {
		for dx := T(-1); dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out = append(out, Pt[T]{X: p.X + dx, Y: p.Y + dy})
		}
	}
	return out
}
