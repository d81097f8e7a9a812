package day03

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..`

func TestWorkedExample(t *testing.T) {
	s, err := Parse(example)
	require.NoError(t, err)

	sch := s.(Schematic)
	assert.Len(t, sch.Numbers, 10)
	assert.Equal(t, Number{Value: 467, Start: Pt{X: 0, Y: 0}, Len: 3}, sch.Numbers[0])
	assert.Len(t, sch.Symbols, 6)

	one, err := s.PartOne()
	require.NoError(t, err)
	assert.Equal(t, "4361", one)

	two, err := s.PartTwo()
	require.NoError(t, err)
	assert.Equal(t, "467835", two)
}

func TestEqualValuesAreDistinctNumbers(t *testing.T) {
	s, err := Parse("12.12\n..*..")
	require.NoError(t, err)

	one, err := s.PartOne()
	require.NoError(t, err)
	assert.Equal(t, "24", one)

	two, err := s.PartTwo()
	require.NoError(t, err)
	assert.Equal(t, "144", two)
}

func TestNumberTouchingTwoSymbolsCountsOnce(t *testing.T) {
	s, err := Parse("#5#")
	require.NoError(t, err)

	one, err := s.PartOne()
	require.NoError(t, err)
	assert.Equal(t, "5", one)
}

func TestGearNeedsExactlyTwoNumbers(t *testing.T) {
	s, err := Parse("1.2\n.*.\n..3")
	require.NoError(t, err)

	two, err := s.PartTwo()
	require.NoError(t, err)
	assert.Equal(t, "0", two)
}
