package day03

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw`

func TestWorkedExample(t *testing.T) {
	s, err := Parse(example)
	require.NoError(t, err)

	one, err := s.PartOne()
	require.NoError(t, err)
	assert.Equal(t, "157", one)

	two, err := s.PartTwo()
	require.NoError(t, err)
	assert.Equal(t, "70", two)
}

func TestPriority(t *testing.T) {
	tests := map[byte]int{'a': 1, 'z': 26, 'A': 27, 'Z': 52, 'p': 16, 'L': 38}
	for c, want := range tests {
		got, ok := priority(c)
		require.True(t, ok)
		assert.Equal(t, want, got, string(c))
	}
	_, ok := priority('1')
	assert.False(t, ok)
}

func TestPartTwoRequiresGroupsOfThree(t *testing.T) {
	s, err := Parse("abca\nbcdb")
	require.NoError(t, err)

	_, err = s.PartTwo()
	require.Error(t, err)
}

func TestParseRejectsOddRucksack(t *testing.T) {
	_, err := Parse("abc")
	require.Error(t, err)

	_, err = Parse("ab1c")
	require.Error(t, err)
}
