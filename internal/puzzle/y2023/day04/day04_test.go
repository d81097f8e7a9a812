package day04

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11`

func TestWorkedExample(t *testing.T) {
	s, err := Parse(example)
	require.NoError(t, err)

	want := Card{ID: 3, Winning: []int{1, 21, 53, 59, 44}, Have: []int{69, 82, 63, 72, 16, 21, 14, 1}}
	if diff := cmp.Diff(want, s.(Pile)[2]); diff != "" {
		t.Fatalf("card 3 mismatch (-want +got):\n%s", diff)
	}

	var matches []int
	for _, c := range s.(Pile) {
		matches = append(matches, c.Matches())
	}
	assert.Equal(t, []int{4, 2, 2, 1, 0, 0}, matches)

	one, err := s.PartOne()
	require.NoError(t, err)
	assert.Equal(t, "13", one)

	two, err := s.PartTwo()
	require.NoError(t, err)
	assert.Equal(t, "30", two)
}

func TestCopiesDoNotRunPastTheEnd(t *testing.T) {
	s, err := Parse("Card 1: 1 2 | 1 2")
	require.NoError(t, err)

	two, err := s.PartTwo()
	require.NoError(t, err)
	assert.Equal(t, "1", two)
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"Card 1 41 48 | 83",
		"Card 1: 41 48 83",
		"Deck 1: 41 | 83",
		"Card 1: 41 x | 83",
	} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}
