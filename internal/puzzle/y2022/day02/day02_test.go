package day02

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `A Y
B X
C Z`

func TestWorkedExample(t *testing.T) {
	s, err := Parse(example)
	require.NoError(t, err)

	want := Guide{{Opponent: 0, Column: 1}, {Opponent: 1, Column: 0}, {Opponent: 2, Column: 2}}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Fatalf("Parse mismatch (-want +got):\n%s", diff)
	}

	one, err := s.PartOne()
	require.NoError(t, err)
	assert.Equal(t, "15", one)

	two, err := s.PartTwo()
	require.NoError(t, err)
	assert.Equal(t, "12", two)
}

func TestScore(t *testing.T) {
	tests := []struct {
		name         string
		theirs, mine int
		want         int
	}{
		{name: "paper beats rock", theirs: 0, mine: 1, want: 8},
		{name: "rock loses to paper", theirs: 1, mine: 0, want: 1},
		{name: "scissors draw", theirs: 2, mine: 2, want: 6},
		{name: "rock beats scissors", theirs: 2, mine: 0, want: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, score(tt.theirs, tt.mine))
		})
	}
}

func TestParseRejectsUnknownSymbols(t *testing.T) {
	for _, in := range []string{"D X", "A W", "AX", "A  X"} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}
