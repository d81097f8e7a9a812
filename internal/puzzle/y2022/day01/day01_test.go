package day01

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000`

func TestWorkedExample(t *testing.T) {
	s, err := Parse(example)
	require.NoError(t, err)

	if diff := cmp.Diff(Inventory{Totals: []int{6000, 4000, 11000, 24000, 10000}}, s); diff != "" {
		t.Fatalf("Parse mismatch (-want +got):\n%s", diff)
	}

	one, err := s.PartOne()
	require.NoError(t, err)
	assert.Equal(t, "24000", one)

	two, err := s.PartTwo()
	require.NoError(t, err)
	assert.Equal(t, "45000", two)
}

func TestPartTwoNeedsThreeElves(t *testing.T) {
	s, err := Parse("1\n\n2")
	require.NoError(t, err)

	_, err = s.PartTwo()
	require.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("100\nabc")
	require.Error(t, err)

	_, err = Parse("")
	require.Error(t, err)
}
