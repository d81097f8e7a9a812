package day08

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleRL = `RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)`

const exampleLLR = `LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)`

const exampleGhosts = `LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)`

func TestWorkedExamplesPartOne(t *testing.T) {
	tests := map[string]struct {
		input string
		want  string
	}{
		"RL":  {input: exampleRL, want: "2"},
		"LLR": {input: exampleLLR, want: "6"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := Parse(tt.input)
			require.NoError(t, err)

			got, err := s.PartOne()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWorkedExamplePartTwo(t *testing.T) {
	s, err := Parse(exampleGhosts)
	require.NoError(t, err)

	got, err := s.PartTwo()
	require.NoError(t, err)
	assert.Equal(t, "6", got)
}

func TestParse(t *testing.T) {
	s, err := Parse(exampleLLR)
	require.NoError(t, err)

	want := Network{
		Instructions: "LLR",
		Nodes: map[string]Fork{
			"AAA": {Left: "BBB", Right: "BBB"},
			"BBB": {Left: "AAA", Right: "ZZZ"},
			"ZZZ": {Left: "ZZZ", Right: "ZZZ"},
		},
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Fatalf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestMissingNodesFail(t *testing.T) {
	t.Run("no AAA", func(t *testing.T) {
		s, err := Parse("L\n\nBBB = (ZZZ, ZZZ)")
		require.NoError(t, err)
		_, err = s.PartOne()
		require.Error(t, err)
	})

	t.Run("dangling fork", func(t *testing.T) {
		s, err := Parse("L\n\nAAA = (QQQ, QQQ)")
		require.NoError(t, err)
		_, err = s.PartOne()
		require.Error(t, err)
	})

	t.Run("loop without goal", func(t *testing.T) {
		s, err := Parse("L\n\nAAA = (AAA, AAA)\nZZZ = (ZZZ, ZZZ)")
		require.NoError(t, err)
		_, err = s.PartOne()
		require.Error(t, err)
	})
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"LR",
		"LXR\n\nAAA = (BBB, CCC)",
		"LR\n\nAAA (BBB, CCC)",
		"LR\n\nAAA = BBB, CCC",
		"LR\n\nAAA = (BBB, CCC)\nAAA = (BBB, CCC)",
	} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}
