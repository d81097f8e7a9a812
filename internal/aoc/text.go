// Package aoc holds the small parsing and arithmetic helpers shared by the
// day solvers.
package aoc

import (
	"fmt"
	"strconv"
	"strings"
)

// Lines splits normalized input into lines. Empty input yields no lines.
func Lines(input string) []string {
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// Sections splits input on blank lines.
func Sections(input string) []string {
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n\n")
}

// Ints parses every whitespace-separated field of s as a base-10 integer.
func Ints(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parse integer %q: %w", f, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// Cut is strings.Cut that reports a descriptive error when sep is missing.
func Cut(s, sep string) (before, after string, err error) {
	before, after, ok := strings.Cut(s, sep)
	if !ok {
		return "", "", fmt.Errorf("missing %q in %q", sep, s)
	}
	return before, after, nil
}

// Atoi trims s before converting it.
func Atoi(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse integer %q: %w", s, err)
	}
	return n, nil
}
