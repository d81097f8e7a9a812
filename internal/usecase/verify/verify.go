// Package verify compares computed answers with known-good ones.
package verify

import (
	"strings"

	"github.com/eatmyrust/advent/internal/domain"
)

// Part checks one answer. Surrounding whitespace is ignored on both sides.
func Part(part int, want string, got string) domain.PartCheck {
	return domain.PartCheck{
		Part:   part,
		Want:   want,
		Got:    got,
		Passed: strings.TrimSpace(want) == strings.TrimSpace(got),
	}
}

// Evaluate checks every part the expectation names; nil parts are skipped.
func Evaluate(exp domain.Expectation, got domain.Answers) []domain.PartCheck {
	var out []domain.PartCheck
	if exp.PartOne != nil {
		out = append(out, Part(1, *exp.PartOne, got.PartOne))
	}
	if exp.PartTwo != nil {
		out = append(out, Part(2, *exp.PartTwo, got.PartTwo))
	}
	return out
}
