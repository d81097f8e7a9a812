package yamlanswers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/eatmyrust/advent/internal/domain"
)

func mapAnswers(path string, yf yamlAnswersFile) ([]domain.Expectation, error) {
	out := make([]domain.Expectation, 0, len(yf.Answers))
	seen := make(map[domain.PuzzleKey]int, len(yf.Answers))

	for i, a := range yf.Answers {
		fieldPrefix := fmt.Sprintf("answers[%d]", i)

		key := domain.PuzzleKey{Year: a.Year, Day: a.Day}
		if err := key.Validate(); err != nil {
			return nil, invalidField(path, fieldPrefix, err.Error())
		}
		if prev, dup := seen[key]; dup {
			return nil, invalidField(path, fieldPrefix, fmt.Sprintf("duplicate of answers[%d] (%s)", prev, key))
		}
		seen[key] = i

		if a.PartOne.Value == nil && a.PartTwo.Value == nil {
			return nil, invalidField(path, fieldPrefix, "part_one or part_two is required")
		}

		out = append(out, domain.Expectation{
			Key:       key,
			InputPath: resolveInput(path, a.Input),
			PartOne:   a.PartOne.Value,
			PartTwo:   a.PartTwo.Value,
		})
	}

	return out, nil
}

// resolveInput keeps empty inputs empty (the default input path applies) and
// anchors relative ones at the answers file's directory.
func resolveInput(answersPath, input string) string {
	input = strings.TrimSpace(input)
	if input == "" || filepath.IsAbs(input) {
		return input
	}
	return filepath.Join(filepath.Dir(answersPath), input)
}

// mergeOverlay replaces base entries with overlay entries of the same key and
// appends the rest.
func mergeOverlay(base, overlay []domain.Expectation) []domain.Expectation {
	idx := make(map[domain.PuzzleKey]int, len(base))
	for i, e := range base {
		idx[e.Key] = i
	}
	for _, e := range overlay {
		if i, ok := idx[e.Key]; ok {
			base[i] = e
			continue
		}
		idx[e.Key] = len(base)
		base = append(base, e)
	}
	return base
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlanswers.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
