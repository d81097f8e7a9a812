package template

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/eatmyrust/advent/internal/domain"
)

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", renderError(errors.New("unclosed template expression"))
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", renderError(errors.New("empty template expression"))
		}

		value, ok := vars[key]
		if !ok {
			return "", renderError(fmt.Errorf("missing variable %q", key))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

// PuzzleVars are the placeholders available to input path patterns.
func PuzzleVars(key domain.PuzzleKey) map[string]string {
	return map[string]string{
		"year": strconv.Itoa(key.Year),
		"day":  strconv.Itoa(key.Day),
		"day2": fmt.Sprintf("%02d", key.Day),
	}
}

func renderError(err error) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err),
	}
}
