package tui

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/eatmyrust/advent/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderSolveResult(t Theme, res domain.SolveResult, runID string, width int) string {
	row := func(label, value string) string {
		return t.Label.Render(label) + value + "\n"
	}

	var b strings.Builder
	b.WriteString(row("Part 1:", t.Answer.Render(res.Answers.PartOne)))
	b.WriteString(row("Part 2:", t.Answer.Render(res.Answers.PartTwo)))
	b.WriteString("\n")
	b.WriteString(row("Input:", clampString(res.InputPath, max(width-12, 20))))
	b.WriteString(row("Duration:", res.Duration().Round(time.Microsecond).String()))
	if runID != "" {
		b.WriteString(row("Saved:", runID))
	}
	return b.String()
}
