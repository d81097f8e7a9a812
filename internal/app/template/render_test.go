package template

import (
	"testing"

	"github.com/eatmyrust/advent/internal/domain"
)

func TestRenderStringSingleVar(t *testing.T) {
	out, err := RenderString("day{{day2}}.txt", map[string]string{"day2": "07"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "day07.txt" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringMultipleVars(t *testing.T) {
	out, err := RenderString("{{ year }}/{{day}}", map[string]string{
		"year": "2023",
		"day":  "7",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "2023/7" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "missing var", input: "{{name}}"},
		{name: "unclosed", input: "{{year"},
		{name: "empty", input: "{{ }}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RenderString(tt.input, map[string]string{"year": "2023"})
			if err == nil {
				t.Fatalf("expected error")
			}
			if !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected invalid_config, got %v", err)
			}
		})
	}
}

func TestPuzzleVars(t *testing.T) {
	out, err := RenderString("{{year}}/day{{day2}}-{{day}}.txt", PuzzleVars(domain.PuzzleKey{Year: 2022, Day: 5}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "2022/day05-5.txt" {
		t.Fatalf("unexpected path %q", out)
	}
}
