package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eatmyrust/advent/internal/domain"
	"github.com/eatmyrust/advent/internal/infra/workspacefinder"
	"github.com/eatmyrust/advent/internal/infra/yamlanswers"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "advent.yaml"))
	assertFileExists(t, filepath.Join(tmp, "answers.yaml"))
	assertFileExists(t, filepath.Join(tmp, "inputs", "examples", "2022", "day01.txt"))
	assertFileExists(t, filepath.Join(tmp, "runs"))
	assertFileExists(t, filepath.Join(tmp, ".advent", "logs"))
}

func TestInitializer_Init_ScaffoldLoads(t *testing.T) {
	tmp := t.TempDir()

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	cfg, err := workspacefinder.LoadConfig(tmp)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Defaults.Year != 2023 || cfg.Paths.AnswersFile != "answers.yaml" {
		t.Fatalf("unexpected config %+v", cfg)
	}

	exps, err := yamlanswers.NewLoader().LoadExpectations(filepath.Join(tmp, cfg.Paths.AnswersFile))
	if err != nil {
		t.Fatalf("LoadExpectations error: %v", err)
	}
	if len(exps) != 1 {
		t.Fatalf("expected 1 expectation, got %d", len(exps))
	}
	assertFileExists(t, exps[0].InputPath)
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	adventYAML := filepath.Join(tmp, "advent.yaml")
	if err := os.WriteFile(adventYAML, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing advent.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(adventYAML)
	if err != nil {
		t.Fatalf("read advent.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected advent.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(adventYAML)
	if err != nil {
		t.Fatalf("read advent.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "advent:") {
		t.Fatalf("expected advent.yaml overwritten with template, got %q", string(b))
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}
