package usecase

import (
	"errors"
	"testing"

	"github.com/eatmyrust/advent/internal/domain"
)

type fakeInitializer struct {
	specs []domain.WorkspaceSpec
	force bool
	err   error
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.specs = append(f.specs, spec)
	f.force = force
	return f.err
}

func TestInitWorkspace_CleansRoot(t *testing.T) {
	fi := &fakeInitializer{}
	root, err := NewInitWorkspace(fi).Execute("/tmp/aoc/../aoc/", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != "/tmp/aoc" {
		t.Fatalf("expected cleaned root, got %q", root)
	}
	if len(fi.specs) != 1 || fi.specs[0].Root != "/tmp/aoc" || !fi.force {
		t.Fatalf("unexpected Init call: %+v force=%v", fi.specs, fi.force)
	}
}

func TestInitWorkspace_RejectsEmptyRoot(t *testing.T) {
	fi := &fakeInitializer{}
	_, err := NewInitWorkspace(fi).Execute("  ", false)
	if !domain.IsKind(err, domain.KindInvalidInput) || !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid_input error, got %v", err)
	}
	if len(fi.specs) != 0 {
		t.Fatalf("initializer must not run for an empty root")
	}
}

func TestInitWorkspace_PropagatesInitializerError(t *testing.T) {
	boom := errors.New("disk full")
	_, err := NewInitWorkspace(&fakeInitializer{err: boom}).Execute("ws", false)
	if !errors.Is(err, boom) {
		t.Fatalf("expected initializer error, got %v", err)
	}
}
