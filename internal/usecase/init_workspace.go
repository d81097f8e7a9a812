package usecase

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/eatmyrust/advent/internal/domain"
	"github.com/eatmyrust/advent/internal/ports"
)

// InitWorkspace scaffolds advent.yaml, answers.yaml and the inputs/runs tree
// under a directory.
type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

// Execute returns the cleaned root it initialized. Existing files are kept
// unless force is set.
func (uc *InitWorkspace) Execute(root string, force bool) (string, error) {
	if strings.TrimSpace(root) == "" {
		return "", &domain.OpError{
			Op:   "usecase.init_workspace",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("%w: empty workspace path", domain.ErrInvalidInput),
		}
	}
	root = filepath.Clean(root)
	if err := uc.initializer.Init(domain.WorkspaceSpec{Root: root}, force); err != nil {
		return "", err
	}
	return root, nil
}
