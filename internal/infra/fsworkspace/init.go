package fsworkspace

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/eatmyrust/advent/internal/domain"
	"github.com/eatmyrust/advent/internal/ports"
)

const templatesRoot = "templates"

// scaffoldDirs are created even when no template lands in them.
var scaffoldDirs = []string{
	"inputs",
	"runs",
	filepath.Join(".advent", "logs"),
}

const gitignoreHeader = "# advent"

var gitignoreEntries = []string{
	"runs/",
	".advent/",
	"inputs/*",
	"!inputs/examples/",
	"answers.local.yaml",
}

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init lays out a workspace under spec.Root. Templates that already exist
// are left alone unless force is set; .gitignore is only ever appended to.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	for _, d := range scaffoldDirs {
		dir := filepath.Join(root, d)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ioError("fsworkspace.mkdir", dir, err)
		}
	}

	gi := filepath.Join(root, ".gitignore")
	if err := ensureGitignore(gi); err != nil {
		return ioError("fsworkspace.gitignore", gi, err)
	}

	return fs.WalkDir(templatesFS, templatesRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, _ := strings.CutPrefix(p, templatesRoot+"/")
		return copyTemplate(p, filepath.Join(root, filepath.FromSlash(rel)), force)
	})
}

func copyTemplate(src, dst string, force bool) error {
	if _, err := os.Stat(dst); err == nil && !force {
		return nil
	}

	body, err := fs.ReadFile(templatesFS, src)
	if err != nil {
		return &domain.OpError{Op: "fsworkspace.template", Kind: domain.KindExecution, Path: path.Base(src), Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return ioError("fsworkspace.mkdir", filepath.Dir(dst), err)
	}
	if err := os.WriteFile(dst, body, 0o644); err != nil {
		return ioError("fsworkspace.write", dst, err)
	}
	return nil
}

func ioError(op, path string, err error) error {
	return &domain.OpError{Op: op, Kind: domain.KindIO, Path: path, Err: err}
}

// ensureGitignore appends whichever advent entries the file lacks, under a
// single header.
func ensureGitignore(p string) error {
	current, err := os.ReadFile(p)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	have := map[string]bool{}
	for line := range strings.Lines(string(current)) {
		if s := strings.TrimSpace(line); s != "" {
			have[s] = true
		}
	}

	missing := slices.DeleteFunc(slices.Clone(gitignoreEntries), func(e string) bool { return have[e] })
	if len(missing) == 0 {
		return nil
	}

	var b strings.Builder
	b.Write(current)
	if len(current) > 0 {
		if current[len(current)-1] != '\n' {
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	if !have[gitignoreHeader] {
		missing = slices.Insert(missing, 0, gitignoreHeader)
	}
	for _, e := range missing {
		b.WriteString(e)
		b.WriteByte('\n')
	}
	return os.WriteFile(p, []byte(b.String()), 0o644)
}
