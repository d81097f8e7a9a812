package workspacefinder

import (
	"errors"
	"iter"
	"os"
	"path/filepath"

	"github.com/eatmyrust/advent/internal/domain"
)

// ConfigFileName marks the root of a workspace.
const ConfigFileName = "advent.yaml"

// Finder walks up from a directory until it meets a directory holding the
// marker file.
type Finder struct {
	marker string
	stopAt string
}

type Option func(*Finder)

// WithMarker replaces ConfigFileName as the file that marks a root.
func WithMarker(name string) Option {
	return func(f *Finder) { f.marker = name }
}

// WithStopAt bounds the search: dir is the last directory inspected.
func WithStopAt(dir string) Option {
	return func(f *Finder) { f.stopAt = filepath.Clean(dir) }
}

func NewFinder(opts ...Option) *Finder {
	f := &Finder{marker: ConfigFileName}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	const op = "workspacefinder.findroot"
	if startDir == "" {
		return "", &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Err: errors.New("start directory is empty")}
	}

	start, err := searchStart(startDir)
	if err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindExecution, Path: startDir, Err: err}
	}

	for dir := range f.ancestors(start) {
		if isFile(filepath.Join(dir, f.marker)) {
			return dir, nil
		}
	}
	return "", &domain.OpError{Op: op, Kind: domain.KindNotFound, Path: start, Err: domain.ErrNotFound}
}

// searchStart resolves p to an absolute directory; a file yields its parent.
func searchStart(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}
	return abs, nil
}

func (f *Finder) ancestors(dir string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			if !yield(dir) || dir == f.stopAt {
				return
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				return
			}
			dir = parent
		}
	}
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}
