// Package inputfile reads puzzle inputs from disk and decides where they live.
package inputfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/eatmyrust/advent/internal/app/template"
	"github.com/eatmyrust/advent/internal/domain"
	"github.com/eatmyrust/advent/internal/ports"
)

// StdinPath makes Load read from standard input.
const StdinPath = "-"

type Store struct {
	root    string
	dir     string
	pattern string
	stdin   io.Reader
}

type Option func(*Store)

func WithInputsDir(dir string) Option {
	return func(s *Store) {
		if strings.TrimSpace(dir) != "" {
			s.dir = dir
		}
	}
}

func WithPattern(pattern string) Option {
	return func(s *Store) {
		if strings.TrimSpace(pattern) != "" {
			s.pattern = pattern
		}
	}
}

func WithStdin(r io.Reader) Option {
	return func(s *Store) { s.stdin = r }
}

// NewStore resolves default input paths under root. Defaults match
// domain.DefaultConfig.
func NewStore(root string, opts ...Option) *Store {
	def := domain.DefaultConfig().Paths
	s := &Store{
		root:    root,
		dir:     def.InputsDir,
		pattern: def.InputPattern,
		stdin:   os.Stdin,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	_ ports.InputLoader = (*Store)(nil)
	_ ports.InputWriter = (*Store)(nil)
)

// Load reads and normalizes an input file.
func (s *Store) Load(path string) (string, error) {
	var (
		b   []byte
		err error
	)
	if path == StdinPath {
		b, err = io.ReadAll(s.stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %w", domain.ErrNotFound, err)
		}
		return "", &domain.OpError{Op: "inputfile.load", Kind: domain.KindIO, Path: path, Err: err}
	}
	return Normalize(string(b)), nil
}

// Normalize converts CRLF line endings to LF and drops trailing newlines.
// Leading whitespace is significant for some puzzles and is kept.
func Normalize(raw string) string {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	return strings.TrimRight(s, "\n")
}

// DefaultPath renders the input pattern for key.
func (s *Store) DefaultPath(key domain.PuzzleKey) (string, error) {
	rel, err := template.RenderString(s.pattern, template.PuzzleVars(key))
	if err != nil {
		return "", err
	}
	dir := s.dir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(s.root, dir)
	}
	return filepath.Join(dir, filepath.FromSlash(rel)), nil
}

func (s *Store) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Write stores data at path through a temporary file and a rename.
func (s *Store) Write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &domain.OpError{Op: "inputfile.mkdir", Kind: domain.KindIO, Path: filepath.Dir(path), Err: err}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &domain.OpError{Op: "inputfile.write", Kind: domain.KindIO, Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "inputfile.rename", Kind: domain.KindIO, Path: path, Err: err}
	}
	return nil
}
