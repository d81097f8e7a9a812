package yamlanswers

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/eatmyrust/advent/internal/domain"
	"github.com/eatmyrust/advent/internal/ports"
	"gopkg.in/yaml.v3"
)

const DefaultLocalFile = "answers.local.yaml"

type Loader struct {
	localFile string
}

type Option func(*Loader)

// WithLocalFile sets the name of the optional overlay file looked up next to
// the answers file. An empty name disables the overlay.
func WithLocalFile(name string) Option {
	return func(l *Loader) { l.localFile = name }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{localFile: DefaultLocalFile}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.ExpectationLoader = (*Loader)(nil)

// LoadExpectations reads path and, when present, the local overlay next to
// it. Results are sorted by puzzle key.
func (l *Loader) LoadExpectations(path string) ([]domain.Expectation, error) {
	base, err := readAnswers(path)
	if err != nil {
		return nil, err
	}

	if l.localFile != "" {
		localPath := filepath.Join(filepath.Dir(path), l.localFile)
		if filepath.Clean(localPath) != filepath.Clean(path) {
			local, err := readAnswersOptional(localPath)
			if err != nil {
				return nil, err
			}
			base = mergeOverlay(base, local)
		}
	}

	sort.SliceStable(base, func(i, j int) bool { return base[i].Key.Less(base[j].Key) })
	return base, nil
}

func readAnswers(path string) ([]domain.Expectation, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindIO
		if os.IsNotExist(err) {
			kind = domain.KindNotFound
			err = fmt.Errorf("%w: %w", domain.ErrNotFound, err)
		}
		return nil, &domain.OpError{
			Op:   "yamlanswers.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	var yf yamlAnswersFile
	if err := yaml.Unmarshal(b, &yf); err != nil {
		return nil, &domain.OpError{
			Op:   "yamlanswers.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err),
		}
	}

	return mapAnswers(path, yf)
}

func readAnswersOptional(path string) ([]domain.Expectation, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &domain.OpError{
			Op:   "yamlanswers.local",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}

	exps, err := readAnswers(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load local answers: %w", err)
	}
	return exps, nil
}
