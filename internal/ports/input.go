package ports

import (
	"context"

	"github.com/eatmyrust/advent/internal/domain"
)

// InputLoader reads puzzle input text and resolves default input paths.
type InputLoader interface {
	Load(path string) (string, error)
	DefaultPath(key domain.PuzzleKey) (string, error)
}

// InputWriter persists downloaded puzzle input.
type InputWriter interface {
	Exists(path string) bool
	Write(path string, data []byte) error
}

// InputFetcher downloads the personal puzzle input for a key.
type InputFetcher interface {
	Fetch(ctx context.Context, key domain.PuzzleKey) ([]byte, error)
}
