package usecase

import (
	"context"
	"log/slog"

	"github.com/eatmyrust/advent/internal/domain"
	"github.com/eatmyrust/advent/internal/ports"
)

type FetchInput struct {
	fetcher ports.InputFetcher
	inputs  ports.InputLoader
	writer  ports.InputWriter
	log     *slog.Logger
}

func NewFetchInput(f ports.InputFetcher, il ports.InputLoader, w ports.InputWriter, log *slog.Logger) *FetchInput {
	if log == nil {
		log = discardLogger()
	}
	return &FetchInput{fetcher: f, inputs: il, writer: w, log: log}
}

// FetchOutcome reports where the input landed. Skipped is set when the file
// was already present and force was not requested.
type FetchOutcome struct {
	Path    string
	Bytes   int
	Skipped bool
}

func (uc *FetchInput) Execute(ctx context.Context, key domain.PuzzleKey, force bool) (FetchOutcome, error) {
	path, err := uc.inputs.DefaultPath(key)
	if err != nil {
		return FetchOutcome{}, err
	}

	if !force && uc.writer.Exists(path) {
		uc.log.Info("fetch.skipped", "puzzle", key.String(), "path", path)
		return FetchOutcome{Path: path, Skipped: true}, nil
	}

	body, err := uc.fetcher.Fetch(ctx, key)
	if err != nil {
		uc.log.Warn("fetch.failed", "puzzle", key.String(), "err", err)
		return FetchOutcome{Path: path}, err
	}

	if err := uc.writer.Write(path, body); err != nil {
		return FetchOutcome{Path: path}, err
	}

	uc.log.Info("fetch.ok", "puzzle", key.String(), "path", path, "bytes", len(body))
	return FetchOutcome{Path: path, Bytes: len(body)}, nil
}
