package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/eatmyrust/advent/internal/domain"
	"github.com/eatmyrust/advent/internal/ports"
	"github.com/eatmyrust/advent/internal/puzzle"
)

type SolvePuzzle struct {
	catalog ports.SolverCatalog
	inputs  ports.InputLoader
	store   ports.AnswerStore
	log     *slog.Logger
	now     func() time.Time
}

type SolveOption func(*SolvePuzzle)

// WithAnswerStore enables persisting results when a request asks for it.
func WithAnswerStore(s ports.AnswerStore) SolveOption {
	return func(uc *SolvePuzzle) {
		uc.store = s
	}
}

func WithLogger(l *slog.Logger) SolveOption {
	return func(uc *SolvePuzzle) {
		if l != nil {
			uc.log = l
		}
	}
}

func WithClock(now func() time.Time) SolveOption {
	return func(uc *SolvePuzzle) {
		if now != nil {
			uc.now = now
		}
	}
}

func NewSolvePuzzle(catalog ports.SolverCatalog, inputs ports.InputLoader, opts ...SolveOption) *SolvePuzzle {
	uc := &SolvePuzzle{
		catalog: catalog,
		inputs:  inputs,
		log:     discardLogger(),
		now:     utcNow,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// SolveRequest selects a puzzle and its input. An empty InputPath falls back
// to the workspace input pattern; zero Parts runs both.
type SolveRequest struct {
	Key       domain.PuzzleKey
	InputPath string
	Parts     puzzle.Parts
	Save      bool
}

// Execute parses the input and computes both answers. The returned id is
// non-empty only when the result was persisted.
func (uc *SolvePuzzle) Execute(ctx context.Context, req SolveRequest) (domain.SolveResult, string, error) {
	res := domain.SolveResult{Key: req.Key, StartedAt: uc.now()}

	if err := ctx.Err(); err != nil {
		res.EndedAt = uc.now()
		return res, "", err
	}

	entry, err := uc.catalog.Lookup(req.Key)
	if err != nil {
		res.EndedAt = uc.now()
		return res, "", err
	}
	res.Title = entry.Title

	path := req.InputPath
	if path == "" {
		if path, err = uc.inputs.DefaultPath(req.Key); err != nil {
			res.EndedAt = uc.now()
			return res, "", err
		}
	}
	res.InputPath = path

	uc.log.Debug("solve.start", "puzzle", req.Key.String(), "input", path)

	text, err := uc.inputs.Load(path)
	if err != nil {
		res.EndedAt = uc.now()
		uc.log.Warn("solve.failed", "puzzle", req.Key.String(), "kind", domain.KindOf(err), "err", err)
		return res, "", err
	}

	answers, err := entry.SolveParts(text, req.Parts)
	res.Answers = answers
	res.EndedAt = uc.now()
	if err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) && oe.Path == "" {
			oe.Path = path
		}
		uc.log.Warn("solve.failed", "puzzle", req.Key.String(), "kind", domain.KindOf(err), "err", err)
		return res, "", err
	}

	uc.log.Info("solve.ok",
		"puzzle", req.Key.String(),
		"input", path,
		"duration_ms", res.Duration().Milliseconds(),
	)

	if !req.Save || uc.store == nil {
		return res, "", nil
	}

	id, err := uc.store.SaveRun(domain.RunArtifact{Result: res})
	if err != nil {
		return res, "", err
	}
	uc.log.Info("solve.saved", "puzzle", req.Key.String(), "id", id)
	return res, id, nil
}
