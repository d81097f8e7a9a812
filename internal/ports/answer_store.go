package ports

import "github.com/eatmyrust/advent/internal/domain"

// AnswerStore persists solve artifacts for later comparison.
type AnswerStore interface {
	SaveRun(run domain.RunArtifact) (id string, err error)
}

// ExpectationLoader loads known-good answers from a source (e.g., filesystem).
type ExpectationLoader interface {
	LoadExpectations(path string) ([]domain.Expectation, error)
}
