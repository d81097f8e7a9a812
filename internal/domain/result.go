package domain

import (
	"errors"
	"time"
)

// Answers holds the two textual answers of a day.
type Answers struct {
	PartOne string
	PartTwo string
}

// RunError is the serializable form of a failure attached to a result.
type RunError struct {
	Kind    ErrorKind
	Message string
}

// NewRunError classifies err; nil stays nil.
func NewRunError(err error) *RunError {
	if err == nil {
		return nil
	}
	return &RunError{Kind: KindOf(err), Message: err.Error()}
}

// SolveResult is the outcome of running one puzzle against one input.
type SolveResult struct {
	Key       PuzzleKey
	Title     string
	InputPath string
	Answers   Answers

	StartedAt time.Time
	EndedAt   time.Time
}

// Duration is how long parsing plus both parts took.
func (r SolveResult) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// PartCheck compares one computed answer with the expected one.
type PartCheck struct {
	Part   int
	Want   string
	Got    string
	Passed bool
}

// CheckResult collects the part checks of a single expectation.
type CheckResult struct {
	Key       PuzzleKey
	Title     string
	InputPath string

	Parts []PartCheck
	Error *RunError
}

// Passed is true when the run succeeded and every checked part matched.
func (r CheckResult) Passed() bool {
	if r.Error != nil {
		return false
	}
	for _, p := range r.Parts {
		if !p.Passed {
			return false
		}
	}
	return true
}

// CheckReport is the output of checking a whole answers file.
type CheckReport struct {
	Source     string
	StartedAt  time.Time
	FinishedAt time.Time

	Results []CheckResult
}

// Failed counts results that did not pass.
func (r CheckReport) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed() {
			n++
		}
	}
	return n
}

// ErrCheckFailed is returned by commands when a report contains failures.
var ErrCheckFailed = errors.New("answers check failed")

// RunArtifact is a persisted solve, kept for later comparison.
type RunArtifact struct {
	ID     string
	Result SolveResult
}
