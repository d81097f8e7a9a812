package answerstore

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/eatmyrust/advent/internal/domain"
	"github.com/eatmyrust/advent/internal/ports"
)

const (
	defaultRunsDir = "runs"
	indexFile      = "index.jsonl"
)

type JSONStore struct {
	rootDir     string
	runsDirName string
	writeIndex  bool
	now         func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: runs/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	runsDir := cfg.Paths.RunsDir
	if strings.TrimSpace(runsDir) == "" {
		runsDir = defaultRunsDir
	}

	s := &JSONStore{
		rootDir:     root,
		runsDirName: runsDir,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.AnswerStore = (*JSONStore)(nil)

func (s *JSONStore) dir() string {
	if filepath.IsAbs(s.runsDirName) {
		return s.runsDirName
	}
	return filepath.Join(s.rootDir, s.runsDirName)
}

func (s *JSONStore) SaveRun(run domain.RunArtifact) (string, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "answerstore.mkdir",
			Kind: domain.KindIO,
			Path: dir,
			Err:  err,
		}
	}

	ts := run.Result.StartedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	key := run.Result.Key
	filename := fmt.Sprintf("%s_%d-day%02d.json", ts.Format("20060102T150405Z"), key.Year, key.Day)
	id := strings.TrimSuffix(filename, ".json")
	path := filepath.Join(dir, filename)

	toSave := toRecord(id, run.Result)
	if toSave.StartedAt.IsZero() {
		toSave.StartedAt = ts
	}

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "answerstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "answerstore.write",
			Kind: domain.KindIO,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "answerstore.rename",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, filename, toSave)
	}

	return id, nil
}

// Latest returns the most recently indexed run for key. ok is false when the
// index is disabled, missing or has no entry for key.
func (s *JSONStore) Latest(key domain.PuzzleKey) (domain.RunArtifact, bool, error) {
	f, err := os.Open(filepath.Join(s.dir(), indexFile))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.RunArtifact{}, false, nil
		}
		return domain.RunArtifact{}, false, &domain.OpError{Op: "answerstore.latest", Kind: domain.KindIO, Err: err}
	}
	defer f.Close()

	var (
		last  indexEntry
		found bool
	)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e indexEntry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			continue
		}
		if e.Year == key.Year && e.Day == key.Day {
			last, found = e, true
		}
	}
	if err := sc.Err(); err != nil {
		return domain.RunArtifact{}, false, &domain.OpError{Op: "answerstore.latest", Kind: domain.KindIO, Err: err}
	}
	if !found {
		return domain.RunArtifact{}, false, nil
	}

	return domain.RunArtifact{
		ID: last.ID,
		Result: domain.SolveResult{
			Key:       key,
			Answers:   domain.Answers{PartOne: last.PartOne, PartTwo: last.PartTwo},
			StartedAt: last.StartedAt,
		},
	}, true, nil
}

type indexEntry struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	Year      int       `json:"year"`
	Day       int       `json:"day"`
	PartOne   string    `json:"part_one"`
	PartTwo   string    `json:"part_two"`
	StartedAt time.Time `json:"started_at"`
}

func (s *JSONStore) appendIndex(dir, filename string, rec runRecord) error {
	line, err := json.Marshal(indexEntry{
		ID:        rec.ID,
		File:      filename,
		Year:      rec.Year,
		Day:       rec.Day,
		PartOne:   rec.PartOne,
		PartTwo:   rec.PartTwo,
		StartedAt: rec.StartedAt,
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, indexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// runRecord is the on-disk layout of a saved run.
type runRecord struct {
	ID         string    `json:"id"`
	Year       int       `json:"year"`
	Day        int       `json:"day"`
	Title      string    `json:"title"`
	InputPath  string    `json:"input_path"`
	PartOne    string    `json:"part_one"`
	PartTwo    string    `json:"part_two"`
	StartedAt  time.Time `json:"started_at"`
	EndedAt    time.Time `json:"ended_at"`
	DurationMS int64     `json:"duration_ms"`
}

func toRecord(id string, r domain.SolveResult) runRecord {
	return runRecord{
		ID:         id,
		Year:       r.Key.Year,
		Day:        r.Key.Day,
		Title:      r.Title,
		InputPath:  r.InputPath,
		PartOne:    r.Answers.PartOne,
		PartTwo:    r.Answers.PartTwo,
		StartedAt:  r.StartedAt.UTC(),
		EndedAt:    r.EndedAt.UTC(),
		DurationMS: r.Duration().Milliseconds(),
	}
}
