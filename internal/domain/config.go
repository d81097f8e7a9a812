package domain

// Config represents the workspace configuration loaded from advent.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
	Fetch    FetchConfig
}

type DefaultsConfig struct {
	Year int
}

type PathsConfig struct {
	InputsDir string
	// InputPattern is rendered with {{year}}, {{day}} and {{day2}} to find the
	// input file of a puzzle, relative to InputsDir.
	InputPattern string
	AnswersFile  string
	RunsDir      string
}

type FetchConfig struct {
	BaseURL   string
	UserAgent string
	Session   string // never read from advent.yaml, only from the environment
}

// DefaultConfig provides sane defaults if advent.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Year: 2023,
		},
		Paths: PathsConfig{
			InputsDir:    "inputs",
			InputPattern: "{{year}}/day{{day2}}.txt",
			AnswersFile:  "answers.yaml",
			RunsDir:      "runs",
		},
		Fetch: FetchConfig{
			BaseURL:   "https://adventofcode.com",
			UserAgent: "github.com/eatmyrust/advent",
		},
	}
}

// WorkspaceSpec describes where `advent init` scaffolds a workspace.
type WorkspaceSpec struct {
	Root string
}
