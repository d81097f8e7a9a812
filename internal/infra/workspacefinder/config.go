package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eatmyrust/advent/internal/domain"
)

// LoadConfig loads advent.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Advent.Defaults.Year != 0 {
		cfg.Defaults.Year = y.Advent.Defaults.Year
	}
	if y.Advent.Paths.InputsDir != "" {
		cfg.Paths.InputsDir = y.Advent.Paths.InputsDir
	}
	if y.Advent.Paths.InputPattern != "" {
		cfg.Paths.InputPattern = y.Advent.Paths.InputPattern
	}
	if y.Advent.Paths.AnswersFile != "" {
		cfg.Paths.AnswersFile = y.Advent.Paths.AnswersFile
	}
	if y.Advent.Paths.RunsDir != "" {
		cfg.Paths.RunsDir = y.Advent.Paths.RunsDir
	}
	if y.Advent.Fetch.BaseURL != "" {
		cfg.Fetch.BaseURL = strings.TrimRight(y.Advent.Fetch.BaseURL, "/")
	}
	if y.Advent.Fetch.UserAgent != "" {
		cfg.Fetch.UserAgent = y.Advent.Fetch.UserAgent
	}

	if err := validate(path, cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validate(path string, cfg domain.Config) error {
	y := cfg.Defaults.Year
	if y < domain.MinYear || y > domain.MaxYear {
		return invalidField(path, "defaults.year", fmt.Sprintf("year %d outside %d..%d", y, domain.MinYear, domain.MaxYear))
	}
	p := cfg.Paths.InputPattern
	if !strings.Contains(p, "{{day}}") && !strings.Contains(p, "{{day2}}") {
		return invalidField(path, "paths.input_pattern", "pattern must reference {{day}} or {{day2}}")
	}
	return nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "workspacefinder.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}

type yamlConfig struct {
	Advent struct {
		Defaults struct {
			Year int `yaml:"year"`
		} `yaml:"defaults"`

		Paths struct {
			InputsDir    string `yaml:"inputs_dir"`
			InputPattern string `yaml:"input_pattern"`
			AnswersFile  string `yaml:"answers_file"`
			RunsDir      string `yaml:"runs_dir"`
		} `yaml:"paths"`

		Fetch struct {
			BaseURL   string `yaml:"base_url"`
			UserAgent string `yaml:"user_agent"`
		} `yaml:"fetch"`
	} `yaml:"advent"`
}
