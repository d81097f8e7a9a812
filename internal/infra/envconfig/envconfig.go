// Package envconfig overlays ADVENT_* environment variables on top of the
// workspace configuration.
package envconfig

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/eatmyrust/advent/internal/domain"
)

// Overlay holds the values read from the environment. Zero values leave the
// workspace configuration untouched.
type Overlay struct {
	Session   string `env:"ADVENT_SESSION"`
	Year      int    `env:"ADVENT_YEAR"`
	InputsDir string `env:"ADVENT_INPUTS_DIR"`
	BaseURL   string `env:"ADVENT_BASE_URL"`
	Debug     bool   `env:"ADVENT_DEBUG"`
}

// Parse reads the overlay from the process environment.
func Parse() (Overlay, error) {
	return parse(env.Options{})
}

// ParseFrom reads the overlay from the given variables instead of the
// process environment.
func ParseFrom(vars map[string]string) (Overlay, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Overlay, error) {
	var o Overlay
	if err := env.ParseWithOptions(&o, opts); err != nil {
		return Overlay{}, &domain.OpError{
			Op:   "envconfig.parse",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("parse env: %w", err),
		}
	}
	o.Session = strings.TrimSpace(o.Session)
	return o, nil
}

// Apply returns cfg with the overlay's non-zero values applied.
func (o Overlay) Apply(cfg domain.Config) domain.Config {
	if o.Session != "" {
		cfg.Fetch.Session = o.Session
	}
	if o.Year != 0 {
		cfg.Defaults.Year = o.Year
	}
	if o.InputsDir != "" {
		cfg.Paths.InputsDir = o.InputsDir
	}
	if o.BaseURL != "" {
		cfg.Fetch.BaseURL = strings.TrimRight(o.BaseURL, "/")
	}
	return cfg
}
