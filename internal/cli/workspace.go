package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/eatmyrust/advent/internal/domain"
	"github.com/eatmyrust/advent/internal/infra/answerstore"
	"github.com/eatmyrust/advent/internal/infra/envconfig"
	"github.com/eatmyrust/advent/internal/infra/inputfile"
	"github.com/eatmyrust/advent/internal/infra/logger"
	"github.com/eatmyrust/advent/internal/infra/workspacefinder"
	"github.com/eatmyrust/advent/internal/infra/yamlanswers"
	"github.com/eatmyrust/advent/internal/ports"
	"github.com/eatmyrust/advent/internal/puzzle"
	"github.com/eatmyrust/advent/internal/puzzle/calendar"
)

type workspaceCtx struct {
	root  string
	found bool
	cfg   domain.Config
	debug bool

	catalog *puzzle.Registry
	inputs  *inputfile.Store
	store   *answerstore.JSONStore
	answers ports.ExpectationLoader

	log     *slog.Logger
	cleanup func() error
}

// loadWorkspace resolves the workspace, layers the ADVENT_* environment on
// its config and starts file logging. Outside a workspace the current
// directory and default config are used and nothing is logged.
func loadWorkspace(workspaceFlag string, debug bool) (*workspaceCtx, error) {
	root, found, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg := domain.DefaultConfig()
	if found {
		loaded, err := workspacefinder.LoadConfig(root)
		switch {
		case err == nil:
			cfg = loaded
		case domain.IsKind(err, domain.KindNotFound) && strings.TrimSpace(workspaceFlag) != "":
			// explicit -w without advent.yaml: defaults apply
		default:
			return nil, err
		}
	}

	overlay, err := envconfig.Parse()
	if err != nil {
		return nil, err
	}
	cfg = overlay.Apply(cfg)
	debug = debug || overlay.Debug

	ws := &workspaceCtx{
		root:    root,
		found:   found,
		cfg:     cfg,
		debug:   debug,
		catalog: calendar.New(),
		inputs: inputfile.NewStore(root,
			inputfile.WithInputsDir(cfg.Paths.InputsDir),
			inputfile.WithPattern(cfg.Paths.InputPattern),
		),
		store:   answerstore.NewJSONStore(root, cfg, answerstore.WithIndex(true)),
		answers: yamlanswers.NewLoader(),
		log:     logger.L(),
		cleanup: func() error { return nil },
	}

	if found {
		cleanup, lerr := logger.Setup(logger.Config{Root: root, Debug: debug})
		if lerr == nil {
			ws.cleanup = cleanup
			ws.log = logger.Component("cli")
		}
	}

	return ws, nil
}

func (ws *workspaceCtx) close() {
	if ws != nil && ws.cleanup != nil {
		_ = ws.cleanup()
	}
}

func (ws *workspaceCtx) answersPath(fileFlag string) string {
	p := strings.TrimSpace(fileFlag)
	if p == "" {
		p = ws.cfg.Paths.AnswersFile
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
	}
	return filepath.Clean(p)
}

// resolveWorkspaceRoot returns the explicit workspace when given, otherwise
// the nearest ancestor holding advent.yaml. found is false when neither
// exists and the working directory is returned instead.
func resolveWorkspaceRoot(workspaceFlag string) (root string, found bool, err error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", false, fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, true, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}

	root, err = newFinder().FindRoot(wd)
	if err != nil {
		return wd, false, nil
	}
	return root, true, nil
}

// newFinder stops the upward search at the home directory so a stray
// advent.yaml above it is never picked up.
func newFinder() *workspacefinder.Finder {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return workspacefinder.NewFinder()
	}
	return workspacefinder.NewFinder(workspacefinder.WithStopAt(home))
}

// parseSelector turns the positional year/day arguments into a key. A
// single argument is a day of the default year.
func parseSelector(args []string, defaultYear int) (domain.PuzzleKey, error) {
	switch len(args) {
	case 1:
		return domain.ParseKey(fmt.Sprint(defaultYear), args[0])
	case 2:
		return domain.ParseKey(args[0], args[1])
	default:
		return domain.PuzzleKey{}, fmt.Errorf("expected <year> <day>, got %d argument(s)", len(args))
	}
}

// parseInvocation splits `[year] <day> [input]`. Two arguments are a year and
// a day when both parse as such; otherwise they are a day of the default year
// followed by its input path.
func parseInvocation(args []string, defaultYear int) (domain.PuzzleKey, string, error) {
	switch len(args) {
	case 2:
		key, err := parseSelector(args, defaultYear)
		if err == nil {
			return key, "", nil
		}
		if dayKey, dayErr := parseSelector(args[:1], defaultYear); dayErr == nil {
			return dayKey, args[1], nil
		}
		return domain.PuzzleKey{}, "", err
	case 3:
		key, err := parseSelector(args[:2], defaultYear)
		return key, args[2], err
	default:
		key, err := parseSelector(args, defaultYear)
		return key, "", err
	}
}
