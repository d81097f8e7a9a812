// Package inputwatch reports changes to a single puzzle input file.
package inputwatch

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/eatmyrust/advent/internal/domain"
)

const defaultDebounce = 150 * time.Millisecond

// Watcher watches the directory holding the file, so saves done through a
// temporary file and a rename are seen as well.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	debounce time.Duration
	log      *slog.Logger
}

type Option func(*Watcher)

// WithDebounce sets how long events must settle before a change is
// reported.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &domain.OpError{Op: "inputwatch.new", Kind: domain.KindIO, Path: path, Err: err}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &domain.OpError{Op: "inputwatch.new", Kind: domain.KindIO, Path: abs, Err: err}
	}

	dir := filepath.Dir(abs)
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, &domain.OpError{Op: "inputwatch.add", Kind: domain.KindIO, Path: dir, Err: err}
	}

	w := &Watcher{
		fsw:      fsw,
		path:     abs,
		debounce: defaultDebounce,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path is the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Changes delivers one value per settled burst of writes to the file. The
// channel is closed when ctx is done or the watcher is closed. A change that
// arrives while the previous one is still unread is merged into it.
func (w *Watcher) Changes(ctx context.Context) <-chan struct{} {
	out := make(chan struct{}, 1)

	go func() {
		defer close(out)

		var (
			timer *time.Timer
			fire  <-chan time.Time
		)
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-w.fsw.Events:
				if !ok {
					return
				}
				if !w.matches(ev) {
					continue
				}
				w.log.Debug("watch.event", "path", ev.Name, "op", ev.Op.String())
				if timer == nil {
					timer = time.NewTimer(w.debounce)
				} else {
					timer.Reset(w.debounce)
				}
				fire = timer.C

			case err, ok := <-w.fsw.Errors:
				if !ok {
					return
				}
				w.log.Warn("watch.error", "path", w.path, "err", err)

			case <-fire:
				fire = nil
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()

	return out
}

func (w *Watcher) matches(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op&(fsnotify.Write|fsnotify.Create) != 0
}

func (w *Watcher) Close() error {
	return w.fsw.Close()
}
