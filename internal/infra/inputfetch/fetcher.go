// Package inputfetch downloads personal puzzle inputs from the event site.
package inputfetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/eatmyrust/advent/internal/domain"
	"github.com/eatmyrust/advent/internal/infra/httpclient"
	"github.com/eatmyrust/advent/internal/ports"
)

const defaultMaxBodyBytes = 512 * 1024

var ErrMissingSession = errors.New("missing session cookie (set ADVENT_SESSION)")

type Fetcher struct {
	exec      *httpclient.Executor
	baseURL   string
	session   string
	userAgent string
}

type Option func(*Fetcher)

func WithExecutor(e *httpclient.Executor) Option {
	return func(f *Fetcher) {
		if e != nil {
			f.exec = e
		}
	}
}

// New builds a Fetcher from the fetch section of the workspace config.
func New(cfg domain.FetchConfig, opts ...Option) *Fetcher {
	f := &Fetcher{
		exec:      httpclient.NewExecutor(httpclient.WithMaxBodyBytes(defaultMaxBodyBytes)),
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		session:   strings.TrimSpace(cfg.Session),
		userAgent: cfg.UserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ ports.InputFetcher = (*Fetcher)(nil)

// URL is where the input for key is served.
func (f *Fetcher) URL(key domain.PuzzleKey) string {
	return fmt.Sprintf("%s/%d/day/%d/input", f.baseURL, key.Year, key.Day)
}

func (f *Fetcher) Fetch(ctx context.Context, key domain.PuzzleKey) ([]byte, error) {
	if f.session == "" {
		return nil, &domain.OpError{Op: "inputfetch.fetch", Kind: domain.KindInvalidConfig, Err: ErrMissingSession}
	}

	url := f.URL(key)
	req, err := httpclient.BuildRequest(ctx, httpclient.Request{
		Method:  http.MethodGet,
		URL:     url,
		Headers: map[string]string{"User-Agent": f.userAgent},
		Cookies: map[string]string{"session": f.session},
	})
	if err != nil {
		return nil, err
	}

	resp, err := f.exec.Do(ctx, req)
	if err != nil {
		return nil, &domain.OpError{Op: "inputfetch.fetch", Kind: domain.KindIO, Path: url, Err: err}
	}

	switch {
	case resp.Status == http.StatusOK:
	case resp.Status == http.StatusNotFound:
		return nil, &domain.OpError{
			Op:   "inputfetch.fetch",
			Kind: domain.KindNotFound,
			Path: url,
			Err:  fmt.Errorf("%w: %s is not unlocked yet", domain.ErrNotFound, key),
		}
	case resp.Status == http.StatusBadRequest || resp.Status == http.StatusUnauthorized || resp.Status == http.StatusForbidden:
		return nil, &domain.OpError{
			Op:   "inputfetch.fetch",
			Kind: domain.KindInvalidConfig,
			Path: url,
			Err:  fmt.Errorf("server rejected the session cookie (status %d)", resp.Status),
		}
	default:
		return nil, &domain.OpError{
			Op:   "inputfetch.fetch",
			Kind: domain.KindIO,
			Path: url,
			Err:  fmt.Errorf("unexpected status %d: %s", resp.Status, firstLine(resp.Body)),
		}
	}

	if resp.Truncated {
		return nil, &domain.OpError{
			Op:   "inputfetch.fetch",
			Kind: domain.KindIO,
			Path: url,
			Err:  fmt.Errorf("input larger than %d bytes", len(resp.Body)),
		}
	}
	return resp.Body, nil
}

func firstLine(b []byte) string {
	s, _, _ := strings.Cut(string(b), "\n")
	if len(s) > 120 {
		s = s[:120]
	}
	return s
}
