package httpclient

import (
	"context"
	"io"
	"net/http"
	"time"
)

// Puzzle inputs are a few tens of kilobytes; anything past this is not one.
const defaultMaxBodyBytes = 1 << 20

// Response is a fully read, size-bounded HTTP response.
type Response struct {
	Status    int
	Body      []byte
	Truncated bool
	Duration  time.Duration
}

// Executor sends requests and reads at most maxBodyBytes of each body.
type Executor struct {
	client       *http.Client
	timeout      time.Duration
	maxBodyBytes int64
}

type ExecutorOption func(*Executor)

// WithTimeout caps each call to Do; zero leaves only the caller's deadline.
func WithTimeout(timeout time.Duration) ExecutorOption {
	return func(e *Executor) { e.timeout = timeout }
}

func WithClient(client *http.Client) ExecutorOption {
	return func(e *Executor) { e.client = client }
}

func WithMaxBodyBytes(n int64) ExecutorOption {
	return func(e *Executor) {
		if n > 0 {
			e.maxBodyBytes = n
		}
	}
}

func NewExecutor(opts ...ExecutorOption) *Executor {
	cfg := DefaultConfig()
	e := &Executor{client: New(cfg), timeout: cfg.Timeout, maxBodyBytes: defaultMaxBodyBytes}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Executor) Do(ctx context.Context, req *http.Request) (out Response, err error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	start := time.Now()
	defer func() { out.Duration = time.Since(start) }()

	resp, err := e.client.Do(req.WithContext(ctx))
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	out.Status = resp.StatusCode
	out.Body, out.Truncated, err = readBounded(resp.Body, e.maxBodyBytes)
	return out, err
}

// readBounded reads one byte past limit to tell a body of exactly limit bytes
// from a longer one.
func readBounded(r io.Reader, limit int64) ([]byte, bool, error) {
	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	switch {
	case err != nil:
		return nil, false, err
	case int64(len(b)) > limit:
		return b[:limit], true, nil
	default:
		return b, false, nil
	}
}
