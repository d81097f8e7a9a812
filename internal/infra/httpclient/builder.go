package httpclient

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/eatmyrust/advent/internal/domain"
)

// Request describes an outgoing call independently of net/http.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Cookies map[string]string
}

// BuildRequest builds an HTTP request from a Request.
func BuildRequest(ctx context.Context, spec Request) (*http.Request, error) {
	if strings.TrimSpace(spec.URL) == "" {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("request url is empty"),
		}
	}

	method := strings.ToUpper(strings.TrimSpace(spec.Method))
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, spec.URL, nil)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	for k, v := range spec.Headers {
		req.Header.Set(k, v)
	}
	for name, value := range spec.Cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	return req, nil
}
