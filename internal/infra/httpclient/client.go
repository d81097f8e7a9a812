package httpclient

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// ErrRedirectRefused is returned when a response tries to move the request
// to another host or past MaxRedirects.
var ErrRedirectRefused = errors.New("redirect refused")

type Config struct {
	// Whole-request budget, body included. A context deadline still wins.
	Timeout time.Duration

	DialTimeout     time.Duration
	KeepAlive       time.Duration
	TLSHandshake    time.Duration
	ResponseHeader  time.Duration
	IdleConnTimeout time.Duration
	MaxIdleConns    int

	// Redirects are followed only on the original host, at most this many times.
	MaxRedirects int
}

// DefaultConfig is tuned for a handful of sequential downloads from one host.
func DefaultConfig() Config {
	return Config{
		Timeout:         30 * time.Second,
		DialTimeout:     5 * time.Second,
		KeepAlive:       30 * time.Second,
		TLSHandshake:    5 * time.Second,
		ResponseHeader:  10 * time.Second,
		IdleConnTimeout: 30 * time.Second,
		MaxIdleConns:    4,
		MaxRedirects:    3,
	}
}

func New(cfg Config) *http.Client {
	dialer := &net.Dialer{Timeout: cfg.DialTimeout, KeepAlive: cfg.KeepAlive}
	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			DialContext:           dialer.DialContext,
			ForceAttemptHTTP2:     true,
			MaxIdleConns:          cfg.MaxIdleConns,
			MaxIdleConnsPerHost:   cfg.MaxIdleConns,
			IdleConnTimeout:       cfg.IdleConnTimeout,
			TLSHandshakeTimeout:   cfg.TLSHandshake,
			ResponseHeaderTimeout: cfg.ResponseHeader,
		},
		CheckRedirect: sameHostRedirects(cfg.MaxRedirects),
	}
}

// sameHostRedirects keeps the session cookie from following a redirect to a
// different host.
func sameHostRedirects(limit int) func(*http.Request, []*http.Request) error {
	return func(req *http.Request, via []*http.Request) error {
		if len(via) > limit {
			return fmt.Errorf("%w: more than %d redirects", ErrRedirectRefused, limit)
		}
		if origin := via[0].URL.Host; req.URL.Host != origin {
			return fmt.Errorf("%w: %s -> %s", ErrRedirectRefused, origin, req.URL.Host)
		}
		return nil
	}
}
