package httpclient

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew_FollowsSameHostRedirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new", http.StatusFound)
	})
	mux.HandleFunc("/new", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	resp, err := New(DefaultConfig()).Get(server.URL + "/old")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 after redirect, got %d", resp.StatusCode)
	}
}

func TestNew_RefusesCrossHostRedirect(t *testing.T) {
	other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Errorf("redirect target must not be contacted")
	}))
	defer other.Close()

	// Host includes the port, so two test servers are two hosts.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, other.URL, http.StatusFound)
	}))
	defer server.Close()

	_, err := New(DefaultConfig()).Get(server.URL)
	if !errors.Is(err, ErrRedirectRefused) {
		t.Fatalf("expected ErrRedirectRefused, got %v", err)
	}
}

func TestNew_LimitsRedirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, r.URL.Path+"x", http.StatusFound)
	}))
	defer server.Close()

	cfg := DefaultConfig()
	cfg.MaxRedirects = 2
	_, err := New(cfg).Get(server.URL + "/a")
	if !errors.Is(err, ErrRedirectRefused) {
		t.Fatalf("expected ErrRedirectRefused, got %v", err)
	}
}
