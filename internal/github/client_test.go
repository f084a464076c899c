package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/time/rate"
)

// newTestClient points a client at a test server and removes the rate limit.
func newTestClient(srv *httptest.Server, token string) *Client {
	c := NewClient(token)
	c.baseURL = srv.URL
	c.limiter = rate.NewLimiter(rate.Inf, 1)
	return c
}

func TestMissingLicenseRepoInvalid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := newTestClient(srv, "")
	_, err := c.MissingLicense(context.Background(), "ghost", "nope")
	var invalid *RepositoryInvalidError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *RepositoryInvalidError, got %v", err)
	}
	if invalid.Status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", invalid.Status)
	}
	if invalid.Owner != "ghost" || invalid.Name != "nope" {
		t.Fatalf("error carries %s/%s, want ghost/nope", invalid.Owner, invalid.Name)
	}
}

func TestMissingLicenseAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/a/b":
			w.Write([]byte(`{"full_name":"a/b"}`))
		case "/repos/a/b/license":
			http.NotFound(w, r)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := newTestClient(srv, "")
	missing, err := c.MissingLicense(context.Background(), "a", "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !missing {
		t.Fatal("expected missing license")
	}
}

func TestMissingLicensePresent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/a/b":
			w.Write([]byte(`{"full_name":"a/b"}`))
		case "/repos/a/b/license":
			w.Write([]byte(`{"license":{"spdx_id":"MIT"}}`))
		}
	}))
	defer srv.Close()

	c := newTestClient(srv, "")
	missing, err := c.MissingLicense(context.Background(), "a", "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing {
		t.Fatal("expected license to be present")
	}
}

func TestAuthHeaderForwarded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer sekrit" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(srv, "sekrit")
	if _, err := c.MissingLicense(context.Background(), "a", "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
