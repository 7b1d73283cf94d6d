package robots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestChecker() *Checker {
	return NewWithConfig(CheckerConfig{UserAgent: "test-agent/1.0"})
}

func TestAllowedRespectsDisallowRules(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
	}))
	defer server.Close()

	c := newTestChecker()
	ctx := context.Background()

	assert.True(t, c.Allowed(ctx, server.URL+"/public/page.html"))
	assert.False(t, c.Allowed(ctx, server.URL+"/private/page.html"))
}

func TestAllowedDisallowAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("User-agent: *\nDisallow: /\n"))
	}))
	defer server.Close()

	c := newTestChecker()
	assert.False(t, c.Allowed(context.Background(), server.URL+"/anything"))
}

func TestAllowedFailsOpenOnMissingFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	c := newTestChecker()
	assert.True(t, c.Allowed(context.Background(), server.URL+"/page.html"))
}

func TestAllowedFailsOpenOnUnreachableHost(t *testing.T) {
	// Grab a port that is guaranteed closed by the time we use it.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := server.URL
	server.Close()

	c := newTestChecker()
	assert.True(t, c.Allowed(context.Background(), deadURL+"/page.html"))
}

func TestAllowedFailsOpenOnBadURL(t *testing.T) {
	c := newTestChecker()
	assert.True(t, c.Allowed(context.Background(), "not-a-url"))
}
