package cli

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inputServer serves input for 2022 day 16 to requests carrying the
// session cookie "secret".
func inputServer(t *testing.T, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/2022/day/16/input" {
			http.NotFound(w, r)
			return
		}
		if c, err := r.Cookie("session"); err != nil || c.Value != "secret" {
			http.Error(w, "bad session", http.StatusBadRequest)
			return
		}
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func fetchConfig(t *testing.T, baseURL, session string) FetchConfig {
	t.Helper()
	cfg := DefaultConfig().Fetch
	cfg.BaseURL = baseURL + "/"
	cfg.CacheDir = t.TempDir()
	cfg.SessionFile = writeFile(t, "aoc.session", session+"\n")
	return cfg
}

func TestFileOrFetch(t *testing.T) {
	srv, hits := inputServer(t, "puzzle input\n")
	cfg := fetchConfig(t, srv.URL, "secret")
	c := New(io.Discard, LogDebug)

	got, err := c.fileOrFetch(context.Background(), cfg, srv.Client())
	require.NoError(t, err)
	assert.Equal(t, "puzzle input\n", string(got))

	cached, err := os.ReadFile(filepath.Join(cfg.CacheDir, "2022", "16.input"))
	require.NoError(t, err)
	assert.Equal(t, got, cached)

	got, err = c.fileOrFetch(context.Background(), cfg, srv.Client())
	require.NoError(t, err)
	assert.Equal(t, "puzzle input\n", string(got))
	assert.EqualValues(t, 1, hits.Load(), "second read comes from the cache")
}

func TestFileOrFetchErrors(t *testing.T) {
	srv, _ := inputServer(t, "")
	c := New(io.Discard, LogInfo)

	cfg := fetchConfig(t, srv.URL, "wrong")
	_, err := c.fileOrFetch(context.Background(), cfg, srv.Client())
	assert.ErrorContains(t, err, "bad status")
	_, err = os.Stat(cfg.inputPath())
	assert.True(t, os.IsNotExist(err), "failed fetches are not cached")

	cfg = fetchConfig(t, srv.URL, "   ")
	_, err = c.fileOrFetch(context.Background(), cfg, srv.Client())
	assert.ErrorContains(t, err, "empty")

	cfg.SessionFile = filepath.Join(t.TempDir(), "none")
	_, err = c.fileOrFetch(context.Background(), cfg, srv.Client())
	assert.ErrorContains(t, err, "reading session")
}
