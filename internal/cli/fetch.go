package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// inputPath returns where fetched input for c is cached.
func (c FetchConfig) inputPath() string {
	return filepath.Join(c.CacheDir, fmt.Sprint(c.Year), fmt.Sprintf("%d.input", c.Day))
}

func (c FetchConfig) inputURL() string {
	return fmt.Sprintf("%s/%d/day/%d/input", strings.TrimSuffix(c.BaseURL, "/"), c.Year, c.Day)
}

// fileOrFetch returns the cached puzzle input, downloading and caching it
// first if needed.
func (c *CLI) fileOrFetch(ctx context.Context, cfg FetchConfig, client *http.Client) ([]byte, error) {
	path := cfg.inputPath()
	if b, err := os.ReadFile(path); err == nil {
		c.Logger.Debug("using cached input", "path", path)
		return b, nil
	}

	session, err := readSession(cfg.SessionFile)
	if err != nil {
		return nil, err
	}
	url := cfg.inputURL()
	c.Logger.Info("fetching input", "url", url)
	body, err := fetch(ctx, client, url, session)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, body, 0644); err != nil {
		return nil, err
	}
	return body, nil
}

func readSession(file string) (string, error) {
	path, err := expandHome(file)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading session: %w", err)
	}
	s := strings.TrimSpace(string(b))
	if s == "" {
		return "", fmt.Errorf("session file %s is empty", path)
	}
	return s, nil
}

func fetch(ctx context.Context, client *http.Client, url, session string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}
