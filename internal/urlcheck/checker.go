package urlcheck

import (
	"context"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 5 * time.Second

// Checker verifies that an external URL still resolves. The transport is
// pluggable so tests can substitute a stub client.
type Checker struct {
	Client  *http.Client
	Timeout time.Duration
}

// New returns a Checker with the given timeout (5s when zero).
func New(timeout time.Duration) *Checker {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Checker{
		Client:  &http.Client{Timeout: timeout},
		Timeout: timeout,
	}
}

// Check reports whether the URL responds with a status in [200, 400).
// A HEAD request is tried first; providers answering 405 get a full GET.
// Timeouts and connection failures report unavailable, never an error.
func (c *Checker) Check(ctx context.Context, url string) bool {
	if strings.TrimSpace(url) == "" {
		return false
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	status, err := c.do(ctx, http.MethodHead, url)
	if err != nil {
		return false
	}
	if status == http.StatusMethodNotAllowed {
		status, err = c.do(ctx, http.MethodGet, url)
		if err != nil {
			return false
		}
	}
	return status >= 200 && status < 400
}

func (c *Checker) do(ctx context.Context, method, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return 0, err
	}
	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}
