package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Client queries the GitHub REST API for repository and license lookups.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient builds a GitHub client. token may be empty; unauthenticated
// requests work but hit a much lower rate limit.
func NewClient(token string) *Client {
	return &Client{
		baseURL:    "https://api.github.com",
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		// Unauthenticated ceiling is 60 reqs/hour; stay well under it
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

func (c *Client) get(ctx context.Context, path string) (int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

// MissingLicense reports whether the repository exists but carries no license
// file. A non-2xx on the repository itself yields *RepositoryInvalidError.
// A single failed call is terminal for this check; there are no retries.
func (c *Client) MissingLicense(ctx context.Context, owner, name string) (bool, error) {
	status, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s", owner, name))
	if err != nil {
		return false, err
	}
	if status < 200 || status > 299 {
		return false, &RepositoryInvalidError{Owner: owner, Name: name, Status: status}
	}

	status, err = c.get(ctx, fmt.Sprintf("/repos/%s/%s/license", owner, name))
	if err != nil {
		return false, err
	}
	// GitHub answers 404 on the license sub-resource when none is detected
	return status < 200 || status > 299, nil
}
