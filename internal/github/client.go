package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gotofork-core/internal/metrics"
)

const (
	// DefaultBaseURL is the public GitHub REST API
	DefaultBaseURL = "https://api.github.com"

	acceptHeader = "application/vnd.github.v3+json"

	// error bodies are truncated to keep logs readable
	maxErrorBody = 512
)

// APIError is returned for any non-2xx response
type APIError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github API %s returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Client handles GitHub API interactions
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *metrics.Metrics
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at another API root (GitHub Enterprise, tests)
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithMetrics records every request on m
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a new GitHub API client
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Owner is the owner object embedded in repository payloads
type Owner struct {
	Login string `json:"login"`
}

// User represents the authenticated user
type User struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

// Organization represents an organization membership entry
type Organization struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

// Repository represents a GitHub repository from the API
type Repository struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	FullName string      `json:"full_name"`
	HTMLURL  string      `json:"html_url"`
	Owner    Owner       `json:"owner"`
	Fork     bool        `json:"fork"`
	Parent   *Repository `json:"parent,omitempty"`
	Source   *Repository `json:"source,omitempty"`
}

// GetAuthenticatedUser fetches the user behind accessToken
func (c *Client) GetAuthenticatedUser(ctx context.Context, accessToken string) (*User, error) {
	var user User
	if err := c.get(ctx, "user", "/user", nil, accessToken, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetRepository fetches a repository by owner and name
func (c *Client) GetRepository(ctx context.Context, accessToken, owner, name string) (*Repository, error) {
	path := fmt.Sprintf("/repos/%s/%s", url.PathEscape(owner), url.PathEscape(name))

	var repo Repository
	if err := c.get(ctx, "repository", path, nil, accessToken, &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

// ListUserOrganizations fetches the first page (up to 100) of the user's organizations
func (c *Client) ListUserOrganizations(ctx context.Context, accessToken string) ([]Organization, error) {
	query := url.Values{"per_page": {"100"}}

	var orgs []Organization
	if err := c.get(ctx, "organizations", "/user/orgs", query, accessToken, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// ListForks fetches one page of forks of owner/name
func (c *Client) ListForks(ctx context.Context, accessToken, owner, name string, page, perPage int) ([]Repository, error) {
	path := fmt.Sprintf("/repos/%s/%s/forks", url.PathEscape(owner), url.PathEscape(name))
	query := url.Values{
		"per_page": {strconv.Itoa(perPage)},
		"page":     {strconv.Itoa(page)},
	}

	var forks []Repository
	if err := c.get(ctx, "forks", path, query, accessToken, &forks); err != nil {
		return nil, err
	}
	return forks, nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, query url.Values, accessToken string, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", accessToken))
	req.Header.Set("Accept", acceptHeader)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveGitHubRequest(endpoint, 0, time.Since(start))
		return fmt.Errorf("failed to fetch %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	c.metrics.ObserveGitHubRequest(endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", endpoint, err)
	}
	return nil
}
