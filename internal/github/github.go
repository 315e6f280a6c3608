// Package github provides a thin client for the GitHub REST API used to
// populate the projects page.
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

	"github.com/leonardomurakami/portfolio/internal/types"
)

// DefaultBaseURL is the public GitHub API endpoint.
const DefaultBaseURL = "https://api.github.com"

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultLimit is the default number of repositories fetched per listing.
const DefaultLimit = 10

// DefaultUserAgent is the user agent string for API requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; PortfolioSite/1.0)"

// Error represents an error talking to the GitHub API.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("github error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("github error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Client fetches repository data for a single user.
type Client struct {
	baseURL    string
	username   string
	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(base, "/")
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the given user. The token is optional; when
// set it is sent on every request to raise the rate limit.
func NewClient(username, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		username:   username,
		token:      token,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// repo mirrors the subset of the GitHub repository payload we consume.
type repo struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	HTMLURL         string   `json:"html_url"`
	Homepage        string   `json:"homepage"`
	StargazersCount int      `json:"stargazers_count"`
	Language        string   `json:"language"`
	UpdatedAt       string   `json:"updated_at"`
	Fork            bool     `json:"fork"`
	Topics          []string `json:"topics"`
}

// Repositories fetches the user's public repositories, most recently updated
// first, skipping forks. An unset username returns an empty list without
// making a request.
func (c *Client) Repositories(ctx context.Context, limit int) ([]types.Project, error) {
	if c.username == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	endpoint := fmt.Sprintf("%s/users/%s/repos", c.baseURL, url.PathEscape(c.username))
	query := url.Values{
		"sort":      {"updated"},
		"direction": {"desc"},
		"per_page":  {strconv.Itoa(limit)},
		"type":      {"public"},
	}

	var repos []repo
	if err := c.getJSON(ctx, endpoint+"?"+query.Encode(), &repos); err != nil {
		return nil, err
	}

	projects := make([]types.Project, 0, len(repos))
	for _, r := range repos {
		if r.Fork {
			continue
		}
		projects = append(projects, types.Project{
			Name:         r.Name,
			Description:  r.Description,
			GitHubURL:    r.HTMLURL,
			DemoURL:      r.Homepage,
			Technologies: extractTechnologies(r),
			Stars:        r.StargazersCount,
			Language:     r.Language,
			UpdatedAt:    r.UpdatedAt,
			Source:       types.SourceGitHub,
		})
	}
	return projects, nil
}

// Languages fetches the language byte counts for one repository.
func (c *Client) Languages(ctx context.Context, repoName string) (map[string]int64, error) {
	if c.username == "" {
		return nil, nil
	}

	endpoint := fmt.Sprintf("%s/repos/%s/%s/languages",
		c.baseURL, url.PathEscape(c.username), url.PathEscape(repoName))

	var languages map[string]int64
	if err := c.getJSON(ctx, endpoint, &languages); err != nil {
		return nil, err
	}
	return languages, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &Error{URL: rawURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", DefaultUserAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{URL: rawURL, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &Error{
			URL:     rawURL,
			Message: fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{URL: rawURL, Message: "failed to read response", Cause: err}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{URL: rawURL, Message: "failed to parse response", Cause: err}
	}
	return nil
}

// extractTechnologies joins the primary language and topics into the
// comma-separated technologies string used by project records.
func extractTechnologies(r repo) string {
	techs := make([]string, 0, len(r.Topics)+1)
	if r.Language != "" {
		techs = append(techs, r.Language)
	}
	techs = append(techs, r.Topics...)
	return strings.Join(techs, ", ")
}
