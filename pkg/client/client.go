// Package client is a typed Go client for the GramaConnect HTTP API. Besides
// the endpoint wrappers it carries the client-side state a front end needs:
// a persisted login session, an issue report draft with photo staging, and
// a location selector.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Client calls the API. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a Client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken sets the bearer token sent with every request. An empty token
// makes requests anonymous.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// APIError is a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
	// Detail carries the server's error text on 500 responses.
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %d %s: %s", e.StatusCode, e.Message, e.Detail)
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("client: encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("client: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.bearer(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var eb struct {
			Message string            `json:"message"`
			Fields  map[string]string `json:"fields"`
			Error   string            `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		if eb.Message == "" {
			eb.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: eb.Message, Fields: eb.Fields, Detail: eb.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decode %s %s: %w", method, path, err)
	}
	return nil
}

// Register creates an account. It does not log in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*UserSummary, error) {
	var out UserSummary
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a token. It does not change the
// client's own token; Session does that.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the caller's profile.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListIssues lists issues, most recent first.
func (c *Client) ListIssues(ctx context.Context, q IssueQuery) ([]Issue, error) {
	var out []Issue
	if err := c.do(ctx, http.MethodGet, "/api/issues", q.values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetIssue fetches one issue.
func (c *Client) GetIssue(ctx context.Context, id string) (*Issue, error) {
	var out Issue
	if err := c.do(ctx, http.MethodGet, "/api/issues/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IssueHistory returns the issue's activity log, newest first.
func (c *Client) IssueHistory(ctx context.Context, id string) ([]Activity, error) {
	var out []Activity
	if err := c.do(ctx, http.MethodGet, "/api/issues/"+url.PathEscape(id)+"/history", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReportIssue submits a new issue. Photos the server refused are listed in
// the result; the issue is created regardless.
func (c *Client) ReportIssue(ctx context.Context, req ReportRequest) (*ReportResult, error) {
	var out ReportResult
	if err := c.do(ctx, http.MethodPost, "/api/issues", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClaimIssue assigns a reported issue to the calling volunteer.
func (c *Client) ClaimIssue(ctx context.Context, id string) (*Issue, error) {
	var out Issue
	if err := c.do(ctx, http.MethodPost, "/api/issues/"+url.PathEscape(id)+"/claim", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStatus moves an issue along its lifecycle.
func (c *Client) UpdateStatus(ctx context.Context, id string, req StatusUpdate) (*Issue, error) {
	var out Issue
	if err := c.do(ctx, http.MethodPatch, "/api/issues/"+url.PathEscape(id)+"/status", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSolutions lists the solutions proposed for an issue, oldest first.
func (c *Client) ListSolutions(ctx context.Context, issueID string) ([]Solution, error) {
	var out []Solution
	if err := c.do(ctx, http.MethodGet, "/api/issues/"+url.PathEscape(issueID)+"/solutions", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddSolution proposes a solution for an issue.
func (c *Client) AddSolution(ctx context.Context, issueID string, req SolutionRequest) (*Solution, error) {
	var out Solution
	if err := c.do(ctx, http.MethodPost, "/api/issues/"+url.PathEscape(issueID)+"/solutions", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VoteSolution adds one vote to a solution.
func (c *Client) VoteSolution(ctx context.Context, id string) (*Solution, error) {
	var out Solution
	if err := c.do(ctx, http.MethodPost, "/api/solutions/"+url.PathEscape(id)+"/vote", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListContent searches the education hub.
func (c *Client) ListContent(ctx context.Context, q ContentQuery) ([]Content, error) {
	var out []Content
	if err := c.do(ctx, http.MethodGet, "/api/content", q.values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ViewContent fetches one item and counts the view.
func (c *Client) ViewContent(ctx context.Context, id string) (*Content, error) {
	var out Content
	if err := c.do(ctx, http.MethodGet, "/api/content/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Dashboard returns the caller's role-specific dashboard.
func (c *Client) Dashboard(ctx context.Context) (*Dashboard, error) {
	var out Dashboard
	if err := c.do(ctx, http.MethodGet, "/api/dashboard", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReverseGeocode resolves coordinates to an address.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) (Location, error) {
	q := url.Values{}
	q.Set("lat", formatCoord(lat))
	q.Set("lng", formatCoord(lng))
	var out Location
	err := c.do(ctx, http.MethodGet, "/api/location/reverse", q, nil, &out)
	return out, err
}

// SearchPlace returns the best match for a free-text place query.
func (c *Client) SearchPlace(ctx context.Context, query string) (Location, error) {
	var out Location
	err := c.do(ctx, http.MethodGet, "/api/location/search", url.Values{"q": {query}}, nil, &out)
	return out, err
}

// GeolocationFailure asks the server for the message matching a device
// geolocation failure code.
func (c *Client) GeolocationFailure(ctx context.Context, code string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/location/failure", nil, map[string]string{"code": code}, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
