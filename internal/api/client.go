// Package api implements the HTTP client for the remote ticket tracker.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/akarpin/tracklog/internal/domain"
)

const (
	userFields     = "id,login,fullName,email,banned"
	projectFields  = "id,shortName,name,description,leader(login,fullName),archived"
	issueFields    = "id,idReadable,summary,description,project(id,shortName,name),customFields(name,value(name,fullName)),created,updated"
	articleFields  = "id,idReadable,summary,content,project(id,shortName,name),reporter(login,fullName),updated"
	workItemFields = "id,date,duration(minutes),author(login,fullName),type(name),text,issue(idReadable,summary)"
)

// Client talks to a tracker instance. One network round-trip per call, no
// retries; retry policy belongs to the caller if anywhere.
type Client struct {
	baseURL string
	token   string
	timeout time.Duration
	http    *http.Client
}

// NewClient creates a Client for the given instance and permanent token.
func NewClient(baseURL, token string, timeoutMs int) *Client {
	if timeoutMs <= 0 {
		timeoutMs = 15000
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		timeout: time.Duration(timeoutMs) * time.Millisecond,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

// do performs one request and decodes the response into out (when out is
// non-nil). An empty or literal-null body is valid and leaves out at its
// zero value.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
		}
		var opErr *net.OpError
		if errors.As(err, &opErr) {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	if out == nil {
		return nil
	}
	trimmed := strings.TrimSpace(string(respBody))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// Me returns the account the token belongs to.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	q := url.Values{"fields": {userFields}}
	var raw userJSON
	if err := c.do(ctx, http.MethodGet, "/api/users/me", q, nil, &raw); err != nil {
		return nil, err
	}
	u := raw.toDomain()
	return &u, nil
}

// ListIssues searches issues with the tracker's query language. An empty
// query lists recent issues. limit caps the page size.
func (c *Client) ListIssues(ctx context.Context, query string, limit int) ([]domain.Issue, error) {
	q := url.Values{"fields": {issueFields}}
	if query != "" {
		q.Set("query", query)
	}
	if limit > 0 {
		q.Set("$top", strconv.Itoa(limit))
	}
	var raw []issueJSON
	if err := c.do(ctx, http.MethodGet, "/api/issues", q, nil, &raw); err != nil {
		return nil, err
	}
	issues := make([]domain.Issue, 0, len(raw))
	for _, r := range raw {
		issues = append(issues, r.toDomain())
	}
	return issues, nil
}

// GetIssue fetches a single issue by readable ID.
func (c *Client) GetIssue(ctx context.Context, id string) (*domain.Issue, error) {
	q := url.Values{"fields": {issueFields}}
	var raw issueJSON
	if err := c.do(ctx, http.MethodGet, "/api/issues/"+url.PathEscape(id), q, nil, &raw); err != nil {
		return nil, err
	}
	issue := raw.toDomain()
	return &issue, nil
}

// CreateIssue creates an issue in the given project.
func (c *Client) CreateIssue(ctx context.Context, projectID, summary, description string) (*domain.Issue, error) {
	body := map[string]any{
		"project":     map[string]string{"id": projectID},
		"summary":     summary,
		"description": description,
	}
	q := url.Values{"fields": {issueFields}}
	var raw issueJSON
	if err := c.do(ctx, http.MethodPost, "/api/issues", q, body, &raw); err != nil {
		return nil, err
	}
	issue := raw.toDomain()
	return &issue, nil
}

// UpdateIssue updates summary and/or description; empty strings leave the
// field untouched.
func (c *Client) UpdateIssue(ctx context.Context, id, summary, description string) (*domain.Issue, error) {
	body := map[string]any{}
	if summary != "" {
		body["summary"] = summary
	}
	if description != "" {
		body["description"] = description
	}
	q := url.Values{"fields": {issueFields}}
	var raw issueJSON
	if err := c.do(ctx, http.MethodPost, "/api/issues/"+url.PathEscape(id), q, body, &raw); err != nil {
		return nil, err
	}
	issue := raw.toDomain()
	return &issue, nil
}

// DeleteIssue removes an issue.
func (c *Client) DeleteIssue(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/issues/"+url.PathEscape(id), nil, nil, nil)
}

// ListProjects lists all projects visible to the token.
func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	q := url.Values{"fields": {projectFields}}
	var raw []projectJSON
	if err := c.do(ctx, http.MethodGet, "/api/admin/projects", q, nil, &raw); err != nil {
		return nil, err
	}
	projects := make([]domain.Project, 0, len(raw))
	for _, r := range raw {
		projects = append(projects, r.toDomain())
	}
	return projects, nil
}

// GetProject fetches one project by ID or short name.
func (c *Client) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	q := url.Values{"fields": {projectFields}}
	var raw projectJSON
	if err := c.do(ctx, http.MethodGet, "/api/admin/projects/"+url.PathEscape(id), q, nil, &raw); err != nil {
		return nil, err
	}
	p := raw.toDomain()
	return &p, nil
}

// ListArticles lists knowledge-base articles, optionally scoped to a
// project short name via the query language.
func (c *Client) ListArticles(ctx context.Context, project string) ([]domain.Article, error) {
	q := url.Values{"fields": {articleFields}}
	if project != "" {
		q.Set("query", "project: "+project)
	}
	var raw []articleJSON
	if err := c.do(ctx, http.MethodGet, "/api/articles", q, nil, &raw); err != nil {
		return nil, err
	}
	articles := make([]domain.Article, 0, len(raw))
	for _, r := range raw {
		articles = append(articles, r.toDomain())
	}
	return articles, nil
}

// GetArticle fetches one article by readable ID.
func (c *Client) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	q := url.Values{"fields": {articleFields}}
	var raw articleJSON
	if err := c.do(ctx, http.MethodGet, "/api/articles/"+url.PathEscape(id), q, nil, &raw); err != nil {
		return nil, err
	}
	a := raw.toDomain()
	return &a, nil
}

// CreateArticle creates an article in the given project.
func (c *Client) CreateArticle(ctx context.Context, projectID, title, content string) (*domain.Article, error) {
	body := map[string]any{
		"project": map[string]string{"id": projectID},
		"summary": title,
		"content": content,
	}
	q := url.Values{"fields": {articleFields}}
	var raw articleJSON
	if err := c.do(ctx, http.MethodPost, "/api/articles", q, body, &raw); err != nil {
		return nil, err
	}
	a := raw.toDomain()
	return &a, nil
}

// ListUsers lists accounts, optionally filtered by a search string.
func (c *Client) ListUsers(ctx context.Context, query string) ([]domain.User, error) {
	q := url.Values{"fields": {userFields}}
	if query != "" {
		q.Set("query", query)
	}
	var raw []userJSON
	if err := c.do(ctx, http.MethodGet, "/api/users", q, nil, &raw); err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(raw))
	for _, r := range raw {
		users = append(users, r.toDomain())
	}
	return users, nil
}

// GetUser fetches one account by login or database ID.
func (c *Client) GetUser(ctx context.Context, id string) (*domain.User, error) {
	q := url.Values{"fields": {userFields}}
	var raw userJSON
	if err := c.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(id), q, nil, &raw); err != nil {
		return nil, err
	}
	u := raw.toDomain()
	return &u, nil
}

// WorkItemRecord is the payload for logging time against an issue. Date is
// epoch milliseconds.
type WorkItemRecord struct {
	Minutes int
	Date    int64
	Text    string
	Type    string
}

// WorkItemFilters scope a work-item fetch. Dates are tracker-format date
// strings (YYYY-MM-DD); empty fields are omitted.
type WorkItemFilters struct {
	IssueID   string
	Author    string
	StartDate string
	EndDate   string
}

// SubmitWorkItem logs a time record against an issue and returns the
// tracker's echo of the created record.
func (c *Client) SubmitWorkItem(ctx context.Context, issueID string, rec WorkItemRecord) (*domain.TimeEntry, error) {
	body := workItemJSON{
		Date:     rec.Date,
		Duration: &durationJSON{Minutes: rec.Minutes},
		Text:     rec.Text,
	}
	if rec.Type != "" {
		body.Type = &workTypeJSON{Name: rec.Type}
	}

	q := url.Values{"fields": {workItemFields}}
	path := "/api/issues/" + url.PathEscape(issueID) + "/timeTracking/workItems"
	var raw workItemJSON
	if err := c.do(ctx, http.MethodPost, path, q, body, &raw); err != nil {
		return nil, err
	}
	entry := raw.toDomain()
	return &entry, nil
}

// FetchWorkItems retrieves logged work matching the filters. An empty or
// null response body is a normal state and yields an empty slice.
func (c *Client) FetchWorkItems(ctx context.Context, f WorkItemFilters) ([]domain.TimeEntry, error) {
	q := url.Values{"fields": {workItemFields}}
	path := "/api/workItems"
	if f.IssueID != "" {
		path = "/api/issues/" + url.PathEscape(f.IssueID) + "/timeTracking/workItems"
	}
	if f.Author != "" {
		q.Set("author", f.Author)
	}
	if f.StartDate != "" {
		q.Set("startDate", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("endDate", f.EndDate)
	}

	var raw []workItemJSON
	if err := c.do(ctx, http.MethodGet, path, q, nil, &raw); err != nil {
		return nil, err
	}
	entries := make([]domain.TimeEntry, 0, len(raw))
	for _, r := range raw {
		entries = append(entries, r.toDomain())
	}
	return entries, nil
}
