// Package service bridges the remote tracker with the parsing and
// aggregation core, and exposes structured outcomes to the CLI.
package service

import (
	"context"

	"github.com/akarpin/tracklog/internal/aggregate"
	"github.com/akarpin/tracklog/internal/api"
	"github.com/akarpin/tracklog/internal/auth"
	"github.com/akarpin/tracklog/internal/domain"
)

// TrackerGateway is the time-tracking collaborator: one submit and one
// fetch capability reached over HTTP. *api.Client satisfies it.
type TrackerGateway interface {
	SubmitWorkItem(ctx context.Context, issueID string, rec api.WorkItemRecord) (*domain.TimeEntry, error)
	FetchWorkItems(ctx context.Context, f api.WorkItemFilters) ([]domain.TimeEntry, error)
}

// CredentialSource supplies the caller's session. *auth.Store satisfies it.
type CredentialSource interface {
	Current() (*auth.Session, error)
}

// LogWorkInput carries the raw user input for logging time. Duration and
// Date are free-form strings parsed by this service.
type LogWorkInput struct {
	IssueID  string
	Duration string
	Date     string // optional; empty means now
	Text     string
	Type     string
}

// WorkFilters scope listing and summarizing. Start and End are free-form
// date expressions; unparseable values fall back to the current date so a
// single bad filter never aborts a listing.
type WorkFilters struct {
	IssueID string
	Author  string
	Start   string
	End     string
}

// LogWorkResult is the outcome of LogWork plus the tracker's echo of the
// created record on success.
type LogWorkResult struct {
	Outcome
	Entry *domain.TimeEntry
}

// ListWorkResult is the outcome of ListWork. Entries is never nil on
// success; an empty tracker response is a normal state, not an error.
type ListWorkResult struct {
	Outcome
	Entries []domain.TimeEntry
	Count   int
}

// SummaryResult is the outcome of Summarize: grouped totals plus the raw
// entry count that fed them.
type SummaryResult struct {
	Outcome
	Totals aggregate.Result
	Count  int
}

// TimeTrackingService orchestrates duration/date parsing, the remote
// collaborator, and aggregation.
type TimeTrackingService interface {
	LogWork(ctx context.Context, in LogWorkInput) LogWorkResult
	ListWork(ctx context.Context, f WorkFilters) ListWorkResult
	Summarize(ctx context.Context, f WorkFilters, groupBy domain.GroupBy) SummaryResult
}

// IssueService exposes issue CRUD. *api.Client satisfies it.
type IssueService interface {
	ListIssues(ctx context.Context, query string, limit int) ([]domain.Issue, error)
	GetIssue(ctx context.Context, id string) (*domain.Issue, error)
	CreateIssue(ctx context.Context, projectID, summary, description string) (*domain.Issue, error)
	UpdateIssue(ctx context.Context, id, summary, description string) (*domain.Issue, error)
	DeleteIssue(ctx context.Context, id string) error
}

// ProjectService exposes project reads. *api.Client satisfies it.
type ProjectService interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
}

// ArticleService exposes knowledge-base operations. *api.Client satisfies it.
type ArticleService interface {
	ListArticles(ctx context.Context, project string) ([]domain.Article, error)
	GetArticle(ctx context.Context, id string) (*domain.Article, error)
	CreateArticle(ctx context.Context, projectID, title, content string) (*domain.Article, error)
}

// UserService exposes account reads. *api.Client satisfies it.
type UserService interface {
	ListUsers(ctx context.Context, query string) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}
