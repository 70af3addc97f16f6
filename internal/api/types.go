package api

import (
	"time"

	"github.com/akarpin/tracklog/internal/domain"
)

// Wire shapes for the tracker's JSON API. Raw records are converted to
// domain structs exactly once, at this boundary, with all defaults
// substituted here so downstream code never re-derives them.

type userJSON struct {
	ID       string `json:"id"`
	Login    string `json:"login"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Banned   bool   `json:"banned"`
}

func (u userJSON) toDomain() domain.User {
	return domain.User{
		ID:       u.ID,
		Login:    u.Login,
		FullName: u.FullName,
		Email:    u.Email,
		Banned:   u.Banned,
	}
}

type projectJSON struct {
	ID          string    `json:"id"`
	ShortName   string    `json:"shortName"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Leader      *userJSON `json:"leader"`
	Archived    bool      `json:"archived"`
}

func (p projectJSON) toDomain() domain.Project {
	leader := ""
	if p.Leader != nil {
		leader = domain.CoalesceStr(p.Leader.FullName, p.Leader.Login)
	}
	return domain.Project{
		ID:          p.ID,
		ShortName:   p.ShortName,
		Name:        p.Name,
		Description: p.Description,
		Leader:      leader,
		Archived:    p.Archived,
	}
}

func (p projectJSON) toRef() domain.ProjectRef {
	return domain.ProjectRef{ID: p.ID, ShortName: p.ShortName, Name: p.Name}
}

// customFieldJSON is a name/value pair whose value shape depends on the
// field type. valueName flattens the common object and array shapes.
type customFieldJSON struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

func (f customFieldJSON) valueName() string {
	switch v := f.Value.(type) {
	case map[string]any:
		if name, ok := v["name"].(string); ok {
			return name
		}
		if name, ok := v["fullName"].(string); ok {
			return name
		}
	case []any:
		if len(v) > 0 {
			if m, ok := v[0].(map[string]any); ok {
				if name, ok := m["name"].(string); ok {
					return name
				}
			}
		}
	case string:
		return v
	}
	return ""
}

type issueJSON struct {
	ID           string            `json:"id"`
	IDReadable   string            `json:"idReadable"`
	Summary      string            `json:"summary"`
	Description  string            `json:"description"`
	Project      *projectJSON      `json:"project"`
	CustomFields []customFieldJSON `json:"customFields"`
	Created      int64             `json:"created"`
	Updated      int64             `json:"updated"`
}

func (i issueJSON) customField(name string) string {
	for _, f := range i.CustomFields {
		if f.Name == name {
			return f.valueName()
		}
	}
	return ""
}

func (i issueJSON) toDomain() domain.Issue {
	issue := domain.Issue{
		ID:          domain.CoalesceStr(i.IDReadable, i.ID),
		Summary:     i.Summary,
		Description: i.Description,
		State:       i.customField("State"),
		Assignee:    i.customField("Assignee"),
		Created:     time.UnixMilli(i.Created),
		Updated:     time.UnixMilli(i.Updated),
	}
	if i.Project != nil {
		issue.Project = i.Project.toRef()
	}
	return issue
}

type articleJSON struct {
	ID         string       `json:"id"`
	IDReadable string       `json:"idReadable"`
	Summary    string       `json:"summary"`
	Content    string       `json:"content"`
	Project    *projectJSON `json:"project"`
	Reporter   *userJSON    `json:"reporter"`
	Updated    int64        `json:"updated"`
}

func (a articleJSON) toDomain() domain.Article {
	article := domain.Article{
		ID:      domain.CoalesceStr(a.IDReadable, a.ID),
		Title:   a.Summary,
		Content: a.Content,
		Updated: time.UnixMilli(a.Updated),
	}
	if a.Project != nil {
		article.Project = a.Project.toRef()
	}
	if a.Reporter != nil {
		article.Author = domain.CoalesceStr(a.Reporter.FullName, a.Reporter.Login)
	}
	return article
}

type durationJSON struct {
	Minutes int `json:"minutes"`
}

type workTypeJSON struct {
	Name string `json:"name"`
}

type issueStubJSON struct {
	IDReadable string `json:"idReadable"`
	Summary    string `json:"summary"`
}

// workItemJSON is a logged work record. Every field except duration and
// date is optional on the wire.
type workItemJSON struct {
	ID       string         `json:"id,omitempty"`
	Date     int64          `json:"date"`
	Duration *durationJSON  `json:"duration"`
	Author   *userJSON      `json:"author,omitempty"`
	Type     *workTypeJSON  `json:"type,omitempty"`
	Text     string         `json:"text,omitempty"`
	Issue    *issueStubJSON `json:"issue,omitempty"`
}

func (w workItemJSON) toDomain() domain.TimeEntry {
	entry := domain.TimeEntry{
		ID:     w.ID,
		Date:   time.UnixMilli(w.Date),
		Author: domain.UnknownAuthor,
		Issue:  domain.IssueRef{ID: domain.UnknownIssueID, Summary: domain.NoSummary},
		Type:   domain.NoWorkType,
		Text:   w.Text,
	}
	if w.Duration != nil {
		entry.Minutes = w.Duration.Minutes
	}
	if w.Author != nil {
		entry.Author = domain.CoalesceStr(w.Author.FullName, w.Author.Login, domain.UnknownAuthor)
	}
	if w.Type != nil && w.Type.Name != "" {
		entry.Type = w.Type.Name
	}
	if w.Issue != nil {
		entry.Issue = domain.IssueRef{
			ID:      domain.CoalesceStr(w.Issue.IDReadable, domain.UnknownIssueID),
			Summary: domain.CoalesceStr(w.Issue.Summary, domain.NoSummary),
		}
	}
	return entry
}
