package domain

import "time"

// ProjectRef identifies the project an issue belongs to.
type ProjectRef struct {
	ID        string
	ShortName string
	Name      string
}

// Issue is a ticket in the remote tracker, as shown by list/show commands.
type Issue struct {
	ID          string
	Summary     string
	Description string
	Project     ProjectRef
	State       string
	Assignee    string
	Created     time.Time
	Updated     time.Time
}

// Project is a tracker project.
type Project struct {
	ID          string
	ShortName   string
	Name        string
	Description string
	Leader      string
	Archived    bool
}

// Article is a knowledge-base article attached to a project.
type Article struct {
	ID      string
	Title   string
	Summary string
	Content string
	Project ProjectRef
	Author  string
	Updated time.Time
}

// User is a tracker account.
type User struct {
	ID       string
	Login    string
	FullName string
	Email    string
	Banned   bool
}

// DisplayName returns the user's full name, falling back to the login.
func (u User) DisplayName() string {
	return CoalesceStr(u.FullName, u.Login)
}
