package domain

import "time"

// Defaults substituted at the API boundary when a work item record is
// missing the corresponding field. Aggregation and display never re-derive
// these; a TimeEntry is fully populated the moment it is constructed.
const (
	UnknownAuthor  = "Unknown"
	UnknownIssueID = "Unknown"
	NoSummary      = "No summary"
	NoWorkType     = "No type"
)

// IssueRef identifies the issue a time entry was logged against.
type IssueRef struct {
	ID      string
	Summary string
}

// Label returns the "ID - Summary" form used as a grouping key.
func (r IssueRef) Label() string {
	return r.ID + " - " + r.Summary
}

// TimeEntry is one unit of logged work, constructed from a fetched record
// and never mutated afterwards.
type TimeEntry struct {
	ID      string
	Minutes int
	Date    time.Time
	Author  string
	Issue   IssueRef
	Type    string
	Text    string
}

// Hours returns the entry duration in fractional hours.
func (e TimeEntry) Hours() float64 {
	return float64(e.Minutes) / 60.0
}
