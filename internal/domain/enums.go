package domain

import "strings"

// GroupBy selects the dimension time entries are bucketed by during
// summarization.
type GroupBy string

const (
	GroupByUser  GroupBy = "user"
	GroupByIssue GroupBy = "issue"
	GroupByType  GroupBy = "type"

	// GroupByAll collapses every entry into a single "All" bucket. It is
	// also the fallback for unrecognized group-by strings, so invalid
	// input is a construction-time concern, not an aggregation one.
	GroupByAll GroupBy = "all"
)

// ParseGroupBy maps a user-supplied string to a GroupBy, falling back to
// GroupByAll for anything unrecognized.
func ParseGroupBy(s string) GroupBy {
	switch GroupBy(strings.ToLower(strings.TrimSpace(s))) {
	case GroupByUser:
		return GroupByUser
	case GroupByIssue:
		return GroupByIssue
	case GroupByType:
		return GroupByType
	default:
		return GroupByAll
	}
}

// Key derives the grouping key for an entry. Entries are fully populated
// at construction, so no default substitution happens here.
func (g GroupBy) Key(e TimeEntry) string {
	switch g {
	case GroupByUser:
		return e.Author
	case GroupByIssue:
		return e.Issue.Label()
	case GroupByType:
		return e.Type
	default:
		return "All"
	}
}
