package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGroupBy(t *testing.T) {
	assert.Equal(t, GroupByUser, ParseGroupBy("user"))
	assert.Equal(t, GroupByIssue, ParseGroupBy(" Issue "))
	assert.Equal(t, GroupByType, ParseGroupBy("TYPE"))
	assert.Equal(t, GroupByAll, ParseGroupBy("all"))
	assert.Equal(t, GroupByAll, ParseGroupBy("bogus"))
	assert.Equal(t, GroupByAll, ParseGroupBy(""))
}

func TestGroupByKey(t *testing.T) {
	e := TimeEntry{
		Author: "Jane Doe",
		Issue:  IssueRef{ID: "PRJ-7", Summary: "Fix login"},
		Type:   "Development",
	}

	assert.Equal(t, "Jane Doe", GroupByUser.Key(e))
	assert.Equal(t, "PRJ-7 - Fix login", GroupByIssue.Key(e))
	assert.Equal(t, "Development", GroupByType.Key(e))
	assert.Equal(t, "All", GroupByAll.Key(e))
}

func TestUserDisplayName(t *testing.T) {
	assert.Equal(t, "Jane Doe", User{Login: "jane", FullName: "Jane Doe"}.DisplayName())
	assert.Equal(t, "jane", User{Login: "jane"}.DisplayName())
}
