package aggregate

import (
	"testing"

	"github.com/akarpin/tracklog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(minutes int, author, issueID, summary, workType string) domain.TimeEntry {
	return domain.TimeEntry{
		Minutes: minutes,
		Author:  author,
		Issue:   domain.IssueRef{ID: issueID, Summary: summary},
		Type:    workType,
	}
}

func TestAggregate_ByUser(t *testing.T) {
	entries := []domain.TimeEntry{
		entry(120, "User A", "PRJ-1", "First", "Development"),
		entry(60, "User A", "PRJ-2", "Second", "Testing"),
		entry(90, "User B", "PRJ-1", "First", "Development"),
	}

	res := Aggregate(entries, domain.GroupByUser)

	require.Len(t, res.Groups, 2)
	assert.Equal(t, GroupTotals{Minutes: 180, Hours: 3.0, Entries: 2}, res.Groups["User A"])
	assert.Equal(t, GroupTotals{Minutes: 90, Hours: 1.5, Entries: 1}, res.Groups["User B"])
	assert.Equal(t, 270, res.TotalMinutes)
	assert.Equal(t, 4.5, res.TotalHours)
}

func TestAggregate_ByIssue(t *testing.T) {
	entries := []domain.TimeEntry{
		entry(30, "User A", "PRJ-1", "First", "Development"),
		entry(45, "User B", "PRJ-1", "First", "Testing"),
		entry(15, "User A", "PRJ-2", "Second", "Development"),
	}

	res := Aggregate(entries, domain.GroupByIssue)

	require.Len(t, res.Groups, 2)
	assert.Equal(t, 75, res.Groups["PRJ-1 - First"].Minutes)
	assert.Equal(t, 15, res.Groups["PRJ-2 - Second"].Minutes)
}

func TestAggregate_ByType(t *testing.T) {
	entries := []domain.TimeEntry{
		entry(20, "User A", "PRJ-1", "First", "Development"),
		entry(40, "User B", "PRJ-1", "First", domain.NoWorkType),
	}

	res := Aggregate(entries, domain.GroupByType)

	assert.Equal(t, 20, res.Groups["Development"].Minutes)
	assert.Equal(t, 40, res.Groups[domain.NoWorkType].Minutes)
}

func TestAggregate_UnknownDimensionGroupsUnderAll(t *testing.T) {
	entries := []domain.TimeEntry{
		entry(10, "User A", "PRJ-1", "First", "Development"),
		entry(20, "User B", "PRJ-2", "Second", "Testing"),
	}

	res := Aggregate(entries, domain.ParseGroupBy("bogus"))

	require.Len(t, res.Groups, 1)
	assert.Equal(t, GroupTotals{Minutes: 30, Hours: 0.5, Entries: 2}, res.Groups["All"])
}

func TestAggregate_SumInvariant(t *testing.T) {
	entries := []domain.TimeEntry{
		entry(7, "a", "I-1", "x", "t1"),
		entry(13, "b", "I-2", "y", "t2"),
		entry(29, "a", "I-3", "z", "t1"),
		entry(0, "c", "I-1", "x", "t3"),
	}

	for _, groupBy := range []domain.GroupBy{domain.GroupByUser, domain.GroupByIssue, domain.GroupByType, domain.GroupByAll} {
		res := Aggregate(entries, groupBy)
		sum := 0
		for _, g := range res.Groups {
			sum += g.Minutes
		}
		assert.Equal(t, res.TotalMinutes, sum, "groupBy %s", groupBy)
	}
}

func TestAggregate_HoursDerivation(t *testing.T) {
	entries := []domain.TimeEntry{
		entry(50, "a", "I-1", "x", "t1"),
		entry(25, "b", "I-2", "y", "t2"),
	}

	res := Aggregate(entries, domain.GroupByUser)

	// 50/60 = 0.8333 -> 0.83, 25/60 = 0.4166 -> 0.42, 75/60 = 1.25.
	assert.Equal(t, 0.83, res.Groups["a"].Hours)
	assert.Equal(t, 0.42, res.Groups["b"].Hours)
	assert.Equal(t, 1.25, res.TotalHours)
}

func TestAggregate_Empty(t *testing.T) {
	res := Aggregate(nil, domain.GroupByUser)

	assert.Empty(t, res.Groups)
	assert.Equal(t, 0, res.TotalMinutes)
	assert.Equal(t, 0.0, res.TotalHours)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	a := entry(11, "a", "I-1", "x", "t1")
	b := entry(22, "b", "I-2", "y", "t2")
	c := entry(33, "a", "I-2", "y", "t1")

	first := Aggregate([]domain.TimeEntry{a, b, c}, domain.GroupByUser)
	second := Aggregate([]domain.TimeEntry{c, a, b}, domain.GroupByUser)

	assert.Equal(t, first, second)
}

func TestResult_KeysSorted(t *testing.T) {
	entries := []domain.TimeEntry{
		entry(1, "zeta", "I-1", "x", "t"),
		entry(1, "alpha", "I-2", "y", "t"),
		entry(1, "mid", "I-3", "z", "t"),
	}

	res := Aggregate(entries, domain.GroupByUser)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, res.Keys())
}
