// Package aggregate computes grouped totals over logged time entries.
package aggregate

import (
	"math"
	"sort"

	"github.com/akarpin/tracklog/internal/domain"
)

// GroupTotals holds the accumulated numbers for one grouping key.
type GroupTotals struct {
	Minutes int
	Hours   float64
	Entries int
}

// Result is the outcome of aggregating a set of time entries. The sum of
// Groups[*].Minutes always equals TotalMinutes.
type Result struct {
	Groups       map[string]GroupTotals
	TotalMinutes int
	TotalHours   float64
}

// Keys returns the group keys in sorted order for stable display.
func (r Result) Keys() []string {
	keys := make([]string, 0, len(r.Groups))
	for k := range r.Groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Aggregate folds entries into per-group totals keyed by the given
// dimension. It is a pure single pass: the same entries and groupBy always
// produce the same result regardless of input order, and an empty input
// yields zero totals with an empty group map, not an error.
func Aggregate(entries []domain.TimeEntry, groupBy domain.GroupBy) Result {
	groups := make(map[string]GroupTotals)
	total := 0

	for _, e := range entries {
		key := groupBy.Key(e)
		g := groups[key]
		g.Minutes += e.Minutes
		g.Entries++
		groups[key] = g
		total += e.Minutes
	}

	for key, g := range groups {
		g.Hours = roundHours(g.Minutes)
		groups[key] = g
	}

	return Result{
		Groups:       groups,
		TotalMinutes: total,
		TotalHours:   roundHours(total),
	}
}

// roundHours converts minutes to hours rounded half-up to two decimals.
// The same rule applies to every group and to the grand total.
func roundHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}
