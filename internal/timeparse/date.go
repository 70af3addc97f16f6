package timeparse

import (
	"strings"
	"time"
)

// Absolute formats, tried in order. The first layout that parses wins.
var dateLayouts = []string{
	"2006-01-02",          // ISO date
	"01/02/2006",          // US month/day/year
	"02.01.2006",          // European day.month.year
	"2006-01-02 15:04:05", // ISO date with time
}

// ParseDate converts a date expression into epoch milliseconds. Absolute
// formats are tried first, then the relative keywords "today" (now) and
// "yesterday" (now minus 24h), case-insensitive.
//
// Parsing is host-local: components are interpreted in time.Local with no
// UTC normalization, so results near midnight differ across timezones.
//
// ok is false when nothing matches; callers decide whether that is a hard
// rejection (logging time) or substitutes the current moment (listing and
// summarizing, where one bad date must not abort the whole operation).
func ParseDate(s string) (epochMillis int64, ok bool) {
	s = strings.TrimSpace(s)

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.UnixMilli(), true
		}
	}

	switch strings.ToLower(s) {
	case "today":
		return time.Now().UnixMilli(), true
	case "yesterday":
		return time.Now().Add(-24 * time.Hour).UnixMilli(), true
	}

	return 0, false
}

// ParseDateOrNow is the tolerant variant used on listing paths: anything
// unparseable becomes the current moment.
func ParseDateOrNow(s string) int64 {
	if ms, ok := ParseDate(s); ok {
		return ms
	}
	return time.Now().UnixMilli()
}
