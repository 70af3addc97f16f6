// Package timeparse converts human-entered duration and date expressions
// into the canonical representations used by the time-tracking core:
// whole minutes and epoch milliseconds. All functions are pure.
package timeparse

import (
	"strconv"
	"strings"
)

// ParseDuration converts a free-form duration string into a positive
// number of minutes. Recognized forms, case-insensitive:
//
//	"2h"      -> 120
//	"1.5h"    -> 90 (fractional hours truncate to whole minutes)
//	"2h 30m"  -> 150
//	"45m"     -> 45
//	"90"      -> 90 (bare integer is minutes)
//
// ok is false when the string has no parseable numeric component or the
// computed total is not positive. A zero total ("0h") is rejected on
// purpose: zero-duration work is not loggable.
func ParseDuration(s string) (minutes int, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}

	total := 0
	rest := s
	hadHours := false

	if i := strings.Index(rest, "h"); i >= 0 {
		hours, err := strconv.ParseFloat(strings.TrimSpace(rest[:i]), 64)
		if err != nil {
			return 0, false
		}
		total += int(hours * 60)
		rest = strings.TrimSpace(rest[i+1:])
		hadHours = true
	}

	if i := strings.Index(rest, "m"); i >= 0 {
		mins, err := strconv.Atoi(strings.TrimSpace(rest[:i]))
		if err != nil {
			return 0, false
		}
		total += mins
	} else if rest != "" && !hadHours {
		mins, err := strconv.Atoi(rest)
		if err != nil {
			return 0, false
		}
		total += mins
	}

	if total <= 0 {
		return 0, false
	}
	return total, true
}
