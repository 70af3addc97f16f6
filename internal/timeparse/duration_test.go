package timeparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration_Valid(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"2h", 120},
		{"30m", 30},
		{"1h 30m", 90},
		{"2h 45m", 165},
		{"1.5h", 90},
		{"90", 90},
		{"120m", 120},
		{"1h30m", 90},
		{"  2h  ", 120},
		{"2H 15M", 135},
		{"0.5h", 30},
	}
	for _, tc := range cases {
		got, ok := ParseDuration(tc.input)
		assert.True(t, ok, "input %q should parse", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestParseDuration_Invalid(t *testing.T) {
	cases := []string{"invalid", "h", "m", "", "2x", "30z", "0h", "-1h", "   ", "0", "-30m"}
	for _, input := range cases {
		_, ok := ParseDuration(input)
		assert.False(t, ok, "input %q should be rejected", input)
	}
}

func TestParseDuration_ZeroTotalRejected(t *testing.T) {
	// "0h 0m" computes to zero minutes, which is not a loggable duration.
	_, ok := ParseDuration("0h 0m")
	assert.False(t, ok)
}

func TestParseDuration_FractionalHoursTruncate(t *testing.T) {
	got, ok := ParseDuration("1.99h")
	assert.True(t, ok)
	assert.Equal(t, 119, got, "119.4 minutes truncates to 119")
}
