package timeparse

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_AbsoluteFormatsAgree(t *testing.T) {
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local).UnixMilli()

	for _, input := range []string{"2024-01-01", "01/01/2024", "01.01.2024"} {
		got, ok := ParseDate(input)
		require.True(t, ok, "input %q should parse", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestParseDate_WithTime(t *testing.T) {
	got, ok := ParseDate("2024-03-15 14:30:00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local).UnixMilli(), got)
}

func TestParseDate_USFormatIsMonthFirst(t *testing.T) {
	got, ok := ParseDate("03/04/2024")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local).UnixMilli(), got)
}

func TestParseDate_EuropeanFormatIsDayFirst(t *testing.T) {
	// 13.04.2024 cannot be a month/day date, so it must land on April 13.
	got, ok := ParseDate("13.04.2024")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 4, 13, 0, 0, 0, 0, time.Local).UnixMilli(), got)
}

func TestParseDate_Keywords(t *testing.T) {
	today, ok := ParseDate("today")
	require.True(t, ok)
	yesterday, ok := ParseDate("Yesterday")
	require.True(t, ok)

	assert.Greater(t, today, yesterday, "today must be after yesterday")
	// Yesterday is exactly 24h back, modulo the nanoseconds between the
	// two time.Now calls.
	assert.InDelta(t, 24*time.Hour.Milliseconds(), today-yesterday, 1000)
}

func TestParseDate_Unparseable(t *testing.T) {
	for _, input := range []string{"garbage", "32/01/2024", "2024-13-01", ""} {
		_, ok := ParseDate(input)
		assert.False(t, ok, "input %q should not parse", input)
	}
}

func TestParseDateOrNow_FallsBackToNow(t *testing.T) {
	before := time.Now().UnixMilli()
	got := ParseDateOrNow("not a date")
	after := time.Now().UnixMilli()

	assert.GreaterOrEqual(t, got, before)
	assert.LessOrEqual(t, got, after)
}

func TestParseDate_MillisecondScale(t *testing.T) {
	// Every output path yields millisecond-scale integers: 13 decimal
	// digits for any date in the current era.
	inputs := []string{"2024-06-01", "today", "yesterday", "garbage"}
	for _, input := range inputs {
		ms := ParseDateOrNow(input)
		assert.Len(t, strconv.FormatInt(ms, 10), 13, "input %q", input)
	}
}
