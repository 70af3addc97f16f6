package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "2h", FormatMinutes(120))
	assert.Equal(t, "2h 30m", FormatMinutes(150))
	assert.Equal(t, "0m", FormatMinutes(0))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "4.50h", FormatHours(4.5))
	assert.Equal(t, "0.83h", FormatHours(0.83))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "a long s...", Truncate("a long string that keeps going", 11))
}

func TestHumanDate(t *testing.T) {
	assert.Equal(t, "Today", HumanDate(time.Now()))
	assert.Equal(t, "Yesterday", HumanDate(time.Now().AddDate(0, 0, -1)))
	assert.Equal(t, "Jan 2, 2020", HumanDate(time.Date(2020, 1, 2, 12, 0, 0, 0, time.Local)))
}

func TestRenderTable_Alignment(t *testing.T) {
	out := Table{
		Headers:    []string{"GROUP", "MINUTES"},
		Rows:       [][]string{{"User A", "180"}, {"B", "9"}},
		RightAlign: map[int]bool{1: true},
	}.Render()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, "header, separator, two rows")
	assert.Contains(t, lines[2], "180")
	// Right-aligned numeric column: the shorter value is padded on the left.
	assert.True(t, strings.HasSuffix(lines[3], "  9"), "got %q", lines[3])
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderTree(t *testing.T) {
	out := RenderTree([]TreeItem{
		{Label: "PRJ - Project"},
		{Label: "PRJ-7 Fix login", Level: 1},
		{Label: "45m by Jane", Level: 2, IsLast: true, Badge: "Development"},
	})

	assert.Contains(t, out, "└─ ")
	assert.Contains(t, out, "Development")
	assert.Empty(t, RenderTree(nil))
}
