package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem is a single node in a tree display, e.g. project → issue →
// work entries on the issue detail view.
type TreeItem struct {
	Label  string
	Level  int
	IsLast bool
	Badge  string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree renders items as an indented tree with box-drawing
// connectors and right-aligned badges.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	contents := make([]string, len(items))
	maxWidth := 0

	for idx, item := range items {
		var prefix string
		if item.Level > 0 {
			prefix = strings.Repeat(treePipe, item.Level-1)
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}
		contents[idx] = Dim(prefix) + item.Label
		if w := lipgloss.Width(contents[idx]); w > maxWidth {
			maxWidth = w
		}
	}

	var b strings.Builder
	for idx, item := range items {
		b.WriteString(contents[idx])
		if item.Badge != "" {
			pad := maxWidth - lipgloss.Width(contents[idx])
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString("  " + StyleBlue.Render("[ "+item.Badge+" ]"))
		}
		b.WriteString("\n")
	}
	return b.String()
}
