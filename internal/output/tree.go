package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	branchMid  = "├── "
	branchLast = "└── "

	// descriptionColumn is the column descriptions are aligned to.
	descriptionColumn = 30
)

// TreeEntry is one file listed under a component directory.
type TreeEntry struct {
	Name        string
	Description string
}

// RenderFileTree renders a directory and its files in the given order,
// with descriptions aligned at descriptionColumn.
func RenderFileTree(dir string, entries []TreeEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(StyleBold.Render(dir + "/"))
	sb.WriteByte('\n')

	for i, e := range entries {
		branch := branchMid
		if i == len(entries)-1 {
			branch = branchLast
		}

		line := branch + e.Name
		if e.Description != "" {
			// Width counts cells, so the multi-byte branch runes pad correctly.
			line += strings.Repeat(" ", max(descriptionColumn-lipgloss.Width(line), 2))
			line += StyleDim.Render(e.Description)
		}

		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	return sb.String()
}
