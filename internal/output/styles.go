package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Every color used by the CLI is declared here.
var (
	// ColorCyan is used for identifiable nouns: component names, template names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" file status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "overwritten" file status and advisories.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleBold styles headings and tree roots.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome and descriptions.
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// File status constants used in generation summaries.
const (
	StatusCreated     = "created"
	StatusOverwritten = "overwritten"
	StatusPlanned     = "planned"
	StatusKept        = "kept"
	StatusFailed      = "failed"
)

// Template status constants used by template listings.
const (
	StatusOK       = "ok"
	StatusWarning  = "warning"
	StatusRejected = "rejected"
)

// StatusStyle returns the style for a file status.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated, StatusOK:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusOverwritten, StatusWarning:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusPlanned, StatusKept:
		return lipgloss.NewStyle().Faint(true)
	case StatusFailed, StatusRejected:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth keeps status words aligned across lines.
const minPathColumnWidth = 40

// FormatFileLine renders a file path with a right-aligned, color-coded status.
//
// Format: f:<path>  <status>
func FormatFileLine(path, status string) string {
	padding := minPathColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	return StyleDim.Render("f:") +
		StyleNoun.Render(path) +
		strings.Repeat(" ", padding) +
		StatusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
