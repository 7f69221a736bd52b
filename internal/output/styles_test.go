package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantBold bool
		wantFG   lipgloss.TerminalColor
		wantDim  bool
	}{
		{name: "created returns green", status: StatusCreated, wantFG: ColorGreen},
		{name: "overwritten returns yellow", status: StatusOverwritten, wantFG: ColorYellow},
		{name: "planned returns faint", status: StatusPlanned, wantDim: true},
		{name: "kept returns faint", status: StatusKept, wantDim: true},
		{name: "failed returns bold red", status: StatusFailed, wantBold: true, wantFG: ColorBoldRed},
		{name: "ok returns green", status: StatusOK, wantFG: ColorGreen},
		{name: "warning returns yellow", status: StatusWarning, wantFG: ColorYellow},
		{name: "rejected returns bold red", status: StatusRejected, wantBold: true, wantFG: ColorBoldRed},
		{name: "unknown returns default unstyled", status: "unknown-value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := StatusStyle(tt.status)
			assert.Equal(t, tt.wantBold, style.GetBold())
			assert.Equal(t, tt.wantDim, style.GetFaint())
			if tt.wantFG != nil {
				assert.Equal(t, tt.wantFG, style.GetForeground())
			}
		})
	}
}

func TestFormatFileLine(t *testing.T) {
	line := FormatFileLine("Button/Button.tsx", StatusCreated)
	assert.Contains(t, line, "f:")
	assert.Contains(t, line, "Button/Button.tsx")
	assert.Contains(t, line, StatusCreated)

	long := strings.Repeat("x", 60)
	assert.Contains(t, FormatFileLine(long, StatusFailed), long)
}

func TestFormatCheckmark(t *testing.T) {
	out := FormatCheckmark("Component Button created")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "Component Button created")
}
