package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vijay4057/task-tracker/internal/domain"
)

// Color palette for CLI output.
var (
	colorHigh    = lipgloss.Color("#FF4444")
	colorMedium  = lipgloss.Color("#FF9800")
	colorLow     = lipgloss.Color("#4CAF50")
	colorMuted   = lipgloss.Color("#999999")
	colorOverdue = lipgloss.Color("#FF4444")
	colorDone    = lipgloss.Color("#4CAF50")
	colorAccent  = lipgloss.Color("#6C5CE7")
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	overdueStyle = lipgloss.NewStyle().Bold(true).Foreground(colorOverdue)
	doneStyle    = lipgloss.NewStyle().Foreground(colorDone)

	priorityStyles = map[domain.Priority]lipgloss.Style{
		domain.PriorityHigh:   lipgloss.NewStyle().Bold(true).Foreground(colorHigh),
		domain.PriorityMedium: lipgloss.NewStyle().Foreground(colorMedium),
		domain.PriorityLow:    lipgloss.NewStyle().Foreground(colorLow),
	}
)

// renderPriority returns the colored priority label; unrecognized
// priorities render muted.
func renderPriority(p domain.Priority) string {
	if style, ok := priorityStyles[p]; ok {
		return style.Render(string(p))
	}
	return mutedStyle.Render(string(p))
}

// renderStatus returns the status label, green when completed.
func renderStatus(s domain.Status) string {
	if s == domain.StatusCompleted {
		return doneStyle.Render(string(s))
	}
	return string(s)
}
