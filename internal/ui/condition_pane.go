package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/arikatz123/SurfScout/internal/models"
)

// renderConditionsPanel renders today's tide, wind and swell as three
// side-by-side metric boxes.
func renderConditionsPanel(conditions models.Conditions) string {
	tide := metricBox("Tide",
		fmt.Sprintf("%v m", conditions.Tide.Height),
		conditions.Tide.Type)
	wind := metricBox("Wind",
		fmt.Sprintf("%v km/h", conditions.Wind.Speed),
		fmt.Sprintf("%v°", conditions.Wind.Direction))
	swell := metricBox("Swell",
		fmt.Sprintf("%v m", conditions.Swell.Height),
		fmt.Sprintf("%v°", conditions.Swell.Direction))

	return lipgloss.JoinHorizontal(lipgloss.Top, tide, wind, swell)
}

// metricBox renders one labeled metric with a muted detail line
func metricBox(label, value, detail string) string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		labelStyle.Render(label),
		valueStyle.Bold(true).Render(value),
		mutedStyle.Render(detail),
	)

	return metricBoxStyle.Render(content)
}
