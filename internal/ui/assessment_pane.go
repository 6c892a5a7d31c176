package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/arikatz123/SurfScout/internal/models"
)

// bandEmoji returns the indicator for a score band
func bandEmoji(band models.ScoreBand) string {
	switch band {
	case models.BandExcellent:
		return "🔥"
	case models.BandDecent:
		return "🙂"
	default:
		return "👎"
	}
}

// bandStyle returns the appropriate style for a score band
func bandStyle(band models.ScoreBand) lipgloss.Style {
	switch band {
	case models.BandExcellent:
		return successStyle
	case models.BandDecent:
		return warningStyle
	default:
		return errorStyle
	}
}

// renderScoreBlock renders the score headline and its explanation
func renderScoreBlock(assessment models.Assessment) string {
	band := assessment.Band()
	headline := bandStyle(band).Render(
		fmt.Sprintf("Score: %g/10 %s", *assessment.Score, bandEmoji(band)))

	explanation := lipgloss.NewStyle().Width(70).Render(
		labelStyle.Render("Why: ") + valueStyle.Render(assessment.Explanation))

	return lipgloss.JoinVertical(lipgloss.Left, headline, "", explanation)
}
