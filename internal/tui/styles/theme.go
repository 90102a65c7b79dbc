package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/plantview/plantview-cli/internal/models"
)

var (
	BaseStyle = lipgloss.NewStyle()

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("28")).
			Padding(0, 1)

	SectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("70")).
				MarginTop(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Background(lipgloss.Color("235"))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("28"))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)

	// CardStyle frames one plant in the list grid
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	// SelectedCardStyle frames the card under the cursor
	SelectedCardStyle = CardStyle.
				BorderForeground(lipgloss.Color("70"))

	CardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	ScientificNameStyle = lipgloss.NewStyle().
				Italic(true).
				Foreground(lipgloss.Color("250"))

	LinkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Underline(true)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// GetStatusStyle colours a taxonomic status such as "accepted"
func GetStatusStyle(status string) lipgloss.Style {
	switch {
	case models.IsAcceptedStatus(status):
		return SuccessStyle
	case models.IsSynonymStatus(status):
		return WarningStyle
	case strings.TrimSpace(status) == "":
		return MutedStyle
	default:
		return BaseStyle
	}
}
