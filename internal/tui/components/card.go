package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/plantview/plantview-cli/internal/models"
	"github.com/plantview/plantview-cli/internal/tui/styles"
)

const (
	// CardHeight is the number of terminal rows one card occupies, border included
	CardHeight = 7
	// MinCardWidth is the narrowest card before the grid drops a column
	MinCardWidth = 30

	unknownValue = "Unknown"
)

// GridColumns returns how many cards fit side by side in width
func GridColumns(width int) int {
	if width < MinCardWidth {
		return 1
	}
	return width / MinCardWidth
}

// RenderCard renders the summary of one plant in a fixed-height box
func RenderCard(plant models.PlantRecord, width int, selected bool) string {
	style := styles.CardStyle
	if selected {
		style = styles.SelectedCardStyle
	}

	// border (2) + padding (2)
	inner := max(1, width-4)

	family := plant.Family
	if family == "" {
		family = unknownValue
	}
	genus := plant.Genus
	if genus == "" {
		genus = unknownValue
	}
	image := "no image"
	if plant.ImageURL != "" {
		image = "▣ image available"
	}

	lines := []string{
		styles.CardTitleStyle.Render(truncate(plant.DisplayName(), inner)),
		styles.ScientificNameStyle.Render(truncate(plant.ScientificName, inner)),
		styles.LabelStyle.Render("Family: ") + truncate(family, inner-8),
		styles.LabelStyle.Render("Genus:  ") + truncate(genus, inner-8),
		styles.MutedStyle.Render(truncate(image, inner)),
	}

	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// RenderGrid lays plants out in rows of columns cards. selected is an index
// into plants, or -1.
func RenderGrid(plants []models.PlantRecord, width, selected int) []string {
	cols := GridColumns(width)
	cardWidth := width / cols

	var rows []string
	for start := 0; start < len(plants); start += cols {
		end := min(len(plants), start+cols)
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, RenderCard(plants[i], cardWidth, i == selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return rows
}

// truncate shortens s to n runes, marking the cut with an ellipsis
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}
