package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/plantview/plantview-cli/internal/models"
)

func TestRenderCard_Fields(t *testing.T) {
	card := RenderCard(models.PlantRecord{
		ID:             "1",
		CommonName:     "English oak",
		ScientificName: "Quercus robur",
		Family:         "Fagaceae",
		Genus:          "Quercus",
		ImageURL:       "https://example.com/oak.jpg",
	}, 40, false)

	assert.Contains(t, card, "English oak")
	assert.Contains(t, card, "Quercus robur")
	assert.Contains(t, card, "Fagaceae")
	assert.Contains(t, card, "image available")
	assert.Equal(t, CardHeight, lipgloss.Height(card))
}

func TestRenderCard_MissingFields(t *testing.T) {
	card := RenderCard(models.PlantRecord{ID: "2", ScientificName: "Rosa canina"}, 40, true)

	assert.Contains(t, card, "Rosa canina")
	assert.Equal(t, 2, strings.Count(card, "Unknown"), "family and genus fall back to Unknown")
	assert.Contains(t, card, "no image")
}

func TestGridColumns(t *testing.T) {
	assert.Equal(t, 1, GridColumns(10))
	assert.Equal(t, 1, GridColumns(45))
	assert.Equal(t, 2, GridColumns(60))
	assert.Equal(t, 4, GridColumns(120))
}

func TestRenderGrid(t *testing.T) {
	plants := make([]models.PlantRecord, 5)
	for i := range plants {
		plants[i] = models.PlantRecord{ID: models.FlexInt(i + 1), CommonName: "Plant"}
	}

	rows := RenderGrid(plants, 60, 0)
	assert.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, CardHeight, lipgloss.Height(row))
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "long…", truncate("long name", 5))
	assert.Equal(t, "…", truncate("abc", 1))
	assert.Equal(t, "", truncate("abc", 0))
}
