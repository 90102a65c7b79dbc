package views

import (
	"encoding/json"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/plantview/plantview-cli/internal/errors"
	"github.com/plantview/plantview-cli/internal/models"
	"github.com/plantview/plantview-cli/internal/tui/cache"
	"github.com/plantview/plantview-cli/internal/tui/components"
	"github.com/plantview/plantview-cli/internal/tui/messages"
)

func fullPlant() models.PlantRecord {
	return models.PlantRecord{
		ID:               "42",
		CommonName:       "English oak",
		ScientificName:   "Quercus robur",
		Family:           "Fagaceae",
		FamilyCommonName: "Beech family",
		Genus:            "Quercus",
		Rank:             "species",
		Status:           "accepted",
		Author:           "L.",
		Year:             "1753",
		Bibliography:     "Sp. Pl.: 996 (1753)",
		Synonyms:         []string{"Quercus pedunculata", "Quercus femina"},
		Links: &models.PlantLinks{
			Self:  "/api/v1/species/quercus-robur",
			Plant: "/api/v1/plants/quercus-robur",
			Genus: "/api/v1/genus/quercus",
		},
		ImageURL: "https://example.com/oak.jpg",
	}
}

func newTestDetailView(t *testing.T, plant *models.PlantRecord, id string) *PlantDetailView {
	t.Helper()
	nav := cache.NewNavigationStore(0)
	t.Cleanup(nav.Stop)
	if plant != nil {
		nav.SetPlant(*plant)
	}

	v := NewPlantDetailView(nav, id)
	v.Update(tea.WindowSizeMsg{Width: 100, Height: 60})
	return v
}

func TestRenderPlantDetail_AllSections(t *testing.T) {
	out := RenderPlantDetail(fullPlant())

	for _, want := range []string{
		"Basic Information", "Scientific Name:", "Quercus robur",
		"Family Common Name:", "Beech family", "Rank:", "species", "Status:", "accepted",
		"Botanical Information", "Author:", "L.", "Year:", "1753", "Bibliography:",
		"Synonyms", "Quercus pedunculata",
		"Links", "View Species", "View Plant", "View Genus",
		"https://example.com/oak.jpg",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderPlantDetail_OmitsMissingFields(t *testing.T) {
	out := RenderPlantDetail(models.PlantRecord{ID: "1", ScientificName: "Rosa canina", Year: "1753"})

	assert.Contains(t, out, "Scientific Name:")
	assert.NotContains(t, out, "Family:")
	assert.NotContains(t, out, "Botanical Information", "botanical section needs an author")
	assert.NotContains(t, out, "1753")
	assert.NotContains(t, out, "Synonyms")
	assert.NotContains(t, out, "Links")
	assert.NotContains(t, out, "Image:")
}

func TestRenderPlantDetail_PartialLinks(t *testing.T) {
	plant := models.PlantRecord{ID: "1", Links: &models.PlantLinks{Genus: "/genus/rosa"}}
	out := RenderPlantDetail(plant)

	assert.Contains(t, out, "View Genus")
	assert.NotContains(t, out, "View Species")
	assert.NotContains(t, out, "View Plant")
}

func TestPlantDetailView_ReadsNavigationState(t *testing.T) {
	plant := fullPlant()
	v := newTestDetailView(t, &plant, "42")

	require.NoError(t, v.err)
	out := v.View()
	assert.Contains(t, out, "English oak")
	assert.Contains(t, out, "Basic Information")
}

func TestPlantDetailView_MissingStateShowsNotFound(t *testing.T) {
	v := newTestDetailView(t, nil, "42")

	assert.ErrorIs(t, v.err, apperrors.ErrPlantStateMissing)
	assert.Contains(t, v.View(), apperrors.PlantNotFoundMessage)

	_, cmd := v.Update(keyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, messages.NavigateBackMsg{}, cmd())

	// raw and copy keys must not touch the missing plant
	assert.NotPanics(t, func() {
		v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
		v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	})
}

func TestPlantDetailView_NilStore(t *testing.T) {
	v := NewPlantDetailView(nil, "7")
	assert.Contains(t, v.View(), apperrors.PlantNotFoundMessage)
}

func TestPlantDetailView_RawToggle(t *testing.T) {
	plant := fullPlant()
	v := newTestDetailView(t, &plant, "42")

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.True(t, v.showRaw)
	assert.Contains(t, v.View(), "scientific_name")
	assert.Contains(t, v.View(), "Decoded record")

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.False(t, v.showRaw)
	assert.Contains(t, v.View(), "Basic Information")
}

func TestPlantDetailView_RawShowsReceivedRecord(t *testing.T) {
	var plant models.PlantRecord
	require.NoError(t, json.Unmarshal([]byte(`{"id": "mint-1", "common_name": "Mint", "edible": true, "sun_requirements": "Partial"}`), &plant))
	v := newTestDetailView(t, &plant, "mint-1")

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})

	view := v.View()
	assert.Contains(t, view, "Record as received")
	assert.Contains(t, view, "edible")
	assert.Contains(t, view, "sun_requirements")
}

func TestPlantDetailView_CopyScientificName(t *testing.T) {
	plant := fullPlant()
	v := newTestDetailView(t, &plant, "42")

	var copied string
	v.clipboard = components.NewClipboardManagerWithWriter(func(text string) error {
		copied = text
		return nil
	})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	assert.NotNil(t, cmd)
	assert.Equal(t, "Quercus robur", copied)
	assert.Contains(t, v.View(), "Copied scientific name")

	v.Update(components.ClipboardClearMsg{})
	assert.NotContains(t, v.View(), "Copied scientific name")
}

func TestPlantDetailView_CopyFailureIsShown(t *testing.T) {
	plant := fullPlant()
	v := newTestDetailView(t, &plant, "42")
	v.clipboard = components.NewClipboardManagerWithWriter(func(string) error {
		return errors.New("no display")
	})

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	assert.Contains(t, v.View(), "no display")
}

func TestPlantDetailView_BackKey(t *testing.T) {
	plant := fullPlant()
	v := newTestDetailView(t, &plant, "42")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.NavigateBackMsg{}, cmd())
}

func TestPlantDetailView_UnknownTitle(t *testing.T) {
	plant := models.PlantRecord{ID: "3", ScientificName: "Rosa canina"}
	v := newTestDetailView(t, &plant, "3")

	assert.Contains(t, v.View(), "Unknown")
}
