package views

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/plantview/plantview-cli/internal/errors"
	"github.com/plantview/plantview-cli/internal/models"
	"github.com/plantview/plantview-cli/internal/tui/cache"
	"github.com/plantview/plantview-cli/internal/tui/components"
	"github.com/plantview/plantview-cli/internal/tui/messages"
	"github.com/plantview/plantview-cli/internal/tui/styles"
)

const detailChromeLines = 4

// PlantDetailView is the "/plant/:id" route. The plant comes only from the
// navigation store; nothing is fetched.
type PlantDetailView struct {
	plantID   string
	plant     *models.PlantRecord
	err       error
	logger    zerolog.Logger
	keys      components.DetailKeyMap
	help      help.Model
	viewport  viewport.Model
	clipboard components.ClipboardManager
	showRaw   bool
	width     int
	height    int
}

// NewPlantDetailView looks plantID up in nav. A missing entry yields the
// "plant data not found" state instead of an error return.
func NewPlantDetailView(nav *cache.NavigationStore, plantID string) *PlantDetailView {
	v := &PlantDetailView{
		plantID:   plantID,
		logger:    log.With().Str("component", "detail").Str("plant_id", plantID).Logger(),
		keys:      components.DetailKeyMap{KeyMap: components.DefaultKeyMap},
		help:      help.New(),
		viewport:  viewport.New(80, 20),
		clipboard: components.NewClipboardManager(),
	}

	if nav != nil {
		v.plant, _ = nav.GetPlant(plantID)
	}
	if v.plant == nil {
		v.err = errors.ErrPlantStateMissing
		v.logger.Info().Msg("no navigation state for plant")
	}

	v.refreshContent()
	return v
}

// Init implements tea.Model
func (v *PlantDetailView) Init() tea.Cmd {
	return nil
}

// IsKeyDisabled implements keymap.CoreViewKeymap
func (v *PlantDetailView) IsKeyDisabled(string) bool {
	return false
}

// HandleKey implements keymap.CoreViewKeymap
func (v *PlantDetailView) HandleKey(tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	return false, v, nil
}

func (v *PlantDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.help.Width = msg.Width
		v.viewport.Width = msg.Width
		v.viewport.Height = max(1, msg.Height-detailChromeLines)
		v.refreshContent()
		return v, nil

	case components.ClipboardClearMsg:
		v.clipboard, _ = v.clipboard.Update(msg)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return v, cmd
	}

	return v, nil
}

func (v *PlantDetailView) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if v.plant == nil {
		if key.Matches(msg, v.keys.Enter) || key.Matches(msg, v.keys.Back) {
			return v, func() tea.Msg { return messages.NavigateBackMsg{} }
		}
		return v, nil
	}

	switch {
	case key.Matches(msg, v.keys.Back):
		return v, func() tea.Msg { return messages.NavigateBackMsg{} }
	case key.Matches(msg, v.keys.Raw):
		v.showRaw = !v.showRaw
		v.refreshContent()
		v.viewport.GotoTop()
		return v, nil
	case key.Matches(msg, v.keys.Copy):
		return v, v.clipboard.Copy(v.plant.ScientificName, "scientific name")
	case key.Matches(msg, v.keys.Help):
		v.help.ShowAll = !v.help.ShowAll
		return v, nil
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v *PlantDetailView) refreshContent() {
	if v.plant == nil {
		v.viewport.SetContent("")
		return
	}

	if v.showRaw {
		v.viewport.SetContent(v.renderRaw())
		return
	}
	v.viewport.SetContent(RenderPlantDetail(*v.plant))
}

// renderRaw shows the record bytes the API sent. Records built in code
// have none and are shown re-encoded, labelled as such.
func (v *PlantDetailView) renderRaw() string {
	label := "Record as received"
	data, ok := indentJSON(v.plant.Raw())
	if !ok {
		label = "Decoded record"
		var err error
		if data, err = json.MarshalIndent(v.plant, "", "  "); err != nil {
			return styles.ErrorStyle.Render(err.Error())
		}
	}

	highlighted, err := components.HighlightJSON(string(data))
	if err != nil {
		v.logger.Debug().Err(err).Msg("highlighting failed, showing plain JSON")
	}
	return styles.MutedStyle.Render(label) + "\n" + highlighted
}

func indentJSON(raw json.RawMessage) ([]byte, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}

func (v *PlantDetailView) View() string {
	var b strings.Builder
	b.WriteString(styles.HelpStyle.Render("← Back (b)"))
	b.WriteString("\n")

	if v.plant == nil {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render("Error: "))
		b.WriteString(errors.PlantNotFoundMessage)
		b.WriteString("\n\n")
		b.WriteString(styles.HelpStyle.Render("Press Enter or b to go back"))
		return b.String()
	}

	title := v.plant.CommonName
	if title == "" {
		title = "Unknown"
	}
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(v.viewport.View())
	b.WriteString("\n")

	if status, failed := v.clipboard.Status(); status != "" {
		if failed {
			b.WriteString(styles.ErrorStyle.Render(status))
		} else {
			b.WriteString(styles.SuccessStyle.Render(status))
		}
	} else {
		b.WriteString(v.help.View(v.keys))
	}
	return b.String()
}

type detailField struct {
	label string
	value string
}

// RenderPlantDetail renders every section of a plant that has data.
// Sections and fields without values are left out.
func RenderPlantDetail(plant models.PlantRecord) string {
	var sections []string

	if plant.ImageURL != "" {
		sections = append(sections, styles.LabelStyle.Render("Image: ")+styles.LinkStyle.Render(plant.ImageURL))
	}


	if basic := renderFields("Basic Information", []detailField{
		{"Scientific Name", plant.ScientificName},
		{"Family", plant.Family},
		{"Family Common Name", plant.FamilyCommonName},
		{"Genus", plant.Genus},
		{"Rank", plant.Rank},
		{"Status", plant.Status},
	}); basic != "" {
		sections = append(sections, basic)
	}

	if plant.Author != "" {
		sections = append(sections, renderFields("Botanical Information", []detailField{
			{"Author", plant.Author},
			{"Year", plant.Year.String()},
			{"Bibliography", plant.Bibliography},
		}))
	}

	if len(plant.Synonyms) > 0 {
		lines := []string{styles.SectionTitleStyle.Render("Synonyms")}
		for _, syn := range plant.Synonyms {
			lines = append(lines, "  • "+syn)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if !plant.Links.IsEmpty() {
		lines := []string{styles.SectionTitleStyle.Render("Links")}
		for _, link := range []detailField{
			{"View Species", plant.Links.Self},
			{"View Plant", plant.Links.Plant},
			{"View Genus", plant.Links.Genus},
		} {
			if link.value != "" {
				lines = append(lines, fmt.Sprintf("  • %s: %s", link.label, styles.LinkStyle.Render(link.value)))
			}
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	return strings.Join(sections, "\n")
}

func renderFields(title string, fields []detailField) string {
	var lines []string
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		value := f.value
		if f.label == "Status" {
			value = styles.GetStatusStyle(f.value).Render(f.value)
		}
		lines = append(lines, fmt.Sprintf("  %s %s", styles.LabelStyle.Render(f.label+":"), value))
	}
	if len(lines) == 0 {
		return ""
	}
	return styles.SectionTitleStyle.Render(title) + "\n" + strings.Join(lines, "\n")
}
