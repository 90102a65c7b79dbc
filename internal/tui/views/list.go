package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/plantview/plantview-cli/internal/catalog"
	"github.com/plantview/plantview-cli/internal/models"
	"github.com/plantview/plantview-cli/internal/tui/cache"
	"github.com/plantview/plantview-cli/internal/tui/components"
	"github.com/plantview/plantview-cli/internal/tui/messages"
	"github.com/plantview/plantview-cli/internal/tui/styles"
)

const (
	listHeaderLines = 3
	listFooterLines = 2

	noPlantsMessage = "No plants found in this category."
)

// ListOptions tunes the catalog list
type ListOptions struct {
	Category        string // initial family, "" for All
	PreviewLimit    int
	PreviewMaxPages int
	ScrollThreshold int // rows from the bottom that trigger the next page
}

// DefaultListOptions returns the standard list settings
func DefaultListOptions() ListOptions {
	return ListOptions{
		Category:        catalog.AllCategory,
		PreviewLimit:    catalog.DefaultPreviewLimit,
		PreviewMaxPages: catalog.DefaultPreviewMaxPages,
		ScrollThreshold: catalog.DefaultScrollThreshold,
	}
}

type pageLoadedMsg struct {
	req  catalog.PageRequest
	resp *models.PageResponse
	err  error
}

type categoriesLoadedMsg struct {
	categories []string
	err        error
}

// PlantListView is the "/" route: family picker plus an infinitely
// scrolling grid of plant cards.
type PlantListView struct {
	client  catalog.PageFetcher
	nav     *cache.NavigationStore
	opts    ListOptions
	state   *catalog.State
	logger  zerolog.Logger
	keys    components.KeyMap
	help    help.Model
	spinner spinner.Model
	picker  *components.CategoryPicker

	width    int
	height   int
	cursor   int // index into state.Visible()
	offset   int // first grid row on screen
	showHelp bool
	started  bool
}

// NewPlantListView creates the list view. Loading starts in Init.
func NewPlantListView(client catalog.PageFetcher, nav *cache.NavigationStore, opts ListOptions) *PlantListView {
	if opts.Category == "" {
		opts.Category = catalog.AllCategory
	}
	if opts.ScrollThreshold < 0 {
		opts.ScrollThreshold = catalog.DefaultScrollThreshold
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("70"))

	state := catalog.NewState()

	return &PlantListView{
		client:  client,
		nav:     nav,
		opts:    opts,
		state:   state,
		logger:  log.With().Str("component", "list").Logger(),
		keys:    components.DefaultKeyMap,
		help:    help.New(),
		spinner: s,
		picker:  components.NewCategoryPicker(state.Categories(), 40),
	}
}

// Init loads the first page and the category preview. Returning to the
// list from a detail view calls Init again; the loaded list is kept.
func (v *PlantListView) Init() tea.Cmd {
	if v.started {
		return nil
	}
	v.started = true

	req := v.state.SelectCategory(v.opts.Category)
	v.state.Begin(req)

	return tea.Batch(v.loadPage(req), v.loadCategories(), v.spinner.Tick)
}

func (v *PlantListView) loadPage(req catalog.PageRequest) tea.Cmd {
	client := v.client
	return func() tea.Msg {
		resp, err := client.ListPlants(context.Background(), req.Page, req.Family())
		return pageLoadedMsg{req: req, resp: resp, err: err}
	}
}

func (v *PlantListView) loadCategories() tea.Cmd {
	loader := catalog.NewPreviewLoader(v.client, v.opts.PreviewLimit, v.opts.PreviewMaxPages)
	return func() tea.Msg {
		categories, err := loader.Load(context.Background())
		return categoriesLoadedMsg{categories: categories, err: err}
	}
}

// IsKeyDisabled keeps navigation keys away from the app while the picker
// is open. Back keys have nowhere to go from the list.
func (v *PlantListView) IsKeyDisabled(keyString string) bool {
	if v.picker.IsActive() {
		return keyString != "ctrl+c"
	}
	switch keyString {
	case "b", "esc", "backspace", "h":
		return true
	}
	return false
}

// HandleKey implements keymap.CoreViewKeymap
func (v *PlantListView) HandleKey(tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	return false, v, nil
}

func (v *PlantListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.help.Width = msg.Width
		v.picker.SetWidth(min(60, msg.Width))
		v.keepCursorVisible()
		return v, nil

	case spinner.TickMsg:
		if !v.state.InFlight() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case pageLoadedMsg:
		v.handlePageLoaded(msg)
		return v, nil

	case categoriesLoadedMsg:
		if msg.err != nil {
			v.logger.Warn().Err(msg.err).Msg("category preview failed, keeping default categories")
			return v, nil
		}
		v.state.SetCategories(msg.categories)
		v.picker.SetItems(v.state.Categories())
		v.logger.Debug().Int("categories", len(v.state.Categories())).Msg("categories loaded")
		return v, nil

	case components.CategorySelectedMsg:
		return v, v.selectCategory(msg.Category)

	case tea.MouseMsg:
		return v, v.handleMouse(msg)

	case tea.KeyMsg:
		if v.picker.IsActive() {
			var cmd tea.Cmd
			v.picker, cmd = v.picker.Update(msg)
			return v, cmd
		}
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// UpdateBackground applies page, category and spinner results while a
// detail view is showing, so the list is consistent when it comes back.
func (v *PlantListView) UpdateBackground(msg tea.Msg) tea.Cmd {
	switch msg.(type) {
	case pageLoadedMsg, categoriesLoadedMsg, spinner.TickMsg:
		_, cmd := v.Update(msg)
		return cmd
	}
	return nil
}

func (v *PlantListView) handlePageLoaded(msg pageLoadedMsg) {
	if msg.err != nil {
		if v.state.Fail(msg.req, msg.err) {
			v.logger.Warn().Err(msg.err).Int("page", msg.req.Page).Str("family", msg.req.Family()).Msg("page load failed")
		}
		return
	}

	if !v.state.Apply(msg.req, msg.resp) {
		v.logger.Debug().Int("page", msg.req.Page).Str("category", msg.req.Category).Msg("dropped response from an earlier category")
		return
	}

	v.logger.Debug().
		Int("page", v.state.Page()).
		Int("total_pages", v.state.TotalPages()).
		Int("plants", len(v.state.Plants())).
		Msg("page applied")
	v.keepCursorVisible()
}

// selectCategory starts a new category session when the family changes
func (v *PlantListView) selectCategory(category string) tea.Cmd {
	if category == v.state.Selected() {
		return nil
	}

	req := v.state.SelectCategory(category)
	v.state.Begin(req)
	v.cursor = 0
	v.offset = 0

	return tea.Batch(v.loadPage(req), v.spinner.Tick)
}

func (v *PlantListView) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := len(v.state.Visible())
	cols := v.columns()

	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit
	case key.Matches(msg, v.keys.Help):
		v.showHelp = !v.showHelp
		return v, nil
	case key.Matches(msg, v.keys.Filter):
		v.picker.Activate(v.state.Selected())
		return v, nil
	case key.Matches(msg, v.keys.Enter):
		return v, v.openSelected()
	case key.Matches(msg, v.keys.Up):
		v.moveCursor(-cols, visible)
	case key.Matches(msg, v.keys.Down):
		v.moveCursor(cols, visible)
	case key.Matches(msg, v.keys.Left):
		v.moveCursor(-1, visible)
	case key.Matches(msg, v.keys.Right):
		v.moveCursor(1, visible)
	case key.Matches(msg, v.keys.PageUp):
		v.moveCursor(-cols*v.visibleRows(), visible)
	case key.Matches(msg, v.keys.PageDown):
		v.moveCursor(cols*v.visibleRows(), visible)
	case key.Matches(msg, v.keys.Home):
		v.moveCursor(-visible, visible)
	case key.Matches(msg, v.keys.End):
		v.moveCursor(visible, visible)
	default:
		return v, nil
	}

	return v, v.onScroll()
}

func (v *PlantListView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		v.scrollBy(-1)
	case tea.MouseButtonWheelDown:
		v.scrollBy(1)
	default:
		return nil
	}
	return v.onScroll()
}

func (v *PlantListView) moveCursor(delta, visible int) {
	if visible == 0 {
		v.cursor = 0
		return
	}
	v.cursor = max(0, min(visible-1, v.cursor+delta))
	v.keepCursorVisible()
}

// scrollBy moves the viewport by rows grid rows, dragging the cursor along
func (v *PlantListView) scrollBy(rows int) {
	maxOffset := max(0, v.totalRows()-v.visibleRows())
	v.offset = max(0, min(maxOffset, v.offset+rows))

	cols := v.columns()
	first := v.offset * cols
	last := (v.offset+v.visibleRows())*cols - 1
	if v.cursor < first {
		v.cursor = first
	}
	if visible := len(v.state.Visible()); v.cursor > last && visible > 0 {
		v.cursor = min(last, visible-1)
	}
}

func (v *PlantListView) keepCursorVisible() {
	visible := len(v.state.Visible())
	if v.cursor >= visible {
		v.cursor = max(0, visible-1)
	}

	row := v.cursor / v.columns()
	rows := v.visibleRows()
	if row < v.offset {
		v.offset = row
	} else if row >= v.offset+rows {
		v.offset = row - rows + 1
	}
	v.offset = max(0, min(v.offset, max(0, v.totalRows()-rows)))
}

// onScroll requests the next page when the viewport is near the bottom
func (v *PlantListView) onScroll() tea.Cmd {
	offsetLines := v.offset * components.CardHeight
	totalLines := v.totalRows() * components.CardHeight

	req, ok := v.state.OnScroll(offsetLines, v.contentHeight(), totalLines, v.opts.ScrollThreshold)
	if !ok {
		return nil
	}

	v.logger.Debug().Int("page", req.Page).Str("category", req.Category).Msg("near bottom, loading next page")
	return tea.Batch(v.loadPage(req), v.spinner.Tick)
}

func (v *PlantListView) openSelected() tea.Cmd {
	visible := v.state.Visible()
	if v.cursor < 0 || v.cursor >= len(visible) {
		return nil
	}

	plant := visible[v.cursor]
	v.nav.SetPlant(plant)

	return func() tea.Msg {
		return messages.NavigateToDetailMsg{PlantID: plant.GetIDString()}
	}
}

func (v *PlantListView) columns() int {
	return components.GridColumns(v.width)
}

func (v *PlantListView) contentHeight() int {
	return max(components.CardHeight, v.height-listHeaderLines-listFooterLines)
}

func (v *PlantListView) visibleRows() int {
	return max(1, v.contentHeight()/components.CardHeight)
}

func (v *PlantListView) totalRows() int {
	cols := v.columns()
	return (len(v.state.Visible()) + cols - 1) / cols
}

func (v *PlantListView) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("🌱 Plant Explorer"))
	b.WriteString("\n")
	b.WriteString(v.renderFilterLine())
	b.WriteString("\n\n")

	if v.picker.IsActive() {
		b.WriteString(v.picker.View())
		return b.String()
	}

	b.WriteString(v.renderBody())
	b.WriteString("\n")
	b.WriteString(v.renderFooter())
	return b.String()
}

func (v *PlantListView) renderFilterLine() string {
	line := styles.LabelStyle.Render("Filter by category: ") + styles.CardTitleStyle.Render(v.state.Selected())
	if n := len(v.state.Categories()); n > 1 {
		line += styles.HelpStyle.Render(fmt.Sprintf("  (%d families, f to change)", n-1))
	} else {
		line += styles.HelpStyle.Render("  (f to change)")
	}
	return line
}

func (v *PlantListView) renderBody() string {
	plants := v.state.Plants()
	visible := v.state.Visible()

	switch {
	case v.state.Loading() && len(plants) == 0:
		return v.spinner.View() + " Loading plants..."
	case v.state.Err() != nil && len(plants) == 0:
		return styles.ErrorStyle.Render("Error: ") + v.state.Err().Error()
	case len(visible) == 0:
		return styles.MutedStyle.Render(noPlantsMessage)
	}

	cols := v.columns()
	start := v.offset * cols
	end := min(len(visible), start+v.visibleRows()*cols)
	rows := components.RenderGrid(visible[start:end], v.width, v.cursor-start)
	return strings.Join(rows, "\n")
}

func (v *PlantListView) renderFooter() string {
	var status string
	switch {
	case v.state.FetchingMore():
		status = v.spinner.View() + " Loading more..."
	case v.state.Err() != nil && len(v.state.Plants()) > 0:
		status = styles.ErrorStyle.Render("Error: ") + v.state.Err().Error()
	case len(v.state.Visible()) > 0:
		status = fmt.Sprintf("%d plants · page %d of %d", len(v.state.Visible()), v.state.Page(), v.state.TotalPages())
		if !v.state.HasMore() {
			status += " · end of catalog"
		}
		status = styles.HelpStyle.Render(status)
	}

	helpView := v.help.ShortHelpView(v.keys.ShortHelp())
	if v.showHelp {
		helpView = v.help.FullHelpView(v.keys.FullHelp())
	}
	return status + "\n" + helpView
}
