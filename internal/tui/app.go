package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/plantview/plantview-cli/internal/tui/cache"
	"github.com/plantview/plantview-cli/internal/tui/debug"
	"github.com/plantview/plantview-cli/internal/tui/keymap"
	"github.com/plantview/plantview-cli/internal/tui/messages"
	"github.com/plantview/plantview-cli/internal/tui/views"
)

// Options configures the browse session
type Options struct {
	Route  string // initial path, "/" or "/plant/:id"
	List   views.ListOptions
	NavTTL time.Duration
}

type App struct {
	client      CatalogClient
	opts        Options
	nav         *cache.NavigationStore
	viewStack   []tea.Model // Navigation history
	current     tea.Model
	keyRegistry *keymap.CoreKeyRegistry // Central key processing
	width       int                     // Current window width
	height      int                     // Current window height
}

func NewApp(client CatalogClient, opts Options) *App {
	return &App{
		client:      client,
		opts:        opts,
		nav:         cache.NewNavigationStore(opts.NavTTL),
		keyRegistry: keymap.NewCoreKeyRegistry(),
	}
}

// Init implements tea.Model interface - opens the initial route
func (a *App) Init() tea.Cmd {
	debug.LogToFilef("APP: starting at route %q against %s\n", a.opts.Route, a.client.GetAPIEndpoint())

	route, err := ParseRoute(a.opts.Route)
	if err != nil {
		return func() tea.Msg {
			return messages.NavigateToErrorMsg{Error: err, Message: "Page not found", Recoverable: false}
		}
	}

	switch route.Kind {
	case RouteDetail:
		// Direct access: the navigation store is empty, so the detail view
		// shows its not-found state and back leads to the list.
		a.current = views.NewPlantDetailView(a.nav, route.PlantID)
	default:
		a.current = a.newListView(a.opts.List.Category)
	}
	return a.current.Init()
}

func (a *App) newListView(category string) tea.Model {
	opts := a.opts.List
	opts.Category = category
	return views.NewPlantListView(a.client, a.nav, opts)
}

// Update implements tea.Model interface - handles navigation and delegates to current view
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.current == nil {
		switch msg := msg.(type) {
		case tea.WindowSizeMsg:
			a.width = msg.Width
			a.height = msg.Height
		case messages.NavigationMsg:
			return a.handleNavigation(msg)
		}
		return a, nil
	}

	// Handle navigation messages first
	if navMsg, ok := msg.(messages.NavigationMsg); ok {
		debug.LogToFilef("APP: navigation %T\n", navMsg)
		return a.handleNavigation(navMsg)
	}

	// Handle window size messages centrally
	if wsMsg, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = wsMsg.Width
		a.height = wsMsg.Height
		newModel, cmd := a.current.Update(msg)
		a.current = newModel
		return a, cmd
	}

	// Centralized key processing
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if handled, model, cmd := a.processKeyWithFiltering(keyMsg); handled {
			return model, cmd
		}
	}

	if _, isSpinner := msg.(spinner.TickMsg); !isSpinner {
		debug.LogToFilef("APP: delegating %T to %T\n", msg, a.current)
	}
	newModel, cmd := a.current.Update(msg)
	a.current = newModel

	if bgCmd := a.updateBackground(msg); bgCmd != nil {
		cmd = tea.Batch(cmd, bgCmd)
	}
	return a, cmd
}

// updateBackground hands command results to the views waiting in the stack.
// User input only ever goes to the current view.
func (a *App) updateBackground(msg tea.Msg) tea.Cmd {
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		return nil
	}

	var cmds []tea.Cmd
	for _, view := range a.viewStack {
		if view == a.current {
			continue
		}
		if bg, ok := view.(BackgroundUpdater); ok {
			if cmd := bg.UpdateBackground(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

// handleNavigation processes navigation messages and manages view transitions
func (a *App) handleNavigation(msg messages.NavigationMsg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.NavigateToDetailMsg:
		a.viewStack = append(a.viewStack, a.current)
		a.current = views.NewPlantDetailView(a.nav, msg.PlantID)
		return a, a.initWithSize()

	case messages.NavigateToListMsg:
		// The list is home: clear the stack
		a.viewStack = nil
		a.current = a.newListView(msg.Category)
		return a, a.initWithSize()

	case messages.NavigateBackMsg:
		if len(a.viewStack) > 0 {
			a.current = a.viewStack[len(a.viewStack)-1]
			a.viewStack = a.viewStack[:len(a.viewStack)-1]
			return a, a.initWithSize()
		}
		// No history - go to the list
		return a.handleNavigation(messages.NavigateToListMsg{})

	case messages.NavigateToErrorMsg:
		if msg.Recoverable {
			a.viewStack = append(a.viewStack, a.current)
		} else {
			a.viewStack = nil
		}
		a.current = views.NewErrorView(msg.Error, msg.Message, msg.Recoverable)
		return a, a.initWithSize()
	}

	return a, nil
}

// initWithSize initialises the current view and replays the known window size to it
func (a *App) initWithSize() tea.Cmd {
	cmds := []tea.Cmd{a.current.Init()}
	if a.width > 0 && a.height > 0 {
		width, height := a.width, a.height
		cmds = append(cmds, func() tea.Msg {
			return tea.WindowSizeMsg{Width: width, Height: height}
		})
	}
	return tea.Batch(cmds...)
}

// View implements tea.Model interface - delegates rendering to current view
func (a *App) View() string {
	if a.current == nil {
		if a.width <= 0 || a.height <= 0 {
			return "Initializing..."
		}
		return lipgloss.NewStyle().
			Width(a.width).
			Height(a.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("Initializing...")
	}
	return a.current.View()
}

// Run starts the TUI application
func (a *App) Run() error {
	defer a.nav.Stop()

	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// processKeyWithFiltering is the centralized key processor that handles all key filtering and routing
func (a *App) processKeyWithFiltering(keyMsg tea.KeyMsg) (handled bool, model tea.Model, cmd tea.Cmd) {
	keyString := keyMsg.String()

	if viewKeymap, hasKeymap := a.current.(keymap.CoreViewKeymap); hasKeymap {
		// Disabled for navigation, but the view still receives it in Update
		if viewKeymap.IsKeyDisabled(keyString) {
			return false, a, nil
		}

		if handled, model, cmd := viewKeymap.HandleKey(keyMsg); handled {
			if model != nil && model != a {
				a.current = model
			}
			return true, a, cmd
		}
	}

	action := a.keyRegistry.GetAction(keyString)

	if keymap.IsGlobalAction(action) {
		return true, a, tea.Quit
	}

	if keymap.IsNavigationAction(action) {
		return a.handleNavigationAction(action)
	}

	return false, a, nil
}

// handleNavigationAction processes back, home and quit
func (a *App) handleNavigationAction(action keymap.KeyAction) (handled bool, model tea.Model, cmd tea.Cmd) {
	switch action {
	case keymap.ActionNavigateBack:
		model, cmd := a.handleNavigation(messages.NavigateBackMsg{})
		return true, model, cmd

	case keymap.ActionNavigateHome:
		if len(a.viewStack) > 0 {
			// Reuse the list at the bottom of the stack to keep its loaded pages
			if list, ok := a.viewStack[0].(*views.PlantListView); ok {
				a.current = list
				a.viewStack = nil
				return true, a, a.initWithSize()
			}
		}
		if _, isList := a.current.(*views.PlantListView); isList {
			return true, a, nil
		}
		model, cmd := a.handleNavigation(messages.NavigateToListMsg{})
		return true, model, cmd

	case keymap.ActionNavigateQuit:
		if len(a.viewStack) > 0 {
			model, cmd := a.handleNavigation(messages.NavigateBackMsg{})
			return true, model, cmd
		}
		return true, a, tea.Quit
	}

	return false, a, nil
}
