package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/plantview/plantview-cli/internal/catalog"
)

// CatalogClient defines the API operations needed by the TUI
type CatalogClient interface {
	catalog.PageFetcher
	GetAPIEndpoint() string
}

// BackgroundUpdater is implemented by views that must keep receiving the
// results of their own commands while another view is on top of them.
type BackgroundUpdater interface {
	UpdateBackground(msg tea.Msg) tea.Cmd
}
