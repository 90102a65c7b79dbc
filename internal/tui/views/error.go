package views

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/plantview/plantview-cli/internal/tui/messages"
)

// ErrorView displays error messages with optional recovery
type ErrorView struct {
	err         error
	message     string
	recoverable bool
	width       int
	height      int
}

// NewErrorView creates a new error view
func NewErrorView(err error, message string, recoverable bool) *ErrorView {
	return &ErrorView{
		err:         err,
		message:     message,
		recoverable: recoverable,
	}
}

// Init implements tea.Model
func (e *ErrorView) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (e *ErrorView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width = msg.Width
		e.height = msg.Height
		return e, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			if e.recoverable {
				return e, func() tea.Msg {
					return messages.NavigateBackMsg{}
				}
			}
			return e, func() tea.Msg {
				return messages.NavigateToListMsg{}
			}
		}
	}

	return e, nil
}

// View implements tea.Model
func (e *ErrorView) View() string {
	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)

	messageStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		MarginTop(1).
		MarginBottom(1)

	instructionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("242")).
		Italic(true)

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		errorStyle.Render("⚠ Error"),
		messageStyle.Render(e.message),
	)

	if e.err != nil && e.err.Error() != e.message {
		errorDetails := lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Render(fmt.Sprintf("Details: %v", e.err))
		content = lipgloss.JoinVertical(lipgloss.Center, content, errorDetails)
	}

	instruction := "Press Enter to open the catalog"
	if e.recoverable {
		instruction = "Press Enter or b to go back"
	}
	content = lipgloss.JoinVertical(
		lipgloss.Center,
		content,
		instructionStyle.Render(instruction),
	)

	if e.width == 0 || e.height == 0 {
		return content
	}

	return lipgloss.NewStyle().
		Width(e.width).
		Height(e.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
