package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plantview/plantview-cli/internal/utils"
)

const copyFeedbackDuration = 2 * time.Second

// ClipboardManager copies text and keeps a short-lived status line for feedback
type ClipboardManager struct {
	write   func(string) error
	status  string
	failed  bool
	started time.Time
}

// ClipboardClearMsg ends the feedback window
type ClipboardClearMsg struct{}

// NewClipboardManager creates a manager that writes to the system clipboard
func NewClipboardManager() ClipboardManager {
	return ClipboardManager{write: utils.WriteToClipboard}
}

// NewClipboardManagerWithWriter swaps the clipboard backend, used by tests
func NewClipboardManagerWithWriter(write func(string) error) ClipboardManager {
	return ClipboardManager{write: write}
}

// Copy writes text and returns a command that clears the status later.
// description names what was copied in the status line.
func (c *ClipboardManager) Copy(text, description string) tea.Cmd {
	c.started = time.Now()
	if text == "" {
		c.failed = true
		c.status = "Nothing to copy"
	} else if err := c.write(text); err != nil {
		c.failed = true
		c.status = "Copy failed: " + err.Error()
	} else {
		c.failed = false
		c.status = "Copied " + description
	}

	return tea.Tick(copyFeedbackDuration, func(time.Time) tea.Msg {
		return ClipboardClearMsg{}
	})
}

// Update handles clipboard-related messages
func (c ClipboardManager) Update(msg tea.Msg) (ClipboardManager, tea.Cmd) {
	if _, ok := msg.(ClipboardClearMsg); ok {
		c.status = ""
		c.failed = false
	}
	return c, nil
}

// Status returns the current feedback line and whether it reports a failure
func (c ClipboardManager) Status() (string, bool) {
	return c.status, c.failed
}
