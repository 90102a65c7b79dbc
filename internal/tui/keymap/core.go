package keymap

import tea "github.com/charmbracelet/bubbletea"

// CoreViewKeymap is the enhanced interface that views can implement to control key behavior
type CoreViewKeymap interface {
	// IsKeyDisabled returns true if the given key should be ignored for this view
	IsKeyDisabled(keyString string) bool

	// HandleKey allows views to provide custom handling for specific keys
	// Returns (handled, model, cmd) - if handled=true, the result is used instead of default processing
	HandleKey(keyMsg tea.KeyMsg) (handled bool, model tea.Model, cmd tea.Cmd)
}

// KeyAction represents what should happen when a key is pressed
type KeyAction int

const (
	// Navigation actions
	ActionNavigateBack KeyAction = iota
	ActionNavigateHome // Return to the catalog list
	ActionNavigateQuit

	// View actions
	ActionViewSpecific // Let the view handle it
	ActionIgnore       // Completely ignore the key

	// Global actions
	ActionGlobalQuit
)

// KeyMapping defines how a key should be processed
type KeyMapping struct {
	Key    string
	Action KeyAction
	Help   string
}

// CoreKeyRegistry maintains the central registry of all keys and their default actions
type CoreKeyRegistry struct {
	mappings map[string]KeyMapping
}

// NewCoreKeyRegistry creates a new key registry with default mappings
func NewCoreKeyRegistry() *CoreKeyRegistry {
	registry := &CoreKeyRegistry{
		mappings: make(map[string]KeyMapping),
	}

	registry.Register("ctrl+c", ActionGlobalQuit, "force quit")
	registry.Register("Q", ActionGlobalQuit, "force quit")
	registry.Register("q", ActionNavigateQuit, "quit")
	registry.Register("b", ActionNavigateBack, "back")
	registry.Register("esc", ActionNavigateBack, "back")
	registry.Register("backspace", ActionNavigateBack, "back")
	registry.Register("h", ActionNavigateHome, "catalog")

	// View-specific keys
	registry.Register("f", ActionViewSpecific, "filter by family")
	registry.Register("enter", ActionViewSpecific, "select/enter")
	registry.Register("r", ActionViewSpecific, "raw record")
	registry.Register("y", ActionViewSpecific, "copy")
	registry.Register("j", ActionViewSpecific, "down")
	registry.Register("k", ActionViewSpecific, "up")
	registry.Register("l", ActionViewSpecific, "right")
	registry.Register("up", ActionViewSpecific, "up")
	registry.Register("down", ActionViewSpecific, "down")
	registry.Register("left", ActionViewSpecific, "left")
	registry.Register("right", ActionViewSpecific, "right")
	registry.Register("pgdown", ActionViewSpecific, "page down")
	registry.Register("pgup", ActionViewSpecific, "page up")

	return registry
}

// Register adds a key mapping to the registry
func (r *CoreKeyRegistry) Register(key string, action KeyAction, help string) {
	r.mappings[key] = KeyMapping{
		Key:    key,
		Action: action,
		Help:   help,
	}
}

// GetAction returns the default action for a key, or ActionViewSpecific if not found
func (r *CoreKeyRegistry) GetAction(key string) KeyAction {
	if mapping, exists := r.mappings[key]; exists {
		return mapping.Action
	}
	return ActionViewSpecific
}

// GetMapping returns the full mapping for a key
func (r *CoreKeyRegistry) GetMapping(key string) (KeyMapping, bool) {
	mapping, exists := r.mappings[key]
	return mapping, exists
}

// IsNavigationAction returns true if the action is a navigation action
func IsNavigationAction(action KeyAction) bool {
	switch action {
	case ActionNavigateBack, ActionNavigateHome, ActionNavigateQuit:
		return true
	default:
		return false
	}
}

// IsGlobalAction returns true if the action should be handled globally regardless of view state
func IsGlobalAction(action KeyAction) bool {
	return action == ActionGlobalQuit
}
