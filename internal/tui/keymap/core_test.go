package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestCoreKeyRegistry(t *testing.T) {
	t.Run("default registry has catalog mappings", func(t *testing.T) {
		registry := NewCoreKeyRegistry()

		assert.Equal(t, ActionNavigateBack, registry.GetAction("b"))
		assert.Equal(t, ActionNavigateBack, registry.GetAction("esc"))
		assert.Equal(t, ActionNavigateBack, registry.GetAction("backspace"))
		assert.Equal(t, ActionNavigateHome, registry.GetAction("h"))
		assert.Equal(t, ActionNavigateQuit, registry.GetAction("q"))

		assert.Equal(t, ActionGlobalQuit, registry.GetAction("Q"))
		assert.Equal(t, ActionGlobalQuit, registry.GetAction("ctrl+c"))

		assert.Equal(t, ActionViewSpecific, registry.GetAction("f"))
		assert.Equal(t, ActionViewSpecific, registry.GetAction("enter"))
		assert.Equal(t, ActionViewSpecific, registry.GetAction("pgdown"))
		assert.Equal(t, ActionViewSpecific, registry.GetAction("unknown"))
	})

	t.Run("can register custom mappings", func(t *testing.T) {
		registry := NewCoreKeyRegistry()
		registry.Register("x", ActionNavigateBack, "custom back")

		mapping, exists := registry.GetMapping("x")
		assert.True(t, exists)
		assert.Equal(t, ActionNavigateBack, mapping.Action)
		assert.Equal(t, "custom back", mapping.Help)
	})
}

func TestKeyActionClassification(t *testing.T) {
	assert.True(t, IsNavigationAction(ActionNavigateBack))
	assert.True(t, IsNavigationAction(ActionNavigateHome))
	assert.True(t, IsNavigationAction(ActionNavigateQuit))
	assert.False(t, IsNavigationAction(ActionViewSpecific))
	assert.False(t, IsNavigationAction(ActionGlobalQuit))

	assert.True(t, IsGlobalAction(ActionGlobalQuit))
	assert.False(t, IsGlobalAction(ActionNavigateQuit))
	assert.False(t, IsGlobalAction(ActionIgnore))
}

type stubView struct {
	disabled map[string]bool
}

func (s *stubView) IsKeyDisabled(keyString string) bool { return s.disabled[keyString] }

func (s *stubView) HandleKey(keyMsg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	return keyMsg.String() == "x", nil, nil
}

func TestCoreViewKeymapInterface(t *testing.T) {
	var view CoreViewKeymap = &stubView{disabled: map[string]bool{"b": true}}

	assert.True(t, view.IsKeyDisabled("b"))
	assert.False(t, view.IsKeyDisabled("q"))

	handled, _, _ := view.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.True(t, handled)
}
