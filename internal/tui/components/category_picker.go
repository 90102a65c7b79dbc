// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// CategorySelectedMsg is emitted when the user confirms a family in the picker
type CategorySelectedMsg struct {
	Category string
}

// CategoryPicker is an inline fuzzy filter over the family list
type CategoryPicker struct {
	Active        bool
	Input         textinput.Model
	Items         []string // Original items
	FilteredItems []string // Filtered items
	SelectedIndex int      // Selected index in filtered items
	Query         string
	Width         int
	MaxRows       int
}

// NewCategoryPicker creates a picker over items
func NewCategoryPicker(items []string, width int) *CategoryPicker {
	input := textinput.New()
	input.Placeholder = "Type to filter families..."
	input.CharLimit = 100
	input.Width = max(10, width-4)

	return &CategoryPicker{
		Input:         input,
		Items:         items,
		FilteredItems: items,
		Width:         width,
		MaxRows:       8,
	}
}

// Activate opens the picker with the cursor on current
func (f *CategoryPicker) Activate(current string) {
	f.Active = true
	f.Input.Focus()
	f.Input.SetValue("")
	f.Query = ""
	f.FilteredItems = f.Items
	f.SelectedIndex = 0
	for i, item := range f.Items {
		if item == current {
			f.SelectedIndex = i
			break
		}
	}
}

// Deactivate closes the picker without selecting
func (f *CategoryPicker) Deactivate() {
	f.Active = false
	f.Input.Blur()
	f.Input.SetValue("")
	f.Query = ""
	f.FilteredItems = f.Items
}

// IsActive returns whether the picker is open
func (f *CategoryPicker) IsActive() bool {
	return f.Active
}

// SetItems updates the items to search through
func (f *CategoryPicker) SetItems(items []string) {
	f.Items = items
	f.filterItems()
}

// SetWidth resizes the input
func (f *CategoryPicker) SetWidth(width int) {
	f.Width = width
	f.Input.Width = max(10, width-4)
}

// Update handles keys while the picker is open
func (f *CategoryPicker) Update(msg tea.Msg) (*CategoryPicker, tea.Cmd) {
	if !f.Active {
		return f, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch keyMsg.String() {
	case "esc":
		f.Deactivate()
		return f, nil

	case "enter":
		selected, ok := f.GetSelected()
		f.Deactivate()
		if !ok {
			return f, nil
		}
		return f, func() tea.Msg { return CategorySelectedMsg{Category: selected} }

	case "up", "ctrl+p", "ctrl+k":
		if f.SelectedIndex > 0 {
			f.SelectedIndex--
		}
		return f, nil

	case "down", "ctrl+n", "ctrl+j":
		if f.SelectedIndex < len(f.FilteredItems)-1 {
			f.SelectedIndex++
		}
		return f, nil
	}

	var cmd tea.Cmd
	f.Input, cmd = f.Input.Update(keyMsg)
	f.Query = f.Input.Value()
	f.filterItems()
	return f, cmd
}

// filterItems filters items based on current query
func (f *CategoryPicker) filterItems() {
	if f.Query == "" {
		f.FilteredItems = f.Items
	} else {
		matches := fuzzy.Find(f.Query, f.Items)
		f.FilteredItems = make([]string, len(matches))
		for i, match := range matches {
			f.FilteredItems[i] = f.Items[match.Index]
		}
	}

	if f.SelectedIndex >= len(f.FilteredItems) {
		f.SelectedIndex = 0
	}
}

// GetSelected returns the highlighted item
func (f *CategoryPicker) GetSelected() (string, bool) {
	if f.SelectedIndex < 0 || f.SelectedIndex >= len(f.FilteredItems) {
		return "", false
	}
	return f.FilteredItems[f.SelectedIndex], true
}

// View renders the search bar and a window of matches
func (f *CategoryPicker) View() string {
	if !f.Active {
		return ""
	}

	searchStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("70")).
		Bold(true)
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("28"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

	var b strings.Builder
	b.WriteString(searchStyle.Render("Family: " + f.Input.View()))
	b.WriteString("\n")

	if len(f.FilteredItems) == 0 {
		b.WriteString(dimStyle.Render("  no matching family"))
		return b.String()
	}

	start := 0
	if f.SelectedIndex >= f.MaxRows {
		start = f.SelectedIndex - f.MaxRows + 1
	}
	end := min(len(f.FilteredItems), start+f.MaxRows)

	for i := start; i < end; i++ {
		item := highlightMatch(f.FilteredItems[i], f.Query)
		if i == f.SelectedIndex {
			b.WriteString(selectedStyle.Render("> " + f.FilteredItems[i]))
		} else {
			b.WriteString("  " + item)
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// highlightMatch highlights a case-insensitive substring match
func highlightMatch(text, query string) string {
	if query == "" {
		return text
	}

	lower := strings.ToLower(text)
	queryLower := strings.ToLower(query)

	if idx := strings.Index(lower, queryLower); idx >= 0 {
		highlightStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true)
		return text[:idx] + highlightStyle.Render(text[idx:idx+len(query)]) + text[idx+len(query):]
	}

	return text
}
