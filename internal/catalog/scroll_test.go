package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantview/plantview-cli/internal/testutil"
)

func TestNearBottom(t *testing.T) {
	tests := []struct {
		name                              string
		offset, visible, total, threshold int
		want                              bool
	}{
		{"top of long content", 0, 10, 100, 3, false},
		{"just outside threshold", 86, 10, 100, 3, false},
		{"at threshold", 87, 10, 100, 3, true},
		{"at bottom", 90, 10, 100, 3, true},
		{"content shorter than viewport", 0, 20, 5, 3, true},
		{"negative threshold", 89, 10, 100, -5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NearBottom(tt.offset, tt.visible, tt.total, tt.threshold))
		})
	}
}

func loadedState(t *testing.T, totalPages int) *State {
	t.Helper()
	s := NewState()
	req := s.SelectCategory(AllCategory)
	require.True(t, s.Begin(req))
	require.True(t, s.Apply(req, page(testutil.SamplePlants(10), totalPages)))
	return s
}

func TestOnScrollTriggersExactlyOneRequest(t *testing.T) {
	s := loadedState(t, 3)

	req, ok := s.OnScroll(8, 10, 20, 3)
	require.True(t, ok)
	assert.Equal(t, 2, req.Page)
	assert.True(t, req.Append)
	assert.Equal(t, AllCategory, req.Category)
	assert.True(t, s.FetchingMore())

	for i := 0; i < 5; i++ {
		_, again := s.OnScroll(10, 10, 20, 3)
		assert.False(t, again, "in-flight guard blocks repeated scroll events")
	}
}

func TestOnScrollAwayFromBottom(t *testing.T) {
	s := loadedState(t, 3)
	_, ok := s.OnScroll(0, 10, 100, 3)
	assert.False(t, ok)
	assert.False(t, s.InFlight())
}

func TestOnScrollNoMorePages(t *testing.T) {
	s := loadedState(t, 1)
	_, ok := s.OnScroll(10, 10, 20, 3)
	assert.False(t, ok)
	assert.False(t, s.InFlight())
}

func TestOnScrollWhileFirstPageLoading(t *testing.T) {
	s := NewState()
	req := s.SelectCategory(AllCategory)
	s.Begin(req)

	_, ok := s.OnScroll(0, 10, 0, 3)
	assert.False(t, ok)
}
