package catalog

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantview/plantview-cli/internal/errors"
	"github.com/plantview/plantview-cli/internal/models"
	"github.com/plantview/plantview-cli/internal/testutil"
)

func page(records []models.PlantRecord, totalPages int) *models.PageResponse {
	return &models.PageResponse{Data: records, Meta: &models.PageMeta{TotalPages: totalPages}}
}

func TestNewState(t *testing.T) {
	s := NewState()

	assert.Equal(t, AllCategory, s.Selected())
	assert.Equal(t, []string{AllCategory}, s.Categories())
	assert.Empty(t, s.Plants())
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, 1, s.TotalPages())
	assert.False(t, s.InFlight())
	assert.NoError(t, s.Err())
}

func TestSelectCategoryResetsBeforeReload(t *testing.T) {
	s := NewState()
	plants := testutil.SamplePlants(6, "Rosaceae", "Fagaceae")

	req := s.SelectCategory(AllCategory)
	require.True(t, s.Begin(req))
	require.True(t, s.Apply(req, page(plants[:3], 4)))
	next, ok := s.NextPage()
	require.True(t, ok)
	require.True(t, s.Begin(next))
	require.True(t, s.Apply(next, page(plants[3:], 4)))
	require.Len(t, s.Plants(), 6)
	require.Equal(t, 2, s.Page())

	req = s.SelectCategory("Fagaceae")

	assert.Empty(t, s.Plants(), "list must be reset on category change")
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, 1, s.TotalPages())
	assert.Equal(t, "Fagaceae", s.Selected())
	assert.Equal(t, PageRequest{Page: 1, Category: "Fagaceae", session: req.session}, req)
	assert.Equal(t, "Fagaceae", req.Family())
	assert.False(t, req.Append)
}

func TestSelectCategoryEmptyMeansAll(t *testing.T) {
	s := NewState()
	req := s.SelectCategory("")
	assert.Equal(t, AllCategory, s.Selected())
	assert.Equal(t, "", req.Family())
}

func TestBeginFlags(t *testing.T) {
	s := NewState()
	req := s.SelectCategory(AllCategory)

	require.True(t, s.Begin(req))
	assert.True(t, s.Loading())
	assert.False(t, s.FetchingMore())

	s.Apply(req, page(testutil.SamplePlants(2), 3))
	next, ok := s.NextPage()
	require.True(t, ok)
	require.True(t, s.Begin(next))
	assert.False(t, s.Loading())
	assert.True(t, s.FetchingMore())
}

func TestBeginIgnoresPagesBelowOne(t *testing.T) {
	s := NewState()
	req := s.SelectCategory(AllCategory)
	req.Page = 0

	assert.False(t, s.Begin(req))
	assert.False(t, s.InFlight())
}

func TestListOnlyGrowsWithinSession(t *testing.T) {
	s := NewState()
	plants := testutil.SamplePlants(9)

	req := s.SelectCategory(AllCategory)
	s.Begin(req)
	s.Apply(req, page(plants[:3], 3))

	sizes := []int{len(s.Plants())}
	for i := 1; i < 3; i++ {
		next, ok := s.NextPage()
		require.True(t, ok)
		s.Begin(next)
		s.Apply(next, page(plants[i*3:(i+1)*3], 3))
		sizes = append(sizes, len(s.Plants()))
	}

	assert.Equal(t, []int{3, 6, 9}, sizes)
	assert.Equal(t, plants, s.Plants())

	_, ok := s.NextPage()
	assert.False(t, ok, "no pages left after the last one")
	assert.False(t, s.HasMore())
}

func TestTotalPagesIsLastServerValue(t *testing.T) {
	s := NewState()
	req := s.SelectCategory(AllCategory)
	s.Begin(req)
	s.Apply(req, page(testutil.SamplePlants(2), 5))
	assert.Equal(t, 5, s.TotalPages())

	next, _ := s.NextPage()
	s.Begin(next)
	s.Apply(next, page(testutil.SamplePlants(2), 3))
	assert.Equal(t, 3, s.TotalPages())

	next, _ = s.NextPage()
	s.Begin(next)
	s.Apply(next, &models.PageResponse{Data: testutil.SamplePlants(1)})
	assert.Equal(t, 3, s.TotalPages(), "missing meta keeps the last known total")
	assert.Equal(t, 3, s.Page())
}

func TestFailOnFirstLoadSurfacesError(t *testing.T) {
	s := NewState()
	req := s.SelectCategory(AllCategory)
	s.Begin(req)

	require.True(t, s.Fail(req, &errors.APIError{StatusCode: 500}))

	assert.False(t, s.InFlight())
	assert.Empty(t, s.Plants())
	require.Error(t, s.Err())
	assert.Equal(t, errors.FetchFailedMessage, s.Err().Error())
	assert.True(t, stderrors.Is(s.Err(), errors.ErrFetchFailed))
}

func TestFailOnAppendKeepsRecords(t *testing.T) {
	s := NewState()
	req := s.SelectCategory(AllCategory)
	s.Begin(req)
	s.Apply(req, page(testutil.SamplePlants(4), 3))

	next, _ := s.NextPage()
	s.Begin(next)
	s.Fail(next, &errors.NetworkError{Err: stderrors.New("connection reset")})

	assert.Len(t, s.Plants(), 4)
	assert.Equal(t, 1, s.Page(), "failed page is not counted")
	assert.Equal(t, errors.FetchFailedMessage, s.Err().Error())

	retry, ok := s.NextPage()
	require.True(t, ok)
	assert.Equal(t, 2, retry.Page)
	s.Begin(retry)
	assert.NoError(t, s.Err(), "a new request clears the error")
}

func TestStaleResponsesAreDropped(t *testing.T) {
	s := NewState()
	plants := testutil.SamplePlants(6, "Rosaceae", "Fagaceae")

	first := s.SelectCategory(AllCategory)
	s.Begin(first)
	s.Apply(first, page(plants[:2], 3))
	stale, _ := s.NextPage()
	s.Begin(stale)

	fresh := s.SelectCategory("Fagaceae")
	assert.False(t, s.InFlight(), "a new session starts with no request in flight")
	s.Begin(fresh)

	assert.False(t, s.Apply(stale, page(plants[2:4], 3)))
	assert.False(t, s.Fail(stale, stderrors.New("late failure")))
	assert.Empty(t, s.Plants())
	assert.True(t, s.Loading())
	assert.NoError(t, s.Err())

	assert.True(t, s.Apply(fresh, page(plants[1:2], 1)))
	assert.Len(t, s.Plants(), 1)
}

func TestResponsesFromAnotherStateAreDropped(t *testing.T) {
	plants := testutil.SamplePlants(4)

	old := NewState()
	oldReq := old.SelectCategory(AllCategory)
	old.Begin(oldReq)

	fresh := NewState()
	freshReq := fresh.SelectCategory(AllCategory)
	fresh.Begin(freshReq)

	assert.False(t, fresh.Apply(oldReq, page(plants[:2], 5)))
	assert.True(t, fresh.Loading())
	assert.Equal(t, 1, fresh.TotalPages())

	assert.True(t, fresh.Apply(freshReq, page(plants[2:], 1)))
	assert.Len(t, fresh.Plants(), 2)
}

func TestVisibleFiltersBySelectedFamily(t *testing.T) {
	s := NewState()
	plants := testutil.SamplePlants(6, "Rosaceae", "Fagaceae")

	req := s.SelectCategory(AllCategory)
	s.Begin(req)
	s.Apply(req, page(plants, 1))
	assert.Len(t, s.Visible(), 6)

	req = s.SelectCategory("Rosaceae")
	s.Begin(req)
	// servers that ignore the family filter still only show matching cards
	s.Apply(req, page(plants, 1))
	visible := s.Visible()
	assert.Len(t, visible, 3)
	for _, p := range visible {
		assert.Equal(t, "Rosaceae", p.Family)
	}
}

func TestSetCategories(t *testing.T) {
	s := NewState()
	s.SetCategories([]string{"All", "Rosaceae", "", "Fagaceae"})
	assert.Equal(t, []string{AllCategory, "Rosaceae", "Fagaceae"}, s.Categories())
}

func TestDeriveCategories(t *testing.T) {
	plants := []models.PlantRecord{
		{Family: "Rosaceae"},
		{Family: ""},
		{Family: "Fagaceae"},
		{Family: "Rosaceae"},
		{Family: "Poaceae"},
	}
	assert.Equal(t, []string{"Rosaceae", "Fagaceae", "Poaceae"}, DeriveCategories(plants))
	assert.Empty(t, DeriveCategories(nil))
}
