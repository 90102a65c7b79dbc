package views

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/plantview/plantview-cli/internal/models"
)

// fakeCatalog serves fixed pages of pageSize records, optionally filtered by family
type fakeCatalog struct {
	mu       sync.Mutex
	plants   []models.PlantRecord
	pageSize int
	failing  map[int]error
	calls    []string
}

func newFakeCatalog(plants []models.PlantRecord, pageSize int) *fakeCatalog {
	return &fakeCatalog{plants: plants, pageSize: pageSize, failing: map[int]error{}}
}

func (f *fakeCatalog) ListPlants(_ context.Context, page int, family string) (*models.PageResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, fmt.Sprintf("page=%d family=%s", page, family))
	if err, ok := f.failing[page]; ok {
		return nil, err
	}

	var matched []models.PlantRecord
	for _, p := range f.plants {
		if family == "" || p.Family == family {
			matched = append(matched, p)
		}
	}

	totalPages := max(1, (len(matched)+f.pageSize-1)/f.pageSize)
	start := min(len(matched), (page-1)*f.pageSize)
	end := min(len(matched), start+f.pageSize)

	return &models.PageResponse{
		Data: matched[start:end],
		Meta: &models.PageMeta{TotalPages: totalPages, CurrentPage: page, Total: len(matched)},
	}, nil
}

func (f *fakeCatalog) failPage(page int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing[page] = err
}

func (f *fakeCatalog) callLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func samplePlants(n int, families ...string) []models.PlantRecord {
	plants := make([]models.PlantRecord, n)
	for i := range plants {
		plants[i] = models.PlantRecord{
			ID:             models.FlexInt(i + 1),
			CommonName:     fmt.Sprintf("Plant %d", i+1),
			ScientificName: fmt.Sprintf("Planta %d", i+1),
		}
		if len(families) > 0 {
			plants[i].Family = families[i%len(families)]
		}
	}
	return plants
}

// collectMsgs runs cmd and returns the messages it produced, flattening
// batches. Spinner ticks are dropped.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}

	if msg == nil {
		return nil
	}
	if _, isTick := msg.(spinner.TickMsg); isTick {
		return nil
	}
	return []tea.Msg{msg}
}

// pump feeds the results of cmd back into model until only messages the
// model does not produce itself remain; those are returned.
func pump(model tea.Model, cmd tea.Cmd) []tea.Msg {
	var leftover []tea.Msg
	queue := collectMsgs(cmd)

	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]

		switch msg.(type) {
		case pageLoadedMsg, categoriesLoadedMsg:
			_, next := model.Update(msg)
			queue = append(queue, collectMsgs(next)...)
		default:
			leftover = append(leftover, msg)
		}
	}
	return leftover
}
