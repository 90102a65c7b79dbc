// Package testutil provides a mock plant catalog API for tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi"

	"github.com/plantview/plantview-cli/internal/models"
)

// CatalogRequest records one call to the mock listing endpoint.
type CatalogRequest struct {
	Page      int
	Family    string
	RequestID string
}

// MockCatalog is a configurable mock of the /api/crops endpoint.
type MockCatalog struct {
	server   *httptest.Server
	mu       sync.RWMutex
	plants   []models.PlantRecord
	pageSize int
	failures map[int]int
	delay    time.Duration
	requests []CatalogRequest
}

// NewMockCatalog serves plants in pages of pageSize records.
func NewMockCatalog(plants []models.PlantRecord, pageSize int) *MockCatalog {
	if pageSize <= 0 {
		pageSize = 20
	}

	m := &MockCatalog{
		plants:   plants,
		pageSize: pageSize,
		failures: make(map[int]int),
	}

	r := chi.NewRouter()
	r.Get("/api/crops", m.handleCrops)
	m.server = httptest.NewServer(r)

	return m
}

// URL returns the mock server URL.
func (m *MockCatalog) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockCatalog) Close() {
	m.server.Close()
}

// FailPage makes every request for page respond with status.
func (m *MockCatalog) FailPage(page, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[page] = status
}

// SetDelay delays every response.
func (m *MockCatalog) SetDelay(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delay = d
}

// Requests returns a copy of the recorded requests.
func (m *MockCatalog) Requests() []CatalogRequest {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]CatalogRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// RequestCount returns the number of listing requests received.
func (m *MockCatalog) RequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.requests)
}

func (m *MockCatalog) handleCrops(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	family := r.URL.Query().Get("family")

	m.mu.Lock()
	m.requests = append(m.requests, CatalogRequest{Page: page, Family: family, RequestID: r.Header.Get("X-Request-ID")})
	status, failing := m.failures[page]
	delay := m.delay
	m.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}

	if failing {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = fmt.Fprintf(w, `{"error":"mock failure for page %d"}`, page)
		return
	}

	m.mu.RLock()
	matching := make([]models.PlantRecord, 0, len(m.plants))
	for _, p := range m.plants {
		if family == "" || p.Family == family {
			matching = append(matching, p)
		}
	}
	m.mu.RUnlock()

	totalPages := (len(matching) + m.pageSize - 1) / m.pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * m.pageSize
	end := start + m.pageSize
	if start > len(matching) {
		start = len(matching)
	}
	if end > len(matching) {
		end = len(matching)
	}

	resp := models.PageResponse{
		Data: matching[start:end],
		Meta: &models.PageMeta{TotalPages: totalPages, CurrentPage: page, Total: len(matching)},
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// SamplePlants builds n records cycling through families.
func SamplePlants(n int, families ...string) []models.PlantRecord {
	if len(families) == 0 {
		families = []string{"Rosaceae"}
	}

	plants := make([]models.PlantRecord, n)
	for i := range plants {
		family := families[i%len(families)]
		plants[i] = models.PlantRecord{
			ID:             models.FlexInt(i + 1),
			CommonName:     fmt.Sprintf("Plant %d", i+1),
			ScientificName: fmt.Sprintf("Plantae specimen%d", i+1),
			Family:         family,
			Genus:          fmt.Sprintf("Genus%d", i%7),
		}
	}
	return plants
}
