// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package catalog holds the browse state for the plant catalog: the
// selected category, the accumulated records of the current category
// session and the pagination bookkeeping around them.
//
// State is not safe for concurrent use. The TUI mutates it only from its
// Update loop; fetches run elsewhere and report back with the PageRequest
// they were started for.
package catalog

import (
	"sync/atomic"

	"github.com/plantview/plantview-cli/internal/errors"
	"github.com/plantview/plantview-cli/internal/models"
)

// AllCategory is the sentinel category that disables the family filter.
const AllCategory = "All"

// sessionSeq numbers category sessions process-wide, so a response can
// never be mistaken for one of another State's sessions.
var sessionSeq atomic.Uint64

// PageRequest describes one page load.
type PageRequest struct {
	Page     int
	Category string
	Append   bool

	// session identifies the category session the request belongs to
	session uint64
}

// Family returns the family query value, empty for AllCategory.
func (r PageRequest) Family() string {
	if r.Category == AllCategory {
		return ""
	}
	return r.Category
}

// State is the list view state.
type State struct {
	categories   []string
	selected     string
	plants       []models.PlantRecord
	page         int
	totalPages   int
	loading      bool
	fetchingMore bool
	err          error
	session      uint64
}

// NewState returns a state with the "All" category selected and nothing loaded.
func NewState() *State {
	return &State{
		categories: []string{AllCategory},
		selected:   AllCategory,
		plants:     []models.PlantRecord{},
		page:       1,
		totalPages: 1,
	}
}

// SelectCategory starts a new category session. The accumulated list,
// page counter and total pages are reset before the first page is
// requested. An empty category selects AllCategory.
func (s *State) SelectCategory(category string) PageRequest {
	if category == "" {
		category = AllCategory
	}

	s.session = sessionSeq.Add(1)
	s.selected = category
	s.plants = []models.PlantRecord{}
	s.page = 1
	s.totalPages = 1
	s.loading = false
	s.fetchingMore = false
	s.err = nil

	return PageRequest{Page: 1, Category: category, session: s.session}
}

// Begin marks req as in flight and clears any previous error.
// Requests for pages below 1 are ignored and Begin reports false.
func (s *State) Begin(req PageRequest) bool {
	if req.Page < 1 || !s.current(req) {
		return false
	}

	if req.Append {
		s.fetchingMore = true
	} else {
		s.loading = true
	}
	s.err = nil
	return true
}

// Apply stores a successful response for req. Responses that belong to an
// earlier category session are dropped and Apply reports false.
func (s *State) Apply(req PageRequest, resp *models.PageResponse) bool {
	if !s.current(req) {
		return false
	}

	records := resp.Records()
	if req.Append {
		s.plants = append(s.plants, records...)
	} else {
		s.plants = append([]models.PlantRecord{}, records...)
	}

	if total := resp.TotalPages(); total > 0 {
		s.totalPages = total
	}
	s.page = req.Page
	s.loading = false
	s.fetchingMore = false
	return true
}

// Fail records a failed load for req. Whatever the cause, the stored
// error is the generic fetch failure. Already loaded records are kept.
func (s *State) Fail(req PageRequest, err error) bool {
	if !s.current(req) {
		return false
	}

	s.err = errors.AsFetchFailure(err)
	s.loading = false
	s.fetchingMore = false
	return true
}

// NextPage returns the append request for the page after the current one.
// It reports false while a request is in flight or when the last known
// page has been loaded.
func (s *State) NextPage() (PageRequest, bool) {
	if s.InFlight() || s.page >= s.totalPages {
		return PageRequest{}, false
	}
	return PageRequest{
		Page:     s.page + 1,
		Category: s.selected,
		Append:   true,
		session:  s.session,
	}, true
}

// Visible returns the accumulated records filtered by the selected family.
func (s *State) Visible() []models.PlantRecord {
	if s.selected == AllCategory {
		return s.plants
	}

	filtered := make([]models.PlantRecord, 0, len(s.plants))
	for _, p := range s.plants {
		if p.Family == s.selected {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// SetCategories replaces the category list. AllCategory is always first.
func (s *State) SetCategories(categories []string) {
	out := []string{AllCategory}
	for _, c := range categories {
		if c != "" && c != AllCategory {
			out = append(out, c)
		}
	}
	s.categories = out
}

func (s *State) current(req PageRequest) bool {
	return req.session == s.session
}

func (s *State) Categories() []string         { return s.categories }
func (s *State) Selected() string             { return s.selected }
func (s *State) Plants() []models.PlantRecord { return s.plants }
func (s *State) Page() int                    { return s.page }
func (s *State) TotalPages() int              { return s.totalPages }
func (s *State) Loading() bool                { return s.loading }
func (s *State) FetchingMore() bool           { return s.fetchingMore }
func (s *State) Err() error                   { return s.err }

// InFlight reports whether any page load is running.
func (s *State) InFlight() bool {
	return s.loading || s.fetchingMore
}

// HasMore reports whether pages remain for the current category.
func (s *State) HasMore() bool {
	return s.page < s.totalPages
}
