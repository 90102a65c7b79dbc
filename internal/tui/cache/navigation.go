// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package cache

import (
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/plantview/plantview-cli/internal/models"
)

const (
	// DefaultNavigationTTL bounds how long a handed-over plant stays readable
	DefaultNavigationTTL = 30 * time.Minute

	navigationCapacity = 1000
	plantKeyPrefix     = "plant:"
)

// NavigationStore carries plant records from the list view to the detail
// view. It is in-memory only; a detail route opened without a prior
// SetPlant finds nothing.
type NavigationStore struct {
	cache *ttlcache.Cache[string, models.PlantRecord]
	ttl   time.Duration
	// Note: ttlcache is thread-safe, no additional mutex needed
}

// NewNavigationStore creates a store whose entries expire after ttl.
// A non-positive ttl uses DefaultNavigationTTL.
func NewNavigationStore(ttl time.Duration) *NavigationStore {
	if ttl <= 0 {
		ttl = DefaultNavigationTTL
	}

	cache := ttlcache.New[string, models.PlantRecord](
		ttlcache.WithCapacity[string, models.PlantRecord](navigationCapacity),
		ttlcache.WithTTL[string, models.PlantRecord](ttl),
		ttlcache.WithDisableTouchOnHit[string, models.PlantRecord](),
	)

	go cache.Start()

	return &NavigationStore{
		cache: cache,
		ttl:   ttl,
	}
}

// SetPlant stores the record under its id, replacing any earlier entry
func (s *NavigationStore) SetPlant(plant models.PlantRecord) {
	s.cache.Set(plantKeyPrefix+plant.GetIDString(), plant, s.ttl)
}

// GetPlant returns a copy of the stored record for id
func (s *NavigationStore) GetPlant(id string) (*models.PlantRecord, bool) {
	item := s.cache.Get(plantKeyPrefix + id)
	if item == nil {
		return nil, false
	}

	plant := item.Value()
	return &plant, true
}

// Delete removes the entry for id
func (s *NavigationStore) Delete(id string) {
	s.cache.Delete(plantKeyPrefix + id)
}

// Len returns the number of live entries
func (s *NavigationStore) Len() int {
	return s.cache.Len()
}

// Stop halts the expiry goroutine
func (s *NavigationStore) Stop() {
	s.cache.Stop()
}
