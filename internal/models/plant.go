// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

import "encoding/json"

// PlantLinks holds the API links attached to a plant record
type PlantLinks struct {
	Self  string `json:"self,omitempty"`
	Plant string `json:"plant,omitempty"`
	Genus string `json:"genus,omitempty"`
}

// IsEmpty reports whether none of the links are set
func (l *PlantLinks) IsEmpty() bool {
	return l == nil || (l.Self == "" && l.Plant == "" && l.Genus == "")
}

// PlantRecord is a single plant as returned by the catalog API.
// Records are kept exactly as received; nothing is validated locally.
type PlantRecord struct {
	ID               FlexString  `json:"id"`
	CommonName       string      `json:"common_name"`
	ScientificName   string      `json:"scientific_name"`
	Family           string      `json:"family"`
	FamilyCommonName string      `json:"family_common_name,omitempty"`
	Genus            string      `json:"genus"`
	GenusID          FlexString  `json:"genus_id,omitempty"`
	Rank             string      `json:"rank,omitempty"`
	Status           string      `json:"status,omitempty"`
	Author           string      `json:"author,omitempty"`
	Year             FlexString  `json:"year,omitempty"`
	Bibliography     string      `json:"bibliography,omitempty"`
	Synonyms         SynonymList `json:"synonyms,omitempty"`
	Links            *PlantLinks `json:"links,omitempty"`
	ImageURL         string      `json:"image_url,omitempty"`

	raw json.RawMessage
}

// UnmarshalJSON decodes the record and keeps the original bytes for Raw
func (p *PlantRecord) UnmarshalJSON(data []byte) error {
	type plantRecord PlantRecord
	var decoded plantRecord
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*p = PlantRecord(decoded)
	p.raw = append(json.RawMessage(nil), data...)
	return nil
}

// Raw returns the record as the API sent it, or nil for records built in code
func (p PlantRecord) Raw() json.RawMessage {
	return p.raw
}

// GetIDString returns the record id in route form
func (p PlantRecord) GetIDString() string {
	return p.ID.String()
}

// DisplayName returns the common name, falling back to the scientific name
func (p PlantRecord) DisplayName() string {
	if p.CommonName != "" {
		return p.CommonName
	}
	if p.ScientificName != "" {
		return p.ScientificName
	}
	return "Unknown"
}

// PageMeta is the pagination block of a page response
type PageMeta struct {
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page,omitempty"`
	Total       int `json:"total,omitempty"`
}

// PageResponse is one page of plant records
type PageResponse struct {
	Data []PlantRecord `json:"data"`
	Meta *PageMeta     `json:"meta,omitempty"`
}

// TotalPages returns the page count reported by the server, or 0 when absent
func (r *PageResponse) TotalPages() int {
	if r == nil || r.Meta == nil {
		return 0
	}
	return r.Meta.TotalPages
}

// Records returns the page data, never nil
func (r *PageResponse) Records() []PlantRecord {
	if r == nil || r.Data == nil {
		return []PlantRecord{}
	}
	return r.Data
}
