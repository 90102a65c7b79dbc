package api

import (
	"net/url"
	"strconv"
)

// API endpoints constants
const (
	// EndpointCrops is the paginated plant listing
	EndpointCrops = "/api/crops"

	// QueryPage is the 1-based page number parameter
	QueryPage = "page"

	// QueryFamily is the optional taxonomic family filter
	QueryFamily = "family"
)

// CropsListURL builds the listing path for a page and an optional family.
// An empty family means no filter.
func CropsListURL(page int, family string) string {
	q := url.Values{}
	q.Set(QueryPage, strconv.Itoa(page))
	if family != "" {
		q.Set(QueryFamily, family)
	}
	return EndpointCrops + "?" + q.Encode()
}
