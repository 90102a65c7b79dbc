package catalog

import "github.com/plantview/plantview-cli/internal/models"

// DeriveCategories returns the distinct non-empty families of plants in
// the order they first appear.
func DeriveCategories(plants []models.PlantRecord) []string {
	seen := make(map[string]struct{}, len(plants))
	categories := make([]string, 0)
	for _, p := range plants {
		if p.Family == "" {
			continue
		}
		if _, ok := seen[p.Family]; ok {
			continue
		}
		seen[p.Family] = struct{}{}
		categories = append(categories, p.Family)
	}
	return categories
}
