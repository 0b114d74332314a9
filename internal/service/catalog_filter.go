package service

import (
	"strings"

	"github.com/akronstore/akron_api/internal/models"
)

// CategoryAll is the selector value that disables category filtering.
const CategoryAll = "all"

// FilterProducts returns the visible subset of the catalog for the given
// category selector ("all" or a category value) and free-text search term.
// Both filters are conjunctive; an empty result is a valid outcome.
func FilterProducts(products []models.Product, category, search string) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	term := strings.ToLower(search)

	for _, p := range products {
		if category != CategoryAll && category != "" && string(p.Category) != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// FeaturedProducts returns the featured subset. It is always unfiltered and
// independent of the catalog filter.
func FeaturedProducts(products []models.Product) []models.Product {
	featured := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}
