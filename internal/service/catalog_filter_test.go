package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akronstore/akron_api/internal/models"
)

func filterFixture() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Oversized Preta Premium", Category: models.CategoryNew, Description: "Camiseta oversized preta", Featured: true},
		{ID: "2", Name: "Oversized Branca Classic", Category: models.CategoryLimited, Description: "Edição limitada"},
		{ID: "3", Name: "Oversized Cinza Urban", Category: models.CategoryPromo, Description: "Estilo urbano", Featured: true},
	}
}

func TestFilterProducts(t *testing.T) {
	products := filterFixture()

	t.Run("all selector returns everything", func(t *testing.T) {
		assert.Len(t, FilterProducts(products, CategoryAll, ""), 3)
	})

	t.Run("filters by category", func(t *testing.T) {
		got := FilterProducts(products, "limited", "")
		require.Len(t, got, 1)
		assert.Equal(t, "2", got[0].ID)
	})

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		got := FilterProducts(products, CategoryAll, "BRANCA")
		require.Len(t, got, 1)
		assert.Equal(t, "2", got[0].ID)
	})

	t.Run("search matches description", func(t *testing.T) {
		got := FilterProducts(products, CategoryAll, "urbano")
		require.Len(t, got, 1)
		assert.Equal(t, "3", got[0].ID)
	})

	t.Run("category and search are conjunctive", func(t *testing.T) {
		assert.Empty(t, FilterProducts(products, "promo", "branca"))

		got := FilterProducts(products, "promo", "oversized")
		require.Len(t, got, 1)
		assert.Equal(t, "3", got[0].ID)
	})

	t.Run("whitespace search is a real term", func(t *testing.T) {
		// A single space matches every multi-word name; it is not trimmed
		// away to mean "no search".
		assert.Len(t, FilterProducts(products, CategoryAll, " "), 3)
		assert.Empty(t, FilterProducts(products, CategoryAll, "  "))
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		got := FilterProducts(products, CategoryAll, "moletom")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestFeaturedProducts(t *testing.T) {
	got := FeaturedProducts(filterFixture())
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}
