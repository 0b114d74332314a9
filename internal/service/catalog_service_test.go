package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akronstore/akron_api/internal/models"
	"github.com/akronstore/akron_api/internal/repository"
	"github.com/akronstore/akron_api/internal/storage"
	"github.com/akronstore/akron_api/internal/utils"
)

func TestCatalogService(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(repository.NewCatalogRepository(storage.NewMemoryStore()))

	t.Run("serves the seed catalog before any save", func(t *testing.T) {
		products, err := svc.Products(ctx, CategoryAll, "")
		require.NoError(t, err)
		assert.Len(t, products, 6)
	})

	t.Run("applies category and search filters", func(t *testing.T) {
		products, err := svc.Products(ctx, "promo", "")
		require.NoError(t, err)
		for _, p := range products {
			assert.Equal(t, models.CategoryPromo, p.Category)
		}

		products, err = svc.Products(ctx, CategoryAll, "urbano")
		require.NoError(t, err)
		assert.NotEmpty(t, products)
	})

	t.Run("featured subset", func(t *testing.T) {
		products, err := svc.Featured(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, products)
		for _, p := range products {
			assert.True(t, p.Featured)
		}
	})

	t.Run("lookup by id", func(t *testing.T) {
		p, err := svc.Product(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "Oversized Essential Black", p.Name)

		_, err = svc.Product(ctx, "999")
		assert.ErrorIs(t, err, utils.ErrProductNotFound)
	})

	t.Run("hero defaults and updates", func(t *testing.T) {
		hero, err := svc.Hero(ctx)
		require.NoError(t, err)
		assert.Equal(t, "AKRON", hero.Title)

		hero.Subtitle = "Drop de verão"
		require.NoError(t, svc.SaveHero(ctx, hero))

		got, err := svc.Hero(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Drop de verão", got.Subtitle)
	})
}
