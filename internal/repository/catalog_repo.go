package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/akronstore/akron_api/internal/models"
	"github.com/akronstore/akron_api/internal/storage"
)

// CatalogRepository owns the storage convention shared by both surfaces:
// the product collection and the hero singleton are serialized as JSON blobs
// under fixed keys, plus a boolean-ish admin auth flag. There is no schema
// versioning; an unreadable value is treated as absent.
type CatalogRepository struct {
	store storage.Store
}

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(store storage.Store) *CatalogRepository {
	return &CatalogRepository{store: store}
}

// LoadProducts returns the persisted catalog. When no catalog has been saved
// yet, or the stored blob cannot be decoded, it falls back to the seed
// catalog; decode failures are logged but never surfaced.
func (r *CatalogRepository) LoadProducts(ctx context.Context) ([]models.Product, error) {
	raw, err := r.store.Get(ctx, storage.KeyProducts)
	if errors.Is(err, storage.ErrNotFound) {
		return models.SeedProducts(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		log.Error().Err(err).Str("key", storage.KeyProducts).Msg("Stored product collection is unreadable, falling back to seed catalog")
		return models.SeedProducts(), nil
	}
	return products, nil
}

// LoadSavedProducts returns only what has actually been persisted, with no
// seed fallback: absent or unreadable data yields an empty collection. The
// admin surface uses this so that CRUD after a wipe starts from scratch
// instead of resurrecting the seed catalog.
func (r *CatalogRepository) LoadSavedProducts(ctx context.Context) ([]models.Product, error) {
	raw, err := r.store.Get(ctx, storage.KeyProducts)
	if errors.Is(err, storage.ErrNotFound) {
		return []models.Product{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		log.Error().Err(err).Str("key", storage.KeyProducts).Msg("Stored product collection is unreadable, treating as empty")
		return []models.Product{}, nil
	}
	return products, nil
}

// SaveProducts writes the full catalog back to the store.
func (r *CatalogRepository) SaveProducts(ctx context.Context, products []models.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("marshal products: %w", err)
	}
	if err := r.store.Set(ctx, storage.KeyProducts, string(raw)); err != nil {
		return fmt.Errorf("save products: %w", err)
	}
	return nil
}

// LoadHero returns the persisted hero content, or the default hero when none
// has been saved or the stored record cannot be decoded.
func (r *CatalogRepository) LoadHero(ctx context.Context) (models.HeroContent, error) {
	raw, err := r.store.Get(ctx, storage.KeyHero)
	if errors.Is(err, storage.ErrNotFound) {
		return models.DefaultHero(), nil
	}
	if err != nil {
		return models.HeroContent{}, fmt.Errorf("load hero: %w", err)
	}

	var hero models.HeroContent
	if err := json.Unmarshal([]byte(raw), &hero); err != nil {
		log.Error().Err(err).Str("key", storage.KeyHero).Msg("Stored hero content is unreadable, falling back to defaults")
		return models.DefaultHero(), nil
	}
	return hero, nil
}

// SaveHero writes the hero singleton back to the store.
func (r *CatalogRepository) SaveHero(ctx context.Context, hero models.HeroContent) error {
	raw, err := json.Marshal(hero)
	if err != nil {
		return fmt.Errorf("marshal hero: %w", err)
	}
	if err := r.store.Set(ctx, storage.KeyHero, string(raw)); err != nil {
		return fmt.Errorf("save hero: %w", err)
	}
	return nil
}

// SetAdminAuth persists or clears the admin session flag. The flag carries
// no expiry; it lives until logout or wipe.
func (r *CatalogRepository) SetAdminAuth(ctx context.Context, authenticated bool) error {
	if !authenticated {
		return r.store.Delete(ctx, storage.KeyAdminAuth)
	}
	return r.store.Set(ctx, storage.KeyAdminAuth, "true")
}

// AdminAuth reports whether the admin session flag is set.
func (r *CatalogRepository) AdminAuth(ctx context.Context) (bool, error) {
	raw, err := r.store.Get(ctx, storage.KeyAdminAuth)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return raw == "true", nil
}

// ClearAll removes both data keys and the auth flag. Subsequent loads see
// the seed catalog and default hero again.
func (r *CatalogRepository) ClearAll(ctx context.Context) error {
	if err := r.store.Delete(ctx, storage.KeyProducts, storage.KeyHero, storage.KeyAdminAuth); err != nil {
		return fmt.Errorf("clear all data: %w", err)
	}
	return nil
}
