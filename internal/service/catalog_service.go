package service

import (
	"context"

	"github.com/akronstore/akron_api/internal/models"
	"github.com/akronstore/akron_api/internal/repository"
	"github.com/akronstore/akron_api/internal/utils"
)

// CatalogService serves the public storefront reads. It always goes through
// the repository so a fresh request sees whatever the admin last persisted;
// absent or unreadable data falls back to the seed catalog and default hero.
type CatalogService struct {
	repo *repository.CatalogRepository
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// Products returns the catalog filtered by category selector and search term.
func (s *CatalogService) Products(ctx context.Context, category, search string) ([]models.Product, error) {
	products, err := s.repo.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}
	return FilterProducts(products, category, search), nil
}

// Featured returns the featured subset, independent of any filter.
func (s *CatalogService) Featured(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}
	return FeaturedProducts(products), nil
}

// Product returns a single catalog entry by id.
func (s *CatalogService) Product(ctx context.Context, id string) (*models.Product, error) {
	products, err := s.repo.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, utils.ErrProductNotFound
}

// Hero returns the hero banner content.
func (s *CatalogService) Hero(ctx context.Context) (models.HeroContent, error) {
	return s.repo.LoadHero(ctx)
}

// SaveHero persists the hero singleton (admin surface).
func (s *CatalogService) SaveHero(ctx context.Context, hero models.HeroContent) error {
	return s.repo.SaveHero(ctx, hero)
}
