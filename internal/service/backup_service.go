package service

import (
	"context"
	"time"

	"github.com/akronstore/akron_api/internal/models"
	"github.com/akronstore/akron_api/internal/repository"
	"github.com/akronstore/akron_api/internal/utils"
)

// ExportFileName is the download name of the backup document.
const ExportFileName = "akron-backup.json"

// Backup is the export document shape. There is no import counterpart.
type Backup struct {
	Products    []models.Product   `json:"products"`
	HeroContent models.HeroContent `json:"heroContent"`
	ExportDate  string             `json:"exportDate"`
}

// BackupService handles the admin bulk export and bulk wipe actions.
type BackupService struct {
	repo *repository.CatalogRepository
}

// NewBackupService constructs a BackupService.
func NewBackupService(repo *repository.CatalogRepository) *BackupService {
	return &BackupService{repo: repo}
}

// Export serializes the full state into a backup document stamped with the
// export time.
func (s *BackupService) Export(ctx context.Context, now time.Time) (*Backup, error) {
	products, err := s.repo.LoadSavedProducts(ctx)
	if err != nil {
		return nil, err
	}
	hero, err := s.repo.LoadHero(ctx)
	if err != nil {
		return nil, err
	}

	return &Backup{
		Products:    products,
		HeroContent: hero,
		ExportDate:  now.UTC().Format(time.RFC3339),
	}, nil
}

// Wipe removes all persisted data after an explicit confirmation. There is
// no undo: the next storefront load sees the seed catalog and default hero.
func (s *BackupService) Wipe(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return utils.ErrConfirmationRequired
	}
	return s.repo.ClearAll(ctx)
}
