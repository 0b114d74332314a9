package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/akronstore/akron_api/internal/models"
	"github.com/akronstore/akron_api/internal/repository"
	"github.com/akronstore/akron_api/internal/utils"
)

// SizeOptions is the size set offered by the admin edit form.
var SizeOptions = []string{"P", "M", "G", "GG", "XG"}

// ProductDraft is the in-progress edit form for a product. Unlike a saved
// Product it may hold blank image and color slots; those are stripped when
// the draft is saved.
type ProductDraft struct {
	Name          string          `json:"name"`
	Price         float64         `json:"price"`
	OriginalPrice *float64        `json:"originalPrice,omitempty"`
	Images        []string        `json:"images"`
	Category      models.Category `json:"category"`
	Sizes         []string        `json:"sizes"`
	Colors        []string        `json:"colors"`
	Description   string          `json:"description"`
	Featured      bool            `json:"featured"`
}

// NewProductDraft returns the blank edit-form template: one empty image
// slot, one empty color slot, category preset to "new".
func NewProductDraft() ProductDraft {
	return ProductDraft{
		Images:   []string{""},
		Category: models.CategoryNew,
		Sizes:    []string{},
		Colors:   []string{""},
	}
}

// DraftFromProduct loads an existing product into the edit form. At least
// one image slot is kept so the form always has an editable field. The
// persisted product is untouched until the draft is saved.
func DraftFromProduct(p models.Product) ProductDraft {
	d := ProductDraft{
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Images:        append([]string(nil), p.Images...),
		Category:      p.Category,
		Sizes:         append([]string(nil), p.Sizes...),
		Colors:        append([]string(nil), p.Colors...),
		Description:   p.Description,
		Featured:      p.Featured,
	}
	if len(d.Images) == 0 {
		d.Images = []string{""}
	}
	return d
}

// AddImageSlot appends a blank image slot to the draft.
func (d *ProductDraft) AddImageSlot() {
	d.Images = append(d.Images, "")
}

// RemoveImageSlot removes the image slot at the given position, shifting
// later entries left. Out-of-range positions are ignored.
func (d *ProductDraft) RemoveImageSlot(i int) {
	if i < 0 || i >= len(d.Images) {
		return
	}
	d.Images = append(d.Images[:i], d.Images[i+1:]...)
}

// AddColorSlot appends a blank color slot to the draft.
func (d *ProductDraft) AddColorSlot() {
	d.Colors = append(d.Colors, "")
}

// RemoveColorSlot removes the color slot at the given position.
func (d *ProductDraft) RemoveColorSlot(i int) {
	if i < 0 || i >= len(d.Colors) {
		return
	}
	d.Colors = append(d.Colors[:i], d.Colors[i+1:]...)
}

// ToggleSize adds the size token if absent and removes it if present.
func (d *ProductDraft) ToggleSize(size string) {
	for i, s := range d.Sizes {
		if s == size {
			d.Sizes = append(d.Sizes[:i], d.Sizes[i+1:]...)
			return
		}
	}
	d.Sizes = append(d.Sizes, size)
}

// ProductService handles admin CRUD over the product collection. Every
// accepted mutation rewrites the whole collection synchronously; a rejected
// one leaves the store untouched.
type ProductService struct {
	repo *repository.CatalogRepository
}

// NewProductService constructs a ProductService.
func NewProductService(repo *repository.CatalogRepository) *ProductService {
	return &ProductService{repo: repo}
}

// ListProducts returns the persisted collection as the admin panel sees it
// (no seed fallback).
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.LoadSavedProducts(ctx)
}

// CreateProduct validates the draft and appends a new product with a
// generated timestamp-derived id.
func (s *ProductService) CreateProduct(ctx context.Context, draft ProductDraft) (*models.Product, error) {
	products, err := s.repo.LoadSavedProducts(ctx)
	if err != nil {
		return nil, err
	}

	product, err := buildProduct(newProductID(products), draft)
	if err != nil {
		return nil, err
	}
	products = append(products, *product)

	if err := s.repo.SaveProducts(ctx, products); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct validates the draft and replaces the product with the
// matching id, preserving that id. All other products are untouched.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, draft ProductDraft) (*models.Product, error) {
	product, err := buildProduct(id, draft)
	if err != nil {
		return nil, err
	}

	products, err := s.repo.LoadSavedProducts(ctx)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i := range products {
		if products[i].ID == id {
			products[i] = *product
			replaced = true
			break
		}
	}
	if !replaced {
		return nil, utils.ErrProductNotFound
	}

	if err := s.repo.SaveProducts(ctx, products); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes the product with the matching id. The caller must
// have passed the interactive confirmation step; deletion is irreversible.
func (s *ProductService) DeleteProduct(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return utils.ErrConfirmationRequired
	}

	products, err := s.repo.LoadSavedProducts(ctx)
	if err != nil {
		return err
	}

	remaining := make([]models.Product, 0, len(products))
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, p)
	}
	if !found {
		return utils.ErrProductNotFound
	}

	return s.repo.SaveProducts(ctx, remaining)
}

// BeginEdit loads an existing product into a draft for editing.
func (s *ProductService) BeginEdit(ctx context.Context, id string) (ProductDraft, error) {
	products, err := s.repo.LoadSavedProducts(ctx)
	if err != nil {
		return ProductDraft{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return DraftFromProduct(p), nil
		}
	}
	return ProductDraft{}, utils.ErrProductNotFound
}

// CatalogStats summarizes the collection for the admin dashboard cards.
type CatalogStats struct {
	Total    int `json:"total"`
	Featured int `json:"featured"`
	New      int `json:"new"`
	Limited  int `json:"limited"`
	Promo    int `json:"promo"`
}

// Stats counts products by featured flag and category.
func (s *ProductService) Stats(ctx context.Context) (CatalogStats, error) {
	products, err := s.repo.LoadSavedProducts(ctx)
	if err != nil {
		return CatalogStats{}, err
	}

	stats := CatalogStats{Total: len(products)}
	for _, p := range products {
		if p.Featured {
			stats.Featured++
		}
		switch p.Category {
		case models.CategoryNew:
			stats.New++
		case models.CategoryLimited:
			stats.Limited++
		case models.CategoryPromo:
			stats.Promo++
		}
	}
	return stats, nil
}

// buildProduct validates a draft and materializes it into a Product with the
// given id. Blank image and color slots are stripped here, at save time; the
// draft itself is allowed to carry them.
func buildProduct(id string, draft ProductDraft) (*models.Product, error) {
	if strings.TrimSpace(draft.Name) == "" || draft.Price == 0 {
		return nil, utils.ErrNamePriceRequired
	}
	if !draft.Category.Valid() {
		return nil, utils.ErrInvalidCategory
	}

	return &models.Product{
		ID:            id,
		Name:          draft.Name,
		Price:         draft.Price,
		OriginalPrice: draft.OriginalPrice,
		Images:        stripBlank(draft.Images),
		Category:      draft.Category,
		Sizes:         append([]string{}, draft.Sizes...),
		Colors:        stripBlank(draft.Colors),
		Description:   draft.Description,
		Featured:      draft.Featured,
	}, nil
}

// stripBlank filters out blank entries, preserving order.
func stripBlank(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e) != "" {
			out = append(out, e)
		}
	}
	return out
}

// newProductID generates a timestamp-derived id, stable across later edits.
// Creates landing on the same millisecond bump the timestamp until the id is
// unique within the collection.
func newProductID(products []models.Product) string {
	ts := time.Now().UnixMilli()
	for {
		id := strconv.FormatInt(ts, 10)
		taken := false
		for _, p := range products {
			if p.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
		ts++
	}
}
