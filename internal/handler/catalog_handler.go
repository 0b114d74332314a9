package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akronstore/akron_api/internal/service"
	"github.com/akronstore/akron_api/internal/utils"
)

// CatalogHandler serves the public storefront reads.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GetCatalog handles GET /v1/catalog?category=&search=
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	category := c.DefaultQuery("category", service.CategoryAll)
	search := c.Query("search")

	products, err := h.catalogService.Products(c.Request.Context(), category, search)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to load catalog")
		return
	}

	// An empty result is a valid terminal state, not an error.
	message := "Catalog retrieved"
	if len(products) == 0 {
		message = "Nenhum produto encontrado"
	}
	utils.Success(c, 200, message, products)
}

// GetFeatured handles GET /v1/catalog/featured
func (h *CatalogHandler) GetFeatured(c *gin.Context) {
	products, err := h.catalogService.Featured(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to load featured products")
		return
	}
	utils.Success(c, 200, "Featured products retrieved", products)
}

// GetProduct handles GET /v1/catalog/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to load product")
		return
	}
	utils.Success(c, 200, "Product retrieved", product)
}

// GetHero handles GET /v1/hero
func (h *CatalogHandler) GetHero(c *gin.Context) {
	hero, err := h.catalogService.Hero(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to load hero content")
		return
	}
	utils.Success(c, 200, "Hero content retrieved", hero)
}

// GetStatus handles GET /v1/status — the business-hours indicator shown in
// the header, footer and product dialog.
func (h *CatalogHandler) GetStatus(c *gin.Context) {
	now := time.Now()
	utils.Success(c, 200, "Status retrieved", gin.H{
		"open":    service.IsBusinessHours(now),
		"message": service.BusinessHoursStatus(now),
	})
}
