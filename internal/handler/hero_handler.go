package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/akronstore/akron_api/internal/models"
	"github.com/akronstore/akron_api/internal/service"
	"github.com/akronstore/akron_api/internal/utils"
)

// HeroHandler handles the admin hero-section editor.
type HeroHandler struct {
	catalogService *service.CatalogService
}

// NewHeroHandler constructs a HeroHandler.
func NewHeroHandler(catalogService *service.CatalogService) *HeroHandler {
	return &HeroHandler{catalogService: catalogService}
}

// UpdateHero handles PUT /v1/admin/hero
func (h *HeroHandler) UpdateHero(c *gin.Context) {
	var hero models.HeroContent
	if err := c.ShouldBindJSON(&hero); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.catalogService.SaveHero(c.Request.Context(), hero); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to save hero content")
		return
	}
	utils.Success(c, 200, "Hero content saved", hero)
}
