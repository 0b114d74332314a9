package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/akronstore/akron_api/internal/service"
	"github.com/akronstore/akron_api/internal/utils"
)

// ProductAdminHandler handles the admin product CRUD endpoints.
type ProductAdminHandler struct {
	productService *service.ProductService
}

// NewProductAdminHandler constructs a ProductAdminHandler.
func NewProductAdminHandler(productService *service.ProductService) *ProductAdminHandler {
	return &ProductAdminHandler{productService: productService}
}

// ListProducts handles GET /v1/admin/products
func (h *ProductAdminHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve products")
		return
	}
	utils.Success(c, 200, "Products retrieved", products)
}

// CreateProduct handles POST /v1/admin/products
func (h *ProductAdminHandler) CreateProduct(c *gin.Context) {
	var draft service.ProductDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), draft)
	if err != nil {
		writeSaveError(c, err)
		return
	}
	utils.Success(c, 201, "Product created successfully", product)
}

// UpdateProduct handles PUT /v1/admin/products/:id
func (h *ProductAdminHandler) UpdateProduct(c *gin.Context) {
	var draft service.ProductDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("id"), draft)
	if err != nil {
		writeSaveError(c, err)
		return
	}
	utils.Success(c, 200, "Product updated successfully", product)
}

// DeleteProduct handles DELETE /v1/admin/products/:id?confirm=true.
// Deleting is irreversible, so the confirmation is mandatory.
func (h *ProductAdminHandler) DeleteProduct(c *gin.Context) {
	confirmed := c.Query("confirm") == "true"

	err := h.productService.DeleteProduct(c.Request.Context(), c.Param("id"), confirmed)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrConfirmationRequired):
			utils.Error(c, 409, "CONFIRMATION_REQUIRED", "Pass confirm=true to delete this product")
		case errors.Is(err, utils.ErrProductNotFound):
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete product")
		}
		return
	}
	utils.Success(c, 200, "Product deleted successfully", nil)
}

// EditProduct handles GET /v1/admin/products/:id/edit — loads a product into
// an edit-form draft without mutating persisted state.
func (h *ProductAdminHandler) EditProduct(c *gin.Context) {
	draft, err := h.productService.BeginEdit(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to load product")
		return
	}
	utils.Success(c, 200, "Draft loaded", draft)
}

// GetStats handles GET /v1/admin/stats — the dashboard cards.
func (h *ProductAdminHandler) GetStats(c *gin.Context) {
	stats, err := h.productService.Stats(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to compute stats")
		return
	}
	utils.Success(c, 200, "Stats retrieved", stats)
}

// writeSaveError maps a rejected save to its HTTP response. Validation
// failures leave the collection untouched.
func writeSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrNamePriceRequired):
		utils.Error(c, 400, "NAME_PRICE_REQUIRED", "Nome e preço são obrigatórios!")
	case errors.Is(err, utils.ErrInvalidCategory):
		utils.Error(c, 400, "INVALID_CATEGORY", "Category must be new, limited or promo")
	case errors.Is(err, utils.ErrProductNotFound):
		utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
	default:
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to save product")
	}
}
