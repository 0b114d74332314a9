package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akronstore/akron_api/internal/models"
	"github.com/akronstore/akron_api/internal/service"
	"github.com/akronstore/akron_api/internal/utils"
)

// CheckoutHandler drives the WhatsApp checkout and contact flows. Composing
// a message and handing back the deep link is the whole checkout: no orders,
// no payment, no delivery confirmation.
type CheckoutHandler struct {
	catalogService *service.CatalogService
	composer       *service.WhatsAppComposer
}

// NewCheckoutHandler constructs a CheckoutHandler.
func NewCheckoutHandler(catalogService *service.CatalogService, composer *service.WhatsAppComposer) *CheckoutHandler {
	return &CheckoutHandler{catalogService: catalogService, composer: composer}
}

// CheckoutRequest is the buy request. Color and size are optional; they are
// required only when the product offers more than one of either.
type CheckoutRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

// Checkout handles POST /v1/checkout. Products with at most one color and
// one size bypass selection and go straight to the composed link; otherwise
// the response surfaces the awaiting-selection state with seeded defaults
// until both dimensions are explicitly chosen.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product, err := h.catalogService.Product(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to load product")
		return
	}

	flow := service.NewSelectionFlow()
	if !flow.Open(*product) {
		h.composed(c, *product, flow.Color(), flow.Size())
		return
	}

	if req.Color != "" {
		if err := flow.SelectColor(req.Color); err != nil {
			utils.Error(c, 400, "INVALID_SELECTION", "Product does not offer this color")
			return
		}
	}
	if req.Size != "" {
		if err := flow.SelectSize(req.Size); err != nil {
			utils.Error(c, 400, "INVALID_SELECTION", "Product does not offer this size")
			return
		}
	}

	if !flow.CanFinalize() {
		utils.Success(c, 200, "Selecione Cor e Tamanho", gin.H{
			"state":         flow.State(),
			"selectedColor": flow.Color(),
			"selectedSize":  flow.Size(),
			"colors":        product.Colors,
			"sizes":         product.Sizes,
		})
		return
	}

	finalized, color, size, err := flow.Finalize()
	if err != nil {
		utils.Error(c, 400, "SELECTION_INCOMPLETE", "Choose a color and a size first")
		return
	}
	h.composed(c, finalized, color, size)
}

// composed writes the final state: the message text and the deep link to
// open in a new browsing context.
func (h *CheckoutHandler) composed(c *gin.Context, product models.Product, color, size string) {
	message := h.composer.ProductMessage(product, color, size, time.Now())
	utils.Success(c, 200, "Message composed", gin.H{
		"state":   service.SelectionClosed,
		"message": message,
		"url":     h.composer.Link(message),
	})
}

// Inquiry handles POST /v1/inquiry — the general "talk to us" button with no
// product attached.
func (h *CheckoutHandler) Inquiry(c *gin.Context) {
	message := h.composer.GeneralMessage(time.Now())
	utils.Success(c, 200, "Message composed", gin.H{
		"message": message,
		"url":     h.composer.Link(message),
	})
}

// ContactRequest is the contact-form triple.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// Contact handles POST /v1/contact. The caller resets its form after this
// returns, regardless of whether the link is ever opened.
func (h *CheckoutHandler) Contact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	message := h.composer.ContactMessage(req.Name, req.Email, req.Message, time.Now())
	utils.Success(c, 200, "Message composed", gin.H{
		"message": message,
		"url":     h.composer.Link(message),
	})
}

// NewsletterRequest is the newsletter sign-up payload.
type NewsletterRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Newsletter handles POST /v1/newsletter.
func (h *CheckoutHandler) Newsletter(c *gin.Context) {
	var req NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	message := h.composer.NewsletterMessage(req.Email, time.Now())
	utils.Success(c, 200, "Message composed", gin.H{
		"message": message,
		"url":     h.composer.Link(message),
	})
}
