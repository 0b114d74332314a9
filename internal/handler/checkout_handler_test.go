package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akronstore/akron_api/internal/repository"
	"github.com/akronstore/akron_api/internal/service"
	"github.com/akronstore/akron_api/internal/storage"
)

func checkoutRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewCatalogRepository(storage.NewMemoryStore())
	catalogSvc := service.NewCatalogService(repo)
	composer := service.NewWhatsAppComposer("5581991103194")
	h := NewCheckoutHandler(catalogSvc, composer)

	router := gin.New()
	router.POST("/v1/checkout", h.Checkout)
	router.POST("/v1/inquiry", h.Inquiry)
	router.POST("/v1/contact", h.Contact)
	router.POST("/v1/newsletter", h.Newsletter)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func TestCheckoutHandler_Checkout(t *testing.T) {
	// Seed product 1 has multiple colors and sizes, so it exercises the
	// awaiting-selection path.
	router := checkoutRouter(t)

	t.Run("unknown product", func(t *testing.T) {
		w, body := doJSON(t, router, http.MethodPost, "/v1/checkout", `{"productId":"999"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, false, body["success"])
	})

	t.Run("missing productId", func(t *testing.T) {
		w, _ := doJSON(t, router, http.MethodPost, "/v1/checkout", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("multi-option product awaits selection", func(t *testing.T) {
		w, body := doJSON(t, router, http.MethodPost, "/v1/checkout", `{"productId":"1"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Selecione Cor e Tamanho", body["message"])

		data := body["data"].(map[string]interface{})
		assert.Equal(t, "awaiting-selection", data["state"])
		assert.NotEmpty(t, data["colors"])
		assert.NotEmpty(t, data["sizes"])
	})

	t.Run("invalid color is rejected", func(t *testing.T) {
		w, body := doJSON(t, router, http.MethodPost, "/v1/checkout", `{"productId":"1","color":"Roxo","size":"M"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		errInfo := body["error"].(map[string]interface{})
		assert.Equal(t, "INVALID_SELECTION", errInfo["code"])
	})

	t.Run("full selection composes the link", func(t *testing.T) {
		w, body := doJSON(t, router, http.MethodPost, "/v1/checkout", `{"productId":"1","color":"Preto","size":"M"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		data := body["data"].(map[string]interface{})
		assert.Equal(t, "closed", data["state"])
		assert.Contains(t, data["message"], "Oversized Essential Black")
		assert.Contains(t, data["message"], "Cor: Preto")
		assert.Contains(t, data["message"], "Tamanho: M")
		assert.True(t, strings.HasPrefix(data["url"].(string), "https://wa.me/5581991103194?text="))
	})
}

func TestCheckoutHandler_ContactForms(t *testing.T) {
	router := checkoutRouter(t)

	t.Run("inquiry", func(t *testing.T) {
		w, body := doJSON(t, router, http.MethodPost, "/v1/inquiry", ``)
		assert.Equal(t, http.StatusOK, w.Code)
		data := body["data"].(map[string]interface{})
		assert.Contains(t, data["message"], "produtos AKRON")
	})

	t.Run("contact requires a valid email", func(t *testing.T) {
		w, _ := doJSON(t, router, http.MethodPost, "/v1/contact", `{"name":"Ana","email":"nope","message":"Oi"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("contact composes the triple", func(t *testing.T) {
		w, body := doJSON(t, router, http.MethodPost, "/v1/contact", `{"name":"Ana","email":"ana@example.com","message":"Tem GG?"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		data := body["data"].(map[string]interface{})
		assert.Contains(t, data["message"], "Nome: Ana")
	})

	t.Run("newsletter", func(t *testing.T) {
		w, body := doJSON(t, router, http.MethodPost, "/v1/newsletter", `{"email":"ana@example.com"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		data := body["data"].(map[string]interface{})
		assert.Contains(t, data["message"], "Novo cadastro")
	})
}
