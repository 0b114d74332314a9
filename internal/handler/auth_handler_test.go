package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akronstore/akron_api/internal/middleware"
	"github.com/akronstore/akron_api/internal/repository"
	"github.com/akronstore/akron_api/internal/service"
	"github.com/akronstore/akron_api/internal/storage"
)

func authRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewCatalogRepository(storage.NewMemoryStore())
	svc, err := service.NewAdminAuthService(repo, "akron2024", "test-secret")
	require.NoError(t, err)
	h := NewAuthHandler(svc, middleware.NewLoginRateLimiter())

	router := gin.New()
	router.POST("/v1/admin/auth/login", h.Login)
	router.POST("/v1/admin/auth/logout", h.Logout)
	return router
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("wrong password", func(t *testing.T) {
		router := authRouter(t)
		w, body := doJSON(t, router, http.MethodPost, "/v1/admin/auth/login", `{"password":"errada"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Senha incorreta!", body["message"])
	})

	t.Run("correct password issues a token", func(t *testing.T) {
		router := authRouter(t)
		w, body := doJSON(t, router, http.MethodPost, "/v1/admin/auth/login", `{"password":"akron2024"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		data := body["data"].(map[string]interface{})
		assert.NotEmpty(t, data["token"])
	})

	t.Run("repeated failures hit the rate limit", func(t *testing.T) {
		router := authRouter(t)
		for i := 0; i < 5; i++ {
			w, _ := doJSON(t, router, http.MethodPost, "/v1/admin/auth/login", `{"password":"errada"}`)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		}

		// Even the right password is refused while the window lasts.
		w, body := doJSON(t, router, http.MethodPost, "/v1/admin/auth/login", `{"password":"akron2024"}`)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		errInfo := body["error"].(map[string]interface{})
		assert.Equal(t, "TOO_MANY_ATTEMPTS", errInfo["code"])
	})
}
