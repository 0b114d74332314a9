package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/akronstore/akron_api/internal/repository"
	"github.com/akronstore/akron_api/internal/utils"
)

// JWTMiddleware protects the admin routes. Besides validating the bearer
// token it checks the persisted session flag, so a logout invalidates
// tokens that are still within their lifetime.
type JWTMiddleware struct {
	secret string
	repo   *repository.CatalogRepository
}

// NewJWTMiddleware constructs a JWTMiddleware.
func NewJWTMiddleware(secret string, repo *repository.CatalogRepository) *JWTMiddleware {
	return &JWTMiddleware{secret: secret, repo: repo}
}

// Handle returns the gin middleware function.
func (m *JWTMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Error(c, 401, "UNAUTHORIZED", "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.Error(c, 401, "UNAUTHORIZED", "Invalid authorization header")
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(m.secret, parts[1])
		if err != nil {
			utils.Error(c, 401, "INVALID_TOKEN", "Invalid or expired token")
			c.Abort()
			return
		}

		authenticated, err := m.repo.AdminAuth(c.Request.Context())
		if err != nil || !authenticated {
			utils.Error(c, 401, "SESSION_EXPIRED", "Admin session is no longer active")
			c.Abort()
			return
		}

		c.Set("role", claims.Role)
		c.Next()
	}
}
