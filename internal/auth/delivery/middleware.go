package delivery

import (
	"net/http"
	"strings"

	authdomain "bookmarks-backend/internal/auth/domain"
	"bookmarks-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// AuthMiddleware rejects requests without a valid bearer token and attaches
// the extracted principal to the gin context for downstream handlers.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		principal, err := authUsecase.ExtractPrincipal(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// PrincipalFromContext returns the principal attached by AuthMiddleware.
// It is only meaningful on routes behind the middleware.
func PrincipalFromContext(c *gin.Context) *authdomain.Principal {
	principal, _ := c.MustGet(principalKey).(*authdomain.Principal)
	return principal
}
