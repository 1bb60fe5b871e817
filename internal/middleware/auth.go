package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Joshua4-0p/blood-donation-app/internal/config"
	domainAuth "github.com/Joshua4-0p/blood-donation-app/internal/domain/auth"
	authUsecase "github.com/Joshua4-0p/blood-donation-app/internal/usecase/auth"
	"github.com/Joshua4-0p/blood-donation-app/pkg/utils"
)

const principalKey = "principal"

func AuthMiddleware(cfg *config.Config, authService *authUsecase.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}

		token := parts[1]

		claims, err := utils.ValidateToken(token, cfg.JWT.Secret)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		principal, err := authService.ResolvePrincipal(c.Request.Context(), claims.Email, claims.Role)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Account no longer exists")
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// GetPrincipal returns the authenticated principal for the request.
func GetPrincipal(c *gin.Context) (domainAuth.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return domainAuth.Principal{}, false
	}
	p, ok := v.(domainAuth.Principal)
	return p, ok
}
