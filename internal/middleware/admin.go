package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joshua4-0p/blood-donation-app/internal/config"
	"github.com/Joshua4-0p/blood-donation-app/pkg/utils"
)

// AdminTokenMiddleware gates operational endpoints behind a static admin token.
func AdminTokenMiddleware(cfg *config.AdminConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Admin-Token")
		if cfg.APIToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(cfg.APIToken)) != 1 {
			utils.ErrorResponse(c, http.StatusForbidden, "Admin token required")
			c.Abort()
			return
		}

		c.Next()
	}
}
