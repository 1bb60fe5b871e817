package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainAuth "github.com/Joshua4-0p/blood-donation-app/internal/domain/auth"
	"github.com/Joshua4-0p/blood-donation-app/pkg/utils"
)

func RoleMiddleware(allowedRoles ...domainAuth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusForbidden, "Principal not found in context")
			c.Abort()
			return
		}

		for _, allowedRole := range allowedRoles {
			if principal.Role() == allowedRole {
				c.Next()
				return
			}
		}

		utils.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions")
		c.Abort()
	}
}

func UserOnly() gin.HandlerFunc {
	return RoleMiddleware(domainAuth.RoleUser)
}

func HospitalOnly() gin.HandlerFunc {
	return RoleMiddleware(domainAuth.RoleHospital)
}
