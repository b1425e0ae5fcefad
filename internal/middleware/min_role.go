package middleware

import (
	"net/http"

	"github.com/AvihaiAdler/onereport/internal/domain"
	"github.com/AvihaiAdler/onereport/internal/shared/apperror"
	"github.com/AvihaiAdler/onereport/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// MinRole rejects actors holding less privilege than required. Runs after
// AuthMiddleware; a missing role is treated as no privilege at all.
func MinRole(required domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := domain.Role(c.GetString("role"))
		if !domain.IsPermitted(actor, required) {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "Insufficient privileges", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
