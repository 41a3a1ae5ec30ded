package middleware

import (
	"net/http"
	"strings"

	"b2b-showcase-backend/internal/shared"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware checks the authenticated email against the configured
// admin allow-list. Runs after AuthMiddleware.
func AdminMiddleware(adminEmails []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		allowed[strings.ToLower(strings.TrimSpace(email))] = struct{}{}
	}

	return func(c *gin.Context) {
		email := c.GetString(shared.CtxUserEmail)
		if email == "" {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Access denied: admin role required",
			})
			c.Abort()
			return
		}

		if _, ok := allowed[strings.ToLower(email)]; !ok {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Access denied: admin role required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
