package middleware

import (
	"strings"

	"b2b-showcase-backend/internal/shared"
	"b2b-showcase-backend/pkg/logger"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the Firebase ID token from the Authorization
// header and stores the caller's email in the request context. Handlers
// read it for the updatedBy stamp on mutations.
func AuthMiddleware(authClient *auth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Extract token from "Bearer <token>"
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		// 2. Verify against Firebase
		token, err := authClient.VerifyIDToken(c.Request.Context(), parts[1])
		if err != nil {
			logger.Warn("token verification failed", err)
			c.JSON(401, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		// 3. Extract email claim
		email, _ := token.Claims["email"].(string)
		if email == "" {
			c.JSON(401, gin.H{"error": "token has no email claim"})
			c.Abort()
			return
		}

		c.Set(shared.CtxUserEmail, email)

		c.Next()
	}
}

// UserEmail returns the authenticated caller's email, or the fixed
// system identity when the request carried no verified token.
func UserEmail(c *gin.Context) string {
	if email := c.GetString(shared.CtxUserEmail); email != "" {
		return email
	}
	return shared.SystemIdentity
}
