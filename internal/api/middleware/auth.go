package middleware

import (
	"strings"

	"vidtube/internal/api/response"
	"vidtube/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ContextKeyUserID = "currentUserID"

// AuthRequired rejects requests without a valid bearer token and
// stores the authenticated user id in the context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "missing authentication token")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			response.Unauthorized(c, "invalid or expired authentication token")
			c.Abort()
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "invalid or expired authentication token")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Next()
	}
}

// GetCurrentUserID returns the authenticated user id set by
// AuthRequired.
func GetCurrentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	val, exists := c.Get(ContextKeyUserID)
	if !exists {
		return primitive.NilObjectID, false
	}
	userID, ok := val.(primitive.ObjectID)
	return userID, ok
}

// extractToken pulls the bearer token from the Authorization header.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
