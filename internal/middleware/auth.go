package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/foodieapp/backend/internal/model"
)

// ContextUserID is the gin context key the auth middlewares store the
// session user id under.
const ContextUserID = "user_id"

// TokenClaims are the validated claims of a session token.
type TokenClaims struct {
	UserID string
	Name   string
}

// TokenValidator validates bearer tokens.
type TokenValidator interface {
	ValidateToken(token string) (*TokenClaims, error)
}

// RequireAuth validates the Authorization header and stores the user
// id in the context, aborting with 401 on failure.
func RequireAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := validator.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}

// OptionalAuth resolves the session user from a bearer token when one
// is present and valid, and falls back to the sample user otherwise.
// Read paths use it so unauthenticated browsing still has an identity
// for the my-food pseudo-category.
func OptionalAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := model.SampleUserID

		authHeader := c.GetHeader("Authorization")
		if parts := strings.Split(authHeader, " "); len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := validator.ValidateToken(parts[1]); err == nil {
				userID = claims.UserID
			}
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID returns the session user id stored by the auth middlewares,
// defaulting to the sample user.
func UserID(c *gin.Context) string {
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok := v.(string); ok && id != "" {
			return id
		}
	}
	return model.SampleUserID
}
