package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// userIDKey is the gin context key for the authenticated user's id.
const userIDKey = "userID"

// authRequired resolves the acting user from a bearer token issued by the
// identity provider. The token is an HS256 JWT whose subject is the user id.
func authRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		const prefix = "Bearer "
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "You need to be logged in"})
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, prefix))

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "You need to be logged in"})
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil || sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "You need to be logged in"})
			return
		}

		c.Set(userIDKey, sub)
		c.Next()
	}
}

// currentUser returns the authenticated user id, empty when unauthenticated.
func currentUser(c *gin.Context) string {
	return c.GetString(userIDKey)
}
