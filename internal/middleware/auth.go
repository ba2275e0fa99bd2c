package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"ai-calendar-assistant/pkg/response"
)

// userIDKey is the gin context key carrying the authenticated user identity.
const userIDKey = "user_id"

// UserID returns the authenticated user's identity, or "" when the request
// carried no valid token. "" is the valid signed-out state for reads.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// Auth rejects requests without a valid bearer token from the auth provider.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := m.identityFromRequest(c)
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// OptionalAuth attaches the identity when a valid token is present but lets
// anonymous requests through. Handlers treat the missing identity as the
// empty signed-out state.
func (m Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := m.identityFromRequest(c); userID != "" {
			c.Set(userIDKey, userID)
		}
		c.Next()
	}
}

// identityFromRequest verifies the Authorization bearer token (HS256, shared
// secret with the hosted auth provider) and returns its subject claim.
func (m Middleware) identityFromRequest(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}

	raw := strings.TrimPrefix(header, "Bearer ")
	if raw == header || raw == "" {
		return ""
	}

	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return ""
	}
	return claims.Subject
}
