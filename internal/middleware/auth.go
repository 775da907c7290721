package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Natalia-Nic/construction-company-api/internal/httperr"
	"github.com/Natalia-Nic/construction-company-api/internal/token"
)

const ContextIdentity = "identity"

// AuthMiddleware verifies the bearer token and stores the decoded claims in
// the request context. Handlers read them back through Identity.
func AuthMiddleware(issuer *token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authorization header is required.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Expected a bearer token.")
			c.Abort()
			return
		}

		claims, err := issuer.Verify(parts[1])
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Token is invalid or expired.")
			c.Abort()
			return
		}

		c.Set(ContextIdentity, claims)
		c.Next()
	}
}

// Identity returns the caller's decoded token claims. The bool is false on
// routes that skipped AuthMiddleware.
func Identity(c *gin.Context) (*token.Claims, bool) {
	val, exists := c.Get(ContextIdentity)
	if !exists {
		return nil, false
	}
	claims, ok := val.(*token.Claims)
	return claims, ok
}

// RequireRoles allows the request through only when the caller's role is in
// the list. Must run after AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Identity(c)
		if !ok {
			httperr.Unauthorized(c, "user_not_in_context", "Authentication required.")
			c.Abort()
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		httperr.Forbidden(c, "insufficient_role", "Your role does not allow this operation.")
		c.Abort()
	}
}
