package middleware

import (
	"context"

	"github.com/SscSPs/digital_banking/internal/utils"
	"github.com/gin-gonic/gin"
)

// claimsKey stores the verified access token claims in the request context.
const claimsKey = contextKey("claims")

// WithClaims stores verified claims in ctx.
func WithClaims(ctx context.Context, claims *utils.AccessClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaimsFromContext retrieves the authenticated caller's claims.
func GetClaimsFromContext(c *gin.Context) (*utils.AccessClaims, bool) {
	claims, ok := c.Request.Context().Value(claimsKey).(*utils.AccessClaims)
	return claims, ok && claims != nil
}

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (int64, bool) {
	claims, ok := GetClaimsFromContext(c)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}
