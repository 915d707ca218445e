package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the authenticated user's ID in the request context.
const userIDKey = contextKey("userID")

const tenantIDsKey = contextKey("tenantIDs")

// WithUserID returns a copy of ctx carrying the authenticated user ID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userIDVal, exists := c.Get(string(userIDKey)); exists {
		userID, ok := userIDVal.(string)
		return userID, ok && userID != ""
	}
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// WithTenantIDs returns a copy of ctx carrying the tenants granted to the caller.
func WithTenantIDs(ctx context.Context, tenantIDs []string) context.Context {
	return context.WithValue(ctx, tenantIDsKey, tenantIDs)
}

// GetTenantIDsFromContext returns the tenants granted by the caller's token.
func GetTenantIDsFromContext(ctx context.Context) []string {
	tenantIDs, _ := ctx.Value(tenantIDsKey).([]string)
	return tenantIDs
}
