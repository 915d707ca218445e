package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/posting_spine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// requestScope is the tenant, acting user and logger of an authenticated request.
type requestScope struct {
	tenantID string
	userID   string
	logger   *slog.Logger
}

// scopeFromRequest reads the tenant from the path and the user from the auth
// middleware. It writes the error response itself and returns false on failure.
func scopeFromRequest(c *gin.Context) (requestScope, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return requestScope{}, false
	}
	tenantID := c.Param("tenant_id")
	if tenantID == "" {
		logger.Warn("Tenant ID missing from path")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Tenant ID is required"})
		return requestScope{}, false
	}
	return requestScope{
		tenantID: tenantID,
		userID:   userID,
		logger:   logger.With(slog.String("tenant_id", tenantID)),
	}, true
}
