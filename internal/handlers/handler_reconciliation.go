package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/posting_spine/internal/core/ports/services"
	"github.com/SscSPs/posting_spine/internal/dto"
	"github.com/gin-gonic/gin"
)

type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvc
}

// RegisterReconciliationRoutes registers the background verification routes under a tenant group.
func RegisterReconciliationRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvc) {
	h := &reconciliationHandler{reconciliationService: reconciliationService}

	reconciliation := rg.Group("/reconciliation")
	{
		reconciliation.POST("/runs", h.enqueueRun)
		reconciliation.GET("/latest", h.getLatest)
	}
}

// enqueueRun godoc
// @Summary Schedule a books verification
// @Description Queues a background verification and returns its task ID
// @Tags reconciliation
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param run body dto.ReconciliationRunRequest false "Date range"
// @Success 202 {object} dto.ReconciliationRunResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to schedule verification"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/reconciliation/runs [post]
func (h *reconciliationHandler) enqueueRun(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	var req dto.ReconciliationRunRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, scope.logger, err, "ReconciliationRun request")
			return
		}
	}
	dates, err := req.DateRange()
	if err != nil {
		respondError(c, scope.logger, err, "Invalid date range")
		return
	}

	taskID, err := h.reconciliationService.EnqueueVerification(c.Request.Context(), scope.tenantID, dates)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to schedule verification")
		return
	}
	scope.logger.Info("Books verification scheduled", slog.String("task_id", taskID))
	c.JSON(http.StatusAccepted, dto.ReconciliationRunResponse{TaskID: taskID})
}

// getLatest godoc
// @Summary Latest books verification
// @Description Returns the most recent stored verification result of the tenant
// @Tags reconciliation
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {object} dto.BooksVerificationResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "No verification result stored"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/reconciliation/latest [get]
func (h *reconciliationHandler) getLatest(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	result, err := h.reconciliationService.GetLatestVerification(c.Request.Context(), scope.tenantID)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to read latest verification")
		return
	}
	c.JSON(http.StatusOK, dto.ToBooksVerificationResponse(result))
}
