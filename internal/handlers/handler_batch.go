package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/posting_spine/internal/core/ports/services"
	"github.com/SscSPs/posting_spine/internal/dto"
	"github.com/gin-gonic/gin"
)

// RegisterBatchRoutes registers posting batch routes under a tenant group.
func RegisterBatchRoutes(rg *gin.RouterGroup, postingService portssvc.PostingReaderSvc) {
	batches := rg.Group("/batches")
	batches.GET("/:batch_id/postings", func(c *gin.Context) { getBatchPostings(c, postingService) })
	batches.GET("/:batch_id/validate", func(c *gin.Context) { validateBatch(c, postingService) })
}

// getBatchPostings godoc
// @Summary Postings of a batch
// @Tags batches
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   batch_id path string true "Batch ID"
// @Success 200 {object} dto.ListPostingsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/batches/{batch_id}/postings [get]
func getBatchPostings(c *gin.Context, postingService portssvc.PostingReaderSvc) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	postings, err := postingService.GetPostingsByBatch(c.Request.Context(), scope.tenantID, c.Param("batch_id"))
	if err != nil {
		respondError(c, scope.logger, err, "Failed to list batch postings")
		return
	}
	c.JSON(http.StatusOK, dto.ListPostingsResponse{Postings: dto.ToPostingResponses(postings)})
}

// validateBatch godoc
// @Summary Recompute the balance of a stored batch
// @Description An unbalanced batch is reported in the body with isBalanced=false, not as an error
// @Tags batches
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   batch_id path string true "Batch ID"
// @Success 200 {object} dto.BatchBalanceResponse
// @Failure 404 {object} ErrorResponse "Batch not found"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/batches/{batch_id}/validate [get]
func validateBatch(c *gin.Context, postingService portssvc.PostingReaderSvc) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	balance, err := postingService.ValidateBatchBalance(c.Request.Context(), scope.tenantID, c.Param("batch_id"))
	if err != nil {
		respondError(c, scope.logger, err, "Failed to validate batch")
		return
	}
	c.JSON(http.StatusOK, dto.ToBatchBalanceResponse(balance))
}
