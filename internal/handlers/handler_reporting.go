package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/posting_spine/internal/core/ports/services"
	"github.com/SscSPs/posting_spine/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers routes related to financial reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/income-statement", h.getIncomeStatement)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
		reportingGroup.GET("/verify-books", h.verifyBooks)
	}
}

// asOfFromQuery reads the asOf date, defaulting to today. The date covers the whole day.
func asOfFromQuery(c *gin.Context) (time.Time, error) {
	asOf, err := dto.ParseDate("asOf", c.DefaultQuery("asOf", timeNow().Format(dto.DateLayout)))
	if err != nil {
		return time.Time{}, err
	}
	return *dto.EndOfDay(asOf), nil
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Per-account debit and credit totals as of a date
// @Tags reports
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	asOf, err := asOfFromQuery(c)
	if err != nil {
		respondError(c, scope.logger, err, "Invalid date format")
		return
	}

	tb, err := h.reportingService.GetTrialBalance(c.Request.Context(), scope.tenantID, asOf)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to generate trial balance report")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(tb))
}

// getIncomeStatement godoc
// @Summary Generate income statement
// @Description Revenue and expense accounts for a period
// @Tags reports
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param from query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param to query string false "End date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	now := timeNow()
	firstDayOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	dates, err := dto.ParseDateRange(
		c.DefaultQuery("from", firstDayOfMonth.Format(dto.DateLayout)),
		c.DefaultQuery("to", now.Format(dto.DateLayout)))
	if err != nil {
		respondError(c, scope.logger, err, "Invalid date range")
		return
	}

	statement, err := h.reportingService.GetIncomeStatement(c.Request.Context(), scope.tenantID, *dates.From, *dates.To)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to generate income statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(statement))
}

// getBalanceSheet godoc
// @Summary Generate balance sheet report
// @Description Assets, liabilities and equity as of a date
// @Tags reports
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	asOf, err := asOfFromQuery(c)
	if err != nil {
		respondError(c, scope.logger, err, "Invalid date format")
		return
	}

	bs, err := h.reportingService.GetBalanceSheet(c.Request.Context(), scope.tenantID, asOf)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to generate balance sheet report")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(bs))
}

// verifyBooks godoc
// @Summary Verify that the books balance
// @Description Sums every posting in the range and checks each batch on its own. Runs synchronously.
// @Tags reports
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.BooksVerificationResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to verify books"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/reports/verify-books [get]
func (h *reportingHandler) verifyBooks(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	dates, err := dateRangeFromQuery(c)
	if err != nil {
		respondError(c, scope.logger, err, "Invalid date range")
		return
	}

	result, err := h.reportingService.VerifyBalancedBooks(c.Request.Context(), scope.tenantID, dates)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to verify books")
		return
	}
	if !result.IsBalanced {
		scope.logger.Error("Books are not balanced",
			slog.String("difference", result.Difference.StringFixed(4)),
			slog.Int("unbalanced_batches", len(result.UnbalancedBatches)))
	}
	c.JSON(http.StatusOK, dto.ToBooksVerificationResponse(result))
}
