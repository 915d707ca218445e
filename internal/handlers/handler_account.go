package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/posting_spine/internal/core/domain"
	portssvc "github.com/SscSPs/posting_spine/internal/core/ports/services"
	"github.com/SscSPs/posting_spine/internal/dto"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	accountService   portssvc.AccountSvcFacade
	postingService   portssvc.PostingReaderSvc
	reportingService portssvc.ReportingService
}

// RegisterAccountRoutes registers routes related to accounts under a tenant group.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, postingService portssvc.PostingReaderSvc, reportingService portssvc.ReportingService) {
	h := &accountHandler{
		accountService:   accountService,
		postingService:   postingService,
		reportingService: reportingService,
	}

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:account_id", h.getAccount)
		accounts.GET("/:account_id/ledger", h.getAccountLedger)
		accounts.GET("/:account_id/postings", h.listAccountPostings)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Adds an account to the tenant's chart of accounts
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Account code already used"
// @Failure 500 {object} ErrorResponse "Failed to create account"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, scope.logger, err, "CreateAccount request")
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req.ToInput(scope.tenantID, scope.userID))
	if err != nil {
		respondError(c, scope.logger, err, "Failed to create account")
		return
	}

	scope.logger.Info("Account created successfully", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists the tenant's chart of accounts ordered by code
// @Tags accounts
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list accounts"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	accounts, err := h.accountService.ListAccounts(c.Request.Context(), scope.tenantID)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountsResponse(accounts))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   account_id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve account"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/accounts/{account_id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	account, err := h.accountService.GetAccountByID(c.Request.Context(), scope.tenantID, c.Param("account_id"))
	if err != nil {
		respondError(c, scope.logger, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// getAccountLedger godoc
// @Summary Get the ledger of an account
// @Description Lists the account's postings in date order with the running balance after each one
// @Tags accounts
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   account_id path string true "Account ID"
// @Param   from query string false "First posting date (YYYY-MM-DD)"
// @Param   to query string false "Last posting date (YYYY-MM-DD)"
// @Success 200 {object} dto.AccountLedgerResponse
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to build account ledger"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/accounts/{account_id}/ledger [get]
func (h *accountHandler) getAccountLedger(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	dates, err := dateRangeFromQuery(c)
	if err != nil {
		respondError(c, scope.logger, err, "Invalid date range")
		return
	}

	ledger, err := h.reportingService.GetAccountLedger(c.Request.Context(), scope.tenantID, c.Param("account_id"), dates)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to build account ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountLedgerResponse(ledger))
}

// ListAccountPostingsResponse is one page of an account's postings, oldest first.
type ListAccountPostingsResponse struct {
	Postings  []dto.PostingResponse `json:"postings"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// listAccountPostings godoc
// @Summary List postings of an account
// @Description Pages through the account's postings, oldest first
// @Tags accounts
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   account_id path string true "Account ID"
// @Param   from query string false "First posting date (YYYY-MM-DD)"
// @Param   to query string false "Last posting date (YYYY-MM-DD)"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} ListAccountPostingsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list postings"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/accounts/{account_id}/postings [get]
func (h *accountHandler) listAccountPostings(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	dates, err := dateRangeFromQuery(c)
	if err != nil {
		respondError(c, scope.logger, err, "Invalid date range")
		return
	}
	limit, next, err := pageFromQuery(c)
	if err != nil {
		respondError(c, scope.logger, err, "Invalid page parameters")
		return
	}

	postings, nextToken, err := h.postingService.GetPostingsByAccount(c.Request.Context(), scope.tenantID, c.Param("account_id"),
		domain.PostingFilter{Dates: dates, Limit: limit, NextToken: next})
	if err != nil {
		respondError(c, scope.logger, err, "Failed to list postings")
		return
	}
	c.JSON(http.StatusOK, ListAccountPostingsResponse{Postings: dto.ToPostingResponses(postings), NextToken: nextToken})
}

// defaultPageSize is used when a listing request carries no limit.
var defaultPageSize = 50

func pageFromQuery(c *gin.Context) (int, *string, error) {
	limit := defaultPageSize
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 1000 {
			return 0, nil, validationError("limit must be between 1 and 1000")
		}
		limit = n
	}
	var next *string
	if token := c.Query("nextToken"); token != "" {
		next = &token
	}
	return limit, next, nil
}

func dateRangeFromQuery(c *gin.Context) (domain.DateRange, error) {
	return dto.ParseDateRange(c.Query("from"), c.Query("to"))
}
