package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/posting_spine/internal/core/domain"
	portssvc "github.com/SscSPs/posting_spine/internal/core/ports/services"
)

// CreateAccountRequest defines the data needed to add an account to a tenant's chart of accounts.
type CreateAccountRequest struct {
	Code         string             `json:"code" binding:"required,max=32"`
	Name         string             `json:"name" binding:"required,max=255"`
	AccountType  domain.AccountType `json:"accountType" binding:"required,oneof=asset liability equity revenue expense"`
	CurrencyCode string             `json:"currencyCode" binding:"omitempty,len=3"`
}

// ToInput builds the service input for tenantID and the acting user.
func (r CreateAccountRequest) ToInput(tenantID, userID string) portssvc.CreateAccountInput {
	return portssvc.CreateAccountInput{
		TenantID:     tenantID,
		Code:         strings.TrimSpace(r.Code),
		Name:         strings.TrimSpace(r.Name),
		AccountType:  r.AccountType,
		CurrencyCode: strings.ToUpper(r.CurrencyCode),
		UserID:       userID,
	}
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string             `json:"accountID"`
	TenantID      string             `json:"tenantID"`
	Code          string             `json:"code"`
	Name          string             `json:"name"`
	AccountType   domain.AccountType `json:"accountType"`
	CurrencyCode  string             `json:"currencyCode"`
	IsActive      bool               `json:"isActive"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy string             `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		TenantID:      acc.TenantID,
		Code:          acc.Code,
		Name:          acc.Name,
		AccountType:   acc.AccountType,
		CurrencyCode:  acc.CurrencyCode,
		IsActive:      acc.IsActive,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}

// ListAccountsResponse wraps the chart of accounts of a tenant.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToListAccountsResponse converts a slice of domain.Account to the list response.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	res := ListAccountsResponse{Accounts: make([]AccountResponse, len(accounts))}
	for i := range accounts {
		res.Accounts[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
