package services

import (
	"context"
	"time"

	"github.com/SscSPs/posting_spine/internal/core/domain"
)

// ReportingService defines the read-only balance and reconciliation queries.
type ReportingService interface {
	// VerifyBalancedBooks sums all postings in the range and checks every batch on its own.
	VerifyBalancedBooks(ctx context.Context, tenantID string, dates domain.DateRange) (*domain.BooksVerification, error)

	// GetTrialBalance generates a trial balance as of a specific date
	GetTrialBalance(ctx context.Context, tenantID string, asOf time.Time) (*domain.TrialBalance, error)

	// GetBalanceSheet generates a balance sheet as of a specific date
	GetBalanceSheet(ctx context.Context, tenantID string, asOf time.Time) (*domain.BalanceSheetReport, error)

	// GetIncomeStatement generates an income statement for a period
	GetIncomeStatement(ctx context.Context, tenantID string, from, to time.Time) (*domain.IncomeStatement, error)

	// GetAccountLedger lists an account's postings in the range with running balances.
	GetAccountLedger(ctx context.Context, tenantID, accountID string, dates domain.DateRange) (*domain.AccountLedger, error)

	GetPostingsByDocument(ctx context.Context, tenantID, documentID string) ([]domain.LedgerPosting, error)
	GetEventHistory(ctx context.Context, tenantID, documentID string) ([]domain.EconomicEvent, error)
}

// ReconciliationSvc schedules background books verification and serves the latest result.
type ReconciliationSvc interface {
	EnqueueVerification(ctx context.Context, tenantID string, dates domain.DateRange) (string, error)
	RunVerification(ctx context.Context, tenantID string, dates domain.DateRange) (*domain.BooksVerification, error)
	GetLatestVerification(ctx context.Context, tenantID string) (*domain.BooksVerification, error)
}

// VerificationEnqueuer hands a books verification to the background queue and returns the task ID.
type VerificationEnqueuer interface {
	EnqueueBooksVerification(ctx context.Context, tenantID string, dates domain.DateRange) (string, error)
}
