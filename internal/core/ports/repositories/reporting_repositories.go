package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/posting_spine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines read-only aggregations over the ledger.
type ReportingRepository interface {
	// GetAccountTotals sums debits and credits per account for postings inside the date range.
	// Balance is left zero; callers apply the normal-balance rule. Accounts without postings are omitted.
	GetAccountTotals(ctx context.Context, tenantID string, dates domain.DateRange) ([]domain.TrialBalanceRow, error)

	// GetBatchTotals sums debits and credits per batch for postings inside the date range.
	GetBatchTotals(ctx context.Context, tenantID string, dates domain.DateRange) ([]domain.BatchBalance, error)

	// GetAccountTotalsBefore sums one account's postings dated strictly before the given time.
	GetAccountTotalsBefore(ctx context.Context, tenantID, accountID string, before time.Time) (debits, credits decimal.Decimal, err error)
}
