package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/posting_spine/internal/core/domain"
	portsrepo "github.com/SscSPs/posting_spine/internal/core/ports/repositories"
	"github.com/SscSPs/posting_spine/internal/models"
	"github.com/SscSPs/posting_spine/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db querier) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{db: db}}
}

// GetAccountTotals sums debits and credits per account over the postings in range.
func (r *reportingRepository) GetAccountTotals(ctx context.Context, tenantID string, dates domain.DateRange) ([]domain.TrialBalanceRow, error) {
	var where whereBuilder
	where.add("p.tenant_id = ?", tenantID)
	where.addDates("p.posting_date", dates)

	query := `
		SELECT
			a.account_id,
			a.code,
			a.name,
			a.account_type,
			COALESCE(SUM(CASE WHEN p.direction = 'DEBIT' THEN p.amount ELSE 0 END), 0) AS total_debit,
			COALESCE(SUM(CASE WHEN p.direction = 'CREDIT' THEN p.amount ELSE 0 END), 0) AS total_credit
		FROM ledger_postings p
		JOIN accounts a ON a.account_id = p.account_id
		WHERE ` + where.sql() + `
		GROUP BY a.account_id, a.code, a.name, a.account_type
		ORDER BY a.code
	`
	rows, err := r.db.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("error querying account totals: %w", err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		var accountType models.AccountType
		if err := rows.Scan(
			&row.AccountID,
			&row.AccountCode,
			&row.AccountName,
			&accountType,
			&row.Debit,
			&row.Credit,
		); err != nil {
			return nil, fmt.Errorf("error scanning account totals row: %w", err)
		}
		row.AccountType = mapping.ToDomainAccount(models.Account{AccountType: accountType}).AccountType
		row.Balance = decimal.Zero
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account totals rows: %w", err)
	}
	return result, nil
}

// GetBatchTotals sums each posting batch in range on its own.
func (r *reportingRepository) GetBatchTotals(ctx context.Context, tenantID string, dates domain.DateRange) ([]domain.BatchBalance, error) {
	var where whereBuilder
	where.add("tenant_id = ?", tenantID)
	where.addDates("posting_date", dates)

	query := `
		SELECT
			batch_id,
			COUNT(*) AS line_count,
			COALESCE(SUM(CASE WHEN direction = 'DEBIT' THEN amount ELSE 0 END), 0) AS total_debit,
			COALESCE(SUM(CASE WHEN direction = 'CREDIT' THEN amount ELSE 0 END), 0) AS total_credit
		FROM ledger_postings
		WHERE ` + where.sql() + `
		GROUP BY batch_id
		ORDER BY batch_id
	`
	rows, err := r.db.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("error querying batch totals: %w", err)
	}
	defer rows.Close()

	result := []domain.BatchBalance{}
	for rows.Next() {
		var b domain.BatchBalance
		if err := rows.Scan(&b.BatchID, &b.LineCount, &b.TotalDebits, &b.TotalCredits); err != nil {
			return nil, fmt.Errorf("error scanning batch totals row: %w", err)
		}
		b.Difference = b.TotalDebits.Sub(b.TotalCredits)
		b.IsBalanced = b.Difference.IsZero()
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating batch totals rows: %w", err)
	}
	return result, nil
}

// GetAccountTotalsBefore sums one account's postings dated strictly before the given time.
func (r *reportingRepository) GetAccountTotalsBefore(ctx context.Context, tenantID, accountID string, before time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN direction = 'DEBIT' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN direction = 'CREDIT' THEN amount ELSE 0 END), 0)
		FROM ledger_postings
		WHERE tenant_id = $1 AND account_id = $2 AND posting_date < $3
	`
	var debits, credits decimal.Decimal
	if err := r.db.QueryRow(ctx, query, tenantID, accountID, before).Scan(&debits, &credits); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("error querying opening totals of account %s: %w", accountID, err)
	}
	return debits, credits, nil
}
