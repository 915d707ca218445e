package memory

import (
	"context"
	"sort"
	"time"

	"github.com/SscSPs/posting_spine/internal/core/domain"
	"github.com/shopspring/decimal"
)

func addToSide(p domain.LedgerPosting, debits, credits *decimal.Decimal) {
	if p.Direction == domain.Debit {
		*debits = debits.Add(p.Amount)
	} else {
		*credits = credits.Add(p.Amount)
	}
}

func (v *view) GetAccountTotals(_ context.Context, tenantID string, dates domain.DateRange) ([]domain.TrialBalanceRow, error) {
	rows := make(map[string]*domain.TrialBalanceRow)
	v.read(func(st *state) {
		for _, p := range st.postings {
			if p.TenantID != tenantID || !dates.Contains(p.PostingDate) {
				continue
			}
			row, ok := rows[p.AccountID]
			if !ok {
				account := st.accounts[p.AccountID]
				row = &domain.TrialBalanceRow{
					AccountID:   p.AccountID,
					AccountCode: account.Code,
					AccountName: account.Name,
					AccountType: account.AccountType,
					Debit:       decimal.Zero,
					Credit:      decimal.Zero,
					Balance:     decimal.Zero,
				}
				rows[p.AccountID] = row
			}
			addToSide(p, &row.Debit, &row.Credit)
		}
	})

	result := make([]domain.TrialBalanceRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AccountCode < result[j].AccountCode })
	return result, nil
}

func (v *view) GetBatchTotals(_ context.Context, tenantID string, dates domain.DateRange) ([]domain.BatchBalance, error) {
	batches := make(map[string]*domain.BatchBalance)
	v.read(func(st *state) {
		for _, p := range st.postings {
			if p.TenantID != tenantID || !dates.Contains(p.PostingDate) {
				continue
			}
			b, ok := batches[p.BatchID]
			if !ok {
				b = &domain.BatchBalance{BatchID: p.BatchID, TotalDebits: decimal.Zero, TotalCredits: decimal.Zero}
				batches[p.BatchID] = b
			}
			b.LineCount++
			addToSide(p, &b.TotalDebits, &b.TotalCredits)
		}
	})

	result := make([]domain.BatchBalance, 0, len(batches))
	for _, b := range batches {
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].BatchID < result[j].BatchID })
	return result, nil
}

func (v *view) GetAccountTotalsBefore(_ context.Context, tenantID, accountID string, before time.Time) (decimal.Decimal, decimal.Decimal, error) {
	debits, credits := decimal.Zero, decimal.Zero
	v.read(func(st *state) {
		for _, p := range st.postings {
			if p.TenantID == tenantID && p.AccountID == accountID && p.PostingDate.Before(before) {
				addToSide(p, &debits, &credits)
			}
		}
	})
	return debits, credits, nil
}
