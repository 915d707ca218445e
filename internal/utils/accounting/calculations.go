package accounting

import (
	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	"github.com/SscSPs/posting_spine/internal/utils/money"
	"github.com/shopspring/decimal"
)

// DirectionTotals sums posting amounts per side of the ledger.
type DirectionTotals struct {
	Debits  decimal.Decimal
	Credits decimal.Decimal
}

// Difference is debits minus credits.
func (t DirectionTotals) Difference() decimal.Decimal {
	return t.Debits.Sub(t.Credits)
}

// IsBalanced compares both sides at the fixed money scale.
func (t DirectionTotals) IsBalanced() bool {
	return money.Equal(t.Debits, t.Credits)
}

// UnbalancedError builds the typed error reporting these totals.
func (t DirectionTotals) UnbalancedError() *apperrors.UnbalancedPostingsError {
	return &apperrors.UnbalancedPostingsError{
		Debits:     money.Format(t.Debits),
		Credits:    money.Format(t.Credits),
		Difference: money.Format(t.Difference().Abs()),
	}
}

// TotalsOfLines sums requested posting lines.
func TotalsOfLines(lines []domain.PostingLine) DirectionTotals {
	totals := DirectionTotals{Debits: decimal.Zero, Credits: decimal.Zero}
	for _, line := range lines {
		amount := money.Normalize(line.Amount)
		if line.Direction == domain.Debit {
			totals.Debits = totals.Debits.Add(amount)
		} else {
			totals.Credits = totals.Credits.Add(amount)
		}
	}
	return totals
}

// TotalsOfPostings sums persisted postings.
func TotalsOfPostings(postings []domain.LedgerPosting) DirectionTotals {
	totals := DirectionTotals{Debits: decimal.Zero, Credits: decimal.Zero}
	for _, p := range postings {
		amount := money.Normalize(p.Amount)
		if p.Direction == domain.Debit {
			totals.Debits = totals.Debits.Add(amount)
		} else {
			totals.Credits = totals.Credits.Add(amount)
		}
	}
	return totals
}

// ValidateLinesBalance returns an *apperrors.UnbalancedPostingsError when the lines
// do not balance at the fixed money scale.
func ValidateLinesBalance(lines []domain.PostingLine) (DirectionTotals, error) {
	totals := TotalsOfLines(lines)
	if !totals.IsBalanced() {
		return totals, totals.UnbalancedError()
	}
	return totals, nil
}

// NormalBalance converts debit and credit totals into the balance of an account of
// the given type: debits minus credits for assets and expenses, credits minus debits
// for liabilities, equity and revenue.
func NormalBalance(accountType domain.AccountType, debits, credits decimal.Decimal) decimal.Decimal {
	if accountType.IsDebitNormal() {
		return money.Normalize(debits.Sub(credits))
	}
	return money.Normalize(credits.Sub(debits))
}
