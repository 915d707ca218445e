package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction indicates whether a posting line is a debit or a credit.
type Direction string

const (
	Debit  Direction = "debit"
	Credit Direction = "credit"
)

// IsValid reports whether d is debit or credit.
func (d Direction) IsValid() bool {
	return d == Debit || d == Credit
}

// Opposite returns the other side of the ledger.
func (d Direction) Opposite() Direction {
	if d == Debit {
		return Credit
	}
	return Debit
}

// LedgerPosting is a single debit or credit line of a balanced batch. Postings are
// immutable after insert except for the one-time ReversalID link.
type LedgerPosting struct {
	PostingID      string          `json:"postingID"`
	TenantID       string          `json:"tenantID"`
	EventID        string          `json:"eventID"`
	BatchID        string          `json:"batchID"`
	LineNo         int             `json:"lineNo"` // 1-based position inside the batch
	AccountID      string          `json:"accountID"`
	Direction      Direction       `json:"direction"`
	Amount         decimal.Decimal `json:"amount"` // Positive, scale 4
	CurrencyCode   string          `json:"currencyCode"`
	PostingDate    time.Time       `json:"postingDate"`
	Description    string          `json:"description"`
	Metadata       map[string]any  `json:"metadata,omitempty"`
	IsReversal     bool            `json:"isReversal"`
	ReversedFromID *string         `json:"reversedFromID,omitempty"`
	ReversalID     *string         `json:"reversalID,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
}

// SignedAmount returns the amount as it moves the balance of an account of the given type.
func (p LedgerPosting) SignedAmount(accountType AccountType) decimal.Decimal {
	if (p.Direction == Debit) == accountType.IsDebitNormal() {
		return p.Amount
	}
	return p.Amount.Neg()
}

// PostingLine is one requested line of a posting set before it is persisted.
type PostingLine struct {
	AccountID   string
	Direction   Direction
	Amount      decimal.Decimal
	Description string
	Metadata    map[string]any
}

// PostingResult describes a persisted batch.
type PostingResult struct {
	BatchID      string          `json:"batchID"`
	Postings     []LedgerPosting `json:"postings"`
	TotalDebits  decimal.Decimal `json:"totalDebits"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
	IsBalanced   bool            `json:"isBalanced"`
}

// BatchBalance is the recomputed state of a stored batch.
type BatchBalance struct {
	BatchID      string          `json:"batchID"`
	LineCount    int             `json:"lineCount"`
	TotalDebits  decimal.Decimal `json:"totalDebits"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
	Difference   decimal.Decimal `json:"difference"`
	IsBalanced   bool            `json:"isBalanced"`
}
