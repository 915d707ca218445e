package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Direction indicates whether a posting is a Debit or a Credit.
type Direction string

const (
	Debit  Direction = "DEBIT"
	Credit Direction = "CREDIT"
)

// LedgerPosting represents a single line of a posting batch, affecting one account.
type LedgerPosting struct {
	PostingID      string          `db:"posting_id"`
	TenantID       string          `db:"tenant_id"`
	EventID        string          `db:"event_id"`
	BatchID        string          `db:"batch_id"`
	LineNo         int             `db:"line_no"`
	AccountID      string          `db:"account_id"`
	Direction      Direction       `db:"direction"`
	Amount         decimal.Decimal `db:"amount"` // Positive, numeric(19,4)
	CurrencyCode   string          `db:"currency_code"`
	PostingDate    time.Time       `db:"posting_date"`
	Description    string          `db:"description"`
	Metadata       []byte          `db:"metadata"`
	IsReversal     bool            `db:"is_reversal"`
	ReversedFromID sql.NullString  `db:"reversed_from_id"`
	ReversalID     sql.NullString  `db:"reversal_id"`
	CreatedAt      time.Time       `db:"created_at"`
	CreatedBy      string          `db:"created_by"`
}
