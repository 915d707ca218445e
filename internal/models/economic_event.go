package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// EconomicEvent is one append-only row of the event log. AuditContext and
// EventData are stored as jsonb.
type EconomicEvent struct {
	EventID        string              `db:"event_id"`
	TenantID       string              `db:"tenant_id"`
	DocumentID     string              `db:"document_id"`
	EventType      string              `db:"event_type"`
	Description    string              `db:"description"`
	EventDate      time.Time           `db:"event_date"`
	Amount         decimal.NullDecimal `db:"amount"`
	CurrencyCode   sql.NullString      `db:"currency_code"`
	EventData      []byte              `db:"event_data"`
	AuditContext   []byte              `db:"audit_context"`
	IsReversal     bool                `db:"is_reversal"`
	ReversedFromID sql.NullString      `db:"reversed_from_id"`
	ReversalID     sql.NullString      `db:"reversal_id"`
	CreatedAt      time.Time           `db:"created_at"`
	CreatedBy      string              `db:"created_by"`
}
