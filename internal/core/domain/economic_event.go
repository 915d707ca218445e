package domain

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// EventType classifies what happened economically.
type EventType string

const (
	EventRevenue            EventType = "revenue"
	EventExpense            EventType = "expense"
	EventLiabilityIncurred  EventType = "liability_incurred"
	EventLiabilitySettled   EventType = "liability_settled"
	EventAssetAcquired      EventType = "asset_acquired"
	EventAssetDisposed      EventType = "asset_disposed"
	EventPaymentReceived    EventType = "payment_received"
	EventPaymentMade        EventType = "payment_made"
	EventEquityContribution EventType = "equity_contribution"
	EventAdjustment         EventType = "adjustment"
)

var knownEventTypes = map[EventType]struct{}{
	EventRevenue:            {},
	EventExpense:            {},
	EventLiabilityIncurred:  {},
	EventLiabilitySettled:   {},
	EventAssetAcquired:      {},
	EventAssetDisposed:      {},
	EventPaymentReceived:    {},
	EventPaymentMade:        {},
	EventEquityContribution: {},
	EventAdjustment:         {},
}

// IsValid reports whether t belongs to the closed set of event types.
func (t EventType) IsValid() bool {
	_, ok := knownEventTypes[t]
	return ok
}

// EconomicEvent is an immutable record of a business fact. After insert only the
// ReversalID link may be set, and only once.
type EconomicEvent struct {
	EventID        string           `json:"eventID"`
	TenantID       string           `json:"tenantID"`
	DocumentID     string           `json:"documentID"`
	EventType      EventType        `json:"eventType"`
	Description    string           `json:"description"`
	EventDate      time.Time        `json:"eventDate"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	CurrencyCode   *string          `json:"currencyCode,omitempty"`
	EventData      json.RawMessage  `json:"eventData,omitempty"`
	AuditContext   AuditContext     `json:"auditContext"`
	IsReversal     bool             `json:"isReversal"`
	ReversedFromID *string          `json:"reversedFromID,omitempty"`
	ReversalID     *string          `json:"reversalID,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	CreatedBy      string           `json:"createdBy"`
}

// SameEconomicFacts reports whether two snapshots of an event agree on every field
// except the reversal link, which is the only one allowed to change after insert.
func (e EconomicEvent) SameEconomicFacts(other EconomicEvent) bool {
	if e.EventID != other.EventID ||
		e.TenantID != other.TenantID ||
		e.DocumentID != other.DocumentID ||
		e.EventType != other.EventType ||
		e.Description != other.Description ||
		!e.EventDate.Equal(other.EventDate) ||
		e.IsReversal != other.IsReversal ||
		!e.CreatedAt.Equal(other.CreatedAt) ||
		e.CreatedBy != other.CreatedBy {
		return false
	}
	if !equalStringPtr(e.CurrencyCode, other.CurrencyCode) || !equalStringPtr(e.ReversedFromID, other.ReversedFromID) {
		return false
	}
	if (e.Amount == nil) != (other.Amount == nil) {
		return false
	}
	if e.Amount != nil && !e.Amount.Equal(*other.Amount) {
		return false
	}
	if !bytes.Equal(e.EventData, other.EventData) {
		return false
	}
	a, err1 := json.Marshal(e.AuditContext)
	b, err2 := json.Marshal(other.AuditContext)
	return err1 == nil && err2 == nil && bytes.Equal(a, b)
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
