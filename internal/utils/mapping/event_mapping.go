package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/posting_spine/internal/core/domain"
	"github.com/SscSPs/posting_spine/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelEconomicEvent converts a domain EconomicEvent to a model EconomicEvent.
// The audit context is serialised once here and never rewritten.
func ToModelEconomicEvent(d domain.EconomicEvent) (models.EconomicEvent, error) {
	audit, err := json.Marshal(d.AuditContext)
	if err != nil {
		return models.EconomicEvent{}, fmt.Errorf("failed to encode audit context: %w", err)
	}
	m := models.EconomicEvent{
		EventID:        d.EventID,
		TenantID:       d.TenantID,
		DocumentID:     d.DocumentID,
		EventType:      upper(d.EventType),
		Description:    d.Description,
		EventDate:      d.EventDate,
		CurrencyCode:   toNullString(d.CurrencyCode),
		AuditContext:   audit,
		IsReversal:     d.IsReversal,
		ReversedFromID: toNullString(d.ReversedFromID),
		ReversalID:     toNullString(d.ReversalID),
		CreatedAt:      d.CreatedAt,
		CreatedBy:      d.CreatedBy,
	}
	if len(d.EventData) > 0 {
		m.EventData = []byte(d.EventData)
	}
	if d.Amount != nil {
		m.Amount = decimal.NullDecimal{Decimal: *d.Amount, Valid: true}
	}
	return m, nil
}

// ToDomainEconomicEvent converts a model EconomicEvent to a domain EconomicEvent
func ToDomainEconomicEvent(m models.EconomicEvent) (domain.EconomicEvent, error) {
	d := domain.EconomicEvent{
		EventID:        m.EventID,
		TenantID:       m.TenantID,
		DocumentID:     m.DocumentID,
		EventType:      domain.EventType(lower(m.EventType)),
		Description:    m.Description,
		EventDate:      m.EventDate,
		CurrencyCode:   fromNullString(m.CurrencyCode),
		IsReversal:     m.IsReversal,
		ReversedFromID: fromNullString(m.ReversedFromID),
		ReversalID:     fromNullString(m.ReversalID),
		CreatedAt:      m.CreatedAt,
		CreatedBy:      m.CreatedBy,
	}
	if len(m.EventData) > 0 {
		d.EventData = json.RawMessage(m.EventData)
	}
	if m.Amount.Valid {
		amount := m.Amount.Decimal
		d.Amount = &amount
	}
	if len(m.AuditContext) > 0 {
		if err := json.Unmarshal(m.AuditContext, &d.AuditContext); err != nil {
			return domain.EconomicEvent{}, fmt.Errorf("failed to decode audit context of event %s: %w", m.EventID, err)
		}
	}
	return d, nil
}

// ToModelEventType renders an event type the way the economic_events table stores it.
func ToModelEventType(t domain.EventType) string {
	return upper(t)
}
