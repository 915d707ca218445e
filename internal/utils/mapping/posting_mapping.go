package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/posting_spine/internal/core/domain"
	"github.com/SscSPs/posting_spine/internal/models"
)

// ToModelLedgerPosting converts a domain LedgerPosting to a model LedgerPosting
func ToModelLedgerPosting(d domain.LedgerPosting) (models.LedgerPosting, error) {
	m := models.LedgerPosting{
		PostingID:      d.PostingID,
		TenantID:       d.TenantID,
		EventID:        d.EventID,
		BatchID:        d.BatchID,
		LineNo:         d.LineNo,
		AccountID:      d.AccountID,
		Direction:      models.Direction(upper(d.Direction)),
		Amount:         d.Amount,
		CurrencyCode:   d.CurrencyCode,
		PostingDate:    d.PostingDate,
		Description:    d.Description,
		IsReversal:     d.IsReversal,
		ReversedFromID: toNullString(d.ReversedFromID),
		ReversalID:     toNullString(d.ReversalID),
		CreatedAt:      d.CreatedAt,
		CreatedBy:      d.CreatedBy,
	}
	if len(d.Metadata) > 0 {
		metadata, err := json.Marshal(d.Metadata)
		if err != nil {
			return models.LedgerPosting{}, fmt.Errorf("failed to encode metadata of posting %s: %w", d.PostingID, err)
		}
		m.Metadata = metadata
	}
	return m, nil
}

// ToDomainLedgerPosting converts a model LedgerPosting to a domain LedgerPosting
func ToDomainLedgerPosting(m models.LedgerPosting) (domain.LedgerPosting, error) {
	d := domain.LedgerPosting{
		PostingID:      m.PostingID,
		TenantID:       m.TenantID,
		EventID:        m.EventID,
		BatchID:        m.BatchID,
		LineNo:         m.LineNo,
		AccountID:      m.AccountID,
		Direction:      domain.Direction(lower(string(m.Direction))),
		Amount:         m.Amount,
		CurrencyCode:   m.CurrencyCode,
		PostingDate:    m.PostingDate,
		Description:    m.Description,
		IsReversal:     m.IsReversal,
		ReversedFromID: fromNullString(m.ReversedFromID),
		ReversalID:     fromNullString(m.ReversalID),
		CreatedAt:      m.CreatedAt,
		CreatedBy:      m.CreatedBy,
	}
	if len(m.Metadata) > 0 {
		if err := json.Unmarshal(m.Metadata, &d.Metadata); err != nil {
			return domain.LedgerPosting{}, fmt.Errorf("failed to decode metadata of posting %s: %w", m.PostingID, err)
		}
	}
	return d, nil
}
