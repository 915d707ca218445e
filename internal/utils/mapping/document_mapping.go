package mapping

import (
	"github.com/SscSPs/posting_spine/internal/core/domain"
	"github.com/SscSPs/posting_spine/internal/models"
)

// ToModelDocument converts a domain Document to a model Document
func ToModelDocument(d domain.Document) models.Document {
	return models.Document{
		DocumentID:     d.DocumentID,
		TenantID:       d.TenantID,
		DocumentType:   upper(d.DocumentType),
		State:          upper(d.State),
		ReversedFromID: toNullString(d.ReversedFromID),
		ReversalID:     toNullString(d.ReversalID),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDocument converts a model Document to a domain Document
func ToDomainDocument(m models.Document) domain.Document {
	return domain.Document{
		DocumentID:     m.DocumentID,
		TenantID:       m.TenantID,
		DocumentType:   domain.DocumentType(lower(m.DocumentType)),
		State:          domain.DocumentState(lower(m.State)),
		ReversedFromID: fromNullString(m.ReversedFromID),
		ReversalID:     fromNullString(m.ReversalID),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDocumentState renders a state the way the documents table stores it.
func ToModelDocumentState(s domain.DocumentState) string {
	return upper(s)
}
