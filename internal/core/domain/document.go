package domain

// DocumentType identifies the business document kind.
type DocumentType string

const (
	DocumentInvoice DocumentType = "invoice"
	DocumentBill    DocumentType = "bill"
	DocumentPayment DocumentType = "payment"
	DocumentJournal DocumentType = "journal"
)

// IsValid reports whether t is a known document type.
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentInvoice, DocumentBill, DocumentPayment, DocumentJournal:
		return true
	}
	return false
}

// Document is a business document (invoice, bill, payment, journal) moving through the
// lifecycle states. ReversedFromID and ReversalID are mutually exclusive: a document is
// either a reversal of another document or may itself be reversed, never both.
type Document struct {
	DocumentID     string        `json:"documentID"`
	TenantID       string        `json:"tenantID"`
	DocumentType   DocumentType  `json:"documentType"`
	State          DocumentState `json:"state"`
	ReversedFromID *string       `json:"reversedFromID,omitempty"`
	ReversalID     *string       `json:"reversalID,omitempty"`
	AuditFields
}

// IsReversal reports whether the document was created as the reversal of another one.
func (d Document) IsReversal() bool {
	return d.ReversedFromID != nil
}

// IsReversed reports whether a reversal has been recorded against the document.
func (d Document) IsReversed() bool {
	return d.ReversalID != nil
}
