package models

import "database/sql"

// Document is the stored header of a business document.
type Document struct {
	DocumentID     string         `db:"document_id"`
	TenantID       string         `db:"tenant_id"`
	DocumentType   string         `db:"document_type"`
	State          string         `db:"state"`
	ReversedFromID sql.NullString `db:"reversed_from_id"`
	ReversalID     sql.NullString `db:"reversal_id"` // Reversal event, set once
	AuditFields
}
