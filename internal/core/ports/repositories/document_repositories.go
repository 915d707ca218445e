package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/posting_spine/internal/core/domain"
)

// DocumentReader defines read operations for documents.
type DocumentReader interface {
	// FindDocumentByID retrieves a document of a tenant. Returns ErrNotFound when absent.
	FindDocumentByID(ctx context.Context, tenantID, documentID string) (*domain.Document, error)
}

// DocumentLocker loads a document and holds a row lock on it until the surrounding
// transaction ends. Outside a transaction it behaves like FindDocumentByID.
type DocumentLocker interface {
	FindDocumentByIDForUpdate(ctx context.Context, tenantID, documentID string) (*domain.Document, error)
}

// DocumentWriter defines write operations for documents. Documents are never deleted.
type DocumentWriter interface {
	// SaveDocument persists a new document.
	SaveDocument(ctx context.Context, document domain.Document) error

	// UpdateDocumentState sets the state and the last-updated audit fields.
	UpdateDocumentState(ctx context.Context, tenantID, documentID string, state domain.DocumentState, updatedBy string, updatedAt time.Time) error

	// LinkDocumentReversal stamps the reversal pointer of a document. It fails with
	// ErrAlreadyReversed when the pointer is already set.
	LinkDocumentReversal(ctx context.Context, tenantID, documentID, reversalID string, updatedBy string, updatedAt time.Time) error
}

// DocumentRepositoryFacade combines all document-related repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentLocker
	DocumentWriter
}
