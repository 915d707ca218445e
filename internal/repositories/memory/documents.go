package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
)

func (v *view) SaveDocument(_ context.Context, document domain.Document) error {
	return v.write(func(st *state) error {
		if _, ok := st.documents[document.DocumentID]; ok {
			return fmt.Errorf("%w: document with ID %s already exists", apperrors.ErrDuplicate, document.DocumentID)
		}
		st.documents[document.DocumentID] = document
		return nil
	})
}

func (v *view) FindDocumentByID(_ context.Context, tenantID, documentID string) (*domain.Document, error) {
	var found *domain.Document
	v.read(func(st *state) {
		if d, ok := st.documents[documentID]; ok && d.TenantID == tenantID {
			found = &d
		}
	})
	if found == nil {
		return nil, fmt.Errorf("%w: document %s", apperrors.ErrNotFound, documentID)
	}
	return found, nil
}

// FindDocumentByIDForUpdate needs no extra locking: a transaction view already
// holds the store's write lock.
func (v *view) FindDocumentByIDForUpdate(ctx context.Context, tenantID, documentID string) (*domain.Document, error) {
	return v.FindDocumentByID(ctx, tenantID, documentID)
}

func (v *view) UpdateDocumentState(_ context.Context, tenantID, documentID string, newState domain.DocumentState, updatedBy string, updatedAt time.Time) error {
	return v.write(func(st *state) error {
		d, ok := st.documents[documentID]
		if !ok || d.TenantID != tenantID {
			return fmt.Errorf("%w: document %s", apperrors.ErrNotFound, documentID)
		}
		d.State = newState
		d.LastUpdatedAt = updatedAt
		d.LastUpdatedBy = updatedBy
		st.documents[documentID] = d
		return nil
	})
}

func (v *view) LinkDocumentReversal(_ context.Context, tenantID, documentID, reversalID string, updatedBy string, updatedAt time.Time) error {
	return v.write(func(st *state) error {
		d, ok := st.documents[documentID]
		if !ok || d.TenantID != tenantID {
			return fmt.Errorf("%w: document %s", apperrors.ErrNotFound, documentID)
		}
		if d.ReversalID != nil {
			return fmt.Errorf("%w: document %s", apperrors.ErrAlreadyReversed, documentID)
		}
		d.ReversalID = &reversalID
		d.LastUpdatedAt = updatedAt
		d.LastUpdatedBy = updatedBy
		st.documents[documentID] = d
		return nil
	})
}
