package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	portsrepo "github.com/SscSPs/posting_spine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/posting_spine/internal/core/ports/services"
	"github.com/google/uuid"
)

// documentService owns the document lifecycle outside posting and reversal.
type documentService struct {
	BaseService
	documentRepo portsrepo.DocumentRepositoryFacade
	txManager    portsrepo.TransactionManager
}

// NewDocumentService creates a new document state service.
func NewDocumentService(documentRepo portsrepo.DocumentRepositoryFacade, txManager portsrepo.TransactionManager) portssvc.DocumentSvcFacade {
	return &documentService{documentRepo: documentRepo, txManager: txManager}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

func (s *documentService) CanTransitionTo(current, target domain.DocumentState) bool {
	return domain.CanTransitionTo(current, target)
}

func (s *documentService) GetAllowedTransitions(state domain.DocumentState) []domain.DocumentState {
	return domain.AllowedTransitions(state)
}

func (s *documentService) GetDocument(ctx context.Context, tenantID, documentID string) (*domain.Document, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, tenantID, documentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find document", slog.String("document_id", documentID))
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) CreateDocument(ctx context.Context, input portssvc.CreateDocumentInput) (*domain.Document, error) {
	if input.TenantID == "" {
		return nil, fmt.Errorf("%w: tenant ID is required", apperrors.ErrValidation)
	}
	if !input.DocumentType.IsValid() {
		return nil, fmt.Errorf("%w: unknown document type %q", apperrors.ErrValidation, input.DocumentType)
	}
	if input.ReversedFromID != nil {
		original, err := s.documentRepo.FindDocumentByID(ctx, input.TenantID, *input.ReversedFromID)
		if err != nil {
			return nil, fmt.Errorf("reversed-from document %s: %w", *input.ReversedFromID, err)
		}
		if original.IsReversal() {
			return nil, fmt.Errorf("%w: document %s", apperrors.ErrCannotReverseReversal, original.DocumentID)
		}
	}

	now := timeNow()
	doc := domain.Document{
		DocumentID:     uuid.NewString(),
		TenantID:       input.TenantID,
		DocumentType:   input.DocumentType,
		State:          domain.StateDraft,
		ReversedFromID: input.ReversedFromID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     input.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: input.UserID,
		},
	}
	if err := s.documentRepo.SaveDocument(ctx, doc); err != nil {
		s.LogError(ctx, err, "Failed to save document", slog.String("tenant_id", input.TenantID))
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	s.LogInfo(ctx, "Document created",
		slog.String("document_id", doc.DocumentID),
		slog.String("document_type", string(doc.DocumentType)),
		slog.String("tenant_id", doc.TenantID))
	return &doc, nil
}

// TransitionDocumentState locks the document, checks the transition table and
// stores the new state. Posted and reversed are refused here: a document only
// reaches them together with its ledger entries.
func (s *documentService) TransitionDocumentState(ctx context.Context, tenantID, documentID string, target domain.DocumentState, userID string) (*domain.Document, error) {
	if !target.IsValid() {
		return nil, fmt.Errorf("%w: unknown document state %q", apperrors.ErrValidation, target)
	}

	var updated *domain.Document
	err := s.txManager.WithTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		doc, err := repos.Documents().FindDocumentByIDForUpdate(ctx, tenantID, documentID)
		if err != nil {
			return err
		}

		transitionErr := &apperrors.InvalidTransitionError{From: string(doc.State), To: string(target)}
		if !domain.CanTransitionTo(doc.State, target) {
			return transitionErr
		}
		if target == domain.StatePosted || target == domain.StateReversed {
			return fmt.Errorf("%w: use the posting or reversal operation", transitionErr)
		}

		now := timeNow()
		if err := repos.Documents().UpdateDocumentState(ctx, tenantID, documentID, target, userID, now); err != nil {
			return err
		}
		doc.State = target
		doc.LastUpdatedAt = now
		doc.LastUpdatedBy = userID
		updated = doc
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidStateTransition) {
			s.LogWarn(ctx, "Rejected document state transition",
				slog.String("document_id", documentID),
				slog.String("target", string(target)),
				slog.String("error", err.Error()))
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to transition document", slog.String("document_id", documentID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Document state changed",
		slog.String("document_id", documentID),
		slog.String("state", string(updated.State)))
	return updated, nil
}
