package services

import (
	"context"

	"github.com/SscSPs/posting_spine/internal/core/domain"
)

// DocumentReaderSvc defines read operations for documents.
type DocumentReaderSvc interface {
	GetDocument(ctx context.Context, tenantID, documentID string) (*domain.Document, error)
}

// DocumentStateSvc exposes the document lifecycle state machine.
type DocumentStateSvc interface {
	// CanTransitionTo is a pure lookup in the transition table.
	CanTransitionTo(current, target domain.DocumentState) bool

	// GetAllowedTransitions lists the states reachable from state in one step.
	GetAllowedTransitions(state domain.DocumentState) []domain.DocumentState

	// TransitionDocumentState moves a document along the table. Posting and reversal
	// only happen through the posting spine and the reversal engine.
	TransitionDocumentState(ctx context.Context, tenantID, documentID string, target domain.DocumentState, userID string) (*domain.Document, error)
}

// DocumentWriterSvc defines write operations for documents.
type DocumentWriterSvc interface {
	// CreateDocument saves a new document in the draft state.
	CreateDocument(ctx context.Context, input CreateDocumentInput) (*domain.Document, error)
}

// DocumentSvcFacade combines all document-related service interfaces
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentStateSvc
	DocumentWriterSvc
}
