package services

import (
	"context"

	"github.com/SscSPs/posting_spine/internal/core/domain"
)

// ReversalWriterSvc creates offsetting events and postings.
type ReversalWriterSvc interface {
	CreateReversalEntry(ctx context.Context, input ReversalEntryInput) (*domain.ReversalResult, error)
	CreateDocumentReversal(ctx context.Context, input DocumentReversalInput) (*domain.ReversalResult, error)
}

// ReversalReaderSvc answers reversal questions without side effects.
type ReversalReaderSvc interface {
	ValidateReversalEligibility(ctx context.Context, tenantID, eventID string) (*domain.ReversalEligibility, error)
	GetReversalStatus(ctx context.Context, tenantID, documentID string) (*domain.DocumentReversalStatus, error)

	// GetDocumentReversalChain returns the reversal chain of the document's originating event.
	GetDocumentReversalChain(ctx context.Context, tenantID, documentID string) ([]domain.EconomicEvent, error)
}

// ReversalSvcFacade combines all reversal service interfaces
type ReversalSvcFacade interface {
	ReversalWriterSvc
	ReversalReaderSvc
}
