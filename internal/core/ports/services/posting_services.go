package services

import (
	"context"

	"github.com/SscSPs/posting_spine/internal/core/domain"
)

// PostingReaderSvc defines read operations on ledger postings.
type PostingReaderSvc interface {
	GetPostingsByEvent(ctx context.Context, tenantID, eventID string) ([]domain.LedgerPosting, error)
	GetPostingsByBatch(ctx context.Context, tenantID, batchID string) ([]domain.LedgerPosting, error)
	GetPostingsByAccount(ctx context.Context, tenantID, accountID string, filter domain.PostingFilter) ([]domain.LedgerPosting, *string, error)

	// ValidateBatchBalance recomputes a stored batch's totals independently of the write path.
	ValidateBatchBalance(ctx context.Context, tenantID, batchID string) (*domain.BatchBalance, error)
}

// PostingWriterSvc creates balanced posting batches.
type PostingWriterSvc interface {
	// CreatePostings validates balance before writing anything and inserts the whole batch in one transaction.
	CreatePostings(ctx context.Context, input CreatePostingsInput) (*domain.PostingResult, error)
}

// PostingSvcFacade combines all posting service interfaces
type PostingSvcFacade interface {
	PostingReaderSvc
	PostingWriterSvc
}

// PostingSpineSvc turns an approved document into an event and a balanced batch atomically.
type PostingSpineSvc interface {
	PostDocument(ctx context.Context, input PostDocumentInput) (*domain.PostDocumentResult, error)
}
