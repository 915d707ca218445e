package repositories

import (
	"context"

	"github.com/SscSPs/posting_spine/internal/core/domain"
)

// LedgerPostingReader defines read operations for ledger postings.
// Results for an event or a batch are ordered by line number.
type LedgerPostingReader interface {
	FindPostingsByEvent(ctx context.Context, tenantID, eventID string) ([]domain.LedgerPosting, error)

	FindPostingsByBatch(ctx context.Context, tenantID, batchID string) ([]domain.LedgerPosting, error)

	// FindPostingsByEvents retrieves postings for several events grouped by event ID.
	FindPostingsByEvents(ctx context.Context, tenantID string, eventIDs []string) (map[string][]domain.LedgerPosting, error)

	// ListPostingsByAccount retrieves a page of postings of one account in posting order
	// (posting date, creation time, posting ID) and the token of the next page.
	ListPostingsByAccount(ctx context.Context, tenantID, accountID string, filter domain.PostingFilter) ([]domain.LedgerPosting, *string, error)
}

// LedgerPostingWriter is the only write path for postings. Batches are inserted
// whole; afterwards only the line-level reversal link may be set.
type LedgerPostingWriter interface {
	// InsertPostings appends every posting of a batch, all or nothing.
	InsertPostings(ctx context.Context, postings []domain.LedgerPosting) error

	// LinkPostingReversal sets reversalId on the original posting if it is still unset.
	LinkPostingReversal(ctx context.Context, tenantID, originalPostingID, reversalPostingID string) error
}

// LedgerPostingRepositoryFacade combines all posting repository interfaces
type LedgerPostingRepositoryFacade interface {
	LedgerPostingReader
	LedgerPostingWriter
}
