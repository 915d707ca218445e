package repositories

import (
	"context"

	"github.com/SscSPs/posting_spine/internal/core/domain"
)

// EconomicEventReader defines read operations for the event log.
type EconomicEventReader interface {
	// FindEventByID retrieves one event. Returns ErrNotFound when absent.
	FindEventByID(ctx context.Context, tenantID, eventID string) (*domain.EconomicEvent, error)

	// FindEventsByDocument retrieves the events of a document ordered by creation time.
	FindEventsByDocument(ctx context.Context, tenantID, documentID string) ([]domain.EconomicEvent, error)

	// FindReversalsOf retrieves the events whose reversedFromId points at originalEventID, oldest first.
	FindReversalsOf(ctx context.Context, tenantID, originalEventID string) ([]domain.EconomicEvent, error)

	// ListEventsByTenant retrieves a page of events, newest event date first, and the token of the next page.
	ListEventsByTenant(ctx context.Context, tenantID string, filter domain.EventFilter) ([]domain.EconomicEvent, *string, error)
}

// EconomicEventWriter is the only write path for events. There is no update
// operation: the reversal link is the single field that may be set after insert.
type EconomicEventWriter interface {
	// InsertEvent appends an event and returns the stored row.
	InsertEvent(ctx context.Context, event domain.EconomicEvent) (*domain.EconomicEvent, error)

	// LinkEventReversal sets reversalId on the original event if it is still unset.
	// Returns ErrAlreadyReversed when a reversal is already linked and ErrNotFound when
	// the original does not exist.
	LinkEventReversal(ctx context.Context, tenantID, originalEventID, reversalEventID string) error
}

// EconomicEventRepositoryFacade combines all event repository interfaces
type EconomicEventRepositoryFacade interface {
	EconomicEventReader
	EconomicEventWriter
}
