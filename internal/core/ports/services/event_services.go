package services

import (
	"context"

	"github.com/SscSPs/posting_spine/internal/core/domain"
)

// EventReaderSvc defines read operations on the economic event log. None of them mutate.
type EventReaderSvc interface {
	GetEventByID(ctx context.Context, tenantID, eventID string) (*domain.EconomicEvent, error)
	GetEventsByDocument(ctx context.Context, tenantID, documentID string) ([]domain.EconomicEvent, error)
	GetEventsByTenant(ctx context.Context, tenantID string, filter domain.EventFilter) ([]domain.EconomicEvent, *string, error)

	// GetReversalChain returns the original event followed by its reversals, oldest first.
	// Given a reversal it resolves the original first.
	GetReversalChain(ctx context.Context, tenantID, eventID string) ([]domain.EconomicEvent, error)
}

// EventWriterSvc appends to the event log.
type EventWriterSvc interface {
	CreateEvent(ctx context.Context, input CreateEventInput) (*domain.EconomicEvent, error)
}

// EventImmutabilitySvc checks that a stored event did not change.
type EventImmutabilitySvc interface {
	// ValidateEventImmutability returns ErrConflict when after differs from before in
	// anything but the one-time reversal link.
	ValidateEventImmutability(before, after domain.EconomicEvent) error
}

// EventSvcFacade combines all event service interfaces
type EventSvcFacade interface {
	EventReaderSvc
	EventWriterSvc
	EventImmutabilitySvc
}
