package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	portsrepo "github.com/SscSPs/posting_spine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/posting_spine/internal/core/ports/services"
	"github.com/SscSPs/posting_spine/internal/utils/money"
	"github.com/google/uuid"
)

// eventService is the append-only economic event log.
type eventService struct {
	BaseService
	eventRepo    portsrepo.EconomicEventRepositoryFacade
	documentRepo portsrepo.DocumentReader
	txManager    portsrepo.TransactionManager
}

// NewEventService creates a new economic event service.
func NewEventService(eventRepo portsrepo.EconomicEventRepositoryFacade, documentRepo portsrepo.DocumentReader, txManager portsrepo.TransactionManager) portssvc.EventSvcFacade {
	return &eventService{eventRepo: eventRepo, documentRepo: documentRepo, txManager: txManager}
}

var _ portssvc.EventSvcFacade = (*eventService)(nil)

// insertEvent validates input and appends one event through writer, which may be
// bound to an open transaction.
func insertEvent(ctx context.Context, writer portsrepo.EconomicEventWriter, input portssvc.CreateEventInput) (*domain.EconomicEvent, error) {
	switch {
	case input.TenantID == "" || input.DocumentID == "":
		return nil, fmt.Errorf("%w: tenant and document are required", apperrors.ErrValidation)
	case !input.EventType.IsValid():
		return nil, fmt.Errorf("%w: unknown event type %q", apperrors.ErrValidation, input.EventType)
	case input.Amount != nil && input.Amount.IsNegative():
		return nil, fmt.Errorf("%w: event amount must not be negative", apperrors.ErrValidation)
	}

	now := timeNow()
	eventDate := input.EventDate
	if eventDate.IsZero() {
		eventDate = now
	}
	event := domain.EconomicEvent{
		EventID:        uuid.NewString(),
		TenantID:       input.TenantID,
		DocumentID:     input.DocumentID,
		EventType:      input.EventType,
		Description:    strings.TrimSpace(input.Description),
		EventDate:      eventDate,
		CurrencyCode:   input.CurrencyCode,
		EventData:      input.EventData,
		AuditContext:   input.AuditContext,
		IsReversal:     input.ReversedFromID != nil,
		ReversedFromID: input.ReversedFromID,
		CreatedAt:      now,
		CreatedBy:      input.UserID,
	}
	if input.Amount != nil {
		amount := money.Normalize(*input.Amount)
		event.Amount = &amount
	}

	stored, err := writer.InsertEvent(ctx, event)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, apperrors.ErrEventCreationFailed
	}
	return stored, nil
}

// reversalChain resolves eventID to its original and returns the original followed
// by every reversal of it, oldest first.
func reversalChain(ctx context.Context, reader portsrepo.EconomicEventReader, tenantID, eventID string) ([]domain.EconomicEvent, error) {
	event, err := reader.FindEventByID(ctx, tenantID, eventID)
	if err != nil {
		return nil, err
	}
	original := event
	if event.IsReversal && event.ReversedFromID != nil {
		original, err = reader.FindEventByID(ctx, tenantID, *event.ReversedFromID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve original of reversal %s: %w", eventID, err)
		}
	}
	reversals, err := reader.FindReversalsOf(ctx, tenantID, original.EventID)
	if err != nil {
		return nil, err
	}
	return append([]domain.EconomicEvent{*original}, reversals...), nil
}

// insertLinkedReversal appends a reversal event and sets the reversal link of its
// original in the same transaction, keeping the one-to-one pairing.
func insertLinkedReversal(ctx context.Context, repos portsrepo.TxRepositories, input portssvc.CreateEventInput) (*domain.EconomicEvent, error) {
	original, err := repos.Events().FindEventByID(ctx, input.TenantID, *input.ReversedFromID)
	if err != nil {
		return nil, fmt.Errorf("reversed-from event %s: %w", *input.ReversedFromID, err)
	}
	if original.IsReversal {
		return nil, fmt.Errorf("%w: event %s", apperrors.ErrCannotReverseReversal, original.EventID)
	}
	if original.ReversalID != nil {
		return nil, fmt.Errorf("%w: event %s was reversed by %s", apperrors.ErrAlreadyReversed, original.EventID, *original.ReversalID)
	}
	event, err := insertEvent(ctx, repos.Events(), input)
	if err != nil {
		return nil, err
	}
	if err := repos.Events().LinkEventReversal(ctx, input.TenantID, original.EventID, event.EventID); err != nil {
		return nil, fmt.Errorf("failed to link event reversal: %w", err)
	}
	return event, nil
}

func (s *eventService) CreateEvent(ctx context.Context, input portssvc.CreateEventInput) (*domain.EconomicEvent, error) {
	if _, err := s.documentRepo.FindDocumentByID(ctx, input.TenantID, input.DocumentID); err != nil {
		return nil, fmt.Errorf("document %s: %w", input.DocumentID, err)
	}

	var event *domain.EconomicEvent
	var err error
	if input.ReversedFromID == nil {
		event, err = insertEvent(ctx, s.eventRepo, input)
	} else {
		err = s.txManager.WithTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
			var err error
			event, err = insertLinkedReversal(ctx, repos, input)
			return err
		})
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to create economic event",
			slog.String("document_id", input.DocumentID),
			slog.String("tenant_id", input.TenantID))
		return nil, err
	}

	s.LogInfo(ctx, "Economic event created",
		slog.String("event_id", event.EventID),
		slog.String("event_type", string(event.EventType)),
		slog.Bool("is_reversal", event.IsReversal))
	return event, nil
}

func (s *eventService) GetEventByID(ctx context.Context, tenantID, eventID string) (*domain.EconomicEvent, error) {
	event, err := s.eventRepo.FindEventByID(ctx, tenantID, eventID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find event", slog.String("event_id", eventID))
		}
		return nil, err
	}
	return event, nil
}

func (s *eventService) GetEventsByDocument(ctx context.Context, tenantID, documentID string) ([]domain.EconomicEvent, error) {
	events, err := s.eventRepo.FindEventsByDocument(ctx, tenantID, documentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list document events", slog.String("document_id", documentID))
		return nil, err
	}
	if events == nil {
		return []domain.EconomicEvent{}, nil
	}
	return events, nil
}

func (s *eventService) GetEventsByTenant(ctx context.Context, tenantID string, filter domain.EventFilter) ([]domain.EconomicEvent, *string, error) {
	for _, t := range filter.EventTypes {
		if !t.IsValid() {
			return nil, nil, fmt.Errorf("%w: unknown event type %q", apperrors.ErrValidation, t)
		}
	}
	if filter.Dates.From != nil && filter.Dates.To != nil && filter.Dates.From.After(*filter.Dates.To) {
		return nil, nil, fmt.Errorf("%w: from must not be after to", apperrors.ErrValidation)
	}

	events, next, err := s.eventRepo.ListEventsByTenant(ctx, tenantID, filter)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list events", slog.String("tenant_id", tenantID))
		}
		return nil, nil, err
	}
	if events == nil {
		events = []domain.EconomicEvent{}
	}
	return events, next, nil
}

func (s *eventService) GetReversalChain(ctx context.Context, tenantID, eventID string) ([]domain.EconomicEvent, error) {
	chain, err := reversalChain(ctx, s.eventRepo, tenantID, eventID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to build reversal chain", slog.String("event_id", eventID))
		}
		return nil, err
	}
	return chain, nil
}

// ValidateEventImmutability compares two snapshots of one event. Only the reversal
// link may differ, and only by going from unset to set.
func (s *eventService) ValidateEventImmutability(before, after domain.EconomicEvent) error {
	if !before.SameEconomicFacts(after) {
		return fmt.Errorf("%w: economic event %s was modified", apperrors.ErrConflict, before.EventID)
	}
	if before.ReversalID != nil && (after.ReversalID == nil || *after.ReversalID != *before.ReversalID) {
		return fmt.Errorf("%w: reversal link of event %s was changed", apperrors.ErrConflict, before.EventID)
	}
	return nil
}
