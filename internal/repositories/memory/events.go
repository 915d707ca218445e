package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	"github.com/SscSPs/posting_spine/internal/utils/pagination"
)

func eventCursor(e domain.EconomicEvent) pagination.Cursor {
	return pagination.Cursor{Date: e.EventDate, CreatedAt: e.CreatedAt, ID: e.EventID}
}

// eventsWhere returns matching events in insertion order, stably sorted by creation time.
func (st *state) eventsWhere(match func(e domain.EconomicEvent) bool) []domain.EconomicEvent {
	var result []domain.EconomicEvent
	for _, id := range st.eventOrder {
		if e := st.events[id]; match(e) {
			result = append(result, e)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result
}

func (v *view) InsertEvent(_ context.Context, event domain.EconomicEvent) (*domain.EconomicEvent, error) {
	err := v.write(func(st *state) error {
		if _, ok := st.events[event.EventID]; ok {
			return fmt.Errorf("%w: event with ID %s already exists", apperrors.ErrDuplicate, event.EventID)
		}
		if event.ReversedFromID != nil {
			for _, e := range st.events {
				if e.ReversedFromID != nil && *e.ReversedFromID == *event.ReversedFromID {
					return fmt.Errorf("%w: event %s", apperrors.ErrAlreadyReversed, *event.ReversedFromID)
				}
			}
		}
		st.events[event.EventID] = event
		st.eventOrder = append(st.eventOrder, event.EventID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	stored := event
	return &stored, nil
}

func (v *view) LinkEventReversal(_ context.Context, tenantID, originalEventID, reversalEventID string) error {
	return v.write(func(st *state) error {
		e, ok := st.events[originalEventID]
		if !ok || e.TenantID != tenantID {
			return fmt.Errorf("%w: event %s", apperrors.ErrNotFound, originalEventID)
		}
		if e.ReversalID != nil {
			return fmt.Errorf("%w: event %s", apperrors.ErrAlreadyReversed, originalEventID)
		}
		e.ReversalID = &reversalEventID
		st.events[originalEventID] = e
		return nil
	})
}

func (v *view) FindEventByID(_ context.Context, tenantID, eventID string) (*domain.EconomicEvent, error) {
	var found *domain.EconomicEvent
	v.read(func(st *state) {
		if e, ok := st.events[eventID]; ok && e.TenantID == tenantID {
			found = &e
		}
	})
	if found == nil {
		return nil, fmt.Errorf("%w: event %s", apperrors.ErrNotFound, eventID)
	}
	return found, nil
}

func (v *view) FindEventsByDocument(_ context.Context, tenantID, documentID string) ([]domain.EconomicEvent, error) {
	var events []domain.EconomicEvent
	v.read(func(st *state) {
		events = st.eventsWhere(func(e domain.EconomicEvent) bool {
			return e.TenantID == tenantID && e.DocumentID == documentID
		})
	})
	return events, nil
}

func (v *view) FindReversalsOf(_ context.Context, tenantID, originalEventID string) ([]domain.EconomicEvent, error) {
	var events []domain.EconomicEvent
	v.read(func(st *state) {
		events = st.eventsWhere(func(e domain.EconomicEvent) bool {
			return e.TenantID == tenantID && e.ReversedFromID != nil && *e.ReversedFromID == originalEventID
		})
	})
	return events, nil
}

func (v *view) ListEventsByTenant(_ context.Context, tenantID string, filter domain.EventFilter) ([]domain.EconomicEvent, *string, error) {
	after, err := decodeToken(filter.NextToken)
	if err != nil {
		return nil, nil, err
	}

	var events []domain.EconomicEvent
	v.read(func(st *state) {
		events = st.eventsWhere(func(e domain.EconomicEvent) bool {
			if e.TenantID != tenantID || !filter.Matches(e) {
				return false
			}
			return after == nil || eventCursor(e).Compare(*after) < 0
		})
	})

	// Newest first.
	sort.SliceStable(events, func(i, j int) bool {
		return eventCursor(events[i]).Compare(eventCursor(events[j])) > 0
	})
	page, next := paginate(events, filter.Limit, eventCursor)
	return page, next, nil
}
