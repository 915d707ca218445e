package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	portssvc "github.com/SscSPs/posting_spine/internal/core/ports/services"
	"github.com/SscSPs/posting_spine/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockEventRepository is a mock type for the EconomicEventRepositoryFacade interface
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) FindEventByID(ctx context.Context, tenantID, eventID string) (*domain.EconomicEvent, error) {
	args := m.Called(ctx, tenantID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EconomicEvent), args.Error(1)
}

func (m *MockEventRepository) FindEventsByDocument(ctx context.Context, tenantID, documentID string) ([]domain.EconomicEvent, error) {
	args := m.Called(ctx, tenantID, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EconomicEvent), args.Error(1)
}

func (m *MockEventRepository) FindReversalsOf(ctx context.Context, tenantID, originalEventID string) ([]domain.EconomicEvent, error) {
	args := m.Called(ctx, tenantID, originalEventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EconomicEvent), args.Error(1)
}

func (m *MockEventRepository) ListEventsByTenant(ctx context.Context, tenantID string, filter domain.EventFilter) ([]domain.EconomicEvent, *string, error) {
	args := m.Called(ctx, tenantID, filter)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.EconomicEvent), next, args.Error(2)
}

func (m *MockEventRepository) InsertEvent(ctx context.Context, event domain.EconomicEvent) (*domain.EconomicEvent, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EconomicEvent), args.Error(1)
}

func (m *MockEventRepository) LinkEventReversal(ctx context.Context, tenantID, originalEventID, reversalEventID string) error {
	args := m.Called(ctx, tenantID, originalEventID, reversalEventID)
	return args.Error(0)
}

// MockDocumentReader is a mock type for the DocumentReader interface
type MockDocumentReader struct {
	mock.Mock
}

func (m *MockDocumentReader) FindDocumentByID(ctx context.Context, tenantID, documentID string) (*domain.Document, error) {
	args := m.Called(ctx, tenantID, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func TestCreateEvent_NoRowReturned(t *testing.T) {
	ctx := context.Background()
	tenantID, documentID := uuid.NewString(), uuid.NewString()
	eventRepo := new(MockEventRepository)
	docRepo := new(MockDocumentReader)
	svc := services.NewEventService(eventRepo, docRepo, nil)

	docRepo.On("FindDocumentByID", ctx, tenantID, documentID).Return(&domain.Document{DocumentID: documentID}, nil).Once()
	eventRepo.On("InsertEvent", ctx, mock.AnythingOfType("domain.EconomicEvent")).Return(nil, nil).Once()

	event, err := svc.CreateEvent(ctx, portssvc.CreateEventInput{
		TenantID:   tenantID,
		DocumentID: documentID,
		EventType:  domain.EventExpense,
	})

	assert.Nil(t, event)
	assert.ErrorIs(t, err, apperrors.ErrEventCreationFailed)
	eventRepo.AssertExpectations(t)
	docRepo.AssertExpectations(t)
}

func TestCreateEvent_NormalizesInput(t *testing.T) {
	ctx := context.Background()
	tenantID, documentID := uuid.NewString(), uuid.NewString()
	eventRepo := new(MockEventRepository)
	docRepo := new(MockDocumentReader)
	svc := services.NewEventService(eventRepo, docRepo, nil)

	docRepo.On("FindDocumentByID", ctx, tenantID, documentID).Return(&domain.Document{DocumentID: documentID}, nil).Once()
	eventRepo.On("InsertEvent", ctx, mock.MatchedBy(func(e domain.EconomicEvent) bool {
		return e.EventID != "" &&
			e.Description == "Office rent" &&
			e.Amount != nil && e.Amount.StringFixed(4) == "1200.1235" &&
			!e.IsReversal &&
			!e.EventDate.IsZero()
	})).Return(&domain.EconomicEvent{EventID: "stored", Description: "Office rent", EventData: json.RawMessage(`{"landlord":"ACME"}`)}, nil).Once()

	raw := amount("1200.12345")
	event, err := svc.CreateEvent(ctx, portssvc.CreateEventInput{
		TenantID:    tenantID,
		DocumentID:  documentID,
		EventType:   domain.EventExpense,
		Description: "  Office rent ",
		Amount:      &raw,
		EventData:   json.RawMessage(`{"landlord":"ACME"}`),
		UserID:      "u1",
	})

	require.NoError(t, err)
	assert.Equal(t, "stored", event.EventID)
	assert.Equal(t, "Office rent", event.Description)
	assert.JSONEq(t, `{"landlord":"ACME"}`, string(event.EventData))
	eventRepo.AssertExpectations(t)
}

func TestCreateEvent_ValidatesBeforeWriting(t *testing.T) {
	f := newLedgerFixture(t)
	doc := f.document(t, domain.DocumentJournal, domain.StateDraft)
	negative := amount("-1")

	testCases := []struct {
		name    string
		input   portssvc.CreateEventInput
		wantErr error
	}{
		{
			name:    "unknown document",
			input:   portssvc.CreateEventInput{TenantID: f.tenantID, DocumentID: uuid.NewString(), EventType: domain.EventAdjustment},
			wantErr: apperrors.ErrNotFound,
		},
		{
			name:    "unknown event type",
			input:   portssvc.CreateEventInput{TenantID: f.tenantID, DocumentID: doc.DocumentID, EventType: domain.EventType("gift")},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "negative amount",
			input:   portssvc.CreateEventInput{TenantID: f.tenantID, DocumentID: doc.DocumentID, EventType: domain.EventAdjustment, Amount: &negative},
			wantErr: apperrors.ErrValidation,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.Event.CreateEvent(f.ctx, tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
	assert.Empty(t, f.eventsOf(t, doc.DocumentID))
}

func TestCreateEvent_ReversalFlagFollowsLink(t *testing.T) {
	f := newLedgerFixture(t)
	doc := f.document(t, domain.DocumentJournal, domain.StateDraft)

	original, err := f.svc.Event.CreateEvent(f.ctx, portssvc.CreateEventInput{
		TenantID:   f.tenantID,
		DocumentID: doc.DocumentID,
		EventType:  domain.EventAdjustment,
		EventDate:  day(1),
	})
	require.NoError(t, err)
	assert.False(t, original.IsReversal)

	reversal, err := f.svc.Event.CreateEvent(f.ctx, portssvc.CreateEventInput{
		TenantID:       f.tenantID,
		DocumentID:     doc.DocumentID,
		EventType:      domain.EventAdjustment,
		EventDate:      day(2),
		ReversedFromID: &original.EventID,
	})
	require.NoError(t, err)
	assert.True(t, reversal.IsReversal)

	linked, err := f.svc.Event.GetEventByID(f.ctx, f.tenantID, original.EventID)
	require.NoError(t, err)
	require.NotNil(t, linked.ReversalID)
	assert.Equal(t, reversal.EventID, *linked.ReversalID)

	eligibility, err := f.svc.Reversal.ValidateReversalEligibility(f.ctx, f.tenantID, original.EventID)
	require.NoError(t, err)
	assert.False(t, eligibility.IsEligible)
	assert.Equal(t, domain.ReasonAlreadyReversed, eligibility.Reason)

	_, err = f.svc.Event.CreateEvent(f.ctx, portssvc.CreateEventInput{
		TenantID:       f.tenantID,
		DocumentID:     doc.DocumentID,
		EventType:      domain.EventAdjustment,
		ReversedFromID: &original.EventID,
	})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyReversed)
	assert.Len(t, f.eventsOf(t, doc.DocumentID), 2)

	_, err = f.svc.Event.CreateEvent(f.ctx, portssvc.CreateEventInput{
		TenantID:       f.tenantID,
		DocumentID:     doc.DocumentID,
		EventType:      domain.EventAdjustment,
		ReversedFromID: &reversal.EventID,
	})
	assert.ErrorIs(t, err, apperrors.ErrCannotReverseReversal)

	chain, err := f.svc.Event.GetReversalChain(f.ctx, f.tenantID, original.EventID)
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, original.EventID, chain[0].EventID)
	assert.Equal(t, reversal.EventID, chain[1].EventID)
}

func TestGetEventsByTenant_FiltersAndPages(t *testing.T) {
	f := newLedgerFixture(t)
	for d := 1; d <= 3; d++ {
		f.postInvoice(t, d)
	}
	doc := f.document(t, domain.DocumentJournal, domain.StateDraft)
	_, err := f.svc.Event.CreateEvent(f.ctx, portssvc.CreateEventInput{
		TenantID:   f.tenantID,
		DocumentID: doc.DocumentID,
		EventType:  domain.EventAdjustment,
		EventDate:  day(2),
	})
	require.NoError(t, err)

	page, next, err := f.svc.Event.GetEventsByTenant(f.ctx, f.tenantID, domain.EventFilter{
		EventTypes: []domain.EventType{domain.EventRevenue},
		Limit:      2,
	})
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.NotNil(t, next)
	assert.True(t, page[0].EventDate.Equal(day(3)))
	assert.True(t, page[1].EventDate.Equal(day(2)))

	rest, next, err := f.svc.Event.GetEventsByTenant(f.ctx, f.tenantID, domain.EventFilter{
		EventTypes: []domain.EventType{domain.EventRevenue},
		Limit:      2,
		NextToken:  next,
	})
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Nil(t, next)
	assert.True(t, rest[0].EventDate.Equal(day(1)))

	from, to := day(2), day(2)
	sameDay, _, err := f.svc.Event.GetEventsByTenant(f.ctx, f.tenantID, domain.EventFilter{Dates: domain.DateRange{From: &from, To: &to}})
	require.NoError(t, err)
	assert.Len(t, sameDay, 2)

	earlier := day(1)
	_, _, err = f.svc.Event.GetEventsByTenant(f.ctx, f.tenantID, domain.EventFilter{Dates: domain.DateRange{From: &to, To: &earlier}})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	bad := "not-a-token"
	_, _, err = f.svc.Event.GetEventsByTenant(f.ctx, f.tenantID, domain.EventFilter{NextToken: &bad})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateEventImmutability(t *testing.T) {
	svc := services.NewEventService(new(MockEventRepository), new(MockDocumentReader), nil)
	amt := amount("10")
	before := domain.EconomicEvent{
		EventID:     "e1",
		TenantID:    "t1",
		DocumentID:  "d1",
		EventType:   domain.EventRevenue,
		Description: "Invoice",
		EventDate:   day(1),
		Amount:      &amt,
		CreatedAt:   day(1),
	}

	linked := before
	reversalID := "e2"
	linked.ReversalID = &reversalID
	assert.NoError(t, svc.ValidateEventImmutability(before, linked))

	edited := before
	edited.Description = "Invoice (edited)"
	assert.ErrorIs(t, svc.ValidateEventImmutability(before, edited), apperrors.ErrConflict)

	relinked := linked
	other := "e3"
	relinked.ReversalID = &other
	assert.ErrorIs(t, svc.ValidateEventImmutability(linked, relinked), apperrors.ErrConflict)
}
