package services_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostDocument_PostsBalancedInvoice(t *testing.T) {
	f := newLedgerFixture(t)
	doc := f.document(t, domain.DocumentInvoice, domain.StateApproved)

	result, err := f.svc.PostingSpine.PostDocument(f.ctx, f.postInput(doc, f.invoiceLines("100.00", "100.00"), day(5)))
	require.NoError(t, err)

	assert.Equal(t, domain.StatePosted, result.Document.State)
	assert.True(t, result.IsBalanced)
	require.Len(t, result.Postings, 2)
	for i, p := range result.Postings {
		assert.Equal(t, result.BatchID, p.BatchID)
		assert.Equal(t, result.Event.EventID, p.EventID)
		assert.Equal(t, i+1, p.LineNo)
		assert.Equal(t, "100.0000", p.Amount.StringFixed(4))
		assert.Equal(t, "USD", p.CurrencyCode)
		assert.True(t, p.PostingDate.Equal(day(5)))
		assert.False(t, p.IsReversal)
	}
	assert.Equal(t, domain.Debit, result.Postings[0].Direction)
	assert.Equal(t, domain.Credit, result.Postings[1].Direction)

	event := result.Event
	assert.Equal(t, doc.DocumentID, event.DocumentID)
	assert.Equal(t, domain.EventRevenue, event.EventType)
	require.NotNil(t, event.Amount)
	assert.Equal(t, "100.0000", event.Amount.StringFixed(4))
	assert.False(t, event.IsReversal)
	assert.Equal(t, "post", event.AuditContext.What.Action)
	assert.Equal(t, "invoice", event.AuditContext.What.DocumentType)
	assert.Equal(t, f.userID, event.AuditContext.Who.ActorID)
	assert.Equal(t, "billing-ui", event.AuditContext.Where.System)
	assert.Equal(t, "monthly invoice", event.AuditContext.Why.Reason)
	assert.Equal(t, doc.DocumentID, event.AuditContext.Which.ResourceID)
	assert.Equal(t, "UTC", event.AuditContext.When.Timezone)

	stored, err := f.svc.Document.GetDocument(f.ctx, f.tenantID, doc.DocumentID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatePosted, stored.State)

	balance, err := f.svc.Posting.ValidateBatchBalance(f.ctx, f.tenantID, result.BatchID)
	require.NoError(t, err)
	assert.True(t, balance.IsBalanced)
	assert.Equal(t, 2, balance.LineCount)
}

func TestPostDocument_AuditActorIsAuthenticatedUser(t *testing.T) {
	f := newLedgerFixture(t)
	doc := f.document(t, domain.DocumentInvoice, domain.StateApproved)
	input := f.postInput(doc, f.invoiceLines("100.00", "100.00"), day(5))
	input.AuditContext.Who = domain.AuditWho{ActorID: "ceo", ActorRole: "approver", ActorName: "Jane"}

	result, err := f.svc.PostingSpine.PostDocument(f.ctx, input)
	require.NoError(t, err)

	who := result.Event.AuditContext.Who
	assert.Equal(t, f.userID, who.ActorID)
	assert.Equal(t, f.userID, result.Event.CreatedBy)
	assert.Equal(t, "approver", who.ActorRole)
	assert.Equal(t, "Jane", who.ActorName)
}

func TestPostDocument_RejectsDraftWithoutWriting(t *testing.T) {
	f := newLedgerFixture(t)
	doc := f.document(t, domain.DocumentInvoice, domain.StateDraft)

	result, err := f.svc.PostingSpine.PostDocument(f.ctx, f.postInput(doc, f.invoiceLines("100.00", "100.00"), day(5)))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrInvalidDocumentState)
	var stateErr *apperrors.InvalidDocumentStateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, "draft", stateErr.Current)
	assert.Equal(t, "approved", stateErr.Required)

	assert.Empty(t, f.eventsOf(t, doc.DocumentID))
	assert.Empty(t, f.postingsOn(t, f.receivable.AccountID))
	stored, err := f.svc.Document.GetDocument(f.ctx, f.tenantID, doc.DocumentID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateDraft, stored.State)
}

func TestPostDocument_RejectsUnbalancedLines(t *testing.T) {
	f := newLedgerFixture(t)
	doc := f.document(t, domain.DocumentInvoice, domain.StateApproved)

	result, err := f.svc.PostingSpine.PostDocument(f.ctx, f.postInput(doc, f.invoiceLines("100.00", "99.99"), day(5)))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrUnbalancedPostings)
	var unbalanced *apperrors.UnbalancedPostingsError
	require.ErrorAs(t, err, &unbalanced)
	assert.Equal(t, "100.0000", unbalanced.Debits)
	assert.Equal(t, "99.9900", unbalanced.Credits)
	assert.Equal(t, "0.0100", unbalanced.Difference)

	assert.Empty(t, f.eventsOf(t, doc.DocumentID))
	assert.Empty(t, f.postingsOn(t, f.receivable.AccountID))
	assert.Empty(t, f.postingsOn(t, f.revenue.AccountID))
	stored, err := f.svc.Document.GetDocument(f.ctx, f.tenantID, doc.DocumentID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateApproved, stored.State)
}

func TestPostDocument_RejectsSecondPost(t *testing.T) {
	f := newLedgerFixture(t)
	first := f.postInvoice(t, 5)

	doc := first.Document
	_, err := f.svc.PostingSpine.PostDocument(f.ctx, f.postInput(&doc, f.invoiceLines("100.00", "100.00"), day(6)))

	assert.ErrorIs(t, err, apperrors.ErrAlreadyPosted)
	assert.ErrorIs(t, err, apperrors.ErrInvalidDocumentState)
	assert.Len(t, f.eventsOf(t, doc.DocumentID), 1)
}

func TestPostDocument_RollsBackWhenAccountIsMissing(t *testing.T) {
	f := newLedgerFixture(t)
	doc := f.document(t, domain.DocumentInvoice, domain.StateApproved)
	lines := []domain.PostingLine{
		{AccountID: f.receivable.AccountID, Direction: domain.Debit, Amount: amount("50")},
		{AccountID: uuid.NewString(), Direction: domain.Credit, Amount: amount("50")},
	}

	_, err := f.svc.PostingSpine.PostDocument(f.ctx, f.postInput(doc, lines, day(5)))

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	// The event was written before the postings failed; the rollback removes it.
	assert.Empty(t, f.eventsOf(t, doc.DocumentID))
	stored, err := f.svc.Document.GetDocument(f.ctx, f.tenantID, doc.DocumentID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateApproved, stored.State)
}

func TestPostDocument_RejectsInvalidLines(t *testing.T) {
	f := newLedgerFixture(t)
	doc := f.document(t, domain.DocumentInvoice, domain.StateApproved)

	testCases := []struct {
		name    string
		lines   []domain.PostingLine
		wantErr error
	}{
		{name: "empty set", lines: nil, wantErr: apperrors.ErrEmptyPostingSet},
		{
			name: "zero amount",
			lines: []domain.PostingLine{
				{AccountID: f.receivable.AccountID, Direction: domain.Debit, Amount: amount("0")},
				{AccountID: f.revenue.AccountID, Direction: domain.Credit, Amount: amount("0")},
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "bad direction",
			lines: []domain.PostingLine{
				{AccountID: f.receivable.AccountID, Direction: domain.Direction("sideways"), Amount: amount("1")},
			},
			wantErr: apperrors.ErrValidation,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.PostingSpine.PostDocument(f.ctx, f.postInput(doc, tc.lines, day(5)))
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
	assert.Empty(t, f.eventsOf(t, doc.DocumentID))
}

func TestPostDocument_RejectsCurrencyMismatch(t *testing.T) {
	f := newLedgerFixture(t)
	doc := f.document(t, domain.DocumentInvoice, domain.StateApproved)
	input := f.postInput(doc, f.invoiceLines("10", "10"), day(5))
	input.CurrencyCode = "EUR"

	_, err := f.svc.PostingSpine.PostDocument(f.ctx, input)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Empty(t, f.eventsOf(t, doc.DocumentID))
}

func TestPostDocument_ConcurrentPostsOfOneDocument(t *testing.T) {
	f := newLedgerFixture(t)
	doc := f.document(t, domain.DocumentInvoice, domain.StateApproved)

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.PostingSpine.PostDocument(f.ctx, f.postInput(doc, f.invoiceLines("100.00", "100.00"), day(5)))
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.True(t, errors.Is(err, apperrors.ErrAlreadyPosted), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, successes)
	assert.Len(t, f.eventsOf(t, doc.DocumentID), 1)
	assert.Len(t, f.postingsOn(t, f.receivable.AccountID), 1)
}
