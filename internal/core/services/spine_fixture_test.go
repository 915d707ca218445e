package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/posting_spine/internal/core/domain"
	portsrepo "github.com/SscSPs/posting_spine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/posting_spine/internal/core/ports/services"
	"github.com/SscSPs/posting_spine/internal/core/services"
	"github.com/SscSPs/posting_spine/internal/repositories/memory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// ledgerFixture wires the services over an in-memory store with a small chart of accounts.
type ledgerFixture struct {
	ctx      context.Context
	repos    *portsrepo.RepositoryProvider
	svc      *portssvc.ServiceContainer
	tenantID string
	userID   string

	receivable domain.Account
	cash       domain.Account
	revenue    domain.Account
	expense    domain.Account
	payable    domain.Account
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	repos := memory.NewRepositoryProvider(memory.NewStore())
	f := &ledgerFixture{
		ctx:      context.Background(),
		repos:    repos,
		svc:      services.NewServiceContainer(*repos),
		tenantID: uuid.NewString(),
		userID:   "user-" + uuid.NewString()[:8],
	}
	f.receivable = f.account(t, "1100", "Accounts Receivable", domain.Asset)
	f.cash = f.account(t, "1000", "Cash", domain.Asset)
	f.revenue = f.account(t, "4000", "Revenue", domain.Revenue)
	f.expense = f.account(t, "5000", "Rent Expense", domain.Expense)
	f.payable = f.account(t, "2000", "Accounts Payable", domain.Liability)
	return f
}

func (f *ledgerFixture) account(t *testing.T, code, name string, accountType domain.AccountType) domain.Account {
	t.Helper()
	acc, err := f.svc.Account.CreateAccount(f.ctx, portssvc.CreateAccountInput{
		TenantID:     f.tenantID,
		Code:         code,
		Name:         name,
		AccountType:  accountType,
		CurrencyCode: "USD",
		UserID:       f.userID,
	})
	require.NoError(t, err)
	return *acc
}

// document creates a document and walks it to the requested state through the
// generic transition path.
func (f *ledgerFixture) document(t *testing.T, docType domain.DocumentType, target domain.DocumentState) *domain.Document {
	t.Helper()
	doc, err := f.svc.Document.CreateDocument(f.ctx, portssvc.CreateDocumentInput{
		TenantID:     f.tenantID,
		DocumentType: docType,
		UserID:       f.userID,
	})
	require.NoError(t, err)

	path := map[domain.DocumentState][]domain.DocumentState{
		domain.StateDraft:     nil,
		domain.StateSubmitted: {domain.StateSubmitted},
		domain.StateApproved:  {domain.StateSubmitted, domain.StateApproved},
		domain.StateVoided:    {domain.StateVoided},
	}
	steps, ok := path[target]
	require.True(t, ok, "fixture cannot reach %s", target)
	for _, step := range steps {
		doc, err = f.svc.Document.TransitionDocumentState(f.ctx, f.tenantID, doc.DocumentID, step, f.userID)
		require.NoError(t, err)
	}
	return doc
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func (f *ledgerFixture) invoiceLines(debit, credit string) []domain.PostingLine {
	return []domain.PostingLine{
		{AccountID: f.receivable.AccountID, Direction: domain.Debit, Amount: amount(debit), Description: "Invoice INV-001"},
		{AccountID: f.revenue.AccountID, Direction: domain.Credit, Amount: amount(credit), Description: "Invoice INV-001"},
	}
}

func (f *ledgerFixture) postInput(doc *domain.Document, lines []domain.PostingLine, postingDate time.Time) portssvc.PostDocumentInput {
	return portssvc.PostDocumentInput{
		TenantID:     f.tenantID,
		DocumentID:   doc.DocumentID,
		UserID:       f.userID,
		PostingDate:  postingDate,
		EventType:    domain.EventRevenue,
		Description:  "Invoice INV-001",
		CurrencyCode: "USD",
		Lines:        lines,
		AuditContext: domain.AuditContextInput{
			Where: domain.WhereText("billing-ui"),
			Why:   domain.WhyText("monthly invoice"),
		},
	}
}

// postInvoice posts a 100.00 AR/Revenue invoice on day d.
func (f *ledgerFixture) postInvoice(t *testing.T, d int) *domain.PostDocumentResult {
	t.Helper()
	doc := f.document(t, domain.DocumentInvoice, domain.StateApproved)
	result, err := f.svc.PostingSpine.PostDocument(f.ctx, f.postInput(doc, f.invoiceLines("100.00", "100.00"), day(d)))
	require.NoError(t, err)
	return result
}

func (f *ledgerFixture) eventsOf(t *testing.T, documentID string) []domain.EconomicEvent {
	t.Helper()
	events, err := f.repos.EventRepo.FindEventsByDocument(f.ctx, f.tenantID, documentID)
	require.NoError(t, err)
	return events
}

func (f *ledgerFixture) postingsOn(t *testing.T, accountID string) []domain.LedgerPosting {
	t.Helper()
	postings, _, err := f.repos.PostingRepo.ListPostingsByAccount(f.ctx, f.tenantID, accountID, domain.PostingFilter{})
	require.NoError(t, err)
	return postings
}
