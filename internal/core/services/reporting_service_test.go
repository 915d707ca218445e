package services_test

import (
	"testing"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	portssvc "github.com/SscSPs/posting_spine/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	f        *ledgerFixture
	invoice  *domain.PostDocumentResult
	rentBill *domain.PostDocumentResult
}

// SetupTest books a 100.00 invoice on the 5th, 30.00 of rent paid in cash on the
// 6th, and reverses the invoice on the 9th.
func (suite *ReportingServiceTestSuite) SetupTest() {
	t := suite.T()
	f := newLedgerFixture(t)
	suite.f = f
	suite.invoice = f.postInvoice(t, 5)

	bill := f.document(t, domain.DocumentBill, domain.StateApproved)
	input := f.postInput(bill, []domain.PostingLine{
		{AccountID: f.expense.AccountID, Direction: domain.Debit, Amount: amount("30")},
		{AccountID: f.cash.AccountID, Direction: domain.Credit, Amount: amount("30")},
	}, day(6))
	input.EventType = domain.EventExpense
	input.Description = "March rent"
	var err error
	suite.rentBill, err = f.svc.PostingSpine.PostDocument(f.ctx, input)
	suite.Require().NoError(err)

	_, err = f.svc.Reversal.CreateDocumentReversal(f.ctx, portssvc.DocumentReversalInput{
		TenantID:     f.tenantID,
		DocumentID:   suite.invoice.Document.DocumentID,
		Reason:       "duplicate entry",
		ReversalDate: day(9),
		UserID:       f.userID,
	})
	suite.Require().NoError(err)
}

func (suite *ReportingServiceTestSuite) balances(tb *domain.TrialBalance) map[string]string {
	out := make(map[string]string, len(tb.Rows))
	for _, r := range tb.Rows {
		out[r.AccountCode] = r.Balance.StringFixed(2)
	}
	return out
}

func (suite *ReportingServiceTestSuite) TestTrialBalanceBeforeAndAfterReversal() {
	before, err := suite.f.svc.Reporting.GetTrialBalance(suite.f.ctx, suite.f.tenantID, day(6))
	suite.Require().NoError(err)
	suite.True(before.IsBalanced)
	suite.Equal("130.0000", before.TotalDebits.StringFixed(4))
	suite.Equal("130.0000", before.TotalCredits.StringFixed(4))
	suite.Equal(map[string]string{
		"1000": "-30.00",
		"1100": "100.00",
		"4000": "100.00",
		"5000": "30.00",
	}, suite.balances(before))

	after, err := suite.f.svc.Reporting.GetTrialBalance(suite.f.ctx, suite.f.tenantID, day(31))
	suite.Require().NoError(err)
	suite.True(after.IsBalanced)
	suite.Equal("0.00", suite.balances(after)["1100"])
	suite.Equal("0.00", suite.balances(after)["4000"])
	suite.Equal("30.00", suite.balances(after)["5000"])
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement() {
	report, err := suite.f.svc.Reporting.GetIncomeStatement(suite.f.ctx, suite.f.tenantID, day(1), day(8))
	suite.Require().NoError(err)
	suite.Equal("100.0000", report.TotalRevenue.StringFixed(4))
	suite.Equal("30.0000", report.TotalExpenses.StringFixed(4))
	suite.Equal("70.0000", report.NetIncome.StringFixed(4))
	suite.Len(report.Revenue, 1)
	suite.Len(report.Expenses, 1)

	_, err = suite.f.svc.Reporting.GetIncomeStatement(suite.f.ctx, suite.f.tenantID, day(8), day(1))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet() {
	report, err := suite.f.svc.Reporting.GetBalanceSheet(suite.f.ctx, suite.f.tenantID, day(8))
	suite.Require().NoError(err)
	suite.Equal("70.0000", report.TotalAssets.StringFixed(4))
	suite.Equal("0.0000", report.TotalLiabilities.StringFixed(4))
	suite.Equal("70.0000", report.RetainedEarnings.StringFixed(4))
	suite.Equal("70.0000", report.TotalEquity.StringFixed(4))
	suite.True(report.IsBalanced)

	report, err = suite.f.svc.Reporting.GetBalanceSheet(suite.f.ctx, suite.f.tenantID, day(31))
	suite.Require().NoError(err)
	suite.Equal("-30.0000", report.TotalAssets.StringFixed(4))
	suite.True(report.IsBalanced)
}

func (suite *ReportingServiceTestSuite) TestAccountLedgerRunningBalance() {
	from, to := day(6), day(31)
	ledger, err := suite.f.svc.Reporting.GetAccountLedger(suite.f.ctx, suite.f.tenantID, suite.f.receivable.AccountID, domain.DateRange{From: &from, To: &to})
	suite.Require().NoError(err)
	suite.Require().Len(ledger.Entries, 1)
	suite.True(ledger.Entries[0].Posting.IsReversal)
	suite.Equal("0.0000", ledger.Entries[0].RunningBalance.StringFixed(4))
	suite.Equal("0.0000", ledger.ClosingBalance.StringFixed(4))

	ledger, err = suite.f.svc.Reporting.GetAccountLedger(suite.f.ctx, suite.f.tenantID, suite.f.receivable.AccountID, domain.DateRange{})
	suite.Require().NoError(err)
	suite.Require().Len(ledger.Entries, 2)
	suite.Equal("100.0000", ledger.Entries[0].RunningBalance.StringFixed(4))
	suite.Equal("0.0000", ledger.Entries[1].RunningBalance.StringFixed(4))

	_, err = suite.f.svc.Reporting.GetAccountLedger(suite.f.ctx, suite.f.tenantID, uuid.NewString(), domain.DateRange{})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReportingServiceTestSuite) TestVerifyBalancedBooks() {
	result, err := suite.f.svc.Reporting.VerifyBalancedBooks(suite.f.ctx, suite.f.tenantID, domain.DateRange{})
	suite.Require().NoError(err)
	suite.True(result.IsBalanced)
	suite.Equal(3, result.BatchCount)
	suite.Equal("0.0000", result.Difference.StringFixed(4))
	suite.NotNil(result.UnbalancedBatches)
	suite.Empty(result.UnbalancedBatches)

	from := day(7)
	result, err = suite.f.svc.Reporting.VerifyBalancedBooks(suite.f.ctx, suite.f.tenantID, domain.DateRange{From: &from})
	suite.Require().NoError(err)
	suite.Equal(1, result.BatchCount)
}

func (suite *ReportingServiceTestSuite) TestEventHistoryAndDocumentPostings() {
	docID := suite.invoice.Document.DocumentID
	history, err := suite.f.svc.Reporting.GetEventHistory(suite.f.ctx, suite.f.tenantID, docID)
	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.False(history[0].IsReversal)
	suite.True(history[1].IsReversal)

	postings, err := suite.f.svc.Reporting.GetPostingsByDocument(suite.f.ctx, suite.f.tenantID, docID)
	suite.Require().NoError(err)
	suite.Require().Len(postings, 4)
	suite.Equal(history[0].EventID, postings[0].EventID)
	suite.Equal(history[1].EventID, postings[3].EventID)

	_, err = suite.f.svc.Reporting.GetEventHistory(suite.f.ctx, suite.f.tenantID, uuid.NewString())
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReportingServiceTestSuite) TestTenantsAreIsolated() {
	other := newLedgerFixture(suite.T())
	tb, err := suite.f.svc.Reporting.GetTrialBalance(suite.f.ctx, other.tenantID, day(31))
	suite.Require().NoError(err)
	suite.Empty(tb.Rows)
	suite.True(tb.IsBalanced)
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
