package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	portsrepo "github.com/SscSPs/posting_spine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/posting_spine/internal/core/ports/services"
	"github.com/SscSPs/posting_spine/internal/utils/accounting"
	"github.com/SscSPs/posting_spine/internal/utils/money"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface. It never writes.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountReader
	documentRepo  portsrepo.DocumentReader
	eventRepo     portsrepo.EconomicEventReader
	postingRepo   portsrepo.LedgerPostingReader
}

// NewReportingService creates a new reporting service over the provider's readers.
func NewReportingService(repos portsrepo.RepositoryProvider) portssvc.ReportingService {
	return &reportingService{
		reportingRepo: repos.ReportingRepo,
		accountRepo:   repos.AccountRepo,
		documentRepo:  repos.DocumentRepo,
		eventRepo:     repos.EventRepo,
		postingRepo:   repos.PostingRepo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

func validateRange(dates domain.DateRange) error {
	if dates.From != nil && dates.To != nil && dates.From.After(*dates.To) {
		return fmt.Errorf("%w: from must not be after to", apperrors.ErrValidation)
	}
	return nil
}

// VerifyBalancedBooks checks the books twice: once as a whole and once batch by batch.
// An unbalanced batch should be impossible, so finding one is logged as an error.
func (s *reportingService) VerifyBalancedBooks(ctx context.Context, tenantID string, dates domain.DateRange) (*domain.BooksVerification, error) {
	if err := validateRange(dates); err != nil {
		return nil, err
	}

	batches, err := s.reportingRepo.GetBatchTotals(ctx, tenantID, dates)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve batch totals", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to retrieve batch totals: %w", err)
	}

	total := accounting.DirectionTotals{Debits: decimal.Zero, Credits: decimal.Zero}
	unbalanced := []domain.BatchBalance{}
	for _, b := range batches {
		batchTotals := accounting.DirectionTotals{Debits: b.TotalDebits, Credits: b.TotalCredits}
		total.Debits = total.Debits.Add(b.TotalDebits)
		total.Credits = total.Credits.Add(b.TotalCredits)
		if !batchTotals.IsBalanced() {
			b.TotalDebits = money.Normalize(b.TotalDebits)
			b.TotalCredits = money.Normalize(b.TotalCredits)
			b.Difference = money.Normalize(batchTotals.Difference())
			unbalanced = append(unbalanced, b)
		}
	}

	result := &domain.BooksVerification{
		TenantID:          tenantID,
		From:              dates.From,
		To:                dates.To,
		TotalDebits:       money.Normalize(total.Debits),
		TotalCredits:      money.Normalize(total.Credits),
		Difference:        money.Normalize(total.Difference()),
		BatchCount:        len(batches),
		UnbalancedBatches: unbalanced,
		IsBalanced:        total.IsBalanced() && len(unbalanced) == 0,
		VerifiedAt:        timeNow(),
	}

	if !result.IsBalanced {
		ids := make([]string, len(unbalanced))
		for i, b := range unbalanced {
			ids[i] = b.BatchID
		}
		s.LogError(ctx, total.UnbalancedError(), "Books are not balanced",
			slog.String("tenant_id", tenantID),
			slog.Any("unbalanced_batches", ids))
	} else {
		s.LogInfo(ctx, "Books verified",
			slog.String("tenant_id", tenantID),
			slog.Int("batch_count", result.BatchCount))
	}
	return result, nil
}

// accountRows loads per-account totals and fills in each row's normal balance.
func (s *reportingService) accountRows(ctx context.Context, tenantID string, dates domain.DateRange) ([]domain.TrialBalanceRow, error) {
	rows, err := s.reportingRepo.GetAccountTotals(ctx, tenantID, dates)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve account totals", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to retrieve account totals: %w", err)
	}
	for i := range rows {
		rows[i].Debit = money.Normalize(rows[i].Debit)
		rows[i].Credit = money.Normalize(rows[i].Credit)
		rows[i].Balance = accounting.NormalBalance(rows[i].AccountType, rows[i].Debit, rows[i].Credit)
	}
	return rows, nil
}

// GetTrialBalance generates a trial balance as of a specific date
func (s *reportingService) GetTrialBalance(ctx context.Context, tenantID string, asOf time.Time) (*domain.TrialBalance, error) {
	rows, err := s.accountRows(ctx, tenantID, domain.DateRange{To: &asOf})
	if err != nil {
		return nil, err
	}
	totals := accounting.DirectionTotals{Debits: decimal.Zero, Credits: decimal.Zero}
	for _, r := range rows {
		totals.Debits = totals.Debits.Add(r.Debit)
		totals.Credits = totals.Credits.Add(r.Credit)
	}
	if rows == nil {
		rows = []domain.TrialBalanceRow{}
	}

	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.String("tenant_id", tenantID),
		slog.String("asOf", asOf.Format(time.RFC3339)),
		slog.Int("row_count", len(rows)))
	return &domain.TrialBalance{
		AsOf:         asOf,
		Rows:         rows,
		TotalDebits:  money.Normalize(totals.Debits),
		TotalCredits: money.Normalize(totals.Credits),
		IsBalanced:   totals.IsBalanced(),
	}, nil
}

func toAccountAmount(r domain.TrialBalanceRow) domain.AccountAmount {
	return domain.AccountAmount{AccountID: r.AccountID, Code: r.AccountCode, Name: r.AccountName, NetAmount: r.Balance}
}

// GetIncomeStatement generates an income statement for a period
func (s *reportingService) GetIncomeStatement(ctx context.Context, tenantID string, from, to time.Time) (*domain.IncomeStatement, error) {
	dates := domain.DateRange{From: &from, To: &to}
	if err := validateRange(dates); err != nil {
		return nil, err
	}
	rows, err := s.accountRows(ctx, tenantID, dates)
	if err != nil {
		return nil, err
	}

	report := &domain.IncomeStatement{
		From:          from,
		To:            to,
		Revenue:       []domain.AccountAmount{},
		Expenses:      []domain.AccountAmount{},
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for _, r := range rows {
		switch r.AccountType {
		case domain.Revenue:
			report.Revenue = append(report.Revenue, toAccountAmount(r))
			report.TotalRevenue = report.TotalRevenue.Add(r.Balance)
		case domain.Expense:
			report.Expenses = append(report.Expenses, toAccountAmount(r))
			report.TotalExpenses = report.TotalExpenses.Add(r.Balance)
		}
	}
	report.TotalRevenue = money.Normalize(report.TotalRevenue)
	report.TotalExpenses = money.Normalize(report.TotalExpenses)
	report.NetIncome = money.Normalize(report.TotalRevenue.Sub(report.TotalExpenses))

	s.LogInfo(ctx, "Income statement generated successfully",
		slog.String("tenant_id", tenantID),
		slog.Int("revenue_accounts", len(report.Revenue)),
		slog.Int("expense_accounts", len(report.Expenses)))
	return report, nil
}

// GetBalanceSheet generates a balance sheet as of a specific date. Revenue and
// expense accounts are folded into equity as retained earnings of the period.
func (s *reportingService) GetBalanceSheet(ctx context.Context, tenantID string, asOf time.Time) (*domain.BalanceSheetReport, error) {
	rows, err := s.accountRows(ctx, tenantID, domain.DateRange{To: &asOf})
	if err != nil {
		return nil, err
	}

	report := &domain.BalanceSheetReport{
		AsOf:             asOf,
		Assets:           []domain.AccountAmount{},
		Liabilities:      []domain.AccountAmount{},
		Equity:           []domain.AccountAmount{},
		RetainedEarnings: decimal.Zero,
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}
	for _, r := range rows {
		switch r.AccountType {
		case domain.Asset:
			report.Assets = append(report.Assets, toAccountAmount(r))
			report.TotalAssets = report.TotalAssets.Add(r.Balance)
		case domain.Liability:
			report.Liabilities = append(report.Liabilities, toAccountAmount(r))
			report.TotalLiabilities = report.TotalLiabilities.Add(r.Balance)
		case domain.Equity:
			report.Equity = append(report.Equity, toAccountAmount(r))
			report.TotalEquity = report.TotalEquity.Add(r.Balance)
		case domain.Revenue:
			report.RetainedEarnings = report.RetainedEarnings.Add(r.Balance)
		case domain.Expense:
			report.RetainedEarnings = report.RetainedEarnings.Sub(r.Balance)
		}
	}
	report.RetainedEarnings = money.Normalize(report.RetainedEarnings)
	report.TotalAssets = money.Normalize(report.TotalAssets)
	report.TotalLiabilities = money.Normalize(report.TotalLiabilities)
	report.TotalEquity = money.Normalize(report.TotalEquity.Add(report.RetainedEarnings))
	report.IsBalanced = money.Equal(report.TotalAssets, report.TotalLiabilities.Add(report.TotalEquity))

	s.LogInfo(ctx, "Balance sheet report generated successfully",
		slog.String("tenant_id", tenantID),
		slog.String("asOf", asOf.Format(time.RFC3339)),
		slog.Bool("is_balanced", report.IsBalanced))
	return report, nil
}

// GetAccountLedger lists an account's postings in the range. The running balance
// starts from the account's balance before the range.
func (s *reportingService) GetAccountLedger(ctx context.Context, tenantID, accountID string, dates domain.DateRange) (*domain.AccountLedger, error) {
	if err := validateRange(dates); err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}

	balance := decimal.Zero
	if dates.From != nil {
		debits, credits, err := s.reportingRepo.GetAccountTotalsBefore(ctx, tenantID, accountID, *dates.From)
		if err != nil {
			s.LogError(ctx, err, "Failed to retrieve opening balance", slog.String("account_id", accountID))
			return nil, fmt.Errorf("failed to retrieve opening balance: %w", err)
		}
		balance = accounting.NormalBalance(account.AccountType, debits, credits)
	}

	postings, _, err := s.postingRepo.ListPostingsByAccount(ctx, tenantID, accountID, domain.PostingFilter{Dates: dates})
	if err != nil {
		s.LogError(ctx, err, "Failed to list account postings", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list account postings: %w", err)
	}

	entries := make([]domain.AccountLedgerEntry, len(postings))
	for i, p := range postings {
		balance = money.Normalize(balance.Add(p.SignedAmount(account.AccountType)))
		entries[i] = domain.AccountLedgerEntry{Posting: p, RunningBalance: balance}
	}
	return &domain.AccountLedger{
		Account:        *account,
		Entries:        entries,
		ClosingBalance: money.Normalize(balance),
	}, nil
}

// GetPostingsByDocument returns the postings of every event of the document,
// event by event in creation order and by line number inside each batch.
func (s *reportingService) GetPostingsByDocument(ctx context.Context, tenantID, documentID string) ([]domain.LedgerPosting, error) {
	events, err := s.GetEventHistory(ctx, tenantID, documentID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.EventID
	}
	byEvent, err := s.postingRepo.FindPostingsByEvents(ctx, tenantID, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch postings for document", slog.String("document_id", documentID))
		return nil, fmt.Errorf("failed to fetch postings: %w", err)
	}
	postings := []domain.LedgerPosting{}
	for _, id := range ids {
		postings = append(postings, byEvent[id]...)
	}
	return postings, nil
}

func (s *reportingService) GetEventHistory(ctx context.Context, tenantID, documentID string) ([]domain.EconomicEvent, error) {
	if _, err := s.documentRepo.FindDocumentByID(ctx, tenantID, documentID); err != nil {
		return nil, err
	}
	events, err := s.eventRepo.FindEventsByDocument(ctx, tenantID, documentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch event history", slog.String("document_id", documentID))
		return nil, fmt.Errorf("failed to fetch event history: %w", err)
	}
	if events == nil {
		events = []domain.EconomicEvent{}
	}
	return events, nil
}
