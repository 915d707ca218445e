package dto

import (
	"time"

	"github.com/SscSPs/posting_spine/internal/core/domain"
	"github.com/SscSPs/posting_spine/internal/utils/money"
)

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID   string             `json:"accountID"`
	AccountCode string             `json:"accountCode"`
	AccountName string             `json:"accountName"`
	AccountType domain.AccountType `json:"accountType"`
	Debit       string             `json:"debit"`
	Credit      string             `json:"credit"`
	Balance     string             `json:"balance"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	AsOf         string                    `json:"asOf"`
	Rows         []TrialBalanceRowResponse `json:"rows"`
	TotalDebits  string                    `json:"totalDebits"`
	TotalCredits string                    `json:"totalCredits"`
	IsBalanced   bool                      `json:"isBalanced"`
}

// AccountAmountResponse represents an account with its amount in a financial report
type AccountAmountResponse struct {
	AccountID string `json:"accountID"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Amount    string `json:"amount"`
}

// IncomeStatementResponse represents the income statement of a period.
type IncomeStatementResponse struct {
	FromDate      string                  `json:"fromDate"`
	ToDate        string                  `json:"toDate"`
	Revenue       []AccountAmountResponse `json:"revenue"`
	Expenses      []AccountAmountResponse `json:"expenses"`
	TotalRevenue  string                  `json:"totalRevenue"`
	TotalExpenses string                  `json:"totalExpenses"`
	NetIncome     string                  `json:"netIncome"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	AsOf             string                  `json:"asOf"`
	Assets           []AccountAmountResponse `json:"assets"`
	Liabilities      []AccountAmountResponse `json:"liabilities"`
	Equity           []AccountAmountResponse `json:"equity"`
	RetainedEarnings string                  `json:"retainedEarnings"`
	TotalAssets      string                  `json:"totalAssets"`
	TotalLiabilities string                  `json:"totalLiabilities"`
	TotalEquity      string                  `json:"totalEquity"`
	IsBalanced       bool                    `json:"isBalanced"`
}

// BooksVerificationResponse is the result of a books-level balance check.
type BooksVerificationResponse struct {
	TenantID          string                 `json:"tenantID"`
	From              *time.Time             `json:"from,omitempty"`
	To                *time.Time             `json:"to,omitempty"`
	TotalDebits       string                 `json:"totalDebits"`
	TotalCredits      string                 `json:"totalCredits"`
	Difference        string                 `json:"difference"`
	BatchCount        int                    `json:"batchCount"`
	UnbalancedBatches []BatchBalanceResponse `json:"unbalancedBatches"`
	IsBalanced        bool                   `json:"isBalanced"`
	VerifiedAt        time.Time              `json:"verifiedAt"`
}

// AccountLedgerEntryResponse is one posting of an account ledger with the balance after it.
type AccountLedgerEntryResponse struct {
	Posting        PostingResponse `json:"posting"`
	RunningBalance string          `json:"runningBalance"`
}

// AccountLedgerResponse is the posting history of one account.
type AccountLedgerResponse struct {
	Account        AccountResponse              `json:"account"`
	Entries        []AccountLedgerEntryResponse `json:"entries"`
	ClosingBalance string                       `json:"closingBalance"`
}

func toAccountAmounts(rows []domain.AccountAmount) []AccountAmountResponse {
	out := make([]AccountAmountResponse, len(rows))
	for i, r := range rows {
		out[i] = AccountAmountResponse{AccountID: r.AccountID, Code: r.Code, Name: r.Name, Amount: money.Format(r.NetAmount)}
	}
	return out
}

// ToTrialBalanceResponse converts a domain trial balance to a DTO response
func ToTrialBalanceResponse(tb *domain.TrialBalance) TrialBalanceResponse {
	res := TrialBalanceResponse{
		AsOf:         tb.AsOf.Format(DateLayout),
		Rows:         make([]TrialBalanceRowResponse, len(tb.Rows)),
		TotalDebits:  money.Format(tb.TotalDebits),
		TotalCredits: money.Format(tb.TotalCredits),
		IsBalanced:   tb.IsBalanced,
	}
	for i, row := range tb.Rows {
		res.Rows[i] = TrialBalanceRowResponse{
			AccountID:   row.AccountID,
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			AccountType: row.AccountType,
			Debit:       money.Format(row.Debit),
			Credit:      money.Format(row.Credit),
			Balance:     money.Format(row.Balance),
		}
	}
	return res
}

// ToIncomeStatementResponse converts a domain income statement to a DTO response
func ToIncomeStatementResponse(is *domain.IncomeStatement) IncomeStatementResponse {
	return IncomeStatementResponse{
		FromDate:      is.From.Format(DateLayout),
		ToDate:        is.To.Format(DateLayout),
		Revenue:       toAccountAmounts(is.Revenue),
		Expenses:      toAccountAmounts(is.Expenses),
		TotalRevenue:  money.Format(is.TotalRevenue),
		TotalExpenses: money.Format(is.TotalExpenses),
		NetIncome:     money.Format(is.NetIncome),
	}
}

// ToBalanceSheetResponse converts a domain balance sheet report to a DTO response
func ToBalanceSheetResponse(bs *domain.BalanceSheetReport) BalanceSheetResponse {
	return BalanceSheetResponse{
		AsOf:             bs.AsOf.Format(DateLayout),
		Assets:           toAccountAmounts(bs.Assets),
		Liabilities:      toAccountAmounts(bs.Liabilities),
		Equity:           toAccountAmounts(bs.Equity),
		RetainedEarnings: money.Format(bs.RetainedEarnings),
		TotalAssets:      money.Format(bs.TotalAssets),
		TotalLiabilities: money.Format(bs.TotalLiabilities),
		TotalEquity:      money.Format(bs.TotalEquity),
		IsBalanced:       bs.IsBalanced,
	}
}

func ToBooksVerificationResponse(v *domain.BooksVerification) BooksVerificationResponse {
	res := BooksVerificationResponse{
		TenantID:          v.TenantID,
		From:              v.From,
		To:                v.To,
		TotalDebits:       money.Format(v.TotalDebits),
		TotalCredits:      money.Format(v.TotalCredits),
		Difference:        money.Format(v.Difference),
		BatchCount:        v.BatchCount,
		UnbalancedBatches: make([]BatchBalanceResponse, len(v.UnbalancedBatches)),
		IsBalanced:        v.IsBalanced,
		VerifiedAt:        v.VerifiedAt,
	}
	for i := range v.UnbalancedBatches {
		res.UnbalancedBatches[i] = ToBatchBalanceResponse(&v.UnbalancedBatches[i])
	}
	return res
}

func ToAccountLedgerResponse(l *domain.AccountLedger) AccountLedgerResponse {
	res := AccountLedgerResponse{
		Account:        ToAccountResponse(&l.Account),
		Entries:        make([]AccountLedgerEntryResponse, len(l.Entries)),
		ClosingBalance: money.Format(l.ClosingBalance),
	}
	for i := range l.Entries {
		res.Entries[i] = AccountLedgerEntryResponse{
			Posting:        ToPostingResponse(&l.Entries[i].Posting),
			RunningBalance: money.Format(l.Entries[i].RunningBalance),
		}
	}
	return res
}

// ReconciliationRunRequest schedules a background books verification. Both dates are optional.
type ReconciliationRunRequest struct {
	From string `json:"from" example:"2024-03-01"`
	To   string `json:"to" example:"2024-03-31"`
}

// DateRange parses the request dates.
func (r ReconciliationRunRequest) DateRange() (domain.DateRange, error) {
	return ParseDateRange(r.From, r.To)
}

// ReconciliationRunResponse carries the ID of the scheduled verification task.
type ReconciliationRunResponse struct {
	TaskID string `json:"taskID"`
}
