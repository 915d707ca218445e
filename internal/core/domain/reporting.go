package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single account in a trial balance report.
// Balance follows the normal-balance rule of the account type.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// TrialBalance is the per-account totals of a tenant as of a date.
type TrialBalance struct {
	AsOf         time.Time         `json:"asOf"`
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebits  decimal.Decimal   `json:"totalDebits"`
	TotalCredits decimal.Decimal   `json:"totalCredits"`
	IsBalanced   bool              `json:"isBalanced"`
}

// AccountAmount represents an account with its net amount for financial reports
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// IncomeStatement lists revenue and expense accounts for a period.
type IncomeStatement struct {
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	Revenue       []AccountAmount `json:"revenue"`
	Expenses      []AccountAmount `json:"expenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}

// BalanceSheetReport represents a balance sheet as of a date. Net income of revenue
// and expense accounts not yet closed is reported as RetainedEarnings inside equity.
type BalanceSheetReport struct {
	AsOf             time.Time       `json:"asOf"`
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	RetainedEarnings decimal.Decimal `json:"retainedEarnings"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	IsBalanced       bool            `json:"isBalanced"`
}

// BooksVerification is the result of a books-level balance check.
type BooksVerification struct {
	TenantID          string          `json:"tenantID"`
	From              *time.Time      `json:"from,omitempty"`
	To                *time.Time      `json:"to,omitempty"`
	TotalDebits       decimal.Decimal `json:"totalDebits"`
	TotalCredits      decimal.Decimal `json:"totalCredits"`
	Difference        decimal.Decimal `json:"difference"`
	BatchCount        int             `json:"batchCount"`
	UnbalancedBatches []BatchBalance  `json:"unbalancedBatches"`
	IsBalanced        bool            `json:"isBalanced"`
	VerifiedAt        time.Time       `json:"verifiedAt"`
}

// AccountLedgerEntry is a posting with the account balance after it.
type AccountLedgerEntry struct {
	Posting        LedgerPosting   `json:"posting"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// AccountLedger is the ordered posting history of one account.
type AccountLedger struct {
	Account        Account              `json:"account"`
	Entries        []AccountLedgerEntry `json:"entries"`
	ClosingBalance decimal.Decimal      `json:"closingBalance"`
	NextToken      *string              `json:"nextToken,omitempty"`
}
