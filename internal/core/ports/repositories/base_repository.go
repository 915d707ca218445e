package repositories

import (
	"context"
)

// TxRepositories exposes the repositories bound to one open transaction.
// Everything written through them commits or rolls back together.
type TxRepositories interface {
	Documents() DocumentRepositoryFacade
	Events() EconomicEventRepositoryFacade
	Postings() LedgerPostingRepositoryFacade
	Accounts() AccountReader
}

// TransactionManager runs fn inside a single storage transaction. The transaction
// commits when fn returns nil and rolls back on any error, which is returned unchanged.
type TransactionManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}
