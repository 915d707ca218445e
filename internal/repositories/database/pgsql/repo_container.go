package pgsql

import (
	portsrepo "github.com/SscSPs/posting_spine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(dbPool),
		DocumentRepo:  newPgxDocumentRepository(dbPool),
		EventRepo:     newPgxEventRepository(dbPool),
		PostingRepo:   newPgxPostingRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
		TxManager:     newPgxTxManager(dbPool),
	}
}
