package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	portsrepo "github.com/SscSPs/posting_spine/internal/core/ports/repositories"
	"github.com/SscSPs/posting_spine/internal/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTxManager runs units of work inside one database transaction.
type PgxTxManager struct {
	pool *pgxpool.Pool
}

func newPgxTxManager(pool *pgxpool.Pool) *PgxTxManager {
	return &PgxTxManager{pool: pool}
}

var _ portsrepo.TransactionManager = (*PgxTxManager)(nil)

// txRepositories binds every repository to the same pgx.Tx.
type txRepositories struct {
	documents *PgxDocumentRepository
	events    *PgxEventRepository
	postings  *PgxPostingRepository
	accounts  *PgxAccountRepository
}

func newTxRepositories(tx pgx.Tx) *txRepositories {
	return &txRepositories{
		documents: newPgxDocumentRepository(tx),
		events:    newPgxEventRepository(tx),
		postings:  newPgxPostingRepository(tx),
		accounts:  newPgxAccountRepository(tx),
	}
}

func (t *txRepositories) Documents() portsrepo.DocumentRepositoryFacade     { return t.documents }
func (t *txRepositories) Events() portsrepo.EconomicEventRepositoryFacade   { return t.events }
func (t *txRepositories) Postings() portsrepo.LedgerPostingRepositoryFacade { return t.postings }
func (t *txRepositories) Accounts() portsrepo.AccountReader                 { return t.accounts }

// WithTx commits when fn returns nil and rolls back otherwise. fn's error is
// returned unchanged so callers can match it with errors.Is.
func (m *PgxTxManager) WithTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to roll back transaction", slog.String("error", rbErr.Error()))
		}
	}()

	if err := fn(ctx, newTxRepositories(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", fmt.Errorf("%w: %v", apperrors.ErrInternal, err))
	}
	return nil
}
