package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	"github.com/SscSPs/posting_spine/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is the part of pgx shared by *pgxpool.Pool and pgx.Tx, so every
// repository runs unchanged against the pool or inside an open transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	db querier
}

const uniqueViolation = "23505"

// reversalIndexes are the partial unique indexes that allow one reversal per original.
var reversalIndexes = map[string]bool{
	"uq_economic_events_reversed_from": true,
	"uq_ledger_postings_reversed_from": true,
}

// mapWriteError turns constraint violations into application errors.
func mapWriteError(err error, what string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if reversalIndexes[pgErr.ConstraintName] {
			return fmt.Errorf("%w: %s", apperrors.ErrAlreadyReversed, what)
		}
		return fmt.Errorf("%w: %s (%s)", apperrors.ErrDuplicate, what, pgErr.ConstraintName)
	}
	return fmt.Errorf("failed to write %s: %w", what, err)
}

// mapReadError turns pgx.ErrNoRows into ErrNotFound.
func mapReadError(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, what)
	}
	return fmt.Errorf("failed to read %s: %w", what, err)
}

// decodePageToken parses an optional page token. A malformed token is a caller error.
func decodePageToken(token *string) (*pagination.Cursor, error) {
	if token == nil || *token == "" {
		return nil, nil
	}
	c, err := pagination.DecodeCursor(*token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return &c, nil
}

// trimPage expects up to limit+1 rows. The extra row only signals that another
// page exists; the token points at the last row kept.
func trimPage[T any](rows []T, limit int, cursorOf func(T) pagination.Cursor) ([]T, *string) {
	if limit <= 0 || len(rows) <= limit {
		return rows, nil
	}
	page := rows[:limit]
	token := pagination.EncodeCursor(cursorOf(page[len(page)-1]))
	return page, &token
}

// whereBuilder collects AND-ed conditions and their positional arguments.
type whereBuilder struct {
	conds []string
	args  []any
}

func (w *whereBuilder) add(cond string, args ...any) {
	for _, a := range args {
		w.args = append(w.args, a)
		cond = strings.Replace(cond, "?", fmt.Sprintf("$%d", len(w.args)), 1)
	}
	w.conds = append(w.conds, cond)
}

func (w *whereBuilder) addDates(column string, dates domain.DateRange) {
	if dates.From != nil {
		w.add(column+" >= ?", *dates.From)
	}
	if dates.To != nil {
		w.add(column+" <= ?", *dates.To)
	}
}

func (w *whereBuilder) sql() string {
	return strings.Join(w.conds, " AND ")
}
