package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	portsrepo "github.com/SscSPs/posting_spine/internal/core/ports/repositories"
	"github.com/SscSPs/posting_spine/internal/models"
	"github.com/SscSPs/posting_spine/internal/utils/mapping"
	"github.com/SscSPs/posting_spine/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

// PgxPostingRepository stores ledger postings. Rows are never updated except for
// the one-time reversal link.
type PgxPostingRepository struct {
	BaseRepository
}

func newPgxPostingRepository(db querier) *PgxPostingRepository {
	return &PgxPostingRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.LedgerPostingRepositoryFacade = (*PgxPostingRepository)(nil)

const postingColumns = `posting_id, tenant_id, event_id, batch_id, line_no, account_id, direction, amount,
	currency_code, posting_date, description, metadata, is_reversal, reversed_from_id, reversal_id,
	created_at, created_by`

func scanPosting(row pgx.Row) (domain.LedgerPosting, error) {
	var m models.LedgerPosting
	err := row.Scan(
		&m.PostingID,
		&m.TenantID,
		&m.EventID,
		&m.BatchID,
		&m.LineNo,
		&m.AccountID,
		&m.Direction,
		&m.Amount,
		&m.CurrencyCode,
		&m.PostingDate,
		&m.Description,
		&m.Metadata,
		&m.IsReversal,
		&m.ReversedFromID,
		&m.ReversalID,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		return domain.LedgerPosting{}, err
	}
	return mapping.ToDomainLedgerPosting(m)
}

func (r *PgxPostingRepository) queryPostings(ctx context.Context, query string, args ...any) ([]domain.LedgerPosting, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger postings: %w", err)
	}
	defer rows.Close()

	postings := []domain.LedgerPosting{}
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger posting row: %w", err)
		}
		postings = append(postings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger posting rows: %w", err)
	}
	return postings, nil
}

// InsertPostings writes a whole batch in one round trip. Callers run it inside a
// transaction so a failing line leaves no partial batch behind.
func (r *PgxPostingRepository) InsertPostings(ctx context.Context, postings []domain.LedgerPosting) error {
	if len(postings) == 0 {
		return apperrors.ErrEmptyPostingSet
	}
	query := `
		INSERT INTO ledger_postings (` + postingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	batch := &pgx.Batch{}
	for _, p := range postings {
		m, err := mapping.ToModelLedgerPosting(p)
		if err != nil {
			return err
		}
		batch.Queue(query,
			m.PostingID,
			m.TenantID,
			m.EventID,
			m.BatchID,
			m.LineNo,
			m.AccountID,
			m.Direction,
			m.Amount,
			m.CurrencyCode,
			m.PostingDate,
			m.Description,
			m.Metadata,
			m.IsReversal,
			m.ReversedFromID,
			m.ReversalID,
			m.CreatedAt,
			m.CreatedBy,
		)
	}

	br := r.db.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return mapWriteError(err, "ledger postings of batch "+postings[0].BatchID)
	}
	return nil
}

func (r *PgxPostingRepository) LinkPostingReversal(ctx context.Context, tenantID, originalPostingID, reversalPostingID string) error {
	query := `
		UPDATE ledger_postings SET reversal_id = $3
		WHERE tenant_id = $1 AND posting_id = $2 AND reversal_id IS NULL;
	`
	tag, err := r.db.Exec(ctx, query, tenantID, originalPostingID, reversalPostingID)
	if err != nil {
		return fmt.Errorf("failed to link reversal of posting %s: %w", originalPostingID, err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM ledger_postings WHERE tenant_id = $1 AND posting_id = $2);`,
			tenantID, originalPostingID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check posting %s: %w", originalPostingID, err)
		}
		if !exists {
			return fmt.Errorf("%w: posting %s", apperrors.ErrNotFound, originalPostingID)
		}
		return fmt.Errorf("%w: posting %s", apperrors.ErrAlreadyReversed, originalPostingID)
	}
	return nil
}

func (r *PgxPostingRepository) FindPostingsByEvent(ctx context.Context, tenantID, eventID string) ([]domain.LedgerPosting, error) {
	query := `
		SELECT ` + postingColumns + ` FROM ledger_postings
		WHERE tenant_id = $1 AND event_id = $2
		ORDER BY created_at, batch_id, line_no;
	`
	return r.queryPostings(ctx, query, tenantID, eventID)
}

func (r *PgxPostingRepository) FindPostingsByBatch(ctx context.Context, tenantID, batchID string) ([]domain.LedgerPosting, error) {
	query := `
		SELECT ` + postingColumns + ` FROM ledger_postings
		WHERE tenant_id = $1 AND batch_id = $2
		ORDER BY line_no;
	`
	return r.queryPostings(ctx, query, tenantID, batchID)
}

// FindPostingsByEvents loads the postings of several events in one query, grouped by event.
func (r *PgxPostingRepository) FindPostingsByEvents(ctx context.Context, tenantID string, eventIDs []string) (map[string][]domain.LedgerPosting, error) {
	grouped := make(map[string][]domain.LedgerPosting, len(eventIDs))
	if len(eventIDs) == 0 {
		return grouped, nil
	}
	query := `
		SELECT ` + postingColumns + ` FROM ledger_postings
		WHERE tenant_id = $1 AND event_id = ANY($2)
		ORDER BY created_at, batch_id, line_no;
	`
	postings, err := r.queryPostings(ctx, query, tenantID, eventIDs)
	if err != nil {
		return nil, err
	}
	for _, p := range postings {
		grouped[p.EventID] = append(grouped[p.EventID], p)
	}
	return grouped, nil
}

func postingCursor(p domain.LedgerPosting) pagination.Cursor {
	return pagination.Cursor{Date: p.PostingDate, CreatedAt: p.CreatedAt, ID: p.PostingID}
}

// ListPostingsByAccount returns an account's postings oldest first, one page at a time.
func (r *PgxPostingRepository) ListPostingsByAccount(ctx context.Context, tenantID, accountID string, filter domain.PostingFilter) ([]domain.LedgerPosting, *string, error) {
	after, err := decodePageToken(filter.NextToken)
	if err != nil {
		return nil, nil, err
	}

	var where whereBuilder
	where.add("tenant_id = ?", tenantID)
	where.add("account_id = ?", accountID)
	where.addDates("posting_date", filter.Dates)
	if after != nil {
		where.add(`(posting_date, created_at, posting_id COLLATE "C") > (?, ?, ?)`, after.Date, after.CreatedAt, after.ID)
	}

	query := `SELECT ` + postingColumns + ` FROM ledger_postings WHERE ` + where.sql() +
		` ORDER BY posting_date, created_at, posting_id COLLATE "C"`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit+1)
	}

	postings, err := r.queryPostings(ctx, query, where.args...)
	if err != nil {
		return nil, nil, err
	}
	page, next := trimPage(postings, filter.Limit, postingCursor)
	return page, next, nil
}
