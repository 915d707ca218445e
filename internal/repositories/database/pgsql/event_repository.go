package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	portsrepo "github.com/SscSPs/posting_spine/internal/core/ports/repositories"
	"github.com/SscSPs/posting_spine/internal/models"
	"github.com/SscSPs/posting_spine/internal/utils/mapping"
	"github.com/SscSPs/posting_spine/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

// PgxEventRepository stores the append-only economic event log.
type PgxEventRepository struct {
	BaseRepository
}

func newPgxEventRepository(db querier) *PgxEventRepository {
	return &PgxEventRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.EconomicEventRepositoryFacade = (*PgxEventRepository)(nil)

const eventColumns = `event_id, tenant_id, document_id, event_type, description, event_date, amount,
	currency_code, event_data, audit_context, is_reversal, reversed_from_id, reversal_id,
	created_at, created_by`

func scanEvent(row pgx.Row) (domain.EconomicEvent, error) {
	var m models.EconomicEvent
	err := row.Scan(
		&m.EventID,
		&m.TenantID,
		&m.DocumentID,
		&m.EventType,
		&m.Description,
		&m.EventDate,
		&m.Amount,
		&m.CurrencyCode,
		&m.EventData,
		&m.AuditContext,
		&m.IsReversal,
		&m.ReversedFromID,
		&m.ReversalID,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		return domain.EconomicEvent{}, err
	}
	return mapping.ToDomainEconomicEvent(m)
}

func (r *PgxEventRepository) queryEvents(ctx context.Context, query string, args ...any) ([]domain.EconomicEvent, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query economic events: %w", err)
	}
	defer rows.Close()

	events := []domain.EconomicEvent{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan economic event row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating economic event rows: %w", err)
	}
	return events, nil
}

// InsertEvent appends one event and returns the stored row.
func (r *PgxEventRepository) InsertEvent(ctx context.Context, event domain.EconomicEvent) (*domain.EconomicEvent, error) {
	m, err := mapping.ToModelEconomicEvent(event)
	if err != nil {
		return nil, err
	}
	query := `
		INSERT INTO economic_events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + eventColumns + `;
	`
	stored, err := scanEvent(r.db.QueryRow(ctx, query,
		m.EventID,
		m.TenantID,
		m.DocumentID,
		m.EventType,
		m.Description,
		m.EventDate,
		m.Amount,
		m.CurrencyCode,
		m.EventData,
		m.AuditContext,
		m.IsReversal,
		m.ReversedFromID,
		m.ReversalID,
		m.CreatedAt,
		m.CreatedBy,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventCreationFailed
		}
		return nil, mapWriteError(err, "economic event "+m.EventID)
	}
	return &stored, nil
}

// LinkEventReversal sets reversal_id on the original once.
func (r *PgxEventRepository) LinkEventReversal(ctx context.Context, tenantID, originalEventID, reversalEventID string) error {
	query := `
		UPDATE economic_events SET reversal_id = $3
		WHERE tenant_id = $1 AND event_id = $2 AND reversal_id IS NULL;
	`
	tag, err := r.db.Exec(ctx, query, tenantID, originalEventID, reversalEventID)
	if err != nil {
		return fmt.Errorf("failed to link reversal of event %s: %w", originalEventID, err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.FindEventByID(ctx, tenantID, originalEventID); err != nil {
			return err
		}
		return fmt.Errorf("%w: event %s", apperrors.ErrAlreadyReversed, originalEventID)
	}
	return nil
}

func (r *PgxEventRepository) FindEventByID(ctx context.Context, tenantID, eventID string) (*domain.EconomicEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM economic_events WHERE tenant_id = $1 AND event_id = $2;`
	event, err := scanEvent(r.db.QueryRow(ctx, query, tenantID, eventID))
	if err != nil {
		return nil, mapReadError(err, "economic event "+eventID)
	}
	return &event, nil
}

func (r *PgxEventRepository) FindEventsByDocument(ctx context.Context, tenantID, documentID string) ([]domain.EconomicEvent, error) {
	query := `
		SELECT ` + eventColumns + ` FROM economic_events
		WHERE tenant_id = $1 AND document_id = $2
		ORDER BY created_at, event_id COLLATE "C";
	`
	return r.queryEvents(ctx, query, tenantID, documentID)
}

func (r *PgxEventRepository) FindReversalsOf(ctx context.Context, tenantID, originalEventID string) ([]domain.EconomicEvent, error) {
	query := `
		SELECT ` + eventColumns + ` FROM economic_events
		WHERE tenant_id = $1 AND reversed_from_id = $2
		ORDER BY created_at, event_id COLLATE "C";
	`
	return r.queryEvents(ctx, query, tenantID, originalEventID)
}

func eventCursor(e domain.EconomicEvent) pagination.Cursor {
	return pagination.Cursor{Date: e.EventDate, CreatedAt: e.CreatedAt, ID: e.EventID}
}

// ListEventsByTenant returns the tenant's events newest first, one page at a time.
func (r *PgxEventRepository) ListEventsByTenant(ctx context.Context, tenantID string, filter domain.EventFilter) ([]domain.EconomicEvent, *string, error) {
	after, err := decodePageToken(filter.NextToken)
	if err != nil {
		return nil, nil, err
	}

	var where whereBuilder
	where.add("tenant_id = ?", tenantID)
	if len(filter.EventTypes) > 0 {
		types := make([]string, len(filter.EventTypes))
		for i, t := range filter.EventTypes {
			types[i] = mapping.ToModelEventType(t)
		}
		where.add("event_type = ANY(?)", types)
	}
	where.addDates("event_date", filter.Dates)
	if after != nil {
		where.add(`(event_date, created_at, event_id COLLATE "C") < (?, ?, ?)`, after.Date, after.CreatedAt, after.ID)
	}

	query := `SELECT ` + eventColumns + ` FROM economic_events WHERE ` + where.sql() +
		` ORDER BY event_date DESC, created_at DESC, event_id COLLATE "C" DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit+1)
	}

	events, err := r.queryEvents(ctx, query, where.args...)
	if err != nil {
		return nil, nil, err
	}
	page, next := trimPage(events, filter.Limit, eventCursor)
	return page, next, nil
}
