package outbox

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"go-market-api/internal/shared/database/dbx"
)

// Event is a transactional outbox row. Events are written in the same
// transaction as the state change they describe and shipped to the broker by
// a separate poller.
type Event struct {
	ID            uuid.UUID
	AggregateType string
	AggregateID   uuid.UUID
	EventType     string
	Payload       []byte
	Status        string
	CreatedAt     time.Time
}

type CreateEventParams struct {
	ID            uuid.UUID
	AggregateType string
	AggregateID   uuid.UUID
	EventType     string
	Payload       []byte
}

//go:generate mockgen -source=outbox_repo.go -destination=../mock/outbox/outbox_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx dbx.DBTX) Repository
	CreateEvent(ctx context.Context, arg CreateEventParams) error
	ListPending(ctx context.Context, limit int32) ([]Event, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db dbx.DBTX
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx dbx.DBTX) Repository {
	return &repository{db: tx}
}

func (r *repository) CreateEvent(ctx context.Context, arg CreateEventParams) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO outbox_events (id, aggregate_type, aggregate_id, event_type, payload, status)
		VALUES ($1, $2, $3, $4, $5, 'PENDING')`,
		arg.ID, arg.AggregateType, arg.AggregateID, arg.EventType, arg.Payload)
	return err
}

func (r *repository) ListPending(ctx context.Context, limit int32) ([]Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, aggregate_type, aggregate_id, event_type, payload, status, created_at
		FROM outbox_events
		WHERE status = 'PENDING'
		ORDER BY created_at
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.AggregateType, &e.AggregateID, &e.EventType, &e.Payload, &e.Status, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *repository) MarkSent(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE outbox_events SET status = 'SENT', sent_at = NOW() WHERE id = $1`, id)
	return err
}

func (r *repository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE outbox_events SET status = 'FAILED' WHERE id = $1`, id)
	return err
}
