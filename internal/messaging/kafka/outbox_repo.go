package kafka

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	OutboxStatusPending   = "PENDING"
	OutboxStatusPublished = "PUBLISHED"
	OutboxStatusFailed    = "FAILED"
)

type OutboxEvent struct {
	ID          uuid.UUID
	Topic       string
	Key         string
	Payload     []byte
	Status      string
	CreatedAt   time.Time
	PublishedAt *time.Time
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock
type OutboxRepository interface {
	Insert(ctx context.Context, ev *OutboxEvent) error
	FindPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkPublished(ctx context.Context, ids []uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
}

type outboxRepository struct {
	db *sql.DB
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) Insert(ctx context.Context, ev *OutboxEvent) error {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	if ev.Status == "" {
		ev.Status = OutboxStatusPending
	}

	query := `
		INSERT INTO outbox_events (id, topic, key, payload, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := r.db.ExecContext(ctx, query, ev.ID, ev.Topic, ev.Key, ev.Payload, ev.Status)
	return err
}

func (r *outboxRepository) FindPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	query := `
		SELECT id, topic, key, payload, status, created_at
		FROM outbox_events
		WHERE status = $1
		ORDER BY created_at ASC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, OutboxStatusPending, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OutboxEvent
	for rows.Next() {
		var ev OutboxEvent
		if err := rows.Scan(&ev.ID, &ev.Topic, &ev.Key, &ev.Payload, &ev.Status, &ev.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

func (r *outboxRepository) MarkPublished(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	query := `
		UPDATE outbox_events
		SET status = $1, published_at = NOW()
		WHERE id = $2
	`
	for _, id := range ids {
		if _, err := r.db.ExecContext(ctx, query, OutboxStatusPublished, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *outboxRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE outbox_events SET status = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, OutboxStatusFailed, id)
	return err
}
