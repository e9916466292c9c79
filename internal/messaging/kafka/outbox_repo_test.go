package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestInsertDefaultsIDAndStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(sqlmock.AnyArg(), "chms.audit.log.v1", "admin@example.com", []byte(`{}`), OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewOutboxRepository(db)
	ev := &OutboxEvent{
		Topic:   "chms.audit.log.v1",
		Key:     "admin@example.com",
		Payload: []byte(`{}`),
	}
	err = repo.Insert(context.Background(), ev)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, ev.ID)
	assert.Equal(t, OutboxStatusPending, ev.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "topic", "key", "payload", "status", "created_at"}).
		AddRow(id.String(), "chms.audit.log.v1", "k", []byte(`{"a":1}`), OutboxStatusPending, now)

	mock.ExpectQuery("SELECT id, topic, key, payload, status, created_at").
		WithArgs(OutboxStatusPending, 50).
		WillReturnRows(rows)

	repo := NewOutboxRepository(db)
	events, err := repo.FindPending(context.Background(), 50)

	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, id, events[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkPublished(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	first, second := uuid.New(), uuid.New()
	mock.ExpectExec("UPDATE outbox_events").
		WithArgs(OutboxStatusPublished, first).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE outbox_events").
		WithArgs(OutboxStatusPublished, second).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewOutboxRepository(db)
	err = repo.MarkPublished(context.Background(), []uuid.UUID{first, second})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkPublishedEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewOutboxRepository(db)
	err = repo.MarkPublished(context.Background(), nil)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	mock.ExpectExec("UPDATE outbox_events SET status").
		WithArgs(OutboxStatusFailed, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewOutboxRepository(db)
	err = repo.MarkFailed(context.Background(), id)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
