package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"go-chms/internal/events"
	kafkamsg "go-chms/internal/messaging/kafka"
	"go-chms/internal/shared/contextutil"
)

// Recorder accepts audit events for eventual persistence. Recording is
// best-effort: a failure here must never fail the operation being audited,
// so callers log and move on.
//
//go:generate mockgen -source=recorder.go -destination=mock/recorder_mock.go -package=mock
type Recorder interface {
	Record(ctx context.Context, ev Event) error
}

// outboxRecorder stages entries in the outbox table; a worker relays them to
// the audit topic and the consumer persists them.
type outboxRecorder struct {
	outbox kafkamsg.OutboxRepository
}

func NewOutboxRecorder(outbox kafkamsg.OutboxRepository) Recorder {
	return &outboxRecorder{outbox: outbox}
}

func (r *outboxRecorder) Record(ctx context.Context, ev Event) error {
	attrs, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	envelope := events.AuditEnvelope{
		ID:         uuid.NewString(),
		Action:     ev.Action(),
		Details:    ev.Details(),
		Actor:      contextutil.GetUserEmail(ctx),
		OccurredAt: time.Now().UTC(),
		Attributes: attrs,
	}

	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	return r.outbox.Insert(ctx, &kafkamsg.OutboxEvent{
		Topic:   events.TopicAuditLog,
		Key:     envelope.Actor,
		Payload: payload,
	})
}
