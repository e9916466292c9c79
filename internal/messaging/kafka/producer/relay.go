package producer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	kafkamsg "go-chms/internal/messaging/kafka"
)

const (
	defaultInterval  = 2 * time.Second
	defaultBatchSize = 100
)

// Relay drains pending outbox rows to the broker on a fixed cadence. Rows
// that publish are marked published; rows that do not are marked failed and
// left for inspection.
type Relay struct {
	outbox    kafkamsg.OutboxRepository
	publisher *Publisher
	interval  time.Duration
	batchSize int
	logger    *zap.Logger
}

func NewRelay(outbox kafkamsg.OutboxRepository, publisher *Publisher) *Relay {
	return &Relay{
		outbox:    outbox,
		publisher: publisher,
		interval:  defaultInterval,
		batchSize: defaultBatchSize,
		logger:    zap.L().Named("outbox_relay"),
	}
}

func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("outbox relay started",
		zap.Duration("interval", r.interval),
		zap.Int("batch_size", r.batchSize),
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.drain(ctx)
		}
	}
}

func (r *Relay) drain(ctx context.Context) {
	events, err := r.outbox.FindPending(ctx, r.batchSize)
	if err != nil {
		r.logger.Error("failed to load pending events", zap.Error(err))
		return
	}
	if len(events) == 0 {
		return
	}

	published := make([]uuid.UUID, 0, len(events))
	for _, ev := range events {
		if err := r.publisher.Publish(ctx, ev.Topic, ev.Key, ev.Payload); err != nil {
			r.logger.Error("publish failed",
				zap.String("event_id", ev.ID.String()),
				zap.String("topic", ev.Topic),
				zap.Error(err),
			)
			if err := r.outbox.MarkFailed(ctx, ev.ID); err != nil {
				r.logger.Error("failed to mark event failed", zap.Error(err))
			}
			continue
		}
		published = append(published, ev.ID)
	}

	if len(published) > 0 {
		if err := r.outbox.MarkPublished(ctx, published); err != nil {
			r.logger.Error("failed to mark events published", zap.Error(err))
		}
	}
}
