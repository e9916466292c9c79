package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"go-chms/internal/audit"
	"go-chms/internal/events"
)

// AuditConsumer persists audit envelopes from the audit topic. Malformed
// messages are logged and skipped so one poison message cannot stall the
// partition.
type AuditConsumer struct {
	reader *kafkago.Reader
	repo   audit.Repository
	logger *zap.Logger
}

func NewAuditConsumer(broker, groupID string, repo audit.Repository) *AuditConsumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: []string{broker},
		GroupID: groupID,
		Topic:   events.TopicAuditLog,
	})

	return &AuditConsumer{
		reader: reader,
		repo:   repo,
		logger: zap.L().Named("audit_consumer"),
	}
}

func (c *AuditConsumer) Run(ctx context.Context) error {
	c.logger.Info("audit consumer started", zap.String("topic", events.TopicAuditLog))

	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		if err := c.handle(ctx, msg.Value); err != nil {
			c.logger.Error("failed to persist audit entry",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}
	}
}

func (c *AuditConsumer) handle(ctx context.Context, payload []byte) error {
	var envelope events.AuditEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return err
	}

	id, err := uuid.Parse(envelope.ID)
	if err != nil {
		id = uuid.New()
	}

	return c.repo.Create(ctx, &audit.AuditLog{
		ID:         id,
		Action:     envelope.Action,
		Details:    envelope.Details,
		Actor:      envelope.Actor,
		OccurredAt: envelope.OccurredAt,
		Attributes: datatypes.JSON(envelope.Attributes),
	})
}

func (c *AuditConsumer) Close() error {
	return c.reader.Close()
}
