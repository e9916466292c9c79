package producer

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"
)

// Publisher writes messages through a shared writer whose topic is chosen
// per message.
type Publisher struct {
	writer *kafkago.Writer
}

func NewPublisher(writer *kafkago.Writer) *Publisher {
	return &Publisher{writer: writer}
}

func (p *Publisher) Publish(ctx context.Context, topic, key string, payload []byte) error {
	return p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
