package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/polkiloo/salesdesk/internal/domain/model"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPlayer publishes alerts to a Kafka topic for consumers outside the dashboard.
type KafkaPlayer struct {
	writer messageWriter
}

func NewKafkaPlayer(brokers []string, topic string) *KafkaPlayer {
	return &KafkaPlayer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *KafkaPlayer) Play(ctx context.Context, alert model.NewOrderAlert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("marshal alert: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(alert.ID),
		Value: payload,
		Time:  alert.RaisedAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish alert: %w", err)
	}
	return nil
}

func (p *KafkaPlayer) Close() error {
	return p.writer.Close()
}
