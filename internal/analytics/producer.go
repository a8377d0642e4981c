package analytics

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Event is the envelope written to Kafka for every game event.
type Event struct {
	Event     string         `json:"event"`
	Payload   map[string]any `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	writer messageWriter
	log    *zap.Logger
	now    func() time.Time
}

// NewProducer returns nil when no brokers or topic are configured; a nil
// Producer drops events.
func NewProducer(brokers []string, topic string, logger *zap.Logger) *Producer {
	if len(brokers) == 0 || topic == "" {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	return &Producer{writer: writer, log: logger, now: time.Now}
}

// Publish writes one event keyed by its game id so a game's events stay on
// one partition in order. Failures are logged, never returned.
func (p *Producer) Publish(ctx context.Context, event string, payload map[string]any) {
	if p == nil || p.writer == nil {
		return
	}
	msg, err := p.encode(event, payload)
	if err != nil {
		p.log.Warn("analytics encode failed", zap.String("event", event), zap.Error(err))
		return
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Warn("kafka publish failed", zap.String("event", event), zap.Error(err))
	}
}

func (p *Producer) encode(event string, payload map[string]any) (kafka.Message, error) {
	data, err := json.Marshal(Event{Event: event, Payload: payload, Timestamp: p.now().UTC()})
	if err != nil {
		return kafka.Message{}, err
	}
	msg := kafka.Message{Value: data}
	if id, ok := payload["gameId"].(string); ok {
		msg.Key = []byte(id)
	}
	return msg, nil
}

func (p *Producer) Close() {
	if p == nil || p.writer == nil {
		return
	}
	if err := p.writer.Close(); err != nil {
		p.log.Warn("kafka writer close failed", zap.Error(err))
	}
}
