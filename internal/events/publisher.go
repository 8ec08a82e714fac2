package events

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"example.com/activities/internal/domain"
	"example.com/activities/internal/observability"
)

// KafkaPublisher lazily manages writers per topic and implements
// domain.EventSink. Delivery failures are logged and counted; the roster
// mutation has already committed, so they never surface to the caller.
type KafkaPublisher struct {
	brokers []string
	topic   string
	logger  *zap.Logger

	mu      sync.Mutex
	writers map[string]*kafka.Writer
}

// NewKafkaPublisher creates a KafkaPublisher.
func NewKafkaPublisher(brokers []string, topic string, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		brokers: brokers,
		topic:   topic,
		logger:  logger,
		writers: make(map[string]*kafka.Writer),
	}
}

// RosterChanged encodes the change and writes it to the roster topic, keyed
// by activity name so one activity's events stay ordered.
func (p *KafkaPublisher) RosterChanged(ctx context.Context, change domain.RosterChange) {
	msg, err := encodeChange(change)
	if err != nil {
		observability.RecordPublishError(p.topic)
		p.logger.Error("roster event encode failed",
			zap.String("activity", change.Activity),
			zap.Error(err),
		)
		return
	}

	if err := p.writerForTopic(p.topic).WriteMessages(ctx, msg); err != nil {
		observability.RecordPublishError(p.topic)
		p.logger.Error("roster event delivery failed",
			zap.String("topic", p.topic),
			zap.String("activity", change.Activity),
			zap.Error(err),
		)
	}
}

func encodeChange(change domain.RosterChange) (kafka.Message, error) {
	payload, err := json.Marshal(RosterEvent{
		EventID:    uuid.NewString(),
		EventType:  string(change.Kind),
		Activity:   change.Activity,
		Email:      change.Email,
		RosterSize: change.RosterSize,
		OccurredAt: change.OccurredAt,
	})
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(change.Activity),
		Value: payload,
		Time:  change.OccurredAt,
	}, nil
}

func (p *KafkaPublisher) writerForTopic(topic string) *kafka.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if writer, ok := p.writers[topic]; ok {
		return writer
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(p.brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		Async:        false,
	}
	p.writers[topic] = writer
	return writer
}

// Close releases all writers.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for topic, writer := range p.writers {
		if err := writer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(p.writers, topic)
	}
	return firstErr
}

// Nop discards roster changes; used when event delivery is disabled.
type Nop struct{}

// RosterChanged implements domain.EventSink.
func (Nop) RosterChanged(context.Context, domain.RosterChange) {}
