package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vidtube/internal/config"
	"vidtube/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// CleanupEvent announces a deleted resource whose dependents (likes,
// comments, playlist entries) must be pruned asynchronously.
type CleanupEvent struct {
	Resource string `json:"resource"` // video | comment | tweet
	ID       string `json:"id"`
}

// InitProducer initializes the kafka producer.
func InitProducer(cfg *config.KafkaConfig) error {
	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// PublishCleanup sends a cleanup event for a deleted resource.
func PublishCleanup(ctx context.Context, topic string, ev *CleanupEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal cleanup event: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(fmt.Sprintf("%s-%s", ev.Resource, ev.ID)),
		Value: payload,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send cleanup event: %w", err)
	}

	logger.Info("Cleanup event sent",
		zap.String("resource", ev.Resource),
		zap.String("id", ev.ID),
		zap.String("topic", topic),
	)

	return nil
}

// CleanupPublisher is a topic-bound publisher handed to services.
type CleanupPublisher struct {
	topic string
}

// NewCleanupPublisher binds a publisher to the cleanup topic.
func NewCleanupPublisher(topic string) *CleanupPublisher {
	return &CleanupPublisher{topic: topic}
}

// PublishCleanup sends the event on the bound topic.
func (p *CleanupPublisher) PublishCleanup(ctx context.Context, ev *CleanupEvent) error {
	return PublishCleanup(ctx, p.topic, ev)
}

// CloseProducer closes the producer.
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}
