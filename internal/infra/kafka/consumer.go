package kafka

import (
	"context"
	"encoding/json"
	"time"

	"vidtube/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// CleanupHandler processes one cleanup event.
type CleanupHandler func(ctx context.Context, ev *CleanupEvent) error

// StartCleanupConsumer consumes cleanup events until ctx is cancelled.
// Blocking; run in a goroutine or a dedicated worker process.
func StartCleanupConsumer(ctx context.Context, brokers []string, topic, groupID string, handler CleanupHandler) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close kafka consumer", zap.Error(err))
		}
		logger.Info("Kafka cleanup consumer stopped")
	}()

	logger.Info("Kafka cleanup consumer started",
		zap.String("topic", topic),
		zap.String("group", groupID),
	)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Failed to read kafka message", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		var ev CleanupEvent
		if err := json.Unmarshal(msg.Value, &ev); err != nil {
			logger.Error("Failed to unmarshal cleanup event",
				zap.Error(err),
				zap.ByteString("value", msg.Value),
			)
			continue
		}

		logger.Info("Received cleanup event",
			zap.String("resource", ev.Resource),
			zap.String("id", ev.ID),
		)

		if err := handler(ctx, &ev); err != nil {
			logger.Error("Failed to handle cleanup event",
				zap.String("resource", ev.Resource),
				zap.String("id", ev.ID),
				zap.Error(err),
			)
		}
	}
}
