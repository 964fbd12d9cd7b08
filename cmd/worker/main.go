package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vidtube/internal/config"
	infraKafka "vidtube/internal/infra/kafka"
	infraMongo "vidtube/internal/infra/mongodb"
	"vidtube/internal/repository"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"go.uber.org/zap"
)

// The cleanup worker consumes resource deletion events and prunes the
// records that still reference the deleted resource.
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := infraMongo.Init(&cfg.Mongo); err != nil {
		logger.Fatal("Failed to init mongodb", zap.Error(err))
	}
	defer infraMongo.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	db := infraMongo.Get()
	cleanupService := service.NewCleanupService(
		repository.NewCommentRepository(db),
		repository.NewLikeRepository(db),
		repository.NewPlaylistRepository(db),
	)

	topic := cfg.Kafka.Topics["resource_cleanup"]
	groupID := "vidtube-cleanup-worker"

	logger.Info("Cleanup worker started",
		zap.String("topic", topic),
		zap.String("group", groupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	infraKafka.StartCleanupConsumer(ctx, cfg.Kafka.Brokers, topic, groupID, cleanupService.Handle)
}
