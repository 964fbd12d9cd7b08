package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"vidtube/internal/api/handler"
	"vidtube/internal/api/middleware"
	"vidtube/internal/api/router"
	"vidtube/internal/config"
	infraKafka "vidtube/internal/infra/kafka"
	infraMinio "vidtube/internal/infra/minio"
	infraMongo "vidtube/internal/infra/mongodb"
	infraRedis "vidtube/internal/infra/redis"
	"vidtube/internal/repository"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title VidTube API
// @version 1.0
// @description Video sharing platform API service

// @contact.name API Support
// @contact.email support@vidtube.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host 127.0.0.1:8000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Format: Bearer {token}

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := infraMongo.Init(&cfg.Mongo); err != nil {
		logger.Fatal("Failed to init mongodb", zap.Error(err))
	}
	defer infraMongo.Close()

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := infraMongo.EnsureIndexes(indexCtx, infraMongo.Get()); err != nil {
		indexCancel()
		logger.Fatal("Failed to ensure indexes", zap.Error(err))
	}
	indexCancel()

	if err := infraRedis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to init redis", zap.Error(err))
	}
	defer infraRedis.Close()

	if err := infraMinio.Init(&cfg.MinIO); err != nil {
		logger.Fatal("Failed to init minio", zap.Error(err))
	}

	if err := infraKafka.InitProducer(&cfg.Kafka); err != nil {
		logger.Fatal("Failed to init kafka producer", zap.Error(err))
	}
	defer infraKafka.CloseProducer()

	gin.SetMode(cfg.App.Mode)

	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	db := infraMongo.Get()
	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)

	statsCache := infraRedis.NewStatsCache(time.Minute)
	imageStore := infraMinio.NewImageStore(&cfg.MinIO)
	cleanupPublisher := infraKafka.NewCleanupPublisher(cfg.Kafka.Topics["resource_cleanup"])

	authService := service.NewAuthService(userRepo, imageStore)
	commentService := service.NewCommentService(commentRepo, videoRepo, cleanupPublisher)
	tweetService := service.NewTweetService(tweetRepo, userRepo, cleanupPublisher)
	likeService := service.NewLikeService(likeRepo, videoRepo, commentRepo, tweetRepo)
	playlistService := service.NewPlaylistService(playlistRepo, videoRepo)
	dashboardService := service.NewDashboardService(userRepo, videoRepo, tweetRepo, commentRepo, likeRepo, subscriptionRepo, statsCache)

	authHandler := handler.NewAuthHandler(authService)
	commentHandler := handler.NewCommentHandler(commentService)
	tweetHandler := handler.NewTweetHandler(tweetService)
	likeHandler := handler.NewLikeHandler(likeService)
	playlistHandler := handler.NewPlaylistHandler(playlistService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	r.GET("/healthz", healthCheckHandler)
	r.GET("/", rootHandler)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.Setup(r, authHandler, commentHandler, tweetHandler, likeHandler, playlistHandler, dashboardHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
	)
	logger.Info("Configuration loaded",
		zap.String("mongodb", cfg.Mongo.Database),
		zap.String("redis", cfg.Redis.Addr()),
		zap.String("minio", cfg.MinIO.Endpoint),
	)

	logger.Info("Server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func healthCheckHandler(c *gin.Context) {
	cfg := config.Get()

	logger.Debug("Health check requested", zap.String("ip", c.ClientIP()))

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   cfg.App.Name,
		"version":   cfg.App.Version,
		"mode":      cfg.App.Mode,
	})
}

func rootHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome to %s API", cfg.App.Name),
		"project": cfg.App.Name,
		"version": cfg.App.Version,
		"mode":    cfg.App.Mode,
		"docs":    fmt.Sprintf("http://localhost:%d/swagger/index.html", cfg.App.Port),
	})
}
