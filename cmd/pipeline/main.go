package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"moments_pipeline/internal/advisor"
	"moments_pipeline/internal/channel/whatsapp"
	"moments_pipeline/internal/config"
	"moments_pipeline/internal/metrics"
	"moments_pipeline/internal/publisher"
	"moments_pipeline/internal/scheduler"
	"moments_pipeline/internal/service"
	"moments_pipeline/internal/storage/postgres"
	"moments_pipeline/internal/webhook"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	metrics.Init()

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize RabbitMQ publisher
	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:       cfg.RabbitMQ.URL,
		Exchange:  cfg.RabbitMQ.Exchange,
		QueueName: cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	// Initialize stores
	messageStore := postgres.NewMessageStore(db)
	advisoryStore := postgres.NewAdvisoryStore(db)
	subscriberStore := postgres.NewSubscriberStore(db)
	momentStore := postgres.NewMomentStore(db)
	sponsorStore := postgres.NewSponsorStore(db)
	broadcastStore := postgres.NewBroadcastStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Initialize outbound clients
	advisorClient := advisor.New(advisor.Config{
		BaseURL: cfg.Advisor.BaseURL,
		APIKey:  cfg.Advisor.APIKey,
		Timeout: cfg.Advisor.Timeout,
	}, logger)

	channelClient := whatsapp.New(whatsapp.Config{
		BaseURL:        cfg.Channel.BaseURL,
		PhoneID:        cfg.Channel.PhoneID,
		Token:          cfg.Channel.Token,
		Timeout:        cfg.Channel.Timeout,
		MaxAttempts:    cfg.Channel.Retry.MaxAttempts,
		InitialBackoff: cfg.Channel.Retry.InitialBackoff,
		MaxBackoff:     cfg.Channel.Retry.MaxBackoff,
	}, logger)

	// Wire services
	moderationService := service.NewModerationService(momentStore, rabbitMQ, cfg.Moderation, logger)
	intakeService := service.NewIntakeService(
		messageStore,
		advisoryStore,
		subscriberStore,
		advisorClient,
		channelClient,
		moderationService,
		logger,
	)
	targetingService := service.NewTargetingService(subscriberStore)
	dispatchService := service.NewDispatchService(
		momentStore,
		sponsorStore,
		broadcastStore,
		targetingService,
		channelClient,
		rabbitMQ,
		txManager,
		cfg.Broadcast,
		logger,
	)
	analyticsService := service.NewAnalyticsService(broadcastStore, momentStore, subscriberStore, logger)

	handler := webhook.NewHandler(intakeService, momentStore, analyticsService, cfg.Server.VerifyToken, logger)
	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: handler.Router(),
	}

	sched := scheduler.NewScheduler(dispatchService, cfg.Broadcast.SchedulerInterval, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := sched.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("scheduler error", "error", err)
		}
	}()

	go func() {
		logger.Info("starting webhook server", "addr", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
