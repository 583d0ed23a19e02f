package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	batchapp "github.com/minhqn/price-intel/application/batch"
	historyapp "github.com/minhqn/price-intel/application/history"
	searchapp "github.com/minhqn/price-intel/application/search"
	"github.com/minhqn/price-intel/cmd/config"
	redisclient "github.com/minhqn/price-intel/cmd/redis"
	_ "github.com/minhqn/price-intel/docs"
	collectorRepo "github.com/minhqn/price-intel/repository/collector"
	historyRepo "github.com/minhqn/price-intel/repository/history"
	oracleRepo "github.com/minhqn/price-intel/repository/oracle"
	redisRepo "github.com/minhqn/price-intel/repository/redis"
	"github.com/minhqn/price-intel/thirdparty/rabbitmq"
	"github.com/minhqn/price-intel/transport"
	"github.com/minhqn/price-intel/utils/keypool"
	"github.com/minhqn/price-intel/utils/logger"
	"go.uber.org/zap"
)

// @title PRICE-INTEL API
// @version 1.0
// @description Market price analysis API Documentation
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment), zap.String("mode", string(cfg.Oracle.Mode)))

	// Initialize Redis client (batch job state)
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Optional MySQL connection for price history
	var HistoryRepo historyRepo.HistoryRepository
	var HistoryApp historyapp.HistoryApp
	if cfg.Database.Enabled {
		db, err := sqlx.Connect("mysql", cfg.GetDSN())
		if err != nil {
			logger.Fatal("err connect db", zap.Error(err))
		}
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

		HistoryRepo = historyRepo.NewHistoryRepository(db)
		HistoryApp = historyapp.NewHistoryApp(HistoryRepo)
	}

	// Initialize repositories
	CollectorRepo := collectorRepo.NewCollectorRepository(cfg.Collector.BaseURL, cfg.Collector.Timeout)
	keys := keypool.New(cfg.Oracle.APIKeys, nil)
	if keys.Size() == 0 {
		logger.Warn("no oracle API keys configured; search requests will fail fast")
	}
	OracleRepo := oracleRepo.NewOracleRepository(cfg.Oracle.BaseURL, cfg.Oracle.Model, cfg.Oracle.Mode, keys, cfg.Oracle.Timeout)
	RedisRepo := redisRepo.NewRepository()

	// Optional RabbitMQ publisher for completion events
	var publisher batchapp.CompletionPublisher
	var rmqPublisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Enabled {
		var err error
		rmqPublisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
		}
		defer rmqPublisher.Close()
		publisher = rmqPublisher
	}

	// Initialize application layers
	SearchApp := searchapp.NewSearchApp(CollectorRepo, OracleRepo, cfg.Oracle.Mode, cfg.Collector.NumProducts)
	BatchApp := batchapp.NewBatchApp(SearchApp, RedisRepo, HistoryRepo, publisher, cfg.Batch.Delay, cfg.Batch.ExportDir, cfg.Batch.JobTTL)

	// Optional RabbitMQ consumer feeding batch jobs from the queue
	if cfg.RabbitMQ.Enabled {
		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, BatchApp)
		if err != nil {
			logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
		}
		defer consumer.Close()

		if err := consumer.Start(context.Background()); err != nil {
			logger.Fatal("err start rabbitmq consumer", zap.Error(err))
		}
	}

	httpTransport := transport.NewTransport(SearchApp, BatchApp, HistoryApp, cfg.Server.InternalKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err := server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
