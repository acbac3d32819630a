package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/riskanalytics/internal/riskanalytics/application"
	"github.com/wyfcoding/riskanalytics/internal/riskanalytics/domain"
	"github.com/wyfcoding/riskanalytics/internal/riskanalytics/infrastructure/persistence/memory"
	"github.com/wyfcoding/riskanalytics/internal/riskanalytics/infrastructure/publisher"
	httpserver "github.com/wyfcoding/riskanalytics/internal/riskanalytics/interfaces/http"
	"github.com/wyfcoding/riskanalytics/pkg/config"
	"github.com/wyfcoding/riskanalytics/pkg/logger"
	"github.com/wyfcoding/riskanalytics/pkg/metrics"
	"github.com/wyfcoding/riskanalytics/pkg/middleware"
	"github.com/wyfcoding/riskanalytics/pkg/mq"
	"golang.org/x/sync/errgroup"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "configs/riskanalytics/config.toml", "path to config file")
	flag.Parse()

	// 1. Config
	cfg, err := config.LoadWithDefaults(configPath)
	if err != nil {
		panic(fmt.Sprintf("load config failed: %v", err))
	}

	// 2. Logger
	if err := logger.Init(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		FilePath:   cfg.Logger.FilePath,
		MaxSize:    cfg.Logger.MaxSize,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAge:     cfg.Logger.MaxAge,
		Compress:   cfg.Logger.Compress,
		WithCaller: cfg.Logger.WithCaller,
	}); err != nil {
		panic(fmt.Sprintf("init logger failed: %v", err))
	}

	// 3. Metrics
	m := metrics.New(cfg.ServiceName)
	if cfg.Metrics.Enabled {
		if err := m.Register(); err != nil {
			panic(fmt.Sprintf("register metrics failed: %v", err))
		}
	}
	collector := metrics.NewDefaultMetricsCollector(m)

	// 4. Infrastructure & Domain
	positionGen := domain.NewPositionGenerator()
	historyGen := domain.NewHistoryGenerator()
	engine := domain.NewScenarioEngine()
	library := domain.NewScenarioLibrary()
	historyRepo := memory.NewHistoryRepository(historyGen, collector)

	var eventPublisher domain.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := mq.NewProducer(mq.KafkaConfig{
			Brokers:      cfg.Kafka.Brokers,
			MaxRetries:   cfg.Kafka.MaxRetries,
			RetryBackoff: cfg.Kafka.RetryBackoff,
		})
		if err != nil {
			panic(fmt.Sprintf("create kafka producer failed: %v", err))
		}
		defer producer.Close()
		eventPublisher = publisher.NewKafkaEventPublisher(producer, cfg.Kafka.ScenarioRunTopic)
	} else {
		eventPublisher = publisher.NewLogEventPublisher()
	}

	// 5. Application
	appService := application.NewRiskAnalyticsApplicationService(
		positionGen,
		engine,
		library,
		historyRepo,
		eventPublisher,
		collector,
		cfg.Analytics.Portfolios,
		cfg.Analytics.HistogramBins,
	)

	// 6. Interfaces
	if cfg.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		middleware.GinLoggingMiddleware(),
		middleware.GinRecoveryMiddleware(),
		middleware.GinCORSMiddleware(),
		middleware.GinMetricsMiddleware(collector),
	)
	if cfg.HTTP.RateLimitPerSecond > 0 {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitPerSecond, cfg.HTTP.RateLimitPerSecond)
		r.Use(middleware.GinRateLimitMiddleware(limiter))
	}

	httpserver.NewHandler(r, appService)

	sys := r.Group("/sys")
	{
		sys.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
		sys.GET("/ready", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "READY"}) })
	}
	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}
	pp := r.Group("/debug/pprof")
	{
		pp.GET("/", gin.WrapF(pprof.Index))
		pp.GET("/cmdline", gin.WrapF(pprof.Cmdline))
		pp.GET("/profile", gin.WrapF(pprof.Profile))
		pp.GET("/symbol", gin.WrapF(pprof.Symbol))
		pp.GET("/trace", gin.WrapF(pprof.Trace))
	}

	httpSrv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}

	// 7. Start
	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		slog.Info("HTTP server starting", "addr", httpSrv.Addr, "service", cfg.ServiceName)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	// 8. Graceful Shutdown
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-quit:
			slog.Info("shutting down server...")
		case <-ctx.Done():
			slog.Info("context cancelled, shutting down...")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("server exited with error", "error", err)
	}
}
