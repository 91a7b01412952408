package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "orderbot/internal/app"
	"orderbot/internal/handlers/rest/delivery_options_get"
	"orderbot/internal/handlers/rest/healthcheck_head"
	"orderbot/internal/handlers/rest/order_lines_get"
	"orderbot/internal/handlers/rest/telegram_webhook_post"
	"orderbot/internal/pkg/config"
	"orderbot/internal/pkg/dotenv"
	"orderbot/internal/pkg/googlesheets"
	"orderbot/internal/pkg/kafka"
	"orderbot/internal/pkg/layouts"
	metrics_system "orderbot/internal/pkg/metrics"
	"orderbot/internal/pkg/middlewares/graceful_shutdown"
	"orderbot/internal/pkg/middlewares/metrics"
	"orderbot/internal/pkg/middlewares/rate_limiter"
	"orderbot/internal/pkg/middlewares/timeout"
	"orderbot/internal/pkg/postgres"
	"orderbot/internal/pkg/telegram"
	"orderbot/pkg/logger"
	"orderbot/pkg/logger/zap_adapter"
	"orderbot/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting orderbot application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx намеренно наследуются от context.Background() ради graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	registry, err := layouts.Load(cfg.GoogleSheets.LayoutsFile)
	if err != nil {
		return fmt.Errorf("layouts: %w", err)
	}

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, log, pool); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	sheetsClient, err := googlesheets.NewClient(ctx, log, &cfg.GoogleSheets)
	if err != nil {
		return fmt.Errorf("google sheets: %w", err)
	}

	bot, err := telegram.NewBot(ctx, log, &cfg.Telegram)
	if err != nil {
		return fmt.Errorf("telegram bot: %w", err)
	}

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close kafka producer", logger.NewField("error", err))
		}
	}()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// фоновые задачи живут до SIGTERM
	businessApp, err := application.InitializeApplication(
		ctx, log, pool, pgxv5.DefaultCtxGetter, sheetsClient, bot, producer, registry, cfg,
	)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	if cfg.Telegram.WebhookURL != "" {
		webhookURL := cfg.Telegram.WebhookURL + "/telegram/" + cfg.Telegram.WebhookSecret
		if err := businessApp.Messenger.SetWebhook(ctx, webhookURL); err != nil {
			runLog.Error("failed to register telegram webhook", logger.NewField("error", err))
		} else {
			runLog.Info("telegram webhook registered")
		}
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pool, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, pool),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // при выключенном pprof канал nil и кейс никогда не сработает
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	pool *pgxpool.Pool,
	app *application.Application,
	cfg *config.Config,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(
		log,
		cfg.Server.RateLimiterQPS,
		token_bucket.NewTokenBucket(cfg.Server.RateLimiterBurst, float64(cfg.Server.RateLimiterQPS)),
	))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods(http.MethodHead, http.MethodGet)

	router.Handle("/telegram/{secret}", telegram_webhook_post.New(
		log,
		app.OrderService,
		app.Messenger,
		app.ChatLimiter,
		cfg.Telegram.WebhookSecret,
	)).Methods(http.MethodPost)

	router.Handle("/delivery-options", delivery_options_get.New(log, app.DeliveryDates)).Methods(http.MethodGet)
	router.Handle("/order-lines", order_lines_get.New(log, app.OrderLineService)).Methods(http.MethodGet)

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, pool *pgxpool.Pool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods(http.MethodHead, http.MethodGet)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
