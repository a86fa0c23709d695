// cmd/dashboard-server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"talenthub-dashboard/internal/common/cache"
	"talenthub-dashboard/internal/common/config"
	"talenthub-dashboard/internal/common/logger"
	"talenthub-dashboard/internal/common/observability"
	"talenthub-dashboard/internal/dashboards/employer"
	"talenthub-dashboard/internal/dashboards/member"
	"talenthub-dashboard/internal/dashboards/mentor"
	"talenthub-dashboard/internal/fetch"
	"talenthub-dashboard/internal/marketplace"
	"talenthub-dashboard/internal/mutations"
	"talenthub-dashboard/internal/server"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info", "console")
		fallback.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting dashboard server...",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Redis with retry ---
	var store cache.Cache
	if cfg.Cache.Disabled {
		store = cache.Noop{}
		zapLog.Info("Query cache disabled, running without Redis")
	} else {
		var redisCache *cache.RedisCache
		err = retryWithBackoff(func() error {
			redisCache = cache.NewRedis(cfg.Redis)
			return redisCache.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redisCache.Close()
		store = redisCache
		zapLog.Info("Redis connected successfully")
	}

	// --- Wire the service graph ---
	client := marketplace.NewClient(cfg.Upstream, log)
	orchestrator := fetch.NewOrchestrator(store, cfg.Cache, log)

	srv := server.New(
		cfg,
		log,
		obs,
		client,
		employer.NewHandler(cfg.Dashboards, client, orchestrator, log),
		mentor.NewHandler(cfg.Dashboards, client, orchestrator, log),
		member.NewHandler(cfg.Dashboards, client, orchestrator, log),
		mutations.NewService(client, store, cfg.Cache, log),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// --- Graceful shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		zapLog.Fatal("http server failed", zap.Error(err))
	case sig := <-stop:
		zapLog.Info("Shutdown signal received", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
	zapLog.Info("Server stopped")
}
