// Command hardgate-scand runs the hard-gate validation engine's Scan
// Service behind an HTTP API, adapted from qlp-hq-QLP's
// services/validation-service/cmd/main.go: same logger/config bootstrap and
// chi server shape, wired to this engine's own collaborators instead of the
// teacher's tenancy-scoped validation engine.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hardgate/scanengine/internal/config"
	"github.com/hardgate/scanengine/internal/eventbus"
	"github.com/hardgate/scanengine/internal/httpapi"
	"github.com/hardgate/scanengine/internal/jiraposter"
	"github.com/hardgate/scanengine/internal/llmhook"
	"github.com/hardgate/scanengine/internal/logger"
	"github.com/hardgate/scanengine/internal/reportstore"
	"github.com/hardgate/scanengine/internal/reposource"
	"github.com/hardgate/scanengine/internal/scanservice"
	"github.com/hardgate/scanengine/internal/scanstore"
)

func main() {
	config.LoadEnv()

	if err := logger.InitFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.WithComponent("hardgate-scand")
	log.Info("starting hard-gate validation engine")

	store := buildStore(log)
	bus := buildEventBus(log)
	hook := buildLLMHook(log)

	reportDir := config.GetEnvOrDefault("HARDGATE_REPORT_DIR", "./reports")
	reportRenderer := reportstore.NewHTMLRenderer()
	reports, err := reportstore.NewFSStore(reportDir)
	if err != nil {
		log.Fatal("failed to initialize report store", zap.Error(err))
	}

	svc := scanservice.New(store, reposource.Local{}, hook, bus, config.Default())
	handler := httpapi.NewHandler(svc, reportRenderer, reports, jiraposter.NoOp{})

	port := config.GetEnvOrDefault("PORT", "8085")
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 600 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Info("shutting down server")
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	if k, ok := bus.(*eventbus.Kafka); ok {
		_ = k.Close()
	}
	log.Info("server stopped")
}

func buildStore(log *zap.Logger) scanstore.Store {
	switch config.GetEnvOrDefault("HARDGATE_STORE_BACKEND", "memory") {
	case "redis":
		addr := config.GetEnvOrDefault("HARDGATE_REDIS_ADDR", "localhost:6379")
		log.Info("using redis scan store", zap.String("addr", addr))
		return scanstore.NewRedis(addr)
	case "postgres":
		dbURL := os.Getenv("HARDGATE_DATABASE_URL")
		pg, err := scanstore.NewPostgres(dbURL)
		if err != nil {
			log.Fatal("failed to connect to postgres scan store", zap.Error(err))
		}
		log.Info("using postgres scan store")
		return pg
	default:
		log.Info("using in-memory scan store")
		return scanstore.NewMemory()
	}
}

func buildEventBus(log *zap.Logger) eventbus.Bus {
	brokers := config.GetKafkaBrokers()
	if len(brokers) == 0 {
		log.Info("no kafka brokers configured, scan events will not be published")
		return eventbus.NoOp{}
	}
	log.Info("publishing scan events to kafka", zap.Strings("brokers", brokers))
	return eventbus.NewKafka(brokers)
}

func buildLLMHook(log *zap.Logger) llmhook.Hook {
	var hooks []llmhook.Hook

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		hooks = append(hooks, llmhook.NewOpenAIProvider(key, config.GetEnvOrDefault("HARDGATE_OPENAI_MODEL", "")))
	}
	if key := os.Getenv("GROQ_API_KEY"); key != "" {
		groqHook, err := llmhook.NewGroqProvider(key)
		if err != nil {
			log.Warn("failed to initialize groq provider", zap.Error(err))
		} else {
			hooks = append(hooks, groqHook)
		}
	}

	if len(hooks) == 0 {
		log.Info("no LLM provider configured, gate enhancement disabled")
		return llmhook.NoOp{}
	}

	budget := 20 * time.Second
	return llmhook.WithDeadline(llmhook.NewFallback(hooks...), budget)
}
