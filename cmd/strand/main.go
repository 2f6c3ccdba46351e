// Strand runtime server — runs the durable work pool, the intent sweeper,
// and the operational HTTP API over one PostgreSQL event store.
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

	"github.com/strandkit/strand/pkg/agentgw"
	"github.com/strandkit/strand/pkg/api"
	"github.com/strandkit/strand/pkg/bus"
	"github.com/strandkit/strand/pkg/command"
	"github.com/strandkit/strand/pkg/config"
	"github.com/strandkit/strand/pkg/database"
	"github.com/strandkit/strand/pkg/durable"
	"github.com/strandkit/strand/pkg/eventstore"
	"github.com/strandkit/strand/pkg/workpool"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	podID := resolvePodID()

	// 1. Load configuration (.env + strand.yaml + env overrides)
	cfg, err := config.Load(*configDir)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting strand",
		"pod_id", podID,
		"config_dir", *configDir,
		"api_addr", cfg.API.Addr)

	ctx := context.Background()

	// 2. Connect to the database and apply migrations
	dbClient, err := database.NewClient(ctx, cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup: requeue items this pod left
	// in_progress in a previous life.
	if err := workpool.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. Core runtime pieces
	store := eventstore.NewPGStore(dbClient.Client)
	intents := durable.NewEntIntentStore(dbClient.Client)

	registry := workpool.NewRegistry()
	if err := durable.RegisterTimeoutHandler(registry, intents); err != nil {
		slog.Error("Failed to register intent timeout handler", "error", err)
		os.Exit(1)
	}

	// 5. Agent gateway (optional — only when an endpoint is configured).
	// grpc.NewClient dials lazily; the connection happens on first RPC.
	if cfg.Agent.Endpoint != "" {
		gateway, agentClient, gwErr := agentgw.New(cfg.Agent, agentgw.NewBudgetTracker(0))
		if gwErr != nil {
			slog.Error("Failed to initialize agent gateway",
				"endpoint", cfg.Agent.Endpoint, "error", gwErr)
			os.Exit(1)
		}
		defer func() {
			if err := agentClient.Close(); err != nil {
				slog.Error("Error closing agent client", "error", err)
			}
		}()
		if err := registry.RegisterAction("agent.invoke", gateway.ActionHandler()); err != nil {
			slog.Error("Failed to register agent action", "error", err)
			os.Exit(1)
		}
		slog.Info("Agent gateway initialized", "endpoint", cfg.Agent.Endpoint)
	}

	// 6. Start the work pool (before the HTTP server)
	pool := workpool.New(podID, dbClient.Client, cfg.Pool, cfg.Retry, registry)
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start work pool", "error", err)
		os.Exit(1)
	}

	// 7. Durable executor sweeper (backs up the scheduled timeout jobs)
	eventBus, err := bus.New()
	if err != nil {
		slog.Error("Failed to create event bus", "error", err)
		os.Exit(1)
	}
	orchestrator := command.NewOrchestrator(store, eventBus)
	durableExec := durable.NewExecutor(intents, orchestrator, store, cfg.Durable)
	durableExec.StartSweeper()

	// 8. HTTP server (non-blocking)
	httpServer := api.NewServer(dbClient, pool, intents).HTTPServer(cfg.API)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Strand started successfully",
		"pod_id", podID,
		"workers", cfg.Pool.WorkerCount)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Pool.GracefulShutdownTimeout)
	defer cancel()

	durableExec.StopSweeper()

	// Stop the pool (wait for in-flight items to finish)
	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Work pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — in-flight items will be orphan-recovered")
	}

	// Stop the HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
