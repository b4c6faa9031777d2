// Windlass orchestrator server: serves the HTTP API, runs the queue
// workers, and executes cascades.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/windlassio/windlass/ent"
	"github.com/windlassio/windlass/pkg/agent"
	"github.com/windlassio/windlass/pkg/api"
	"github.com/windlassio/windlass/pkg/checkpoint"
	"github.com/windlassio/windlass/pkg/config"
	"github.com/windlassio/windlass/pkg/database"
	"github.com/windlassio/windlass/pkg/events"
	"github.com/windlassio/windlass/pkg/queue"
	"github.com/windlassio/windlass/pkg/runner"
	"github.com/windlassio/windlass/pkg/services"
	"github.com/windlassio/windlass/pkg/tools"
	"github.com/windlassio/windlass/pkg/unifiedlog"
	"github.com/windlassio/windlass/pkg/version"
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
		getEnv("WINDLASS_CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env from the config directory before anything reads the environment
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()

	slog.Info("Starting windlass",
		"version", version.Full(),
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration: env settings, windlass.yaml, cascade definitions
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (runs migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
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

	// 3. Domain services
	sessionService := services.NewSessionService(dbClient.Client)
	eventService := services.NewEventService(dbClient.DB())

	// Sessions this pod left running before a restart are marked orphaned
	// now, before workers start claiming.
	if _, err := sessionService.RecoverPodSessions(ctx, podID); err != nil {
		slog.Error("Failed to recover pod sessions", "error", err)
	}

	// 4. Agent client against the OpenAI-compatible provider
	agentClient := agent.NewOpenAIClient(agent.ClientConfig{
		APIKey:   cfg.Settings.ProviderAPIKey,
		BaseURL:  cfg.Settings.ProviderBaseURL,
		Provider: getEnv("WINDLASS_PROVIDER_NAME", "openrouter"),
	})
	costFetcher := agent.NewHTTPCostFetcher(cfg.Settings.ProviderBaseURL, cfg.Settings.ProviderAPIKey)

	// 5. Streaming infrastructure
	bus := events.NewBus(0)
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(eventService, 10*time.Second)

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 6. Unified log with deferred cost resolution
	logOpts := unifiedlog.DefaultOptions()
	logOpts.CostFetchDelay = cfg.Settings.CostFetchDelay
	logOpts.MaxWait = cfg.Settings.CostMaxWait
	unifiedLog := unifiedlog.New(unifiedlog.NewEntStore(dbClient.Client), costFetcher, bus, logOpts)
	defer func() {
		if err := unifiedLog.Close(); err != nil {
			slog.Error("Error closing unified log", "error", err)
		}
	}()
	logService := services.NewLogService(unifiedLog)

	// 7. Checkpoints; responses also release sessions whose cancel arrived
	// while blocked
	checkpointManager := checkpoint.NewManager(
		checkpoint.NewEntStore(dbClient.Client), sessionService.IsCancelled)

	// 8. Cascade runner. The registry starts empty; cascade-backed tools are
	// invoked by path and memory-bank tools resolve per cascade.
	cascadeRunner, err := runner.New(runner.Deps{
		Client:      agentClient,
		Registry:    cfg.CascadeRegistry,
		Settings:    cfg.Settings,
		Tools:       tools.NewRegistry(),
		Log:         unifiedLog,
		Bus:         bus,
		Publisher:   eventPublisher,
		Checkpoints: checkpointManager,
		Sessions:    sessionService,
	})
	if err != nil {
		slog.Error("Failed to create runner", "error", err)
		os.Exit(1)
	}

	// 9. Worker pool claiming queued sessions for this pod
	executor := queue.ExecutorFunc(func(ctx context.Context, session *ent.CascadeSession) error {
		input := ""
		if session.Input != nil {
			input = *session.Input
		}
		_, err := cascadeRunner.Run(ctx, runner.RunRequest{
			CascadeID: session.CascadeID,
			SessionID: session.ID,
			Input:     input,
			Metadata:  session.SessionMetadata,
		})
		return err
	})
	workerPool := queue.NewWorkerPool(podID, sessionService, cfg.Queue, executor, eventPublisher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 10. HTTP server
	httpServer := api.NewServer(
		cfg.Settings,
		cfg.CascadeRegistry,
		dbClient,
		sessionService,
		logService,
		checkpointManager,
		cascadeRunner,
		workerPool,
		connManager,
	)

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Settings.Host, cfg.Settings.Port)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Windlass started",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount,
		"cascades", cfg.CascadeRegistry.Len())

	// 11. Wait for a shutdown signal or a server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: drain workers, then the HTTP server. Sessions
	// still running after the window are cancelled and orphan-recovered by
	// the next pod.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete sessions will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	if err := unifiedLog.Flush(context.Background()); err != nil {
		slog.Error("Final log flush failed", "error", err)
	}

	slog.Info("Shutdown complete")
}
