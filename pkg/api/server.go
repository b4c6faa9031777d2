// Package api is the HTTP surface of the engine: run intake, session
// inspection (log, trace, graph), checkpoint responses, audibles, and the
// WebSocket event stream.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/windlassio/windlass/ent"
	"github.com/windlassio/windlass/pkg/checkpoint"
	"github.com/windlassio/windlass/pkg/config"
	"github.com/windlassio/windlass/pkg/database"
	"github.com/windlassio/windlass/pkg/events"
	"github.com/windlassio/windlass/pkg/queue"
	"github.com/windlassio/windlass/pkg/services"
	"github.com/windlassio/windlass/pkg/trace"
	"github.com/windlassio/windlass/pkg/unifiedlog"
)

// SessionAPI is the slice of the session service the handlers use.
type SessionAPI interface {
	CreateSession(ctx context.Context, req services.CreateSessionRequest) (*ent.CascadeSession, error)
	GetSession(ctx context.Context, sessionID string) (*ent.CascadeSession, error)
	ListSessions(ctx context.Context, filters services.SessionFilters) (*services.SessionListResponse, error)
	RequestCancel(ctx context.Context, sessionID, reason string) error
}

// LogAPI serves unified-log reads.
type LogAPI interface {
	QueryRows(ctx context.Context, filter unifiedlog.Filter) ([]*unifiedlog.Row, error)
	Trace(ctx context.Context, sessionID string) ([]*trace.Node, error)
	Mermaid(ctx context.Context, sessionID string) (string, error)
}

// CheckpointAPI serves checkpoint reads and responses. *checkpoint.Manager
// satisfies it.
type CheckpointAPI interface {
	Get(ctx context.Context, id string) (*checkpoint.Checkpoint, error)
	List(ctx context.Context, filter checkpoint.Filter) ([]*checkpoint.Checkpoint, error)
	PostResponse(ctx context.Context, id string, response map[string]any) (bool, error)
}

// AudibleSink accepts mid-phase user interjections. *runner.Runner satisfies it.
type AudibleSink interface {
	RequestAudible(sessionID, message string)
}

// Server is the HTTP API server.
type Server struct {
	settings    *config.Settings
	registry    *config.CascadeRegistry
	dbClient    *database.Client
	sessions    SessionAPI
	logs        LogAPI
	checkpoints CheckpointAPI
	audibles    AudibleSink
	pool        *queue.WorkerPool
	connManager *events.ConnectionManager

	echo *echo.Echo
	http *http.Server
}

// NewServer creates the API server and registers all routes. Optional
// collaborators (pool, connManager, checkpoints, audibles) may be nil; their
// endpoints degrade to 503.
func NewServer(
	settings *config.Settings,
	registry *config.CascadeRegistry,
	dbClient *database.Client,
	sessions SessionAPI,
	logs LogAPI,
	checkpoints CheckpointAPI,
	audibles AudibleSink,
	pool *queue.WorkerPool,
	connManager *events.ConnectionManager,
) *Server {
	s := &Server{
		settings:    settings,
		registry:    registry,
		dbClient:    dbClient,
		sessions:    sessions,
		logs:        logs,
		checkpoints: checkpoints,
		audibles:    audibles,
		pool:        pool,
		connManager: connManager,
		echo:        echo.New(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	e := s.echo
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)

	v1 := e.Group("/api/v1")
	v1.GET("/health", s.healthHandler)

	v1.GET("/cascades", s.listCascadesHandler)
	v1.POST("/cascades/:id/runs", s.runCascadeHandler)

	v1.GET("/sessions", s.listSessionsHandler)
	v1.GET("/sessions/:id", s.getSessionHandler)
	v1.POST("/sessions/:id/cancel", s.cancelSessionHandler)
	v1.POST("/sessions/:id/audible", s.audibleHandler)
	v1.GET("/sessions/:id/log", s.getLogHandler)
	v1.GET("/sessions/:id/trace", s.getTraceHandler)
	v1.GET("/sessions/:id/graph", s.getGraphHandler)

	v1.GET("/checkpoints", s.listCheckpointsHandler)
	v1.GET("/checkpoints/:id", s.getCheckpointHandler)
	v1.POST("/checkpoints/:id/response", s.respondCheckpointHandler)

	e.GET("/ws", s.wsHandler)
}

// Start runs the HTTP server. Blocks until Shutdown or a listener error;
// returns http.ErrServerClosed on clean shutdown.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
