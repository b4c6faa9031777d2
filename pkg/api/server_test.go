package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sync"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/require"
	"github.com/windlassio/windlass/ent"
	"github.com/windlassio/windlass/ent/cascadesession"
	"github.com/windlassio/windlass/pkg/checkpoint"
	"github.com/windlassio/windlass/pkg/config"
	"github.com/windlassio/windlass/pkg/services"
	"github.com/windlassio/windlass/pkg/trace"
	"github.com/windlassio/windlass/pkg/unifiedlog"
)

// fakeSessions is an in-memory SessionAPI.
type fakeSessions struct {
	mu        sync.Mutex
	sessions  map[string]*ent.CascadeSession
	created   []services.CreateSessionRequest
	cancelled map[string]string
	listResp  *services.SessionListResponse
	lastList  services.SessionFilters
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{
		sessions:  make(map[string]*ent.CascadeSession),
		cancelled: make(map[string]string),
		listResp:  &services.SessionListResponse{Sessions: []*ent.CascadeSession{}, Limit: 20},
	}
}

func (f *fakeSessions) CreateSession(_ context.Context, req services.CreateSessionRequest) (*ent.CascadeSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, req)
	id := req.SessionID
	if id == "" {
		id = "generated-id"
	}
	session := &ent.CascadeSession{ID: id, CascadeID: req.CascadeID, Status: cascadesession.StatusQueued}
	f.sessions[id] = session
	return session, nil
}

func (f *fakeSessions) GetSession(_ context.Context, sessionID string) (*ent.CascadeSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return session, nil
}

func (f *fakeSessions) ListSessions(_ context.Context, filters services.SessionFilters) (*services.SessionListResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastList = filters
	return f.listResp, nil
}

func (f *fakeSessions) RequestCancel(_ context.Context, sessionID, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.sessions[sessionID]; !ok {
		return services.ErrNotFound
	}
	f.cancelled[sessionID] = reason
	return nil
}

// fakeLogs is an in-memory LogAPI.
type fakeLogs struct {
	mu         sync.Mutex
	rows       []*unifiedlog.Row
	roots      []*trace.Node
	mermaid    string
	lastFilter unifiedlog.Filter
}

func (f *fakeLogs) QueryRows(_ context.Context, filter unifiedlog.Filter) ([]*unifiedlog.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = filter
	return f.rows, nil
}

func (f *fakeLogs) Trace(_ context.Context, _ string) ([]*trace.Node, error) {
	return f.roots, nil
}

func (f *fakeLogs) Mermaid(_ context.Context, _ string) (string, error) {
	return f.mermaid, nil
}

// fakeAudible records interjections.
type fakeAudible struct {
	mu       sync.Mutex
	requests map[string]string
}

func (f *fakeAudible) RequestAudible(sessionID, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.requests == nil {
		f.requests = make(map[string]string)
	}
	f.requests[sessionID] = message
}

type apiHarness struct {
	server      *Server
	sessions    *fakeSessions
	logs        *fakeLogs
	checkpoints *checkpoint.Manager
	audibles    *fakeAudible
}

func newTestServer(t *testing.T, cascades map[string]*config.CascadeConfig) *apiHarness {
	t.Helper()
	h := &apiHarness{
		sessions:    newFakeSessions(),
		logs:        &fakeLogs{mermaid: "flowchart TD"},
		checkpoints: checkpoint.NewManager(checkpoint.NewMemoryStore(), nil),
		audibles:    &fakeAudible{},
	}
	h.server = &Server{
		registry:    config.NewCascadeRegistry(cascades),
		sessions:    h.sessions,
		logs:        h.logs,
		checkpoints: h.checkpoints,
		audibles:    h.audibles,
		echo:        echo.New(),
	}
	h.server.registerRoutes()
	return h
}

// do runs one request through the full router.
func (h *apiHarness) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.server.echo.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func testCascades() map[string]*config.CascadeConfig {
	return map[string]*config.CascadeConfig{
		"survey": {
			CascadeID:   "survey",
			Description: "Survey the area",
			Phases: []config.PhaseConfig{
				{Name: "gather", Instructions: "Gather."},
				{Name: "analyze", Instructions: "Analyze."},
			},
		},
		"deep_dive": {
			CascadeID: "deep_dive",
			Phases:    []config.PhaseConfig{{Name: "dig", Instructions: "Dig."}},
			Soundings: &config.SoundingsConfig{Factor: 3},
		},
	}
}

func TestHealthHandler(t *testing.T) {
	h := newTestServer(t, testCascades())

	rec := h.do(t, "GET", "/health", nil)
	require.Equal(t, 200, rec.Code)
	resp := decodeBody[HealthResponse](t, rec)
	require.Equal(t, "healthy", resp.Status)
	require.NotEmpty(t, resp.Version)

	rec = h.do(t, "GET", "/api/v1/health", nil)
	require.Equal(t, 200, rec.Code)
}

func TestWSHandlerUnavailableWithoutManager(t *testing.T) {
	h := newTestServer(t, testCascades())

	rec := h.do(t, "GET", "/ws", nil)
	require.Equal(t, 503, rec.Code)
}
