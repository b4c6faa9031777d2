package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windlassio/windlass/pkg/unifiedlog"
)

func newTestLogService(t *testing.T) (*LogService, *unifiedlog.UnifiedLog) {
	t.Helper()
	ul := unifiedlog.New(unifiedlog.NewMemoryStore(), nil, nil, unifiedlog.Options{})
	t.Cleanup(func() { _ = ul.Close() })
	return NewLogService(ul), ul
}

func TestLogService_Trace(t *testing.T) {
	svc, ul := newTestLogService(t)
	base := time.Now().UTC()

	phaseTrace := "trace-phase"
	callTrace := "trace-call"
	ul.Log(&unifiedlog.Row{
		SessionID: "s1",
		TraceID:   phaseTrace,
		NodeType:  "phase",
		PhaseName: unifiedlog.Ptr("triage"),
		Depth:     0,
		Timestamp: base,
	})
	ul.Log(&unifiedlog.Row{
		SessionID: "s1",
		TraceID:   callTrace,
		ParentID:  &phaseTrace,
		NodeType:  "llm_call",
		PhaseName: unifiedlog.Ptr("triage"),
		Depth:     1,
		Timestamp: base.Add(time.Second),
	})
	// Second row on the same trace id collapses into one node
	ul.Log(&unifiedlog.Row{
		SessionID: "s1",
		TraceID:   callTrace,
		ParentID:  &phaseTrace,
		NodeType:  "llm_call",
		PhaseName: unifiedlog.Ptr("triage"),
		Depth:     1,
		Timestamp: base.Add(2 * time.Second),
	})
	ul.Log(&unifiedlog.Row{
		SessionID:     "s1",
		TraceID:       "trace-branch",
		ParentID:      &phaseTrace,
		NodeType:      "phase",
		PhaseName:     unifiedlog.Ptr("triage"),
		SoundingIndex: unifiedlog.Ptr(1),
		Depth:         1,
		Timestamp:     base.Add(3 * time.Second),
	})
	ul.Log(&unifiedlog.Row{
		SessionID: "other",
		TraceID:   "trace-other",
		NodeType:  "phase",
		PhaseName: unifiedlog.Ptr("unrelated"),
		Timestamp: base,
	})

	roots, err := svc.Trace(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "triage", roots[0].Name)
	require.Len(t, roots[0].Children, 2)
	assert.Equal(t, "triage", roots[0].Children[0].Name)
	assert.Equal(t, "llm_call", roots[0].Children[0].NodeType)
	assert.Equal(t, "triage [sounding 1]", roots[0].Children[1].Name)
}

func TestLogService_Mermaid(t *testing.T) {
	svc, ul := newTestLogService(t)

	phaseTrace := "trace-phase"
	ul.Log(&unifiedlog.Row{
		SessionID: "s1",
		TraceID:   phaseTrace,
		NodeType:  "phase",
		PhaseName: unifiedlog.Ptr("triage"),
		Timestamp: time.Now().UTC(),
	})
	ul.Log(&unifiedlog.Row{
		SessionID: "s1",
		TraceID:   "trace-call",
		ParentID:  &phaseTrace,
		NodeType:  "llm_call",
		Depth:     1,
		Timestamp: time.Now().UTC().Add(time.Second),
	})

	src, err := svc.Mermaid(context.Background(), "s1")
	require.NoError(t, err)
	assert.Contains(t, src, "graph TD")
	assert.Contains(t, src, "triage")
	assert.Contains(t, src, "llm_call")
}

func TestLogService_QueryRowsFlushesFirst(t *testing.T) {
	svc, ul := newTestLogService(t)

	ul.Log(&unifiedlog.Row{
		SessionID: "s1",
		TraceID:   "t1",
		NodeType:  "phase",
		Timestamp: time.Now().UTC(),
	})

	// Row is still buffered; QueryRows must flush before reading.
	rows, err := svc.QueryRows(context.Background(), unifiedlog.Filter{SessionID: "s1"})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
