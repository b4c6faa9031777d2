package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/windlassio/windlass/pkg/trace"
	"github.com/windlassio/windlass/pkg/unifiedlog"
)

// LogService exposes the unified log to the API: raw row queries, the
// reconstructed trace tree, and its Mermaid rendering.
type LogService struct {
	log *unifiedlog.UnifiedLog
}

// NewLogService creates a new LogService.
func NewLogService(log *unifiedlog.UnifiedLog) *LogService {
	return &LogService{log: log}
}

// QueryRows flushes buffered rows then queries the log store.
func (s *LogService) QueryRows(ctx context.Context, filter unifiedlog.Filter) ([]*unifiedlog.Row, error) {
	if err := s.log.Flush(ctx); err != nil {
		return nil, fmt.Errorf("failed to flush log before query: %w", err)
	}
	return s.log.Query(ctx, filter)
}

// Trace rebuilds the execution trace tree for a session from its log rows.
func (s *LogService) Trace(ctx context.Context, sessionID string) ([]*trace.Node, error) {
	rows, err := s.QueryRows(ctx, unifiedlog.Filter{SessionID: sessionID})
	if err != nil {
		return nil, err
	}
	refs := make([]trace.RowRef, 0, len(rows))
	for _, r := range rows {
		refs = append(refs, trace.RowRef{
			TraceID:   r.TraceID,
			ParentID:  deref(r.ParentID),
			NodeType:  r.NodeType,
			Name:      rowName(r),
			Depth:     r.Depth,
			Timestamp: r.Timestamp.UnixNano(),
		})
	}
	return trace.BuildTree(refs), nil
}

// Mermaid renders the session trace as Mermaid flowchart source.
func (s *LogService) Mermaid(ctx context.Context, sessionID string) (string, error) {
	roots, err := s.Trace(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return trace.Mermaid(roots), nil
}

// rowName labels a trace node: the phase name when present, suffixed with the
// sounding index for fan-out branches, falling back to the node type.
func rowName(r *unifiedlog.Row) string {
	name := deref(r.PhaseName)
	if name == "" {
		name = r.NodeType
	}
	if r.SoundingIndex != nil {
		name += " [sounding " + strconv.Itoa(*r.SoundingIndex) + "]"
	}
	return name
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
