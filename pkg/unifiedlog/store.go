package unifiedlog

import (
	"context"
	"time"
)

// Filter selects rows for Query. Zero values mean no constraint.
type Filter struct {
	SessionID     string
	TraceID       string
	PhaseName     string
	NodeType      string
	Role          string
	SoundingIndex *int
	IsWinner      *bool
	SpeciesHash   string
	Since         time.Time
	Until         time.Time
	Limit         int
	Offset        int
}

// Store persists unified-log rows. Implementations must tolerate batch
// writes of rows for many sessions at once.
type Store interface {
	// WriteRows persists a batch. Either all rows land or an error is
	// returned and the caller retains the batch for retry.
	WriteRows(ctx context.Context, rows []*Row) error

	// Query returns rows matching the filter, ordered by timestamp.
	Query(ctx context.Context, f Filter) ([]*Row, error)

	// MarkWinners sets is_winner=true on every row matching
	// (session_id, phase_name, sounding_index). Returns rows updated.
	MarkWinners(ctx context.Context, sessionID, phaseName string, soundingIndex int) (int, error)

	// PriorWinningRewrites returns the most recent winning mutation rows
	// sharing the given species hash, newest first, for rewrite learning.
	PriorWinningRewrites(ctx context.Context, speciesHash string, limit int) ([]*Row, error)
}
