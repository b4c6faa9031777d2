package unifiedlog

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/windlassio/windlass/pkg/agent"
	"github.com/windlassio/windlass/pkg/events"
)

// Options tune the buffering and cost-resolution behavior.
type Options struct {
	BatchSize        int           // ready rows that trigger a write (default 100)
	FlushInterval    time.Duration // max time between writes (default 10s)
	ResolverInterval time.Duration // resolver wake period (default 500ms)
	CostFetchDelay   time.Duration // min age before first lookup (default 3s)
	MaxWait          time.Duration // give up on cost after this (default 15s)
	Backoff          []time.Duration
}

// DefaultOptions returns the standard tuning.
func DefaultOptions() Options {
	return Options{
		BatchSize:        100,
		FlushInterval:    10 * time.Second,
		ResolverInterval: 500 * time.Millisecond,
		CostFetchDelay:   3 * time.Second,
		MaxWait:          15 * time.Second,
		Backoff:          []time.Duration{0, time.Second, 2 * time.Second, 3 * time.Second},
	}
}

type pendingRow struct {
	row      *Row
	queuedAt time.Time
	attempts int
	nextTry  time.Time
}

// UnifiedLog buffers rows in two stages. Assistant rows with a request id and
// no cost wait in the pending buffer for the background cost resolver; every
// other row goes straight to ready. A single writer goroutine drains ready in
// batches. Write failures retain the batch and retry on the next cycle.
type UnifiedLog struct {
	store   Store
	fetcher agent.CostFetcher // nil disables cost resolution
	bus     *events.Bus       // nil disables event publication
	opts    Options

	mu      sync.Mutex
	pending []*pendingRow
	ready   []*Row

	wakeCh   chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a UnifiedLog and starts its writer and resolver goroutines.
func New(store Store, fetcher agent.CostFetcher, bus *events.Bus, opts Options) *UnifiedLog {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 100
	}
	if opts.FlushInterval <= 0 {
		opts.FlushInterval = 10 * time.Second
	}
	if opts.ResolverInterval <= 0 {
		opts.ResolverInterval = 500 * time.Millisecond
	}
	if opts.CostFetchDelay <= 0 {
		opts.CostFetchDelay = 3 * time.Second
	}
	if opts.MaxWait <= 0 {
		opts.MaxWait = 15 * time.Second
	}
	if len(opts.Backoff) == 0 {
		opts.Backoff = []time.Duration{0, time.Second, 2 * time.Second, 3 * time.Second}
	}

	l := &UnifiedLog{
		store:   store,
		fetcher: fetcher,
		bus:     bus,
		opts:    opts,
		wakeCh:  make(chan struct{}, 1),
		stopCh:  make(chan struct{}),
	}

	l.wg.Add(1)
	go l.writerLoop()
	if fetcher != nil {
		l.wg.Add(1)
		go l.resolverLoop()
	}
	return l
}

// Log enqueues a row. Missing row id and timestamp are filled in.
func (l *UnifiedLog) Log(row *Row) {
	if row.RowID == "" {
		row.RowID = uuid.NewString()
	}
	if row.Timestamp.IsZero() {
		row.Timestamp = time.Now().UTC()
	}

	l.mu.Lock()
	if row.needsCostResolution() && l.fetcher != nil {
		l.pending = append(l.pending, &pendingRow{row: row, queuedAt: time.Now()})
		l.mu.Unlock()
		return
	}
	l.ready = append(l.ready, row)
	full := len(l.ready) >= l.opts.BatchSize
	l.mu.Unlock()

	if full {
		select {
		case l.wakeCh <- struct{}{}:
		default:
		}
	}
}

// Flush synchronously resolves remaining pending rows (one immediate lookup
// each) and writes everything buffered.
func (l *UnifiedLog) Flush(ctx context.Context) error {
	l.mu.Lock()
	pending := l.pending
	l.pending = nil
	l.mu.Unlock()

	for _, p := range pending {
		if l.fetcher != nil {
			if cost, err := l.fetcher.FetchCost(ctx, *p.row.RequestID); err == nil {
				l.mergeCost(p.row, cost)
			}
		}
		l.mu.Lock()
		l.ready = append(l.ready, p.row)
		l.mu.Unlock()
	}
	return l.writeReady(ctx)
}

// Query reads rows from the store. Buffered rows not yet written are not
// visible; callers needing read-your-writes flush first.
func (l *UnifiedLog) Query(ctx context.Context, f Filter) ([]*Row, error) {
	return l.store.Query(ctx, f)
}

// MarkWinners flushes buffered rows for consistency, then range-updates
// is_winner on storage.
func (l *UnifiedLog) MarkWinners(ctx context.Context, sessionID, phaseName string, soundingIndex int) (int, error) {
	if err := l.Flush(ctx); err != nil {
		return 0, err
	}
	return l.store.MarkWinners(ctx, sessionID, phaseName, soundingIndex)
}

// PriorWinningRewrites looks up winning mutation rows by species hash.
func (l *UnifiedLog) PriorWinningRewrites(ctx context.Context, speciesHash string, limit int) ([]*Row, error) {
	return l.store.PriorWinningRewrites(ctx, speciesHash, limit)
}

// Close stops the background loops and performs a final flush.
func (l *UnifiedLog) Close() error {
	l.stopOnce.Do(func() { close(l.stopCh) })
	l.wg.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return l.Flush(ctx)
}

func (l *UnifiedLog) writerLoop() {
	defer l.wg.Done()
	ticker := time.NewTicker(l.opts.FlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopCh:
			return
		case <-ticker.C:
		case <-l.wakeCh:
		}
		if err := l.writeReady(context.Background()); err != nil {
			slog.Error("Unified log write failed, retaining rows", "error", err)
		}
	}
}

// writeReady swaps out the ready buffer and writes it. On failure the rows
// are put back at the front of the buffer and a log_error event is published.
func (l *UnifiedLog) writeReady(ctx context.Context) error {
	l.mu.Lock()
	batch := l.ready
	l.ready = nil
	l.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	if err := l.store.WriteRows(ctx, batch); err != nil {
		l.mu.Lock()
		l.ready = append(batch, l.ready...)
		l.mu.Unlock()
		if l.bus != nil {
			l.bus.Publish(events.TopicLogError, map[string]any{
				"error":         err.Error(),
				"rows_retained": len(batch),
			})
		}
		return err
	}
	return nil
}

func (l *UnifiedLog) resolverLoop() {
	defer l.wg.Done()
	ticker := time.NewTicker(l.opts.ResolverInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopCh:
			return
		case <-ticker.C:
			l.resolvePending()
		}
	}
}

// resolvePending looks up costs for pending rows that are old enough and due
// for a retry. Rows older than MaxWait are released without cost.
func (l *UnifiedLog) resolvePending() {
	now := time.Now()

	l.mu.Lock()
	var due []*pendingRow
	var keep []*pendingRow
	var expired []*pendingRow
	for _, p := range l.pending {
		age := now.Sub(p.queuedAt)
		switch {
		case age >= l.opts.MaxWait:
			expired = append(expired, p)
		case age >= l.opts.CostFetchDelay && !now.Before(p.nextTry):
			due = append(due, p)
		default:
			keep = append(keep, p)
		}
	}
	l.pending = keep
	l.mu.Unlock()

	for _, p := range expired {
		slog.Warn("Cost resolution timed out, writing row without cost",
			"request_id", *p.row.RequestID, "session_id", p.row.SessionID)
		l.release(p.row)
	}

	for _, p := range due {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		cost, err := l.fetcher.FetchCost(ctx, *p.row.RequestID)
		cancel()

		if err != nil {
			if !errors.Is(err, agent.ErrCostNotReady) {
				slog.Debug("Cost lookup failed, will retry",
					"request_id", *p.row.RequestID, "error", err)
			}
			p.attempts++
			step := p.attempts
			if step >= len(l.opts.Backoff) {
				step = len(l.opts.Backoff) - 1
			}
			p.nextTry = time.Now().Add(l.opts.Backoff[step])
			l.mu.Lock()
			l.pending = append(l.pending, p)
			l.mu.Unlock()
			continue
		}

		l.mergeCost(p.row, cost)
		l.release(p.row)
		l.publishCostUpdate(p.row)
	}
}

func (l *UnifiedLog) mergeCost(row *Row, cost *agent.GenerationCost) {
	row.Cost = Ptr(cost.Cost)
	if cost.TokensIn > 0 {
		row.TokensIn = Ptr(cost.TokensIn)
	}
	if cost.TokensOut > 0 {
		row.TokensOut = Ptr(cost.TokensOut)
	}
	// The lookup names the provider that actually served the request,
	// which can differ from the configured label
	if cost.Provider != "" {
		row.Provider = Ptr(cost.Provider)
	}
}

func (l *UnifiedLog) release(row *Row) {
	l.mu.Lock()
	l.ready = append(l.ready, row)
	full := len(l.ready) >= l.opts.BatchSize
	l.mu.Unlock()
	if full {
		select {
		case l.wakeCh <- struct{}{}:
		default:
		}
	}
}

func (l *UnifiedLog) publishCostUpdate(row *Row) {
	if l.bus == nil {
		return
	}
	payload := events.CostUpdatePayload{
		Type:      events.EventTypeCostUpdate,
		SessionID: row.SessionID,
		TraceID:   row.TraceID,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if row.PhaseName != nil {
		payload.PhaseName = *row.PhaseName
	}
	if row.Cost != nil {
		payload.Cost = *row.Cost
	}
	if row.TokensIn != nil {
		payload.TokensIn = *row.TokensIn
	}
	if row.TokensOut != nil {
		payload.TokensOut = *row.TokensOut
	}
	l.bus.Publish(events.TopicCostUpdate, payload)
}
