package unifiedlog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windlassio/windlass/pkg/agent"
	"github.com/windlassio/windlass/pkg/events"
)

func fastOptions() Options {
	return Options{
		BatchSize:        100,
		FlushInterval:    20 * time.Millisecond,
		ResolverInterval: 5 * time.Millisecond,
		CostFetchDelay:   10 * time.Millisecond,
		MaxWait:          150 * time.Millisecond,
		Backoff:          []time.Duration{0, 5 * time.Millisecond, 10 * time.Millisecond},
	}
}

type fakeCostFetcher struct {
	mu    sync.Mutex
	costs map[string]*agent.GenerationCost
	errs  map[string]error
	calls map[string]int
}

func newFakeCostFetcher() *fakeCostFetcher {
	return &fakeCostFetcher{
		costs: make(map[string]*agent.GenerationCost),
		errs:  make(map[string]error),
		calls: make(map[string]int),
	}
}

func (f *fakeCostFetcher) FetchCost(_ context.Context, requestID string) (*agent.GenerationCost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[requestID]++
	if err, ok := f.errs[requestID]; ok {
		return nil, err
	}
	if c, ok := f.costs[requestID]; ok {
		return c, nil
	}
	return nil, agent.ErrCostNotReady
}

func (f *fakeCostFetcher) callCount(requestID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[requestID]
}

func assistantRow(sessionID, requestID string) *Row {
	return &Row{
		SessionID: sessionID,
		TraceID:   "trace-1",
		NodeType:  NodeTypeMessage,
		Role:      "assistant",
		CascadeID: "demo",
		PhaseName: Ptr("draft"),
		RequestID: Ptr(requestID),

		SemanticActor:   ActorMainAgent,
		SemanticPurpose: PurposeGeneration,
	}
}

func frameworkRow(sessionID string) *Row {
	return &Row{
		SessionID:       sessionID,
		TraceID:         "trace-1",
		NodeType:        NodeTypeLifecycle,
		CascadeID:       "demo",
		SemanticActor:   ActorFramework,
		SemanticPurpose: PurposeLifecycle,
	}
}

func TestUnifiedLog_ReadyRowsWritten(t *testing.T) {
	store := NewMemoryStore()
	l := New(store, nil, nil, fastOptions())
	defer l.Close()

	l.Log(frameworkRow("s1"))
	l.Log(frameworkRow("s1"))

	require.Eventually(t, func() bool {
		rows, err := store.Query(context.Background(), Filter{SessionID: "s1"})
		return err == nil && len(rows) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestUnifiedLog_AssignsIDAndTimestamp(t *testing.T) {
	store := NewMemoryStore()
	l := New(store, nil, nil, fastOptions())
	defer l.Close()

	row := frameworkRow("s1")
	l.Log(row)
	assert.NotEmpty(t, row.RowID)
	assert.False(t, row.Timestamp.IsZero())
}

func TestUnifiedLog_CostResolution(t *testing.T) {
	store := NewMemoryStore()
	fetcher := newFakeCostFetcher()
	fetcher.costs["req-1"] = &agent.GenerationCost{
		RequestID: "req-1", Cost: 0.004, TokensIn: 100, TokensOut: 40, Provider: "DeepInfra",
	}

	bus := events.NewBus(16)
	ch, unsubscribe := bus.Subscribe(events.TopicCostUpdate)
	defer unsubscribe()

	l := New(store, fetcher, bus, fastOptions())
	defer l.Close()

	l.Log(assistantRow("s1", "req-1"))

	// Row is held back until the resolver merges the cost
	require.Eventually(t, func() bool {
		rows, err := store.Query(context.Background(), Filter{SessionID: "s1"})
		return err == nil && len(rows) == 1
	}, time.Second, 5*time.Millisecond)

	rows, err := store.Query(context.Background(), Filter{SessionID: "s1"})
	require.NoError(t, err)
	require.NotNil(t, rows[0].Cost)
	assert.InDelta(t, 0.004, *rows[0].Cost, 1e-9)
	require.NotNil(t, rows[0].TokensIn)
	assert.Equal(t, 100, *rows[0].TokensIn)
	require.NotNil(t, rows[0].Provider)
	assert.Equal(t, "DeepInfra", *rows[0].Provider)

	select {
	case evt := <-ch:
		payload, ok := evt.Payload.(events.CostUpdatePayload)
		require.True(t, ok)
		assert.Equal(t, "s1", payload.SessionID)
		assert.Equal(t, "trace-1", payload.TraceID)
		assert.Equal(t, "draft", payload.PhaseName)
		assert.InDelta(t, 0.004, payload.Cost, 1e-9)
	case <-time.After(time.Second):
		t.Fatal("no cost_update event published")
	}
}

func TestUnifiedLog_CostTimeoutWritesWithoutCost(t *testing.T) {
	store := NewMemoryStore()
	fetcher := newFakeCostFetcher() // never resolves

	l := New(store, fetcher, nil, fastOptions())
	defer l.Close()

	l.Log(assistantRow("s1", "req-never"))

	require.Eventually(t, func() bool {
		rows, err := store.Query(context.Background(), Filter{SessionID: "s1"})
		return err == nil && len(rows) == 1
	}, time.Second, 10*time.Millisecond)

	rows, _ := store.Query(context.Background(), Filter{SessionID: "s1"})
	assert.Nil(t, rows[0].Cost)
	assert.Greater(t, fetcher.callCount("req-never"), 0)
}

func TestUnifiedLog_FlushResolvesSynchronously(t *testing.T) {
	store := NewMemoryStore()
	fetcher := newFakeCostFetcher()
	fetcher.costs["req-1"] = &agent.GenerationCost{RequestID: "req-1", Cost: 0.01}

	// Long delays so the background resolver never fires
	opts := fastOptions()
	opts.CostFetchDelay = time.Hour
	opts.FlushInterval = time.Hour

	l := New(store, fetcher, nil, opts)
	defer l.Close()

	l.Log(assistantRow("s1", "req-1"))
	require.NoError(t, l.Flush(context.Background()))

	rows, err := store.Query(context.Background(), Filter{SessionID: "s1"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Cost)
	assert.InDelta(t, 0.01, *rows[0].Cost, 1e-9)
}

type failingStore struct {
	*MemoryStore
	mu    sync.Mutex
	fails int
}

func (s *failingStore) WriteRows(ctx context.Context, rows []*Row) error {
	s.mu.Lock()
	if s.fails > 0 {
		s.fails--
		s.mu.Unlock()
		return errors.New("disk full")
	}
	s.mu.Unlock()
	return s.MemoryStore.WriteRows(ctx, rows)
}

func TestUnifiedLog_WriteFailureRetainsRows(t *testing.T) {
	store := &failingStore{MemoryStore: NewMemoryStore(), fails: 2}
	bus := events.NewBus(16)
	ch, unsubscribe := bus.Subscribe(events.TopicLogError)
	defer unsubscribe()

	l := New(store, nil, bus, fastOptions())
	defer l.Close()

	l.Log(frameworkRow("s1"))

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("no log_error event published")
	}

	// Retries succeed once the store recovers
	require.Eventually(t, func() bool {
		rows, err := store.Query(context.Background(), Filter{SessionID: "s1"})
		return err == nil && len(rows) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestUnifiedLog_MarkWinners(t *testing.T) {
	store := NewMemoryStore()
	l := New(store, nil, nil, fastOptions())
	defer l.Close()

	for i := 0; i < 3; i++ {
		row := frameworkRow("s1")
		row.PhaseName = Ptr("draft")
		row.SoundingIndex = Ptr(1)
		l.Log(row)
	}
	other := frameworkRow("s1")
	other.PhaseName = Ptr("draft")
	other.SoundingIndex = Ptr(2)
	l.Log(other)

	n, err := l.MarkWinners(context.Background(), "s1", "draft", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	winners, err := store.Query(context.Background(), Filter{SessionID: "s1", IsWinner: Ptr(true)})
	require.NoError(t, err)
	assert.Len(t, winners, 3)
}

func TestMemoryStore_PriorWinningRewrites(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	base := time.Now()
	for i := 0; i < 5; i++ {
		rows := []*Row{{
			RowID:           "r" + string(rune('0'+i)),
			Timestamp:       base.Add(time.Duration(i) * time.Second),
			SessionID:       "s1",
			TraceID:         "t",
			NodeType:        NodeTypeMutation,
			CascadeID:       "demo",
			SpeciesHash:     Ptr("abc123"),
			IsWinner:        Ptr(i%2 == 0),
			SemanticActor:   ActorMutator,
			SemanticPurpose: PurposeRefinement,
		}}
		require.NoError(t, store.WriteRows(ctx, rows))
	}

	rows, err := store.PriorWinningRewrites(ctx, "abc123", 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Newest first
	assert.True(t, rows[0].Timestamp.After(rows[1].Timestamp))
}
