package echo

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windlassio/windlass/pkg/unifiedlog"
)

type captureSink struct {
	mu   sync.Mutex
	rows []*unifiedlog.Row
}

func (s *captureSink) Log(row *unifiedlog.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, row)
}

func (s *captureSink) all() []*unifiedlog.Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*unifiedlog.Row, len(s.rows))
	copy(out, s.rows)
	return out
}

func TestEcho_AddHistoryForwardsToSink(t *testing.T) {
	sink := &captureSink{}
	e := New("sess-1", "demo", sink)
	e.SetScope(Scope{PhaseName: "draft", Depth: 1})

	e.AddHistory(Entry{
		Role:    "assistant",
		Content: "hello",
		TraceID: "t1",
		Model:   "gpt-test",
	})

	rows := sink.all()
	require.Len(t, rows, 1)
	assert.Equal(t, "sess-1", rows[0].SessionID)
	assert.Equal(t, "demo", rows[0].CascadeID)
	assert.Equal(t, "t1", rows[0].TraceID)
	require.NotNil(t, rows[0].PhaseName)
	assert.Equal(t, "draft", *rows[0].PhaseName)
	assert.Equal(t, unifiedlog.ActorMainAgent, rows[0].SemanticActor)
	assert.Equal(t, unifiedlog.PurposeGeneration, rows[0].SemanticPurpose)
	require.NotNil(t, rows[0].Model)
	assert.Equal(t, "gpt-test", *rows[0].Model)
}

func TestEcho_SemanticDefaultsFollowScope(t *testing.T) {
	sink := &captureSink{}
	e := New("sess-1", "demo", sink)

	e.SetScope(Scope{PhaseName: "draft", SoundingIndex: unifiedlog.Ptr(2)})
	e.AddHistory(Entry{Role: "assistant", Content: "a", TraceID: "t1"})

	e.SetScope(Scope{PhaseName: "draft", SoundingIndex: unifiedlog.Ptr(2), ReforgeStep: unifiedlog.Ptr(1)})
	e.AddHistory(Entry{Role: "assistant", Content: "b", TraceID: "t2"})

	// Explicit override wins
	e.AddHistory(Entry{Role: "user", Content: "c", TraceID: "t3", Actor: unifiedlog.ActorEvaluator, Purpose: unifiedlog.PurposeEvaluationInput})

	rows := sink.all()
	require.Len(t, rows, 3)
	assert.Equal(t, unifiedlog.ActorSoundingAgent, rows[0].SemanticActor)
	require.NotNil(t, rows[0].SoundingIndex)
	assert.Equal(t, 2, *rows[0].SoundingIndex)
	assert.Equal(t, unifiedlog.ActorReforgeAgent, rows[1].SemanticActor)
	assert.Equal(t, unifiedlog.ActorEvaluator, rows[2].SemanticActor)
	assert.Equal(t, unifiedlog.PurposeEvaluationInput, rows[2].SemanticPurpose)
}

func TestEcho_SkipUnifiedLog(t *testing.T) {
	sink := &captureSink{}
	e := New("sess-1", "demo", sink)

	e.AddHistory(Entry{Role: "user", Content: "quiet", TraceID: "t1", SkipUnifiedLog: true})

	assert.Empty(t, sink.all())
	assert.Len(t, e.History(), 1)
}

func TestEcho_Observers(t *testing.T) {
	e := New("sess-1", "demo", nil)

	var seen []Message
	e.Observe(func(m Message) { seen = append(seen, m) })

	e.AddHistory(Entry{Role: "user", Content: "one", TraceID: "t1"})
	e.AddHistory(Entry{Role: "assistant", Content: "two", TraceID: "t2"})

	require.Len(t, seen, 2)
	assert.Equal(t, "one", seen[0].Content)
	assert.Equal(t, "two", seen[1].Content)
}

func TestEcho_LineageAndErrors(t *testing.T) {
	e := New("sess-1", "demo", nil)

	e.AddLineage("draft", "first output", "t1")
	e.AddLineage("review", "second output", "t2")
	e.AddLineage("draft", "revised output", "t3")

	out, ok := e.LastOutput("draft")
	require.True(t, ok)
	assert.Equal(t, "revised output", out)

	_, ok = e.LastOutput("missing")
	assert.False(t, ok)

	assert.False(t, e.HasErrors())
	e.AddError("draft", "validation", "schema mismatch", map[string]any{"attempt": 3})
	assert.True(t, e.HasErrors())
	errs := e.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "validation", errs[0].Type)
}

func TestEcho_CloneIsolation(t *testing.T) {
	e := New("sess-1", "demo", nil)
	e.SetState("shared", map[string]any{"count": 1})
	e.AddHistory(Entry{Role: "user", Content: "base", TraceID: "t1"})
	e.AddLineage("draft", "base output", "t1")

	clone := e.Clone()
	assert.Equal(t, "sess-1", clone.SessionID())

	// Mutating the clone leaves the parent untouched
	clone.SetState("extra", true)
	nested, _ := clone.StateValue("shared")
	nested.(map[string]any)["count"] = 99
	clone.AddHistory(Entry{Role: "assistant", Content: "clone work", TraceID: "t2"})
	clone.AddError("draft", "tool", "boom", nil)

	_, ok := e.StateValue("extra")
	assert.False(t, ok)
	parentNested, _ := e.StateValue("shared")
	assert.Equal(t, 1, parentNested.(map[string]any)["count"])
	assert.Len(t, e.History(), 1)
	assert.False(t, e.HasErrors())
}

func TestEcho_MergeWinner(t *testing.T) {
	e := New("sess-1", "demo", nil)
	e.AddHistory(Entry{Role: "user", Content: "base", TraceID: "t1"})
	e.AddLineage("draft", "base output", "t1")

	winner := e.Clone()
	winner.SetState("winner_key", "v")
	winner.AddHistory(Entry{Role: "assistant", Content: "winning answer", TraceID: "t2"})
	winner.AddLineage("review", "winning output", "t2")

	loser := e.Clone()
	loser.SetState("loser_key", "x")
	loser.AddHistory(Entry{Role: "assistant", Content: "losing answer", TraceID: "t3"})

	e.MergeWinner(winner)

	v, ok := e.StateValue("winner_key")
	require.True(t, ok)
	assert.Equal(t, "v", v)
	_, ok = e.StateValue("loser_key")
	assert.False(t, ok)

	history := e.History()
	require.Len(t, history, 2)
	assert.Equal(t, "winning answer", history[1].Content)

	out, ok := e.LastOutput("review")
	require.True(t, ok)
	assert.Equal(t, "winning output", out)
}
