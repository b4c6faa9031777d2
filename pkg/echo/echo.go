// Package echo holds a session's live in-memory state: the key/value state
// map, the ordered message history, the phase lineage, and the error list.
// An Echo is single-writer within a runner; sounding workers operate on deep
// clones and only the winner's clone is merged back.
package echo

import (
	"sync"
	"time"

	"github.com/windlassio/windlass/pkg/unifiedlog"
)

// Sink receives every history entry that is not explicitly skipped.
// *unifiedlog.UnifiedLog satisfies it.
type Sink interface {
	Log(row *unifiedlog.Row)
}

// Message is one history entry.
type Message struct {
	Role      string
	Content   string
	TraceID   string
	ParentID  string
	NodeType  string
	Actor     string
	Purpose   string
	Metadata  map[string]any
	Timestamp time.Time
}

// LineageEntry records one completed phase's output.
type LineageEntry struct {
	Phase   string
	Output  string
	TraceID string
}

// SessionError is one recorded failure; any entry makes the final session
// status "error".
type SessionError struct {
	Phase     string
	Type      string
	Message   string
	Metadata  map[string]any
	Timestamp time.Time
}

// Observer is called synchronously for every appended message. Observers
// must not block.
type Observer func(Message)

// Entry is the input to AddHistory. Zero semantic fields are filled in from
// the echo's current scope (main agent vs. sounding agent, generation).
type Entry struct {
	Role     string
	Content  string
	TraceID  string
	ParentID string
	NodeType string

	// Semantic overrides; computed from scope when empty
	Actor   string
	Purpose string

	// LLM call details, set on assistant rows
	Model          string
	ModelRequested string
	RequestID      string
	Provider       string
	DurationMs     int
	TokensIn       int
	TokensOut      int
	Cost           *float64
	FullRequest    string
	FullResponse   string
	ToolCallsJSON  string

	AttemptNumber *int
	TurnNumber    *int

	SpeciesHash      string
	MutationApplied  bool
	MutationType     string
	MutationTemplate string

	ImagesJSON string
	HasImages  bool
	HasBase64  bool

	IsCallout   bool
	CalloutName string

	Metadata       map[string]any
	SkipUnifiedLog bool
}

// Scope is the runner position the echo stamps onto log rows.
type Scope struct {
	PhaseName     string
	Depth         int
	SoundingIndex *int
	ReforgeStep   *int
	ParentSession string
}

// Echo is the per-session live state container.
type Echo struct {
	mu sync.Mutex

	sessionID string
	cascadeID string
	scope     Scope

	state     map[string]any
	history   []Message
	lineage   []LineageEntry
	errors    []SessionError
	observers []Observer

	sink Sink
}

// New creates an empty Echo for a session. sink may be nil (state-only use).
func New(sessionID, cascadeID string, sink Sink) *Echo {
	return &Echo{
		sessionID: sessionID,
		cascadeID: cascadeID,
		state:     make(map[string]any),
		sink:      sink,
	}
}

// SessionID returns the owning session id.
func (e *Echo) SessionID() string { return e.sessionID }

// CascadeID returns the owning cascade id.
func (e *Echo) CascadeID() string { return e.cascadeID }

// SetScope replaces the runner position stamped onto subsequent rows.
func (e *Echo) SetScope(s Scope) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scope = s
}

// CurrentScope returns the runner position.
func (e *Echo) CurrentScope() Scope {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scope
}

// SetState writes one state key.
func (e *Echo) SetState(key string, value any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state[key] = value
}

// State returns a shallow copy of the state map.
func (e *Echo) State() map[string]any {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]any, len(e.state))
	for k, v := range e.state {
		out[k] = v
	}
	return out
}

// StateValue reads one state key.
func (e *Echo) StateValue(key string) (any, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, ok := e.state[key]
	return v, ok
}

// AddHistory appends a message, notifies observers, and forwards a log row
// to the sink unless entry.SkipUnifiedLog is set.
func (e *Echo) AddHistory(entry Entry) Message {
	e.mu.Lock()
	scope := e.scope

	actor := entry.Actor
	if actor == "" {
		switch {
		case scope.ReforgeStep != nil:
			actor = unifiedlog.ActorReforgeAgent
		case scope.SoundingIndex != nil:
			actor = unifiedlog.ActorSoundingAgent
		default:
			actor = unifiedlog.ActorMainAgent
		}
	}
	purpose := entry.Purpose
	if purpose == "" {
		purpose = unifiedlog.PurposeGeneration
	}
	nodeType := entry.NodeType
	if nodeType == "" {
		nodeType = unifiedlog.NodeTypeMessage
	}

	msg := Message{
		Role:      entry.Role,
		Content:   entry.Content,
		TraceID:   entry.TraceID,
		ParentID:  entry.ParentID,
		NodeType:  nodeType,
		Actor:     actor,
		Purpose:   purpose,
		Metadata:  entry.Metadata,
		Timestamp: time.Now().UTC(),
	}
	e.history = append(e.history, msg)
	observers := make([]Observer, len(e.observers))
	copy(observers, e.observers)
	e.mu.Unlock()

	for _, fn := range observers {
		fn(msg)
	}

	if e.sink != nil && !entry.SkipUnifiedLog {
		e.sink.Log(e.buildRow(entry, msg, scope, actor, purpose, nodeType))
	}
	return msg
}

func (e *Echo) buildRow(entry Entry, msg Message, scope Scope, actor, purpose, nodeType string) *unifiedlog.Row {
	row := &unifiedlog.Row{
		Timestamp:       msg.Timestamp,
		SessionID:       e.sessionID,
		TraceID:         entry.TraceID,
		Depth:           scope.Depth,
		NodeType:        nodeType,
		Role:            entry.Role,
		SoundingIndex:   scope.SoundingIndex,
		ReforgeStep:     scope.ReforgeStep,
		AttemptNumber:   entry.AttemptNumber,
		TurnNumber:      entry.TurnNumber,
		CascadeID:       e.cascadeID,
		HasImages:       entry.HasImages,
		HasBase64:       entry.HasBase64,
		SemanticActor:   actor,
		SemanticPurpose: purpose,
		IsCallout:       entry.IsCallout,
		Metadata:        entry.Metadata,
	}
	if entry.ParentID != "" {
		row.ParentID = unifiedlog.Ptr(entry.ParentID)
	}
	if scope.ParentSession != "" {
		row.ParentSessionID = unifiedlog.Ptr(scope.ParentSession)
	}
	if scope.PhaseName != "" {
		row.PhaseName = unifiedlog.Ptr(scope.PhaseName)
	}
	if entry.Content != "" {
		row.ContentJSON = unifiedlog.Ptr(entry.Content)
	}
	if entry.Model != "" {
		row.Model = unifiedlog.Ptr(entry.Model)
	}
	if entry.ModelRequested != "" {
		row.ModelRequested = unifiedlog.Ptr(entry.ModelRequested)
	}
	if entry.RequestID != "" {
		row.RequestID = unifiedlog.Ptr(entry.RequestID)
	}
	if entry.Provider != "" {
		row.Provider = unifiedlog.Ptr(entry.Provider)
	}
	if entry.DurationMs > 0 {
		row.DurationMs = unifiedlog.Ptr(entry.DurationMs)
	}
	if entry.TokensIn > 0 {
		row.TokensIn = unifiedlog.Ptr(entry.TokensIn)
	}
	if entry.TokensOut > 0 {
		row.TokensOut = unifiedlog.Ptr(entry.TokensOut)
	}
	if entry.SpeciesHash != "" {
		row.SpeciesHash = unifiedlog.Ptr(entry.SpeciesHash)
	}
	if entry.MutationApplied {
		row.MutationApplied = unifiedlog.Ptr(true)
	}
	if entry.MutationType != "" {
		row.MutationType = unifiedlog.Ptr(entry.MutationType)
	}
	if entry.MutationTemplate != "" {
		row.MutationTemplate = unifiedlog.Ptr(entry.MutationTemplate)
	}
	row.Cost = entry.Cost
	if entry.FullRequest != "" {
		row.FullRequestJSON = unifiedlog.Ptr(entry.FullRequest)
	}
	if entry.FullResponse != "" {
		row.FullResponseJSON = unifiedlog.Ptr(entry.FullResponse)
	}
	if entry.ToolCallsJSON != "" {
		row.ToolCallsJSON = unifiedlog.Ptr(entry.ToolCallsJSON)
	}
	if entry.ImagesJSON != "" {
		row.ImagesJSON = unifiedlog.Ptr(entry.ImagesJSON)
	}
	if entry.CalloutName != "" {
		row.CalloutName = unifiedlog.Ptr(entry.CalloutName)
	}
	return row
}

// History returns a copy of the message history.
func (e *Echo) History() []Message {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Message, len(e.history))
	copy(out, e.history)
	return out
}

// AddLineage records a completed phase's output.
func (e *Echo) AddLineage(phase, output, traceID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lineage = append(e.lineage, LineageEntry{Phase: phase, Output: output, TraceID: traceID})
}

// Lineage returns a copy of the lineage.
func (e *Echo) Lineage() []LineageEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]LineageEntry, len(e.lineage))
	copy(out, e.lineage)
	return out
}

// LastOutput returns the most recent lineage output for a phase.
func (e *Echo) LastOutput(phase string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := len(e.lineage) - 1; i >= 0; i-- {
		if e.lineage[i].Phase == phase {
			return e.lineage[i].Output, true
		}
	}
	return "", false
}

// AddError records a failure. Any recorded error makes the session's final
// status "error".
func (e *Echo) AddError(phase, errType, message string, metadata map[string]any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.errors = append(e.errors, SessionError{
		Phase:     phase,
		Type:      errType,
		Message:   message,
		Metadata:  metadata,
		Timestamp: time.Now().UTC(),
	})
}

// Errors returns a copy of the error list.
func (e *Echo) Errors() []SessionError {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]SessionError, len(e.errors))
	copy(out, e.errors)
	return out
}

// HasErrors reports whether any error was recorded.
func (e *Echo) HasErrors() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.errors) > 0
}

// Observe registers a callback for every new message.
func (e *Echo) Observe(fn Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, fn)
}

// Clone deep-copies state, history, and lineage into a fresh Echo with the
// same session id and sink, so sounding workers log into the same session.
// Observers and errors do not carry over.
func (e *Echo) Clone() *Echo {
	e.mu.Lock()
	defer e.mu.Unlock()

	clone := &Echo{
		sessionID: e.sessionID,
		cascadeID: e.cascadeID,
		scope:     e.scope,
		state:     deepCopyMap(e.state),
		history:   make([]Message, len(e.history)),
		lineage:   make([]LineageEntry, len(e.lineage)),
		sink:      e.sink,
	}
	copy(clone.history, e.history)
	copy(clone.lineage, e.lineage)
	return clone
}

// MergeWinner adopts the winning clone's state and appends its history and
// lineage suffix (entries beyond this echo's current length).
func (e *Echo) MergeWinner(winner *Echo) {
	winner.mu.Lock()
	wState := deepCopyMap(winner.state)
	wHistory := make([]Message, len(winner.history))
	copy(wHistory, winner.history)
	wLineage := make([]LineageEntry, len(winner.lineage))
	copy(wLineage, winner.lineage)
	wErrors := make([]SessionError, len(winner.errors))
	copy(wErrors, winner.errors)
	winner.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = wState
	if len(wHistory) > len(e.history) {
		e.history = append(e.history, wHistory[len(e.history):]...)
	}
	if len(wLineage) > len(e.lineage) {
		e.lineage = append(e.lineage, wLineage[len(e.lineage):]...)
	}
	e.errors = append(e.errors, wErrors...)
}

func deepCopyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch val := v.(type) {
		case map[string]any:
			out[k] = deepCopyMap(val)
		case []any:
			cp := make([]any, len(val))
			copy(cp, val)
			out[k] = cp
		default:
			out[k] = v
		}
	}
	return out
}
