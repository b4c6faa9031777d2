// Package unifiedlog is the append-only event sink for every message, tool
// exchange, validation, evaluation, and lifecycle marker the engine produces.
// Rows carry deferred cost attribution: assistant rows with a request id wait
// in a pending buffer until the provider's accounting resolves, then batch to
// storage.
package unifiedlog

import "time"

// Node types: what a row represents in the trace tree.
const (
	NodeTypeCascade    = "cascade"
	NodeTypePhase      = "phase"
	NodeTypeSounding   = "sounding"
	NodeTypeReforge    = "reforge"
	NodeTypeMessage    = "message"
	NodeTypeToolCall   = "tool_call"
	NodeTypeToolResult = "tool_result"
	NodeTypeValidation = "validation"
	NodeTypeEvaluation = "evaluation"
	NodeTypeMutation   = "mutation"
	NodeTypeCheckpoint = "checkpoint"
	NodeTypeLifecycle  = "lifecycle"
	NodeTypeError      = "error"
)

// Semantic actors: who produced the row.
const (
	ActorMainAgent     = "main_agent"
	ActorSoundingAgent = "sounding_agent"
	ActorReforgeAgent  = "reforge_agent"
	ActorEvaluator     = "evaluator"
	ActorQuartermaster = "quartermaster"
	ActorValidator     = "validator"
	ActorMutator       = "mutator"
	ActorAggregator    = "aggregator"
	ActorHuman         = "human"
	ActorFramework     = "framework"
)

// Semantic purposes: why the row exists.
const (
	PurposeInstructions     = "instructions"
	PurposeTaskInput        = "task_input"
	PurposeContextInjection = "context_injection"
	PurposeToolRequest      = "tool_request"
	PurposeToolResponse     = "tool_response"
	PurposeContinuation     = "continuation"
	PurposeRefinement       = "refinement"
	PurposeValidationInput  = "validation_input"
	PurposeValidationOutput = "validation_output"
	PurposeEvaluationInput  = "evaluation_input"
	PurposeEvaluationOutput = "evaluation_output"
	PurposeWinnerSelection  = "winner_selection"
	PurposeLifecycle        = "lifecycle"
	PurposeError            = "error"
	PurposeGeneration       = "generation"
)

// Row is one unified-log entry. Pointer fields are nullable columns. Rows are
// immutable after enqueue except cost/tokens_in/tokens_out, which the cost
// resolver fills in before the write.
type Row struct {
	RowID     string
	Timestamp time.Time

	// Identity
	SessionID       string
	TraceID         string
	ParentID        *string
	ParentSessionID *string
	ParentMessageID *string
	Depth           int
	NodeType        string
	Role            string

	// Execution context
	SoundingIndex    *int
	IsWinner         *bool
	ReforgeStep      *int
	AttemptNumber    *int
	TurnNumber       *int
	MutationApplied  *bool
	MutationType     *string
	MutationTemplate *string
	SpeciesHash      *string

	// Cascade context
	CascadeID   string
	CascadeFile *string
	CascadeJSON *string
	PhaseName   *string
	PhaseJSON   *string

	// LLM call details
	Model          *string
	ModelRequested *string
	RequestID      *string
	Provider       *string
	DurationMs     *int
	TokensIn       *int
	TokensOut      *int
	Cost           *float64

	// Content
	ContentJSON      *string
	FullRequestJSON  *string
	FullResponseJSON *string
	ToolCallsJSON    *string
	ImagesJSON       *string
	HasImages        bool
	HasBase64        bool

	// Semantics
	SemanticActor   string
	SemanticPurpose string

	// Extras
	IsCallout   bool
	CalloutName *string
	Metadata    map[string]any
}

// needsCostResolution reports whether the row must wait for the provider's
// deferred accounting before it is written.
func (r *Row) needsCostResolution() bool {
	return r.RequestID != nil && *r.RequestID != "" && r.Cost == nil && r.Role == "assistant"
}

// Ptr returns a pointer to v. Convenience for building rows with nullable
// columns.
func Ptr[T any](v T) *T {
	return &v
}
