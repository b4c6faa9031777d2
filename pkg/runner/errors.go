// Package runner executes cascades: the phase state machine, sounding
// fan-out with winner evaluation, reforge refinement, and the top-level
// cascade loop with heartbeats and cancellation.
package runner

import "errors"

// Error type labels recorded on echo errors and error log rows.
const (
	ErrTypeBlockedByWard     = "blocked_by_ward"
	ErrTypeSchemaValidation  = "schema_validation"
	ErrTypeLoopUntil         = "loop_until"
	ErrTypeAgentCall         = "agent_call"
	ErrTypeToolParse         = "tool_parse"
	ErrTypeToolExecution     = "tool_execution"
	ErrTypeBudgetExceeded    = "budget_exceeded"
	ErrTypeOutputExtraction  = "output_extraction"
	ErrTypeCheckpointTimeout = "checkpoint_timeout"
	ErrTypeEvaluation        = "evaluation"
	ErrTypeCancelled         = "cancelled"
	ErrTypeConfig            = "config"
)

var (
	// ErrCancelled aborts a run when the session's cancel flag is observed.
	ErrCancelled = errors.New("session cancelled")

	// ErrPhaseAborted signals a phase failure that has already been recorded
	// on the echo; the cascade loop stops without double-reporting.
	ErrPhaseAborted = errors.New("phase aborted")

	// ErrRejectAll is returned when a human evaluator rejects every sounding.
	ErrRejectAll = errors.New("all soundings rejected")
)
