// Code generated by ent, DO NOT EDIT.

package logrow

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the logrow type in the database.
	Label = "log_row"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "row_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTraceID holds the string denoting the trace_id field in the database.
	FieldTraceID = "trace_id"
	// FieldParentID holds the string denoting the parent_id field in the database.
	FieldParentID = "parent_id"
	// FieldParentSessionID holds the string denoting the parent_session_id field in the database.
	FieldParentSessionID = "parent_session_id"
	// FieldParentMessageID holds the string denoting the parent_message_id field in the database.
	FieldParentMessageID = "parent_message_id"
	// FieldDepth holds the string denoting the depth field in the database.
	FieldDepth = "depth"
	// FieldNodeType holds the string denoting the node_type field in the database.
	FieldNodeType = "node_type"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldSoundingIndex holds the string denoting the sounding_index field in the database.
	FieldSoundingIndex = "sounding_index"
	// FieldIsWinner holds the string denoting the is_winner field in the database.
	FieldIsWinner = "is_winner"
	// FieldReforgeStep holds the string denoting the reforge_step field in the database.
	FieldReforgeStep = "reforge_step"
	// FieldAttemptNumber holds the string denoting the attempt_number field in the database.
	FieldAttemptNumber = "attempt_number"
	// FieldTurnNumber holds the string denoting the turn_number field in the database.
	FieldTurnNumber = "turn_number"
	// FieldMutationApplied holds the string denoting the mutation_applied field in the database.
	FieldMutationApplied = "mutation_applied"
	// FieldMutationType holds the string denoting the mutation_type field in the database.
	FieldMutationType = "mutation_type"
	// FieldMutationTemplate holds the string denoting the mutation_template field in the database.
	FieldMutationTemplate = "mutation_template"
	// FieldSpeciesHash holds the string denoting the species_hash field in the database.
	FieldSpeciesHash = "species_hash"
	// FieldCascadeID holds the string denoting the cascade_id field in the database.
	FieldCascadeID = "cascade_id"
	// FieldCascadeFile holds the string denoting the cascade_file field in the database.
	FieldCascadeFile = "cascade_file"
	// FieldCascadeJSON holds the string denoting the cascade_json field in the database.
	FieldCascadeJSON = "cascade_json"
	// FieldPhaseName holds the string denoting the phase_name field in the database.
	FieldPhaseName = "phase_name"
	// FieldPhaseJSON holds the string denoting the phase_json field in the database.
	FieldPhaseJSON = "phase_json"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldModelRequested holds the string denoting the model_requested field in the database.
	FieldModelRequested = "model_requested"
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldTokensIn holds the string denoting the tokens_in field in the database.
	FieldTokensIn = "tokens_in"
	// FieldTokensOut holds the string denoting the tokens_out field in the database.
	FieldTokensOut = "tokens_out"
	// FieldCost holds the string denoting the cost field in the database.
	FieldCost = "cost"
	// FieldContentJSON holds the string denoting the content_json field in the database.
	FieldContentJSON = "content_json"
	// FieldFullRequestJSON holds the string denoting the full_request_json field in the database.
	FieldFullRequestJSON = "full_request_json"
	// FieldFullResponseJSON holds the string denoting the full_response_json field in the database.
	FieldFullResponseJSON = "full_response_json"
	// FieldToolCallsJSON holds the string denoting the tool_calls_json field in the database.
	FieldToolCallsJSON = "tool_calls_json"
	// FieldImagesJSON holds the string denoting the images_json field in the database.
	FieldImagesJSON = "images_json"
	// FieldHasImages holds the string denoting the has_images field in the database.
	FieldHasImages = "has_images"
	// FieldHasBase64 holds the string denoting the has_base64 field in the database.
	FieldHasBase64 = "has_base64"
	// FieldSemanticActor holds the string denoting the semantic_actor field in the database.
	FieldSemanticActor = "semantic_actor"
	// FieldSemanticPurpose holds the string denoting the semantic_purpose field in the database.
	FieldSemanticPurpose = "semantic_purpose"
	// FieldIsCallout holds the string denoting the is_callout field in the database.
	FieldIsCallout = "is_callout"
	// FieldCalloutName holds the string denoting the callout_name field in the database.
	FieldCalloutName = "callout_name"
	// FieldRowMetadata holds the string denoting the row_metadata field in the database.
	FieldRowMetadata = "metadata_json"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// CascadeSessionFieldID holds the string denoting the ID field of the CascadeSession.
	CascadeSessionFieldID = "session_id"
	// Table holds the table name of the logrow in the database.
	Table = "log_rows"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "log_rows"
	// SessionInverseTable is the table name for the CascadeSession entity.
	// It exists in this package in order to avoid circular dependency with the "cascadesession" package.
	SessionInverseTable = "cascade_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for logrow fields.
var Columns = []string{
	FieldID,
	FieldTimestamp,
	FieldSessionID,
	FieldTraceID,
	FieldParentID,
	FieldParentSessionID,
	FieldParentMessageID,
	FieldDepth,
	FieldNodeType,
	FieldRole,
	FieldSoundingIndex,
	FieldIsWinner,
	FieldReforgeStep,
	FieldAttemptNumber,
	FieldTurnNumber,
	FieldMutationApplied,
	FieldMutationType,
	FieldMutationTemplate,
	FieldSpeciesHash,
	FieldCascadeID,
	FieldCascadeFile,
	FieldCascadeJSON,
	FieldPhaseName,
	FieldPhaseJSON,
	FieldModel,
	FieldModelRequested,
	FieldRequestID,
	FieldProvider,
	FieldDurationMs,
	FieldTokensIn,
	FieldTokensOut,
	FieldCost,
	FieldContentJSON,
	FieldFullRequestJSON,
	FieldFullResponseJSON,
	FieldToolCallsJSON,
	FieldImagesJSON,
	FieldHasImages,
	FieldHasBase64,
	FieldSemanticActor,
	FieldSemanticPurpose,
	FieldIsCallout,
	FieldCalloutName,
	FieldRowMetadata,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultDepth holds the default value on creation for the "depth" field.
	DefaultDepth int
	// DefaultHasImages holds the default value on creation for the "has_images" field.
	DefaultHasImages bool
	// DefaultHasBase64 holds the default value on creation for the "has_base64" field.
	DefaultHasBase64 bool
	// DefaultIsCallout holds the default value on creation for the "is_callout" field.
	DefaultIsCallout bool
)

// SemanticActor defines the type for the "semantic_actor" enum field.
type SemanticActor string

// SemanticActorFramework is the default value of the SemanticActor enum.
const DefaultSemanticActor = SemanticActorFramework

// SemanticActor values.
const (
	SemanticActorMainAgent      SemanticActor = "main_agent"
	SemanticActorSoundingAgent  SemanticActor = "sounding_agent"
	SemanticActorReforgeAgent   SemanticActor = "reforge_agent"
	SemanticActorEvaluator      SemanticActor = "evaluator"
	SemanticActorQuartermaster  SemanticActor = "quartermaster"
	SemanticActorValidatorActor SemanticActor = "validator"
	SemanticActorMutator        SemanticActor = "mutator"
	SemanticActorAggregator     SemanticActor = "aggregator"
	SemanticActorHuman          SemanticActor = "human"
	SemanticActorFramework      SemanticActor = "framework"
)

func (sa SemanticActor) String() string {
	return string(sa)
}

// SemanticActorValidator is a validator for the "semantic_actor" field enum values. It is called by the builders before save.
func SemanticActorValidator(sa SemanticActor) error {
	switch sa {
	case SemanticActorMainAgent, SemanticActorSoundingAgent, SemanticActorReforgeAgent, SemanticActorEvaluator, SemanticActorQuartermaster, SemanticActorValidatorActor, SemanticActorMutator, SemanticActorAggregator, SemanticActorHuman, SemanticActorFramework:
		return nil
	default:
		return fmt.Errorf("logrow: invalid enum value for semantic_actor field: %q", sa)
	}
}

// SemanticPurpose defines the type for the "semantic_purpose" enum field.
type SemanticPurpose string

// SemanticPurposeLifecycle is the default value of the SemanticPurpose enum.
const DefaultSemanticPurpose = SemanticPurposeLifecycle

// SemanticPurpose values.
const (
	SemanticPurposeInstructions     SemanticPurpose = "instructions"
	SemanticPurposeTaskInput        SemanticPurpose = "task_input"
	SemanticPurposeContextInjection SemanticPurpose = "context_injection"
	SemanticPurposeToolRequest      SemanticPurpose = "tool_request"
	SemanticPurposeToolResponse     SemanticPurpose = "tool_response"
	SemanticPurposeContinuation     SemanticPurpose = "continuation"
	SemanticPurposeRefinement       SemanticPurpose = "refinement"
	SemanticPurposeValidationInput  SemanticPurpose = "validation_input"
	SemanticPurposeValidationOutput SemanticPurpose = "validation_output"
	SemanticPurposeEvaluationInput  SemanticPurpose = "evaluation_input"
	SemanticPurposeEvaluationOutput SemanticPurpose = "evaluation_output"
	SemanticPurposeWinnerSelection  SemanticPurpose = "winner_selection"
	SemanticPurposeLifecycle        SemanticPurpose = "lifecycle"
	SemanticPurposeError            SemanticPurpose = "error"
	SemanticPurposeGeneration       SemanticPurpose = "generation"
)

func (sp SemanticPurpose) String() string {
	return string(sp)
}

// SemanticPurposeValidator is a validator for the "semantic_purpose" field enum values. It is called by the builders before save.
func SemanticPurposeValidator(sp SemanticPurpose) error {
	switch sp {
	case SemanticPurposeInstructions, SemanticPurposeTaskInput, SemanticPurposeContextInjection, SemanticPurposeToolRequest, SemanticPurposeToolResponse, SemanticPurposeContinuation, SemanticPurposeRefinement, SemanticPurposeValidationInput, SemanticPurposeValidationOutput, SemanticPurposeEvaluationInput, SemanticPurposeEvaluationOutput, SemanticPurposeWinnerSelection, SemanticPurposeLifecycle, SemanticPurposeError, SemanticPurposeGeneration:
		return nil
	default:
		return fmt.Errorf("logrow: invalid enum value for semantic_purpose field: %q", sp)
	}
}

// OrderOption defines the ordering options for the LogRow queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTraceID orders the results by the trace_id field.
func ByTraceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTraceID, opts...).ToFunc()
}

// ByParentID orders the results by the parent_id field.
func ByParentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentID, opts...).ToFunc()
}

// ByParentSessionID orders the results by the parent_session_id field.
func ByParentSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentSessionID, opts...).ToFunc()
}

// ByParentMessageID orders the results by the parent_message_id field.
func ByParentMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentMessageID, opts...).ToFunc()
}

// ByDepth orders the results by the depth field.
func ByDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepth, opts...).ToFunc()
}

// ByNodeType orders the results by the node_type field.
func ByNodeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNodeType, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// BySoundingIndex orders the results by the sounding_index field.
func BySoundingIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSoundingIndex, opts...).ToFunc()
}

// ByIsWinner orders the results by the is_winner field.
func ByIsWinner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsWinner, opts...).ToFunc()
}

// ByReforgeStep orders the results by the reforge_step field.
func ByReforgeStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReforgeStep, opts...).ToFunc()
}

// ByAttemptNumber orders the results by the attempt_number field.
func ByAttemptNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptNumber, opts...).ToFunc()
}

// ByTurnNumber orders the results by the turn_number field.
func ByTurnNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTurnNumber, opts...).ToFunc()
}

// ByMutationApplied orders the results by the mutation_applied field.
func ByMutationApplied(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMutationApplied, opts...).ToFunc()
}

// ByMutationType orders the results by the mutation_type field.
func ByMutationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMutationType, opts...).ToFunc()
}

// ByMutationTemplate orders the results by the mutation_template field.
func ByMutationTemplate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMutationTemplate, opts...).ToFunc()
}

// BySpeciesHash orders the results by the species_hash field.
func BySpeciesHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpeciesHash, opts...).ToFunc()
}

// ByCascadeID orders the results by the cascade_id field.
func ByCascadeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCascadeID, opts...).ToFunc()
}

// ByCascadeFile orders the results by the cascade_file field.
func ByCascadeFile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCascadeFile, opts...).ToFunc()
}

// ByCascadeJSON orders the results by the cascade_json field.
func ByCascadeJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCascadeJSON, opts...).ToFunc()
}

// ByPhaseName orders the results by the phase_name field.
func ByPhaseName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhaseName, opts...).ToFunc()
}

// ByPhaseJSON orders the results by the phase_json field.
func ByPhaseJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhaseJSON, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByModelRequested orders the results by the model_requested field.
func ByModelRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelRequested, opts...).ToFunc()
}

// ByRequestID orders the results by the request_id field.
func ByRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestID, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByTokensIn orders the results by the tokens_in field.
func ByTokensIn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensIn, opts...).ToFunc()
}

// ByTokensOut orders the results by the tokens_out field.
func ByTokensOut(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensOut, opts...).ToFunc()
}

// ByCost orders the results by the cost field.
func ByCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCost, opts...).ToFunc()
}

// ByContentJSON orders the results by the content_json field.
func ByContentJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentJSON, opts...).ToFunc()
}

// ByFullRequestJSON orders the results by the full_request_json field.
func ByFullRequestJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullRequestJSON, opts...).ToFunc()
}

// ByFullResponseJSON orders the results by the full_response_json field.
func ByFullResponseJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullResponseJSON, opts...).ToFunc()
}

// ByToolCallsJSON orders the results by the tool_calls_json field.
func ByToolCallsJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolCallsJSON, opts...).ToFunc()
}

// ByImagesJSON orders the results by the images_json field.
func ByImagesJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImagesJSON, opts...).ToFunc()
}

// ByHasImages orders the results by the has_images field.
func ByHasImages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasImages, opts...).ToFunc()
}

// ByHasBase64 orders the results by the has_base64 field.
func ByHasBase64(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasBase64, opts...).ToFunc()
}

// BySemanticActor orders the results by the semantic_actor field.
func BySemanticActor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSemanticActor, opts...).ToFunc()
}

// BySemanticPurpose orders the results by the semantic_purpose field.
func BySemanticPurpose(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSemanticPurpose, opts...).ToFunc()
}

// ByIsCallout orders the results by the is_callout field.
func ByIsCallout(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsCallout, opts...).ToFunc()
}

// ByCalloutName orders the results by the callout_name field.
func ByCalloutName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalloutName, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, CascadeSessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
