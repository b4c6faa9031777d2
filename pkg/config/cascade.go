package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CascadeConfig is one declared workflow: an ordered graph of phases plus
// cascade-wide validators, soundings, and resource policies. One YAML file
// per cascade.
type CascadeConfig struct {
	// Cascade identifier (required, unique across the registry)
	CascadeID string `yaml:"cascade_id"`

	// Human-readable description
	Description string `yaml:"description,omitempty"`

	// Declared inputs: name -> description (documentation + rendering context)
	InputsSchema map[string]string `yaml:"inputs,omitempty"`

	// Phases in declaration order; entry point is the first phase.
	// Handoffs may enter phases out of order.
	Phases []PhaseConfig `yaml:"phases"`

	// Named validators referenced by wards, loop_until, and soundings
	Validators map[string]InlineValidatorConfig `yaml:"validators,omitempty"`

	// Cascade-level soundings: fork whole child cascades and evaluate final outputs
	Soundings *SoundingsConfig `yaml:"soundings,omitempty"`

	// Memory-bank tool fallback directory (inline tools resolved when the
	// registry misses)
	Memory *MemoryConfig `yaml:"memory,omitempty"`

	// Token budget applied to every phase unless the phase overrides it
	TokenBudget *TokenBudgetConfig `yaml:"token_budget,omitempty"`

	// Tool result caching policy
	ToolCaching *ToolCachingConfig `yaml:"tool_caching,omitempty"`

	// SourceFile is the path the cascade was loaded from (set by the loader,
	// recorded on log rows as cascade_file)
	SourceFile string `yaml:"-"`
}

// Phase returns the named phase, or nil.
func (c *CascadeConfig) Phase(name string) *PhaseConfig {
	for i := range c.Phases {
		if c.Phases[i].Name == name {
			return &c.Phases[i]
		}
	}
	return nil
}

// PhaseConfig is a single unit of work: one model mission with tools, turns,
// attempts, wards, and optional soundings.
type PhaseConfig struct {
	// Phase name (required, unique within the cascade)
	Name string `yaml:"name"`

	// Instruction template rendered with the run context (required unless
	// the phase only routes)
	Instructions string `yaml:"instructions"`

	// Tools available to the phase: an explicit name list, or "manifest" to
	// let the quartermaster pick from the full manifest
	Tackle Tackle `yaml:"tackle,omitempty"`

	// Model override (default comes from settings)
	Model string `yaml:"model,omitempty"`

	// Use the provider's native tool-calling protocol instead of the
	// prompt-form code-fence protocol
	UseNativeTools bool `yaml:"use_native_tools,omitempty"`

	// Turn/attempt loop knobs
	Rules RulesConfig `yaml:"rules,omitempty"`

	// Successor phases; the first is the static default, the model may
	// route to any of them via route_to
	Handoffs []HandoffConfig `yaml:"handoffs,omitempty"`

	// Synchronous child cascades, awaited in order
	SubCascades []SubCascadeConfig `yaml:"sub_cascades,omitempty"`

	// Detached child cascades, never awaited
	AsyncCascades []AsyncCascadeConfig `yaml:"async_cascades,omitempty"`

	// Parallel attempt fan-out for this phase
	Soundings *SoundingsConfig `yaml:"soundings,omitempty"`

	// Validators on phase input (pre), output (post), and each turn
	Wards WardsConfig `yaml:"wards,omitempty"`

	// Declared context dependencies; absent means clean slate
	Context *ContextConfig `yaml:"context,omitempty"`

	// JSON Schema the final output must satisfy
	OutputSchema map[string]any `yaml:"output_schema,omitempty"`

	// Regex capture stored into state after the phase
	OutputExtraction *OutputExtractionConfig `yaml:"output_extraction,omitempty"`

	// Conditional human checkpoint on phase output
	HumanInput *HumanInputConfig `yaml:"human_input,omitempty"`

	// Mid-phase user interjection channel
	Audibles *AudiblesConfig `yaml:"audibles,omitempty"`

	// Tag the final message for retrieval
	Callouts *CalloutConfig `yaml:"callouts,omitempty"`

	// <decision> block handling
	DecisionPoints *DecisionPointsConfig `yaml:"decision_points,omitempty"`

	// Phase-level token budget override
	TokenBudget *TokenBudgetConfig `yaml:"token_budget,omitempty"`
}

// RulesConfig controls the attempt and turn loops of a phase.
type RulesConfig struct {
	// Max model turns per attempt (default DefaultMaxTurns)
	MaxTurns int `yaml:"max_turns,omitempty"`

	// Max validation attempts (default 1)
	MaxAttempts int `yaml:"max_attempts,omitempty"`

	// Named validator the aggregated output must pass; checked per turn and
	// after the turn loop
	LoopUntil string `yaml:"loop_until,omitempty"`

	// Prompt injected when loop_until fails mid-loop
	LoopUntilPrompt string `yaml:"loop_until_prompt,omitempty"`

	// Template injected on retry attempts (default carries the last
	// validation/schema error)
	RetryInstructions string `yaml:"retry_instructions,omitempty"`

	// User content for turns > 0 (default "Continue.")
	TurnPrompt string `yaml:"turn_prompt,omitempty"`
}

// Tackle is either an explicit tool-name list or the keyword "manifest".
type Tackle struct {
	// Manifest is true when the quartermaster selects tools
	Manifest bool
	// Names is the explicit list otherwise
	Names []string
}

// UnmarshalYAML accepts `tackle: manifest` or `tackle: [a, b]`.
func (t *Tackle) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		if s != "manifest" {
			return fmt.Errorf("tackle: expected tool list or \"manifest\", got %q", s)
		}
		t.Manifest = true
		return nil
	case yaml.SequenceNode:
		return value.Decode(&t.Names)
	default:
		return fmt.Errorf("tackle: expected string or sequence")
	}
}

// MarshalYAML renders the manifest keyword or the name list.
func (t Tackle) MarshalYAML() (any, error) {
	if t.Manifest {
		return "manifest", nil
	}
	return t.Names, nil
}

// IsEmpty reports whether no tackle is declared at all.
func (t Tackle) IsEmpty() bool {
	return !t.Manifest && len(t.Names) == 0
}

// HandoffConfig is one successor phase: a bare name or {target, description}.
type HandoffConfig struct {
	Target      string `yaml:"target"`
	Description string `yaml:"description,omitempty"`
}

// UnmarshalYAML accepts `- phase_b` or `- {target: phase_b, description: ...}`.
func (h *HandoffConfig) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&h.Target)
	}
	type raw HandoffConfig
	return value.Decode((*raw)(h))
}

// SubCascadeConfig references a synchronous child cascade.
type SubCascadeConfig struct {
	// Cascade id to run (required)
	Cascade string `yaml:"cascade"`

	// State keys copied into the child's input; empty means the parent
	// phase output becomes the child input
	ContextIn []string `yaml:"context_in,omitempty"`

	// State key the child's final output is stored under in the parent
	// (default "output_<cascade>")
	ContextOut string `yaml:"context_out,omitempty"`
}

// AsyncCascadeConfig references a detached child cascade.
type AsyncCascadeConfig struct {
	// Cascade id to run (required)
	Cascade string `yaml:"cascade"`

	// When to spawn: on_start (before the phase runs) or on_end (default)
	Trigger AsyncTrigger `yaml:"trigger,omitempty"`
}

// SoundingsConfig declares parallel attempts for a phase (or, at cascade
// level, whole child cascades) and how a winner is chosen.
type SoundingsConfig struct {
	// Number of parallel attempts (>1 activates soundings)
	Factor int `yaml:"factor"`

	// Worker cap for the fan-out (default DefaultMaxParallel)
	MaxParallel int `yaml:"max_parallel,omitempty"`

	// Apply prompt mutations to attempts beyond the baseline
	Mutate bool `yaml:"mutate,omitempty"`

	// How mutations transform the prompt
	MutationMode MutationMode `yaml:"mutation_mode,omitempty"`

	// Explicit mutation templates; empty selects the builtin bank for the mode
	Mutations []string `yaml:"mutations,omitempty"`

	// Pre-eval validator name applied to each attempt output
	Validator string `yaml:"validator,omitempty"`

	// Model assignment: list (spread by strategy) or map of model -> weight
	Models ModelAssignment `yaml:"models,omitempty"`

	// How a model list is spread over attempts
	ModelStrategy ModelStrategy `yaml:"model_strategy,omitempty"`

	// Who selects the winner
	Evaluator EvaluatorKind `yaml:"evaluator,omitempty"`

	// Instructions given to the evaluator (LLM or human UI)
	EvaluatorInstructions string `yaml:"evaluator_instructions,omitempty"`

	// evaluate (pick one) or aggregate (synthesize all)
	Mode SoundingMode `yaml:"mode,omitempty"`

	// Instructions for the aggregator model in aggregate mode; empty
	// concatenates outputs with headers
	AggregatorInstructions string `yaml:"aggregator_instructions,omitempty"`

	// Show per-attempt cost to the evaluator and ask for a quality/cost pick
	CostAwareEvaluation bool `yaml:"cost_aware_evaluation,omitempty"`

	// Pareto-frontier selection over (quality, cost)
	ParetoFrontier *ParetoConfig `yaml:"pareto_frontier,omitempty"`

	// Human evaluator knobs
	TimeoutSeconds int           `yaml:"timeout_seconds,omitempty"`
	OnTimeout      TimeoutAction `yaml:"on_timeout,omitempty"`

	// Hybrid prefilter size (top-N passed to the human)
	PrefilterTopN int `yaml:"prefilter_top_n,omitempty"`

	// Iterative refinement of the winner
	Reforge *ReforgeConfig `yaml:"reforge,omitempty"`
}

// EffectiveMode returns the sounding mode, defaulting to evaluate.
func (s *SoundingsConfig) EffectiveMode() SoundingMode {
	if s.Mode == "" {
		return SoundingModeEvaluate
	}
	return s.Mode
}

// EffectiveEvaluator returns the evaluator kind, defaulting to llm.
func (s *SoundingsConfig) EffectiveEvaluator() EvaluatorKind {
	if s.Evaluator == "" {
		return EvaluatorLLM
	}
	return s.Evaluator
}

// EffectiveMaxParallel returns the fan-out cap, defaulting to DefaultMaxParallel.
func (s *SoundingsConfig) EffectiveMaxParallel() int {
	if s.MaxParallel <= 0 {
		return DefaultMaxParallel
	}
	return s.MaxParallel
}

// ModelAssignment is either an ordered model list or a map of
// model -> per-model factor.
type ModelAssignment struct {
	List    []string
	Weights map[string]int
}

// UnmarshalYAML accepts `models: [a, b]` or `models: {a: 2, b: 1}`.
func (m *ModelAssignment) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		return value.Decode(&m.List)
	case yaml.MappingNode:
		return value.Decode(&m.Weights)
	default:
		return fmt.Errorf("models: expected sequence or mapping")
	}
}

// IsEmpty reports whether no model assignment is declared.
func (m ModelAssignment) IsEmpty() bool {
	return len(m.List) == 0 && len(m.Weights) == 0
}

// ParetoConfig tunes Pareto-frontier winner selection.
type ParetoConfig struct {
	Enabled bool         `yaml:"enabled"`
	Policy  ParetoPolicy `yaml:"policy,omitempty"`
}

// ReforgeConfig declares iterative refinement rounds after winner selection.
type ReforgeConfig struct {
	// Number of refinement rounds
	Steps int `yaml:"steps"`

	// Directive describing what to improve each round
	HoningPrompt string `yaml:"honing_prompt,omitempty"`

	// Mini-sounding size per round (default 2)
	FactorPerStep int `yaml:"factor_per_step,omitempty"`

	// Mutate refinement prompts like regular soundings
	Mutate bool `yaml:"mutate,omitempty"`

	// Named validator; passing it after a round exits reforge early
	Threshold string `yaml:"threshold,omitempty"`
}

// EffectiveFactorPerStep returns the per-round fan-out, defaulting to 2.
func (r *ReforgeConfig) EffectiveFactorPerStep() int {
	if r.FactorPerStep <= 0 {
		return 2
	}
	return r.FactorPerStep
}

// WardsConfig groups the validators attached to a phase.
type WardsConfig struct {
	Pre  []WardConfig `yaml:"pre,omitempty"`
	Post []WardConfig `yaml:"post,omitempty"`
	Turn []WardConfig `yaml:"turn,omitempty"`
}

// IsEmpty reports whether no wards are declared.
func (w WardsConfig) IsEmpty() bool {
	return len(w.Pre) == 0 && len(w.Post) == 0 && len(w.Turn) == 0
}

// WardConfig attaches one named validator with an enforcement mode.
type WardConfig struct {
	// Validator name (required; builtin or declared in cascade validators)
	Validator string `yaml:"validator"`

	// blocking | advisory | retry (default blocking)
	Mode WardMode `yaml:"mode,omitempty"`
}

// EffectiveMode returns the ward mode, defaulting to blocking.
func (w WardConfig) EffectiveMode() WardMode {
	if w.Mode == "" {
		return WardModeBlocking
	}
	return w.Mode
}

// InlineValidatorConfig declares a named validator inside a cascade file.
type InlineValidatorConfig struct {
	// Implementation kind; empty is inferred: instructions -> llm,
	// pattern -> regex, schema -> schema, cascade -> cascade
	Kind ValidatorKind `yaml:"kind,omitempty"`

	// Judge instructions (llm kind)
	Instructions string `yaml:"instructions,omitempty"`

	// Regex pattern (regex kind)
	Pattern string `yaml:"pattern,omitempty"`

	// JSON Schema (schema kind)
	Schema map[string]any `yaml:"schema,omitempty"`

	// Sub-cascade id (cascade kind)
	Cascade string `yaml:"cascade,omitempty"`

	// Judge model override (llm kind)
	Model string `yaml:"model,omitempty"`
}

// EffectiveKind resolves the implementation kind, inferring from the set fields.
func (v InlineValidatorConfig) EffectiveKind() ValidatorKind {
	if v.Kind != "" {
		return v.Kind
	}
	switch {
	case v.Cascade != "":
		return ValidatorCascade
	case len(v.Schema) > 0:
		return ValidatorSchema
	case v.Pattern != "":
		return ValidatorRegex
	case v.Instructions != "":
		return ValidatorLLM
	default:
		return ValidatorBuiltin
	}
}

// ContextConfig declares which prior-phase material a phase receives.
// Phases without a context block start from a clean slate.
type ContextConfig struct {
	From         []ContextSourceConfig `yaml:"from"`
	IncludeInput bool                  `yaml:"include_input,omitempty"`
}

// ContextSourceConfig is one context dependency: a phase name or keyword
// (all | first | previous) plus filters on what to inject.
type ContextSourceConfig struct {
	// Literal phase name or keyword
	Phase string `yaml:"phase"`

	// What to inject (default: output)
	Include []ContextInclude `yaml:"include,omitempty"`

	// Phases dropped when the keyword expands (all)
	Exclude []string `yaml:"exclude,omitempty"`

	// Image selection (default all)
	Images ImageFilter `yaml:"images,omitempty"`

	// N for images: last_n
	ImagesN int `yaml:"images_n,omitempty"`

	// Message replay selection (default all)
	Messages MessageFilter `yaml:"messages,omitempty"`
}

// UnmarshalYAML accepts `- phase_a` or a full mapping.
func (c *ContextSourceConfig) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&c.Phase)
	}
	type raw ContextSourceConfig
	return value.Decode((*raw)(c))
}

// EffectiveInclude returns the include set, defaulting to output only.
func (c ContextSourceConfig) EffectiveInclude() []ContextInclude {
	if len(c.Include) == 0 {
		return []ContextInclude{ContextIncludeOutput}
	}
	return c.Include
}

// OutputExtractionConfig captures part of the final output into state.
type OutputExtractionConfig struct {
	// Regex with one capture group (required)
	Pattern string `yaml:"pattern"`

	// State key for the capture (required)
	StoreAs string `yaml:"store_as"`

	// How the capture is parsed (default text)
	Format ExtractionFormat `yaml:"format,omitempty"`

	// Fail the phase when the pattern does not match
	Required bool `yaml:"required,omitempty"`
}

// HumanInputConfig opens a phase-output checkpoint when the condition holds.
type HumanInputConfig struct {
	// Template rendered against state; truthy result opens the checkpoint.
	// Empty condition always opens it.
	Condition string `yaml:"condition,omitempty"`

	// Prompt shown to the human
	Prompt string `yaml:"prompt,omitempty"`

	// Response wait bound (default DefaultCheckpointTimeout)
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`

	// abort | continue | default | escalate (default continue)
	OnTimeout CheckpointTimeoutBehavior `yaml:"on_timeout,omitempty"`
}

// AudiblesConfig enables mid-phase user interjections.
type AudiblesConfig struct {
	Enabled bool `yaml:"enabled"`

	// Max audible checkpoints per phase (default 3)
	Budget int `yaml:"budget,omitempty"`
}

// EffectiveBudget returns the audible budget, defaulting to 3.
func (a *AudiblesConfig) EffectiveBudget() int {
	if a.Budget <= 0 {
		return 3
	}
	return a.Budget
}

// CalloutConfig tags the final assistant message for retrieval.
type CalloutConfig struct {
	// Name template rendered with the run context (required)
	Name string `yaml:"name"`
}

// DecisionPointsConfig enables <decision> block routing.
type DecisionPointsConfig struct {
	Enabled bool `yaml:"enabled"`

	// Response wait bound (default DefaultCheckpointTimeout)
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`
}

// MemoryConfig points phase tackle at a memory-bank directory for tools not
// present in the registry.
type MemoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir,omitempty"`
}

// TokenBudgetConfig bounds the context size of agent calls.
type TokenBudgetConfig struct {
	// Hard context limit in tokens (required when set)
	MaxTotal int `yaml:"max_total"`

	// Tokens reserved for the model's reply
	ReserveForOutput int `yaml:"reserve_for_output,omitempty"`

	// sliding_window | prune_oldest | summarize | fail (default sliding_window)
	Strategy BudgetStrategy `yaml:"strategy,omitempty"`

	// Fraction of budget that triggers a warning log (default 0.8)
	WarningThreshold float64 `yaml:"warning_threshold,omitempty"`
}

// EffectiveStrategy returns the strategy, defaulting to sliding_window.
func (t *TokenBudgetConfig) EffectiveStrategy() BudgetStrategy {
	if t.Strategy == "" {
		return BudgetSlidingWindow
	}
	return t.Strategy
}

// ToolCachingConfig controls the content-addressed tool result cache.
type ToolCachingConfig struct {
	Enabled bool `yaml:"enabled"`

	// Entry lifetime (default DefaultToolCacheTTL)
	TTL string `yaml:"ttl,omitempty"`

	// LRU eviction bound (default DefaultToolCacheSize)
	MaxEntries int `yaml:"max_entries,omitempty"`

	// args | query (default args)
	Key CacheKeyMode `yaml:"key,omitempty"`

	// Tools whose results are never cached
	Exclude []string `yaml:"exclude,omitempty"`
}
