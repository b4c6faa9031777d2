package config

// MutationMode defines how a sounding's prompt is varied from the baseline.
type MutationMode string

const (
	// MutationModeAugment prepends the mutation template to the rendered instructions
	MutationModeAugment MutationMode = "augment"
	// MutationModeApproach appends the mutation template as a strategy hint
	MutationModeApproach MutationMode = "approach"
	// MutationModeRewrite replaces the instructions with an LLM rewrite, seeded with prior winners
	MutationModeRewrite MutationMode = "rewrite"
	// MutationModeRewriteFree replaces the instructions with an LLM rewrite, no prior winners
	MutationModeRewriteFree MutationMode = "rewrite_free"
)

// IsValid checks if the mutation mode is valid
func (m MutationMode) IsValid() bool {
	switch m {
	case MutationModeAugment, MutationModeApproach, MutationModeRewrite, MutationModeRewriteFree:
		return true
	default:
		return false
	}
}

// IsRewrite reports whether the mode replaces instructions via the rewriter agent.
func (m MutationMode) IsRewrite() bool {
	return m == MutationModeRewrite || m == MutationModeRewriteFree
}

// EvaluatorKind selects who picks the winning sounding.
type EvaluatorKind string

const (
	// EvaluatorLLM delegates winner selection to an evaluator model
	EvaluatorLLM EvaluatorKind = "llm"
	// EvaluatorHuman opens a sounding_eval checkpoint and blocks on the response
	EvaluatorHuman EvaluatorKind = "human"
	// EvaluatorHybrid prefilters with an LLM, then a human picks from the shortlist
	EvaluatorHybrid EvaluatorKind = "hybrid"
)

// IsValid checks if the evaluator kind is valid
func (e EvaluatorKind) IsValid() bool {
	switch e {
	case EvaluatorLLM, EvaluatorHuman, EvaluatorHybrid:
		return true
	default:
		return false
	}
}

// SoundingMode selects between winner selection and synthesis of all attempts.
type SoundingMode string

const (
	// SoundingModeEvaluate selects a single winner
	SoundingModeEvaluate SoundingMode = "evaluate"
	// SoundingModeAggregate synthesizes all surviving attempts into one output
	SoundingModeAggregate SoundingMode = "aggregate"
)

// IsValid checks if the sounding mode is valid
func (m SoundingMode) IsValid() bool {
	return m == SoundingModeEvaluate || m == SoundingModeAggregate
}

// ModelStrategy defines how a model list is spread over sounding attempts.
type ModelStrategy string

const (
	// ModelStrategyRoundRobin cycles the list in order
	ModelStrategyRoundRobin ModelStrategy = "round_robin"
	// ModelStrategyRandom draws uniformly from the list
	ModelStrategyRandom ModelStrategy = "random"
)

// IsValid checks if the model strategy is valid
func (s ModelStrategy) IsValid() bool {
	return s == ModelStrategyRoundRobin || s == ModelStrategyRandom
}

// WardMode defines how a ward verdict is enforced.
type WardMode string

const (
	// WardModeBlocking aborts the phase on a failed verdict
	WardModeBlocking WardMode = "blocking"
	// WardModeAdvisory logs the verdict and continues
	WardModeAdvisory WardMode = "advisory"
	// WardModeRetry triggers another attempt if budget remains (post/turn wards only)
	WardModeRetry WardMode = "retry"
)

// IsValid checks if the ward mode is valid
func (m WardMode) IsValid() bool {
	switch m {
	case WardModeBlocking, WardModeAdvisory, WardModeRetry:
		return true
	default:
		return false
	}
}

// BudgetStrategy defines what happens when the token budget is exceeded.
type BudgetStrategy string

const (
	// BudgetSlidingWindow drops the oldest non-system messages until under budget
	BudgetSlidingWindow BudgetStrategy = "sliding_window"
	// BudgetPruneOldest drops the oldest messages regardless of role
	BudgetPruneOldest BudgetStrategy = "prune_oldest"
	// BudgetSummarize replaces the dropped prefix with an LLM summary
	BudgetSummarize BudgetStrategy = "summarize"
	// BudgetFail raises BudgetExceeded
	BudgetFail BudgetStrategy = "fail"
)

// IsValid checks if the budget strategy is valid
func (s BudgetStrategy) IsValid() bool {
	switch s {
	case BudgetSlidingWindow, BudgetPruneOldest, BudgetSummarize, BudgetFail:
		return true
	default:
		return false
	}
}

// ParetoPolicy selects from the Pareto frontier after quality scoring.
type ParetoPolicy string

const (
	// ParetoPreferCheap picks the cheapest frontier attempt
	ParetoPreferCheap ParetoPolicy = "prefer_cheap"
	// ParetoPreferQuality picks the highest-quality frontier attempt
	ParetoPreferQuality ParetoPolicy = "prefer_quality"
	// ParetoBalanced maximizes quality/cost over the frontier
	ParetoBalanced ParetoPolicy = "balanced"
	// ParetoInteractive opens a checkpoint with the frontier for a human pick
	ParetoInteractive ParetoPolicy = "interactive"
)

// IsValid checks if the pareto policy is valid
func (p ParetoPolicy) IsValid() bool {
	switch p {
	case ParetoPreferCheap, ParetoPreferQuality, ParetoBalanced, ParetoInteractive:
		return true
	default:
		return false
	}
}

// TimeoutAction defines what a human-evaluated sounding does when the
// checkpoint times out.
type TimeoutAction string

const (
	// TimeoutLLMFallback delegates the pick to the LLM evaluator
	TimeoutLLMFallback TimeoutAction = "llm_fallback"
	// TimeoutRandom picks uniformly at random
	TimeoutRandom TimeoutAction = "random"
	// TimeoutFirst picks attempt 0
	TimeoutFirst TimeoutAction = "first"
	// TimeoutAbort fails the phase
	TimeoutAbort TimeoutAction = "abort"
)

// IsValid checks if the timeout action is valid
func (a TimeoutAction) IsValid() bool {
	switch a {
	case TimeoutLLMFallback, TimeoutRandom, TimeoutFirst, TimeoutAbort:
		return true
	default:
		return false
	}
}

// ImageFilter selects which persisted images a context source injects.
type ImageFilter string

const (
	ImageFilterAll   ImageFilter = "all"
	ImageFilterLast  ImageFilter = "last"
	ImageFilterLastN ImageFilter = "last_n"
)

// IsValid checks if the image filter is valid
func (f ImageFilter) IsValid() bool {
	switch f {
	case ImageFilterAll, ImageFilterLast, ImageFilterLastN:
		return true
	default:
		return false
	}
}

// MessageFilter selects which prior-phase messages a context source replays.
type MessageFilter string

const (
	MessageFilterAll           MessageFilter = "all"
	MessageFilterAssistantOnly MessageFilter = "assistant_only"
	MessageFilterLastTurn      MessageFilter = "last_turn"
)

// IsValid checks if the message filter is valid
func (f MessageFilter) IsValid() bool {
	switch f {
	case MessageFilterAll, MessageFilterAssistantOnly, MessageFilterLastTurn:
		return true
	default:
		return false
	}
}

// ContextInclude names one kind of prior-phase material to inject.
type ContextInclude string

const (
	ContextIncludeImages   ContextInclude = "images"
	ContextIncludeOutput   ContextInclude = "output"
	ContextIncludeMessages ContextInclude = "messages"
	ContextIncludeState    ContextInclude = "state"
)

// IsValid checks if the context include is valid
func (c ContextInclude) IsValid() bool {
	switch c {
	case ContextIncludeImages, ContextIncludeOutput, ContextIncludeMessages, ContextIncludeState:
		return true
	default:
		return false
	}
}

// Context source keywords resolved by the ContextBuilder. A source that is
// not a keyword is a literal phase name.
const (
	ContextSourceAll      = "all"
	ContextSourceFirst    = "first"
	ContextSourcePrevious = "previous"
)

// ValidatorKind selects the validator implementation behind a name.
type ValidatorKind string

const (
	// ValidatorBuiltin is one of the registered builtin checks (has_json, non_empty, ...)
	ValidatorBuiltin ValidatorKind = "builtin"
	// ValidatorRegex passes when the pattern matches the content
	ValidatorRegex ValidatorKind = "regex"
	// ValidatorSchema validates content as JSON against a JSON Schema
	ValidatorSchema ValidatorKind = "schema"
	// ValidatorLLM asks a judge model for a {valid, reason} verdict
	ValidatorLLM ValidatorKind = "llm"
	// ValidatorCascade runs a named sub-cascade and reads its verdict output
	ValidatorCascade ValidatorKind = "cascade"
)

// IsValid checks if the validator kind is valid
func (k ValidatorKind) IsValid() bool {
	switch k {
	case ValidatorBuiltin, ValidatorRegex, ValidatorSchema, ValidatorLLM, ValidatorCascade:
		return true
	default:
		return false
	}
}

// AsyncTrigger defines when an async cascade is spawned relative to its phase.
type AsyncTrigger string

const (
	AsyncTriggerOnStart AsyncTrigger = "on_start"
	AsyncTriggerOnEnd   AsyncTrigger = "on_end"
)

// IsValid checks if the async trigger is valid
func (t AsyncTrigger) IsValid() bool {
	return t == AsyncTriggerOnStart || t == AsyncTriggerOnEnd
}

// CacheKeyMode defines how tool-call arguments are folded into the cache key.
type CacheKeyMode string

const (
	// CacheKeyArgs hashes the full canonicalized argument map
	CacheKeyArgs CacheKeyMode = "args"
	// CacheKeyQuery hashes only the "query" argument
	CacheKeyQuery CacheKeyMode = "query"
)

// IsValid checks if the cache key mode is valid
func (m CacheKeyMode) IsValid() bool {
	return m == CacheKeyArgs || m == CacheKeyQuery
}

// ExtractionFormat defines how an extracted output capture is parsed.
type ExtractionFormat string

const (
	ExtractionText ExtractionFormat = "text"
	ExtractionJSON ExtractionFormat = "json"
	ExtractionCode ExtractionFormat = "code"
)

// IsValid checks if the extraction format is valid
func (f ExtractionFormat) IsValid() bool {
	switch f {
	case ExtractionText, ExtractionJSON, ExtractionCode:
		return true
	default:
		return false
	}
}

// CheckpointTimeoutBehavior defines what a phase does when a checkpoint
// expires without a response.
type CheckpointTimeoutBehavior string

const (
	CheckpointTimeoutAbort    CheckpointTimeoutBehavior = "abort"
	CheckpointTimeoutContinue CheckpointTimeoutBehavior = "continue"
	CheckpointTimeoutDefault  CheckpointTimeoutBehavior = "default"
	CheckpointTimeoutEscalate CheckpointTimeoutBehavior = "escalate"
)

// IsValid checks if the checkpoint timeout behavior is valid
func (b CheckpointTimeoutBehavior) IsValid() bool {
	switch b {
	case CheckpointTimeoutAbort, CheckpointTimeoutContinue, CheckpointTimeoutDefault, CheckpointTimeoutEscalate:
		return true
	default:
		return false
	}
}
