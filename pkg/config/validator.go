package config

import (
	"fmt"
	"regexp"
)

// Builtin validator names always resolvable by wards, loop_until, and
// soundings without a cascade-level declaration.
var builtinValidatorNames = map[string]bool{
	"has_json":     true,
	"non_empty":    true,
	"has_code":     true,
	"no_error":     true,
	"has_markdown": true,
}

// IsBuiltinValidator reports whether a validator name is a builtin check.
func IsBuiltinValidator(name string) bool {
	return builtinValidatorNames[name]
}

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	for cascadeID, cascade := range v.cfg.CascadeRegistry.GetAll() {
		if err := v.validateCascade(cascadeID, cascade); err != nil {
			return fmt.Errorf("cascade validation failed: %w", err)
		}
	}
	return nil
}

func (v *ConfigValidator) validateCascade(cascadeID string, cascade *CascadeConfig) error {
	if len(cascade.Phases) == 0 {
		return NewValidationError("cascade", cascadeID, "phases", fmt.Errorf("at least one phase required"))
	}

	// Validate inline validators first; phases reference them.
	for name, val := range cascade.Validators {
		if err := v.validateInlineValidator(cascadeID, name, val); err != nil {
			return err
		}
	}

	seen := make(map[string]bool, len(cascade.Phases))
	for i := range cascade.Phases {
		phase := &cascade.Phases[i]
		if phase.Name == "" {
			return NewValidationError("cascade", cascadeID, fmt.Sprintf("phases[%d].name", i), ErrMissingRequiredField)
		}
		if seen[phase.Name] {
			return NewValidationError("cascade", cascadeID, "phases",
				fmt.Errorf("%w: duplicate phase name %q", ErrInvalidValue, phase.Name))
		}
		seen[phase.Name] = true
	}

	for i := range cascade.Phases {
		if err := v.validatePhase(cascade, &cascade.Phases[i]); err != nil {
			return err
		}
	}

	if cascade.Soundings != nil {
		if err := v.validateSoundings(cascadeID+" (cascade-level)", cascade.Soundings); err != nil {
			return err
		}
	}

	return nil
}

func (v *ConfigValidator) validatePhase(cascade *CascadeConfig, phase *PhaseConfig) error {
	id := cascade.CascadeID + "/" + phase.Name

	if phase.Instructions == "" {
		return NewValidationError("phase", id, "instructions", ErrMissingRequiredField)
	}
	if phase.Rules.MaxTurns < 0 {
		return NewValidationError("phase", id, "rules.max_turns", fmt.Errorf("must not be negative"))
	}
	if phase.Rules.MaxAttempts < 0 {
		return NewValidationError("phase", id, "rules.max_attempts", fmt.Errorf("must not be negative"))
	}
	if phase.Rules.LoopUntil != "" {
		if err := v.checkValidatorRef(cascade, id, "rules.loop_until", phase.Rules.LoopUntil); err != nil {
			return err
		}
	}

	// Handoff targets must exist.
	for _, h := range phase.Handoffs {
		if h.Target == "" {
			return NewValidationError("phase", id, "handoffs", ErrMissingRequiredField)
		}
		if cascade.Phase(h.Target) == nil {
			return NewValidationError("phase", id, "handoffs",
				fmt.Errorf("%w: phase %q", ErrPhaseNotFound, h.Target))
		}
	}

	// Sub/async cascade references resolve at run time against the registry;
	// validate them here so broken wiring fails before execution.
	for _, sub := range phase.SubCascades {
		if sub.Cascade == "" {
			return NewValidationError("phase", id, "sub_cascades.cascade", ErrMissingRequiredField)
		}
		if !v.cfg.CascadeRegistry.Has(sub.Cascade) {
			return NewValidationError("phase", id, "sub_cascades",
				fmt.Errorf("%w: %s", ErrCascadeNotFound, sub.Cascade))
		}
	}
	for _, async := range phase.AsyncCascades {
		if async.Cascade == "" {
			return NewValidationError("phase", id, "async_cascades.cascade", ErrMissingRequiredField)
		}
		if !v.cfg.CascadeRegistry.Has(async.Cascade) {
			return NewValidationError("phase", id, "async_cascades",
				fmt.Errorf("%w: %s", ErrCascadeNotFound, async.Cascade))
		}
		if async.Trigger != "" && !async.Trigger.IsValid() {
			return NewValidationError("phase", id, "async_cascades.trigger",
				fmt.Errorf("%w: %s", ErrInvalidValue, async.Trigger))
		}
	}

	if phase.Soundings != nil {
		if err := v.validateSoundings(id, phase.Soundings); err != nil {
			return err
		}
		if phase.Soundings.Validator != "" {
			if err := v.checkValidatorRef(cascade, id, "soundings.validator", phase.Soundings.Validator); err != nil {
				return err
			}
		}
		if r := phase.Soundings.Reforge; r != nil && r.Threshold != "" {
			if err := v.checkValidatorRef(cascade, id, "soundings.reforge.threshold", r.Threshold); err != nil {
				return err
			}
		}
	}

	for _, group := range []struct {
		field string
		wards []WardConfig
	}{
		{"wards.pre", phase.Wards.Pre},
		{"wards.post", phase.Wards.Post},
		{"wards.turn", phase.Wards.Turn},
	} {
		for _, w := range group.wards {
			if w.Validator == "" {
				return NewValidationError("phase", id, group.field, ErrMissingRequiredField)
			}
			if w.Mode != "" && !w.Mode.IsValid() {
				return NewValidationError("phase", id, group.field,
					fmt.Errorf("%w: mode %s", ErrInvalidValue, w.Mode))
			}
			if err := v.checkValidatorRef(cascade, id, group.field, w.Validator); err != nil {
				return err
			}
		}
	}

	if phase.Context != nil {
		for _, src := range phase.Context.From {
			if err := v.validateContextSource(cascade, id, src); err != nil {
				return err
			}
		}
	}

	if ex := phase.OutputExtraction; ex != nil {
		if ex.Pattern == "" {
			return NewValidationError("phase", id, "output_extraction.pattern", ErrMissingRequiredField)
		}
		if ex.StoreAs == "" {
			return NewValidationError("phase", id, "output_extraction.store_as", ErrMissingRequiredField)
		}
		if _, err := regexp.Compile(ex.Pattern); err != nil {
			return NewValidationError("phase", id, "output_extraction.pattern",
				fmt.Errorf("%w: %v", ErrInvalidValue, err))
		}
		if ex.Format != "" && !ex.Format.IsValid() {
			return NewValidationError("phase", id, "output_extraction.format",
				fmt.Errorf("%w: %s", ErrInvalidValue, ex.Format))
		}
	}

	if hi := phase.HumanInput; hi != nil {
		if hi.OnTimeout != "" && !hi.OnTimeout.IsValid() {
			return NewValidationError("phase", id, "human_input.on_timeout",
				fmt.Errorf("%w: %s", ErrInvalidValue, hi.OnTimeout))
		}
	}

	if tb := phase.TokenBudget; tb != nil {
		if err := v.validateTokenBudget(id, tb); err != nil {
			return err
		}
	}

	return nil
}

func (v *ConfigValidator) validateContextSource(cascade *CascadeConfig, id string, src ContextSourceConfig) error {
	if src.Phase == "" {
		return NewValidationError("phase", id, "context.from.phase", ErrMissingRequiredField)
	}
	switch src.Phase {
	case ContextSourceAll, ContextSourceFirst, ContextSourcePrevious:
		// keyword, resolved at run time
	default:
		if cascade.Phase(src.Phase) == nil {
			return NewValidationError("phase", id, "context.from",
				fmt.Errorf("%w: phase %q", ErrPhaseNotFound, src.Phase))
		}
	}
	for _, inc := range src.Include {
		if !inc.IsValid() {
			return NewValidationError("phase", id, "context.from.include",
				fmt.Errorf("%w: %s", ErrInvalidValue, inc))
		}
	}
	if src.Images != "" && !src.Images.IsValid() {
		return NewValidationError("phase", id, "context.from.images",
			fmt.Errorf("%w: %s", ErrInvalidValue, src.Images))
	}
	if src.Messages != "" && !src.Messages.IsValid() {
		return NewValidationError("phase", id, "context.from.messages",
			fmt.Errorf("%w: %s", ErrInvalidValue, src.Messages))
	}
	return nil
}

func (v *ConfigValidator) validateSoundings(id string, s *SoundingsConfig) error {
	if s.Factor < 1 {
		return NewValidationError("soundings", id, "factor", fmt.Errorf("must be at least 1"))
	}
	if s.MaxParallel < 0 {
		return NewValidationError("soundings", id, "max_parallel", fmt.Errorf("must not be negative"))
	}
	if s.MutationMode != "" && !s.MutationMode.IsValid() {
		return NewValidationError("soundings", id, "mutation_mode",
			fmt.Errorf("%w: %s", ErrInvalidValue, s.MutationMode))
	}
	if s.ModelStrategy != "" && !s.ModelStrategy.IsValid() {
		return NewValidationError("soundings", id, "model_strategy",
			fmt.Errorf("%w: %s", ErrInvalidValue, s.ModelStrategy))
	}
	if s.Evaluator != "" && !s.Evaluator.IsValid() {
		return NewValidationError("soundings", id, "evaluator",
			fmt.Errorf("%w: %s", ErrInvalidValue, s.Evaluator))
	}
	if s.Mode != "" && !s.Mode.IsValid() {
		return NewValidationError("soundings", id, "mode",
			fmt.Errorf("%w: %s", ErrInvalidValue, s.Mode))
	}
	if s.OnTimeout != "" && !s.OnTimeout.IsValid() {
		return NewValidationError("soundings", id, "on_timeout",
			fmt.Errorf("%w: %s", ErrInvalidValue, s.OnTimeout))
	}
	if p := s.ParetoFrontier; p != nil && p.Policy != "" && !p.Policy.IsValid() {
		return NewValidationError("soundings", id, "pareto_frontier.policy",
			fmt.Errorf("%w: %s", ErrInvalidValue, p.Policy))
	}
	if r := s.Reforge; r != nil {
		if r.Steps < 1 {
			return NewValidationError("soundings", id, "reforge.steps", fmt.Errorf("must be at least 1"))
		}
		if r.FactorPerStep < 0 {
			return NewValidationError("soundings", id, "reforge.factor_per_step", fmt.Errorf("must not be negative"))
		}
	}

	// A weighted model map fixes the effective factor itself; a mismatched
	// top-level factor is legal (advisory) but each weight must be positive.
	for model, weight := range s.Models.Weights {
		if weight < 1 {
			return NewValidationError("soundings", id, "models",
				fmt.Errorf("%w: weight for %q must be at least 1", ErrInvalidValue, model))
		}
	}

	return nil
}

func (v *ConfigValidator) validateInlineValidator(cascadeID, name string, val InlineValidatorConfig) error {
	id := cascadeID + "/" + name

	if val.Kind != "" && !val.Kind.IsValid() {
		return NewValidationError("validator", id, "kind",
			fmt.Errorf("%w: %s", ErrInvalidValue, val.Kind))
	}

	switch val.EffectiveKind() {
	case ValidatorRegex:
		if val.Pattern == "" {
			return NewValidationError("validator", id, "pattern", ErrMissingRequiredField)
		}
		if _, err := regexp.Compile(val.Pattern); err != nil {
			return NewValidationError("validator", id, "pattern",
				fmt.Errorf("%w: %v", ErrInvalidValue, err))
		}
	case ValidatorSchema:
		if len(val.Schema) == 0 {
			return NewValidationError("validator", id, "schema", ErrMissingRequiredField)
		}
	case ValidatorLLM:
		if val.Instructions == "" {
			return NewValidationError("validator", id, "instructions", ErrMissingRequiredField)
		}
	case ValidatorCascade:
		if val.Cascade == "" {
			return NewValidationError("validator", id, "cascade", ErrMissingRequiredField)
		}
		if !v.cfg.CascadeRegistry.Has(val.Cascade) {
			return NewValidationError("validator", id, "cascade",
				fmt.Errorf("%w: %s", ErrCascadeNotFound, val.Cascade))
		}
	case ValidatorBuiltin:
		if !IsBuiltinValidator(name) {
			return NewValidationError("validator", id, "",
				fmt.Errorf("%w: no implementation fields set and %q is not a builtin", ErrInvalidValue, name))
		}
	}

	return nil
}

func (v *ConfigValidator) validateTokenBudget(id string, tb *TokenBudgetConfig) error {
	if tb.MaxTotal < 1 {
		return NewValidationError("phase", id, "token_budget.max_total", fmt.Errorf("must be at least 1"))
	}
	if tb.ReserveForOutput < 0 {
		return NewValidationError("phase", id, "token_budget.reserve_for_output", fmt.Errorf("must not be negative"))
	}
	if tb.Strategy != "" && !tb.Strategy.IsValid() {
		return NewValidationError("phase", id, "token_budget.strategy",
			fmt.Errorf("%w: %s", ErrInvalidValue, tb.Strategy))
	}
	if tb.WarningThreshold < 0 || tb.WarningThreshold > 1 {
		return NewValidationError("phase", id, "token_budget.warning_threshold",
			fmt.Errorf("must be between 0 and 1"))
	}
	return nil
}

// checkValidatorRef verifies a validator name resolves to a builtin or a
// cascade-declared validator.
func (v *ConfigValidator) checkValidatorRef(cascade *CascadeConfig, id, field, name string) error {
	if IsBuiltinValidator(name) {
		return nil
	}
	if _, ok := cascade.Validators[name]; ok {
		return nil
	}
	return NewValidationError("phase", id, field,
		fmt.Errorf("%w: %s", ErrValidatorNotFound, name))
}
