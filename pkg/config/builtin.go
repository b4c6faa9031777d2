package config

import "sync"

// BuiltinConfig holds all built-in configuration data: mutation banks,
// default instructions for the framework's own LLM calls, and model
// metadata used by the context-window filter.
type BuiltinConfig struct {
	MutationBanks       map[MutationMode][]string
	Models              map[string]ModelInfo
	EvaluatorDefault    string
	AggregatorDefault   string
	RetryDefault        string
	TurnPromptDefault   string
	HoningDefault       string
	RewriterInstruction string
}

// ModelInfo carries per-model metadata for budget checks and the sounding
// context-window filter. Keyed by model id prefix; longest prefix wins.
type ModelInfo struct {
	ContextTokens int
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		MutationBanks: initMutationBanks(),
		Models:        initModelInfo(),

		EvaluatorDefault: "Pick the attempt that best fulfils the original task. " +
			"Judge completeness, correctness, and clarity.",

		AggregatorDefault: "Synthesize the attempts below into a single coherent answer. " +
			"Prefer points of agreement; reconcile conflicts explicitly.",

		RetryDefault: "The previous attempt was rejected: {{.error}}\n" +
			"Produce a corrected answer that addresses the rejection.",

		TurnPromptDefault: "Continue.",

		HoningDefault: "Refine the current best answer. Keep what works; " +
			"fix weaknesses; do not change the overall intent.",

		RewriterInstruction: "You rewrite task prompts. Given the original prompt and a " +
			"rewrite directive, produce a complete replacement prompt that pursues the " +
			"same goal. Output only the rewritten prompt.",
	}
}

// initMutationBanks returns the builtin mutation templates per mode, used
// when soundings.mutations is empty. Index (i-1) mod len selects the
// template for sounding i.
func initMutationBanks() map[MutationMode][]string {
	return map[MutationMode][]string{
		MutationModeAugment: {
			"Think step by step before answering.",
			"Consider edge cases and failure modes first.",
			"Be maximally concrete; avoid generalities.",
			"Challenge your first idea before committing to it.",
		},
		MutationModeApproach: {
			"Approach: work backwards from the desired end state.",
			"Approach: enumerate alternatives, then pick the strongest.",
			"Approach: apply first-principles reasoning rather than analogy.",
			"Approach: optimize for simplicity over completeness.",
		},
		MutationModeRewrite: {
			"Rewrite the prompt to be more specific and structured.",
			"Rewrite the prompt to emphasize verification of the result.",
			"Rewrite the prompt as a set of explicit, ordered steps.",
		},
		MutationModeRewriteFree: {
			"Rewrite the prompt any way you believe will produce a better result.",
			"Rewrite the prompt from the perspective of a domain expert.",
			"Rewrite the prompt to remove all ambiguity.",
		},
	}
}

// initModelInfo seeds context limits for common model families. Providers
// that report their own limits take precedence; this table is the fallback
// for the sounding context-window filter.
func initModelInfo() map[string]ModelInfo {
	return map[string]ModelInfo{
		"openai/gpt-4o":          {ContextTokens: 128_000},
		"openai/gpt-4o-mini":     {ContextTokens: 128_000},
		"openai/gpt-4.1":         {ContextTokens: 1_000_000},
		"anthropic/claude":       {ContextTokens: 200_000},
		"google/gemini":          {ContextTokens: 1_000_000},
		"meta-llama/llama-3":     {ContextTokens: 128_000},
		"mistralai/mistral":      {ContextTokens: 128_000},
		"deepseek/deepseek-chat": {ContextTokens: 64_000},
	}
}

// ContextLimitFor returns the context window for a model id by longest
// matching prefix, or the fallback when no entry matches.
func (b *BuiltinConfig) ContextLimitFor(model string, fallback int) int {
	best := 0
	limit := fallback
	for prefix, info := range b.Models {
		if len(prefix) > best && hasPrefix(model, prefix) {
			best = len(prefix)
			limit = info.ContextTokens
		}
	}
	return limit
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
