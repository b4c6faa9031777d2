// Package budget estimates and enforces per-phase token budgets over the
// conversation context. Estimation is the common ~4-chars-per-token
// heuristic; a configurable soft limit, not exact tokenizer counts.
package budget

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/windlassio/windlass/pkg/agent"
	"github.com/windlassio/windlass/pkg/config"
)

// charsPerToken is the approximate number of characters per token for
// English text.
const charsPerToken = 4

// Per-item constants added on top of raw text length.
const (
	tokensPerMessage    = 4
	tokensPerToolSchema = 24
)

// ErrBudgetExceeded is returned by Enforce under the fail strategy.
var ErrBudgetExceeded = errors.New("token budget exceeded")

// Check is the result of a budget check.
type Check struct {
	Current    int     `json:"current"`
	Limit      int     `json:"limit"`
	OverBudget bool    `json:"over_budget"`
	Warning    bool    `json:"warning"`
	Percentage float64 `json:"percentage"`
}

// Summarizer produces a summary of dropped context. The phase runner passes
// its agent client; nil disables the summarize strategy (it degrades to
// sliding_window with a warning).
type Summarizer interface {
	Run(ctx context.Context, input agent.CallInput) (*agent.Response, error)
}

// Budget enforces one phase's token_budget config.
type Budget struct {
	cfg        *config.TokenBudgetConfig
	summarizer Summarizer
	model      string
}

// New creates a Budget. cfg must be non-nil.
func New(cfg *config.TokenBudgetConfig, summarizer Summarizer, model string) *Budget {
	return &Budget{cfg: cfg, summarizer: summarizer, model: model}
}

// EstimateText returns the approximate token count of one string, rounded up.
func EstimateText(text string) int {
	if len(text) == 0 {
		return 0
	}
	return (len(text) + charsPerToken - 1) / charsPerToken
}

// Estimate approximates the token footprint of a full request: system prompt,
// messages (with a per-message constant), and tool schemas (with a per-schema
// constant over the serialized schema).
func Estimate(messages []agent.Message, tools []agent.ToolSchema, system string) int {
	total := EstimateText(system)
	for _, msg := range messages {
		total += tokensPerMessage + EstimateText(msg.Text())
		for _, tc := range msg.ToolCalls {
			total += EstimateText(tc.Function.Name) + EstimateText(tc.Function.Arguments)
		}
	}
	for _, t := range tools {
		total += tokensPerToolSchema + EstimateText(t.Name) + EstimateText(t.Description)
		if t.Parameters != nil {
			if b, err := json.Marshal(t.Parameters); err == nil {
				total += EstimateText(string(b))
			}
		}
	}
	return total
}

// Check evaluates the current context against the budget.
func (b *Budget) Check(messages []agent.Message, tools []agent.ToolSchema, system string) Check {
	limit := b.cfg.MaxTotal - b.cfg.ReserveForOutput
	current := Estimate(messages, tools, system)

	warnAt := b.cfg.WarningThreshold
	if warnAt == 0 {
		warnAt = config.DefaultWarningThreshold
	}

	c := Check{Current: current, Limit: limit}
	if limit > 0 {
		c.Percentage = float64(current) / float64(limit)
		c.OverBudget = current > limit
		c.Warning = c.Percentage >= warnAt
	}
	return c
}

// Enforce reduces messages to fit the budget per the configured strategy.
// Returns the (possibly reduced) messages and the check that triggered
// enforcement; callers log an enforcement row when enforced is true.
func (b *Budget) Enforce(ctx context.Context, messages []agent.Message, tools []agent.ToolSchema, system string) ([]agent.Message, Check, error) {
	check := b.Check(messages, tools, system)
	if !check.OverBudget {
		return messages, check, nil
	}

	strategy := b.cfg.EffectiveStrategy()
	slog.Info("Enforcing token budget",
		"strategy", string(strategy), "current", check.Current, "limit", check.Limit)

	switch strategy {
	case config.BudgetFail:
		return nil, check, fmt.Errorf("%w: %d tokens over a limit of %d", ErrBudgetExceeded, check.Current, check.Limit)

	case config.BudgetSlidingWindow:
		return b.dropOldest(messages, tools, system, true), check, nil

	case config.BudgetPruneOldest:
		return b.dropOldest(messages, tools, system, false), check, nil

	case config.BudgetSummarize:
		if b.summarizer == nil {
			slog.Warn("Summarize strategy requested without a summarizer, falling back to sliding window")
			return b.dropOldest(messages, tools, system, true), check, nil
		}
		return b.summarize(ctx, messages, tools, system, check)

	default:
		return b.dropOldest(messages, tools, system, true), check, nil
	}
}

// dropOldest removes messages from the front until the context fits.
// keepSystem preserves system-role messages (sliding_window semantics);
// prune_oldest drops regardless of role.
func (b *Budget) dropOldest(messages []agent.Message, tools []agent.ToolSchema, system string, keepSystem bool) []agent.Message {
	limit := b.cfg.MaxTotal - b.cfg.ReserveForOutput
	out := make([]agent.Message, len(messages))
	copy(out, messages)

	for Estimate(out, tools, system) > limit && len(out) > 1 {
		dropped := false
		for i := range out {
			if keepSystem && out[i].Role == agent.RoleSystem {
				continue
			}
			out = append(out[:i], out[i+1:]...)
			dropped = true
			break
		}
		if !dropped {
			break
		}
	}
	return out
}

// summarize replaces the dropped prefix with one assistant summary message.
func (b *Budget) summarize(ctx context.Context, messages []agent.Message, tools []agent.ToolSchema, system string, check Check) ([]agent.Message, Check, error) {
	limit := b.cfg.MaxTotal - b.cfg.ReserveForOutput

	// Figure out how many leading messages must go
	keep := len(messages)
	for keep > 1 && Estimate(messages[len(messages)-keep:], tools, system) > limit {
		keep--
	}
	dropped := messages[:len(messages)-keep]
	if len(dropped) == 0 {
		return messages, check, nil
	}

	var transcript string
	for _, msg := range dropped {
		transcript += fmt.Sprintf("[%s] %s\n", msg.Role, msg.Text())
	}

	resp, err := b.summarizer.Run(ctx, agent.CallInput{
		SystemPrompt: "Summarize the following conversation prefix in a compact form that preserves facts, decisions, and open items. Output only the summary.",
		UserPrompt:   transcript,
		Model:        b.model,
	})
	if err != nil {
		slog.Warn("Context summarization failed, falling back to sliding window", "error", err)
		return b.dropOldest(messages, tools, system, true), check, nil
	}

	summary := agent.Message{
		Role:    agent.RoleAssistant,
		Content: "[Summary of earlier context]\n" + resp.Content,
	}
	out := append([]agent.Message{summary}, messages[len(messages)-keep:]...)
	return out, check, nil
}
