package wards

import (
	"context"
	"fmt"

	"github.com/windlassio/windlass/pkg/agent"
)

const judgeSystemPrompt = `You are a strict output validator. Apply the given
criteria to the content and respond with ONLY a JSON object:
{"valid": true|false, "reason": "<short explanation when invalid>"}`

// runJudge asks the model whether content satisfies the validator's
// instructions.
func (e *Engine) runJudge(ctx context.Context, name, instructions, content string) (Verdict, error) {
	if e.client == nil {
		return Verdict{}, fmt.Errorf("llm validator %q: no agent client configured", name)
	}

	resp, err := e.client.Run(ctx, agentJudgeInput(instructions, content, e.model))
	if err != nil {
		return Verdict{}, fmt.Errorf("llm validator %q: %w", name, err)
	}

	verdict, err := parseVerdict(resp.Content)
	if err != nil {
		return Verdict{}, fmt.Errorf("llm validator %q: %w", name, err)
	}
	return verdict, nil
}

func agentJudgeInput(instructions, content, model string) agent.CallInput {
	return agent.CallInput{
		SystemPrompt: judgeSystemPrompt,
		UserPrompt:   fmt.Sprintf("Criteria:\n%s\n\nContent to validate:\n%s", instructions, content),
		Model:        model,
	}
}
