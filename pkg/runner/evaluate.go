package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/windlassio/windlass/pkg/agent"
	"github.com/windlassio/windlass/pkg/checkpoint"
	"github.com/windlassio/windlass/pkg/config"
	"github.com/windlassio/windlass/pkg/echo"
	"github.com/windlassio/windlass/pkg/trace"
	"github.com/windlassio/windlass/pkg/unifiedlog"
)

// candidate is one attempt as the evaluator sees it.
type candidate struct {
	index       int
	output      string
	model       string
	cost        float64
	valid       bool
	validReason string
	mutation    Mutation
	images      []string
}

var selectionPattern = regexp.MustCompile(`\b(\d+)\b`)

// evaluate picks one candidate and returns its position in cands. The
// returned value indexes cands, not the original sounding index.
func (c *cascadeRun) evaluate(ctx context.Context, phase, groupTrace string, sc *config.SoundingsConfig, cands []candidate) (int, error) {
	if len(cands) == 0 {
		return 0, fmt.Errorf("no candidates to evaluate")
	}
	if len(cands) == 1 {
		return 0, nil
	}

	switch sc.EffectiveEvaluator() {
	case config.EvaluatorHuman:
		return c.evaluateHuman(ctx, phase, groupTrace, sc, cands)
	case config.EvaluatorHybrid:
		return c.evaluateHybrid(ctx, phase, groupTrace, sc, cands)
	}

	if sc.ParetoFrontier != nil && sc.ParetoFrontier.Enabled {
		return c.evaluatePareto(ctx, phase, groupTrace, sc, cands)
	}
	if sc.CostAwareEvaluation {
		return c.evaluateCostAware(ctx, phase, groupTrace, sc, cands)
	}
	return c.evaluateQuality(ctx, phase, groupTrace, sc, cands)
}

// evaluateQuality asks the evaluator model for a single pick over all
// candidate outputs. Ambiguous replies fall back to the first candidate.
func (c *cascadeRun) evaluateQuality(ctx context.Context, phase, groupTrace string, sc *config.SoundingsConfig, cands []candidate) (int, error) {
	instructions := sc.EvaluatorInstructions
	if instructions == "" {
		instructions = config.GetBuiltinConfig().EvaluatorDefault
	}
	system := instructions + "\n\nReply with the number of the best attempt."

	resp, err := c.r.client.Run(ctx, agent.CallInput{
		SystemPrompt: system,
		History:      []agent.Message{c.candidateMessage(cands, nil)},
		Model:        c.utilityModel(),
	})
	if err != nil {
		return 0, fmt.Errorf("evaluator call failed: %w", err)
	}
	c.logEvaluatorResponse(phase, groupTrace, resp, unifiedlog.ActorEvaluator)

	pick := parseSelection(resp.Content, len(cands))
	c.logWinnerSelection(phase, groupTrace, cands[pick].index, "llm")
	return pick, nil
}

// evaluateCostAware shows per-attempt cost alongside the outputs and asks for
// the best quality-per-cost pick.
func (c *cascadeRun) evaluateCostAware(ctx context.Context, phase, groupTrace string, sc *config.SoundingsConfig, cands []candidate) (int, error) {
	instructions := sc.EvaluatorInstructions
	if instructions == "" {
		instructions = config.GetBuiltinConfig().EvaluatorDefault
	}
	system := instructions +
		"\n\nEach attempt lists its cost. Prefer the attempt with the best quality for its cost." +
		"\nReply with the number of the chosen attempt."

	costs := make(map[int]float64, len(cands))
	for _, cand := range cands {
		costs[cand.index] = cand.cost
	}
	resp, err := c.r.client.Run(ctx, agent.CallInput{
		SystemPrompt: system,
		History:      []agent.Message{c.candidateMessage(cands, costs)},
		Model:        c.utilityModel(),
	})
	if err != nil {
		return 0, fmt.Errorf("cost-aware evaluator call failed: %w", err)
	}
	c.logEvaluatorResponse(phase, groupTrace, resp, unifiedlog.ActorEvaluator)

	pick := parseSelection(resp.Content, len(cands))
	c.logWinnerSelection(phase, groupTrace, cands[pick].index, "cost_aware")
	return pick, nil
}

// evaluatePareto scores candidates, computes the (quality up, cost down)
// frontier, and picks from it by policy.
func (c *cascadeRun) evaluatePareto(ctx context.Context, phase, groupTrace string, sc *config.SoundingsConfig, cands []candidate) (int, error) {
	scores, err := c.scoreCandidates(ctx, phase, groupTrace, sc, cands)
	if err != nil {
		return 0, err
	}

	frontier := paretoFrontier(cands, scores)
	dominated := len(cands) - len(frontier)
	slog.Info("Pareto frontier computed",
		"session_id", c.sessionID, "phase", phase,
		"frontier_size", len(frontier), "dominated", dominated)

	// Every attempt gets a rank row: 1 on the frontier, 2 dominated.
	ranks := make([]int, len(cands))
	for i := range ranks {
		ranks[i] = 2
	}
	for _, i := range frontier {
		ranks[i] = 1
	}
	for i, cand := range cands {
		c.logParetoRank(phase, groupTrace, cand.index, ranks[i], scores[i], cand.cost)
	}

	policy := config.ParetoBalanced
	if sc.ParetoFrontier.Policy != "" {
		policy = sc.ParetoFrontier.Policy
	}

	pick := frontier[0]
	switch policy {
	case config.ParetoPreferCheap:
		for _, i := range frontier {
			if cands[i].cost < cands[pick].cost {
				pick = i
			}
		}
	case config.ParetoPreferQuality:
		for _, i := range frontier {
			if scores[i] > scores[pick] {
				pick = i
			}
		}
	case config.ParetoInteractive:
		shortlist := make([]candidate, len(frontier))
		for k, i := range frontier {
			shortlist[k] = cands[i]
		}
		chosen, err := c.evaluateHuman(ctx, phase, groupTrace, sc, shortlist)
		if err != nil {
			return 0, err
		}
		pick = frontier[chosen]
	default: // balanced: maximize quality per cost
		bestRatio := ratioOf(scores[pick], cands[pick].cost)
		for _, i := range frontier {
			if r := ratioOf(scores[i], cands[i].cost); r > bestRatio {
				bestRatio = r
				pick = i
			}
		}
	}

	c.logWinnerSelection(phase, groupTrace, cands[pick].index, "pareto_"+string(policy))
	return pick, nil
}

func ratioOf(quality, cost float64) float64 {
	if cost <= 0 {
		return quality
	}
	return quality / cost
}

// paretoFrontier returns positions not dominated on (quality up, cost down).
func paretoFrontier(cands []candidate, scores []float64) []int {
	var frontier []int
	for i := range cands {
		dominated := false
		for j := range cands {
			if i == j {
				continue
			}
			betterOrEqual := scores[j] >= scores[i] && cands[j].cost <= cands[i].cost
			strictlyBetter := scores[j] > scores[i] || cands[j].cost < cands[i].cost
			if betterOrEqual && strictlyBetter {
				dominated = true
				break
			}
		}
		if !dominated {
			frontier = append(frontier, i)
		}
	}
	if len(frontier) == 0 {
		frontier = []int{0}
	}
	return frontier
}

// scoreCandidates asks the evaluator model for a 0-100 quality score per
// attempt, one "N: score" line each. Unparsed attempts score 50.
func (c *cascadeRun) scoreCandidates(ctx context.Context, phase, groupTrace string, sc *config.SoundingsConfig, cands []candidate) ([]float64, error) {
	instructions := sc.EvaluatorInstructions
	if instructions == "" {
		instructions = config.GetBuiltinConfig().EvaluatorDefault
	}
	system := instructions +
		"\n\nScore every attempt from 0 to 100. Reply with one line per attempt, formatted exactly as \"N: score\"."

	resp, err := c.r.client.Run(ctx, agent.CallInput{
		SystemPrompt: system,
		History:      []agent.Message{c.candidateMessage(cands, nil)},
		Model:        c.utilityModel(),
	})
	if err != nil {
		return nil, fmt.Errorf("scoring call failed: %w", err)
	}
	c.logEvaluatorResponse(phase, groupTrace, resp, unifiedlog.ActorEvaluator)

	scores := make([]float64, len(cands))
	for i := range scores {
		scores[i] = 50
	}
	for _, line := range strings.Split(resp.Content, "\n") {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		n, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		score, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err1 != nil || err2 != nil || n < 1 || n > len(cands) {
			continue
		}
		scores[n-1] = score
	}
	return scores, nil
}

// evaluateHuman opens a sounding_eval checkpoint with every candidate and
// blocks on the pick.
func (c *cascadeRun) evaluateHuman(ctx context.Context, phase, groupTrace string, sc *config.SoundingsConfig, cands []candidate) (int, error) {
	if c.r.checkpoints == nil {
		slog.Warn("Human evaluator requested without a checkpoint manager, falling back to LLM",
			"session_id", c.sessionID, "phase", phase)
		return c.evaluateQuality(ctx, phase, groupTrace, sc, cands)
	}

	outputs := make([]string, len(cands))
	metadata := make([]map[string]any, len(cands))
	for i, cand := range cands {
		outputs[i] = cand.output
		metadata[i] = map[string]any{
			"sounding_index": cand.index,
			"model":          cand.model,
			"cost":           cand.cost,
			"valid":          cand.valid,
		}
		if cand.validReason != "" {
			metadata[i]["validation"] = cand.validReason
		}
		if cand.mutation.Applied {
			metadata[i]["mutation_type"] = string(cand.mutation.Mode)
		}
		if len(cand.images) > 0 {
			metadata[i]["images"] = cand.images
		}
	}
	outputsJSON, _ := json.Marshal(outputs)
	metadataJSON, _ := json.Marshal(metadata)

	spec := map[string]any{"kind": "sounding_eval", "count": len(cands)}
	if sc.EvaluatorInstructions != "" {
		spec["prompt"] = sc.EvaluatorInstructions
	}
	cp := &checkpoint.Checkpoint{
		SessionID:            c.sessionID,
		CascadeID:            c.cascade.CascadeID,
		PhaseName:            phase,
		Type:                 checkpoint.TypeSoundingEval,
		UISpec:               spec,
		SoundingOutputsJSON:  unifiedlog.Ptr(string(outputsJSON)),
		SoundingMetadataJSON: unifiedlog.Ptr(string(metadataJSON)),
	}
	if sc.TimeoutSeconds > 0 {
		cp.TimeoutSeconds = &sc.TimeoutSeconds
	}
	id, err := c.r.checkpoints.Create(ctx, cp)
	if err != nil {
		return 0, fmt.Errorf("failed to create evaluation checkpoint: %w", err)
	}
	c.logCheckpoint(c.echo, phase, groupTrace, id, string(checkpoint.TypeSoundingEval))
	c.publishCheckpointCreated(ctx, id, phase, string(checkpoint.TypeSoundingEval), spec)

	c.setBlocked(ctx, true)
	response, err := c.r.checkpoints.WaitForResponse(ctx, id, time.Duration(sc.TimeoutSeconds)*time.Second)
	c.setBlocked(ctx, false)
	if err != nil {
		return 0, err
	}

	if response == nil {
		c.logCheckpointTimeout(c.echo, phase, groupTrace, id)
		return c.resolveEvalTimeout(ctx, phase, groupTrace, sc, cands)
	}

	if rejected, ok := response["reject_all"].(bool); ok && rejected {
		return 0, fmt.Errorf("%w: every attempt rejected by evaluator", ErrRejectAll)
	}
	if selection, ok := numberFrom(response["selection"]); ok && selection >= 1 && selection <= len(cands) {
		c.logWinnerSelection(phase, groupTrace, cands[selection-1].index, "human")
		return selection - 1, nil
	}
	slog.Warn("Evaluation checkpoint response had no usable selection, keeping first attempt",
		"session_id", c.sessionID, "phase", phase)
	return 0, nil
}

// resolveEvalTimeout applies the configured on_timeout action after a human
// evaluation checkpoint expires.
func (c *cascadeRun) resolveEvalTimeout(ctx context.Context, phase, groupTrace string, sc *config.SoundingsConfig, cands []candidate) (int, error) {
	switch sc.OnTimeout {
	case config.TimeoutAbort:
		return 0, fmt.Errorf("evaluation checkpoint timed out")
	case config.TimeoutRandom:
		pick := rand.Intn(len(cands))
		c.logWinnerSelection(phase, groupTrace, cands[pick].index, "timeout_random")
		return pick, nil
	case config.TimeoutLLMFallback:
		return c.evaluateQuality(ctx, phase, groupTrace, sc, cands)
	default:
		c.logWinnerSelection(phase, groupTrace, cands[0].index, "timeout_first")
		return 0, nil
	}
}

// evaluateHybrid prefilters with the LLM, then a human picks from the
// shortlist.
func (c *cascadeRun) evaluateHybrid(ctx context.Context, phase, groupTrace string, sc *config.SoundingsConfig, cands []candidate) (int, error) {
	topN := sc.PrefilterTopN
	if topN <= 0 {
		topN = config.DefaultHybridPrefilterTopN
	}
	if topN >= len(cands) {
		return c.evaluateHuman(ctx, phase, groupTrace, sc, cands)
	}

	scores, err := c.scoreCandidates(ctx, phase, groupTrace, sc, cands)
	if err != nil {
		return 0, err
	}
	positions := make([]int, len(cands))
	for i := range positions {
		positions[i] = i
	}
	sort.Slice(positions, func(a, b int) bool { return scores[positions[a]] > scores[positions[b]] })
	positions = positions[:topN]
	sort.Ints(positions)

	shortlist := make([]candidate, len(positions))
	for k, i := range positions {
		shortlist[k] = cands[i]
	}
	chosen, err := c.evaluateHuman(ctx, phase, groupTrace, sc, shortlist)
	if err != nil {
		return 0, err
	}
	return positions[chosen], nil
}

// candidateMessage renders every candidate into one user message, with images
// attached as labeled multi-modal parts.
func (c *cascadeRun) candidateMessage(cands []candidate, costs map[int]float64) agent.Message {
	var b strings.Builder
	hasImages := false
	for i, cand := range cands {
		fmt.Fprintf(&b, "=== ATTEMPT %d ===\n", i+1)
		if costs != nil {
			fmt.Fprintf(&b, "cost: $%.6f\n", costs[cand.index])
		}
		if !cand.valid && cand.validReason != "" {
			fmt.Fprintf(&b, "validation: %s\n", cand.validReason)
		}
		b.WriteString(cand.output)
		b.WriteString("\n\n")
		if len(cand.images) > 0 {
			hasImages = true
		}
	}
	text := strings.TrimSpace(b.String())
	if !hasImages {
		return agent.Message{Role: agent.RoleUser, Content: text}
	}

	parts := []agent.ContentPart{{Type: "text", Text: text}}
	for i, cand := range cands {
		for k, path := range cand.images {
			part, err := loadImagePart(path)
			if err != nil {
				slog.Warn("Skipping unreadable evaluation image", "path", path, "error", err)
				continue
			}
			parts = append(parts, agent.ContentPart{
				Type: "text",
				Text: fmt.Sprintf("ATTEMPT %d / IMAGE %d/%d:", i+1, k+1, len(cand.images)),
			}, part)
		}
	}
	return agent.Message{Role: agent.RoleUser, Parts: parts}
}

func (c *cascadeRun) logParetoRank(phase, groupTrace string, soundingIndex, rank int, score, cost float64) {
	c.echo.AddHistory(echo.Entry{
		Role:     agent.RoleSystem,
		Content:  fmt.Sprintf("sounding %d pareto_rank=%d", soundingIndex, rank),
		TraceID:  trace.NewID(),
		ParentID: groupTrace,
		NodeType: unifiedlog.NodeTypeEvaluation,
		Actor:    unifiedlog.ActorEvaluator,
		Purpose:  unifiedlog.PurposeEvaluationOutput,
		Metadata: map[string]any{
			"sounding_index": soundingIndex,
			"pareto_rank":    rank,
			"quality":        score,
			"cost":           cost,
		},
	})
}

func (c *cascadeRun) logWinnerSelection(phase, groupTrace string, soundingIndex int, method string) {
	c.echo.AddHistory(echo.Entry{
		Role:     agent.RoleSystem,
		Content:  fmt.Sprintf("sounding %d selected (%s)", soundingIndex, method),
		TraceID:  trace.NewID(),
		ParentID: groupTrace,
		NodeType: unifiedlog.NodeTypeEvaluation,
		Actor:    unifiedlog.ActorEvaluator,
		Purpose:  unifiedlog.PurposeWinnerSelection,
		Metadata: map[string]any{"sounding_index": soundingIndex, "method": method},
	})
}

// parseSelection extracts the first integer in [1, n] from an evaluator reply
// and maps it to a zero-based position. Ambiguity falls back to the first.
func parseSelection(content string, n int) int {
	for _, m := range selectionPattern.FindAllString(content, -1) {
		v, err := strconv.Atoi(m)
		if err == nil && v >= 1 && v <= n {
			return v - 1
		}
	}
	return 0
}

func numberFrom(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
