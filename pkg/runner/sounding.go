package runner

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/windlassio/windlass/pkg/agent"
	"github.com/windlassio/windlass/pkg/budget"
	"github.com/windlassio/windlass/pkg/config"
	"github.com/windlassio/windlass/pkg/echo"
	"github.com/windlassio/windlass/pkg/events"
	"github.com/windlassio/windlass/pkg/trace"
	"github.com/windlassio/windlass/pkg/unifiedlog"
)

// soundingAttempt is one completed fan-out attempt awaiting evaluation.
type soundingAttempt struct {
	index    int
	model    string
	mutation Mutation
	echo     *echo.Echo
	result   *PhaseResult
	err      error

	valid       bool
	validReason string
}

// runSoundings executes a phase factor-way in parallel and resolves the
// attempts into one result: a selected winner or an aggregate.
func (c *cascadeRun) runSoundings(ctx context.Context, p *config.PhaseConfig) (*PhaseResult, error) {
	sc := p.Soundings
	phaseTrace := trace.NewID()
	speciesHash := trace.SpeciesHash(p)

	if c.r.sessions != nil {
		if err := c.r.sessions.SetCurrentPhase(ctx, c.sessionID, p.Name); err != nil {
			slog.Warn("Failed to record current phase", "session_id", c.sessionID, "error", err)
		}
	}

	// Shared context: every attempt starts from the same snapshot
	prebuilt, err := c.builder.Build(p.Context)
	if err != nil {
		return nil, c.failPhase(ctx, c.echo, p.Name, phaseTrace, ErrTypeConfig, err.Error())
	}
	rendered, err := c.renderInstructions(p, c.echo, phaseOptions{})
	if err != nil {
		return nil, c.failPhase(ctx, c.echo, p.Name, phaseTrace, ErrTypeConfig, err.Error())
	}

	models := c.assignModels(sc, p)
	models = c.filterByContextWindow(ctx, p.Name, models, prebuilt, rendered)
	factor := len(models)

	// Rewrite mutations call the rewriter; resolve sequentially before the
	// fan-out so workers never contend on it
	mutations := make([]Mutation, factor)
	for i := 1; i < factor; i++ {
		mut, err := c.mutator.Prepare(ctx, sc, rendered, speciesHash, i)
		if err != nil {
			return nil, c.failPhase(ctx, c.echo, p.Name, phaseTrace, ErrTypeConfig, err.Error())
		}
		mutations[i] = mut
		if mut.Applied {
			c.logMutation(p.Name, phaseTrace, speciesHash, i, mut)
		}
	}

	attempts := c.fanOut(ctx, p, factor, func(i int) phaseOptions {
		return phaseOptions{
			model:         models[i],
			mutation:      mutations[i],
			soundingIndex: unifiedlog.Ptr(i),
			echo:          c.echo.Clone(),
			prebuilt:      prebuilt,
			prebuiltSet:   true,
		}
	}, nil)

	survivors := successful(attempts)
	if len(survivors) == 0 {
		return nil, c.failPhase(ctx, c.echo, p.Name, phaseTrace, ErrTypeEvaluation,
			fmt.Sprintf("all %d sounding attempts failed", factor))
	}

	c.preEvalValidate(ctx, sc, survivors)

	if sc.EffectiveMode() == config.SoundingModeAggregate {
		return c.aggregate(ctx, p, phaseTrace, kept(survivors))
	}

	winner, err := c.selectAttemptWinner(ctx, p.Name, phaseTrace, sc, survivors)
	if err != nil {
		return nil, err
	}
	if err := c.propagateWinner(ctx, p.Name, winner); err != nil {
		slog.Warn("Winner propagation incomplete", "session_id", c.sessionID, "phase", p.Name, "error", err)
	}

	if sc.Reforge != nil && sc.Reforge.Steps > 0 {
		return c.reforge(ctx, p, sc, phaseTrace, speciesHash, winner)
	}
	return winner.result, nil
}

// fanOut runs factor attempts through a bounded worker pool. reforgeStep is
// nil for regular soundings.
func (c *cascadeRun) fanOut(ctx context.Context, p *config.PhaseConfig, factor int, optsFor func(int) phaseOptions, reforgeStep *int) []*soundingAttempt {
	workers := factor
	if cap := p.Soundings.EffectiveMaxParallel(); workers > cap {
		workers = cap
	}

	attempts := make([]*soundingAttempt, factor)
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				attempts[i] = c.runAttempt(ctx, p, i, optsFor(i), reforgeStep)
			}
		}()
	}
	for i := 0; i < factor; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return attempts
}

func (c *cascadeRun) runAttempt(ctx context.Context, p *config.PhaseConfig, i int, opts phaseOptions, reforgeStep *int) *soundingAttempt {
	opts.reforgeStep = reforgeStep
	a := &soundingAttempt{index: i, model: opts.model, mutation: opts.mutation, echo: opts.echo}

	c.publishSounding(ctx, p.Name, i, events.SoundingStatusStarted, opts.model, reforgeStep)
	if c.r.bus != nil {
		c.r.bus.Publish(events.TopicSoundingStart, map[string]any{
			"session_id": c.sessionID, "phase_name": p.Name,
			"sounding_index": i, "model": opts.model,
		})
	}

	result, err := c.runPhase(ctx, p, opts)
	a.result = result
	a.err = err

	status := events.SoundingStatusCompleted
	preview := ""
	if err != nil {
		status = events.SoundingStatusFailed
	} else {
		preview = result.Output
		if len(preview) > 200 {
			preview = preview[:200]
		}
	}
	c.publishSounding(ctx, p.Name, i, status, opts.model, reforgeStep)
	if c.r.bus != nil {
		c.r.bus.Publish(events.TopicSoundingComplete, map[string]any{
			"session_id": c.sessionID, "phase_name": p.Name,
			"sounding_index": i, "success": err == nil, "output_preview": preview,
		})
	}
	return a
}

// assignModels expands the sounding model declaration into one model per
// attempt index.
func (c *cascadeRun) assignModels(sc *config.SoundingsConfig, p *config.PhaseConfig) []string {
	base := p.Model
	if base == "" {
		base = c.r.settings.DefaultModel
	}

	if sc.Models.IsEmpty() {
		models := make([]string, sc.Factor)
		for i := range models {
			models[i] = base
		}
		return models
	}

	if len(sc.Models.Weights) > 0 {
		var models []string
		for model, weight := range sc.Models.Weights {
			for k := 0; k < weight; k++ {
				models = append(models, model)
			}
		}
		if len(models) != sc.Factor {
			slog.Info("Sounding model weights override declared factor",
				"session_id", c.sessionID, "declared", sc.Factor, "effective", len(models))
		}
		return models
	}

	models := make([]string, sc.Factor)
	switch sc.ModelStrategy {
	case config.ModelStrategyRandom:
		for i := range models {
			models[i] = sc.Models.List[rand.Intn(len(sc.Models.List))]
		}
	default:
		for i := range models {
			models[i] = sc.Models.List[i%len(sc.Models.List)]
		}
	}
	return models
}

// filterByContextWindow drops models whose context limit cannot hold the
// request with the safety buffer. When every model would be dropped the
// original assignment is kept so the run can still proceed.
func (c *cascadeRun) filterByContextWindow(ctx context.Context, phase string, models []string, prebuilt []agent.Message, system string) []string {
	estimate := budget.Estimate(prebuilt, nil, system)
	builtin := config.GetBuiltinConfig()

	var surviving []string
	var dropped []string
	for _, model := range models {
		limit := builtin.ContextLimitFor(model, 0)
		if limit > 0 && float64(limit)*(1-config.DefaultContextWindowBuffer) < float64(estimate) {
			dropped = append(dropped, model)
			continue
		}
		surviving = append(surviving, model)
	}
	if len(dropped) == 0 {
		return models
	}
	if len(surviving) == 0 {
		slog.Warn("Every sounding model failed the context-window filter; keeping original assignment",
			"session_id", c.sessionID, "phase", phase, "estimate", estimate)
		return models
	}

	slog.Info("Filtered sounding models by context window",
		"session_id", c.sessionID, "phase", phase, "estimate", estimate, "dropped", dropped)
	if c.r.bus != nil {
		c.r.bus.Publish(events.TopicModelsFiltered, map[string]any{
			"session_id": c.sessionID, "phase_name": phase,
			"estimate": estimate, "dropped": dropped, "surviving": surviving,
		})
	}
	return surviving
}

// preEvalValidate marks each attempt with the sounding validator's verdict.
// When every attempt fails validation, all are kept and the verdicts ride
// along to the evaluator.
func (c *cascadeRun) preEvalValidate(ctx context.Context, sc *config.SoundingsConfig, attempts []*soundingAttempt) {
	if sc.Validator == "" {
		for _, a := range attempts {
			a.valid = true
		}
		return
	}

	anyValid := false
	for _, a := range attempts {
		verdict, err := c.wards.Validate(ctx, sc.Validator, a.result.Output)
		if err != nil {
			a.valid = true
			a.validReason = "validator error: " + err.Error()
			continue
		}
		a.valid = verdict.Valid
		a.validReason = verdict.Reason
		if verdict.Valid {
			anyValid = true
		}
	}
	if !anyValid {
		for _, a := range attempts {
			a.valid = true
			if a.validReason != "" {
				a.validReason = "failed pre-eval: " + a.validReason
			}
		}
	}
}

func successful(attempts []*soundingAttempt) []*soundingAttempt {
	var out []*soundingAttempt
	for _, a := range attempts {
		if a != nil && a.err == nil && a.result != nil {
			out = append(out, a)
		}
	}
	return out
}

func kept(attempts []*soundingAttempt) []*soundingAttempt {
	var out []*soundingAttempt
	for _, a := range attempts {
		if a.valid {
			out = append(out, a)
		}
	}
	if len(out) == 0 {
		return attempts
	}
	return out
}

// aggregate synthesizes every surviving attempt into one output. All
// contributors are winners.
func (c *cascadeRun) aggregate(ctx context.Context, p *config.PhaseConfig, phaseTrace string, attempts []*soundingAttempt) (*PhaseResult, error) {
	sc := p.Soundings
	var output string

	if sc.AggregatorInstructions != "" || len(attempts) > 1 {
		instructions := sc.AggregatorInstructions
		if instructions == "" {
			instructions = config.GetBuiltinConfig().AggregatorDefault
		}
		var b strings.Builder
		for _, a := range attempts {
			fmt.Fprintf(&b, "--- Attempt %d ---\n%s\n\n", a.index+1, a.result.Output)
		}
		resp, err := c.r.client.Run(ctx, agent.CallInput{
			SystemPrompt: instructions,
			UserPrompt:   b.String(),
			Model:        c.utilityModel(),
		})
		if err != nil || strings.TrimSpace(resp.Content) == "" {
			// Fall back to concatenation rather than discarding the attempts
			output = concatenateOutputs(attempts)
			if err != nil {
				slog.Warn("Aggregator call failed, concatenating outputs",
					"session_id", c.sessionID, "phase", p.Name, "error", err)
			}
		} else {
			output = resp.Content
			c.logEvaluatorResponse(p.Name, phaseTrace, resp, unifiedlog.ActorAggregator)
		}
	} else {
		output = concatenateOutputs(attempts)
	}

	var images []string
	for _, a := range attempts {
		images = append(images, a.result.Images...)
		c.markWinner(ctx, p.Name, a.index)
	}

	c.echo.SetState("output_"+p.Name, output)
	c.echo.AddLineage(p.Name, output, phaseTrace)
	return &PhaseResult{Output: output, Images: images}, nil
}

func concatenateOutputs(attempts []*soundingAttempt) string {
	var b strings.Builder
	for _, a := range attempts {
		fmt.Fprintf(&b, "=== Attempt %d ===\n%s\n\n", a.index+1, a.result.Output)
	}
	return strings.TrimSpace(b.String())
}

// selectAttemptWinner resolves evaluate-mode winner selection over the
// surviving attempts.
func (c *cascadeRun) selectAttemptWinner(ctx context.Context, phase, phaseTrace string, sc *config.SoundingsConfig, attempts []*soundingAttempt) (*soundingAttempt, error) {
	pool := kept(attempts)
	if len(pool) == 1 {
		return pool[0], nil
	}

	if c.r.log != nil {
		if err := c.r.log.Flush(ctx); err != nil {
			slog.Warn("Pre-evaluation log flush failed", "session_id", c.sessionID, "error", err)
		}
	}
	cands := make([]candidate, len(pool))
	for i, a := range pool {
		cands[i] = candidate{
			index:       a.index,
			output:      a.result.Output,
			model:       a.model,
			cost:        c.soundingCost(ctx, phase, a.index),
			valid:       a.valid,
			validReason: a.validReason,
			mutation:    a.mutation,
			images:      a.result.Images,
		}
	}

	pick, err := c.evaluate(ctx, phase, phaseTrace, sc, cands)
	if err != nil {
		return nil, c.failPhase(ctx, c.echo, phase, phaseTrace, ErrTypeEvaluation, err.Error())
	}
	return pool[pick], nil
}

// propagateWinner merges the winning clone back into the parent echo, marks
// its log rows, and announces the selection.
func (c *cascadeRun) propagateWinner(ctx context.Context, phase string, winner *soundingAttempt) error {
	c.echo.MergeWinner(winner.echo)
	c.markWinner(ctx, phase, winner.index)

	c.publishSounding(ctx, phase, winner.index, events.SoundingStatusWinner, winner.model, nil)
	if c.r.bus != nil {
		c.r.bus.Publish(events.TopicSoundingWinner, map[string]any{
			"session_id": c.sessionID, "phase_name": phase,
			"sounding_index": winner.index, "model": winner.model,
		})
	}
	return nil
}

func (c *cascadeRun) markWinner(ctx context.Context, phase string, index int) {
	if c.r.log == nil {
		return
	}
	if _, err := c.r.log.MarkWinners(ctx, c.sessionID, phase, index); err != nil {
		slog.Warn("Failed to mark winner rows",
			"session_id", c.sessionID, "phase", phase, "sounding_index", index, "error", err)
	}
}

// soundingCost sums resolved costs over one attempt's log rows. Zero when the
// log is absent or costs have not resolved yet.
func (c *cascadeRun) soundingCost(ctx context.Context, phase string, index int) float64 {
	if c.r.log == nil {
		return 0
	}
	rows, err := c.r.log.Query(ctx, unifiedlog.Filter{
		SessionID:     c.sessionID,
		PhaseName:     phase,
		SoundingIndex: unifiedlog.Ptr(index),
	})
	if err != nil {
		return 0
	}
	total := 0.0
	for _, row := range rows {
		if row.Cost != nil {
			total += *row.Cost
		}
	}
	return total
}

// reforge iteratively refines the winner: each step runs a mini-sounding over
// a honing directive and re-evaluates against the incumbent.
func (c *cascadeRun) reforge(ctx context.Context, p *config.PhaseConfig, sc *config.SoundingsConfig, phaseTrace, speciesHash string, winner *soundingAttempt) (*PhaseResult, error) {
	rf := sc.Reforge
	honing := rf.HoningPrompt
	if honing == "" {
		honing = config.GetBuiltinConfig().HoningDefault
	}
	best := winner

	for step := 1; step <= rf.Steps; step++ {
		if c.isCancelled(ctx) {
			return nil, ErrCancelled
		}
		stepPtr := unifiedlog.Ptr(step)

		instructions := fmt.Sprintf(
			"%s\n\nOriginal task:\n%s\n\nCurrent best answer:\n%s",
			honing, p.Instructions, best.result.Output,
		)

		factor := rf.EffectiveFactorPerStep()
		mutations := make([]Mutation, factor)
		if rf.Mutate {
			for i := 1; i < factor; i++ {
				mut, err := c.mutator.Prepare(ctx, sc, instructions, speciesHash, i)
				if err != nil {
					return nil, c.failPhase(ctx, c.echo, p.Name, phaseTrace, ErrTypeConfig, err.Error())
				}
				mutations[i] = mut
			}
		}

		attempts := c.fanOut(ctx, p, factor, func(i int) phaseOptions {
			return phaseOptions{
				model:         best.model,
				mutation:      mutations[i],
				soundingIndex: unifiedlog.Ptr(i),
				echo:          c.echo.Clone(),
				prebuiltSet:   true,
				instructions:  instructions,
			}
		}, stepPtr)

		survivors := successful(attempts)
		if len(survivors) == 0 {
			slog.Warn("Reforge step produced no survivors, keeping incumbent",
				"session_id", c.sessionID, "phase", p.Name, "step", step)
			continue
		}
		for _, a := range survivors {
			a.valid = true
		}

		contender, err := c.selectAttemptWinner(ctx, p.Name, phaseTrace, sc, survivors)
		if err != nil {
			return nil, err
		}
		c.echo.MergeWinner(contender.echo)
		c.markWinner(ctx, p.Name, contender.index)
		best = contender

		if rf.Threshold != "" {
			verdict, err := c.wards.Validate(ctx, rf.Threshold, best.result.Output)
			if err == nil && verdict.Valid {
				c.logValidation(c.echo, p.Name, phaseTrace, rf.Threshold, true, verdict.Reason)
				break
			}
		}
	}
	return best.result, nil
}

func (c *cascadeRun) logMutation(phase, phaseTrace, speciesHash string, index int, mut Mutation) {
	content := mut.Template
	if mut.Rewritten != "" {
		content = mut.Rewritten
	}
	c.echo.AddHistory(echo.Entry{
		Role:             agent.RoleSystem,
		Content:          content,
		TraceID:          trace.NewID(),
		ParentID:         phaseTrace,
		NodeType:         unifiedlog.NodeTypeMutation,
		Actor:            unifiedlog.ActorMutator,
		Purpose:          unifiedlog.PurposeGeneration,
		SpeciesHash:      speciesHash,
		MutationApplied:  true,
		MutationType:     string(mut.Mode),
		MutationTemplate: mut.Template,
		Metadata:         map[string]any{"sounding_index": index},
	})
}

func (c *cascadeRun) logEvaluatorResponse(phase, phaseTrace string, resp *agent.Response, actor string) {
	c.echo.AddHistory(echo.Entry{
		Role:         agent.RoleAssistant,
		Content:      resp.Content,
		TraceID:      trace.NewID(),
		ParentID:     phaseTrace,
		NodeType:     unifiedlog.NodeTypeEvaluation,
		Actor:        actor,
		Purpose:      unifiedlog.PurposeEvaluationOutput,
		Model:        resp.Model,
		RequestID:    resp.RequestID,
		Provider:     resp.Provider,
		DurationMs:   resp.DurationMs,
		TokensIn:     resp.TokensIn,
		TokensOut:    resp.TokensOut,
		FullRequest:  string(resp.FullRequest),
		FullResponse: string(resp.FullResponse),
	})
}

func (c *cascadeRun) publishSounding(ctx context.Context, phase string, index int, status, model string, reforgeStep *int) {
	if c.r.publisher == nil {
		return
	}
	payload := events.SoundingStatusPayload{
		Type:          events.EventTypeSoundingStatus,
		SessionID:     c.sessionID,
		PhaseName:     phase,
		SoundingIndex: index,
		ReforgeStep:   reforgeStep,
		Status:        status,
		Model:         model,
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := c.r.publisher.PublishSoundingStatus(ctx, c.sessionID, payload); err != nil {
		slog.Warn("Failed to publish sounding status",
			"session_id", c.sessionID, "phase", phase, "sounding_index", index, "error", err)
	}
}

// runCascadeSoundings forks whole child cascades, evaluates their final
// outputs, and adopts the winner's lineage into the parent session.
func (r *Runner) runCascadeSoundings(ctx context.Context, c *cascadeRun, req RunRequest) (*Result, error) {
	sc := c.cascade.Soundings
	factor := sc.Factor
	groupTrace := trace.NewID()

	type childOutcome struct {
		index  int
		result *Result
		err    error
	}
	outcomes := make([]childOutcome, factor)

	workers := factor
	if cap := sc.EffectiveMaxParallel(); workers > cap {
		workers = cap
	}
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				result, err := r.Run(ctx, RunRequest{
					CascadeID:     req.CascadeID,
					SessionID:     childSessionID(req.SessionID, fmt.Sprintf("sounding_%d", i)),
					ParentSession: req.SessionID,
					Depth:         req.Depth + 1,
					Input:         req.Input,
					skipSoundings: true,
				})
				outcomes[i] = childOutcome{index: i, result: result, err: err}
			}
		}()
	}
	for i := 0; i < factor; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var cands []candidate
	var pool []childOutcome
	for _, o := range outcomes {
		if o.err != nil || o.result == nil || o.result.Status != string(statusCompleted) {
			continue
		}
		cands = append(cands, candidate{
			index:  o.index,
			output: o.result.Output,
			valid:  true,
		})
		pool = append(pool, o)
	}
	if len(pool) == 0 {
		c.echo.AddError(c.cascade.CascadeID, ErrTypeEvaluation,
			fmt.Sprintf("all %d cascade soundings failed", factor), nil)
		return c.finish(ctx, statusError), nil
	}

	pick := 0
	if len(pool) > 1 {
		var err error
		pick, err = c.evaluate(ctx, c.cascade.CascadeID, groupTrace, sc, cands)
		if err != nil {
			c.echo.AddError(c.cascade.CascadeID, ErrTypeEvaluation, err.Error(), nil)
			return c.finish(ctx, statusError), nil
		}
	}
	winner := pool[pick]

	for k, v := range winner.result.State {
		c.echo.SetState(k, v)
	}
	c.echo.AddLineage(c.cascade.CascadeID, winner.result.Output, groupTrace)
	c.echo.AddHistory(echo.Entry{
		Role:     agent.RoleSystem,
		Content:  fmt.Sprintf("cascade sounding %d selected", winner.index),
		TraceID:  groupTrace,
		NodeType: unifiedlog.NodeTypeSounding,
		Actor:    unifiedlog.ActorFramework,
		Purpose:  unifiedlog.PurposeWinnerSelection,
		Metadata: map[string]any{"winner_session": winner.result.SessionID, "sounding_index": winner.index},
	})

	return c.finish(ctx, statusCompleted), nil
}
