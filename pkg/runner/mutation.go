package runner

import (
	"context"
	"fmt"
	"strings"

	"github.com/windlassio/windlass/pkg/agent"
	"github.com/windlassio/windlass/pkg/config"
	"github.com/windlassio/windlass/pkg/unifiedlog"
)

// Mutation is a resolved per-sounding prompt variation. For the text modes
// (augment, approach) Template is woven into the instructions at phase start;
// for the rewrite modes Rewritten carries the full replacement prompt.
type Mutation struct {
	Applied   bool
	Mode      config.MutationMode
	Template  string
	Rewritten string
}

// Apply transforms rendered instructions according to the mutation.
func (m Mutation) Apply(instructions string) string {
	if !m.Applied {
		return instructions
	}
	switch m.Mode {
	case config.MutationModeAugment:
		return m.Template + "\n\n" + instructions
	case config.MutationModeApproach:
		return instructions + "\n\n" + m.Template
	case config.MutationModeRewrite, config.MutationModeRewriteFree:
		if m.Rewritten != "" {
			return m.Rewritten
		}
		return instructions
	default:
		return instructions
	}
}

// Mutator resolves mutation templates for sounding attempts and drives the
// rewriter agent for the rewrite modes.
type Mutator struct {
	client agent.Client
	model  string
	log    *unifiedlog.UnifiedLog
}

// NewMutator creates a mutator. log may be nil (no winner learning).
func NewMutator(client agent.Client, model string, log *unifiedlog.UnifiedLog) *Mutator {
	return &Mutator{client: client, model: model, log: log}
}

// Prepare resolves the mutation for sounding index i. Index 0 is the
// unmutated baseline. Rewrite modes call the rewriter synchronously, so the
// caller should prepare all indices before fanning out.
func (m *Mutator) Prepare(ctx context.Context, sc *config.SoundingsConfig, rendered, speciesHash string, index int) (Mutation, error) {
	if index == 0 || sc == nil || !sc.Mutate {
		return Mutation{}, nil
	}

	mode := sc.MutationMode
	if mode == "" {
		mode = config.MutationModeApproach
	}
	templates := sc.Mutations
	if len(templates) == 0 {
		templates = config.GetBuiltinConfig().MutationBanks[mode]
	}
	if len(templates) == 0 {
		return Mutation{}, nil
	}
	template := templates[(index-1)%len(templates)]

	mut := Mutation{Applied: true, Mode: mode, Template: template}
	if !mode.IsRewrite() {
		return mut, nil
	}

	rewritten, err := m.rewrite(ctx, rendered, template, speciesHash, mode)
	if err != nil {
		return Mutation{}, fmt.Errorf("rewrite mutation failed: %w", err)
	}
	mut.Rewritten = rewritten
	return mut, nil
}

// rewrite asks the rewriter agent for a replacement prompt. In rewrite mode
// (not rewrite_free) prior winning rewrites of the same phase species are
// included as examples.
func (m *Mutator) rewrite(ctx context.Context, rendered, directive, speciesHash string, mode config.MutationMode) (string, error) {
	if m.client == nil {
		return "", fmt.Errorf("no rewriter client configured")
	}

	var b strings.Builder
	b.WriteString("Original prompt:\n")
	b.WriteString(rendered)
	b.WriteString("\n\nRewrite directive: ")
	b.WriteString(directive)

	if mode == config.MutationModeRewrite && m.log != nil && speciesHash != "" {
		winners, err := m.log.PriorWinningRewrites(ctx, speciesHash, config.DefaultRewriteWinnerExamples)
		if err == nil && len(winners) > 0 {
			b.WriteString("\n\nRewrites that won in previous runs of this task:\n")
			for i, row := range winners {
				if row.ContentJSON == nil {
					continue
				}
				fmt.Fprintf(&b, "\n--- Winning rewrite %d ---\n%s\n", i+1, *row.ContentJSON)
			}
		}
	}

	resp, err := m.client.Run(ctx, agent.CallInput{
		SystemPrompt: config.GetBuiltinConfig().RewriterInstruction,
		UserPrompt:   b.String(),
		Model:        m.model,
	})
	if err != nil {
		return "", err
	}
	rewritten := strings.TrimSpace(resp.Content)
	if rewritten == "" {
		return "", fmt.Errorf("rewriter returned empty prompt")
	}
	return rewritten, nil
}
