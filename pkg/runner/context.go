package runner

import (
	"fmt"
	"log/slog"

	"github.com/windlassio/windlass/pkg/agent"
	"github.com/windlassio/windlass/pkg/config"
)

// PhaseArtifacts is what one completed phase leaves behind for later phases
// to draw on: its final output, the conversation it held, persisted image
// paths, and a snapshot of session state taken at completion.
type PhaseArtifacts struct {
	Output   string
	Messages []agent.Message
	Images   []string
	State    map[string]any
}

// ContextBuilder assembles the injected context for a phase from the declared
// context block. Phases without a context block get a clean slate.
type ContextBuilder struct {
	input     string
	artifacts map[string]*PhaseArtifacts
	order     []string
}

// NewContextBuilder creates a builder seeded with the session input.
func NewContextBuilder(input string) *ContextBuilder {
	return &ContextBuilder{
		input:     input,
		artifacts: make(map[string]*PhaseArtifacts),
	}
}

// Record stores a completed phase's artifacts. Re-running a phase replaces
// its entry but keeps its original position.
func (b *ContextBuilder) Record(phase string, a *PhaseArtifacts) {
	if _, seen := b.artifacts[phase]; !seen {
		b.order = append(b.order, phase)
	}
	b.artifacts[phase] = a
}

// Artifacts returns the recorded artifacts for one phase, or nil.
func (b *ContextBuilder) Artifacts(phase string) *PhaseArtifacts {
	return b.artifacts[phase]
}

// Build resolves the context block into an ordered message list. A nil config
// yields the clean slate.
func (b *ContextBuilder) Build(cfg *config.ContextConfig) ([]agent.Message, error) {
	if cfg == nil {
		return nil, nil
	}

	var out []agent.Message
	if cfg.IncludeInput && b.input != "" {
		out = append(out, agent.Message{
			Role:    agent.RoleUser,
			Content: "Session input:\n" + b.input,
		})
	}

	for _, src := range cfg.From {
		phases, err := b.resolveSource(src)
		if err != nil {
			return nil, err
		}
		for _, phase := range phases {
			msgs, err := b.inject(phase, src)
			if err != nil {
				return nil, err
			}
			out = append(out, msgs...)
		}
	}
	return out, nil
}

// resolveSource expands a source phase reference: the keywords all, first,
// and previous, or a literal phase name.
func (b *ContextBuilder) resolveSource(src config.ContextSourceConfig) ([]string, error) {
	switch src.Phase {
	case config.ContextSourceAll:
		excluded := make(map[string]bool, len(src.Exclude))
		for _, name := range src.Exclude {
			excluded[name] = true
		}
		var out []string
		for _, name := range b.order {
			if !excluded[name] {
				out = append(out, name)
			}
		}
		return out, nil
	case config.ContextSourceFirst:
		if len(b.order) == 0 {
			return nil, nil
		}
		return b.order[:1], nil
	case config.ContextSourcePrevious:
		if len(b.order) == 0 {
			return nil, nil
		}
		return b.order[len(b.order)-1:], nil
	default:
		if _, ok := b.artifacts[src.Phase]; !ok {
			return nil, fmt.Errorf("context source %q has not completed", src.Phase)
		}
		return []string{src.Phase}, nil
	}
}

// inject produces the messages one source phase contributes, honoring the
// include set and its filters.
func (b *ContextBuilder) inject(phase string, src config.ContextSourceConfig) ([]agent.Message, error) {
	a := b.artifacts[phase]
	if a == nil {
		return nil, nil
	}

	var out []agent.Message
	for _, include := range src.EffectiveInclude() {
		switch include {
		case config.ContextIncludeOutput:
			if a.Output != "" {
				out = append(out, agent.Message{
					Role:    agent.RoleUser,
					Content: "[Output from phase]:\n" + a.Output,
				})
			}

		case config.ContextIncludeMessages:
			out = append(out, filterMessages(a.Messages, src.Messages)...)

		case config.ContextIncludeState:
			if len(a.State) > 0 {
				out = append(out, agent.Message{
					Role:    agent.RoleUser,
					Content: fmt.Sprintf("Session state after phase %s:\n%s", phase, stateJSON(a.State)),
				})
			}

		case config.ContextIncludeImages:
			msg, err := imageMessage(phase, a.Images, src.Images, src.ImagesN)
			if err != nil {
				return nil, err
			}
			if msg != nil {
				out = append(out, *msg)
			}
		}
	}
	return out, nil
}

// filterMessages applies the declared message filter to a phase's replayed
// conversation.
func filterMessages(msgs []agent.Message, filter config.MessageFilter) []agent.Message {
	switch filter {
	case config.MessageFilterAssistantOnly:
		var out []agent.Message
		for _, m := range msgs {
			if m.Role == agent.RoleAssistant {
				out = append(out, m)
			}
		}
		return out

	case config.MessageFilterLastTurn:
		// Final assistant message plus the user message that prompted it
		for i := len(msgs) - 1; i >= 0; i-- {
			if msgs[i].Role != agent.RoleAssistant {
				continue
			}
			for j := i - 1; j >= 0; j-- {
				if msgs[j].Role == agent.RoleUser {
					return []agent.Message{msgs[j], msgs[i]}
				}
			}
			return []agent.Message{msgs[i]}
		}
		return nil

	default:
		out := make([]agent.Message, len(msgs))
		copy(out, msgs)
		return out
	}
}

// imageMessage loads the selected persisted images into one multi-part user
// message. Unreadable images are skipped with a warning.
func imageMessage(phase string, paths []string, filter config.ImageFilter, n int) (*agent.Message, error) {
	selected := paths
	switch filter {
	case config.ImageFilterLast:
		if len(paths) > 1 {
			selected = paths[len(paths)-1:]
		}
	case config.ImageFilterLastN:
		if n > 0 && len(paths) > n {
			selected = paths[len(paths)-n:]
		}
	}
	if len(selected) == 0 {
		return nil, nil
	}

	parts := []agent.ContentPart{{
		Type: "text",
		Text: fmt.Sprintf("Images produced by phase %s:", phase),
	}}
	for _, path := range selected {
		part, err := loadImagePart(path)
		if err != nil {
			slog.Warn("Skipping unreadable context image", "phase", phase, "path", path, "error", err)
			continue
		}
		parts = append(parts, part)
	}
	if len(parts) == 1 {
		return nil, nil
	}
	return &agent.Message{Role: agent.RoleUser, Parts: parts}, nil
}
