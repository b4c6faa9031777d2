package trace

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/windlassio/windlass/pkg/config"
)

// SpeciesHash computes the 16-hex-char content hash of a phase's DNA:
// the instruction template, soundings config, rules, output schema, and
// wards. It is stable across runs sharing the same phase definition and
// independent of rendered template values and the selected model, so it
// groups equivalent prompts for mutation learning.
func SpeciesHash(phase *config.PhaseConfig) string {
	dna := map[string]any{
		"instructions":  phase.Instructions,
		"soundings":     phase.Soundings,
		"rules":         phase.Rules,
		"output_schema": phase.OutputSchema,
		"wards":         phase.Wards,
	}

	canonical, err := CanonicalJSON(dna)
	if err != nil {
		// The DNA is built from plain config types; marshal failure would be
		// a programming error. Hash the instructions alone as a fallback.
		canonical = []byte(phase.Instructions)
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])[:16]
}
