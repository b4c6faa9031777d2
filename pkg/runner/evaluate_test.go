package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name    string
		content string
		n       int
		want    int
	}{
		{"bare number", "2", 3, 1},
		{"number in prose", "Attempt 3 is the strongest.", 3, 2},
		{"out of range skipped", "I rate it 10 out of 10, pick 2", 3, 1},
		{"zero skipped", "0 then 3", 3, 2},
		{"no number falls back", "the second one", 3, 0},
		{"empty falls back", "", 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSelection(tt.content, tt.n))
		})
	}
}

func TestNumberFrom(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
		ok   bool
	}{
		{"int", 3, 3, true},
		{"float64", float64(2), 2, true},
		{"numeric string", " 4 ", 4, true},
		{"word", "two", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := numberFrom(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParetoFrontier(t *testing.T) {
	cands := func(costs ...float64) []candidate {
		out := make([]candidate, len(costs))
		for i, c := range costs {
			out[i] = candidate{index: i, cost: c}
		}
		return out
	}

	t.Run("all non-dominated", func(t *testing.T) {
		// Quality and cost rise together: every point trades off
		frontier := paretoFrontier(cands(0.01, 0.02, 0.05), []float64{70, 85, 90})
		assert.Equal(t, []int{0, 1, 2}, frontier)
	})

	t.Run("worse on both axes is dominated", func(t *testing.T) {
		frontier := paretoFrontier(cands(0.04, 0.05, 0.02), []float64{70, 90, 85})
		assert.Equal(t, []int{1, 2}, frontier)
	})

	t.Run("identical points both survive", func(t *testing.T) {
		frontier := paretoFrontier(cands(0.03, 0.03), []float64{80, 80})
		assert.Equal(t, []int{0, 1}, frontier)
	})

	t.Run("single candidate", func(t *testing.T) {
		frontier := paretoFrontier(cands(0.01), []float64{50})
		assert.Equal(t, []int{0}, frontier)
	})
}

func TestRatioOf(t *testing.T) {
	assert.Equal(t, float64(4250), ratioOf(85, 0.02))
	// Free attempts rank purely on quality
	assert.Equal(t, float64(90), ratioOf(90, 0))
	assert.Equal(t, float64(90), ratioOf(90, -1))
}
