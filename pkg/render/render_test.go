package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_Render(t *testing.T) {
	r := NewTemplateRenderer()

	t.Run("plain text passes through", func(t *testing.T) {
		out, err := r.Render("Investigate the failing deployment.", nil)
		require.NoError(t, err)
		assert.Equal(t, "Investigate the failing deployment.", out)
	})

	t.Run("context substitution", func(t *testing.T) {
		ctx := Context("pods crashing", map[string]any{"namespace": "prod"}, nil, nil, nil, 2, 1, true, 3)
		out, err := r.Render("Task: {{.input}} in {{.state.namespace}} (turn {{.turn}}, sounding {{.sounding_index}}/{{.sounding_factor}})", ctx)
		require.NoError(t, err)
		assert.Equal(t, "Task: pods crashing in prod (turn 2, sounding 1/3)", out)
	})

	t.Run("missing keys render as zero", func(t *testing.T) {
		out, err := r.Render("before {{.state.absent}} after", Context("", nil, nil, nil, nil, 0, 0, false, 1))
		require.NoError(t, err)
		assert.Contains(t, out, "before")
		assert.Contains(t, out, "after")
	})

	t.Run("json helper", func(t *testing.T) {
		ctx := Context("", map[string]any{"k": "v"}, nil, nil, nil, 0, 0, false, 1)
		out, err := r.Render("state={{json .state}}", ctx)
		require.NoError(t, err)
		assert.Equal(t, `state={"k":"v"}`, out)
	})

	t.Run("malformed template errors", func(t *testing.T) {
		_, err := r.Render("{{.unclosed", nil)
		assert.Error(t, err)
	})
}
