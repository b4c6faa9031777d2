package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestListener() *NotifyListener {
	manager := NewConnectionManager(&mockCatchupQuerier{}, 0)
	return NewNotifyListener("host=localhost dbname=windlass_test", manager)
}

func TestNewNotifyListener_Defaults(t *testing.T) {
	listener := newTestListener()

	require.NotNil(t, listener)
	assert.Equal(t, "host=localhost dbname=windlass_test", listener.connString)
	assert.Empty(t, listener.channels)
	assert.NotNil(t, listener.manager)
	assert.False(t, listener.running.Load())
}

// Before Start() there is no connection; Subscribe must fail loudly while
// Unsubscribe on an untracked channel stays a no-op.
func TestNotifyListener_BeforeStart(t *testing.T) {
	listener := newTestListener()

	t.Run("subscribe fails", func(t *testing.T) {
		err := listener.Subscribe(t.Context(), "session:abc")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not established")
	})

	t.Run("unsubscribe is a no-op", func(t *testing.T) {
		assert.NoError(t, listener.Unsubscribe(t.Context(), "session:abc"))
	})

	t.Run("stop without start does not panic", func(t *testing.T) {
		listener.Stop(t.Context())
	})
}
