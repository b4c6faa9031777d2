package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPCostFetcher_FetchCost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/generation", r.URL.Path)
		assert.Equal(t, "gen-abc123", r.URL.Query().Get("id"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"id":                "gen-abc123",
				"total_cost":        0.00234,
				"tokens_prompt":     150,
				"tokens_completion": 60,
				"provider_name":     "DeepInfra",
			},
		})
	}))
	defer server.Close()

	fetcher := NewHTTPCostFetcher(server.URL, "test-key")
	cost, err := fetcher.FetchCost(context.Background(), "gen-abc123")
	require.NoError(t, err)

	assert.Equal(t, "gen-abc123", cost.RequestID)
	assert.InDelta(t, 0.00234, cost.Cost, 1e-9)
	assert.Equal(t, 150, cost.TokensIn)
	assert.Equal(t, 60, cost.TokensOut)
	assert.Equal(t, "DeepInfra", cost.Provider)
}

func TestHTTPCostFetcher_NotReady(t *testing.T) {
	t.Run("404", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		fetcher := NewHTTPCostFetcher(server.URL, "k")
		_, err := fetcher.FetchCost(context.Background(), "gen-x")
		assert.ErrorIs(t, err, ErrCostNotReady)
	})

	t.Run("null total_cost", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{"id": "gen-x", "total_cost": nil},
			})
		}))
		defer server.Close()

		fetcher := NewHTTPCostFetcher(server.URL, "k")
		_, err := fetcher.FetchCost(context.Background(), "gen-x")
		assert.ErrorIs(t, err, ErrCostNotReady)
	})
}

func TestHTTPCostFetcher_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	fetcher := NewHTTPCostFetcher(server.URL, "k")
	_, err := fetcher.FetchCost(context.Background(), "gen-x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCostNotReady)
}
