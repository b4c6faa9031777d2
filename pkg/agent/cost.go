package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrCostNotReady means the provider has not finished accounting the request
// yet. The caller should retry later.
var ErrCostNotReady = errors.New("generation cost not available yet")

// GenerationCost is the provider's post-hoc accounting for one request.
type GenerationCost struct {
	RequestID string
	Cost      float64
	TokensIn  int
	TokensOut int
	Provider  string // upstream provider that actually served the request
}

// CostFetcher resolves the cost of a completed request by its request id.
// Used by the unified log's background resolver, never on the hot path.
type CostFetcher interface {
	FetchCost(ctx context.Context, requestID string) (*GenerationCost, error)
}

// HTTPCostFetcher queries an OpenRouter-style GET /generation?id=<request_id>
// endpoint.
type HTTPCostFetcher struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPCostFetcher creates a fetcher against the given provider base URL
// (the same base the chat client uses).
func NewHTTPCostFetcher(baseURL, apiKey string) *HTTPCostFetcher {
	return &HTTPCostFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type generationResponse struct {
	Data struct {
		ID               string   `json:"id"`
		TotalCost        *float64 `json:"total_cost"`
		TokensPrompt     int      `json:"tokens_prompt"`
		TokensCompletion int      `json:"tokens_completion"`
		ProviderName     string   `json:"provider_name"`
	} `json:"data"`
}

// FetchCost looks up the generation record for requestID. Returns
// ErrCostNotReady when the provider has not produced accounting yet (404 or
// null total_cost); the resolver's backoff schedule handles the retry.
func (f *HTTPCostFetcher) FetchCost(ctx context.Context, requestID string) (*GenerationCost, error) {
	url := fmt.Sprintf("%s/generation?id=%s", f.baseURL, requestID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+f.apiKey)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrCostNotReady
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("generation lookup returned %d: %s", resp.StatusCode, body)
	}

	var gen generationResponse
	if err := json.NewDecoder(resp.Body).Decode(&gen); err != nil {
		return nil, fmt.Errorf("failed to decode generation response: %w", err)
	}
	if gen.Data.TotalCost == nil {
		return nil, ErrCostNotReady
	}

	return &GenerationCost{
		RequestID: requestID,
		Cost:      *gen.Data.TotalCost,
		TokensIn:  gen.Data.TokensPrompt,
		TokensOut: gen.Data.TokensCompletion,
		Provider:  gen.Data.ProviderName,
	}, nil
}
