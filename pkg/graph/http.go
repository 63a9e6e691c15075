package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kestrel-ai/kestrel/pkg/config"
)

// HTTPClient talks JSON over HTTP to the graph sidecar.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient creates a graph client for the configured sidecar.
func NewHTTPClient(cfg *config.GraphConfig) *HTTPClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// AddEpisode publishes a conversational event for ingestion.
func (c *HTTPClient) AddEpisode(ctx context.Context, ep Episode) (*EpisodeResult, error) {
	var result EpisodeResult
	if err := c.post(ctx, "/episodes", ep, &result); err != nil {
		return nil, fmt.Errorf("failed to add episode: %w", err)
	}
	return &result, nil
}

// SearchGraph runs a hybrid search over nodes and facts.
func (c *HTTPClient) SearchGraph(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	var result SearchResult
	if err := c.post(ctx, "/search", q, &result); err != nil {
		return nil, fmt.Errorf("failed to search graph: %w", err)
	}
	return &result, nil
}

// NodeBFS walks out from the given entity UUIDs.
func (c *HTTPClient) NodeBFS(ctx context.Context, entityUUIDs []string, groupID string, maxDepth, limit int) ([]EntityNode, error) {
	req := map[string]interface{}{
		"entity_uuids": entityUUIDs,
		"group_id":     groupID,
		"max_depth":    maxDepth,
		"limit":        limit,
	}
	var result struct {
		Nodes []EntityNode `json:"nodes"`
	}
	if err := c.post(ctx, "/nodes/bfs", req, &result); err != nil {
		return nil, fmt.Errorf("failed to run node bfs: %w", err)
	}
	return result.Nodes, nil
}

// FactsByEntities fetches facts directly connected to the entities.
func (c *HTTPClient) FactsByEntities(ctx context.Context, entityUUIDs []string, groupID string, limit int) ([]FactNode, error) {
	req := map[string]interface{}{
		"entity_uuids": entityUUIDs,
		"group_id":     groupID,
		"limit":        limit,
	}
	var result struct {
		Facts []FactNode `json:"facts"`
	}
	if err := c.post(ctx, "/facts/by-entities", req, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch facts by entities: %w", err)
	}
	return result.Facts, nil
}

// HybridFactSearch searches facts with the text as query.
func (c *HTTPClient) HybridFactSearch(ctx context.Context, query, groupID string, limit int) ([]FactNode, error) {
	req := map[string]interface{}{
		"query":    query,
		"group_id": groupID,
		"limit":    limit,
	}
	var result struct {
		Facts []FactNode `json:"facts"`
	}
	if err := c.post(ctx, "/facts/search", req, &result); err != nil {
		return nil, fmt.Errorf("failed to search facts: %w", err)
	}
	return result.Facts, nil
}

// HybridNodeSearch searches entity nodes by name or description.
func (c *HTTPClient) HybridNodeSearch(ctx context.Context, query, groupID string, limit int) ([]EntityNode, error) {
	req := map[string]interface{}{
		"query":    query,
		"group_id": groupID,
		"limit":    limit,
	}
	var result struct {
		Nodes []EntityNode `json:"nodes"`
	}
	if err := c.post(ctx, "/nodes/search", req, &result); err != nil {
		return nil, fmt.Errorf("failed to search nodes: %w", err)
	}
	return result.Nodes, nil
}

// AddFact commits a single fact.
func (c *HTTPClient) AddFact(ctx context.Context, in AddFactInput) (*FactNode, error) {
	var result struct {
		Fact FactNode `json:"fact"`
	}
	if err := c.post(ctx, "/facts", in, &result); err != nil {
		return nil, fmt.Errorf("failed to add fact: %w", err)
	}
	return &result.Fact, nil
}

// Available reports whether the graph service is reachable.
// An unconfigured client (empty base URL) is never available.
func (c *HTTPClient) Available(ctx context.Context) bool {
	if c.baseURL == "" {
		return false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode == http.StatusOK
}

// post sends a JSON request and decodes a JSON response.
func (c *HTTPClient) post(ctx context.Context, path string, body, out interface{}) error {
	if c.baseURL == "" {
		return ErrUnavailable
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("graph request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("graph returned %d: %s", resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
