// Package graph defines the narrow contract between kestrel and the
// external knowledge-graph service. The daemon never depends on the
// graph's concrete schema — only on these types.
package graph

import (
	"context"
	"time"
)

// EntityNode is a graph entity as returned by node searches.
type EntityNode struct {
	UUID    string   `json:"uuid"`
	Name    string   `json:"name"`
	Labels  []string `json:"labels,omitempty"`
	Summary string   `json:"summary,omitempty"`
}

// FactNode is a graph fact (edge) with an optional relevance score.
// Score doubles as the semantic similarity measure consumed by the
// fact checker; its computation is the graph service's concern.
type FactNode struct {
	UUID      string    `json:"uuid"`
	Fact      string    `json:"fact"`
	Score     float64   `json:"score,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Episode is a conversational event submitted for graph ingestion.
type Episode struct {
	EpisodeBody       string    `json:"episode_body"`
	SourceDescription string    `json:"source_description,omitempty"`
	ReferenceTime     time.Time `json:"reference_time"`
	Source            string    `json:"source,omitempty"`
	GroupID           string    `json:"group_id"`
	SpeakerID         string    `json:"speaker_id,omitempty"`
	SpeakerName       string    `json:"speaker_name,omitempty"`
	Personality       string    `json:"personality,omitempty"`
}

// EpisodeResult reports the nodes touched by an episode ingestion.
type EpisodeResult struct {
	Nodes []EntityNode `json:"nodes"`
}

// SearchQuery parameterizes a hybrid graph search.
type SearchQuery struct {
	Query         string   `json:"query"`
	GroupID       string   `json:"group_id"`
	Limit         int      `json:"limit,omitempty"`
	RerankMethod  string   `json:"rerank_method,omitempty"`
	RerankAlpha   *float64 `json:"rerank_alpha,omitempty"`
	RecencyWeight *float64 `json:"recency_weight,omitempty"`
	EntityValues  []string `json:"entity_values,omitempty"`
}

// SearchResult is the combined output of a hybrid graph search.
type SearchResult struct {
	Nodes []EntityNode `json:"nodes"`
	Facts []FactNode   `json:"facts"`
}

// AddFactInput submits a standalone fact for graph ingestion.
type AddFactInput struct {
	Fact       string                 `json:"fact"`
	GroupID    string                 `json:"group_id"`
	Source     string                 `json:"source,omitempty"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// Client is the knowledge-graph adapter consumed by the daemon.
type Client interface {
	// AddEpisode publishes a conversational event for ingestion.
	AddEpisode(ctx context.Context, ep Episode) (*EpisodeResult, error)

	// SearchGraph runs a hybrid search over nodes and facts.
	SearchGraph(ctx context.Context, q SearchQuery) (*SearchResult, error)

	// NodeBFS walks out from the given entity UUIDs.
	NodeBFS(ctx context.Context, entityUUIDs []string, groupID string, maxDepth, limit int) ([]EntityNode, error)

	// FactsByEntities fetches facts directly connected to the entities.
	FactsByEntities(ctx context.Context, entityUUIDs []string, groupID string, limit int) ([]FactNode, error)

	// HybridFactSearch searches facts with the text as query.
	HybridFactSearch(ctx context.Context, query, groupID string, limit int) ([]FactNode, error)

	// HybridNodeSearch searches entity nodes by name or description.
	HybridNodeSearch(ctx context.Context, query, groupID string, limit int) ([]EntityNode, error)

	// AddFact commits a single fact.
	AddFact(ctx context.Context, in AddFactInput) (*FactNode, error)

	// Available reports whether the graph service is reachable.
	Available(ctx context.Context) bool
}
