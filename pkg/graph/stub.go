package graph

import (
	"context"
	"strings"
	"sync"
)

// StubClient is an in-memory Client used by tests and by deployments
// that run without a graph sidecar. Facts and nodes are matched by
// naive substring scoring; Score carries the configured similarity.
type StubClient struct {
	mu       sync.Mutex
	nodes    []EntityNode
	facts    []FactNode
	episodes []Episode
	added    []AddFactInput

	// Similarity returned for every fact match. Tests tune this to
	// steer the contradiction band.
	FactScore float64

	// Unavailable makes every call behave as if the sidecar is down.
	Unavailable bool
}

// NewStubClient creates an empty stub graph.
func NewStubClient() *StubClient {
	return &StubClient{FactScore: 0.5}
}

// SeedNode adds an entity node to the stub graph.
func (s *StubClient) SeedNode(n EntityNode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes = append(s.nodes, n)
}

// SeedFact adds a fact to the stub graph.
func (s *StubClient) SeedFact(f FactNode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.facts = append(s.facts, f)
}

// Episodes returns the episodes published so far.
func (s *StubClient) Episodes() []Episode {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Episode, len(s.episodes))
	copy(out, s.episodes)
	return out
}

// AddedFacts returns the facts committed via AddFact.
func (s *StubClient) AddedFacts() []AddFactInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]AddFactInput, len(s.added))
	copy(out, s.added)
	return out
}

// AddEpisode records the episode.
func (s *StubClient) AddEpisode(_ context.Context, ep Episode) (*EpisodeResult, error) {
	if s.Unavailable {
		return nil, ErrUnavailable
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.episodes = append(s.episodes, ep)
	return &EpisodeResult{}, nil
}

// SearchGraph matches nodes and facts by substring.
func (s *StubClient) SearchGraph(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	if s.Unavailable {
		return nil, ErrUnavailable
	}
	nodes, err := s.HybridNodeSearch(ctx, q.Query, q.GroupID, q.Limit)
	if err != nil {
		return nil, err
	}
	facts, err := s.HybridFactSearch(ctx, q.Query, q.GroupID, q.Limit)
	if err != nil {
		return nil, err
	}
	return &SearchResult{Nodes: nodes, Facts: facts}, nil
}

// NodeBFS returns all seeded nodes up to limit.
func (s *StubClient) NodeBFS(_ context.Context, _ []string, _ string, _, limit int) ([]EntityNode, error) {
	if s.Unavailable {
		return nil, ErrUnavailable
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return capNodes(s.nodes, limit), nil
}

// FactsByEntities returns all seeded facts up to limit with FactScore.
func (s *StubClient) FactsByEntities(_ context.Context, entityUUIDs []string, _ string, limit int) ([]FactNode, error) {
	if s.Unavailable {
		return nil, ErrUnavailable
	}
	if len(entityUUIDs) == 0 {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scoredFacts(limit), nil
}

// HybridFactSearch matches facts sharing any word with the query.
func (s *StubClient) HybridFactSearch(_ context.Context, query, _ string, limit int) ([]FactNode, error) {
	if s.Unavailable {
		return nil, ErrUnavailable
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	words := strings.Fields(strings.ToLower(query))
	var out []FactNode
	for _, f := range s.facts {
		lower := strings.ToLower(f.Fact)
		for _, w := range words {
			if strings.Contains(lower, w) {
				scored := f
				if scored.Score == 0 {
					scored.Score = s.FactScore
				}
				out = append(out, scored)
				break
			}
		}
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// HybridNodeSearch matches nodes by case-insensitive substring.
func (s *StubClient) HybridNodeSearch(_ context.Context, query, _ string, limit int) ([]EntityNode, error) {
	if s.Unavailable {
		return nil, ErrUnavailable
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	lower := strings.ToLower(query)
	var out []EntityNode
	for _, n := range s.nodes {
		if strings.Contains(strings.ToLower(n.Name), lower) {
			out = append(out, n)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

// AddFact records the fact and returns it as committed.
func (s *StubClient) AddFact(_ context.Context, in AddFactInput) (*FactNode, error) {
	if s.Unavailable {
		return nil, ErrUnavailable
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.added = append(s.added, in)
	node := FactNode{UUID: "stub-" + in.Fact, Fact: in.Fact}
	s.facts = append(s.facts, node)
	return &node, nil
}

// Available reports the stub's configured reachability.
func (s *StubClient) Available(_ context.Context) bool {
	return !s.Unavailable
}

func (s *StubClient) scoredFacts(limit int) []FactNode {
	var out []FactNode
	for _, f := range s.facts {
		scored := f
		if scored.Score == 0 {
			scored.Score = s.FactScore
		}
		out = append(out, scored)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

func capNodes(nodes []EntityNode, limit int) []EntityNode {
	out := make([]EntityNode, len(nodes))
	copy(out, nodes)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
