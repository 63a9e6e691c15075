// Package integration is the fact checker: it turns exploration
// findings into graph facts, or into pending contradiction reviews when
// a finding disagrees with what the graph already believes.
package integration

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/pkg/events"
	"github.com/kestrel-ai/kestrel/pkg/graph"
	"github.com/kestrel-ai/kestrel/pkg/services"
)

// Similarity band. Strictly above duplicateThreshold a pair is the
// same fact; inside [contradictionLow, duplicateThreshold] it is a
// candidate contradiction; below the band the facts are unrelated.
// Both band edges are inclusive.
const (
	contradictionLow   = 0.70
	duplicateThreshold = 0.95

	connectedFactCap = 20
	hybridFactCap    = 10
)

// Finding is one candidate fact produced by exploration.
type Finding struct {
	Fact        string   `json:"fact"`
	EntityNames []string `json:"entity_names,omitempty"`
	Source      string   `json:"source,omitempty"`
	Context     string   `json:"context,omitempty"`
}

// Result summarizes one integration batch.
type Result struct {
	Added   int `json:"added"`
	Queued  int `json:"queued"`
	Skipped int `json:"skipped"`
}

// candidate is one (new fact, existing fact) pair under consideration.
type candidate struct {
	existing graph.FactNode
	reason   string
}

// Checker integrates findings against the knowledge graph.
type Checker struct {
	client  *ent.Client
	graph   graph.Client
	reviews *services.ReviewService
	sink    events.Sink
}

// NewChecker creates a fact checker. sink may be nil.
func NewChecker(client *ent.Client, graphClient graph.Client, reviews *services.ReviewService, sink events.Sink) *Checker {
	if sink == nil {
		sink = events.NopSink{}
	}
	return &Checker{client: client, graph: graphClient, reviews: reviews, sink: sink}
}

// Integrate processes a batch of findings. Clean facts are committed to
// the graph, contradicted ones open pending reviews, and any graph
// trouble skips the finding without aborting the batch.
func (c *Checker) Integrate(ctx context.Context, groupID string, findings []Finding) (Result, error) {
	var result Result
	for _, finding := range findings {
		if strings.TrimSpace(finding.Fact) == "" {
			result.Skipped++
			continue
		}

		outcome, err := c.integrateOne(ctx, groupID, finding)
		if err != nil {
			slog.Warn("Finding integration failed, skipping",
				"fact", finding.Fact, "error", err)
			result.Skipped++
			continue
		}
		switch outcome {
		case outcomeAdded:
			result.Added++
		case outcomeQueued:
			result.Queued++
		case outcomeSkipped:
			result.Skipped++
		}
	}
	return result, nil
}

type outcome int

const (
	outcomeAdded outcome = iota
	outcomeQueued
	outcomeSkipped
)

func (c *Checker) integrateOne(ctx context.Context, groupID string, finding Finding) (outcome, error) {
	entityUUIDs := c.resolveEntities(ctx, groupID, finding.EntityNames)

	candidates, err := c.findCandidates(ctx, groupID, finding, entityUUIDs)
	if err != nil {
		return outcomeSkipped, err
	}

	var contradictions []candidate
	for _, cand := range candidates {
		score := cand.existing.Score
		if score > duplicateThreshold {
			// The graph already holds this fact.
			return outcomeSkipped, nil
		}
		if score >= contradictionLow {
			contradictions = append(contradictions, cand)
		}
	}

	if len(contradictions) > 0 {
		for _, cand := range contradictions {
			if err := c.openReview(ctx, groupID, finding, cand); err != nil {
				return outcomeSkipped, err
			}
		}
		return outcomeQueued, nil
	}

	if err := c.commitFact(ctx, groupID, finding); err != nil {
		return outcomeSkipped, err
	}
	return outcomeAdded, nil
}

// resolveEntities maps entity names to graph UUIDs, taking the top
// hybrid node search hit for each. Unresolved names are dropped; they
// never block the finding.
func (c *Checker) resolveEntities(ctx context.Context, groupID string, names []string) []string {
	var uuids []string
	for _, name := range names {
		nodes, err := c.graph.HybridNodeSearch(ctx, name, groupID, 1)
		if err != nil || len(nodes) == 0 {
			continue
		}
		uuids = append(uuids, nodes[0].UUID)
	}
	return uuids
}

// findCandidates combines facts connected to the resolved entities with
// a hybrid search over the whole graph, deduplicated by fact UUID.
func (c *Checker) findCandidates(ctx context.Context, groupID string, finding Finding, entityUUIDs []string) ([]candidate, error) {
	seen := map[string]bool{}
	var candidates []candidate

	if len(entityUUIDs) > 0 {
		connected, err := c.graph.FactsByEntities(ctx, entityUUIDs, groupID, connectedFactCap)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch connected facts: %w", err)
		}
		for _, fact := range connected {
			if !seen[fact.UUID] {
				seen[fact.UUID] = true
				candidates = append(candidates, candidate{existing: fact, reason: "connected to shared entity"})
			}
		}
	}

	searched, err := c.graph.HybridFactSearch(ctx, finding.Fact, groupID, hybridFactCap)
	if err != nil {
		return nil, fmt.Errorf("failed to search facts: %w", err)
	}
	for _, fact := range searched {
		if !seen[fact.UUID] {
			seen[fact.UUID] = true
			candidates = append(candidates, candidate{existing: fact, reason: "hybrid search match"})
		}
	}
	return candidates, nil
}

func (c *Checker) openReview(ctx context.Context, groupID string, finding Finding, cand candidate) error {
	review, err := c.client.ContradictionReview.Create().
		SetID(uuid.New().String()).
		SetNewFact(finding.Fact).
		SetExistingFactUUID(cand.existing.UUID).
		SetExistingFact(cand.existing.Fact).
		SetSimilarity(cand.existing.Score).
		SetReason(cand.reason).
		SetSource(finding.Source).
		SetContext(finding.Context).
		SetEntityNames(finding.EntityNames).
		SetGroupID(groupID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create contradiction review: %w", err)
	}

	_ = c.sink.Emit(ctx, events.KindContradictionDetected, map[string]any{
		"review_id":     review.ID,
		"user_id":       groupID,
		"new_fact":      finding.Fact,
		"existing_fact": cand.existing.Fact,
		"similarity":    cand.existing.Score,
	})
	return nil
}

func (c *Checker) commitFact(ctx context.Context, groupID string, finding Finding) error {
	_, err := c.graph.AddFact(ctx, graph.AddFactInput{
		Fact:    finding.Fact,
		GroupID: groupID,
		Source:  finding.Source,
		Attributes: map[string]interface{}{
			"entity_names": finding.EntityNames,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to add fact: %w", err)
	}

	_ = c.sink.Emit(ctx, events.KindFactAdded, map[string]any{
		"user_id": groupID,
		"fact":    finding.Fact,
	})
	return nil
}

// ResolveReview applies a human (or LLM) verdict to a pending review
// and commits the contested fact when the verdict accepts it.
func (c *Checker) ResolveReview(ctx context.Context, reviewID string, resolution services.ReviewResolution) (*ent.ContradictionReview, error) {
	review, err := c.reviews.Resolve(ctx, reviewID, resolution)
	if err != nil {
		return nil, err
	}

	if services.CommitsFact(resolution.Status) {
		err := c.commitFact(ctx, review.GroupID, Finding{
			Fact:        review.NewFact,
			EntityNames: review.EntityNames,
			Source:      review.Source,
			Context:     review.Context,
		})
		if err != nil {
			slog.Warn("Failed to commit fact after review resolution",
				"review_id", review.ID, "error", err)
		}
	}

	_ = c.sink.Emit(ctx, events.KindReviewResolved, map[string]any{
		"review_id": review.ID,
		"user_id":   review.GroupID,
		"status":    string(review.Status),
	})
	return review, nil
}
