package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/contradictionreview"
)

// ReviewResolution is the outcome applied to a pending review.
type ReviewResolution struct {
	Status     string
	Resolution string
	Resolver   string
}

// ReviewService manages contradiction reviews. Reviews are created by
// the integration pipeline; resolution is a human (or agent) decision.
type ReviewService struct {
	client *ent.Client
}

// NewReviewService creates a new ReviewService
func NewReviewService(client *ent.Client) *ReviewService {
	return &ReviewService{client: client}
}

// Pending returns pending reviews, oldest first.
func (s *ReviewService) Pending(ctx context.Context, limit int) ([]*ent.ContradictionReview, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	reviews, err := s.client.ContradictionReview.Query().
		Where(contradictionreview.StatusEQ(contradictionreview.StatusPending)).
		Order(ent.Asc(contradictionreview.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reviews: %w", err)
	}
	return reviews, nil
}

// Get returns a review by id.
func (s *ReviewService) Get(ctx context.Context, reviewID string) (*ent.ContradictionReview, error) {
	found, err := s.client.ContradictionReview.Get(ctx, reviewID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return found, nil
}

// Resolve applies a terminal status to a pending review. Resolving a
// review that is no longer pending fails with ErrPreconditionFailed.
// The caller commits the new fact to the graph when the resolution
// calls for it (accepted_new, kept_both).
func (s *ReviewService) Resolve(ctx context.Context, reviewID string, res ReviewResolution) (*ent.ContradictionReview, error) {
	status := contradictionreview.Status(res.Status)
	switch status {
	case contradictionreview.StatusAcceptedNew, contradictionreview.StatusKeptOld,
		contradictionreview.StatusKeptBoth, contradictionreview.StatusDismissed:
	default:
		return nil, NewValidationError("status", "must be accepted_new, kept_old, kept_both, or dismissed")
	}

	found, err := s.Get(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if found.Status != contradictionreview.StatusPending {
		return nil, fmt.Errorf("review %s is %s: %w", reviewID, found.Status, ErrPreconditionFailed)
	}

	// Guard against a concurrent resolver: the update only applies
	// while the row is still pending.
	n, err := s.client.ContradictionReview.Update().
		Where(
			contradictionreview.IDEQ(reviewID),
			contradictionreview.StatusEQ(contradictionreview.StatusPending),
		).
		SetStatus(status).
		SetResolution(res.Resolution).
		SetResolver(res.Resolver).
		SetResolvedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve review: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("review %s was resolved concurrently: %w", reviewID, ErrPreconditionFailed)
	}
	return s.Get(ctx, reviewID)
}

// CommitsFact reports whether the resolution status means the new fact
// should be written to the graph.
func CommitsFact(status string) bool {
	switch contradictionreview.Status(status) {
	case contradictionreview.StatusAcceptedNew, contradictionreview.StatusKeptBoth:
		return true
	default:
		return false
	}
}
