package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/contradictionreview"
	testdb "github.com/kestrel-ai/kestrel/test/database"
)

func seedReview(t *testing.T, client *ent.Client) *ent.ContradictionReview {
	t.Helper()
	review, err := client.ContradictionReview.Create().
		SetID(uuid.New().String()).
		SetNewFact("Paris is the capital of Germany.").
		SetExistingFactUUID("fact-1").
		SetExistingFact("Paris is the capital of France.").
		SetSimilarity(0.82).
		SetEntityNames([]string{"Paris"}).
		Save(context.Background())
	require.NoError(t, err)
	return review
}

func TestReviewService_Resolve(t *testing.T) {
	client := testdb.NewTestClient(t)
	reviewService := NewReviewService(client.Client)
	ctx := context.Background()

	t.Run("resolves a pending review", func(t *testing.T) {
		review := seedReview(t, client.Client)

		resolved, err := reviewService.Resolve(ctx, review.ID, ReviewResolution{
			Status:     "kept_old",
			Resolution: "existing fact is correct",
			Resolver:   "brady",
		})
		require.NoError(t, err)
		assert.Equal(t, contradictionreview.StatusKeptOld, resolved.Status)
		assert.NotNil(t, resolved.ResolvedAt)
	})

	t.Run("resolving twice fails the precondition", func(t *testing.T) {
		review := seedReview(t, client.Client)

		_, err := reviewService.Resolve(ctx, review.ID, ReviewResolution{Status: "dismissed"})
		require.NoError(t, err)

		_, err = reviewService.Resolve(ctx, review.ID, ReviewResolution{Status: "accepted_new"})
		assert.ErrorIs(t, err, ErrPreconditionFailed)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		review := seedReview(t, client.Client)
		_, err := reviewService.Resolve(ctx, review.ID, ReviewResolution{Status: "maybe"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("missing review returns ErrNotFound", func(t *testing.T) {
		_, err := reviewService.Resolve(ctx, "nonexistent", ReviewResolution{Status: "dismissed"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestReviewService_Pending(t *testing.T) {
	client := testdb.NewTestClient(t)
	reviewService := NewReviewService(client.Client)
	ctx := context.Background()

	first := seedReview(t, client.Client)
	second := seedReview(t, client.Client)

	_, err := reviewService.Resolve(ctx, second.ID, ReviewResolution{Status: "kept_both"})
	require.NoError(t, err)

	pending, err := reviewService.Pending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].ID)
}

func TestCommitsFact(t *testing.T) {
	assert.True(t, CommitsFact("accepted_new"))
	assert.True(t, CommitsFact("kept_both"))
	assert.False(t, CommitsFact("kept_old"))
	assert.False(t, CommitsFact("dismissed"))
	assert.False(t, CommitsFact("pending"))
}
