package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/contradictionreview"
	"github.com/kestrel-ai/kestrel/pkg/graph"
	"github.com/kestrel-ai/kestrel/pkg/services"
	testdb "github.com/kestrel-ai/kestrel/test/database"
)

type recordSink struct {
	kinds []string
}

func (r *recordSink) Emit(_ context.Context, kind string, _ map[string]any) error {
	r.kinds = append(r.kinds, kind)
	return nil
}

func newChecker(t *testing.T, stub *graph.StubClient) (*Checker, *ent.Client, *recordSink) {
	t.Helper()
	client := testdb.NewTestClient(t)
	sink := &recordSink{}
	checker := NewChecker(client.Client, stub, services.NewReviewService(client.Client), sink)
	return checker, client.Client, sink
}

func TestIntegrate_ContradictionRouting(t *testing.T) {
	stub := graph.NewStubClient()
	stub.SeedNode(graph.EntityNode{UUID: "node-paris", Name: "Paris"})
	stub.SeedFact(graph.FactNode{UUID: "fact-1", Fact: "Paris is the capital of France.", Score: 0.82})
	checker, client, sink := newChecker(t, stub)
	ctx := context.Background()

	result, err := checker.Integrate(ctx, "brady", []Finding{
		{Fact: "Paris is the capital of Germany.", EntityNames: []string{"Paris"}},
	})
	require.NoError(t, err)
	assert.Equal(t, Result{Added: 0, Queued: 1, Skipped: 0}, result)

	reviews, err := client.ContradictionReview.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	review := reviews[0]
	assert.Equal(t, contradictionreview.StatusPending, review.Status)
	assert.Equal(t, "Paris is the capital of Germany.", review.NewFact)
	assert.Equal(t, "Paris is the capital of France.", review.ExistingFact)
	assert.Equal(t, 0.82, review.Similarity)

	assert.Equal(t, []string{"integration:contradiction_detected"}, sink.kinds)
	assert.Empty(t, stub.AddedFacts())
}

func TestIntegrate_CleanFactIsAdded(t *testing.T) {
	stub := graph.NewStubClient() // FactScore 0.5, below the band
	stub.SeedNode(graph.EntityNode{UUID: "node-go", Name: "Go"})
	stub.SeedFact(graph.FactNode{UUID: "fact-1", Fact: "Go ships a garbage collector."})
	checker, client, sink := newChecker(t, stub)
	ctx := context.Background()

	result, err := checker.Integrate(ctx, "brady", []Finding{
		{Fact: "Go 1.25 adds a green tea garbage collector.", EntityNames: []string{"Go"}},
	})
	require.NoError(t, err)
	assert.Equal(t, Result{Added: 1, Queued: 0, Skipped: 0}, result)

	added := stub.AddedFacts()
	require.Len(t, added, 1)
	assert.Equal(t, "Go 1.25 adds a green tea garbage collector.", added[0].Fact)
	assert.Equal(t, []string{"integration:fact_added"}, sink.kinds)

	count, err := client.ContradictionReview.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestIntegrate_DuplicateIsSkipped(t *testing.T) {
	stub := graph.NewStubClient()
	stub.SeedFact(graph.FactNode{UUID: "fact-1", Fact: "Paris is the capital of France.", Score: 0.97})
	checker, client, _ := newChecker(t, stub)
	ctx := context.Background()

	result, err := checker.Integrate(ctx, "brady", []Finding{
		{Fact: "Paris is the capital of France."},
	})
	require.NoError(t, err)
	assert.Equal(t, Result{Added: 0, Queued: 0, Skipped: 1}, result)
	assert.Empty(t, stub.AddedFacts())

	count, err := client.ContradictionReview.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestIntegrate_BandEdgesAreInclusive(t *testing.T) {
	for _, similarity := range []float64{0.70, 0.95} {
		stub := graph.NewStubClient()
		stub.SeedFact(graph.FactNode{UUID: "fact-1", Fact: "Paris is the capital of France.", Score: similarity})
		checker, _, _ := newChecker(t, stub)

		result, err := checker.Integrate(context.Background(), "brady", []Finding{
			{Fact: "Paris is the capital of Germany."},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Queued, "similarity %v should queue", similarity)
	}
}

func TestIntegrate_GraphFailureSkips(t *testing.T) {
	stub := graph.NewStubClient()
	stub.Unavailable = true
	checker, _, _ := newChecker(t, stub)

	result, err := checker.Integrate(context.Background(), "brady", []Finding{
		{Fact: "Paris is the capital of Germany."},
		{Fact: ""},
	})
	require.NoError(t, err)
	assert.Equal(t, Result{Added: 0, Queued: 0, Skipped: 2}, result)
}

func TestResolveReview(t *testing.T) {
	t.Run("accepted_new commits the fact", func(t *testing.T) {
		stub := graph.NewStubClient()
		stub.SeedFact(graph.FactNode{UUID: "fact-1", Fact: "Paris is the capital of France.", Score: 0.82})
		checker, client, sink := newChecker(t, stub)
		ctx := context.Background()

		_, err := checker.Integrate(ctx, "brady", []Finding{
			{Fact: "Paris is the capital of Germany.", EntityNames: []string{"Paris"}},
		})
		require.NoError(t, err)
		review, err := client.ContradictionReview.Query().Only(ctx)
		require.NoError(t, err)

		resolved, err := checker.ResolveReview(ctx, review.ID, services.ReviewResolution{
			Status:     "accepted_new",
			Resolution: "new fact verified",
			Resolver:   "brady",
		})
		require.NoError(t, err)
		assert.Equal(t, contradictionreview.StatusAcceptedNew, resolved.Status)

		added := stub.AddedFacts()
		require.Len(t, added, 1)
		assert.Equal(t, "Paris is the capital of Germany.", added[0].Fact)
		assert.Contains(t, sink.kinds, "integration:review_resolved")
	})

	t.Run("kept_old commits nothing", func(t *testing.T) {
		stub := graph.NewStubClient()
		stub.SeedFact(graph.FactNode{UUID: "fact-1", Fact: "Paris is the capital of France.", Score: 0.82})
		checker, client, _ := newChecker(t, stub)
		ctx := context.Background()

		_, err := checker.Integrate(ctx, "brady", []Finding{
			{Fact: "Paris is the capital of Germany."},
		})
		require.NoError(t, err)
		review, err := client.ContradictionReview.Query().Only(ctx)
		require.NoError(t, err)

		_, err = checker.ResolveReview(ctx, review.ID, services.ReviewResolution{Status: "kept_old"})
		require.NoError(t, err)
		assert.Empty(t, stub.AddedFacts())
	})
}
