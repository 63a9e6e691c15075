package graph

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-ai/kestrel/pkg/config"
)

func newTestClient(t *testing.T, handler http.Handler) *HTTPClient {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(&config.GraphConfig{
		BaseURL: srv.URL,
		GroupID: "test",
		Timeout: 5 * time.Second,
	})
}

func TestHTTPClient(t *testing.T) {
	ctx := context.Background()

	t.Run("add episode round trip", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/episodes", r.URL.Path)
			var ep Episode
			require.NoError(t, json.NewDecoder(r.Body).Decode(&ep))
			assert.Equal(t, "hello", ep.EpisodeBody)

			_ = json.NewEncoder(w).Encode(EpisodeResult{
				Nodes: []EntityNode{{UUID: "n1", Name: "Hello"}},
			})
		}))

		result, err := client.AddEpisode(ctx, Episode{EpisodeBody: "hello", GroupID: "test"})
		require.NoError(t, err)
		require.Len(t, result.Nodes, 1)
		assert.Equal(t, "n1", result.Nodes[0].UUID)
	})

	t.Run("hybrid fact search decodes scores", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/facts/search", r.URL.Path)
			_, _ = w.Write([]byte(`{"facts":[{"uuid":"f1","fact":"Paris is the capital of France.","score":0.82}]}`))
		}))

		facts, err := client.HybridFactSearch(ctx, "Paris", "test", 10)
		require.NoError(t, err)
		require.Len(t, facts, 1)
		assert.Equal(t, 0.82, facts[0].Score)
	})

	t.Run("server error surfaces body", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))

		_, err := client.SearchGraph(ctx, SearchQuery{Query: "x", GroupID: "test"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("unconfigured client is unavailable", func(t *testing.T) {
		client := NewHTTPClient(&config.GraphConfig{})
		assert.False(t, client.Available(ctx))

		_, err := client.AddFact(ctx, AddFactInput{Fact: "x", GroupID: "test"})
		require.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("available checks health endpoint", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/health", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		assert.True(t, client.Available(ctx))
	})
}
