package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/contextcache"
	"github.com/kestrel-ai/kestrel/pkg/config"
	"github.com/kestrel-ai/kestrel/pkg/emotion"
	"github.com/kestrel-ai/kestrel/pkg/graph"
	"github.com/kestrel-ai/kestrel/pkg/ingest"
	"github.com/kestrel-ai/kestrel/pkg/integration"
	"github.com/kestrel-ai/kestrel/pkg/queue"
	"github.com/kestrel-ai/kestrel/pkg/services"
	testdb "github.com/kestrel-ai/kestrel/test/database"
)

type apiHarness struct {
	e     *echo.Echo
	graph *graph.StubClient
	deps  Deps
}

func newAPIHarness(t *testing.T) *apiHarness {
	t.Helper()

	db := testdb.NewTestClient(t)
	client := db.Client

	graphStub := graph.NewStubClient()
	defaults := &config.Defaults{UserID: "brady", NotificationMethod: "daemon"}

	sessions := services.NewSessionService(client)
	state := services.NewStateService(client)
	reviews := services.NewReviewService(client)
	queueService := queue.NewService(client, config.DefaultQueueConfig(), nil)

	ingestor := ingest.NewIngestor(client, sessions, state, nil, nil, graphStub, nil, defaults)
	t.Cleanup(ingestor.Close)

	deps := Deps{
		Client:        db,
		Ingestor:      ingestor,
		Sessions:      sessions,
		Memory:        services.NewMemoryService(client),
		Missions:      services.NewMissionService(client),
		Notifications: services.NewNotificationService(client),
		Presence:      services.NewPresenceService(client),
		Findings:      services.NewFindingService(client),
		Reviews:       reviews,
		State:         state,
		ContextCache:  services.NewContextService(client),
		Checker:       integration.NewChecker(client, graphStub, reviews, nil),
		Queue:         queueService,
		Graph:         graphStub,
		Emotion:       emotion.NewBuffer(),
		Defaults:      defaults,
	}

	e := echo.New()
	NewServer(deps).RegisterRoutes(e)

	return &apiHarness{e: e, graph: graphStub, deps: deps}
}

func (h *apiHarness) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	h.e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(t, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "healthy", resp.Checks["database"].Status)
}

func TestStatusEndpoint(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(t, http.MethodPost, "/status/get", map[string]any{})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "running", body["daemon"])
	assert.Equal(t, true, body["graph_available"])
	assert.Contains(t, body, "queue")
}

func TestSessionLifecycle(t *testing.T) {
	h := newAPIHarness(t)

	create := map[string]any{"session_id": "sess-1", "medium": "cli", "user_id": "brady"}

	rec := h.do(t, http.MethodPost, "/sessions/create", create)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = h.do(t, http.MethodPost, "/sessions/create", create)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = h.do(t, http.MethodPost, "/sessions/find_or_create", create)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "sess-1", body["id"])

	rec = h.do(t, http.MethodPost, "/sessions/sess-1/message", map[string]any{"role": "user", "text": "hello there"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodGet, "/sessions/sess-1/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Len(t, body["messages"], 1)

	rec = h.do(t, http.MethodPost, "/sessions/sess-1/end", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodGet, "/sessions?active=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Empty(t, body["sessions"])
}

func TestCaptureEndpoint(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(t, http.MethodPost, "/conversation/capture", map[string]any{
		"session_id": "sess-cap",
		"prompt":     "remind me to water the plants",
		"medium":     "cli",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "stored", body["status"])
	assert.NotEmpty(t, body["conversation_id"])

	rec = h.do(t, http.MethodGet, "/sessions/sess-cap/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Len(t, body["messages"], 1)
}

func TestContextBuildAndGet(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(t, http.MethodPost, "/memory/core/edit", map[string]any{
		"block_type": "human",
		"content":    "Brady prefers terse answers.",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodPost, "/context/build", map[string]any{"session_id": "sess-ctx"})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Contains(t, body["context"], "## human")
	assert.Contains(t, body["context"], "Brady prefers terse answers.")

	rec = h.do(t, http.MethodPost, "/context/get", map[string]any{"session_id": "sess-ctx", "max_age_minutes": 10})
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, true, body["found"])
	assert.Contains(t, body["context"], "Brady prefers terse answers.")

	rec = h.do(t, http.MethodPost, "/context/get", map[string]any{"session_id": "sess-unknown"})
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, false, body["found"])
}

func TestContextGetDefaultsStalenessBound(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(t, http.MethodPost, "/context/build", map[string]any{"session_id": "sess-stale"})
	require.Equal(t, http.StatusOK, rec.Code)

	// Age the cache entry past the default 30 minute freshness bound.
	_, err := h.deps.Client.ContextCache.Update().
		Where(contextcache.SessionIDEQ("sess-stale")).
		SetUpdatedAt(time.Now().Add(-time.Hour)).
		Save(context.Background())
	require.NoError(t, err)

	rec = h.do(t, http.MethodPost, "/context/get", map[string]any{"session_id": "sess-stale"})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["found"])

	rec = h.do(t, http.MethodPost, "/context/get", map[string]any{"session_id": "sess-stale", "max_age_minutes": 120})
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, true, body["found"])
}

func TestContextBuildDegradesWhenGraphIsDown(t *testing.T) {
	h := newAPIHarness(t)
	h.graph.Unavailable = true

	rec := h.do(t, http.MethodPost, "/context/build", map[string]any{
		"session_id":     "sess-deg",
		"current_prompt": "what was I doing",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "unavailable", body["status"])
	assert.Equal(t, "", body["context"])
}

func TestSessionStartEndpoint(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(t, http.MethodPost, "/context/build_session_start", map[string]any{
		"session_id": "sess-start",
		"medium":     "discord",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "conversational", body["session_type"])

	rec = h.do(t, http.MethodGet, "/sessions?user_id=brady", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Len(t, body["sessions"], 1)
}

func TestMemoryHistoryAndRollback(t *testing.T) {
	h := newAPIHarness(t)

	for _, content := range []string{"first draft", "second draft"} {
		rec := h.do(t, http.MethodPost, "/memory/core/edit", map[string]any{
			"block_type": "task",
			"content":    content,
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := h.do(t, http.MethodGet, "/memory/core/history?block_type=task", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["versions"], 2)

	rec = h.do(t, http.MethodPost, "/memory/core/rollback", map[string]any{
		"block_type":     "task",
		"target_version": 1,
		"reason":         "second draft was wrong",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, "first draft", body["content"])

	rec = h.do(t, http.MethodPost, "/memory/core/rollback", map[string]any{
		"block_type":     "task",
		"target_version": 99,
	})
	assert.Equal(t, http.StatusPreconditionFailed, rec.Code)
}

func TestMissionLifecycle(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(t, http.MethodPost, "/missions", map[string]any{
		"name":   "morning-briefing",
		"prompt": "summarize overnight activity",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)
	missionID, _ := created["id"].(string)
	require.NotEmpty(t, missionID)

	rec = h.do(t, http.MethodGet, "/missions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["missions"], 1)

	rec = h.do(t, http.MethodPatch, "/missions/"+missionID, map[string]any{"name": "evening-briefing"})
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, "evening-briefing", body["name"])

	rec = h.do(t, http.MethodPost, "/missions/"+missionID+"/archive", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, "archived", body["status"])

	rec = h.do(t, http.MethodGet, "/missions/"+missionID+"/executions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Empty(t, body["executions"])

	rec = h.do(t, http.MethodGet, "/missions/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNotificationFlow(t *testing.T) {
	h := newAPIHarness(t)

	created, err := h.deps.Notifications.Create(context.Background(), services.CreateNotificationInput{
		UserID:       "brady",
		Message:      "heads up: the backup job failed",
		TargetMedium: "discord",
	})
	require.NoError(t, err)

	rec := h.do(t, http.MethodPost, "/notifications/recent_unacknowledged", map[string]any{})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["notifications"], 1)

	rec = h.do(t, http.MethodPost, "/notifications/"+created.ID+"/delivered", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodPost, "/notifications/"+created.ID+"/acknowledge", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodPost, "/notifications/recent_unacknowledged", map[string]any{})
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Empty(t, body["notifications"])
}

func TestHeartbeatEndpoint(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(t, http.MethodPost, "/presence/heartbeat", map[string]any{
		"medium": "discord",
		"channels": []map[string]any{
			{"kind": "dm", "id": "dm-1"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	online, err := h.deps.Presence.Online(context.Background(), "brady")
	require.NoError(t, err)
	assert.Len(t, online, 1)
}

func TestRecallSearch(t *testing.T) {
	h := newAPIHarness(t)
	h.graph.SeedFact(graph.FactNode{UUID: "f1", Fact: "Brady plays guitar", CreatedAt: time.Now()})

	rec := h.do(t, http.MethodGet, "/recall/search?q=guitar", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["facts"], 1)

	h.graph.Unavailable = true
	rec = h.do(t, http.MethodGet, "/recall/search?q=guitar", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, true, body["degraded"])
	assert.Empty(t, body["facts"])
}

func TestHybridSearchPropagatesGraphOutage(t *testing.T) {
	h := newAPIHarness(t)
	h.graph.Unavailable = true

	rec := h.do(t, http.MethodPost, "/search/hybrid", map[string]any{"query": "guitar"})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestKgEntities(t *testing.T) {
	h := newAPIHarness(t)
	h.graph.SeedNode(graph.EntityNode{UUID: "n1", Name: "Guitar"})

	rec := h.do(t, http.MethodGet, "/kg/entities?q=guitar", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["entities"], 1)
}

func TestEmotionSummary(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(t, http.MethodGet, "/emotion/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 0, body["sample_count"])

	require.NoError(t, h.deps.Emotion.Execute(context.Background(), &ent.QueueTask{
		Content: "this is AMAZING, I love it!!!",
	}))

	rec = h.do(t, http.MethodGet, "/emotion/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.EqualValues(t, 1, body["sample_count"])
}

func TestPendingReviewsEmpty(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(t, http.MethodGet, "/reviews/pending", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Empty(t, body["reviews"])
}

func TestSecurityHeaders(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
