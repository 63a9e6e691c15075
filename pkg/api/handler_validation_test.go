package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

// These tests only cover parameter validation (a 400 before any service
// is touched), so a zero-value Server is enough. Happy paths run against
// a real database in server_test.go.

func callHandler(t *testing.T, handler echo.HandlerFunc, method, target, body string) error {
	t.Helper()

	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return handler(c)
}

// serveRaw routes the request through a real echo instance so path
// params are bound; validation must reject it before any nil dep is hit.
func serveRaw(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	s.RegisterRoutes(e)
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func assertBadRequest(t *testing.T, err error, msg string) {
	t.Helper()

	if assert.Error(t, err) {
		he, ok := err.(*echo.HTTPError)
		if assert.True(t, ok, "expected echo.HTTPError") {
			assert.Equal(t, http.StatusBadRequest, he.Code)
			assert.Contains(t, he.Message, msg)
		}
	}
}

func TestContextHandlers_Validation(t *testing.T) {
	s := &Server{}

	t.Run("build requires session_id", func(t *testing.T) {
		err := callHandler(t, s.contextBuildHandler, http.MethodPost, "/context/build", `{}`)
		assertBadRequest(t, err, "session_id")
	})

	t.Run("get requires session_id", func(t *testing.T) {
		err := callHandler(t, s.contextGetHandler, http.MethodPost, "/context/get", `{}`)
		assertBadRequest(t, err, "session_id")
	})

	t.Run("session start requires session_id", func(t *testing.T) {
		err := callHandler(t, s.contextSessionStartHandler, http.MethodPost, "/context/build_session_start", `{}`)
		assertBadRequest(t, err, "session_id")
	})
}

func TestSessionHandlers_Validation(t *testing.T) {
	s := &Server{}

	t.Run("missing session id on end", func(t *testing.T) {
		err := callHandler(t, s.endSessionHandler, http.MethodPost, "/sessions//end", "")
		assertBadRequest(t, err, "session id")
	})

	t.Run("invalid history limit", func(t *testing.T) {
		rec := serveRaw(t, s, http.MethodGet, "/sessions/sess-1/history?limit=banana", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("message requires role and text", func(t *testing.T) {
		rec := serveRaw(t, s, http.MethodPost, "/sessions/sess-1/message", `{"role":"user"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMemoryHandlers_Validation(t *testing.T) {
	s := &Server{}

	t.Run("history requires block_type", func(t *testing.T) {
		err := callHandler(t, s.memoryHistoryHandler, http.MethodGet, "/memory/core/history", "")
		assertBadRequest(t, err, "block_type")
	})

	t.Run("rollback requires positive target_version", func(t *testing.T) {
		err := callHandler(t, s.memoryRollbackHandler, http.MethodPost, "/memory/core/rollback",
			`{"block_type":"task","target_version":0}`)
		assertBadRequest(t, err, "target_version")
	})
}

func TestRecallHandlers_Validation(t *testing.T) {
	s := &Server{}

	t.Run("search requires q", func(t *testing.T) {
		err := callHandler(t, s.recallSearchHandler, http.MethodGet, "/recall/search", "")
		assertBadRequest(t, err, "q is required")
	})

	t.Run("shareable requires session_id", func(t *testing.T) {
		err := callHandler(t, s.shareableFindingsHandler, http.MethodGet, "/recall/findings/shareable", "")
		assertBadRequest(t, err, "session_id")
	})

	t.Run("surface requires ids", func(t *testing.T) {
		err := callHandler(t, s.surfaceFindingHandler, http.MethodPost, "/recall/findings/surface", `{}`)
		assertBadRequest(t, err, "finding_id and session_id")
	})
}

func TestReviewHandlers_Validation(t *testing.T) {
	s := &Server{}

	t.Run("resolve requires status", func(t *testing.T) {
		rec := serveRaw(t, s, http.MethodPost, "/reviews/rev-1/resolve", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSearchHandlers_Validation(t *testing.T) {
	s := &Server{}

	t.Run("hybrid requires query", func(t *testing.T) {
		err := callHandler(t, s.hybridSearchHandler, http.MethodPost, "/search/hybrid", `{}`)
		assertBadRequest(t, err, "query")
	})

	t.Run("entities requires q", func(t *testing.T) {
		err := callHandler(t, s.kgEntitiesHandler, http.MethodGet, "/kg/entities", "")
		assertBadRequest(t, err, "q is required")
	})
}
