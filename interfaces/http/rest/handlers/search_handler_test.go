package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/OKNG/wikipedia-solver/application/ports"
	"github.com/OKNG/wikipedia-solver/application/search"
	"github.com/OKNG/wikipedia-solver/pkg/observability"
)

type envelope struct {
	Success bool           `json:"success"`
	Data    SearchResponse `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestHandler(t *testing.T, graph map[string][]string, deadline time.Duration) *SearchHandler {
	t.Helper()
	source := ports.LinkSourceFunc(func(ctx context.Context, title string) []string {
		if graph == nil {
			<-ctx.Done()
			return []string{}
		}
		return graph[title]
	})
	orchestrator := search.NewOrchestrator(
		source,
		search.Config{MaxDepth: 2, BatchSize: 5, Deadline: deadline},
		observability.NewMetrics(prometheus.NewRegistry()),
		zaptest.NewLogger(t),
	)
	return NewSearchHandler(orchestrator, zaptest.NewLogger(t))
}

func doSearch(t *testing.T, h *SearchHandler, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	var env envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return rec, env
}

func TestSearchHandlerFound(t *testing.T) {
	h := newTestHandler(t, map[string][]string{
		"Jazz":        {"Miles Davis"},
		"Miles Davis": {},
	}, 15*time.Second)

	rec, env := doSearch(t, h, `{"start": "Jazz", "end": "Miles Davis"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, []string{"Jazz", "Miles Davis"}, env.Data.Path)
	assert.Equal(t, 1, env.Data.Degrees)
	assert.Empty(t, env.Data.Message)
}

func TestSearchHandlerNoPath(t *testing.T) {
	h := newTestHandler(t, map[string][]string{}, 15*time.Second)

	rec, env := doSearch(t, h, `{"start": "X", "end": "Y"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Empty(t, env.Data.Path)
	assert.Equal(t, search.NoPathMessage, env.Data.Message)
}

func TestSearchHandlerMissingEndpoint(t *testing.T) {
	h := newTestHandler(t, map[string][]string{}, 15*time.Second)

	rec, env := doSearch(t, h, `{"start": "Jazz"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION", env.Error.Code)
	assert.Contains(t, env.Error.Message, "end")
}

func TestSearchHandlerMalformedBody(t *testing.T) {
	h := newTestHandler(t, map[string][]string{}, 15*time.Second)

	rec, env := doSearch(t, h, `{"start": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION", env.Error.Code)
}

func TestSearchHandlerUnknownFieldRejected(t *testing.T) {
	h := newTestHandler(t, map[string][]string{}, 15*time.Second)

	rec, _ := doSearch(t, h, `{"start": "A", "end": "B", "depth": 9}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchHandlerTimeout(t *testing.T) {
	h := newTestHandler(t, nil, 100*time.Millisecond) // nil graph hangs until ctx

	rec, env := doSearch(t, h, `{"start": "A", "end": "B"}`)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "TIMEOUT", env.Error.Code)
}

func TestSearchHandlerZeroHop(t *testing.T) {
	h := newTestHandler(t, map[string][]string{}, 15*time.Second)

	rec, env := doSearch(t, h, `{"start": "Jazz", "end": "jazz"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Jazz"}, env.Data.Path)
	assert.Equal(t, 0, env.Data.Degrees)
}
