package search

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/OKNG/wikipedia-solver/domain/wiki"
	apperrors "github.com/OKNG/wikipedia-solver/pkg/errors"
	"github.com/OKNG/wikipedia-solver/pkg/observability"
)

func newTestOrchestrator(t *testing.T, src *stubSource, cfg Config) *Orchestrator {
	t.Helper()
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = 2
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 5
	}
	if cfg.Deadline == 0 {
		cfg.Deadline = 15 * time.Second
	}
	return NewOrchestrator(src, cfg, observability.NewMetrics(prometheus.NewRegistry()), zaptest.NewLogger(t))
}

func TestSearchSameArticleZeroHop(t *testing.T) {
	src := newStubSource(map[string][]string{})
	o := newTestOrchestrator(t, src, Config{})

	result, err := o.Search(context.Background(), "Miles Davis", "  miles DAVIS ")
	require.NoError(t, err)

	assert.Equal(t, StatusFound, result.Status)
	assert.Equal(t, []string{"Miles Davis"}, result.Path)
	assert.Empty(t, src.calls, "zero-hop searches must not fetch anything")
}

func TestSearchValidation(t *testing.T) {
	o := newTestOrchestrator(t, newStubSource(nil), Config{})

	for _, tc := range []struct{ start, end string }{
		{"", "Jazz"},
		{"Jazz", ""},
		{"   ", "Jazz"},
	} {
		_, err := o.Search(context.Background(), tc.start, tc.end)
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	}
}

func TestSearchDirectLink(t *testing.T) {
	src := newStubSource(map[string][]string{
		"A": {"B", "D"},
		"D": {},
	})
	o := newTestOrchestrator(t, src, Config{})

	result, err := o.Search(context.Background(), "A", "D")
	require.NoError(t, err)

	assert.Equal(t, StatusFound, result.Status)
	assert.Equal(t, []string{"A", "D"}, result.Path)
}

func TestSearchDiamondGraph(t *testing.T) {
	// A -> {B, C}, B -> D, C -> D, with symmetric links for the backward
	// direction. Either two-hop path is acceptable; the tie-break between
	// the routes through B and C is deliberately not deterministic.
	src := newStubSource(map[string][]string{
		"A": {"B", "C"},
		"B": {"A", "D"},
		"C": {"A", "D"},
		"D": {"B", "C"},
	})
	o := newTestOrchestrator(t, src, Config{})

	result, err := o.Search(context.Background(), "A", "D")
	require.NoError(t, err)

	require.Equal(t, StatusFound, result.Status)
	require.Len(t, result.Path, 3)
	assert.Equal(t, "A", result.Path[0])
	assert.Contains(t, []string{"B", "C"}, result.Path[1])
	assert.Equal(t, "D", result.Path[2])
}

func TestSearchMeetingIsCaseInsensitive(t *testing.T) {
	src := newStubSource(map[string][]string{
		"A": {"new york city"},
	})
	o := newTestOrchestrator(t, src, Config{})

	result, err := o.Search(context.Background(), "A", "New York City")
	require.NoError(t, err)

	require.Equal(t, StatusFound, result.Status)
	require.Len(t, result.Path, 2)
	assert.True(t, wiki.SameArticle(result.Path[1], "New York City"))
}

func TestSearchExhaustedWhenSourceIsEmpty(t *testing.T) {
	src := newStubSource(map[string][]string{})
	o := newTestOrchestrator(t, src, Config{})

	result, err := o.Search(context.Background(), "X", "Y")
	require.NoError(t, err)

	assert.Equal(t, StatusExhausted, result.Status)
	assert.Empty(t, result.Path)
	assert.Equal(t, NoPathMessage, result.Message)
}

func TestSearchExhaustedAtDepthBudget(t *testing.T) {
	// Two disjoint triangles; no path exists, both sides burn their full
	// depth budget before giving up.
	src := newStubSource(map[string][]string{
		"A": {"B", "C"}, "B": {"A", "C"}, "C": {"A", "B"},
		"X": {"Y", "Z"}, "Y": {"X", "Z"}, "Z": {"X", "Y"},
	})
	o := newTestOrchestrator(t, src, Config{MaxDepth: 2})

	result, err := o.Search(context.Background(), "A", "X")
	require.NoError(t, err)

	assert.Equal(t, StatusExhausted, result.Status)
	assert.Empty(t, result.Path)
	assert.NotEmpty(t, result.Message)
}

func TestSearchFetchesEachArticleOncePerDirection(t *testing.T) {
	src := newStubSource(map[string][]string{
		"A": {"B", "C"}, "B": {"A", "C"}, "C": {"A", "B"},
		"X": {"Y", "Z"}, "Y": {"X", "Z"}, "Z": {"X", "Y"},
	})
	o := newTestOrchestrator(t, src, Config{MaxDepth: 2})

	_, err := o.Search(context.Background(), "A", "X")
	require.NoError(t, err)

	// The two components never overlap, so each title belongs to exactly
	// one direction and must have been fetched exactly once.
	for _, title := range []string{"A", "B", "C", "X", "Y", "Z"} {
		assert.Equal(t, 1, src.callCount(title), "title %s", title)
	}
}

func TestSearchTimesOutOnHangingSource(t *testing.T) {
	src := newStubSource(map[string][]string{})
	src.blockUntilCtx = true
	o := newTestOrchestrator(t, src, Config{Deadline: 100 * time.Millisecond})

	began := time.Now()
	_, err := o.Search(context.Background(), "A", "B")
	took := time.Since(began)

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeTimeout),
		"a budget overrun must be a timeout, not exhaustion")
	assert.Less(t, took, 5*time.Second, "the hanging fetch must be abandoned, not awaited")
}

func TestSearchHonorsCallerContext(t *testing.T) {
	src := newStubSource(map[string][]string{})
	src.blockUntilCtx = true
	o := newTestOrchestrator(t, src, Config{Deadline: time.Minute})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := o.Search(ctx, "A", "B")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeTimeout))
}
