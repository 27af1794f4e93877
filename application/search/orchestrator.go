// Package search implements the bidirectional frontier-expansion path
// search over the Wikipedia link graph. Two breadth-first frontiers grow in
// lockstep rounds, one rooted at the start article and one at the end, until
// they meet, exhaust their depth budget, or run out of time.
package search

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/OKNG/wikipedia-solver/application/ports"
	"github.com/OKNG/wikipedia-solver/domain/wiki"
	apperrors "github.com/OKNG/wikipedia-solver/pkg/errors"
	"github.com/OKNG/wikipedia-solver/pkg/observability"
)

// NoPathMessage is the client-visible message for a legitimate negative
// result, as opposed to a timeout or an error.
const NoPathMessage = "No path found"

// Status is the terminal state of a search
type Status string

const (
	StatusFound     Status = "found"
	StatusExhausted Status = "exhausted"
)

// Result is the outcome of a completed (non-error) search
type Result struct {
	Status  Status
	Path    []string // start to end inclusive; empty when exhausted
	Message string   // non-empty exactly when exhausted
}

// Config bounds a single search run
type Config struct {
	MaxDepth  int           // expansion depth per direction
	BatchSize int           // concurrent link fetches per batch
	Deadline  time.Duration // global wall-clock budget
}

// Orchestrator drives the two frontier expansion engines. It is stateless
// across searches; all per-search state lives in the two direction values
// created per Search call.
type Orchestrator struct {
	source  ports.LinkSource
	cfg     Config
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewOrchestrator creates a search orchestrator
func NewOrchestrator(source ports.LinkSource, cfg Config, metrics *observability.Metrics, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		source:  source,
		cfg:     cfg,
		metrics: metrics,
		logger:  logger,
	}
}

// Search finds a link path from start to end. It returns a Result for the
// found and exhausted outcomes, a TIMEOUT AppError when the deadline elapses
// first, and a VALIDATION AppError for blank endpoints. In-flight link
// fetches are abandoned on timeout, never awaited.
func (o *Orchestrator) Search(ctx context.Context, start, end string) (*Result, error) {
	began := time.Now()

	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if start == "" || end == "" {
		o.metrics.ObserveSearch("error", time.Since(began).Seconds())
		return nil, apperrors.NewValidationError("both start and end articles are required")
	}

	// Zero-hop: the two endpoints name the same article. Resolved before
	// any expansion, so no fetches happen.
	if wiki.SameArticle(start, end) {
		o.metrics.ObserveSearch(string(StatusFound), time.Since(began).Seconds())
		return &Result{Status: StatusFound, Path: []string{start}}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, o.cfg.Deadline)
	defer cancel()

	results := make(chan *Result, 1)
	go func() {
		results <- o.run(ctx, start, end)
	}()

	select {
	case result := <-results:
		// run reports nil when it noticed the cancellation itself.
		if result != nil {
			o.metrics.ObserveSearch(string(result.Status), time.Since(began).Seconds())
			o.logger.Info("Search finished",
				zap.String("start", start),
				zap.String("end", end),
				zap.String("status", string(result.Status)),
				zap.Int("pathLength", len(result.Path)),
				zap.Duration("took", time.Since(began)),
			)
			return result, nil
		}
	case <-ctx.Done():
	}

	o.metrics.ObserveSearch("timeout", time.Since(began).Seconds())
	o.logger.Warn("Search timed out",
		zap.String("start", start),
		zap.String("end", end),
		zap.Duration("deadline", o.cfg.Deadline),
	)
	return nil, apperrors.NewTimeoutError("search did not finish within the deadline")
}

// run executes expansion rounds until a meeting, exhaustion, or ctx expiry.
// Both directions expand concurrently within a round; neither blocks on the
// other's completion to start.
func (o *Orchestrator) run(ctx context.Context, start, end string) *Result {
	forward := newDirection("forward", start)
	backward := newDirection("backward", end)

	forwardEngine := &expander{source: o.source, batchSize: o.cfg.BatchSize, maxDepth: o.cfg.MaxDepth, forward: true}
	backwardEngine := &expander{source: o.source, batchSize: o.cfg.BatchSize, maxDepth: o.cfg.MaxDepth}

	round := 0
	for canAdvance(forward, o.cfg.MaxDepth) && canAdvance(backward, o.cfg.MaxDepth) {
		select {
		case <-ctx.Done():
			return nil // outer select already reported the timeout
		default:
		}

		round++
		var forwardPath, backwardPath []string
		var forwardMet, backwardMet bool

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			forwardPath, forwardMet = forwardEngine.expandRound(gctx, forward, backward)
			return nil
		})
		g.Go(func() error {
			backwardPath, backwardMet = backwardEngine.expandRound(gctx, backward, forward)
			return nil
		})
		g.Wait()

		o.logger.Debug("Expansion round complete",
			zap.Int("round", round),
			zap.Int("forwardFrontier", len(forward.queue)),
			zap.Int("backwardFrontier", len(backward.queue)),
			zap.Int("forwardVisited", forward.visited.len()),
			zap.Int("backwardVisited", backward.visited.len()),
		)

		// Both directions can meet in the same round via different links;
		// whichever resolved is taken, forward first. Neither is guaranteed
		// to be the globally shortest path.
		if forwardMet {
			return &Result{Status: StatusFound, Path: forwardPath}
		}
		if backwardMet {
			return &Result{Status: StatusFound, Path: backwardPath}
		}
	}

	return &Result{Status: StatusExhausted, Path: []string{}, Message: NoPathMessage}
}

// canAdvance reports whether a direction still has frontier items it is
// allowed to expand under the depth budget.
func canAdvance(d *direction, maxDepth int) bool {
	return len(d.queue) > 0 && d.queue[0].depth < maxDepth
}
