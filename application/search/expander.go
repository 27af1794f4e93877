package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/OKNG/wikipedia-solver/application/ports"
	"github.com/OKNG/wikipedia-solver/domain/wiki"
)

// expander advances a single direction's frontier one depth level per round.
type expander struct {
	source    ports.LinkSource
	batchSize int
	maxDepth  int
	forward   bool // true when expanding from the start article
}

// expandRound dequeues every frontier item at the current depth, fetches
// their links in bounded-size concurrent batches, and either reports the
// complete start-to-end path on a meeting with the opposite direction or
// enqueues the newly discovered items at depth+1.
//
// First-found-wins: the first link seen in the opposite visited set ends the
// round immediately, remaining batches are skipped, and no shorter meeting
// at the same depth is waited for.
func (e *expander) expandRound(ctx context.Context, own, opposite *direction) ([]string, bool) {
	if len(own.queue) == 0 {
		return nil, false
	}
	depth := own.queue[0].depth
	if depth >= e.maxDepth {
		return nil, false
	}

	// Items at the current depth sit contiguously at the head of the queue;
	// anything deeper stays put for the next round.
	n := 0
	for n < len(own.queue) && own.queue[n].depth == depth {
		n++
	}
	current := own.queue[:n]
	own.queue = own.queue[n:]

	for from := 0; from < len(current); from += e.batchSize {
		to := from + e.batchSize
		if to > len(current) {
			to = len(current)
		}
		batch := current[from:to]

		links := make([][]string, len(batch))
		g, gctx := errgroup.WithContext(ctx)
		for i, item := range batch {
			i, item := i, item
			g.Go(func() error {
				links[i] = e.source.FetchLinks(gctx, item.article)
				return nil
			})
		}
		g.Wait()

		if path, found := e.absorb(batch, links, own, opposite, depth); found {
			return path, true
		}

		select {
		case <-ctx.Done():
			return nil, false
		default:
		}
	}

	return nil, false
}

// absorb processes one batch's fetched links: meeting check against the
// opposite direction first, then the own-visited gate before enqueueing.
func (e *expander) absorb(batch []frontierItem, links [][]string, own, opposite *direction, depth int) ([]string, bool) {
	for i, item := range batch {
		for _, link := range links[i] {
			key := wiki.Normalize(link)

			if oppositePath, met := opposite.visited.get(key); met {
				return e.composePath(item.path, oppositePath), true
			}

			path := appendPath(item.path, link)
			if own.visited.add(key, path) {
				own.queue = append(own.queue, frontierItem{
					article: link,
					path:    path,
					depth:   depth + 1,
				})
			}
		}
	}
	return nil, false
}

// composePath joins this direction's path-so-far (meeting link excluded)
// with the opposite direction's recorded path (meeting link included, rooted
// at its own end), producing a start-to-end path.
func (e *expander) composePath(ownPath, oppositePath []string) []string {
	if e.forward {
		return append(appendPath(ownPath), reversed(oppositePath)...)
	}
	return append(appendPath(oppositePath), reversed(ownPath)...)
}

// appendPath clones base and appends extra, so frontier items never share
// backing arrays.
func appendPath(base []string, extra ...string) []string {
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)
	return out
}
