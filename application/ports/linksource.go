// Package ports defines the interfaces the search core depends on.
// Implementations live in infrastructure; the core never imports them directly.
package ports

import "context"

// LinkSource provides the outbound hyperlinks of a Wikipedia article.
//
// FetchLinks never returns an error: any upstream failure is degraded to an
// empty slice so that one unreachable article cannot abort a whole search
// direction. Implementations log the failure and honor ctx cancellation.
type LinkSource interface {
	FetchLinks(ctx context.Context, title string) []string
}

// LinkCache memoizes LinkSource results per article title.
//
// Keys are the exact title string as fetched; case normalization is the
// caller's concern, so case variants of one article cache separately. Entries
// expire a fixed TTL after insertion and behave as absent afterwards.
// Implementations must be safe for concurrent use; last-write-wins on a
// racing Set for the same key is acceptable.
type LinkCache interface {
	Get(title string) ([]string, bool)
	Set(title string, links []string)
}

// LinkSourceFunc adapts a function to the LinkSource interface, mirroring
// http.HandlerFunc. Used by tests to build stub sources.
type LinkSourceFunc func(ctx context.Context, title string) []string

// FetchLinks implements LinkSource.
func (f LinkSourceFunc) FetchLinks(ctx context.Context, title string) []string {
	return f(ctx, title)
}
