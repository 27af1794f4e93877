// Package wikipedia implements the LinkSource port against the MediaWiki
// Action API. It is the only place that knows about the upstream provider;
// the search core sees titles in, titles out.
package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/OKNG/wikipedia-solver/application/ports"
	"github.com/OKNG/wikipedia-solver/pkg/observability"
)

// Client fetches article links from the MediaWiki API, consulting the link
// cache first. Per-article failures never surface as errors: a bad or
// unreachable article degrades to "no discoverable links" so one dead node
// cannot abort a whole search direction.
type Client struct {
	httpClient *http.Client
	apiURL     string
	userAgent  string
	linkLimit  int
	cache      ports.LinkCache
	breaker    *gobreaker.CircuitBreaker
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// Options configures a Client
type Options struct {
	APIURL    string
	UserAgent string
	LinkLimit int
	Timeout   time.Duration
}

// NewClient creates a Wikipedia link-source client
func NewClient(opts Options, cache ports.LinkCache, metrics *observability.Metrics, logger *zap.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:     "wikipedia-api",
		Interval: 30 * time.Second,
		Timeout:  60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.8
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		apiURL:     opts.APIURL,
		userAgent:  opts.UserAgent,
		linkLimit:  opts.LinkLimit,
		cache:      cache,
		breaker:    breaker,
		metrics:    metrics,
		logger:     logger,
	}
}

// FetchLinks implements ports.LinkSource. The cache is keyed by the exact
// title as queried; a successful fetch is cached even when the article has
// no links, so dead ends are not refetched within the TTL.
func (c *Client) FetchLinks(ctx context.Context, title string) []string {
	if links, ok := c.cache.Get(title); ok {
		c.metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
		return links
	}
	c.metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.queryLinks(ctx, title)
	})
	if err != nil {
		c.metrics.LinkFetchesTotal.WithLabelValues("error").Inc()
		c.logger.Warn("Link fetch failed, treating article as having no links",
			zap.String("title", title),
			zap.Error(err),
		)
		return []string{}
	}

	links := result.([]string)
	c.metrics.LinkFetchesTotal.WithLabelValues("ok").Inc()
	c.cache.Set(title, links)
	return links
}

// linksResponse mirrors the subset of the MediaWiki query response we read
type linksResponse struct {
	Query struct {
		Pages map[string]struct {
			Title string `json:"title"`
			Links []struct {
				NS    int    `json:"ns"`
				Title string `json:"title"`
			} `json:"links"`
		} `json:"pages"`
	} `json:"query"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

func (c *Client) queryLinks(ctx context.Context, title string) ([]string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("prop", "links")
	params.Set("titles", title)
	params.Set("plnamespace", "0")
	params.Set("pllimit", strconv.Itoa(c.linkLimit))
	params.Set("redirects", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wikipedia request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wikipedia responded %d", resp.StatusCode)
	}

	var body linksResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if body.Error != nil {
		return nil, fmt.Errorf("wikipedia api error %s: %s", body.Error.Code, body.Error.Info)
	}

	links := make([]string, 0, c.linkLimit)
	for _, page := range body.Query.Pages {
		for _, link := range page.Links {
			if link.NS != 0 || link.Title == "" {
				continue
			}
			links = append(links, link.Title)
			if len(links) >= c.linkLimit {
				return links, nil
			}
		}
	}
	return links, nil
}
