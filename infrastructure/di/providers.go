package di

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/OKNG/wikipedia-solver/application/ports"
	"github.com/OKNG/wikipedia-solver/application/search"
	"github.com/OKNG/wikipedia-solver/infrastructure/cache"
	"github.com/OKNG/wikipedia-solver/infrastructure/config"
	"github.com/OKNG/wikipedia-solver/infrastructure/wikipedia"
	"github.com/OKNG/wikipedia-solver/pkg/observability"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideRegistry creates the prometheus registry
func ProvideRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// ProvideMetrics registers the application metrics
func ProvideMetrics(registry *prometheus.Registry) *observability.Metrics {
	return observability.NewMetrics(registry)
}

// ProvideLinkCache creates the process-wide link cache
func ProvideLinkCache(cfg *config.Config) ports.LinkCache {
	return cache.NewLinkCache(cfg.LinkCacheTTL)
}

// ProvideLinkSource creates the Wikipedia link source
func ProvideLinkSource(cfg *config.Config, linkCache ports.LinkCache, metrics *observability.Metrics, logger *zap.Logger) ports.LinkSource {
	return wikipedia.NewClient(wikipedia.Options{
		APIURL:    cfg.WikipediaAPIURL,
		UserAgent: cfg.UserAgent,
		LinkLimit: cfg.LinkLimit,
	}, linkCache, metrics, logger)
}

// ProvideOrchestrator creates the bidirectional search orchestrator
func ProvideOrchestrator(cfg *config.Config, source ports.LinkSource, metrics *observability.Metrics, logger *zap.Logger) *search.Orchestrator {
	return search.NewOrchestrator(source, search.Config{
		MaxDepth:  cfg.MaxDepth,
		BatchSize: cfg.FetchBatchSize,
		Deadline:  cfg.SearchDeadline,
	}, metrics, logger)
}
