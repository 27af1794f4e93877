package di

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/OKNG/wikipedia-solver/application/ports"
	"github.com/OKNG/wikipedia-solver/application/search"
	"github.com/OKNG/wikipedia-solver/infrastructure/config"
	"github.com/OKNG/wikipedia-solver/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	Registry     *prometheus.Registry
	Metrics      *observability.Metrics
	LinkCache    ports.LinkCache
	LinkSource   ports.LinkSource
	Orchestrator *search.Orchestrator
}
