//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/OKNG/wikipedia-solver/infrastructure/config"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideRegistry,
	ProvideMetrics,
	ProvideLinkCache,
	ProvideLinkSource,
	ProvideOrchestrator,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
