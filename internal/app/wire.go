//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"voxscribe/internal/api/server"
	"voxscribe/internal/api/v1/services"
	"voxscribe/internal/config"
)

var coreSet = wire.NewSet(
	provideLogger,
	provideRegistry,
	provideMetrics,
	provideProcessor,
	providePipeline,
	provideHistorySource,
	provideStore,
)

var apiSet = wire.NewSet(
	provideIntakeService,
	provideHistoryService,
	provideUsageService,
	wire.Bind(new(services.IntakeService), new(*services.IntakeServiceImpl)),
	wire.Bind(new(services.HistoryService), new(*services.HistoryServiceImpl)),
	wire.Bind(new(services.UsageService), new(*services.UsageServiceImpl)),
	wire.Bind(new(prometheus.Gatherer), new(*prometheus.Registry)),
	server.NewServiceContainer,
	provideServer,
)

// InitializeApp builds the full application from settings. The returned
// cleanup closes the history database and flushes the logger.
func InitializeApp(ctx context.Context, settings *config.Settings) (*App, func(), error) {
	wire.Build(coreSet, apiSet, wire.Struct(new(App), "*"))
	return nil, nil, nil
}
