// Package app assembles the voxscribe object graph from settings.
package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"voxscribe/internal/api/server"
	v1routes "voxscribe/internal/api/v1/routes"
	"voxscribe/internal/api/v1/services"
	"voxscribe/internal/app/history"
	"voxscribe/internal/app/intake"
	"voxscribe/internal/app/logging"
	"voxscribe/internal/app/metrics"
	"voxscribe/internal/config"
)

// App is the wired application shared by the CLI commands.
type App struct {
	Settings       *config.Settings
	Logger         *zap.Logger
	Registry       *prometheus.Registry
	Metrics        *metrics.Collector
	Pipeline       *intake.Pipeline
	Store          *history.Store
	IntakeService  *services.IntakeServiceImpl
	HistoryService *services.HistoryServiceImpl
	Server         *server.Server
}

func provideLogger(settings *config.Settings) (*zap.Logger, func(), error) {
	logger, err := logging.ForEnvironment(settings.Server.Environment)
	if err != nil {
		return nil, nil, err
	}
	if logger, err = logging.WithLevel(logger, settings.LogLevel); err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideMetrics(reg *prometheus.Registry) (*metrics.Collector, error) {
	return metrics.New(reg)
}

func provideProcessor(settings *config.Settings) intake.Processor {
	return intake.NewSimulatedProcessor(settings.Intake.ProcessingDelay)
}

func providePipeline(settings *config.Settings, processor intake.Processor, logger *zap.Logger, m *metrics.Collector) *intake.Pipeline {
	return intake.NewPipeline(settings.Intake.Config, processor, logger.Named("intake"), m)
}

// provideHistorySource picks the SQL table, the YAML seed file or the
// built-in entries, in that order.
func provideHistorySource(settings *config.Settings) (history.Source, func(), error) {
	hs := settings.History
	switch {
	case hs.Driver != "":
		src, err := history.OpenSQLSource(hs.Driver, hs.DSN, hs.Table)
		if err != nil {
			return nil, nil, err
		}
		return src, func() { _ = src.Close() }, nil
	case hs.SeedFile != "":
		return history.FileSource{Path: hs.SeedFile}, func() {}, nil
	default:
		return history.StaticSource(history.DefaultEntries()), func() {}, nil
	}
}

func provideStore(ctx context.Context, src history.Source, logger *zap.Logger, m *metrics.Collector) (*history.Store, error) {
	entries, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	logger.Debug("History loaded", zap.Int("entries", len(entries)))
	return history.NewStore(entries, logger.Named("history"), m), nil
}

func provideIntakeService(pipeline *intake.Pipeline, m *metrics.Collector, logger *zap.Logger) *services.IntakeServiceImpl {
	return services.NewIntakeService(pipeline, m, logger)
}

func provideHistoryService(store *history.Store, settings *config.Settings, m *metrics.Collector, logger *zap.Logger) *services.HistoryServiceImpl {
	return services.NewHistoryService(store, settings.History.PageSize, m, logger)
}

func provideUsageService(settings *config.Settings) *services.UsageServiceImpl {
	return services.NewUsageService(settings.Usage)
}

func provideServer(settings *config.Settings, container *v1routes.ServiceContainer, gatherer prometheus.Gatherer, logger *zap.Logger) *server.Server {
	return server.NewServer(settings.Server, container, gatherer, logger.Named("http"))
}
