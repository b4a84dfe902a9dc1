//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"moodd/internal"
	"moodd/internal/controllers"
	"moodd/internal/dialogue"
	"moodd/internal/providers"
	"moodd/internal/services"
	"moodd/internal/storage"
	"moodd/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		storage.NewZstdCompressor,
		storage.NewFileStore,
		storage.NewScheduler,
		services.NewJournalService,
		dialogue.NewGateway,
		controllers.NewApiController,
		controllers.NewChatController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
