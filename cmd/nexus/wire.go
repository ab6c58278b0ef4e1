//go:build wireinject
// +build wireinject

package main

import (
	"Nexus/config"
	"Nexus/dao"
	"Nexus/dao/cache"
	"Nexus/pkg/app"
	"Nexus/pkg/client"
	"Nexus/pkg/database"
	"Nexus/pkg/embedding"
	"Nexus/service"

	"github.com/google/wire"
)

func InitApp(cfg *config.Config) *app.Provider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideEmbeddingConfig,
		config.ProvideGdprConfig,
		embedding.NewClient,
		cache.ProviderSet,

		wire.Struct(new(app.Provider), "*"),

		dao.ProviderSet,
		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
