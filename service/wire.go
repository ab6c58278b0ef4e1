package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewEventBus,
	NewCounterService,
	NewGdprService,
	wire.Bind(new(IGdprService), new(*GdprService)),

	wire.Struct(new(EntryService), "*"),
	wire.Bind(new(IEntryService), new(*EntryService)),

	wire.Struct(new(ResponseService), "*"),
	wire.Bind(new(IResponseService), new(*ResponseService)),

	wire.Struct(new(EngagementService), "*"),
	wire.Bind(new(IEngagementService), new(*EngagementService)),

	wire.Struct(new(SearchService), "*"),
	wire.Bind(new(ISearchService), new(*SearchService)),

	wire.Struct(new(MatchService), "*"),
	wire.Bind(new(IMatchService), new(*MatchService)),

	wire.Struct(new(PluginService), "*"),
	wire.Bind(new(IPluginService), new(*PluginService)),

	wire.Struct(new(NotifyService), "*"),
	wire.Bind(new(INotifyService), new(*NotifyService)),
)
