package app

import (
	"Nexus/config"
	"Nexus/service"
)

// Provider 聚合应用的全部服务，由 wire 统一装配
type Provider struct {
	Conf *config.Config

	Entry      service.IEntryService
	Response   service.IResponseService
	Search     service.ISearchService
	Engagement service.IEngagementService
	Match      service.IMatchService
	Plugin     service.IPluginService
	Notify     service.INotifyService
	Gdpr       service.IGdprService

	// Counter 只靠事件订阅工作，放在这里保证被装配
	Counter *service.CounterService
}
