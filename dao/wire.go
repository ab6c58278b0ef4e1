package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewEntryDAO,
	NewTopicDAO,
	NewEngagementDAO,
	NewResponseDAO,
	NewMatchDAO,
	NewPluginDAO,
	NewPreferenceDAO,
	NewAppDAO,
	NewManifestDAO,
)
