package models

import "time"

// 插件提交状态机：draft 既是初始态也是所有状态的回退目标，没有真正的终态
const (
	PluginStatusDraft         = "draft"
	PluginStatusPendingReview = "pending_review"
	PluginStatusApproved      = "approved"
	PluginStatusRejected      = "rejected"
	PluginStatusDeprecated    = "deprecated"
)

// PluginStatuses 枚举全集，按声明顺序
var PluginStatuses = []string{
	PluginStatusDraft,
	PluginStatusPendingReview,
	PluginStatusApproved,
	PluginStatusRejected,
	PluginStatusDeprecated,
}

// Plugin 平台子应用/插件的提交记录
type Plugin struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Slug    string `gorm:"type:varchar(64);uniqueIndex:idx_plugins_slug;not null" json:"slug"`
	Name    string `gorm:"type:varchar(128);not null" json:"name"`
	OwnerID uint64 `gorm:"not null;index" json:"owner_id"`

	Status       string `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	ReviewNote   string `gorm:"type:varchar(500);default:''" json:"review_note"`
	InstallCount int64  `gorm:"not null;default:0" json:"install_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Plugin) TableName() string {
	return "plugins"
}
