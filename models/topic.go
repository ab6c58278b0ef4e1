package models

import "time"

// Topic 话题表，slug 小写唯一，首次被引用时惰性创建
type Topic struct {
	ID    uint64 `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Slug  string `gorm:"type:varchar(64);uniqueIndex:idx_topics_slug;not null" json:"slug"`
	Label string `gorm:"type:varchar(128);not null;default:''" json:"label"`

	UsageCount int64     `gorm:"default:0" json:"usage_count"`
	LastUsedAt time.Time `gorm:"index" json:"last_used_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Topic) TableName() string {
	return "topics"
}

// 互动类型与对应的权重
const (
	InteractionPublish  = "publish"
	InteractionResponse = "response"
	InteractionApplaud  = "applaud"
)

// UserTopicEngagement 用户-话题参与度累加器
// score 只增不减（除非显式衰减），同一信号重复提交会重复累加，这是刻意设计
type UserTopicEngagement struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement:false" json:"id"`
	UserID  uint64 `gorm:"uniqueIndex:uk_user_topic;not null" json:"user_id"`
	TopicID uint64 `gorm:"uniqueIndex:uk_user_topic;not null;index:idx_engagement_topic" json:"topic_id"`

	Score         int64 `gorm:"not null;default:0" json:"score"`
	PublishCount  int64 `gorm:"not null;default:0" json:"publish_count"`
	ResponseCount int64 `gorm:"not null;default:0" json:"response_count"`
	ApplaudCount  int64 `gorm:"not null;default:0" json:"applaud_count"`

	LastEngagedAt time.Time `gorm:"not null" json:"last_engaged_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (UserTopicEngagement) TableName() string {
	return "user_topic_engagements"
}
