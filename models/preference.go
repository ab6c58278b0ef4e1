package models

import "time"

// TopicPreference 话题偏好：正负反馈计数 + 学习得到的偏好强度
// intensity 被钳制在 [0.1, 0.9]，避免少量早期信号把偏好推到极端
type TopicPreference struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement:false" json:"id"`
	UserID  uint64 `gorm:"uniqueIndex:uk_user_topic_pref;not null" json:"user_id"`
	TopicID uint64 `gorm:"uniqueIndex:uk_user_topic_pref;not null" json:"topic_id"`

	PositiveCount int64   `gorm:"not null;default:0" json:"positive_count"`
	NegativeCount int64   `gorm:"not null;default:0" json:"negative_count"`
	Intensity     float64 `gorm:"not null;default:0.5;check:chk_pref_intensity,intensity >= 0 AND intensity <= 1" json:"intensity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TopicPreference) TableName() string {
	return "topic_preferences"
}
