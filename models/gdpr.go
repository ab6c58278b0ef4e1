package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ManifestStatusPending   = "pending"
	ManifestStatusCompleted = "completed"
	ManifestStatusExpired   = "expired"
)

// ExtractionManifest 数据导出清单：记录各应用 schema 的时点行数统计，固定 7 天过期
type ExtractionManifest struct {
	ID         uint64         `gorm:"primaryKey;autoIncrement:false" json:"id"`
	UserID     uint64         `gorm:"not null;index:idx_manifests_user" json:"user_id"`
	PublicCode string         `gorm:"type:varchar(32);uniqueIndex:idx_manifests_code;not null" json:"public_code"`
	Status     string         `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`
	Counts     datatypes.JSON `gorm:"type:jsonb" json:"counts"` // schema -> 行数

	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ExtractionManifest) TableName() string {
	return "extraction_manifests"
}
