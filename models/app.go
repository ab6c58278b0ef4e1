package models

import (
	"time"

	"github.com/lib/pq"
)

// App 子应用注册表：app_id 映射到物理 schema 和该 schema 下的用户数据表，
// 跨应用操作（GDPR 导出/删除）按注册表逐个寻址，取代动态 SET search_path
type App struct {
	ID          uint64         `gorm:"primaryKey;autoIncrement:false" json:"id"`
	AppID       string         `gorm:"type:varchar(64);uniqueIndex:idx_apps_app_id;not null" json:"app_id"`
	DisplayName string         `gorm:"type:varchar(128);not null" json:"display_name"`
	SchemaName  string         `gorm:"type:varchar(64);not null" json:"schema_name"`
	UserTables  pq.StringArray `gorm:"type:text[];not null" json:"user_tables"` // 含 user_id 列的表名列表

	Status    int8      `gorm:"not null;default:1" json:"status"` // 1-启用, 0-停用
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (App) TableName() string {
	return "apps"
}
