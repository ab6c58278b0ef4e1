package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// Entry 状态：软归档，不做物理删除
const (
	EntryStatusDraft     = "draft"
	EntryStatusPublished = "published"
	EntryStatusArchived  = "archived"
)

// Entry 用户创作的内容条目
type Entry struct {
	ID      uint64         `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	UserID  *uint64        `gorm:"column:user_id;index:idx_entries_user_status" json:"user_id,omitempty"` // 允许匿名发布
	Title   string         `gorm:"column:title;type:varchar(200);not null;default:''" json:"title"`
	Content datatypes.JSON `gorm:"column:content;type:jsonb" json:"content"`
	Topics  pq.StringArray `gorm:"column:topics;type:text[]" json:"topics"`
	Status  string         `gorm:"column:status;type:varchar(16);not null;default:'draft';index:idx_entries_user_status" json:"status"`

	// 冗余计数快照，由 dao 原子增减维护
	ResponseCount int64 `gorm:"column:response_count;not null;default:0" json:"response_count"`
	RelationCount int64 `gorm:"column:relation_count;not null;default:0" json:"relation_count"`

	// 三份向量：标题、正文、合并文本，向量化失败时保持 NULL 等待补算
	TitleEmbedding    *pgvector.Vector `gorm:"column:title_embedding;type:vector(1536)" json:"-"`
	ContentEmbedding  *pgvector.Vector `gorm:"column:content_embedding;type:vector(1536)" json:"-"`
	CombinedEmbedding *pgvector.Vector `gorm:"column:combined_embedding;type:vector(1536)" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;index:idx_entries_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Entry) TableName() string {
	return "entries"
}
