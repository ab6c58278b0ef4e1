package models

import (
	"time"

	"github.com/lib/pq"
)

// SectionResponse 针对条目（或条目某一小节）的回复，支持多级讨论串
// thread_path 在插入时一次性物化（父路径追加自身 ID），之后不再更新；
// 有子回复的父回复视为不可变，这是隐含约束
type SectionResponse struct {
	ID         uint64  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	EntryID    uint64  `gorm:"column:entry_id;not null;index:idx_responses_entry" json:"entry_id"`
	SectionKey string  `gorm:"column:section_key;type:varchar(64);default:''" json:"section_key"`
	UserID     uint64  `gorm:"column:user_id;not null;index:idx_responses_user" json:"user_id"`
	ParentID   *uint64 `gorm:"column:parent_id;index:idx_responses_parent;check:chk_response_no_self,id <> parent_id" json:"parent_id,omitempty"`

	Content string `gorm:"column:content;type:text;not null" json:"content"`

	ThreadDepth int           `gorm:"column:thread_depth;not null;default:0" json:"thread_depth"`
	ThreadPath  pq.Int64Array `gorm:"column:thread_path;type:bigint[];not null" json:"thread_path"`

	ReplyCount    int64   `gorm:"column:reply_count;not null;default:0" json:"reply_count"`
	ApplaudCount  int64   `gorm:"column:applaud_count;not null;default:0" json:"applaud_count"`
	CurationCount int64   `gorm:"column:curation_count;not null;default:0" json:"curation_count"`
	TractionScore float64 `gorm:"column:traction_score;not null;default:0;check:chk_traction_range,traction_score >= 0 AND traction_score <= 1" json:"traction_score"`

	Status    int8      `gorm:"column:status;not null;default:1" json:"status"` // 1-正常, 0-已删除
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SectionResponse) TableName() string {
	return "section_responses"
}
