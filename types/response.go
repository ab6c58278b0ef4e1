package types

import "time"

// CreateResponseRequest 发表回复，parent_id 为空表示顶级回复
type CreateResponseRequest struct {
	EntryID    uint64  `json:"entry_id"`
	SectionKey string  `json:"section_key,omitempty"`
	ParentID   *uint64 `json:"parent_id,omitempty"`
	Content    string  `json:"content"`
}

type ResponseInfo struct {
	ID            uint64    `json:"id"`
	EntryID       uint64    `json:"entry_id"`
	UserID        uint64    `json:"user_id"`
	ParentID      *uint64   `json:"parent_id,omitempty"`
	Content       string    `json:"content"`
	ThreadDepth   int       `json:"thread_depth"`
	ThreadPath    []int64   `json:"thread_path"`
	ReplyCount    int64     `json:"reply_count"`
	ApplaudCount  int64     `json:"applaud_count"`
	CurationCount int64     `json:"curation_count"`
	TractionScore float64   `json:"traction_score"`
	CreatedAt     time.Time `json:"created_at"`
}
