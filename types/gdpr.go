package types

import "time"

// ManifestInfo 导出清单
type ManifestInfo struct {
	ID         uint64           `json:"id"`
	PublicCode string           `json:"public_code"`
	Status     string           `json:"status"`
	Counts     map[string]int64 `json:"counts"` // schema -> 行数
	ExpiresAt  time.Time        `json:"expires_at"`
	CreatedAt  time.Time        `json:"created_at"`
}

// DeletionSummary 跨应用删除的结果汇总，各 schema 计数之和等于 total_records_deleted
type DeletionSummary struct {
	SchemaCounts        map[string]int64 `json:"schema_counts"`
	TotalRecordsDeleted int64            `json:"total_records_deleted"`
	ConfirmationToken   string           `json:"confirmation_token"`
	DeletedAt           time.Time        `json:"deleted_at"`
}
