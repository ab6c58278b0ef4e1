package types

import "gorm.io/datatypes"

// CreateEntryRequest 发布内容条目
type CreateEntryRequest struct {
	Title   string         `json:"title"`
	Content datatypes.JSON `json:"content"`
	Topics  []string       `json:"topics"`
	Publish bool           `json:"publish"` // false 则落为草稿
}

type CreateEntryResponse struct {
	ID     uint64 `json:"id"`
	Status string `json:"status"`
}
