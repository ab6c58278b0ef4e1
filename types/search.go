package types

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// 混合检索默认参数
const (
	DefaultSimilarityThreshold = 0.6
	DefaultSearchLimit         = 20
	DefaultSemanticWeight      = 0.7
	DefaultKeywordWeight       = 0.3
)

// SearchRequest 混合检索入参，查询文本和查询向量至少给一个
type SearchRequest struct {
	Query          string    `json:"query"`
	Embedding      []float32 `json:"embedding,omitempty"`
	Threshold      *float64  `json:"threshold,omitempty"`
	Limit          int       `json:"limit"`
	TopicFilter    []string  `json:"topic_filter,omitempty"`
	SemanticWeight *float64  `json:"semantic_weight,omitempty"`
	KeywordWeight  *float64  `json:"keyword_weight,omitempty"`
}

// SearchQuery dao 层候选查询的归一化参数
type SearchQuery struct {
	Text           string
	Embedding      *pgvector.Vector
	Threshold      float64
	Limit          int
	TopicFilter    []string
	SemanticWeight float64
	KeywordWeight  float64
}

// SearchCandidate SQL 侧算完过滤后的候选行
type SearchCandidate struct {
	ID            uint64         `gorm:"column:id"`
	Title         string         `gorm:"column:title"`
	Content       datatypes.JSON `gorm:"column:content"`
	Topics        pq.StringArray `gorm:"column:topics;type:text[]"`
	UserID        *uint64        `gorm:"column:user_id"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	SemanticScore float64        `gorm:"column:semantic_score"`
	KeywordScore  float64        `gorm:"column:keyword_score"`
}

// SearchResult 对外返回列，字段名与列名保持兼容
type SearchResult struct {
	ID            uint64         `json:"id"`
	Title         string         `json:"title"`
	Content       datatypes.JSON `json:"content"`
	Topics        []string       `json:"topics"`
	UserID        *uint64        `json:"user_id,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	SemanticScore float64        `json:"semantic_score"`
	KeywordScore  float64        `json:"keyword_score"`
	HybridScore   float64        `json:"hybrid_score"`
}
