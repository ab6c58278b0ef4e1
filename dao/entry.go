package dao

import (
	"Nexus/models"
	"Nexus/types"
	"context"
	"strings"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type EntryDAO struct {
	Repo[models.Entry]
}

func NewEntryDAO(db *gorm.DB) *EntryDAO {
	return &EntryDAO{Repo: NewRepo[models.Entry](db)}
}

// GetByID 只取未归档之外也包括归档的行，软删除语义由调用方判断
func (d *EntryDAO) GetByID(ctx context.Context, entryID uint64) (*models.Entry, error) {
	return d.FindByID(ctx, entryID)
}

func (d *EntryDAO) UpdateStatus(ctx context.Context, entryID uint64, status string) error {
	return d.Db.WithContext(ctx).Model(&models.Entry{}).
		Where("id = ?", entryID).
		Update("status", status).Error
}

// IncrResponseCount 回复计数增减，避免负数
func (d *EntryDAO) IncrResponseCount(ctx context.Context, entryID uint64, delta int64) error {
	return d.Db.WithContext(ctx).Exec(
		"UPDATE entries SET response_count = GREATEST(response_count + ?, 0), updated_at = now() WHERE id = ?",
		delta, entryID,
	).Error
}

// IncrRelationCount 关联计数增减，避免负数
func (d *EntryDAO) IncrRelationCount(ctx context.Context, entryID uint64, delta int64) error {
	return d.Db.WithContext(ctx).Exec(
		"UPDATE entries SET relation_count = GREATEST(relation_count + ?, 0), updated_at = now() WHERE id = ?",
		delta, entryID,
	).Error
}

// UpdateEmbeddings 回填三份向量
func (d *EntryDAO) UpdateEmbeddings(ctx context.Context, entryID uint64, title, content, combined pgvector.Vector) error {
	return d.Db.WithContext(ctx).Model(&models.Entry{}).
		Where("id = ?", entryID).
		Updates(map[string]interface{}{
			"title_embedding":    title,
			"content_embedding":  content,
			"combined_embedding": combined,
		}).Error
}

// ListMissingEmbeddings 已发布但还没有合并向量的条目，reindex 用
func (d *EntryDAO) ListMissingEmbeddings(ctx context.Context, limit int) ([]*models.Entry, error) {
	var entries []*models.Entry
	err := d.Db.WithContext(ctx).
		Where("status = ? AND combined_embedding IS NULL", models.EntryStatusPublished).
		Order("created_at ASC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// SearchCandidates 混合检索的候选查询：SQL 侧算出每行的语义分与关键词分并完成过滤，
// 最终的加权排序在 service 层完成
// 语义分 = 1 - 余弦距离，两侧向量都存在才参与；关键词分为标题/正文不区分大小写子串命中
func (d *EntryDAO) SearchCandidates(ctx context.Context, q *types.SearchQuery) ([]*types.SearchCandidate, error) {
	var (
		sb   strings.Builder
		args []interface{}
	)

	sb.WriteString("SELECT * FROM (SELECT e.id, e.title, e.content, e.topics, e.user_id, e.created_at, ")

	if q.Embedding != nil {
		sb.WriteString("CASE WHEN e.combined_embedding IS NOT NULL THEN 1 - (e.combined_embedding <=> ?::vector) ELSE 0 END AS semantic_score, ")
		args = append(args, *q.Embedding)
	} else {
		sb.WriteString("0::float AS semantic_score, ")
	}

	if q.Text != "" {
		sb.WriteString("CASE WHEN e.title ILIKE ? OR e.content::text ILIKE ? THEN 1.0 ELSE 0.0 END AS keyword_score ")
		pattern := "%" + q.Text + "%"
		args = append(args, pattern, pattern)
	} else {
		sb.WriteString("0::float AS keyword_score ")
	}

	sb.WriteString("FROM entries e WHERE e.status = 'published'")
	if len(q.TopicFilter) > 0 {
		sb.WriteString(" AND e.topics && ?")
		args = append(args, pq.StringArray(q.TopicFilter))
	}
	sb.WriteString(") c WHERE c.semantic_score >= ? OR c.keyword_score > 0")
	args = append(args, q.Threshold)

	sb.WriteString(" ORDER BY c.semantic_score * ? + c.keyword_score * ? DESC, c.id DESC LIMIT ?")
	args = append(args, q.SemanticWeight, q.KeywordWeight, q.Limit)

	var candidates []*types.SearchCandidate
	err := d.Db.WithContext(ctx).Raw(sb.String(), args...).Scan(&candidates).Error
	return candidates, err
}
