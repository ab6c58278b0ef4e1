package dao

import (
	"Nexus/models"
	"Nexus/pkg/snowflake"
	"context"

	"gorm.io/gorm"
)

type TopicDAO struct {
	Repo[models.Topic]
}

func NewTopicDAO(db *gorm.DB) *TopicDAO {
	return &TopicDAO{Repo: NewRepo[models.Topic](db)}
}

// EnsureTopic 按 slug 幂等建话题，已存在时返回现有行的 ID
// DO UPDATE 而非 DO NOTHING 是为了让 RETURNING 在冲突路径也能吐出 id
func (d *TopicDAO) EnsureTopic(ctx context.Context, slug, label string) (uint64, error) {
	var topicID uint64
	err := d.Db.WithContext(ctx).Raw(
		"INSERT INTO topics (id, slug, label, usage_count, last_used_at, created_at, updated_at) "+
			"VALUES (?, ?, ?, 0, now(), now(), now()) "+
			"ON CONFLICT (slug) DO UPDATE SET updated_at = now() "+
			"RETURNING id",
		uint64(snowflake.GenID()), slug, label,
	).Scan(&topicID).Error
	return topicID, err
}

// IncrUsage 使用计数增减，避免负数
func (d *TopicDAO) IncrUsage(ctx context.Context, topicID uint64, delta int64) error {
	return d.Db.WithContext(ctx).Exec(
		"UPDATE topics SET usage_count = GREATEST(usage_count + ?, 0), last_used_at = now(), updated_at = now() WHERE id = ?",
		delta, topicID,
	).Error
}

func (d *TopicDAO) FindBySlug(ctx context.Context, slug string) (*models.Topic, error) {
	var topic *models.Topic
	err := d.Db.WithContext(ctx).Where("slug = ?", slug).First(&topic).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	return topic, err
}

// GetHotTopics 按使用量和最近使用时间排序
func (d *TopicDAO) GetHotTopics(ctx context.Context, limit int) ([]*models.Topic, error) {
	var topics []*models.Topic
	err := d.Db.WithContext(ctx).
		Order("usage_count DESC, last_used_at DESC").
		Limit(limit).
		Find(&topics).Error
	return topics, err
}
