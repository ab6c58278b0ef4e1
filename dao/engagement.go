package dao

import (
	"Nexus/models"
	"Nexus/pkg/snowflake"
	"context"
	"time"

	"gorm.io/gorm"
)

type EngagementDAO struct {
	Repo[models.UserTopicEngagement]
}

func NewEngagementDAO(db *gorm.DB) *EngagementDAO {
	return &EngagementDAO{Repo: NewRepo[models.UserTopicEngagement](db)}
}

// Accumulate 单条语句完成 (user, topic) 的累加：
// 冲突时 score 和对应计数继续累加（刻意不做幂等去重），
// last_engaged_at 取新旧较大者，乱序补账不会把时间往回拨
func (d *EngagementDAO) Accumulate(ctx context.Context, userID, topicID uint64, weight int64, publishInc, responseInc, applaudInc int64, engagedAt time.Time) error {
	return d.Db.WithContext(ctx).Exec(
		"INSERT INTO user_topic_engagements "+
			"(id, user_id, topic_id, score, publish_count, response_count, applaud_count, last_engaged_at, created_at, updated_at) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?, ?, now(), now()) "+
			"ON CONFLICT (user_id, topic_id) DO UPDATE SET "+
			"score = user_topic_engagements.score + EXCLUDED.score, "+
			"publish_count = user_topic_engagements.publish_count + EXCLUDED.publish_count, "+
			"response_count = user_topic_engagements.response_count + EXCLUDED.response_count, "+
			"applaud_count = user_topic_engagements.applaud_count + EXCLUDED.applaud_count, "+
			"last_engaged_at = GREATEST(user_topic_engagements.last_engaged_at, EXCLUDED.last_engaged_at), "+
			"updated_at = now()",
		uint64(snowflake.GenID()), userID, topicID, weight,
		publishInc, responseInc, applaudInc, engagedAt,
	).Error
}

func (d *EngagementDAO) Get(ctx context.Context, userID, topicID uint64) (*models.UserTopicEngagement, error) {
	var item models.UserTopicEngagement
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND topic_id = ?", userID, topicID).
		First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByUser 按分值倒序取用户的话题参与度
func (d *EngagementDAO) ListByUser(ctx context.Context, userID uint64, limit int) ([]*models.UserTopicEngagement, error) {
	var items []*models.UserTopicEngagement
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("score DESC, last_engaged_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

// Decay 显式衰减，score 不会降到负数
func (d *EngagementDAO) Decay(ctx context.Context, userID, topicID uint64, amount int64) error {
	return d.Db.WithContext(ctx).Exec(
		"UPDATE user_topic_engagements SET score = GREATEST(score - ?, 0), updated_at = now() "+
			"WHERE user_id = ? AND topic_id = ?",
		amount, userID, topicID,
	).Error
}
