package dao

import (
	"Nexus/models"
	"Nexus/pkg/snowflake"
	"context"

	"gorm.io/gorm"
)

type PreferenceDAO struct {
	Repo[models.TopicPreference]
}

func NewPreferenceDAO(db *gorm.DB) *PreferenceDAO {
	return &PreferenceDAO{Repo: NewRepo[models.TopicPreference](db)}
}

// AddSignal 正负反馈累加并在同一条语句里重算 intensity，
// SQL 表达式必须与 service/scoring.go 的 LearnedIntensity 保持一致：
// clamp(0.1, 0.9, 0.2 + ratio*0.6)，无信号时 ratio 取 0.5
func (d *PreferenceDAO) AddSignal(ctx context.Context, userID, topicID uint64, positiveInc, negativeInc int64, initialIntensity float64) error {
	return d.Db.WithContext(ctx).Exec(
		"INSERT INTO topic_preferences "+
			"(id, user_id, topic_id, positive_count, negative_count, intensity, created_at, updated_at) "+
			"VALUES (?, ?, ?, ?, ?, ?, now(), now()) "+
			"ON CONFLICT (user_id, topic_id) DO UPDATE SET "+
			"positive_count = topic_preferences.positive_count + EXCLUDED.positive_count, "+
			"negative_count = topic_preferences.negative_count + EXCLUDED.negative_count, "+
			"intensity = LEAST(0.9, GREATEST(0.1, 0.2 + COALESCE("+
			"(topic_preferences.positive_count + EXCLUDED.positive_count)::float / "+
			"NULLIF(topic_preferences.positive_count + EXCLUDED.positive_count + "+
			"topic_preferences.negative_count + EXCLUDED.negative_count, 0), 0.5) * 0.6)), "+
			"updated_at = now()",
		uint64(snowflake.GenID()), userID, topicID, positiveInc, negativeInc, initialIntensity,
	).Error
}

func (d *PreferenceDAO) Get(ctx context.Context, userID, topicID uint64) (*models.TopicPreference, error) {
	var pref models.TopicPreference
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND topic_id = ?", userID, topicID).
		First(&pref).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}
