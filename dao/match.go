package dao

import (
	"Nexus/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MatchDAO struct {
	Repo[models.Match]
}

func NewMatchDAO(db *gorm.DB) *MatchDAO {
	return &MatchDAO{Repo: NewRepo[models.Match](db)}
}

// CreateSwipe 重复滑动不报错
func (d *MatchDAO) CreateSwipe(ctx context.Context, swipe *models.Swipe) error {
	return d.Db.WithContext(ctx).Clauses(clause.OnConflict{
		DoNothing: true,
	}).Create(swipe).Error
}

// HasRightSwipe 对方是否右滑过自己
func (d *MatchDAO) HasRightSwipe(ctx context.Context, swiperID, targetID uint64) (bool, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.Swipe{}).
		Where("swiper_id = ? AND target_id = ? AND direction = ?",
			swiperID, targetID, models.SwipeDirectionRight).
		Count(&count).Error
	return count > 0, err
}

// CreateMatch 调用方保证 user1_id < user2_id，并发重复配对静默忽略
func (d *MatchDAO) CreateMatch(ctx context.Context, match *models.Match) error {
	return d.Db.WithContext(ctx).Clauses(clause.OnConflict{
		DoNothing: true,
	}).Create(match).Error
}

func (d *MatchDAO) GetMatch(ctx context.Context, user1ID, user2ID uint64) (*models.Match, error) {
	var match models.Match
	err := d.Db.WithContext(ctx).
		Where("user1_id = ? AND user2_id = ?", user1ID, user2ID).
		First(&match).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &match, nil
}

func (d *MatchDAO) ListByUser(ctx context.Context, userID uint64, limit int) ([]*models.Match, error) {
	var matches []*models.Match
	err := d.Db.WithContext(ctx).
		Where("(user1_id = ? OR user2_id = ?) AND status = ?", userID, userID, models.MatchStatusActive).
		Order("created_at DESC").
		Limit(limit).
		Find(&matches).Error
	return matches, err
}

// UpsertRating 同一评分人对同一被评人只保留最新评分
func (d *MatchDAO) UpsertRating(ctx context.Context, rating *models.Rating) error {
	return d.Db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "rater_id"}, {Name: "rated_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "confidence", "updated_at"}),
	}).Create(rating).Error
}
