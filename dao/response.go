package dao

import (
	"Nexus/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type ResponseDAO struct {
	Repo[models.SectionResponse]
}

func NewResponseDAO(db *gorm.DB) *ResponseDAO {
	return &ResponseDAO{Repo: NewRepo[models.SectionResponse](db)}
}

func (d *ResponseDAO) GetByID(ctx context.Context, responseID uint64) (*models.SectionResponse, error) {
	var resp models.SectionResponse
	err := d.Db.WithContext(ctx).
		Where("id = ? AND status = 1", responseID).
		First(&resp).Error
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetRootsByCursor 使用游标获取顶级回复
func (d *ResponseDAO) GetRootsByCursor(ctx context.Context, entryID uint64, cursor int64, limit int) ([]*models.SectionResponse, error) {
	var responses []*models.SectionResponse
	query := d.Db.WithContext(ctx).
		Where("entry_id = ? AND parent_id IS NULL AND status = 1", entryID)

	if cursor > 0 {
		cursorTime := time.Unix(0, cursor)
		query = query.Where("created_at < ?", cursorTime)
	}

	err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&responses).Error
	return responses, err
}

// ListDescendants 借助物化路径一次取出某回复的全部后代，无需递归查询
func (d *ResponseDAO) ListDescendants(ctx context.Context, responseID uint64) ([]*models.SectionResponse, error) {
	var responses []*models.SectionResponse
	err := d.Db.WithContext(ctx).
		Where("? = ANY(thread_path) AND id <> ? AND status = 1", responseID, responseID).
		Order("thread_path ASC").
		Find(&responses).Error
	return responses, err
}

// IncrReplyCount 回复数增减，避免负数
func (d *ResponseDAO) IncrReplyCount(ctx context.Context, responseID uint64, delta int64) error {
	return d.Db.WithContext(ctx).Exec(
		"UPDATE section_responses SET reply_count = GREATEST(reply_count + ?, 0), updated_at = now() WHERE id = ?",
		delta, responseID,
	).Error
}

// IncrApplaudCount 鼓掌数增减，避免负数
func (d *ResponseDAO) IncrApplaudCount(ctx context.Context, responseID uint64, delta int64) error {
	return d.Db.WithContext(ctx).Exec(
		"UPDATE section_responses SET applaud_count = GREATEST(applaud_count + ?, 0), updated_at = now() WHERE id = ?",
		delta, responseID,
	).Error
}

// IncrCurationCount 精选数增减，避免负数
func (d *ResponseDAO) IncrCurationCount(ctx context.Context, responseID uint64, delta int64) error {
	return d.Db.WithContext(ctx).Exec(
		"UPDATE section_responses SET curation_count = GREATEST(curation_count + ?, 0), updated_at = now() WHERE id = ?",
		delta, responseID,
	).Error
}

func (d *ResponseDAO) UpdateTraction(ctx context.Context, responseID uint64, score float64) error {
	return d.Db.WithContext(ctx).Model(&models.SectionResponse{}).
		Where("id = ?", responseID).
		UpdateColumn("traction_score", score).Error
}

// Delete 软删除
func (d *ResponseDAO) Delete(ctx context.Context, responseID uint64) error {
	return d.Db.WithContext(ctx).Model(&models.SectionResponse{}).
		Where("id = ?", responseID).
		Update("status", 0).Error
}
