package dao

import (
	"Nexus/models"
	"context"

	"gorm.io/gorm"
)

type PluginDAO struct {
	Repo[models.Plugin]
}

func NewPluginDAO(db *gorm.DB) *PluginDAO {
	return &PluginDAO{Repo: NewRepo[models.Plugin](db)}
}

func (d *PluginDAO) GetByID(ctx context.Context, pluginID uint64) (*models.Plugin, error) {
	return d.FindByID(ctx, pluginID)
}

func (d *PluginDAO) GetBySlug(ctx context.Context, slug string) (*models.Plugin, error) {
	return d.FindByWhere(ctx, "slug = ?", slug)
}

// UpdateStatus 带前置状态的条件更新，返回是否真的改到了行；
// WHERE status = ? 同时挡掉并发下的状态竞争
func (d *PluginDAO) UpdateStatus(ctx context.Context, pluginID uint64, fromStatus, toStatus, reviewNote string) (bool, error) {
	result := d.Db.WithContext(ctx).Model(&models.Plugin{}).
		Where("id = ? AND status = ?", pluginID, fromStatus).
		Updates(map[string]interface{}{
			"status":      toStatus,
			"review_note": reviewNote,
		})
	return result.RowsAffected > 0, result.Error
}

// IncrInstallCount 安装计数增减，避免负数
func (d *PluginDAO) IncrInstallCount(ctx context.Context, pluginID uint64, delta int64) error {
	return d.Db.WithContext(ctx).Exec(
		"UPDATE plugins SET install_count = GREATEST(install_count + ?, 0), updated_at = now() WHERE id = ?",
		delta, pluginID,
	).Error
}
