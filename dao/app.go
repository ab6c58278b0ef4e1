package dao

import (
	"Nexus/models"
	"context"

	cmap "github.com/orcaman/concurrent-map/v2"
	"gorm.io/gorm"
)

type AppDAO struct {
	Repo[models.App]
	cache cmap.ConcurrentMap[string, *models.App]
}

func NewAppDAO(db *gorm.DB) *AppDAO {
	return &AppDAO{
		Repo:  NewRepo[models.App](db),
		cache: cmap.New[*models.App](),
	}
}

// GetByAppID 先查内存缓存，miss 再落库
func (d *AppDAO) GetByAppID(ctx context.Context, appID string) (*models.App, error) {
	if app, ok := d.cache.Get(appID); ok {
		return app, nil
	}

	var app models.App
	err := d.Db.WithContext(ctx).
		Where("app_id = ? AND status = 1", appID).
		First(&app).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	d.cache.Set(appID, &app)
	return &app, nil
}

// ListActive 列出所有启用的子应用，GDPR 流程按这个列表逐个遍历
func (d *AppDAO) ListActive(ctx context.Context) ([]*models.App, error) {
	var apps []*models.App
	err := d.Db.WithContext(ctx).
		Where("status = 1").
		Order("app_id ASC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}

	for _, app := range apps {
		d.cache.Set(app.AppID, app)
	}
	return apps, err
}
