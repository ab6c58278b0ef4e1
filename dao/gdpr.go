package dao

import (
	"Nexus/models"
	"context"
	"fmt"
	"regexp"

	"gorm.io/gorm"
)

type ManifestDAO struct {
	Repo[models.ExtractionManifest]
}

func NewManifestDAO(db *gorm.DB) *ManifestDAO {
	return &ManifestDAO{Repo: NewRepo[models.ExtractionManifest](db)}
}

// schema/表名只能来自 apps 注册表，这里再做一道标识符白名单校验，
// 因为它们会被拼进 SQL 而不是走占位符
var identPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

func validIdent(name string) bool {
	return identPattern.MatchString(name)
}

func (d *ManifestDAO) GetByCode(ctx context.Context, publicCode string) (*models.ExtractionManifest, error) {
	var manifest models.ExtractionManifest
	err := d.Db.WithContext(ctx).
		Where("public_code = ?", publicCode).
		First(&manifest).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &manifest, nil
}

func (d *ManifestDAO) MarkCompleted(ctx context.Context, manifestID uint64) error {
	return d.Db.WithContext(ctx).Model(&models.ExtractionManifest{}).
		Where("id = ?", manifestID).
		Update("status", models.ManifestStatusCompleted).Error
}

// CountUserRows 统计某应用 schema 下某表里属于该用户的行数
func (d *ManifestDAO) CountUserRows(ctx context.Context, schema, table string, userID uint64) (int64, error) {
	if !validIdent(schema) || !validIdent(table) {
		return 0, fmt.Errorf("非法的 schema/表名: %s.%s", schema, table)
	}

	var count int64
	err := d.Db.WithContext(ctx).
		Raw(fmt.Sprintf("SELECT count(*) FROM %s.%s WHERE user_id = ?", schema, table), userID).
		Scan(&count).Error
	return count, err
}

// DeleteUserRows 删除某应用 schema 下某表里属于该用户的行，返回删除行数
func (d *ManifestDAO) DeleteUserRows(ctx context.Context, schema, table string, userID uint64) (int64, error) {
	if !validIdent(schema) || !validIdent(table) {
		return 0, fmt.Errorf("非法的 schema/表名: %s.%s", schema, table)
	}

	result := d.Db.WithContext(ctx).
		Exec(fmt.Sprintf("DELETE FROM %s.%s WHERE user_id = ?", schema, table), userID)
	return result.RowsAffected, result.Error
}
