package service

import (
	"Nexus/config"
	"Nexus/dao"
	"Nexus/models"
	"Nexus/pkg/authctx"
	"Nexus/pkg/log"
	"Nexus/pkg/snowflake"
	"Nexus/types"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
	hashids "github.com/speps/go-hashids/v2"
	"go.uber.org/zap"
)

const (
	defaultManifestDays = 7
	defaultCountWorkers = 4
	publicCodeMinLength = 12
)

var _ IGdprService = (*GdprService)(nil)

// GdprService 跨应用的数据导出与删除：
// 目标 schema/表全部来自 apps 注册表，逐个寻址而不是切 search_path
type GdprService struct {
	appDAO      *dao.AppDAO
	manifestDAO *dao.ManifestDAO
	conf        *config.Gdpr
	hash        *hashids.HashID
}

type IGdprService interface {
	PrepareExtractionManifest(ctx context.Context) (*types.ManifestInfo, error)
	GetManifest(ctx context.Context, publicCode string) (*types.ManifestInfo, error)
	CompleteExtraction(ctx context.Context, publicCode string) error
	DeleteUserData(ctx context.Context, userID uint64) (*types.DeletionSummary, error)
	DeleteUserDataInApp(ctx context.Context, appID string, userID uint64) (*types.DeletionSummary, error)
}

func NewGdprService(conf *config.Gdpr, appDAO *dao.AppDAO, manifestDAO *dao.ManifestDAO) *GdprService {
	hd := hashids.NewData()
	hd.Salt = conf.HashSalt
	hd.MinLength = publicCodeMinLength
	h, err := hashids.NewWithData(hd)
	if err != nil {
		panic(err)
	}
	return &GdprService{
		appDAO:      appDAO,
		manifestDAO: manifestDAO,
		conf:        conf,
		hash:        h,
	}
}

// PrepareExtractionManifest 给当前用户生成导出清单：
// 并发统计每个启用应用 schema 下属于该用户的行数，生成对外的不可猜编号
func (s *GdprService) PrepareExtractionManifest(ctx context.Context) (*types.ManifestInfo, error) {
	userID, ok := authctx.UserID(ctx)
	if !ok {
		return nil, errors.New("未登录")
	}

	apps, err := s.appDAO.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	workers := s.conf.CountWorkers
	if workers <= 0 {
		workers = defaultCountWorkers
	}

	var mu sync.Mutex
	counts := make(map[string]int64, len(apps))

	p := pool.New().WithErrors().WithMaxGoroutines(workers)
	for _, app := range apps {
		app := app
		p.Go(func() error {
			var total int64
			for _, table := range app.UserTables {
				n, err := s.manifestDAO.CountUserRows(ctx, app.SchemaName, table, userID)
				if err != nil {
					return err
				}
				total += n
			}
			mu.Lock()
			counts[app.SchemaName] = total
			mu.Unlock()
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(counts)
	if err != nil {
		return nil, err
	}

	manifestID := uint64(snowflake.GenID())
	publicCode, err := s.hash.EncodeInt64([]int64{int64(manifestID)})
	if err != nil {
		return nil, err
	}

	days := s.conf.ManifestDays
	if days <= 0 {
		days = defaultManifestDays
	}

	manifest := &models.ExtractionManifest{
		ID:         manifestID,
		UserID:     userID,
		PublicCode: publicCode,
		Status:     models.ManifestStatusPending,
		Counts:     raw,
		ExpiresAt:  time.Now().AddDate(0, 0, days),
	}
	if err := s.manifestDAO.Create(ctx, manifest); err != nil {
		return nil, err
	}
	return toManifestInfo(manifest), nil
}

// GetManifest 按公开编号取清单，过期的 pending 清单视为失效
func (s *GdprService) GetManifest(ctx context.Context, publicCode string) (*types.ManifestInfo, error) {
	manifest, err := s.manifestDAO.GetByCode(ctx, publicCode)
	if err != nil {
		return nil, err
	}
	if manifest == nil {
		return nil, errors.New("导出清单不存在")
	}
	if manifest.Status == models.ManifestStatusPending && time.Now().After(manifest.ExpiresAt) {
		return nil, errors.New("导出清单已过期")
	}
	return toManifestInfo(manifest), nil
}

// CompleteExtraction 数据交付完成后标记清单
func (s *GdprService) CompleteExtraction(ctx context.Context, publicCode string) error {
	manifest, err := s.manifestDAO.GetByCode(ctx, publicCode)
	if err != nil {
		return err
	}
	if manifest == nil {
		return errors.New("导出清单不存在")
	}
	return s.manifestDAO.MarkCompleted(ctx, manifest.ID)
}

// DeleteUserData 按注册表遍历所有启用应用删除该用户的数据。
// 尽力而为：单个表删除失败只记日志继续删别的表，汇总里只含实际删掉的行
func (s *GdprService) DeleteUserData(ctx context.Context, userID uint64) (*types.DeletionSummary, error) {
	apps, err := s.appDAO.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	schemaCounts := make(map[string]int64, len(apps))
	for _, app := range apps {
		for _, table := range app.UserTables {
			n, err := s.manifestDAO.DeleteUserRows(ctx, app.SchemaName, table, userID)
			if err != nil {
				log.L.Error("delete user rows failed",
					zap.String("schema", app.SchemaName),
					zap.String("table", table),
					zap.Uint64("user_id", userID),
					zap.Error(err))
				continue
			}
			schemaCounts[app.SchemaName] += n
		}
	}

	return &types.DeletionSummary{
		SchemaCounts:        schemaCounts,
		TotalRecordsDeleted: sumCounts(schemaCounts),
		ConfirmationToken:   uuid.NewString(),
		DeletedAt:           time.Now(),
	}, nil
}

// DeleteUserDataInApp 只删某个子应用里该用户的数据，语义与全量删除一致
func (s *GdprService) DeleteUserDataInApp(ctx context.Context, appID string, userID uint64) (*types.DeletionSummary, error) {
	app, err := s.appDAO.GetByAppID(ctx, appID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, errors.New("应用不存在")
	}

	schemaCounts := make(map[string]int64, 1)
	for _, table := range app.UserTables {
		n, err := s.manifestDAO.DeleteUserRows(ctx, app.SchemaName, table, userID)
		if err != nil {
			log.L.Error("delete user rows failed",
				zap.String("schema", app.SchemaName),
				zap.String("table", table),
				zap.Uint64("user_id", userID),
				zap.Error(err))
			continue
		}
		schemaCounts[app.SchemaName] += n
	}

	return &types.DeletionSummary{
		SchemaCounts:        schemaCounts,
		TotalRecordsDeleted: sumCounts(schemaCounts),
		ConfirmationToken:   uuid.NewString(),
		DeletedAt:           time.Now(),
	}, nil
}

// sumCounts 汇总值恒等于各 schema 计数之和
func sumCounts(counts map[string]int64) int64 {
	var total int64
	for _, n := range counts {
		total += n
	}
	return total
}

func toManifestInfo(m *models.ExtractionManifest) *types.ManifestInfo {
	counts := make(map[string]int64)
	if len(m.Counts) > 0 {
		if err := json.Unmarshal(m.Counts, &counts); err != nil {
			log.L.Warn("manifest counts decode failed", zap.Uint64("manifest_id", m.ID), zap.Error(err))
		}
	}
	return &types.ManifestInfo{
		ID:         m.ID,
		PublicCode: m.PublicCode,
		Status:     m.Status,
		Counts:     counts,
		ExpiresAt:  m.ExpiresAt,
		CreatedAt:  m.CreatedAt,
	}
}
