package service

import (
	"Nexus/dao"
	"Nexus/models"
	"Nexus/pkg/authctx"
	"Nexus/pkg/snowflake"
	"context"
	"errors"
	"fmt"
)

// pluginTransitions 状态机邻接表：draft 可去任意状态，任意状态都可回退 draft，
// 另加显式的前向边；不在表里的组合一律拒绝
var pluginTransitions = map[string][]string{
	models.PluginStatusDraft: {
		models.PluginStatusDraft,
		models.PluginStatusPendingReview,
		models.PluginStatusApproved,
		models.PluginStatusRejected,
		models.PluginStatusDeprecated,
	},
	models.PluginStatusPendingReview: {
		models.PluginStatusDraft,
		models.PluginStatusApproved,
		models.PluginStatusRejected,
	},
	models.PluginStatusApproved: {
		models.PluginStatusDraft,
		models.PluginStatusDeprecated,
	},
	models.PluginStatusRejected: {
		models.PluginStatusDraft,
		models.PluginStatusDeprecated,
	},
	models.PluginStatusDeprecated: {
		models.PluginStatusDraft,
	},
}

// CanTransition 判断状态迁移是否合法，只判定不报错
func CanTransition(from, to string) bool {
	for _, allowed := range pluginTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

var _ IPluginService = (*PluginService)(nil)

type PluginService struct {
	PluginDAO *dao.PluginDAO
}

type IPluginService interface {
	CreatePlugin(ctx context.Context, slug, name string) (*models.Plugin, error)
	GetBySlug(ctx context.Context, slug string) (*models.Plugin, error)
	ListByOwner(ctx context.Context) ([]*models.Plugin, error)
	SubmitForReview(ctx context.Context, pluginID uint64) error
	Approve(ctx context.Context, pluginID uint64, note string) error
	Reject(ctx context.Context, pluginID uint64, note string) error
	Deprecate(ctx context.Context, pluginID uint64) error
	ReturnToDraft(ctx context.Context, pluginID uint64) error
	Install(ctx context.Context, pluginID uint64) error
	Uninstall(ctx context.Context, pluginID uint64) error
}

func (s *PluginService) CreatePlugin(ctx context.Context, slug, name string) (*models.Plugin, error) {
	ownerID, ok := authctx.UserID(ctx)
	if !ok {
		return nil, errors.New("未登录")
	}
	if slug == "" || name == "" {
		return nil, errors.New("slug 和名称不能为空")
	}

	exists, err := s.PluginDAO.IsExist(ctx, "slug = ?", slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.New("slug 已被占用")
	}

	plugin := &models.Plugin{
		ID:      uint64(snowflake.GenID()),
		Slug:    slug,
		Name:    name,
		OwnerID: ownerID,
		Status:  models.PluginStatusDraft,
	}
	if err := s.PluginDAO.Create(ctx, plugin); err != nil {
		return nil, err
	}
	return plugin, nil
}

func (s *PluginService) GetBySlug(ctx context.Context, slug string) (*models.Plugin, error) {
	plugin, err := s.PluginDAO.GetBySlug(ctx, slug)
	if err != nil {
		return nil, errors.New("插件不存在")
	}
	return plugin, nil
}

func (s *PluginService) ListByOwner(ctx context.Context) ([]*models.Plugin, error) {
	ownerID, ok := authctx.UserID(ctx)
	if !ok {
		return nil, errors.New("未登录")
	}
	return s.PluginDAO.FindAllByWhere(ctx, "owner_id = ?", ownerID)
}

func (s *PluginService) SubmitForReview(ctx context.Context, pluginID uint64) error {
	return s.transition(ctx, pluginID, models.PluginStatusPendingReview, "")
}

func (s *PluginService) Approve(ctx context.Context, pluginID uint64, note string) error {
	return s.transition(ctx, pluginID, models.PluginStatusApproved, note)
}

func (s *PluginService) Reject(ctx context.Context, pluginID uint64, note string) error {
	return s.transition(ctx, pluginID, models.PluginStatusRejected, note)
}

func (s *PluginService) Deprecate(ctx context.Context, pluginID uint64) error {
	return s.transition(ctx, pluginID, models.PluginStatusDeprecated, "")
}

func (s *PluginService) ReturnToDraft(ctx context.Context, pluginID uint64) error {
	return s.transition(ctx, pluginID, models.PluginStatusDraft, "")
}

// transition 读当前状态→查邻接表→条件更新；
// WHERE status = 当前状态 的条件更新没改到行说明并发下状态已经变了
func (s *PluginService) transition(ctx context.Context, pluginID uint64, toStatus, note string) error {
	plugin, err := s.PluginDAO.GetByID(ctx, pluginID)
	if err != nil {
		return errors.New("插件不存在")
	}

	if !CanTransition(plugin.Status, toStatus) {
		return fmt.Errorf("不允许从 %s 迁移到 %s", plugin.Status, toStatus)
	}

	moved, err := s.PluginDAO.UpdateStatus(ctx, pluginID, plugin.Status, toStatus, note)
	if err != nil {
		return err
	}
	if !moved {
		return errors.New("插件状态已变化，请重试")
	}
	return nil
}

func (s *PluginService) Install(ctx context.Context, pluginID uint64) error {
	plugin, err := s.PluginDAO.GetByID(ctx, pluginID)
	if err != nil {
		return errors.New("插件不存在")
	}
	if plugin.Status != models.PluginStatusApproved {
		return errors.New("只有已上架的插件才能安装")
	}
	return s.PluginDAO.IncrInstallCount(ctx, pluginID, 1)
}

func (s *PluginService) Uninstall(ctx context.Context, pluginID uint64) error {
	if _, err := s.PluginDAO.GetByID(ctx, pluginID); err != nil {
		return errors.New("插件不存在")
	}
	return s.PluginDAO.IncrInstallCount(ctx, pluginID, -1)
}
