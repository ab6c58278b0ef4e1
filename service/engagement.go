package service

import (
	"Nexus/dao"
	"Nexus/models"
	"Nexus/pkg/authctx"
	"context"
	"strings"
	"time"
)

// 各互动类型的参与度权重，未知类型按 1 计
const (
	weightPublish  = 3
	weightResponse = 2
	weightApplaud  = 1
	weightDefault  = 1
)

var _ IEngagementService = (*EngagementService)(nil)

type EngagementService struct {
	TopicDAO      *dao.TopicDAO
	EngagementDAO *dao.EngagementDAO
	PreferenceDAO *dao.PreferenceDAO
}

type IEngagementService interface {
	RecordInteraction(ctx context.Context, topicSlugs []string, kind string) error
	GetEngagement(ctx context.Context, userID, topicID uint64) (*models.UserTopicEngagement, error)
	TopTopics(ctx context.Context, userID uint64, limit int) ([]*models.UserTopicEngagement, error)
	GetTopic(ctx context.Context, slug string) (*models.Topic, error)
	HotTopics(ctx context.Context, limit int) ([]*models.Topic, error)
	DecayEngagement(ctx context.Context, userID, topicID uint64, amount int64) error
	RecordPreferenceSignal(ctx context.Context, topicID uint64, positive bool) error
	GetPreference(ctx context.Context, userID, topicID uint64) (*models.TopicPreference, error)
}

// RecordInteraction 给当前用户记一次带权互动：
// 未登录、空数组都直接无操作返回；trim 后为空的 slug 单独跳过，不影响同批其他话题。
// 同一信号重复提交会重复累加（不去重），分值与计数每次都增长同样的增量
func (s *EngagementService) RecordInteraction(ctx context.Context, topicSlugs []string, kind string) error {
	userID, ok := authctx.UserID(ctx)
	if !ok {
		return nil
	}
	if len(topicSlugs) == 0 {
		return nil
	}

	weight, publishInc, responseInc, applaudInc := interactionIncrements(kind)
	engagedAt := time.Now()

	for _, raw := range topicSlugs {
		slug := normalizeSlug(raw)
		if slug == "" {
			continue
		}

		topicID, err := s.TopicDAO.EnsureTopic(ctx, slug, strings.TrimSpace(raw))
		if err != nil {
			return err
		}

		if err := s.EngagementDAO.Accumulate(ctx, userID, topicID, weight,
			publishInc, responseInc, applaudInc, engagedAt); err != nil {
			return err
		}
	}
	return nil
}

func (s *EngagementService) GetEngagement(ctx context.Context, userID, topicID uint64) (*models.UserTopicEngagement, error) {
	return s.EngagementDAO.Get(ctx, userID, topicID)
}

func (s *EngagementService) TopTopics(ctx context.Context, userID uint64, limit int) ([]*models.UserTopicEngagement, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.EngagementDAO.ListByUser(ctx, userID, limit)
}

// GetTopic 按 slug 查话题，不存在时返回 nil
func (s *EngagementService) GetTopic(ctx context.Context, slug string) (*models.Topic, error) {
	return s.TopicDAO.FindBySlug(ctx, normalizeSlug(slug))
}

// HotTopics 全站热门话题，按使用量和最近使用时间
func (s *EngagementService) HotTopics(ctx context.Context, limit int) ([]*models.Topic, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.TopicDAO.GetHotTopics(ctx, limit)
}

// DecayEngagement 显式衰减某个 (user, topic) 的参与度，离线任务调用
func (s *EngagementService) DecayEngagement(ctx context.Context, userID, topicID uint64, amount int64) error {
	if amount <= 0 {
		return nil
	}
	return s.EngagementDAO.Decay(ctx, userID, topicID, amount)
}

// RecordPreferenceSignal 记录一次正/负偏好反馈并重算偏好强度
func (s *EngagementService) RecordPreferenceSignal(ctx context.Context, topicID uint64, positive bool) error {
	userID, ok := authctx.UserID(ctx)
	if !ok {
		return nil
	}

	var posInc, negInc int64
	if positive {
		posInc = 1
	} else {
		negInc = 1
	}
	// 首次插入时的 intensity 由 Go 侧公式给出，冲突路径由 SQL 里的同一公式重算
	initial := LearnedIntensity(posInc, negInc)
	return s.PreferenceDAO.AddSignal(ctx, userID, topicID, posInc, negInc, initial)
}

func (s *EngagementService) GetPreference(ctx context.Context, userID, topicID uint64) (*models.TopicPreference, error) {
	return s.PreferenceDAO.Get(ctx, userID, topicID)
}

// interactionWeight publish=3 response=2 applaud=1，其余按 1
func interactionWeight(kind string) int64 {
	switch kind {
	case models.InteractionPublish:
		return weightPublish
	case models.InteractionResponse:
		return weightResponse
	case models.InteractionApplaud:
		return weightApplaud
	default:
		return weightDefault
	}
}

// interactionIncrements 一次互动落库的全部增量：
// 分值按权重走，对应类型的计数加一，未知类型只加分值。
// 每次调用都给出同样的增量，重复提交就重复累加
func interactionIncrements(kind string) (weight, publishInc, responseInc, applaudInc int64) {
	weight = interactionWeight(kind)
	switch kind {
	case models.InteractionPublish:
		publishInc = 1
	case models.InteractionResponse:
		responseInc = 1
	case models.InteractionApplaud:
		applaudInc = 1
	}
	return weight, publishInc, responseInc, applaudInc
}

// normalizeSlug 小写并去掉首尾空白
func normalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}
