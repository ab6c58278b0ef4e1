package service

import (
	"Nexus/dao/cache"
	"Nexus/pkg/log"
	"context"

	"go.uber.org/zap"
)

var _ INotifyService = (*NotifyService)(nil)

// NotifyService 机会通知：每人每天最多放行三条，配额判定在 redis 侧原子完成
type NotifyService struct {
	Limiter *cache.NotifyLimiter
}

type INotifyService interface {
	TryNotify(ctx context.Context, userID uint64, kind string) (bool, error)
	Remaining(ctx context.Context, userID uint64) (int, error)
}

// TryNotify 尝试给用户发一条机会通知，配额用尽时静默丢弃并返回 false
func (s *NotifyService) TryNotify(ctx context.Context, userID uint64, kind string) (bool, error) {
	granted, err := s.Limiter.Allow(ctx, userID)
	if err != nil {
		return false, err
	}
	if !granted {
		log.L.Info("notify opportunity suppressed, daily cap reached",
			zap.Uint64("user_id", userID),
			zap.String("kind", kind))
		return false, nil
	}

	// 实际投递走站内信/推送通道，这里只负责配额判定与记录
	log.L.Info("notify opportunity granted",
		zap.Uint64("user_id", userID),
		zap.String("kind", kind))
	return true, nil
}

func (s *NotifyService) Remaining(ctx context.Context, userID uint64) (int, error) {
	return s.Limiter.Remaining(ctx, userID)
}
