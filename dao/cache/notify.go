package cache

import (
	"Nexus/pkg/log"
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// 每人每天的通知机会上限
const (
	notifyDailyCap      = 3
	notifyKeyExpiration = 24 * time.Hour
)

// NotifyLimiter 每日通知限流器
// INCR 本身是原子的，调用方只在自己拿到的自增值 <= 上限时获得配额，
// 超限的自增会回滚但绝不会放行，所以并发下也不会超发
type NotifyLimiter struct {
	redis *redis.Client
}

func NewNotifyLimiter(rds *redis.Client) *NotifyLimiter {
	return &NotifyLimiter{redis: rds}
}

// Allow 尝试占用一次今日通知机会
func (n *NotifyLimiter) Allow(ctx context.Context, uid uint64) (bool, error) {
	name := n.name(uid, time.Now())

	count, err := n.redis.Incr(ctx, name).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		// 设置过期失败时 key 会常驻，记下来便于排查
		if err := n.redis.Expire(ctx, name, notifyKeyExpiration).Err(); err != nil {
			log.L.Error("set notify key expiration failed",
				zap.String("key", name), zap.Error(err))
		}
	}

	if count > notifyDailyCap {
		n.redis.Decr(ctx, name)
		return false, nil
	}
	return true, nil
}

// Remaining 今日剩余机会；key 不存在表示今天还没用过
func (n *NotifyLimiter) Remaining(ctx context.Context, uid uint64) (int, error) {
	count, err := n.redis.Get(ctx, n.name(uid, time.Now())).Int()
	if err == redis.Nil {
		return notifyDailyCap, nil
	}
	if err != nil {
		return 0, err
	}
	if count >= notifyDailyCap {
		return 0, nil
	}
	return notifyDailyCap - count, nil
}

// notify:opportunity:uid:20060102
func (n *NotifyLimiter) name(uid uint64, day time.Time) string {
	return fmt.Sprintf("notify:opportunity:%d:%s", uid, day.Format("20060102"))
}
