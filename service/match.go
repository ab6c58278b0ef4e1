package service

import (
	"Nexus/dao"
	"Nexus/models"
	"Nexus/pkg/authctx"
	"Nexus/pkg/snowflake"
	"context"
	"errors"
)

var _ IMatchService = (*MatchService)(nil)

type MatchService struct {
	MatchDAO *dao.MatchDAO
}

type IMatchService interface {
	Swipe(ctx context.Context, targetID uint64, direction string) (*models.Match, error)
	RateUser(ctx context.Context, ratedID uint64, score int, confidence float64) error
	ListMatches(ctx context.Context, limit int) ([]*models.Match, error)
}

// Swipe 记录一次滑动；双方互为右滑时生成配对并返回，否则返回 nil。
// 配对行按 user1_id < user2_id 的规范顺序落库，并发下靠唯一键 DO NOTHING 保证不重复
func (s *MatchService) Swipe(ctx context.Context, targetID uint64, direction string) (*models.Match, error) {
	userID, ok := authctx.UserID(ctx)
	if !ok {
		return nil, errors.New("未登录")
	}
	if userID == targetID {
		return nil, errors.New("不能对自己滑动")
	}
	if direction != models.SwipeDirectionLeft && direction != models.SwipeDirectionRight {
		return nil, errors.New("非法的滑动方向")
	}

	swipe := &models.Swipe{
		ID:        uint64(snowflake.GenID()),
		SwiperID:  userID,
		TargetID:  targetID,
		Direction: direction,
	}
	if err := s.MatchDAO.CreateSwipe(ctx, swipe); err != nil {
		return nil, err
	}
	if direction != models.SwipeDirectionRight {
		return nil, nil
	}

	mutual, err := s.MatchDAO.HasRightSwipe(ctx, targetID, userID)
	if err != nil {
		return nil, err
	}
	if !mutual {
		return nil, nil
	}

	user1, user2 := orderedPair(userID, targetID)
	match := &models.Match{
		ID:      uint64(snowflake.GenID()),
		User1ID: user1,
		User2ID: user2,
		Status:  models.MatchStatusActive,
	}
	if err := s.MatchDAO.CreateMatch(ctx, match); err != nil {
		return nil, err
	}
	// 并发互滑时两边都走到这里，以库里那行为准
	return s.MatchDAO.GetMatch(ctx, user1, user2)
}

// RateUser 评分 [0,100]、置信度 [0,1]，同一评分人对同一被评人只保留最新一次
func (s *MatchService) RateUser(ctx context.Context, ratedID uint64, score int, confidence float64) error {
	userID, ok := authctx.UserID(ctx)
	if !ok {
		return errors.New("未登录")
	}
	if userID == ratedID {
		return errors.New("不能给自己评分")
	}
	if score < 0 || score > 100 {
		return errors.New("评分要在 0 到 100 之间")
	}
	if confidence < 0 || confidence > 1 {
		return errors.New("置信度要在 0 到 1 之间")
	}

	return s.MatchDAO.UpsertRating(ctx, &models.Rating{
		ID:         uint64(snowflake.GenID()),
		RaterID:    userID,
		RatedID:    ratedID,
		Score:      score,
		Confidence: confidence,
	})
}

func (s *MatchService) ListMatches(ctx context.Context, limit int) ([]*models.Match, error) {
	userID, ok := authctx.UserID(ctx)
	if !ok {
		return nil, errors.New("未登录")
	}
	if limit <= 0 {
		limit = 50
	}
	return s.MatchDAO.ListByUser(ctx, userID, limit)
}

// orderedPair 无序对转规范顺序
func orderedPair(a, b uint64) (uint64, uint64) {
	if a < b {
		return a, b
	}
	return b, a
}
