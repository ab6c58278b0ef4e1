package service

import (
	"Nexus/dao"
	"context"

	"gorm.io/gorm"
)

// CounterService 订阅领域事件维护各处冗余计数，并在计数变化后刷新热度分。
// 计数是缓存性质的快照，写路径不内联重算
type CounterService struct {
	EntryDAO    *dao.EntryDAO
	ResponseDAO *dao.ResponseDAO
	TopicDAO    *dao.TopicDAO
}

func NewCounterService(bus *EventBus, entryDAO *dao.EntryDAO, responseDAO *dao.ResponseDAO, topicDAO *dao.TopicDAO) *CounterService {
	s := &CounterService{
		EntryDAO:    entryDAO,
		ResponseDAO: responseDAO,
		TopicDAO:    topicDAO,
	}
	bus.Subscribe(EventEntryPublished, s.onEntryPublished)
	bus.Subscribe(EventResponseCreated, s.onResponseCreated)
	bus.Subscribe(EventResponseApplauded, s.onResponseApplauded)
	bus.Subscribe(EventResponseCurated, s.onResponseCurated)
	return s
}

func (s *CounterService) onEntryPublished(ctx context.Context, evt Event) error {
	for _, topicID := range evt.TopicIDs {
		if err := s.TopicDAO.IncrUsage(ctx, topicID, 1); err != nil {
			return err
		}
	}
	return nil
}

func (s *CounterService) onResponseCreated(ctx context.Context, evt Event) error {
	if err := s.EntryDAO.IncrResponseCount(ctx, evt.EntryID, 1); err != nil {
		return err
	}
	if evt.ParentID == nil {
		return nil
	}
	if err := s.ResponseDAO.IncrReplyCount(ctx, *evt.ParentID, 1); err != nil {
		return err
	}
	return s.refreshTraction(ctx, *evt.ParentID)
}

func (s *CounterService) onResponseApplauded(ctx context.Context, evt Event) error {
	if err := s.ResponseDAO.IncrApplaudCount(ctx, evt.ResponseID, 1); err != nil {
		return err
	}
	return s.refreshTraction(ctx, evt.ResponseID)
}

func (s *CounterService) onResponseCurated(ctx context.Context, evt Event) error {
	if err := s.ResponseDAO.IncrCurationCount(ctx, evt.ResponseID, 1); err != nil {
		return err
	}
	return s.refreshTraction(ctx, evt.ResponseID)
}

// refreshTraction 用最新计数重算热度分；行已被软删时跳过
func (s *CounterService) refreshTraction(ctx context.Context, responseID uint64) error {
	resp, err := s.ResponseDAO.GetByID(ctx, responseID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}

	score := TractionScore(resp.ReplyCount, resp.ApplaudCount, resp.CurationCount)
	return s.ResponseDAO.UpdateTraction(ctx, responseID, score)
}
