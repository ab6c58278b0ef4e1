package service

import (
	"Nexus/dao"
	"Nexus/models"
	"Nexus/pkg/authctx"
	"Nexus/pkg/snowflake"
	"Nexus/types"
	"context"
	"errors"
	"strings"

	"github.com/lib/pq"
)

var _ IResponseService = (*ResponseService)(nil)

type ResponseService struct {
	ResponseDAO *dao.ResponseDAO
	EntryDAO    *dao.EntryDAO
	Engagement  IEngagementService
	Bus         *EventBus
}

type IResponseService interface {
	CreateResponse(ctx context.Context, req *types.CreateResponseRequest) (*types.ResponseInfo, error)
	Applaud(ctx context.Context, responseID uint64) error
	Curate(ctx context.Context, responseID uint64) error
	ListRoots(ctx context.Context, entryID uint64, cursor int64, limit int) ([]*types.ResponseInfo, error)
	GetThread(ctx context.Context, responseID uint64) ([]*types.ResponseInfo, error)
	DeleteResponse(ctx context.Context, responseID uint64) error
}

// CreateResponse 发表回复。thread_path/thread_depth 在插入时一次算好：
// 顶级回复 depth=0、path=[自身]；子回复继承父路径再追加自身。
// 路径之后不再修改，有子回复的父回复视作不可变
func (s *ResponseService) CreateResponse(ctx context.Context, req *types.CreateResponseRequest) (*types.ResponseInfo, error) {
	userID, ok := authctx.UserID(ctx)
	if !ok {
		return nil, errors.New("未登录")
	}
	if err := validateResponseContent(req.Content); err != nil {
		return nil, err
	}

	entry, err := s.EntryDAO.GetByID(ctx, req.EntryID)
	if err != nil {
		return nil, errors.New("条目不存在")
	}

	resp := &models.SectionResponse{
		ID:         uint64(snowflake.GenID()),
		EntryID:    req.EntryID,
		SectionKey: req.SectionKey,
		UserID:     userID,
		ParentID:   req.ParentID,
		Content:    strings.TrimSpace(req.Content),
		Status:     1,
	}

	if req.ParentID != nil {
		parent, err := s.ResponseDAO.GetByID(ctx, *req.ParentID)
		if err != nil {
			return nil, errors.New("父回复不存在")
		}
		if parent.EntryID != req.EntryID {
			return nil, errors.New("父回复不属于该条目")
		}
		resp.ThreadDepth, resp.ThreadPath = threadPosition(parent, resp.ID)
	} else {
		resp.ThreadDepth, resp.ThreadPath = threadPosition(nil, resp.ID)
	}

	if err := s.ResponseDAO.Create(ctx, resp); err != nil {
		return nil, err
	}

	s.Bus.Publish(ctx, Event{
		Kind:       EventResponseCreated,
		EntryID:    resp.EntryID,
		ResponseID: resp.ID,
		ParentID:   resp.ParentID,
		UserID:     userID,
	})

	// 参与度信号挂在条目的话题上
	if err := s.Engagement.RecordInteraction(ctx, entry.Topics, models.InteractionResponse); err != nil {
		return nil, err
	}

	return toResponseInfo(resp), nil
}

// Applaud 鼓掌：计数与热度走事件回调，参与度信号记在条目话题上
func (s *ResponseService) Applaud(ctx context.Context, responseID uint64) error {
	resp, err := s.ResponseDAO.GetByID(ctx, responseID)
	if err != nil {
		return errors.New("回复不存在")
	}

	entry, err := s.EntryDAO.GetByID(ctx, resp.EntryID)
	if err != nil {
		return err
	}

	s.Bus.Publish(ctx, Event{
		Kind:       EventResponseApplauded,
		EntryID:    resp.EntryID,
		ResponseID: responseID,
	})
	return s.Engagement.RecordInteraction(ctx, entry.Topics, models.InteractionApplaud)
}

// Curate 精选
func (s *ResponseService) Curate(ctx context.Context, responseID uint64) error {
	if _, err := s.ResponseDAO.GetByID(ctx, responseID); err != nil {
		return errors.New("回复不存在")
	}

	s.Bus.Publish(ctx, Event{
		Kind:       EventResponseCurated,
		ResponseID: responseID,
	})
	return nil
}

// ListRoots 游标翻页取条目的顶级回复
func (s *ResponseService) ListRoots(ctx context.Context, entryID uint64, cursor int64, limit int) ([]*types.ResponseInfo, error) {
	if limit <= 0 {
		limit = 20
	}

	roots, err := s.ResponseDAO.GetRootsByCursor(ctx, entryID, cursor, limit)
	if err != nil {
		return nil, err
	}

	infos := make([]*types.ResponseInfo, 0, len(roots))
	for _, r := range roots {
		infos = append(infos, toResponseInfo(r))
	}
	return infos, nil
}

// GetThread 取某回复及其全部后代，按物化路径排序
func (s *ResponseService) GetThread(ctx context.Context, responseID uint64) ([]*types.ResponseInfo, error) {
	root, err := s.ResponseDAO.GetByID(ctx, responseID)
	if err != nil {
		return nil, errors.New("回复不存在")
	}

	descendants, err := s.ResponseDAO.ListDescendants(ctx, responseID)
	if err != nil {
		return nil, err
	}

	infos := make([]*types.ResponseInfo, 0, len(descendants)+1)
	infos = append(infos, toResponseInfo(root))
	for _, d := range descendants {
		infos = append(infos, toResponseInfo(d))
	}
	return infos, nil
}

func (s *ResponseService) DeleteResponse(ctx context.Context, responseID uint64) error {
	userID, ok := authctx.UserID(ctx)
	if !ok {
		return errors.New("未登录")
	}

	resp, err := s.ResponseDAO.GetByID(ctx, responseID)
	if err != nil {
		return errors.New("回复不存在")
	}
	if resp.UserID != userID {
		return errors.New("无权删除该回复")
	}

	if err := s.ResponseDAO.Delete(ctx, responseID); err != nil {
		return err
	}
	if err := s.EntryDAO.IncrResponseCount(ctx, resp.EntryID, -1); err != nil {
		return err
	}
	if resp.ParentID != nil {
		return s.ResponseDAO.IncrReplyCount(ctx, *resp.ParentID, -1)
	}
	return nil
}

// threadPosition 算回复在讨论串里的位置：父为空时 depth=0、path=[自身]，
// 否则 depth=父+1、path=父路径追加自身
func threadPosition(parent *models.SectionResponse, selfID uint64) (int, pq.Int64Array) {
	if parent == nil {
		return 0, pq.Int64Array{int64(selfID)}
	}

	path := make(pq.Int64Array, 0, len(parent.ThreadPath)+1)
	path = append(path, parent.ThreadPath...)
	path = append(path, int64(selfID))
	return parent.ThreadDepth + 1, path
}

func validateResponseContent(content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return errors.New("回复内容不能为空")
	}
	if len(content) > 2000 {
		return errors.New("回复内容不能超过2000个字符")
	}
	return nil
}

func toResponseInfo(resp *models.SectionResponse) *types.ResponseInfo {
	return &types.ResponseInfo{
		ID:            resp.ID,
		EntryID:       resp.EntryID,
		UserID:        resp.UserID,
		ParentID:      resp.ParentID,
		Content:       resp.Content,
		ThreadDepth:   resp.ThreadDepth,
		ThreadPath:    resp.ThreadPath,
		ReplyCount:    resp.ReplyCount,
		ApplaudCount:  resp.ApplaudCount,
		CurationCount: resp.CurationCount,
		TractionScore: resp.TractionScore,
		CreatedAt:     resp.CreatedAt,
	}
}
