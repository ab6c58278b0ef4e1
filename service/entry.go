package service

import (
	"Nexus/dao"
	"Nexus/models"
	"Nexus/pkg/authctx"
	"Nexus/pkg/embedding"
	"Nexus/pkg/log"
	"Nexus/pkg/snowflake"
	"Nexus/types"
	"context"
	"errors"
	"strings"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IEntryService = (*EntryService)(nil)

type EntryService struct {
	EntryDAO   *dao.EntryDAO
	TopicDAO   *dao.TopicDAO
	Engagement IEngagementService
	Embedder   *embedding.Client
	Bus        *EventBus
}

type IEntryService interface {
	CreateEntry(ctx context.Context, req *types.CreateEntryRequest) (*types.CreateEntryResponse, error)
	PublishEntry(ctx context.Context, entryID uint64) error
	ArchiveEntry(ctx context.Context, entryID uint64) error
	GetEntry(ctx context.Context, entryID uint64) (*models.Entry, error)
	LinkEntries(ctx context.Context, sourceID, targetID uint64) error
	ReindexEmbeddings(ctx context.Context, batchSize int) (int, error)
}

// CreateEntry 创建内容条目。user_id 允许为空（匿名发布）；
// 向量化是尽力而为：embedding 服务不可用时条目照常落库，向量留空等 reindex 补算
func (s *EntryService) CreateEntry(ctx context.Context, req *types.CreateEntryRequest) (*types.CreateEntryResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errors.New("标题不能为空")
	}
	if len(title) > 200 {
		return nil, errors.New("标题不能超过200个字符")
	}

	entry := &models.Entry{
		ID:      uint64(snowflake.GenID()),
		Title:   title,
		Content: req.Content,
		Topics:  normalizeTopics(req.Topics),
		Status:  models.EntryStatusDraft,
	}
	if userID, ok := authctx.UserID(ctx); ok {
		entry.UserID = &userID
	}
	if req.Publish {
		entry.Status = models.EntryStatusPublished
	}

	s.fillEmbeddings(ctx, entry)

	if err := s.EntryDAO.Create(ctx, entry); err != nil {
		return nil, err
	}

	if entry.Status == models.EntryStatusPublished {
		if err := s.onPublished(ctx, entry); err != nil {
			return nil, err
		}
	}

	return &types.CreateEntryResponse{ID: entry.ID, Status: entry.Status}, nil
}

// PublishEntry 草稿转发布，重复发布会重复累计参与度（与新发一致，不去重）
func (s *EntryService) PublishEntry(ctx context.Context, entryID uint64) error {
	entry, err := s.EntryDAO.GetByID(ctx, entryID)
	if err != nil {
		return errors.New("条目不存在")
	}
	if entry.Status == models.EntryStatusArchived {
		return errors.New("已归档的条目不能发布")
	}

	if err := s.EntryDAO.UpdateStatus(ctx, entryID, models.EntryStatusPublished); err != nil {
		return err
	}
	return s.onPublished(ctx, entry)
}

// ArchiveEntry 软归档，条目从检索结果中消失但数据保留
func (s *EntryService) ArchiveEntry(ctx context.Context, entryID uint64) error {
	if _, err := s.EntryDAO.GetByID(ctx, entryID); err != nil {
		return errors.New("条目不存在")
	}
	return s.EntryDAO.UpdateStatus(ctx, entryID, models.EntryStatusArchived)
}

func (s *EntryService) GetEntry(ctx context.Context, entryID uint64) (*models.Entry, error) {
	return s.EntryDAO.GetByID(ctx, entryID)
}

// LinkEntries 两个条目互相关联，两端的关联计数各加一
func (s *EntryService) LinkEntries(ctx context.Context, sourceID, targetID uint64) error {
	if sourceID == targetID {
		return errors.New("条目不能关联自己")
	}
	if _, err := s.EntryDAO.GetByID(ctx, sourceID); err != nil {
		return errors.New("条目不存在")
	}
	if _, err := s.EntryDAO.GetByID(ctx, targetID); err != nil {
		return errors.New("条目不存在")
	}

	// 两端计数在同一事务里增减，不会出现只加了一边
	return s.EntryDAO.Transaction(ctx, func(tx *gorm.DB) error {
		for _, id := range []uint64{sourceID, targetID} {
			if err := tx.Exec(
				"UPDATE entries SET relation_count = GREATEST(relation_count + 1, 0), updated_at = now() WHERE id = ?",
				id,
			).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ReindexEmbeddings 给缺失合并向量的已发布条目补算，返回实际补上的条数
func (s *EntryService) ReindexEmbeddings(ctx context.Context, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = 100
	}

	entries, err := s.EntryDAO.ListMissingEmbeddings(ctx, batchSize)
	if err != nil {
		return 0, err
	}

	done := 0
	for _, entry := range entries {
		title, content, combined, err := s.embedEntry(ctx, entry)
		if err != nil {
			log.L.Error("reindex embed failed",
				zap.Uint64("entry_id", entry.ID), zap.Error(err))
			continue
		}
		if err := s.EntryDAO.UpdateEmbeddings(ctx, entry.ID, title, content, combined); err != nil {
			return done, err
		}
		done++
	}
	return done, nil
}

// onPublished 发布时的联动：保证话题行存在并增加使用计数，再记一次发布参与度
func (s *EntryService) onPublished(ctx context.Context, entry *models.Entry) error {
	topicIDs := make([]uint64, 0, len(entry.Topics))
	for _, slug := range entry.Topics {
		topicID, err := s.TopicDAO.EnsureTopic(ctx, slug, slug)
		if err != nil {
			return err
		}
		topicIDs = append(topicIDs, topicID)
	}

	s.Bus.Publish(ctx, Event{
		Kind:     EventEntryPublished,
		EntryID:  entry.ID,
		TopicIDs: topicIDs,
	})

	return s.Engagement.RecordInteraction(ctx, entry.Topics, models.InteractionPublish)
}

func (s *EntryService) fillEmbeddings(ctx context.Context, entry *models.Entry) {
	title, content, combined, err := s.embedEntry(ctx, entry)
	if err != nil {
		log.L.Warn("embed on create failed, entry saved without vectors",
			zap.Uint64("entry_id", entry.ID), zap.Error(err))
		return
	}
	entry.TitleEmbedding = &title
	entry.ContentEmbedding = &content
	entry.CombinedEmbedding = &combined
}

func (s *EntryService) embedEntry(ctx context.Context, entry *models.Entry) (title, content, combined pgvector.Vector, err error) {
	plain := extractPlainText(entry.Content)
	vecs, err := s.Embedder.EmbedTexts(ctx, []string{
		entry.Title,
		plain,
		entry.Title + "\n" + plain,
	})
	if err != nil {
		return
	}
	return vecs[0], vecs[1], vecs[2], nil
}

// extractPlainText 从富文本 JSON 里收集所有 text 字段拼成纯文本，
// 结构未知时退化为原串
func extractPlainText(content []byte) string {
	if len(content) == 0 {
		return ""
	}
	if !gjson.ValidBytes(content) {
		return string(content)
	}

	var parts []string
	collectText(gjson.ParseBytes(content), &parts)
	if len(parts) == 0 {
		return gjson.ParseBytes(content).String()
	}
	return strings.Join(parts, " ")
}

func collectText(v gjson.Result, parts *[]string) {
	switch {
	case v.IsObject():
		if text := v.Get("text"); text.Type == gjson.String && text.Str != "" {
			*parts = append(*parts, text.Str)
		}
		v.ForEach(func(key, child gjson.Result) bool {
			if key.Str != "text" {
				collectText(child, parts)
			}
			return true
		})
	case v.IsArray():
		v.ForEach(func(_, child gjson.Result) bool {
			collectText(child, parts)
			return true
		})
	}
}

// normalizeTopics 小写去重，保持首次出现的顺序
func normalizeTopics(topics []string) pq.StringArray {
	seen := make(map[string]struct{}, len(topics))
	out := make(pq.StringArray, 0, len(topics))
	for _, raw := range topics {
		slug := normalizeSlug(raw)
		if slug == "" {
			continue
		}
		if _, ok := seen[slug]; ok {
			continue
		}
		seen[slug] = struct{}{}
		out = append(out, slug)
	}
	return out
}
