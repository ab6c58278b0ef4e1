package service

import (
	"Nexus/dao"
	"Nexus/types"
	"context"
	"errors"
	"sort"

	"github.com/pgvector/pgvector-go"
)

var _ ISearchService = (*SearchService)(nil)

type SearchService struct {
	EntryDAO *dao.EntryDAO
}

type ISearchService interface {
	Search(ctx context.Context, req *types.SearchRequest) ([]*types.SearchResult, error)
}

// Search 语义+关键词混合检索：
// 查询向量为空则语义分恒为 0（纯关键词检索），查询文本为空则关键词分恒为 0（纯语义检索），
// 加权后的分值不做归一化，权重搭配由调用方负责（通常加和为 1）。只读，无副作用
func (s *SearchService) Search(ctx context.Context, req *types.SearchRequest) ([]*types.SearchResult, error) {
	q, err := normalizeSearchRequest(req)
	if err != nil {
		return nil, err
	}

	candidates, err := s.EntryDAO.SearchCandidates(ctx, q)
	if err != nil {
		return nil, err
	}

	return rankCandidates(candidates, q), nil
}

// normalizeSearchRequest 补默认值：阈值 0.6、条数 20、语义权重 0.7、关键词权重 0.3
func normalizeSearchRequest(req *types.SearchRequest) (*types.SearchQuery, error) {
	if req == nil || (req.Query == "" && len(req.Embedding) == 0) {
		return nil, errors.New("查询文本和查询向量至少要有一个")
	}

	q := &types.SearchQuery{
		Text:           req.Query,
		Threshold:      types.DefaultSimilarityThreshold,
		Limit:          req.Limit,
		TopicFilter:    req.TopicFilter,
		SemanticWeight: types.DefaultSemanticWeight,
		KeywordWeight:  types.DefaultKeywordWeight,
	}
	if req.Threshold != nil {
		q.Threshold = *req.Threshold
	}
	if q.Limit <= 0 {
		q.Limit = types.DefaultSearchLimit
	}
	if req.SemanticWeight != nil {
		q.SemanticWeight = *req.SemanticWeight
	}
	if req.KeywordWeight != nil {
		q.KeywordWeight = *req.KeywordWeight
	}
	if len(req.Embedding) > 0 {
		vec := pgvector.NewVector(req.Embedding)
		q.Embedding = &vec
	}
	return q, nil
}

// rankCandidates 纯内存的打分排序：过滤谓词与候选查询一致
// （semantic >= threshold 或 keyword > 0），按加权分降序，同分按 id 降序保证确定性
func rankCandidates(candidates []*types.SearchCandidate, q *types.SearchQuery) []*types.SearchResult {
	results := make([]*types.SearchResult, 0, len(candidates))
	for _, c := range candidates {
		if c.SemanticScore < q.Threshold && c.KeywordScore <= 0 {
			continue
		}
		results = append(results, &types.SearchResult{
			ID:            c.ID,
			Title:         c.Title,
			Content:       c.Content,
			Topics:        c.Topics,
			UserID:        c.UserID,
			CreatedAt:     c.CreatedAt,
			SemanticScore: c.SemanticScore,
			KeywordScore:  c.KeywordScore,
			HybridScore:   hybridScore(c.SemanticScore, c.KeywordScore, q),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].HybridScore != results[j].HybridScore {
			return results[i].HybridScore > results[j].HybridScore
		}
		return results[i].ID > results[j].ID
	})

	if len(results) > q.Limit {
		results = results[:q.Limit]
	}
	return results
}

func hybridScore(semantic, keyword float64, q *types.SearchQuery) float64 {
	return semantic*q.SemanticWeight + keyword*q.KeywordWeight
}
