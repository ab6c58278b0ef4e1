package service

import (
	"Nexus/types"
	"testing"
)

func TestNormalizeSearchRequest_Defaults(t *testing.T) {
	q, err := normalizeSearchRequest(&types.SearchRequest{Query: "golang"})
	if err != nil {
		t.Fatal(err)
	}
	if q.Threshold != 0.6 {
		t.Errorf("default threshold = %f, want 0.6", q.Threshold)
	}
	if q.Limit != 20 {
		t.Errorf("default limit = %d, want 20", q.Limit)
	}
	if q.SemanticWeight != 0.7 || q.KeywordWeight != 0.3 {
		t.Errorf("default weights = %f/%f, want 0.7/0.3", q.SemanticWeight, q.KeywordWeight)
	}
	if q.Embedding != nil {
		t.Error("no embedding in request, query should carry none")
	}
}

func TestNormalizeSearchRequest_Overrides(t *testing.T) {
	threshold, semW, kwW := 0.4, 0.5, 0.5
	q, err := normalizeSearchRequest(&types.SearchRequest{
		Query:          "golang",
		Embedding:      []float32{0.1, 0.2},
		Threshold:      &threshold,
		Limit:          5,
		SemanticWeight: &semW,
		KeywordWeight:  &kwW,
	})
	if err != nil {
		t.Fatal(err)
	}
	if q.Threshold != 0.4 || q.Limit != 5 || q.SemanticWeight != 0.5 || q.KeywordWeight != 0.5 {
		t.Errorf("overrides not applied: %+v", q)
	}
	if q.Embedding == nil {
		t.Fatal("embedding should be carried into the query")
	}
}

// 文本和向量都缺时报错
func TestNormalizeSearchRequest_Empty(t *testing.T) {
	if _, err := normalizeSearchRequest(nil); err == nil {
		t.Fatal("nil request should fail")
	}
	if _, err := normalizeSearchRequest(&types.SearchRequest{}); err == nil {
		t.Fatal("empty request should fail")
	}
}

func defaultQuery() *types.SearchQuery {
	return &types.SearchQuery{
		Threshold:      types.DefaultSimilarityThreshold,
		Limit:          types.DefaultSearchLimit,
		SemanticWeight: types.DefaultSemanticWeight,
		KeywordWeight:  types.DefaultKeywordWeight,
	}
}

// 过滤谓词：语义分达到阈值或关键词命中才留下
func TestRankCandidates_Filter(t *testing.T) {
	candidates := []*types.SearchCandidate{
		{ID: 1, SemanticScore: 0.9, KeywordScore: 0},  // 语义过线
		{ID: 2, SemanticScore: 0.3, KeywordScore: 1},  // 只靠关键词
		{ID: 3, SemanticScore: 0.59, KeywordScore: 0}, // 两边都不够
		{ID: 4, SemanticScore: 0.6, KeywordScore: 0},  // 正好在阈值上
	}

	results := rankCandidates(candidates, defaultQuery())
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, r := range results {
		if r.ID == 3 {
			t.Fatal("candidate below threshold with no keyword hit should be dropped")
		}
	}
}

// 语义分更高的候选排名不会更低（关键词分相同时）
func TestRankCandidates_Monotonic(t *testing.T) {
	candidates := []*types.SearchCandidate{
		{ID: 1, SemanticScore: 0.7, KeywordScore: 1},
		{ID: 2, SemanticScore: 0.9, KeywordScore: 1},
		{ID: 3, SemanticScore: 0.8, KeywordScore: 1},
	}

	results := rankCandidates(candidates, defaultQuery())
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].ID != 2 || results[1].ID != 3 || results[2].ID != 1 {
		t.Fatalf("unexpected order: %d, %d, %d", results[0].ID, results[1].ID, results[2].ID)
	}
	for i := 1; i < len(results); i++ {
		if results[i].HybridScore > results[i-1].HybridScore {
			t.Fatal("hybrid scores not in descending order")
		}
	}
}

// 权重边界：纯语义权重时关键词分不影响排序，反之亦然
func TestRankCandidates_WeightBoundary(t *testing.T) {
	candidates := []*types.SearchCandidate{
		{ID: 1, SemanticScore: 0.9, KeywordScore: 0},
		{ID: 2, SemanticScore: 0.7, KeywordScore: 1},
	}

	q := defaultQuery()
	q.SemanticWeight = 1
	q.KeywordWeight = 0
	results := rankCandidates(candidates, q)
	if results[0].ID != 1 {
		t.Fatalf("with pure semantic weight expected id 1 first, got %d", results[0].ID)
	}

	q.SemanticWeight = 0
	q.KeywordWeight = 1
	results = rankCandidates(candidates, q)
	if results[0].ID != 2 {
		t.Fatalf("with pure keyword weight expected id 2 first, got %d", results[0].ID)
	}
}

// 放宽阈值只会多出结果，不会丢掉原有结果
func TestRankCandidates_ThresholdSuperset(t *testing.T) {
	candidates := []*types.SearchCandidate{
		{ID: 1, SemanticScore: 0.9, KeywordScore: 0},
		{ID: 2, SemanticScore: 0.75, KeywordScore: 0},
		{ID: 3, SemanticScore: 0.55, KeywordScore: 0},
		{ID: 4, SemanticScore: 0.3, KeywordScore: 1},
	}

	strict := defaultQuery()
	strict.Threshold = 0.8
	loose := defaultQuery()
	loose.Threshold = 0.5

	strictIDs := make(map[uint64]struct{})
	for _, r := range rankCandidates(candidates, strict) {
		strictIDs[r.ID] = struct{}{}
	}
	looseIDs := make(map[uint64]struct{})
	for _, r := range rankCandidates(candidates, loose) {
		looseIDs[r.ID] = struct{}{}
	}

	if len(looseIDs) <= len(strictIDs) {
		t.Fatalf("lowering the threshold should admit more results: strict %d, loose %d",
			len(strictIDs), len(looseIDs))
	}
	for id := range strictIDs {
		if _, ok := looseIDs[id]; !ok {
			t.Fatalf("id %d passed threshold 0.8 but vanished at 0.5", id)
		}
	}
	// 关键词命中的候选在两边都要留下
	if _, ok := strictIDs[4]; !ok {
		t.Fatal("keyword hit should survive the strict threshold")
	}
}

func TestRankCandidates_LimitAndTiebreak(t *testing.T) {
	candidates := []*types.SearchCandidate{
		{ID: 5, SemanticScore: 0.8, KeywordScore: 0},
		{ID: 9, SemanticScore: 0.8, KeywordScore: 0},
		{ID: 7, SemanticScore: 0.8, KeywordScore: 0},
	}

	q := defaultQuery()
	q.Limit = 2
	results := rankCandidates(candidates, q)
	if len(results) != 2 {
		t.Fatalf("expected limit to cap results at 2, got %d", len(results))
	}
	// 同分按 id 降序，保证分页稳定
	if results[0].ID != 9 || results[1].ID != 7 {
		t.Fatalf("tiebreak order wrong: %d, %d", results[0].ID, results[1].ID)
	}
}
