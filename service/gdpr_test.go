package service

import (
	"Nexus/models"
	"testing"
	"time"
)

// 汇总值恒等于各 schema 计数之和
func TestSumCounts(t *testing.T) {
	cases := []struct {
		counts map[string]int64
		want   int64
	}{
		{map[string]int64{}, 0},
		{map[string]int64{"forum": 12}, 12},
		{map[string]int64{"forum": 12, "dating": 3, "market": 0}, 15},
	}
	for _, c := range cases {
		if got := sumCounts(c.counts); got != c.want {
			t.Errorf("sumCounts(%v) = %d, want %d", c.counts, got, c.want)
		}
	}
}

func TestToManifestInfo(t *testing.T) {
	expires := time.Now().AddDate(0, 0, 7)
	m := &models.ExtractionManifest{
		ID:         1,
		PublicCode: "Xk3mN8pQw2Lz",
		Status:     models.ManifestStatusPending,
		Counts:     []byte(`{"forum":12,"dating":3}`),
		ExpiresAt:  expires,
	}

	info := toManifestInfo(m)
	if info.PublicCode != m.PublicCode || info.Status != m.Status {
		t.Fatalf("manifest info mismatch: %+v", info)
	}
	if info.Counts["forum"] != 12 || info.Counts["dating"] != 3 {
		t.Fatalf("counts decode wrong: %v", info.Counts)
	}
	if !info.ExpiresAt.Equal(expires) {
		t.Fatal("expiry not carried over")
	}
}

// counts 字段损坏时不崩，返回空 map
func TestToManifestInfo_BadCounts(t *testing.T) {
	m := &models.ExtractionManifest{ID: 2, Counts: []byte("not json")}
	info := toManifestInfo(m)
	if len(info.Counts) != 0 {
		t.Fatalf("expected empty counts, got %v", info.Counts)
	}
}
