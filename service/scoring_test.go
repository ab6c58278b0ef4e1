package service

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// 各计数达到上限时热度分饱和到 1.0
func TestTractionScore_Saturation(t *testing.T) {
	if got := TractionScore(15, 25, 8); !almostEqual(got, 1.0) {
		t.Fatalf("expected 1.0 at caps, got %f", got)
	}
	// 超过上限也不会超过 1.0
	if got := TractionScore(1500, 2500, 800); !almostEqual(got, 1.0) {
		t.Fatalf("expected 1.0 above caps, got %f", got)
	}
}

func TestTractionScore_Zero(t *testing.T) {
	if got := TractionScore(0, 0, 0); got != 0 {
		t.Fatalf("expected 0 for no signals, got %f", got)
	}
	// 负数计数按 0 计
	if got := TractionScore(-3, -1, -2); got != 0 {
		t.Fatalf("expected 0 for negative counts, got %f", got)
	}
}

func TestTractionScore_Partial(t *testing.T) {
	cases := []struct {
		replies, applauds, curations int64
		want                         float64
	}{
		{15, 0, 0, 0.4},
		{0, 25, 0, 0.3},
		{0, 0, 8, 0.3},
		{3, 5, 2, 0.4*(3.0/15) + 0.3*(5.0/25) + 0.3*(2.0/8)},
	}
	for _, c := range cases {
		if got := TractionScore(c.replies, c.applauds, c.curations); !almostEqual(got, c.want) {
			t.Errorf("TractionScore(%d, %d, %d) = %f, want %f",
				c.replies, c.applauds, c.curations, got, c.want)
		}
	}
}

// 任一计数增加，热度分不会下降
func TestTractionScore_Monotonic(t *testing.T) {
	base := TractionScore(3, 5, 2)
	for _, got := range []float64{
		TractionScore(4, 5, 2),
		TractionScore(3, 6, 2),
		TractionScore(3, 5, 3),
	} {
		if got < base {
			t.Fatalf("score decreased after adding a signal: %f < %f", got, base)
		}
	}
}

func TestLearnedIntensity(t *testing.T) {
	cases := []struct {
		pos, neg int64
		want     float64
	}{
		{0, 0, 0.5},  // 无信号取中间值: 0.2 + 0.5*0.6
		{10, 0, 0.8}, // 全正: 0.2 + 1.0*0.6
		{0, 10, 0.2}, // 全负: 0.2 + 0*0.6
		{5, 5, 0.5},
		{3, 1, 0.2 + 0.75*0.6},
	}
	for _, c := range cases {
		if got := LearnedIntensity(c.pos, c.neg); !almostEqual(got, c.want) {
			t.Errorf("LearnedIntensity(%d, %d) = %f, want %f", c.pos, c.neg, got, c.want)
		}
	}
}

// 输出永远压在 [0.1, 0.9] 内
func TestLearnedIntensity_Bounds(t *testing.T) {
	for pos := int64(0); pos <= 20; pos++ {
		for neg := int64(0); neg <= 20; neg++ {
			got := LearnedIntensity(pos, neg)
			if got < 0.1 || got > 0.9 {
				t.Fatalf("LearnedIntensity(%d, %d) = %f out of [0.1, 0.9]", pos, neg, got)
			}
		}
	}
}
