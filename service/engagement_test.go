package service

import (
	"Nexus/models"
	"testing"
)

// publish=3 response=2 applaud=1，未知类型按 1
func TestInteractionWeight(t *testing.T) {
	cases := []struct {
		kind string
		want int64
	}{
		{models.InteractionPublish, 3},
		{models.InteractionResponse, 2},
		{models.InteractionApplaud, 1},
		{"bookmark", 1},
		{"", 1},
	}
	for _, c := range cases {
		if got := interactionWeight(c.kind); got != c.want {
			t.Errorf("interactionWeight(%q) = %d, want %d", c.kind, got, c.want)
		}
	}
}

// 每类互动的完整增量组合：分值配上对应类型的计数
func TestInteractionIncrements(t *testing.T) {
	cases := []struct {
		kind                       string
		weight, pub, resp, applaud int64
	}{
		{models.InteractionPublish, 3, 1, 0, 0},
		{models.InteractionResponse, 2, 0, 1, 0},
		{models.InteractionApplaud, 1, 0, 0, 1},
		{"bookmark", 1, 0, 0, 0},
	}
	for _, c := range cases {
		w, p, r, a := interactionIncrements(c.kind)
		if w != c.weight || p != c.pub || r != c.resp || a != c.applaud {
			t.Errorf("interactionIncrements(%q) = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
				c.kind, w, p, r, a, c.weight, c.pub, c.resp, c.applaud)
		}
	}
}

// 同一信号提交两次，累加后分值 0→3→6、发布计数 0→1→2（不去重）
func TestInteractionIncrements_AccumulateTwice(t *testing.T) {
	var score, publishCount int64
	for i := 0; i < 2; i++ {
		w, p, _, _ := interactionIncrements(models.InteractionPublish)
		score += w
		publishCount += p
	}
	if score != 6 {
		t.Errorf("score after two publishes = %d, want 6", score)
	}
	if publishCount != 2 {
		t.Errorf("publish_count after two publishes = %d, want 2", publishCount)
	}
}

func TestNormalizeSlug(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Golang", "golang"},
		{"  distributed-systems  ", "distributed-systems"},
		{"   ", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := normalizeSlug(c.in); got != c.want {
			t.Errorf("normalizeSlug(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
