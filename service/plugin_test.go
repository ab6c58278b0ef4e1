package service

import (
	"Nexus/models"
	"testing"
)

// 全量迁移表：行是起点，列是终点
func TestCanTransition_FullTable(t *testing.T) {
	allowed := map[string]map[string]bool{
		models.PluginStatusDraft: {
			models.PluginStatusDraft:         true,
			models.PluginStatusPendingReview: true,
			models.PluginStatusApproved:      true,
			models.PluginStatusRejected:      true,
			models.PluginStatusDeprecated:    true,
		},
		models.PluginStatusPendingReview: {
			models.PluginStatusDraft:         true,
			models.PluginStatusPendingReview: false,
			models.PluginStatusApproved:      true,
			models.PluginStatusRejected:      true,
			models.PluginStatusDeprecated:    false,
		},
		models.PluginStatusApproved: {
			models.PluginStatusDraft:         true,
			models.PluginStatusPendingReview: false,
			models.PluginStatusApproved:      false,
			models.PluginStatusRejected:      false,
			models.PluginStatusDeprecated:    true,
		},
		models.PluginStatusRejected: {
			models.PluginStatusDraft:         true,
			models.PluginStatusPendingReview: false,
			models.PluginStatusApproved:      false,
			models.PluginStatusRejected:      false,
			models.PluginStatusDeprecated:    true,
		},
		models.PluginStatusDeprecated: {
			models.PluginStatusDraft:         true,
			models.PluginStatusPendingReview: false,
			models.PluginStatusApproved:      false,
			models.PluginStatusRejected:      false,
			models.PluginStatusDeprecated:    false,
		},
	}

	for _, from := range models.PluginStatuses {
		for _, to := range models.PluginStatuses {
			want := allowed[from][to]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

// 未知状态不允许任何迁移
func TestCanTransition_UnknownStatus(t *testing.T) {
	if CanTransition("bogus", models.PluginStatusDraft) {
		t.Fatal("unknown from-status should not transition")
	}
	if CanTransition(models.PluginStatusDraft, "bogus") {
		t.Fatal("unknown to-status should not transition")
	}
}
