package service

import (
	"Nexus/models"
	"strings"
	"testing"

	"github.com/lib/pq"
)

// 顶级回复：深度 0，路径只含自己
func TestThreadPosition_Root(t *testing.T) {
	depth, path := threadPosition(nil, 100)
	if depth != 0 {
		t.Fatalf("root depth = %d, want 0", depth)
	}
	if len(path) != 1 || path[0] != 100 {
		t.Fatalf("root path = %v, want [100]", path)
	}
}

// 子回复：深度父+1，路径为父路径追加自己
func TestThreadPosition_Child(t *testing.T) {
	parent := &models.SectionResponse{
		ID:          2,
		ThreadDepth: 1,
		ThreadPath:  pq.Int64Array{1, 2},
	}

	depth, path := threadPosition(parent, 3)
	if depth != 2 {
		t.Fatalf("child depth = %d, want 2", depth)
	}
	want := pq.Int64Array{1, 2, 3}
	if len(path) != len(want) {
		t.Fatalf("child path = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("child path = %v, want %v", path, want)
		}
	}
}

// 追加子回复不能改写父路径的底层数组
func TestThreadPosition_NoParentAliasing(t *testing.T) {
	parent := &models.SectionResponse{
		ID:          2,
		ThreadDepth: 0,
		ThreadPath:  pq.Int64Array{2},
	}

	_, path1 := threadPosition(parent, 10)
	_, path2 := threadPosition(parent, 11)

	if path1[1] != 10 || path2[1] != 11 {
		t.Fatalf("sibling paths alias each other: %v vs %v", path1, path2)
	}
	if parent.ThreadPath[0] != 2 || len(parent.ThreadPath) != 1 {
		t.Fatalf("parent path mutated: %v", parent.ThreadPath)
	}
}

func TestValidateResponseContent(t *testing.T) {
	if err := validateResponseContent(""); err == nil {
		t.Error("empty content should fail")
	}
	if err := validateResponseContent("   "); err == nil {
		t.Error("whitespace-only content should fail")
	}
	if err := validateResponseContent(strings.Repeat("a", 2001)); err == nil {
		t.Error("overlong content should fail")
	}
	if err := validateResponseContent("看起来不错"); err != nil {
		t.Errorf("valid content rejected: %v", err)
	}
}
