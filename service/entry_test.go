package service

import (
	"testing"
)

func TestExtractPlainText(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "富文本嵌套",
			content: `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"hello"},{"type":"text","text":"world"}]}]}`,
			want:    "hello world",
		},
		{
			name:    "顶层就有 text",
			content: `{"text":"plain"}`,
			want:    "plain",
		},
		{
			name:    "非 JSON 退化为原串",
			content: "just some text",
			want:    "just some text",
		},
		{
			name:    "空内容",
			content: "",
			want:    "",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := extractPlainText([]byte(c.content)); got != c.want {
				t.Errorf("extractPlainText = %q, want %q", got, c.want)
			}
		})
	}
}

// 小写、去空白、按首次出现去重
func TestNormalizeTopics(t *testing.T) {
	got := normalizeTopics([]string{"Golang", " golang ", "Redis", "", "  ", "redis", "pg"})
	want := []string{"golang", "redis", "pg"}
	if len(got) != len(want) {
		t.Fatalf("normalizeTopics = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("normalizeTopics = %v, want %v", got, want)
		}
	}
}
