package service

import "testing"

// 无序对总是转成 user1 < user2 的规范顺序
func TestOrderedPair(t *testing.T) {
	cases := []struct {
		a, b         uint64
		want1, want2 uint64
	}{
		{1, 2, 1, 2},
		{2, 1, 1, 2},
		{42, 7, 7, 42},
	}
	for _, c := range cases {
		got1, got2 := orderedPair(c.a, c.b)
		if got1 != c.want1 || got2 != c.want2 {
			t.Errorf("orderedPair(%d, %d) = (%d, %d), want (%d, %d)",
				c.a, c.b, got1, got2, c.want1, c.want2)
		}
	}

	// 两个方向规范化到同一对
	a1, a2 := orderedPair(3, 9)
	b1, b2 := orderedPair(9, 3)
	if a1 != b1 || a2 != b2 {
		t.Fatal("the same unordered pair should normalize identically")
	}
}
