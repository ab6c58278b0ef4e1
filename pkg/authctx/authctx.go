package authctx

import "context"

type ctxKey struct{}

// WithUserID 把当前登录用户放进 context，等价于数据库侧的 auth.uid()
func WithUserID(ctx context.Context, userID uint64) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserID 取当前用户，未登录时 ok 为 false
func UserID(ctx context.Context) (uint64, bool) {
	v, ok := ctx.Value(ctxKey{}).(uint64)
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}
