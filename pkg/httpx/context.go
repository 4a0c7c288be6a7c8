package httpx

import "context"

type ctxKey string

// CtxKeyAdmin carries the authenticated admin identity (email).
const CtxKeyAdmin ctxKey = "admin"

// AdminFromCtx returns the authenticated admin identity, if any.
func AdminFromCtx(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyAdmin).(string)
	return v, ok
}
