package httpx

import "context"

type ctxKey string

const (
	// CtxKeyUsername holds the identity extracted from a verified token.
	CtxKeyUsername ctxKey = "username"
	// CtxKeyClaims holds the full jwtx.Claims when a handler needs more
	// than the username.
	CtxKeyClaims ctxKey = "claims"
)

// UsernameFromContext returns the authenticated username, if any.
func UsernameFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyUsername).(string)
	return v, ok && v != ""
}
