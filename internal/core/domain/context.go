package domain

import "context"

type ctxKey struct{}

// WithUser returns a context carrying the authenticated user. The auth
// middleware attaches it once per request; nothing else writes it.
func WithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// UserFromContext returns the authenticated user for this request, or false
// when the request never authenticated.
func UserFromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(ctxKey{}).(*User)
	return u, ok && u != nil
}
