// Package ctxutil carries per-request state on a context.Context.
package ctxutil

import (
	"context"

	"github.com/yungbote/blogbridge-backend/internal/domain/user"
)

// Caller is the authenticated user behind a request and the bearer token
// that proved it. It is absent on public routes.
type Caller struct {
	UserID uint
	User   *user.User
	Token  string
}

// Trace ties a request's log lines, spans and response headers together.
type Trace struct {
	TraceID   string
	RequestID string
}

type (
	callerKey struct{}
	traceKey  struct{}
)

func WithCaller(ctx context.Context, c *Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

func CallerFrom(ctx context.Context) *Caller {
	if ctx == nil {
		return nil
	}
	c, _ := ctx.Value(callerKey{}).(*Caller)
	return c
}

// UserID is zero for anonymous requests.
func UserID(ctx context.Context) uint {
	if c := CallerFrom(ctx); c != nil {
		return c.UserID
	}
	return 0
}

func WithTrace(ctx context.Context, t *Trace) context.Context {
	return context.WithValue(ctx, traceKey{}, t)
}

func TraceFrom(ctx context.Context) *Trace {
	if ctx == nil {
		return nil
	}
	t, _ := ctx.Value(traceKey{}).(*Trace)
	return t
}
